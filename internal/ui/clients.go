package ui

import (
	"fmt"
	"strings"

	"github.com/vendia-pos/vendia/internal/catalog"
	"github.com/vendia-pos/vendia/internal/shared"
)

func (u *UI) clientsMenu() error {
	for {
		u.header("CLIENTS", 35)
		u.println(u.style.Menu("1. List Clients"))
		u.println(u.style.Menu("2. Add Client"))
		u.println(u.style.Menu("3. Edit Client"))
		u.println(u.style.Menu("4. Search Clients"))
		u.println(u.style.Error("5. Delete Client"))
		u.println(u.style.Warn("6. Back to Main Menu"))
		u.println(u.style.Muted(strings.Repeat("=", 35)))

		choice, err := u.prompt.Line("Select an option (1-6): ")
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			err = u.listClients(u.catalog.Clients())
		case "2":
			err = u.addClient()
		case "3":
			err = u.editClient()
		case "4":
			err = u.searchClients()
		case "5":
			err = u.deleteClient()
		case "6":
			return nil
		default:
			err = u.invalidChoice()
		}
		if err != nil {
			return err
		}
	}
}

func (u *UI) listClients(clients []catalog.Client) error {
	u.header("CLIENT LIST", 55)
	if len(clients) == 0 {
		return u.notice("No clients registered.")
	}
	u.clientTable(clients)
	return u.pause()
}

func (u *UI) clientTable(clients []catalog.Client) {
	u.println(u.style.Menu(fmt.Sprintf("%-4s %-20s %-15s %-12s", "ID", "Client", "Tax ID", "Phone")))
	u.println(u.style.Muted(strings.Repeat("-", 55)))
	for _, c := range clients {
		u.printf("%-4d %-20s %-15s %-12s\n",
			c.ID, clip(c.Name, 19), orDash(c.TaxID), orDash(c.Phone))
	}
	u.println(u.style.Muted(strings.Repeat("-", 55)))
}

func (u *UI) addClient() error {
	u.header("ADD CLIENT", 40)

	name, err := u.prompt.Line("Client name: ")
	if err != nil {
		return err
	}
	if name == "" {
		return u.fail(fmt.Errorf("%w: name cannot be empty", shared.ErrInvalidInput))
	}
	taxID, err := u.prompt.Line("Tax ID (optional): ")
	if err != nil {
		return err
	}
	phone, err := u.prompt.Line("Phone (optional): ")
	if err != nil {
		return err
	}

	c, err := u.catalog.CreateClient(catalog.CreateClientInput{
		Name:  name,
		TaxID: taxID,
		Phone: phone,
	})
	if err != nil {
		return u.fail(err)
	}
	u.println("")
	u.println(u.style.Success(fmt.Sprintf("Client %q added with ID %d.", c.Name, c.ID)))
	return u.pause()
}

func (u *UI) editClient() error {
	u.header("EDIT CLIENT", 40)
	clients := u.catalog.Clients()
	if len(clients) == 0 {
		return u.notice("No clients registered.")
	}
	u.clientTable(clients)

	id, err := u.prompt.Int("\nID of the client to edit: ")
	if err != nil {
		return u.recover(err)
	}
	c, err := u.catalog.ClientByID(id)
	if err != nil {
		return u.fail(err)
	}

	u.printf("\n%s\n", u.style.Menu("Editing: "+c.Name))
	u.println(u.style.Muted("(Leave blank to keep the current value)"))

	var in catalog.UpdateClientInput
	if name, err := u.prompt.Line(fmt.Sprintf("New name [%s]: ", c.Name)); err != nil {
		return err
	} else if name != "" {
		in.Name = &name
	}
	if taxID, err := u.prompt.Line(fmt.Sprintf("New tax ID [%s]: ", orDash(c.TaxID))); err != nil {
		return err
	} else if taxID != "" {
		in.TaxID = &taxID
	}
	if phone, err := u.prompt.Line(fmt.Sprintf("New phone [%s]: ", orDash(c.Phone))); err != nil {
		return err
	} else if phone != "" {
		in.Phone = &phone
	}

	if _, err := u.catalog.UpdateClient(id, in); err != nil {
		return u.fail(err)
	}
	u.println("")
	u.println(u.style.Success("Client updated."))
	return u.pause()
}

func (u *UI) searchClients() error {
	u.header("SEARCH CLIENTS", 40)
	term, err := u.prompt.Line("Enter an ID, name, tax ID or phone: ")
	if err != nil {
		return err
	}
	if term == "" {
		return u.notice("Search cancelled.")
	}
	results := u.catalog.SearchClients(term)
	if len(results) == 0 {
		return u.notice(fmt.Sprintf("No clients matched %q.", term))
	}
	return u.listClients(results)
}

func (u *UI) deleteClient() error {
	u.header("DELETE CLIENT", 40)
	clients := u.catalog.Clients()
	if len(clients) == 0 {
		return u.notice("No clients registered.")
	}
	u.clientTable(clients)

	id, err := u.prompt.Int("\nID of the client to delete: ")
	if err != nil {
		return u.recover(err)
	}
	c, err := u.catalog.ClientByID(id)
	if err != nil {
		return u.fail(err)
	}
	ok, err := u.prompt.Confirm(fmt.Sprintf("Delete %q? (y/n): ", c.Name))
	if err != nil {
		return err
	}
	if !ok {
		return u.notice("Deletion cancelled.")
	}
	if err := u.catalog.DeleteClient(id); err != nil {
		return u.fail(err)
	}
	u.println("")
	u.println(u.style.Success(fmt.Sprintf("Client %q deleted.", c.Name)))
	return u.pause()
}

func orDash(text string) string {
	if text == "" {
		return "-"
	}
	return text
}
