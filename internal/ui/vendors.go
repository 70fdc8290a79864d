package ui

import (
	"fmt"
	"strings"

	"github.com/vendia-pos/vendia/internal/catalog"
	"github.com/vendia-pos/vendia/internal/shared"
)

func (u *UI) vendorsMenu() error {
	for {
		u.header("VENDORS", 35)
		u.println(u.style.Menu("1. List Vendors"))
		u.println(u.style.Menu("2. Add Vendor"))
		u.println(u.style.Menu("3. Edit Vendor"))
		u.println(u.style.Error("4. Delete Vendor"))
		u.println(u.style.Warn("5. Back to Main Menu"))
		u.println(u.style.Muted(strings.Repeat("=", 35)))

		choice, err := u.prompt.Line("Select an option (1-5): ")
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			err = u.listVendors()
		case "2":
			err = u.addVendor()
		case "3":
			err = u.editVendor()
		case "4":
			err = u.deleteVendor()
		case "5":
			return nil
		default:
			err = u.invalidChoice()
		}
		if err != nil {
			return err
		}
	}
}

func (u *UI) listVendors() error {
	u.header("VENDOR LIST", 45)
	vendors := u.catalog.Vendors()
	if len(vendors) == 0 {
		return u.notice("No vendors registered.")
	}
	u.vendorTable(vendors)
	return u.pause()
}

func (u *UI) vendorTable(vendors []catalog.Vendor) {
	u.println(u.style.Menu(fmt.Sprintf("%-4s %-22s %-12s", "ID", "Vendor", "Commission")))
	u.println(u.style.Muted(strings.Repeat("-", 45)))
	for _, v := range vendors {
		u.printf("%-4d %-22s %s\n", v.ID, clip(v.Name, 21),
			u.style.Value(fmt.Sprintf("%.1f%%", v.CommissionPct)))
	}
	u.println(u.style.Muted(strings.Repeat("-", 45)))
}

func (u *UI) addVendor() error {
	u.header("ADD VENDOR", 40)

	name, err := u.prompt.Line("Vendor name: ")
	if err != nil {
		return err
	}
	if name == "" {
		return u.fail(fmt.Errorf("%w: name cannot be empty", shared.ErrInvalidInput))
	}
	pct, err := u.prompt.Float("Commission percentage (0-100): ")
	if err != nil {
		return u.recover(err)
	}

	v, err := u.catalog.CreateVendor(catalog.CreateVendorInput{
		Name:          name,
		CommissionPct: pct,
	})
	if err != nil {
		return u.fail(err)
	}
	u.println("")
	u.println(u.style.Success(fmt.Sprintf("Vendor %q added with a %.1f%% commission.", v.Name, v.CommissionPct)))
	return u.pause()
}

func (u *UI) editVendor() error {
	u.header("EDIT VENDOR", 40)
	vendors := u.catalog.Vendors()
	if len(vendors) == 0 {
		return u.notice("No vendors registered.")
	}
	u.vendorTable(vendors)

	id, err := u.prompt.Int("\nID of the vendor to edit: ")
	if err != nil {
		return u.recover(err)
	}
	v, err := u.catalog.VendorByID(id)
	if err != nil {
		return u.fail(err)
	}

	u.printf("\n%s\n", u.style.Menu("Editing: "+v.Name))
	u.println(u.style.Muted("(Leave blank to keep the current value)"))

	var in catalog.UpdateVendorInput
	if name, err := u.prompt.Line(fmt.Sprintf("New name [%s]: ", v.Name)); err != nil {
		return err
	} else if name != "" {
		in.Name = &name
	}
	if in.CommissionPct, err = u.optFloat(fmt.Sprintf("New commission [%.1f%%]: ", v.CommissionPct)); err != nil {
		return u.recover(err)
	}

	if _, err := u.catalog.UpdateVendor(id, in); err != nil {
		return u.fail(err)
	}
	u.println("")
	u.println(u.style.Success("Vendor updated."))
	return u.pause()
}

func (u *UI) deleteVendor() error {
	u.header("DELETE VENDOR", 40)
	vendors := u.catalog.Vendors()
	if len(vendors) == 0 {
		return u.notice("No vendors registered.")
	}
	u.vendorTable(vendors)

	id, err := u.prompt.Int("\nID of the vendor to delete: ")
	if err != nil {
		return u.recover(err)
	}
	v, err := u.catalog.VendorByID(id)
	if err != nil {
		return u.fail(err)
	}
	ok, err := u.prompt.Confirm(fmt.Sprintf("Delete %q? (y/n): ", v.Name))
	if err != nil {
		return err
	}
	if !ok {
		return u.notice("Deletion cancelled.")
	}
	if err := u.catalog.DeleteVendor(id); err != nil {
		return u.fail(err)
	}
	u.println("")
	u.println(u.style.Success(fmt.Sprintf("Vendor %q deleted.", v.Name)))
	return u.pause()
}
