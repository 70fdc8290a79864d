package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vendia-pos/vendia/internal/catalog"
	"github.com/vendia-pos/vendia/internal/shared"
)

func (u *UI) productsMenu() error {
	for {
		u.header("PRODUCTS", 35)
		u.println(u.style.Menu("1. List Products"))
		u.println(u.style.Menu("2. Add Product"))
		u.println(u.style.Menu("3. Edit Product"))
		u.println(u.style.Menu("4. Update Cost (Bulk %)"))
		u.println(u.style.Menu("5. Search Products"))
		u.println(u.style.Error("6. Delete Product"))
		u.println(u.style.Warn("7. Back to Main Menu"))
		u.println(u.style.Muted(strings.Repeat("=", 35)))

		choice, err := u.prompt.Line("Select an option (1-7): ")
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			err = u.listProducts(u.catalog.Products())
		case "2":
			err = u.addProduct()
		case "3":
			err = u.editProduct()
		case "4":
			err = u.bulkCostUpdate()
		case "5":
			err = u.searchProducts()
		case "6":
			err = u.deleteProduct()
		case "7":
			return nil
		default:
			err = u.invalidChoice()
		}
		if err != nil {
			return err
		}
	}
}

func (u *UI) listProducts(products []catalog.Product) error {
	u.header("PRODUCT LIST", 60)
	if len(products) == 0 {
		return u.notice("No products registered.")
	}
	u.productTable(products)
	return u.pause()
}

// productTable renders the compact product table shared by the listing,
// edit and sale screens.
func (u *UI) productTable(products []catalog.Product) {
	u.println(u.style.Menu(fmt.Sprintf("%-4s %-15s %-8s %-7s %-8s %-6s",
		"ID", "Product", "Cost", "Profit", "Price", "Stock")))
	u.println(u.style.Muted(strings.Repeat("-", 60)))
	for _, p := range products {
		u.printf("%-4d %-15s %s %s %s %-6d\n",
			p.ID,
			clip(p.Name, 14),
			u.style.Value("$"+MoneyPad(p.PurchasePrice, 7)),
			u.style.Good("$"+MoneyPad(p.Profit, 6)),
			u.style.Value("$"+MoneyPad(p.SalePrice, 7)),
			p.Stock)
	}
	u.println(u.style.Muted(strings.Repeat("-", 60)))
}

func (u *UI) addProduct() error {
	u.header("ADD PRODUCT", 40)

	name, err := u.prompt.Line("Product name: ")
	if err != nil {
		return err
	}
	if name == "" {
		return u.fail(fmt.Errorf("%w: name cannot be empty", shared.ErrInvalidInput))
	}
	purchase, err := u.prompt.Float("Purchase price ($): ")
	if err != nil {
		return u.recover(err)
	}
	profit, err := u.prompt.Float("Profit (fixed margin) ($): ")
	if err != nil {
		return u.recover(err)
	}
	stock, err := u.prompt.Int("Initial stock (max 999): ")
	if err != nil {
		return u.recover(err)
	}

	p, err := u.catalog.CreateProduct(catalog.CreateProductInput{
		Name:          name,
		PurchasePrice: purchase,
		Profit:        profit,
		Stock:         int(stock),
	})
	if err != nil {
		return u.fail(err)
	}
	u.println("")
	u.println(u.style.Success(fmt.Sprintf("Product %q added.", p.Name)))
	u.printf("Initial stock: %s\n", u.style.Value(strconv.Itoa(p.Stock)))
	u.printf("Sale price: %s\n", u.style.Value("$"+Money(p.SalePrice)))
	return u.pause()
}

func (u *UI) editProduct() error {
	u.header("EDIT PRODUCT", 40)
	products := u.catalog.Products()
	if len(products) == 0 {
		return u.notice("No products registered.")
	}
	u.productTable(products)

	id, err := u.prompt.Int("\nID of the product to edit: ")
	if err != nil {
		return u.recover(err)
	}
	p, err := u.catalog.ProductByID(id)
	if err != nil {
		return u.fail(err)
	}

	u.printf("\n%s\n", u.style.Menu("Editing: "+p.Name))
	u.println(u.style.Muted("(Leave blank to keep the current value)"))

	var in catalog.UpdateProductInput
	name, err := u.prompt.Line(fmt.Sprintf("New name [%s]: ", p.Name))
	if err != nil {
		return err
	}
	if name != "" {
		in.Name = &name
	}
	if in.PurchasePrice, err = u.optFloat(fmt.Sprintf("New purchase price [$%s]: ", Money(p.PurchasePrice))); err != nil {
		return u.recover(err)
	}
	if in.Profit, err = u.optFloat(fmt.Sprintf("New profit [$%s]: ", Money(p.Profit))); err != nil {
		return u.recover(err)
	}
	if in.Stock, err = u.optInt(fmt.Sprintf("New stock [%d] (max 999): ", p.Stock)); err != nil {
		return u.recover(err)
	}

	updated, err := u.catalog.UpdateProduct(id, in)
	if err != nil {
		return u.fail(err)
	}
	u.println("")
	u.println(u.style.Success("Product updated."))
	u.printf("New stock: %s\n", u.style.Value(strconv.Itoa(updated.Stock)))
	u.printf("New sale price: %s\n", u.style.Value("$"+Money(updated.SalePrice)))
	return u.pause()
}

func (u *UI) bulkCostUpdate() error {
	u.header("BULK COST UPDATE", 45)
	products := u.catalog.Products()
	if len(products) == 0 {
		return u.notice("No products registered.")
	}

	pct, err := u.prompt.Float("Cost increase/decrease percentage (%): ")
	if err != nil {
		return u.recover(err)
	}
	if pct == 0 {
		return u.notice("0% change. Nothing to update.")
	}
	ok, err := u.prompt.Confirm(fmt.Sprintf("\nApply a %.2f%% change to %d products? (y/n): ", pct, len(products)))
	if err != nil {
		return err
	}
	if !ok {
		return u.notice("Bulk update cancelled.")
	}

	updated, err := u.catalog.BulkAdjustCost(pct)
	if err != nil {
		return u.fail(err)
	}
	u.println("")
	u.println(u.style.Success("Bulk update complete."))
	u.printf("%s products updated.\n", u.style.Value(strconv.Itoa(updated)))
	return u.pause()
}

func (u *UI) searchProducts() error {
	u.header("SEARCH PRODUCTS", 40)
	term, err := u.prompt.Line("Enter an ID or name fragment: ")
	if err != nil {
		return err
	}
	if term == "" {
		return u.notice("Search cancelled.")
	}
	results := u.catalog.SearchProducts(term)
	if len(results) == 0 {
		return u.notice(fmt.Sprintf("No products matched %q.", term))
	}
	return u.listProducts(results)
}

func (u *UI) deleteProduct() error {
	u.header("DELETE PRODUCT", 40)
	products := u.catalog.Products()
	if len(products) == 0 {
		return u.notice("No products registered.")
	}
	u.productTable(products)

	id, err := u.prompt.Int("\nID of the product to delete: ")
	if err != nil {
		return u.recover(err)
	}
	p, err := u.catalog.ProductByID(id)
	if err != nil {
		return u.fail(err)
	}
	ok, err := u.prompt.Confirm(fmt.Sprintf("Delete %q? (y/n): ", p.Name))
	if err != nil {
		return err
	}
	if !ok {
		return u.notice("Deletion cancelled.")
	}
	if err := u.catalog.DeleteProduct(id); err != nil {
		return u.fail(err)
	}
	u.println("")
	u.println(u.style.Success(fmt.Sprintf("Product %q deleted.", p.Name)))
	return u.pause()
}

// ============================================================================
// OPTIONAL-FIELD INPUT
// ============================================================================

// recover shows invalid-input errors and pauses; anything else (end of
// input) propagates to the menu loop.
func (u *UI) recover(err error) error {
	if isDomainErr(err) {
		return u.fail(err)
	}
	return err
}

func isDomainErr(err error) bool {
	return errors.Is(err, shared.ErrInvalidInput) ||
		errors.Is(err, shared.ErrNotFound) ||
		errors.Is(err, shared.ErrInsufficientStock) ||
		errors.Is(err, shared.ErrReferentialConflict)
}

// optFloat reads an optional decimal; blank keeps the current value.
func (u *UI) optFloat(prompt string) (*float64, error) {
	raw, err := u.prompt.Line(prompt)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a number", shared.ErrInvalidInput, raw)
	}
	return &v, nil
}

// optInt reads an optional whole number; blank keeps the current value.
func (u *UI) optInt(prompt string) (*int, error) {
	raw, err := u.prompt.Line(prompt)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a number", shared.ErrInvalidInput, raw)
	}
	return &v, nil
}
