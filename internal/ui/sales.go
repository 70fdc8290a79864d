package ui

import (
	"fmt"
	"strings"

	"github.com/vendia-pos/vendia/internal/catalog"
	"github.com/vendia-pos/vendia/internal/reports"
	"github.com/vendia-pos/vendia/internal/sales"
)

func (u *UI) salesMenu() error {
	for {
		u.header("SALES", 35)
		u.println(u.style.Menu("1. Record Sale"))
		u.println(u.style.Menu("2. Sales History"))
		u.println(u.style.Menu("3. Reports"))
		u.println(u.style.Warn("4. Back to Main Menu"))
		u.println(u.style.Muted(strings.Repeat("=", 35)))

		choice, err := u.prompt.Line("Select an option (1-4): ")
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			err = u.recordSale()
		case "2":
			err = u.salesHistory()
		case "3":
			err = u.reportsMenu()
		case "4":
			return nil
		default:
			err = u.invalidChoice()
		}
		if err != nil {
			return err
		}
	}
}

func (u *UI) recordSale() error {
	u.header("RECORD SALE", 60)

	products := u.catalog.Products()
	if len(products) == 0 {
		return u.notice("No products registered. Add a product first.")
	}
	vendors := u.catalog.Vendors()
	if len(vendors) == 0 {
		return u.notice("No vendors registered. Add a vendor first.")
	}

	u.productTable(products)
	productID, err := u.prompt.Int("\nProduct ID: ")
	if err != nil {
		return u.recover(err)
	}
	product, err := u.catalog.ProductByID(productID)
	if err != nil {
		return u.fail(err)
	}
	if product.Stock == 0 {
		return u.notice(fmt.Sprintf("%q is out of stock.", product.Name))
	}

	clientID := catalog.GeneralClientID
	if clients := u.catalog.Clients(); len(clients) > 0 {
		u.println("")
		u.clientTable(clients)
		clientID, err = u.prompt.Int("\nClient ID (0 = general customer): ")
		if err != nil {
			return u.recover(err)
		}
	}

	u.println("")
	u.vendorTable(vendors)
	vendorID, err := u.prompt.Int("\nVendor ID: ")
	if err != nil {
		return u.recover(err)
	}

	qty, err := u.prompt.Int(fmt.Sprintf("\nQuantity (available: %d): ", product.Stock))
	if err != nil {
		return u.recover(err)
	}

	ok, err := u.prompt.Confirm(fmt.Sprintf("\nRecord %d x %s? (y/n): ", qty, product.Name))
	if err != nil {
		return err
	}
	if !ok {
		return u.notice("Sale cancelled.")
	}

	sale, err := u.sales.RecordSale(sales.RecordSaleInput{
		ProductID: productID,
		ClientID:  clientID,
		VendorID:  vendorID,
		Quantity:  int(qty),
	})
	if err != nil {
		return u.fail(err)
	}

	u.println("")
	u.println(u.style.Success("SALE RECORDED"))
	u.println(u.style.Muted(strings.Repeat("-", 40)))
	u.printf("%s %s\n", u.style.Menu("Product:"), sale.ProductName)
	u.printf("%s %s\n", u.style.Menu("Client:"), sale.ClientName)
	u.printf("%s %s\n", u.style.Menu("Vendor:"), sale.VendorName)
	u.printf("%s %d x $%s\n", u.style.Menu("Quantity:"), sale.Quantity, Money(sale.UnitPrice))
	u.printf("%s %s\n", u.style.Menu("Subtotal:"), u.style.Value("$"+Money(sale.Subtotal)))
	u.printf("%s %s\n", u.style.Menu("Profit:"), u.style.Good("$"+Money(sale.ProfitTotal)))
	u.printf("%s %s (%.1f%%)\n", u.style.Menu("Commission:"), u.style.Bad("$"+Money(sale.Commission)), sale.CommissionPct)
	u.println(u.style.Muted(strings.Repeat("-", 40)))
	u.printf("%s %s\n", u.style.Menu("TOTAL:"), u.style.Value("$"+Money(sale.Total)))
	return u.pause()
}

func (u *UI) salesHistory() error {
	u.header("SALES HISTORY", 78)
	ledger := u.sales.Sales()
	if len(ledger) == 0 {
		return u.notice("No sales recorded yet.")
	}

	u.println(u.style.Menu(fmt.Sprintf("%-4s %-19s %-14s %-12s %-12s %3s %9s",
		"ID", "Date", "Product", "Client", "Vendor", "Qty", "Total")))
	u.println(u.style.Muted(strings.Repeat("-", 78)))
	for _, e := range ledger {
		u.printf("%-4d %-19s %-14s %-12s %-12s %3d %s\n",
			e.ID,
			e.Timestamp,
			clip(e.ProductName, 13),
			clip(e.ClientName, 11),
			clip(e.VendorName, 11),
			e.Quantity,
			u.style.Value("$"+MoneyPad(e.Total, 8)))
	}
	u.println(u.style.Muted(strings.Repeat("-", 78)))

	t := reports.Sum(ledger)
	u.printf("%s %d\n", u.style.Menu("Sales:"), len(ledger))
	u.printf("%s %s\n", u.style.Menu("Revenue:"), u.style.Value("$"+Money(t.Revenue)))
	u.printf("%s %s\n", u.style.Menu("Profit:"), u.style.Good("$"+Money(t.Profit)))
	u.printf("%s %s\n", u.style.Menu("Commissions:"), u.style.Bad("$"+Money(t.Commission)))
	return u.pause()
}
