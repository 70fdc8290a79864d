package ui

import (
	"fmt"
	"strings"

	"github.com/vendia-pos/vendia/internal/reports"
	"github.com/vendia-pos/vendia/internal/sales"
)

func (u *UI) reportsMenu() error {
	for {
		u.header("REPORTS", 35)
		u.println(u.style.Menu("1. Current Week"))
		u.println(u.style.Menu("2. Top Clients and Products"))
		u.println(u.style.Menu("3. Vendor Payouts"))
		u.println(u.style.Menu("4. Past Weeks"))
		u.println(u.style.Warn("5. Back"))
		u.println(u.style.Muted(strings.Repeat("=", 35)))

		choice, err := u.prompt.Line("Select an option (1-5): ")
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			err = u.currentWeekReport()
		case "2":
			err = u.topRankings()
		case "3":
			err = u.vendorPayouts()
		case "4":
			err = u.pastWeeks()
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

func (u *UI) currentWeekReport() error {
	u.header("CURRENT WEEK REPORT", 50)
	week := reports.WeekOf(u.now())
	entries := reports.InWeek(u.sales.Sales(), week)

	u.printf("%s %s to %s\n\n", u.style.Menu("Week:"),
		u.style.Value(week.Start.Format("02-01-2006")),
		u.style.Value(week.End.Format("02-01-2006")))

	if len(entries) == 0 {
		return u.notice("No sales this week.")
	}
	u.weekSummary(entries)
	return u.pause()
}

// weekSummary prints the per-week totals block shared by the current-week
// and past-weeks screens.
func (u *UI) weekSummary(entries []sales.Sale) {
	t := reports.Sum(entries)
	u.printf("%s %d\n", u.style.Menu("Sales recorded:"), len(entries))
	u.printf("%s %s\n", u.style.Menu("Revenue:"), u.style.Value("$"+Money(t.Revenue)))
	u.printf("%s %s\n", u.style.Menu("Profit:"), u.style.Good("$"+Money(t.Profit)))
	u.printf("%s %s\n", u.style.Menu("Commissions:"), u.style.Bad("$"+Money(t.Commission)))
	u.printf("%s %s\n", u.style.Menu("Net profit:"), u.style.Good("$"+Money(t.Profit-t.Commission)))
}

func (u *UI) topRankings() error {
	u.header("TOP RANKINGS", 50)
	week := reports.WeekOf(u.now())
	entries := reports.InWeek(u.sales.Sales(), week)
	if len(entries) == 0 {
		return u.notice("No sales this week.")
	}

	u.println(u.style.Menu(fmt.Sprintf("TOP %d CLIENTS (by total spent)", u.topLimit)))
	u.println(u.style.Muted(strings.Repeat("-", 50)))
	for i, r := range reports.TopClients(entries, u.topLimit) {
		u.printf("%d. %-25s %s\n", i+1, clip(r.ClientName, 24),
			u.style.Value("$"+MoneyPad(r.TotalSpent, 10)))
	}

	u.println("")
	u.println(u.style.Menu(fmt.Sprintf("TOP %d PRODUCTS (by units sold)", u.topLimit)))
	u.println(u.style.Muted(strings.Repeat("-", 50)))
	for i, r := range reports.TopProducts(entries, u.topLimit) {
		u.printf("%d. %-25s %s units\n", i+1, clip(r.ProductName, 24),
			u.style.Value(fmt.Sprintf("%5d", r.QuantitySold)))
	}
	return u.pause()
}

func (u *UI) vendorPayouts() error {
	u.header("VENDOR PAYOUTS", 50)
	week := reports.WeekOf(u.now())
	entries := reports.InWeek(u.sales.Sales(), week)
	if len(entries) == 0 {
		return u.notice("No sales this week.")
	}

	u.printf("%s %s to %s\n\n", u.style.Menu("Week:"),
		u.style.Value(week.Start.Format("02-01-2006")),
		u.style.Value(week.End.Format("02-01-2006")))

	u.println(u.style.Menu(fmt.Sprintf("%-25s %12s", "Vendor", "Commission")))
	u.println(u.style.Muted(strings.Repeat("-", 50)))
	var total float64
	for _, p := range reports.VendorPayouts(entries) {
		u.printf("%-25s %s\n", clip(p.VendorName, 24), u.style.Bad("$"+MoneyPad(p.Commission, 11)))
		total += p.Commission
	}
	u.println(u.style.Muted(strings.Repeat("-", 50)))
	u.printf("%-25s %s\n", u.style.Menu("TOTAL"), u.style.Value("$"+MoneyPad(total, 11)))
	return u.pause()
}

func (u *UI) pastWeeks() error {
	u.header("PAST WEEKS", 50)
	buckets := reports.PastWeeks(u.sales.Sales(), u.now())
	if len(buckets) == 0 {
		return u.notice("No sales in past weeks.")
	}

	u.println(u.style.Menu("Available weeks (most recent first):"))
	for i, b := range buckets {
		u.printf("%d. %s to %s  (%d sales)\n", i+1,
			u.style.Value(b.Week.Start.Format("02-01-2006")),
			u.style.Value(b.Week.End.Format("02-01-2006")),
			len(b.Sales))
	}

	n, err := u.prompt.Int("\nWeek number (0 to cancel): ")
	if err != nil {
		return u.recover(err)
	}
	if n == 0 {
		return nil
	}
	if n < 1 || int(n) > len(buckets) {
		return u.invalidChoice()
	}
	b := buckets[n-1]

	u.header("WEEK DETAIL", 50)
	u.printf("%s %s to %s\n\n", u.style.Menu("Week:"),
		u.style.Value(b.Week.Start.Format("02-01-2006")),
		u.style.Value(b.Week.End.Format("02-01-2006")))
	for _, e := range b.Sales {
		u.printf("%-19s %-14s %3d %s\n", e.Timestamp, clip(e.ProductName, 13),
			e.Quantity, u.style.Value("$"+MoneyPad(e.Total, 8)))
	}
	u.println(u.style.Muted(strings.Repeat("-", 50)))
	u.weekSummary(b.Sales)
	return u.pause()
}
