package ui

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/vendia-pos/vendia/internal/catalog"
	"github.com/vendia-pos/vendia/internal/sales"
)

// UI drives the interactive menu tree. Every core error is recovered here:
// the action prints a message and drops back to its menu, so nothing short
// of end-of-input or an exit choice leaves Run.
type UI struct {
	catalog  *catalog.Service
	sales    *sales.Service
	style    Style
	prompt   *Prompter
	out      io.Writer
	logger   *slog.Logger
	topLimit int
	now      func() time.Time
}

// Params collects the UI dependencies.
type Params struct {
	Catalog  *catalog.Service
	Sales    *sales.Service
	Style    Style
	In       io.Reader
	Out      io.Writer
	Logger   *slog.Logger
	TopLimit int
}

// New assembles the UI.
func New(p Params) *UI {
	return &UI{
		catalog:  p.Catalog,
		sales:    p.Sales,
		style:    p.Style,
		prompt:   NewPrompter(p.In, p.Out),
		out:      p.Out,
		logger:   p.Logger,
		topLimit: p.TopLimit,
		now:      time.Now,
	}
}

// Run shows the start screen and loops the main menu until the user exits
// or input ends.
func (u *UI) Run() error {
	if err := u.startScreen(); err != nil {
		return u.finish(err)
	}
	for {
		u.header("MAIN MENU", 35)
		u.println(u.style.Menu("1. Sales"))
		u.println(u.style.Menu("2. Products"))
		u.println(u.style.Menu("3. Clients"))
		u.println(u.style.Menu("4. Vendors"))
		u.println(u.style.Error("5. Exit"))
		u.println(u.style.Muted(strings.Repeat("=", 35)))

		choice, err := u.prompt.Line("Select an option (1-5): ")
		if err != nil {
			return u.finish(err)
		}
		switch choice {
		case "1":
			err = u.salesMenu()
		case "2":
			err = u.productsMenu()
		case "3":
			err = u.clientsMenu()
		case "4":
			err = u.vendorsMenu()
		case "5":
			u.clearScreen()
			u.println(u.style.Success("Thank you for using the system. Come back soon!"))
			return nil
		default:
			err = u.invalidChoice()
		}
		if err != nil {
			return u.finish(err)
		}
	}
}

// finish turns end-of-input into a clean exit with a farewell.
func (u *UI) finish(err error) error {
	if err == io.EOF {
		u.println("")
		u.println(u.style.Success("Thank you for using the system. Come back soon!"))
		return nil
	}
	return err
}

// startScreen shows date, time and record counts before the first menu.
func (u *UI) startScreen() error {
	u.clearScreen()
	sep := strings.Repeat("=", 45)
	now := u.now()

	u.println(u.style.Title(sep))
	u.println(u.style.Title("  PROFESSIONAL SALES MANAGEMENT SYSTEM"))
	u.println(u.style.Title(sep))
	u.printf("%s %s\n", u.style.Muted("Date:"), u.style.Value(now.Format("02-01-2006")))
	u.printf("%s %s\n", u.style.Muted("Time:"), u.style.Value(now.Format("15:04:05")))
	u.println(u.style.Muted(strings.Repeat("-", 45)))
	u.println(u.style.Menu("CURRENT DATA SUMMARY:"))
	u.printf("  %s %d\n", u.style.Menu("Products:"), len(u.catalog.Products()))
	u.printf("  %s %d\n", u.style.Menu("Clients:"), len(u.catalog.Clients()))
	u.printf("  %s %d\n", u.style.Menu("Vendors:"), len(u.catalog.Vendors()))
	u.printf("  %s %d\n", u.style.Menu("Sales:"), len(u.sales.Sales()))
	u.println(u.style.Title(sep))
	return u.pause()
}

// ============================================================================
// SCREEN HELPERS
// ============================================================================

func (u *UI) clearScreen() {
	fmt.Fprint(u.out, "\033[H\033[2J")
}

func (u *UI) header(title string, width int) {
	u.clearScreen()
	sep := strings.Repeat("=", width)
	u.println(u.style.Title(sep))
	u.println(u.style.Title(center(title, width)))
	u.println(u.style.Title(sep))
}

func (u *UI) println(args ...any) {
	fmt.Fprintln(u.out, args...)
}

func (u *UI) printf(format string, args ...any) {
	fmt.Fprintf(u.out, format, args...)
}

// pause blocks until the user presses enter.
func (u *UI) pause() error {
	_, err := u.prompt.Line(u.style.Muted("\nPress Enter to continue..."))
	return err
}

// fail shows a recovered error and pauses.
func (u *UI) fail(err error) error {
	u.println(u.style.Error(capitalize(err.Error())))
	return u.pause()
}

// notice shows a warning line and pauses.
func (u *UI) notice(text string) error {
	u.println(u.style.Warn(text))
	return u.pause()
}

func (u *UI) invalidChoice() error {
	u.println(u.style.Error("Invalid option. Try again."))
	return u.pause()
}

func center(text string, width int) string {
	if pad := (width - len(text)) / 2; pad > 0 {
		return strings.Repeat(" ", pad) + text
	}
	return text
}

func capitalize(text string) string {
	r, size := utf8.DecodeRuneInString(text)
	if size == 0 {
		return text
	}
	return string(unicode.ToUpper(r)) + text[size:]
}

// clip truncates display text to fit a table column.
func clip(text string, max int) string {
	if len(text) > max {
		return text[:max]
	}
	return text
}
