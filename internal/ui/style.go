package ui

// ANSI escape sequences used by the interactive screens.
const (
	ansiReset     = "\033[0m"
	ansiBold      = "\033[1m"
	ansiUnderline = "\033[4m"
	ansiBlue      = "\033[94m"
	ansiCyan      = "\033[96m"
	ansiGreen     = "\033[92m"
	ansiYellow    = "\033[93m"
	ansiRed       = "\033[91m"
	ansiGray      = "\033[37m"
)

// Style renders semantic fragments of the terminal screens. Disabled, every
// helper returns its input unchanged. The core packages never depend on it.
type Style struct {
	enabled bool
}

// NewStyle returns a style with coloring on or off.
func NewStyle(enabled bool) Style {
	return Style{enabled: enabled}
}

func (s Style) wrap(code, text string) string {
	if !s.enabled {
		return text
	}
	return code + text + ansiReset
}

// Title renders screen headers.
func (s Style) Title(text string) string { return s.wrap(ansiBold+ansiCyan+ansiUnderline, text) }

// Menu renders selectable options.
func (s Style) Menu(text string) string { return s.wrap(ansiBlue, text) }

// Success renders confirmation messages.
func (s Style) Success(text string) string { return s.wrap(ansiBold+ansiGreen, text) }

// Warn renders warnings and cancellations.
func (s Style) Warn(text string) string { return s.wrap(ansiBold+ansiYellow, text) }

// Error renders failures.
func (s Style) Error(text string) string { return s.wrap(ansiBold+ansiRed, text) }

// Muted renders separators and secondary text.
func (s Style) Muted(text string) string { return s.wrap(ansiGray, text) }

// Value renders emphasized data values.
func (s Style) Value(text string) string { return s.wrap(ansiBold, text) }

// Good renders favorable figures such as profit.
func (s Style) Good(text string) string { return s.wrap(ansiGreen, text) }

// Bad renders costs such as commissions.
func (s Style) Bad(text string) string { return s.wrap(ansiRed, text) }
