package ui

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vendia-pos/vendia/internal/shared"
)

// Prompter reads line-oriented input from the terminal. It returns io.EOF
// once input ends, which the menu loop treats as a clean exit.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter wraps an input stream and the screen writer.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Line prints the prompt and returns the trimmed input line.
func (p *Prompter) Line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// Int prompts for a whole number.
func (p *Prompter) Int(prompt string) (int64, error) {
	raw, err := p.Line(prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", shared.ErrInvalidInput, raw)
	}
	return n, nil
}

// Float prompts for a decimal number.
func (p *Prompter) Float(prompt string) (float64, error) {
	raw, err := p.Line(prompt)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", shared.ErrInvalidInput, raw)
	}
	return v, nil
}

// Confirm asks a yes/no question; only "y"/"yes" counts as yes.
func (p *Prompter) Confirm(prompt string) (bool, error) {
	raw, err := p.Line(prompt)
	if err != nil {
		return false, err
	}
	answer := strings.ToLower(raw)
	return answer == "y" || answer == "yes", nil
}
