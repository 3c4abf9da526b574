// Package chapter holds the plumbing shared by every chapter demo: the
// output printer, colour detection and the number-keyed chapter registry.
package chapter

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// ColorMode controls whether section banners are styled.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode accepts "auto", "always" or "never". The empty string
// means auto.
func ParseColorMode(s string) (ColorMode, error) {
	switch ColorMode(s) {
	case "", ColorAuto:
		return ColorAuto, nil
	case ColorAlways, ColorNever:
		return ColorMode(s), nil
	}
	return "", fmt.Errorf("invalid color mode %q (want auto, always or never)", s)
}

// Printer is where a chapter writes its output.
type Printer struct {
	w     io.Writer
	color bool
}

// NewPrinter returns a Printer writing to w. In auto mode, colour is only
// enabled when w is a terminal.
func NewPrinter(w io.Writer, mode ColorMode) *Printer {
	color := false
	switch mode {
	case ColorAlways:
		color = true
	case ColorAuto, "":
		if f, ok := w.(*os.File); ok {
			color = isTerminal(f.Fd())
		}
	}
	return &Printer{w: w, color: color}
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Section prints a banner separating the demos of a chapter.
func (p *Printer) Section(title string) {
	if p.color {
		fmt.Fprintf(p.w, "\n\033[1m━━━ %s ━━━\033[0m\n", title)
		return
	}
	fmt.Fprintf(p.w, "\n━━━ %s ━━━\n", title)
}

// Println writes its operands followed by a newline.
func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.w, a...)
}

// Printf writes formatted output; the caller supplies any newline.
func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.w, format, a...)
}
