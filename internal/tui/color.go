package tui

import (
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ColorEnabled reports whether ANSI colour should be written to w.
// SORTVIZ_COLOR overrides, then NO_COLOR, then a TTY check on w.
func ColorEnabled(w io.Writer) bool {
	if v := os.Getenv("SORTVIZ_COLOR"); v != "" {
		switch strings.ToLower(v) {
		case "1", "true", "yes", "on":
			return true
		case "0", "false", "no", "off":
			return false
		}
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

type Palette struct {
	on bool
}

func NewPalette(on bool) Palette { return Palette{on: on} }

func (p Palette) wrap(code, s string) string {
	if !p.on {
		return s
	}
	return "\033[" + code + "m" + s + "\033[0m"
}

func (p Palette) Compare(s string) string { return p.wrap("33", s) }
func (p Palette) Swap(s string) string    { return p.wrap("35", s) }
func (p Palette) Sorted(s string) string  { return p.wrap("32", s) }
func (p Palette) Bold(s string) string    { return p.wrap("1", s) }
func (p Palette) Dim(s string) string     { return p.wrap("2", s) }
func (p Palette) Err(s string) string     { return p.wrap("31", s) }
