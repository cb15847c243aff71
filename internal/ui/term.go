package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

var (
	forceColor   bool
	disableColor bool

	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// SetColorForcing also strips colour from styles rendered directly through
// lipgloss, which is how the interactive view draws.
func SetColorForcing(force, disable bool) {
	forceColor = force
	disableColor = disable
	if disable {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// SetOutput redirects OK/Fail/Panel output; nil restores the defaults.
func SetOutput(out, errOut io.Writer) {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	stdout, stderr = out, errOut
}

func isTTY() bool {
	f, ok := stdout.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Paint renders s with style when colour is on, plain otherwise.
func Paint(style lipgloss.Style, s string) string {
	if disableColor || current.Mono {
		return s
	}
	if forceColor || isTTY() {
		return style.Render(s)
	}
	return s
}

// Size reports the terminal size, falling back to 80x24.
func Size() (int, int) {
	w, h := 80, 24
	if tw, th, err := term.GetSize(int(os.Stdout.Fd())); err == nil && tw > 0 && th > 0 {
		w, h = tw, th
	}
	return w, h
}

func OK(msg string) { fmt.Fprintln(stdout, Paint(current.Success, current.SymDone+" "+msg)) }

func Fail(msg string) { fmt.Fprintln(stderr, Paint(current.Error, current.SymFail+" "+msg)) }

// Hint prints a muted follow-up line under a failure.
func Hint(msg string) { fmt.Fprintln(stderr, Paint(current.Muted, "Hint: "+msg)) }
