package tui

import (
	"os"

	"golang.org/x/term"
)

// IsTTY reports whether stdin and stdout are both terminals.
func IsTTY() bool {
	if os.Getenv("FOOTPRINT_FORCE_TTY") == "1" {
		return true
	}
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// ColorEnabled reports whether styled output should be written to f.
func ColorEnabled(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
