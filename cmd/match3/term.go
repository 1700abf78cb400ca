package main

import (
	"os"

	"golang.org/x/term"
)

// terminalSize reports the size of the terminal on stdout.
func terminalSize() (int, int, bool) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0, 0, false
	}
	return w, h, true
}
