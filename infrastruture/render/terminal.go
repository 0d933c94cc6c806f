// Package render displays maze frames on a terminal.
package render

import (
	"fmt"
	"io"
)

// clearScreen moves the cursor home and erases the display, so each frame
// overdraws the previous one.
const clearScreen = "\033[H\033[2J"

// Terminal renders maze frames to a terminal-like writer.
type Terminal struct {
	out io.Writer
}

// NewTerminal creates a Terminal renderer writing to out.
func NewTerminal(out io.Writer) (*Terminal, error) {
	if out == nil {
		return nil, fmt.Errorf("renderer output must not be nil")
	}
	return &Terminal{out: out}, nil
}

// Render clears the screen and draws one frame.
func (t *Terminal) Render(frame string) error {
	_, err := fmt.Fprint(t.out, clearScreen+frame)
	return err
}
