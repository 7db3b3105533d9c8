// Package term handles the one piece of terminal state fbslide touches:
// cursor visibility. A blinking cursor on the console happily draws over a
// freshly written frame.
package term

import (
	"fmt"
	"os"
)

const (
	cursorShow = "\x1b[?25h"
	cursorHide = "\x1b[?25l"
)

func HideCursor() {
	fmt.Fprint(os.Stdout, cursorHide)
}

func ShowCursor() {
	fmt.Fprint(os.Stdout, cursorShow)
}
