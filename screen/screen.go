// Package screen provides a best-effort terminal clear.
package screen

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ANSI: erase display, then move the cursor home.
const eraseDisplay = "\x1b[2J\x1b[H"

// Clear erases the terminal attached to w. Purely cosmetic: when w is
// not a file descriptor of a terminal (pipes, buffers, redirects) it
// does nothing, and write errors are ignored.
func Clear(w io.Writer) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return
	}
	fmt.Fprint(f, eraseDisplay)
}
