package aioterminal

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// RawMode is the terminal mode control collaborator spec.md treats as
// external to the core: it puts fd into character-at-a-time, no-echo mode
// (cbreak/raw) and returns a restore function that undoes it.
//
// Grounded on original_source/src/aioterminal/__init__.py's char_mode()
// context manager (tcgetattr/tty.setcbreak/tcsetattr, or SetConsoleMode on
// Windows) and on the teacher's pattern, in tea.go, of stashing the
// previous terminal state and restoring it on every exit path — including
// error paths, which is why restore is returned rather than deferred here.
//
// RawMode fails if f is not a terminal, matching spec.md §6.
func RawMode(f *os.File) (restore func() error, err error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("aioterminal: RawMode: %s: not a terminal", f.Name())
	}

	prev, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("aioterminal: RawMode: %w", err)
	}

	restored := false
	return func() error {
		if restored {
			return nil
		}
		restored = true
		return term.Restore(fd, prev)
	}, nil
}
