package sync

import (
	"os"

	"golang.org/x/term"
)

// IsTTY checks if the given file descriptor is a terminal.
func IsTTY(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

// IsOutputTerminal checks if stdout is a TTY, indicating that output is
// being read by a person rather than piped into another tool. Used to pick
// the human log format over JSON when none is configured.
func IsOutputTerminal() bool {
	return IsTTY(os.Stdout.Fd())
}
