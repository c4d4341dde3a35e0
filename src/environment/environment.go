package environment

import (
	"os"

	"github.com/mattn/go-isatty"
)

var interactiveOverride *bool

// ForceSetIsInteractive overrides the terminal detection. Used by tests and
// the --interactive CLI flag.
func ForceSetIsInteractive(value bool) {
	interactiveOverride = &value
}

// IsInteractive reports whether expressions are being typed by a user at a
// terminal. It only controls whether the prompt string is printed; piped
// input still gets every line evaluated.
func IsInteractive() bool {
	if interactiveOverride != nil {
		return *interactiveOverride
	}
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}
