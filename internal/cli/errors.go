package cli

import "errors"

// ExitCodeCancelled is the process exit code when the user aborts a pick.
const ExitCodeCancelled = 130

// Sentinel errors for the pick commands.
var (
	ErrNoItems           = errors.New("no items to pick from")
	ErrInvalidSelection  = errors.New("initial selection out of range")
	ErrInvalidCellHeight = errors.New("cell height must be positive")
)

// CancelledError reports that the user quit the picker without choosing.
// It is used to communicate exit code 130 to main.
type CancelledError struct {
	Command string
}

func (e *CancelledError) Error() string {
	if e.Command == "" {
		return "cancelled"
	}
	return e.Command + ": cancelled"
}
