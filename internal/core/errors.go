package core

import (
	"errors"
	"fmt"
)

// The closed error taxonomy. Callers branch on these with errors.Is/As
// instead of matching error text.
var (
	// ErrUnknownTemplate is returned when a template name is not declared
	// in the template table. It is never silently defaulted.
	ErrUnknownTemplate = errors.New("unknown template")

	// ErrUnknownBadge is returned when a badge key is not in the badge table.
	ErrUnknownBadge = errors.New("unknown badge")

	// ErrExternalGenerator marks a generation that fell back to the local
	// renderer because the remote collaborator was absent or failed. Results
	// carrying it still contain a usable document.
	ErrExternalGenerator = errors.New("external generator failed")
)

// RemoteError wraps the transport or non-2xx detail of a failed
// chat-completion call.
type RemoteError struct {
	Status int
	Body   string
}

func (e *RemoteError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("remote call failed: %s", e.Body)
	}
	return fmt.Sprintf("remote call failed with status %d: %s", e.Status, e.Body)
}
