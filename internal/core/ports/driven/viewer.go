package driven

import "context"

// MessageViewer opens a message in the external viewer collaborator.
type MessageViewer interface {
	// Open displays the message with the given stable identifier.
	Open(ctx context.Context, id string) error
}
