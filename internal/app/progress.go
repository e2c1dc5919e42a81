package app

import "context"

// ProgressRepository remembers which questions a streaming quiz session has been served.
// It belongs to the stream adapter; the quiz use cases themselves hold no session state.
type ProgressRepository interface {
	Served(ctx context.Context, sessionID string) ([]int, error)
	MarkServed(ctx context.Context, sessionID string, questionID int) error
	Clear(ctx context.Context, sessionID string) error
}
