package result

import "context"

// Repository persists published results keyed by (EventID, ParticipantID).
type Repository interface {
	Upsert(ctx context.Context, item Result) (Result, error)
	Get(ctx context.Context, eventID, participantID string) (Result, bool, error)
	ListByEvent(ctx context.Context, eventID string) ([]Result, error)
	// ListPublished returns visible results ordered by rank. Empty eventID
	// means every event.
	ListPublished(ctx context.Context, eventID string) ([]Result, error)
}
