package participant

import "context"

// Repository describes participant persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, participantID string) (Participant, bool, error)
	GetByIDs(ctx context.Context, participantIDs []string) ([]Participant, error)
	// ListByEvent returns participants ordered by registration time.
	ListByEvent(ctx context.Context, eventID string) ([]Participant, error)
	ListApprovedByEvent(ctx context.Context, eventID string) ([]Participant, error)
}
