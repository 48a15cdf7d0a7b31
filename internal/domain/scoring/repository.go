package scoring

import "context"

// Repository persists score submissions. Upsert must be atomic per
// (ParticipantID, JuryID) and return the stored row.
type Repository interface {
	Upsert(ctx context.Context, submission Submission) (Submission, error)
	GetByParticipantAndJury(ctx context.Context, participantID, juryID string) (Submission, bool, error)
	ListByEvent(ctx context.Context, eventID string) ([]Submission, error)
	ListByJuryAndEvent(ctx context.Context, juryID, eventID string) ([]Submission, error)
}
