package jury

import "context"

// AssignmentRegistry answers whether a juror may score an event.
type AssignmentRegistry interface {
	IsAssigned(ctx context.Context, juryID, eventID string) (bool, error)
}

// Repository persists jury assignments. Create returns ErrDuplicateAssignment
// when the (JuryID, EventID) pair already exists.
type Repository interface {
	AssignmentRegistry
	Create(ctx context.Context, assignment Assignment) (Assignment, error)
	Delete(ctx context.Context, assignmentID string) (bool, error)
	List(ctx context.Context, eventID string) ([]Assignment, error)
	ListByJury(ctx context.Context, juryID string) ([]Assignment, error)
}
