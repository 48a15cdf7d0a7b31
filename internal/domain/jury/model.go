package jury

import (
	"errors"
	"time"
)

var ErrDuplicateAssignment = errors.New("jury already assigned to event")

// Assignment authorizes a juror to score participants of one event.
type Assignment struct {
	ID         string
	JuryID     string
	EventID    string
	AssignedBy string
	AssignedAt time.Time
}
