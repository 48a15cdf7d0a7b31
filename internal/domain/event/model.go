package event

import (
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/event-scoring/internal/domain/scoring"
)

// Event is a competition whose participants are scored by assigned jurors.
type Event struct {
	ID          string
	Title       string
	EventType   string
	Location    string
	StartDate   time.Time
	IsPublished bool
	ScoreLimits scoring.Limits
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (e Event) Validate() error {
	if strings.TrimSpace(e.ID) == "" {
		return fmt.Errorf("event id is required")
	}
	if strings.TrimSpace(e.Title) == "" {
		return fmt.Errorf("event title is required")
	}
	return e.ScoreLimits.Validate()
}

// LocationOrTBD is what notifications print when the venue is unset.
func (e Event) LocationOrTBD() string {
	if loc := strings.TrimSpace(e.Location); loc != "" {
		return loc
	}
	return "TBD"
}
