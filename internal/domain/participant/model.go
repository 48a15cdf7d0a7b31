package participant

import (
	"strings"
	"time"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// IndividualTeamName is shown for registrations without a team.
const IndividualTeamName = "Individual"

// Participant is one registration (solo or team) in an event.
type Participant struct {
	ID                 string
	EventID            string
	TeamName           string
	TeamLeaderName     string
	TeamLeaderEmail    string
	IsTeamRegistration bool
	Status             Status
	CreatedAt          time.Time
}

func (p Participant) DisplayTeamName() string {
	if !p.IsTeamRegistration || strings.TrimSpace(p.TeamName) == "" {
		return IndividualTeamName
	}
	return p.TeamName
}

func (p Participant) IsApproved() bool {
	return p.Status == StatusApproved
}
