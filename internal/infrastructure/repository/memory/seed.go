package memory

import (
	"time"

	"github.com/riskibarqy/event-scoring/internal/domain/event"
	"github.com/riskibarqy/event-scoring/internal/domain/jury"
	"github.com/riskibarqy/event-scoring/internal/domain/participant"
	"github.com/riskibarqy/event-scoring/internal/domain/scoring"
)

const (
	EventIDHackathon = "evt-ai-verse-hackathon"
	EventIDPitchDay  = "evt-ai-verse-pitch-day"

	JuryIDAda   = "jury-ada"
	JuryIDGrace = "jury-grace"
)

var seedBase = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func SeedEvents() []event.Event {
	return []event.Event{
		{
			ID:          EventIDHackathon,
			Title:       "AI Verse Hackathon",
			EventType:   "hackathon",
			Location:    "Main Auditorium",
			StartDate:   seedBase.AddDate(0, 1, 0),
			IsPublished: true,
			ScoreLimits: scoring.DefaultLimits(),
			CreatedAt:   seedBase,
			UpdatedAt:   seedBase,
		},
		{
			ID:          EventIDPitchDay,
			Title:       "AI Verse Pitch Day",
			EventType:   "pitch",
			StartDate:   seedBase.AddDate(0, 2, 0),
			IsPublished: true,
			ScoreLimits: scoring.Limits{Innovation: 20, Technical: 10, Presentation: 10, Impact: 20},
			CreatedAt:   seedBase,
			UpdatedAt:   seedBase,
		},
	}
}

func SeedParticipants() []participant.Participant {
	return []participant.Participant{
		{
			ID:                 "reg-neural-ninjas",
			EventID:            EventIDHackathon,
			TeamName:           "Neural Ninjas",
			TeamLeaderName:     "Rina Putri",
			TeamLeaderEmail:    "rina@example.com",
			IsTeamRegistration: true,
			Status:             participant.StatusApproved,
			CreatedAt:          seedBase.Add(time.Hour),
		},
		{
			ID:                 "reg-gradient-gang",
			EventID:            EventIDHackathon,
			TeamName:           "Gradient Gang",
			TeamLeaderName:     "Budi Santoso",
			TeamLeaderEmail:    "budi@example.com",
			IsTeamRegistration: true,
			Status:             participant.StatusApproved,
			CreatedAt:          seedBase.Add(2 * time.Hour),
		},
		{
			ID:              "reg-solo-sari",
			EventID:         EventIDHackathon,
			TeamLeaderName:  "Sari Dewi",
			TeamLeaderEmail: "sari@example.com",
			Status:          participant.StatusPending,
			CreatedAt:       seedBase.Add(3 * time.Hour),
		},
		{
			ID:                 "reg-token-titans",
			EventID:            EventIDPitchDay,
			TeamName:           "Token Titans",
			TeamLeaderName:     "Andi Wijaya",
			TeamLeaderEmail:    "andi@example.com",
			IsTeamRegistration: true,
			Status:             participant.StatusApproved,
			CreatedAt:          seedBase.Add(4 * time.Hour),
		},
	}
}

func SeedAssignments() []jury.Assignment {
	return []jury.Assignment{
		{ID: "asg-1", JuryID: JuryIDAda, EventID: EventIDHackathon, AssignedAt: seedBase},
		{ID: "asg-2", JuryID: JuryIDGrace, EventID: EventIDHackathon, AssignedAt: seedBase},
		{ID: "asg-3", JuryID: JuryIDAda, EventID: EventIDPitchDay, AssignedAt: seedBase},
	}
}
