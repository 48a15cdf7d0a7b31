package usecase

import (
	"time"

	"github.com/riskibarqy/event-scoring/internal/domain/event"
	"github.com/riskibarqy/event-scoring/internal/domain/jury"
	"github.com/riskibarqy/event-scoring/internal/domain/participant"
	"github.com/riskibarqy/event-scoring/internal/domain/scoring"
	cacherepo "github.com/riskibarqy/event-scoring/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/event-scoring/internal/infrastructure/repository/memory"
	basecache "github.com/riskibarqy/event-scoring/internal/platform/cache"
	"github.com/riskibarqy/event-scoring/internal/platform/id"
	"github.com/riskibarqy/event-scoring/internal/platform/logging"
)

var fixtureNow = time.Date(2026, 5, 10, 8, 0, 0, 0, time.UTC)

type scenario struct {
	events       *memory.EventRepository
	participants *memory.ParticipantRepository
	juries       *memory.JuryRepository
	scores       *memory.ScoringRepository
	results      *memory.ResultRepository

	scoring *ScoringService
	result  *ResultService
}

// newScenario builds event E1 with participants P1 and P2 and jurors J1, J2
// assigned to it.
func newScenario() *scenario {
	s := &scenario{
		events: memory.NewEventRepository([]event.Event{
			{ID: "E1", Title: "AI Verse Hackathon", IsPublished: true, ScoreLimits: scoring.DefaultLimits()},
			{ID: "E2", Title: "Pitch Day", IsPublished: true, ScoreLimits: scoring.DefaultLimits()},
		}),
		participants: memory.NewParticipantRepository([]participant.Participant{
			{ID: "P1", EventID: "E1", TeamName: "Neural Ninjas", TeamLeaderName: "Rina", IsTeamRegistration: true, Status: participant.StatusApproved, CreatedAt: fixtureNow},
			{ID: "P2", EventID: "E1", TeamLeaderName: "Budi", Status: participant.StatusApproved, CreatedAt: fixtureNow.Add(time.Minute)},
			{ID: "P9", EventID: "E2", TeamLeaderName: "Andi", Status: participant.StatusApproved, CreatedAt: fixtureNow},
		}),
		juries: memory.NewJuryRepository([]jury.Assignment{
			{ID: "a1", JuryID: "J1", EventID: "E1"},
			{ID: "a2", JuryID: "J2", EventID: "E1"},
		}),
		scores:  memory.NewScoringRepository(),
		results: memory.NewResultRepository(),
	}

	s.scoring = NewScoringService(s.scores, s.events, s.participants, s.juries, &id.Sequence{Prefix: "sub-"}, nil, logging.NewNop())
	s.scoring.now = func() time.Time { return fixtureNow }
	s.result = NewResultService(s.results, s.scores, s.events, s.participants, 2, nil, logging.NewNop())
	s.result.now = func() time.Time { return fixtureNow }
	return s
}

// newCachedScenario is newScenario with the result service reading events and
// results through the read cache, as the API runs by default.
func newCachedScenario() *scenario {
	s := newScenario()
	store := basecache.NewStore(time.Minute)
	s.result = NewResultService(
		cacherepo.NewResultRepository(s.results, store),
		s.scores,
		cacherepo.NewEventRepository(s.events, store),
		s.participants,
		2,
		nil,
		logging.NewNop(),
	)
	s.result.now = func() time.Time { return fixtureNow }
	return s
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }
