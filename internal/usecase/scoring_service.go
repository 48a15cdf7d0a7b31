package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/event-scoring/internal/domain/event"
	"github.com/riskibarqy/event-scoring/internal/domain/jury"
	"github.com/riskibarqy/event-scoring/internal/domain/participant"
	"github.com/riskibarqy/event-scoring/internal/domain/scoring"
	"github.com/riskibarqy/event-scoring/internal/platform/id"
	"github.com/riskibarqy/event-scoring/internal/platform/logging"
	"github.com/riskibarqy/event-scoring/internal/platform/metrics"
)

type SubmitScoreInput struct {
	EventID       string
	ParticipantID string
	JuryID        string
	Scores        scoring.Scores
	Feedback      string
}

// EvaluationRow is one participant on a juror's scoring sheet. Submission is
// nil until the juror scores the participant.
type EvaluationRow struct {
	Participant participant.Participant
	Submission  *scoring.Submission
}

type EvaluationSheet struct {
	Event  event.Event
	Rows   []EvaluationRow
	Scored int
}

// LeaderboardRow joins an aggregated result with the participant record.
type LeaderboardRow struct {
	scoring.Result
	Participant participant.Participant
}

type Leaderboard struct {
	Event event.Event
	Rows  []LeaderboardRow
}

type ScoringService struct {
	scoringRepo     scoring.Repository
	eventRepo       event.Repository
	participantRepo participant.Repository
	assignments     jury.AssignmentRegistry
	idGen           id.Generator
	metrics         *metrics.Registry
	logger          *logging.Logger
	now             func() time.Time
}

func NewScoringService(
	scoringRepo scoring.Repository,
	eventRepo event.Repository,
	participantRepo participant.Repository,
	assignments jury.AssignmentRegistry,
	idGen id.Generator,
	metricsRegistry *metrics.Registry,
	logger *logging.Logger,
) *ScoringService {
	if logger == nil {
		logger = logging.Default()
	}
	if idGen == nil {
		idGen = id.NewUUIDGenerator()
	}

	return &ScoringService{
		scoringRepo:     scoringRepo,
		eventRepo:       eventRepo,
		participantRepo: participantRepo,
		assignments:     assignments,
		idGen:           idGen,
		metrics:         metricsRegistry,
		logger:          logger,
		now:             time.Now,
	}
}

// SubmitScore stores a juror's scores for one participant. A second call for
// the same (participant, juror) pair replaces the first.
func (s *ScoringService) SubmitScore(ctx context.Context, input SubmitScoreInput) (out scoring.Submission, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.SubmitScore")
	defer span.End()
	defer func() { s.metrics.ScoreSubmitted(err) }()

	input.EventID = strings.TrimSpace(input.EventID)
	input.ParticipantID = strings.TrimSpace(input.ParticipantID)
	input.JuryID = strings.TrimSpace(input.JuryID)
	input.Feedback = strings.TrimSpace(input.Feedback)

	if input.EventID == "" {
		return scoring.Submission{}, fmt.Errorf("%w: event_id is required", ErrInvalidInput)
	}
	if input.ParticipantID == "" {
		return scoring.Submission{}, fmt.Errorf("%w: participant_id is required", ErrInvalidInput)
	}
	if input.JuryID == "" {
		return scoring.Submission{}, fmt.Errorf("%w: jury_id is required", ErrInvalidInput)
	}

	if err := s.ensureAssigned(ctx, input.JuryID, input.EventID); err != nil {
		return scoring.Submission{}, err
	}

	ev, err := s.loadEvent(ctx, input.EventID)
	if err != nil {
		return scoring.Submission{}, err
	}

	p, exists, err := s.participantRepo.GetByID(ctx, input.ParticipantID)
	if err != nil {
		return scoring.Submission{}, persistenceError(err, "get participant participant=%s", input.ParticipantID)
	}
	if !exists || p.EventID != ev.ID {
		return scoring.Submission{}, fmt.Errorf("%w: participant=%s is not registered for event=%s", ErrInvalidInput, input.ParticipantID, ev.ID)
	}

	if err := ev.ScoreLimits.Check(input.Scores); err != nil {
		return scoring.Submission{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	submissionID, err := s.idGen.NewID()
	if err != nil {
		return scoring.Submission{}, fmt.Errorf("generate submission id: %w", err)
	}

	now := s.now().UTC()
	stored, err := s.scoringRepo.Upsert(ctx, scoring.Submission{
		ID:            submissionID,
		ParticipantID: input.ParticipantID,
		JuryID:        input.JuryID,
		EventID:       ev.ID,
		Scores:        input.Scores,
		Feedback:      input.Feedback,
		SubmittedAt:   now,
		UpdatedAt:     now,
	})
	if err != nil {
		return scoring.Submission{}, persistenceError(err, "upsert score participant=%s jury=%s", input.ParticipantID, input.JuryID)
	}

	s.logger.InfoContext(ctx, "score submitted",
		"event_id", ev.ID,
		"participant_id", stored.ParticipantID,
		"jury_id", stored.JuryID,
		"total_score", stored.TotalScore(),
	)
	return stored, nil
}

// GetMyScore returns the caller's own submission for a participant.
func (s *ScoringService) GetMyScore(ctx context.Context, juryID, eventID, participantID string) (scoring.Submission, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.GetMyScore")
	defer span.End()

	juryID = strings.TrimSpace(juryID)
	eventID = strings.TrimSpace(eventID)
	participantID = strings.TrimSpace(participantID)
	if juryID == "" || eventID == "" || participantID == "" {
		return scoring.Submission{}, fmt.Errorf("%w: jury_id, event_id and participant_id are required", ErrInvalidInput)
	}
	if err := s.ensureAssigned(ctx, juryID, eventID); err != nil {
		return scoring.Submission{}, err
	}

	item, exists, err := s.scoringRepo.GetByParticipantAndJury(ctx, participantID, juryID)
	if err != nil {
		return scoring.Submission{}, persistenceError(err, "get score participant=%s jury=%s", participantID, juryID)
	}
	if !exists || item.EventID != eventID {
		return scoring.Submission{}, fmt.Errorf("%w: score participant=%s jury=%s", ErrNotFound, participantID, juryID)
	}
	return item, nil
}

func (s *ScoringService) ListMyScores(ctx context.Context, juryID, eventID string) ([]scoring.Submission, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.ListMyScores")
	defer span.End()

	juryID = strings.TrimSpace(juryID)
	eventID = strings.TrimSpace(eventID)
	if juryID == "" || eventID == "" {
		return nil, fmt.Errorf("%w: jury_id and event_id are required", ErrInvalidInput)
	}
	if err := s.ensureAssigned(ctx, juryID, eventID); err != nil {
		return nil, err
	}

	items, err := s.scoringRepo.ListByJuryAndEvent(ctx, juryID, eventID)
	if err != nil {
		return nil, persistenceError(err, "list scores jury=%s event=%s", juryID, eventID)
	}
	return items, nil
}

// EvaluationSheet lists the event's participants in registration order with
// the caller's submission attached where one exists.
func (s *ScoringService) EvaluationSheet(ctx context.Context, juryID, eventID string) (EvaluationSheet, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.EvaluationSheet")
	defer span.End()

	mine, err := s.ListMyScores(ctx, juryID, eventID)
	if err != nil {
		return EvaluationSheet{}, err
	}

	ev, err := s.loadEvent(ctx, eventID)
	if err != nil {
		return EvaluationSheet{}, err
	}

	participants, err := s.participantRepo.ListByEvent(ctx, ev.ID)
	if err != nil {
		return EvaluationSheet{}, persistenceError(err, "list participants event=%s", ev.ID)
	}

	byParticipant := make(map[string]scoring.Submission, len(mine))
	for _, item := range mine {
		byParticipant[item.ParticipantID] = item
	}

	sheet := EvaluationSheet{Event: ev, Rows: make([]EvaluationRow, 0, len(participants))}
	for _, p := range participants {
		row := EvaluationRow{Participant: p}
		if item, ok := byParticipant[p.ID]; ok {
			item := item
			row.Submission = &item
			sheet.Scored++
		}
		sheet.Rows = append(sheet.Rows, row)
	}
	return sheet, nil
}

// Leaderboard aggregates every submission of the event into provisional
// ranks. An event without submissions yields an empty board.
func (s *ScoringService) Leaderboard(ctx context.Context, eventID string) (Leaderboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.Leaderboard")
	defer span.End()

	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return Leaderboard{}, fmt.Errorf("%w: event_id is required", ErrInvalidInput)
	}

	ev, exists, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return Leaderboard{}, persistenceError(err, "get event event=%s", eventID)
	}
	if !exists {
		return Leaderboard{Event: event.Event{ID: eventID}, Rows: []LeaderboardRow{}}, nil
	}

	submissions, err := s.scoringRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return Leaderboard{}, persistenceError(err, "list scores event=%s", eventID)
	}

	ranked := scoring.Aggregate(submissions)
	ids := make([]string, 0, len(ranked))
	for _, r := range ranked {
		ids = append(ids, r.ParticipantID)
	}

	participants := map[string]participant.Participant{}
	if len(ids) > 0 {
		items, err := s.participantRepo.GetByIDs(ctx, ids)
		if err != nil {
			return Leaderboard{}, persistenceError(err, "get participants event=%s", eventID)
		}
		for _, p := range items {
			participants[p.ID] = p
		}
	}

	rows := make([]LeaderboardRow, 0, len(ranked))
	for _, r := range ranked {
		p, ok := participants[r.ParticipantID]
		if !ok {
			p = participant.Participant{ID: r.ParticipantID, EventID: eventID}
		}
		rows = append(rows, LeaderboardRow{Result: r, Participant: p})
	}

	s.metrics.LeaderboardComputed(eventID, len(rows))
	return Leaderboard{Event: ev, Rows: rows}, nil
}

func (s *ScoringService) ensureAssigned(ctx context.Context, juryID, eventID string) error {
	assigned, err := s.assignments.IsAssigned(ctx, juryID, eventID)
	if err != nil {
		return persistenceError(err, "check assignment jury=%s event=%s", juryID, eventID)
	}
	if !assigned {
		return fmt.Errorf("%w: jury=%s is not assigned to event=%s", ErrForbidden, juryID, eventID)
	}
	return nil
}

func (s *ScoringService) loadEvent(ctx context.Context, eventID string) (event.Event, error) {
	ev, exists, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return event.Event{}, persistenceError(err, "get event event=%s", eventID)
	}
	if !exists {
		return event.Event{}, fmt.Errorf("%w: event=%s", ErrNotFound, eventID)
	}
	return ev, nil
}
