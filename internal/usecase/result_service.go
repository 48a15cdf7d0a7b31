package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/riskibarqy/event-scoring/internal/domain/event"
	"github.com/riskibarqy/event-scoring/internal/domain/participant"
	"github.com/riskibarqy/event-scoring/internal/domain/result"
	"github.com/riskibarqy/event-scoring/internal/domain/scoring"
	"github.com/riskibarqy/event-scoring/internal/platform/logging"
	"github.com/riskibarqy/event-scoring/internal/platform/metrics"
	"github.com/sourcegraph/conc/pool"
)

const defaultPublishWorkers = 4

// PublishInput carries the admin form. Rank and FinalScore are pointers so a
// missing value is distinguishable from zero.
type PublishInput struct {
	EventID       string
	ParticipantID string
	Rank          *int
	FinalScore    *float64
	Prize         string
	IsPublished   bool
	PublishedBy   string
}

type PublishOutcome struct {
	ParticipantID string
	Result        result.Result
	Err           error
}

// PublicResult is a published row enriched for display.
type PublicResult struct {
	result.Result
	TeamName   string
	LeaderName string
}

type PublicEventResults struct {
	Event   event.Event
	Results []PublicResult
}

type ResultService struct {
	resultRepo      result.Repository
	scoringRepo     scoring.Repository
	eventRepo       event.Repository
	participantRepo participant.Repository
	metrics         *metrics.Registry
	logger          *logging.Logger
	publishWorkers  int
	now             func() time.Time
}

func NewResultService(
	resultRepo result.Repository,
	scoringRepo scoring.Repository,
	eventRepo event.Repository,
	participantRepo participant.Repository,
	publishWorkers int,
	metricsRegistry *metrics.Registry,
	logger *logging.Logger,
) *ResultService {
	if logger == nil {
		logger = logging.Default()
	}
	if publishWorkers <= 0 {
		publishWorkers = defaultPublishWorkers
	}

	return &ResultService{
		resultRepo:      resultRepo,
		scoringRepo:     scoringRepo,
		eventRepo:       eventRepo,
		participantRepo: participantRepo,
		metrics:         metricsRegistry,
		logger:          logger,
		publishWorkers:  publishWorkers,
		now:             time.Now,
	}
}

// PrepareDraft pre-fills the publish form from the provisional leaderboard:
// rank is the provisional rank and the score is the average rounded to two
// decimals. Nothing is stored.
func (s *ResultService) PrepareDraft(ctx context.Context, eventID, participantID string) (result.Result, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResultService.PrepareDraft")
	defer span.End()

	eventID = strings.TrimSpace(eventID)
	participantID = strings.TrimSpace(participantID)
	if eventID == "" || participantID == "" {
		return result.Result{}, fmt.Errorf("%w: event_id and participant_id are required", ErrInvalidInput)
	}

	submissions, err := s.scoringRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return result.Result{}, persistenceError(err, "list scores event=%s", eventID)
	}

	row, ok := scoring.Find(scoring.Aggregate(submissions), participantID)
	if !ok {
		return result.Result{}, fmt.Errorf("%w: no scores for participant=%s in event=%s", ErrNotFound, participantID, eventID)
	}

	return result.Result{
		EventID:       eventID,
		ParticipantID: participantID,
		Rank:          row.ProvisionalRank,
		FinalScore:    scoring.RoundForDisplay(row.AverageScore, 2),
	}, nil
}

// Publish upserts one participant's result. Publishing the same input twice
// leaves the same row.
func (s *ResultService) Publish(ctx context.Context, input PublishInput) (out result.Result, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResultService.Publish")
	defer span.End()
	defer func() { s.metrics.ResultPublished(input.IsPublished, err) }()

	input.EventID = strings.TrimSpace(input.EventID)
	input.ParticipantID = strings.TrimSpace(input.ParticipantID)
	input.Prize = strings.TrimSpace(input.Prize)
	input.PublishedBy = strings.TrimSpace(input.PublishedBy)

	if err := validatePublishInput(input); err != nil {
		return result.Result{}, err
	}

	p, exists, err := s.participantRepo.GetByID(ctx, input.ParticipantID)
	if err != nil {
		return result.Result{}, persistenceError(err, "get participant participant=%s", input.ParticipantID)
	}
	if !exists || p.EventID != input.EventID {
		return result.Result{}, fmt.Errorf("%w: participant=%s is not registered for event=%s", ErrInvalidInput, input.ParticipantID, input.EventID)
	}

	now := s.now().UTC()
	stored, err := s.resultRepo.Upsert(ctx, result.Result{
		EventID:       input.EventID,
		ParticipantID: input.ParticipantID,
		FinalScore:    *input.FinalScore,
		Rank:          *input.Rank,
		Prize:         input.Prize,
		IsPublished:   input.IsPublished,
		PublishedBy:   input.PublishedBy,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		return result.Result{}, persistenceError(err, "upsert result event=%s participant=%s", input.EventID, input.ParticipantID)
	}

	s.logger.InfoContext(ctx, "result saved",
		"event_id", stored.EventID,
		"participant_id", stored.ParticipantID,
		"rank", stored.Rank,
		"is_published", stored.IsPublished,
	)
	return stored, nil
}

// PublishMany runs Publish for every input with bounded concurrency. Each
// participant succeeds or fails on its own; outcomes keep input order.
func (s *ResultService) PublishMany(ctx context.Context, eventID, publishedBy string, inputs []PublishInput) ([]PublishOutcome, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResultService.PublishMany")
	defer span.End()

	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return nil, fmt.Errorf("%w: event_id is required", ErrInvalidInput)
	}
	if len(inputs) == 0 {
		return nil, fmt.Errorf("%w: at least one result is required", ErrInvalidInput)
	}

	type indexed struct {
		pos     int
		outcome PublishOutcome
	}

	workers := pool.NewWithResults[indexed]().WithMaxGoroutines(s.publishWorkers)
	for i, input := range inputs {
		i, input := i, input
		input.EventID = eventID
		input.PublishedBy = publishedBy
		workers.Go(func() indexed {
			stored, err := s.Publish(ctx, input)
			return indexed{pos: i, outcome: PublishOutcome{
				ParticipantID: strings.TrimSpace(input.ParticipantID),
				Result:        stored,
				Err:           err,
			}}
		})
	}

	collected := workers.Wait()
	sort.Slice(collected, func(i, j int) bool { return collected[i].pos < collected[j].pos })

	out := make([]PublishOutcome, 0, len(collected))
	failed := 0
	for _, item := range collected {
		if item.outcome.Err != nil {
			failed++
		}
		out = append(out, item.outcome)
	}

	s.logger.InfoContext(ctx, "bulk publish finished", "event_id", eventID, "total", len(out), "failed", failed)
	return out, nil
}

// ListEventResults returns every saved row of the event, published or not.
func (s *ResultService) ListEventResults(ctx context.Context, eventID string) ([]result.Result, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResultService.ListEventResults")
	defer span.End()

	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return nil, fmt.Errorf("%w: event_id is required", ErrInvalidInput)
	}

	items, err := s.resultRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, persistenceError(err, "list results event=%s", eventID)
	}
	result.SortByRank(items)
	return items, nil
}

// ListPublished returns visible results grouped per event in rank order.
// An empty eventID covers every event.
func (s *ResultService) ListPublished(ctx context.Context, eventID string) ([]PublicEventResults, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResultService.ListPublished")
	defer span.End()

	eventID = strings.TrimSpace(eventID)
	items, err := s.resultRepo.ListPublished(ctx, eventID)
	if err != nil {
		return nil, persistenceError(err, "list published results event=%s", eventID)
	}

	visible := make([]result.Result, 0, len(items))
	for _, item := range items {
		if item.IsPublished {
			visible = append(visible, item)
		}
	}
	if len(visible) == 0 {
		return []PublicEventResults{}, nil
	}

	groups := result.GroupByEvent(visible)

	eventIDs := make([]string, 0, len(groups))
	participantIDs := make([]string, 0, len(visible))
	for _, g := range groups {
		eventIDs = append(eventIDs, g.EventID)
		for _, item := range g.Results {
			participantIDs = append(participantIDs, item.ParticipantID)
		}
	}

	events, err := s.eventRepo.GetByIDs(ctx, eventIDs)
	if err != nil {
		return nil, persistenceError(err, "get events for published results")
	}
	eventByID := make(map[string]event.Event, len(events))
	for _, ev := range events {
		eventByID[ev.ID] = ev
	}

	participants, err := s.participantRepo.GetByIDs(ctx, participantIDs)
	if err != nil {
		return nil, persistenceError(err, "get participants for published results")
	}
	participantByID := make(map[string]participant.Participant, len(participants))
	for _, p := range participants {
		participantByID[p.ID] = p
	}

	out := make([]PublicEventResults, 0, len(groups))
	for _, g := range groups {
		ev, ok := eventByID[g.EventID]
		if !ok {
			ev = event.Event{ID: g.EventID}
		}
		rows := make([]PublicResult, 0, len(g.Results))
		for _, item := range g.Results {
			p := participantByID[item.ParticipantID]
			teamName := participant.IndividualTeamName
			if p.ID != "" {
				teamName = p.DisplayTeamName()
			}
			rows = append(rows, PublicResult{Result: item, TeamName: teamName, LeaderName: p.TeamLeaderName})
		}
		out = append(out, PublicEventResults{Event: ev, Results: rows})
	}
	return out, nil
}

func validatePublishInput(input PublishInput) error {
	if input.EventID == "" {
		return fmt.Errorf("%w: event_id is required", ErrInvalidInput)
	}
	if input.ParticipantID == "" {
		return fmt.Errorf("%w: participant_id is required", ErrInvalidInput)
	}
	if input.Rank == nil {
		return fmt.Errorf("%w: rank is required", ErrInvalidInput)
	}
	if *input.Rank < 1 {
		return fmt.Errorf("%w: rank must be >= 1", ErrInvalidInput)
	}
	if input.FinalScore == nil {
		return fmt.Errorf("%w: final_score is required", ErrInvalidInput)
	}
	if v := *input.FinalScore; math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fmt.Errorf("%w: final_score must be a non-negative number", ErrInvalidInput)
	}
	return nil
}
