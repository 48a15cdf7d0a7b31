package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/event-scoring/internal/domain/event"
	"github.com/riskibarqy/event-scoring/internal/domain/scoring"
	"github.com/riskibarqy/event-scoring/internal/platform/logging"
)

type EventService struct {
	eventRepo event.Repository
	logger    *logging.Logger
}

func NewEventService(eventRepo event.Repository, logger *logging.Logger) *EventService {
	if logger == nil {
		logger = logging.Default()
	}
	return &EventService{eventRepo: eventRepo, logger: logger}
}

func (s *EventService) Get(ctx context.Context, eventID string) (event.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.Get")
	defer span.End()

	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return event.Event{}, fmt.Errorf("%w: event_id is required", ErrInvalidInput)
	}
	ev, exists, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return event.Event{}, persistenceError(err, "get event event=%s", eventID)
	}
	if !exists {
		return event.Event{}, fmt.Errorf("%w: event=%s", ErrNotFound, eventID)
	}
	return ev, nil
}

// UpdateScoreLimits replaces the per-category maxima of an event. Existing
// submissions are not re-validated.
func (s *EventService) UpdateScoreLimits(ctx context.Context, eventID string, limits scoring.Limits) (event.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.UpdateScoreLimits")
	defer span.End()

	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return event.Event{}, fmt.Errorf("%w: event_id is required", ErrInvalidInput)
	}
	if err := limits.Validate(); err != nil {
		return event.Event{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	updated, exists, err := s.eventRepo.UpdateScoreLimits(ctx, eventID, limits)
	if err != nil {
		return event.Event{}, persistenceError(err, "update score limits event=%s", eventID)
	}
	if !exists {
		return event.Event{}, fmt.Errorf("%w: event=%s", ErrNotFound, eventID)
	}

	s.logger.InfoContext(ctx, "score limits updated", "event_id", eventID, "max_total", limits.MaxTotal())
	return updated, nil
}
