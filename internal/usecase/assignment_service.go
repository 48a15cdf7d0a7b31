package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/event-scoring/internal/domain/event"
	"github.com/riskibarqy/event-scoring/internal/domain/jury"
	"github.com/riskibarqy/event-scoring/internal/platform/id"
	"github.com/riskibarqy/event-scoring/internal/platform/logging"
)

type AssignJuryInput struct {
	JuryID     string
	EventID    string
	AssignedBy string
}

type AssignmentService struct {
	juryRepo  jury.Repository
	eventRepo event.Repository
	idGen     id.Generator
	logger    *logging.Logger
	now       func() time.Time
}

func NewAssignmentService(juryRepo jury.Repository, eventRepo event.Repository, idGen id.Generator, logger *logging.Logger) *AssignmentService {
	if logger == nil {
		logger = logging.Default()
	}
	if idGen == nil {
		idGen = id.NewUUIDGenerator()
	}
	return &AssignmentService{
		juryRepo:  juryRepo,
		eventRepo: eventRepo,
		idGen:     idGen,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *AssignmentService) Assign(ctx context.Context, input AssignJuryInput) (jury.Assignment, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AssignmentService.Assign")
	defer span.End()

	input.JuryID = strings.TrimSpace(input.JuryID)
	input.EventID = strings.TrimSpace(input.EventID)
	if input.JuryID == "" {
		return jury.Assignment{}, fmt.Errorf("%w: jury_id is required", ErrInvalidInput)
	}
	if input.EventID == "" {
		return jury.Assignment{}, fmt.Errorf("%w: event_id is required", ErrInvalidInput)
	}

	if _, exists, err := s.eventRepo.GetByID(ctx, input.EventID); err != nil {
		return jury.Assignment{}, persistenceError(err, "get event event=%s", input.EventID)
	} else if !exists {
		return jury.Assignment{}, fmt.Errorf("%w: event=%s", ErrNotFound, input.EventID)
	}

	assignmentID, err := s.idGen.NewID()
	if err != nil {
		return jury.Assignment{}, fmt.Errorf("generate assignment id: %w", err)
	}

	created, err := s.juryRepo.Create(ctx, jury.Assignment{
		ID:         assignmentID,
		JuryID:     input.JuryID,
		EventID:    input.EventID,
		AssignedBy: strings.TrimSpace(input.AssignedBy),
		AssignedAt: s.now().UTC(),
	})
	if errors.Is(err, jury.ErrDuplicateAssignment) {
		return jury.Assignment{}, fmt.Errorf("%w: jury=%s already assigned to event=%s", ErrConflict, input.JuryID, input.EventID)
	}
	if err != nil {
		return jury.Assignment{}, persistenceError(err, "create assignment jury=%s event=%s", input.JuryID, input.EventID)
	}

	s.logger.InfoContext(ctx, "jury assigned", "assignment_id", created.ID, "jury_id", created.JuryID, "event_id", created.EventID)
	return created, nil
}

func (s *AssignmentService) Unassign(ctx context.Context, assignmentID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.AssignmentService.Unassign")
	defer span.End()

	assignmentID = strings.TrimSpace(assignmentID)
	if assignmentID == "" {
		return fmt.Errorf("%w: assignment_id is required", ErrInvalidInput)
	}

	deleted, err := s.juryRepo.Delete(ctx, assignmentID)
	if err != nil {
		return persistenceError(err, "delete assignment id=%s", assignmentID)
	}
	if !deleted {
		return fmt.Errorf("%w: assignment=%s", ErrNotFound, assignmentID)
	}

	s.logger.InfoContext(ctx, "jury unassigned", "assignment_id", assignmentID)
	return nil
}

// List returns assignments of one event, or all when eventID is empty.
func (s *AssignmentService) List(ctx context.Context, eventID string) ([]jury.Assignment, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AssignmentService.List")
	defer span.End()

	items, err := s.juryRepo.List(ctx, strings.TrimSpace(eventID))
	if err != nil {
		return nil, persistenceError(err, "list assignments event=%s", eventID)
	}
	return items, nil
}

// ListAssignedEvents returns the events a juror may score.
func (s *AssignmentService) ListAssignedEvents(ctx context.Context, juryID string) ([]event.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AssignmentService.ListAssignedEvents")
	defer span.End()

	juryID = strings.TrimSpace(juryID)
	if juryID == "" {
		return nil, fmt.Errorf("%w: jury_id is required", ErrInvalidInput)
	}

	assignments, err := s.juryRepo.ListByJury(ctx, juryID)
	if err != nil {
		return nil, persistenceError(err, "list assignments jury=%s", juryID)
	}
	if len(assignments) == 0 {
		return []event.Event{}, nil
	}

	eventIDs := make([]string, 0, len(assignments))
	for _, a := range assignments {
		eventIDs = append(eventIDs, a.EventID)
	}
	events, err := s.eventRepo.GetByIDs(ctx, eventIDs)
	if err != nil {
		return nil, persistenceError(err, "get assigned events jury=%s", juryID)
	}
	return events, nil
}
