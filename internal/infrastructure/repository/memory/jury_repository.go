package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/event-scoring/internal/domain/jury"
)

type JuryRepository struct {
	mu    sync.RWMutex
	items map[string]jury.Assignment
}

func NewJuryRepository(assignments []jury.Assignment) *JuryRepository {
	items := make(map[string]jury.Assignment, len(assignments))
	for _, a := range assignments {
		items[a.ID] = a
	}
	return &JuryRepository{items: items}
}

func (r *JuryRepository) IsAssigned(_ context.Context, juryID, eventID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.items {
		if a.JuryID == juryID && a.EventID == eventID {
			return true, nil
		}
	}
	return false, nil
}

func (r *JuryRepository) Create(_ context.Context, assignment jury.Assignment) (jury.Assignment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range r.items {
		if a.JuryID == assignment.JuryID && a.EventID == assignment.EventID {
			return jury.Assignment{}, jury.ErrDuplicateAssignment
		}
	}
	r.items[assignment.ID] = assignment
	return assignment, nil
}

func (r *JuryRepository) Delete(_ context.Context, assignmentID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[assignmentID]; !ok {
		return false, nil
	}
	delete(r.items, assignmentID)
	return true, nil
}

func (r *JuryRepository) List(_ context.Context, eventID string) ([]jury.Assignment, error) {
	return r.list(func(a jury.Assignment) bool { return eventID == "" || a.EventID == eventID }), nil
}

func (r *JuryRepository) ListByJury(_ context.Context, juryID string) ([]jury.Assignment, error) {
	return r.list(func(a jury.Assignment) bool { return a.JuryID == juryID }), nil
}

func (r *JuryRepository) list(keep func(jury.Assignment) bool) []jury.Assignment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]jury.Assignment, 0)
	for _, a := range r.items {
		if keep(a) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].AssignedAt.Equal(out[j].AssignedAt) {
			return out[i].AssignedAt.Before(out[j].AssignedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}
