package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/event-scoring/internal/domain/result"
)

type ResultRepository struct {
	mu    sync.RWMutex
	items map[string]result.Result
}

func NewResultRepository() *ResultRepository {
	return &ResultRepository{items: make(map[string]result.Result)}
}

func (r *ResultRepository) Upsert(_ context.Context, item result.Result) (result.Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := resultKey(item.EventID, item.ParticipantID)
	if existing, ok := r.items[key]; ok {
		item.CreatedAt = existing.CreatedAt
	}
	r.items[key] = item
	return item, nil
}

func (r *ResultRepository) Get(_ context.Context, eventID, participantID string) (result.Result, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[resultKey(eventID, participantID)]
	if !ok {
		return result.Result{}, false, nil
	}
	return item, true, nil
}

func (r *ResultRepository) ListByEvent(_ context.Context, eventID string) ([]result.Result, error) {
	return r.list(func(item result.Result) bool { return item.EventID == eventID }), nil
}

func (r *ResultRepository) ListPublished(_ context.Context, eventID string) ([]result.Result, error) {
	return r.list(func(item result.Result) bool {
		return item.IsPublished && (eventID == "" || item.EventID == eventID)
	}), nil
}

func (r *ResultRepository) list(keep func(result.Result) bool) []result.Result {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]result.Result, 0)
	for _, item := range r.items {
		if keep(item) {
			out = append(out, item)
		}
	}
	result.SortByRank(out)
	return out
}

func resultKey(eventID, participantID string) string {
	return eventID + "::" + participantID
}
