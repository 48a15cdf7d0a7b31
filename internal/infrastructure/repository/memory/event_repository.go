package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/riskibarqy/event-scoring/internal/domain/event"
	"github.com/riskibarqy/event-scoring/internal/domain/scoring"
)

type EventRepository struct {
	mu     sync.RWMutex
	items  map[string]event.Event
	orders []string
}

func NewEventRepository(events []event.Event) *EventRepository {
	items := make(map[string]event.Event, len(events))
	orders := make([]string, 0, len(events))

	for _, ev := range events {
		if ev.ScoreLimits == (scoring.Limits{}) {
			ev.ScoreLimits = scoring.DefaultLimits()
		}
		items[ev.ID] = ev
		orders = append(orders, ev.ID)
	}

	return &EventRepository{
		items:  items,
		orders: orders,
	}
}

func (r *EventRepository) GetByID(_ context.Context, eventID string) (event.Event, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ev, ok := r.items[eventID]
	if !ok {
		return event.Event{}, false, nil
	}
	return ev, true, nil
}

func (r *EventRepository) GetByIDs(_ context.Context, eventIDs []string) ([]event.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]event.Event, 0, len(eventIDs))
	seen := make(map[string]struct{}, len(eventIDs))
	for _, id := range eventIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if ev, ok := r.items[id]; ok {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (r *EventRepository) ListPublishedStartingBetween(_ context.Context, from, to time.Time) ([]event.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]event.Event, 0)
	for _, id := range r.orders {
		ev := r.items[id]
		if !ev.IsPublished || ev.StartDate.Before(from) || ev.StartDate.After(to) {
			continue
		}
		out = append(out, ev)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartDate.Before(out[j].StartDate) })
	return out, nil
}

func (r *EventRepository) UpdateScoreLimits(_ context.Context, eventID string, limits scoring.Limits) (event.Event, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ev, ok := r.items[eventID]
	if !ok {
		return event.Event{}, false, nil
	}
	ev.ScoreLimits = limits
	ev.UpdatedAt = time.Now().UTC()
	r.items[eventID] = ev
	return ev, true, nil
}
