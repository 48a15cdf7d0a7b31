package cache

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/riskibarqy/event-scoring/internal/domain/event"
	"github.com/riskibarqy/event-scoring/internal/domain/scoring"
	basecache "github.com/riskibarqy/event-scoring/internal/platform/cache"
)

// EventRepository caches event lookups; score limit changes invalidate them.
type EventRepository struct {
	next  event.Repository
	cache *basecache.Store
}

func NewEventRepository(next event.Repository, cache *basecache.Store) *EventRepository {
	return &EventRepository{next: next, cache: cache}
}

func (r *EventRepository) GetByID(ctx context.Context, eventID string) (event.Event, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, eventKey(eventID), func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, eventID)
		if err != nil {
			return nil, err
		}
		return cachedEvent{value: item, exists: exists}, nil
	})
	if err != nil {
		return event.Event{}, false, err
	}

	cached, _ := v.(cachedEvent)
	return cached.value, cached.exists, nil
}

func (r *EventRepository) GetByIDs(ctx context.Context, eventIDs []string) ([]event.Event, error) {
	key := "event:ids:" + normalizedIDsKey(eventIDs)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.GetByIDs(ctx, eventIDs)
		if err != nil {
			return nil, err
		}
		return append([]event.Event(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]event.Event)
	return append([]event.Event(nil), items...), nil
}

// ListPublishedStartingBetween is time-window dependent and never cached.
func (r *EventRepository) ListPublishedStartingBetween(ctx context.Context, from, to time.Time) ([]event.Event, error) {
	return r.next.ListPublishedStartingBetween(ctx, from, to)
}

func (r *EventRepository) UpdateScoreLimits(ctx context.Context, eventID string, limits scoring.Limits) (event.Event, bool, error) {
	item, exists, err := r.next.UpdateScoreLimits(ctx, eventID, limits)
	if err != nil {
		return event.Event{}, false, err
	}
	r.cache.Delete(ctx, eventKey(eventID))
	r.cache.DeletePrefix(ctx, "event:ids:")
	return item, exists, nil
}

type cachedEvent struct {
	value  event.Event
	exists bool
}

func eventKey(eventID string) string {
	return "event:id:" + eventID
}

func normalizedIDsKey(ids []string) string {
	sorted := append([]string(nil), ids...)
	sort.Strings(sorted)
	return strings.Join(sorted, ",")
}
