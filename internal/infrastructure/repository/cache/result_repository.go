package cache

import (
	"context"

	"github.com/riskibarqy/event-scoring/internal/domain/result"
	basecache "github.com/riskibarqy/event-scoring/internal/platform/cache"
)

// ResultRepository caches the public results listing. Draft reads go straight
// to the backing repository.
type ResultRepository struct {
	next  result.Repository
	cache *basecache.Store
}

func NewResultRepository(next result.Repository, cache *basecache.Store) *ResultRepository {
	return &ResultRepository{next: next, cache: cache}
}

func (r *ResultRepository) Upsert(ctx context.Context, item result.Result) (result.Result, error) {
	stored, err := r.next.Upsert(ctx, item)
	if err != nil {
		return result.Result{}, err
	}
	r.cache.Delete(ctx, publishedKey(""))
	r.cache.Delete(ctx, publishedKey(item.EventID))
	return stored, nil
}

func (r *ResultRepository) Get(ctx context.Context, eventID, participantID string) (result.Result, bool, error) {
	return r.next.Get(ctx, eventID, participantID)
}

func (r *ResultRepository) ListByEvent(ctx context.Context, eventID string) ([]result.Result, error) {
	return r.next.ListByEvent(ctx, eventID)
}

func (r *ResultRepository) ListPublished(ctx context.Context, eventID string) ([]result.Result, error) {
	v, err := r.cache.GetOrLoad(ctx, publishedKey(eventID), func(ctx context.Context) (any, error) {
		items, err := r.next.ListPublished(ctx, eventID)
		if err != nil {
			return nil, err
		}
		return append([]result.Result(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]result.Result)
	return append([]result.Result{}, items...), nil
}

func publishedKey(eventID string) string {
	if eventID == "" {
		return "result:published:all"
	}
	return "result:published:event:" + eventID
}
