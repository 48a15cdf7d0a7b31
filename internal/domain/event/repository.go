package event

import (
	"context"
	"time"

	"github.com/riskibarqy/event-scoring/internal/domain/scoring"
)

// Repository describes event persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, eventID string) (Event, bool, error)
	GetByIDs(ctx context.Context, eventIDs []string) ([]Event, error)
	// ListPublishedStartingBetween returns published events with from <= start <= to.
	ListPublishedStartingBetween(ctx context.Context, from, to time.Time) ([]Event, error)
	UpdateScoreLimits(ctx context.Context, eventID string, limits scoring.Limits) (Event, bool, error)
}
