package app

import (
	"context"
	"fmt"

	"github.com/riskibarqy/event-scoring/internal/config"
	"github.com/riskibarqy/event-scoring/internal/domain/event"
	"github.com/riskibarqy/event-scoring/internal/domain/jury"
	"github.com/riskibarqy/event-scoring/internal/domain/participant"
	"github.com/riskibarqy/event-scoring/internal/domain/result"
	"github.com/riskibarqy/event-scoring/internal/domain/scoring"
	"github.com/riskibarqy/event-scoring/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/event-scoring/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/event-scoring/internal/infrastructure/repository/postgres"
	basecache "github.com/riskibarqy/event-scoring/internal/platform/cache"
	"github.com/riskibarqy/event-scoring/internal/platform/logging"
)

type repositories struct {
	events       event.Repository
	participants participant.Repository
	jury         jury.Repository
	scores       scoring.Repository
	results      result.Repository
	close        func() error
}

func buildRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, error) {
	var repos repositories

	switch cfg.StorageDriver {
	case config.StoragePostgres:
		db, err := openDatabase(ctx, cfg, logger)
		if err != nil {
			return repositories{}, err
		}
		repos = repositories{
			events:       postgres.NewEventRepository(db),
			participants: postgres.NewParticipantRepository(db),
			jury:         postgres.NewJuryRepository(db),
			scores:       postgres.NewScoringRepository(db),
			results:      postgres.NewResultRepository(db),
			close:        db.Close,
		}
	case config.StorageMemory:
		logger.Warn("using in-memory storage with seed data", "app_env", cfg.AppEnv)
		repos = repositories{
			events:       memory.NewEventRepository(memory.SeedEvents()),
			participants: memory.NewParticipantRepository(memory.SeedParticipants()),
			jury:         memory.NewJuryRepository(memory.SeedAssignments()),
			scores:       memory.NewScoringRepository(),
			results:      memory.NewResultRepository(),
			close:        func() error { return nil },
		}
	default:
		return repositories{}, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}

	// Scores and assignments stay uncached: every submit must see the
	// latest assignment and the leaderboard must see every score.
	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		repos.events = cache.NewEventRepository(repos.events, store)
		repos.results = cache.NewResultRepository(repos.results, store)
	}

	return repos, nil
}
