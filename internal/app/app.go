package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/event-scoring/internal/config"
	"github.com/riskibarqy/event-scoring/internal/interfaces/httpapi"
	idgen "github.com/riskibarqy/event-scoring/internal/platform/id"
	"github.com/riskibarqy/event-scoring/internal/platform/logging"
	"github.com/riskibarqy/event-scoring/internal/platform/metrics"
	"github.com/riskibarqy/event-scoring/internal/usecase"
)

// NewHTTPServer wires storage, identity, mail and use cases into the API
// server. The returned cleanup releases the storage pool.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	repos, err := buildRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	cleanup := repos.close

	verifier, err := newTokenVerifier(cfg, logger)
	if err != nil {
		_ = cleanup()
		return nil, nil, err
	}
	mail, err := newMailer(cfg, logger)
	if err != nil {
		_ = cleanup()
		return nil, nil, err
	}

	var registry *metrics.Registry
	if cfg.MetricsEnabled {
		registry = metrics.New()
	}

	ids := idgen.NewUUIDGenerator()
	scoringSvc := usecase.NewScoringService(
		repos.scores,
		repos.events,
		repos.participants,
		repos.jury,
		ids,
		registry,
		logger,
	)
	resultSvc := usecase.NewResultService(
		repos.results,
		repos.scores,
		repos.events,
		repos.participants,
		cfg.PublishWorkers,
		registry,
		logger,
	)
	assignmentSvc := usecase.NewAssignmentService(repos.jury, repos.events, ids, logger)
	eventSvc := usecase.NewEventService(repos.events, logger)
	exportSvc := usecase.NewExportService(scoringSvc)
	notificationSvc := usecase.NewNotificationService(
		repos.events,
		repos.participants,
		mail,
		cfg.NotifyWorkers,
		registry,
		logger,
	)

	handler := httpapi.NewHandler(
		scoringSvc,
		resultSvc,
		assignmentSvc,
		eventSvc,
		exportSvc,
		notificationSvc,
		logger,
	)
	router := httpapi.NewRouter(handler, verifier, logger, httpapi.RouterConfig{
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		InternalJobToken:   cfg.InternalJobToken,
		Metrics:            registry,
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, cleanup, nil
}
