package app

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/event-scoring/internal/config"
	"github.com/riskibarqy/event-scoring/internal/domain/notification"
	"github.com/riskibarqy/event-scoring/internal/infrastructure/account/anubis"
	"github.com/riskibarqy/event-scoring/internal/infrastructure/account/jwtauth"
	"github.com/riskibarqy/event-scoring/internal/infrastructure/mailer"
	"github.com/riskibarqy/event-scoring/internal/interfaces/httpapi"
	"github.com/riskibarqy/event-scoring/internal/platform/logging"
	"github.com/riskibarqy/event-scoring/internal/platform/resilience"
)

func newTokenVerifier(cfg config.Config, logger *logging.Logger) (httpapi.TokenVerifier, error) {
	switch cfg.AuthMode {
	case config.AuthModeJWT:
		verifier, err := jwtauth.NewVerifier(cfg.AuthJWTSecret, cfg.AuthJWTIssuer)
		if err != nil {
			return nil, fmt.Errorf("build jwt verifier: %w", err)
		}
		logger.Info("auth configured", "mode", cfg.AuthMode, "issuer", cfg.AuthJWTIssuer)
		return verifier, nil
	case config.AuthModeIntrospect:
		client := anubis.NewClient(
			&http.Client{Timeout: cfg.AnubisTimeout},
			anubis.Config{
				BaseURL:        cfg.AnubisBaseURL,
				IntrospectPath: cfg.AnubisIntrospectPath,
				AdminKey:       cfg.AnubisAdminKey,
				CacheTTL:       cfg.CacheTTL,
				CircuitBreaker: resilience.CircuitBreakerConfig{
					Enabled:          cfg.AnubisCircuitEnabled,
					FailureThreshold: cfg.AnubisCircuitFailureCount,
					OpenTimeout:      cfg.AnubisCircuitOpenTimeout,
					HalfOpenMaxReq:   cfg.AnubisCircuitHalfOpenMaxReq,
				},
			},
			logger,
		)
		logger.Info("auth configured", "mode", cfg.AuthMode, "base_url", cfg.AnubisBaseURL)
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported auth mode %q", cfg.AuthMode)
	}
}

func newMailer(cfg config.Config, logger *logging.Logger) (notification.Mailer, error) {
	if !cfg.ResendEnabled {
		logger.Info("resend disabled, emails will only be logged", "reason", "RESEND_ENABLED=false")
		return mailer.NewLogMailer(logger), nil
	}

	m, err := mailer.NewResendMailer(mailer.ResendConfig{
		BaseURL:       cfg.ResendBaseURL,
		APIKey:        cfg.ResendAPIKey,
		From:          cfg.ResendFrom,
		ReplyTo:       cfg.ResendReplyTo,
		Timeout:       cfg.ResendTimeout,
		RatePerSecond: cfg.ResendRatePerSecond,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.ResendCircuitEnabled,
			FailureThreshold: cfg.ResendCircuitFailureCount,
			OpenTimeout:      cfg.ResendCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.ResendCircuitHalfOpenMaxReq,
		},
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("build resend mailer: %w", err)
	}
	logger.Info("resend enabled", "base_url", cfg.ResendBaseURL, "rate_per_second", cfg.ResendRatePerSecond)
	return m, nil
}
