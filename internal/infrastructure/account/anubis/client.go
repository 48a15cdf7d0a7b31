package anubis

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/riskibarqy/event-scoring/internal/domain/user"
	"github.com/riskibarqy/event-scoring/internal/platform/cache"
	"github.com/riskibarqy/event-scoring/internal/platform/logging"
	"github.com/riskibarqy/event-scoring/internal/platform/resilience"
	"github.com/riskibarqy/event-scoring/internal/usecase"
)

var errAnubisTransient = errors.New("anubis transient failure")

type Config struct {
	BaseURL        string
	IntrospectPath string
	AdminKey       string
	CacheTTL       time.Duration
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client verifies bearer tokens against the Anubis introspection endpoint.
type Client struct {
	httpClient    *http.Client
	introspectURL string
	adminKey      string
	breaker       *resilience.Breaker
	principals    *cache.Store
	logger        *logging.Logger
}

func NewClient(httpClient *http.Client, cfg Config, logger *logging.Logger) *Client {
	if logger == nil {
		logger = logging.Default()
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}

	client := &Client{
		httpClient:    httpClient,
		introspectURL: buildURL(cfg.BaseURL, cfg.IntrospectPath),
		adminKey:      strings.TrimSpace(cfg.AdminKey),
		logger:        logger,
	}
	if cfg.CacheTTL > 0 {
		client.principals = cache.NewStore(cfg.CacheTTL)
	}
	client.breaker = resilience.NewBreaker("anubis-introspect", cfg.CircuitBreaker, isCircuitFailure, func(from, to string) {
		logger.Warn("anubis circuit breaker state changed", "from", from, "to", to)
	})

	return client
}

func (c *Client) VerifyAccessToken(ctx context.Context, token string) (user.Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return user.Principal{}, fmt.Errorf("%w: token is required", usecase.ErrUnauthorized)
	}

	if c.principals == nil {
		return c.introspectGuarded(ctx, token)
	}

	v, err := c.principals.GetOrLoad(ctx, "principal:"+hashToken(token), func(ctx context.Context) (any, error) {
		return c.introspectGuarded(ctx, token)
	})
	if err != nil {
		return user.Principal{}, err
	}
	principal, _ := v.(user.Principal)
	return principal, nil
}

func (c *Client) introspectGuarded(ctx context.Context, token string) (user.Principal, error) {
	var principal user.Principal
	err := c.breaker.Do(func() error {
		var callErr error
		principal, callErr = c.introspect(ctx, token)
		return callErr
	})
	if errors.Is(err, resilience.ErrCircuitOpen) {
		return user.Principal{}, fmt.Errorf("%w: anubis circuit open", usecase.ErrDependencyUnavailable)
	}
	if err != nil {
		return user.Principal{}, err
	}
	return principal, nil
}

func (c *Client) introspect(ctx context.Context, token string) (user.Principal, error) {
	encoded, err := sonic.Marshal(introspectRequest{Token: token})
	if err != nil {
		return user.Principal{}, fmt.Errorf("marshal introspect request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.introspectURL, bytes.NewReader(encoded))
	if err != nil {
		return user.Principal{}, fmt.Errorf("create introspect request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.adminKey != "" {
		req.Header.Set("x-admin-key", c.adminKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return user.Principal{}, fmt.Errorf("%w: %w: request introspection: %w", usecase.ErrDependencyUnavailable, errAnubisTransient, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return user.Principal{}, fmt.Errorf("%w: %w: read introspect response: %w", usecase.ErrDependencyUnavailable, errAnubisTransient, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return user.Principal{}, fmt.Errorf("%w: introspection denied", usecase.ErrUnauthorized)
	case resp.StatusCode == http.StatusForbidden:
		// 403 means our admin key was rejected, not the caller's token.
		c.logger.ErrorContext(ctx, "anubis rejected admin key", "status_code", resp.StatusCode)
		return user.Principal{}, fmt.Errorf("%w: anubis rejected admin key", usecase.ErrDependencyUnavailable)
	case resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests:
		c.logger.WarnContext(ctx, "anubis introspection unavailable", "status_code", resp.StatusCode)
		return user.Principal{}, fmt.Errorf("%w: %w: status %d", usecase.ErrDependencyUnavailable, errAnubisTransient, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		c.logger.WarnContext(ctx, "anubis introspection non-200", "status_code", resp.StatusCode)
		return user.Principal{}, fmt.Errorf("%w: anubis introspection failed with status %d", usecase.ErrDependencyUnavailable, resp.StatusCode)
	}

	var decoded introspectResponse
	if err := sonic.Unmarshal(body, &decoded); err != nil {
		return user.Principal{}, fmt.Errorf("%w: unmarshal introspect response: %w", usecase.ErrDependencyUnavailable, err)
	}
	if !decoded.Active {
		return user.Principal{}, fmt.Errorf("%w: inactive token", usecase.ErrUnauthorized)
	}
	if strings.TrimSpace(decoded.UserID) == "" {
		return user.Principal{}, fmt.Errorf("%w: invalid introspect response: user_id is empty", usecase.ErrDependencyUnavailable)
	}

	return user.Principal{
		UserID: decoded.UserID,
		Email:  decoded.Email,
		Role:   user.HighestRole(decoded.Roles),
	}, nil
}

type introspectRequest struct {
	Token string `json:"token"`
}

type introspectResponse struct {
	Active bool     `json:"active"`
	UserID string   `json:"user_id"`
	Email  string   `json:"email"`
	Roles  []string `json:"roles"`
}
