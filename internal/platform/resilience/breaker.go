package resilience

import (
	"errors"
	"time"

	"github.com/sony/gobreaker"
)

var ErrCircuitOpen = errors.New("circuit breaker is open")

type CircuitBreakerConfig struct {
	Enabled          bool
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenMaxReq   int
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 5,
		OpenTimeout:      15 * time.Second,
		HalfOpenMaxReq:   2,
	}
}

// NormalizeCircuitBreakerConfig fills zero or negative fields with defaults.
func NormalizeCircuitBreakerConfig(cfg CircuitBreakerConfig) CircuitBreakerConfig {
	defaults := DefaultCircuitBreakerConfig()
	if cfg.FailureThreshold < 1 {
		cfg.FailureThreshold = defaults.FailureThreshold
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = defaults.OpenTimeout
	}
	if cfg.HalfOpenMaxReq < 1 {
		cfg.HalfOpenMaxReq = defaults.HalfOpenMaxReq
	}
	return cfg
}

// Breaker guards calls to one outbound dependency.
// A disabled breaker runs every call.
type Breaker struct {
	cb      *gobreaker.CircuitBreaker
	enabled bool
}

// NewBreaker trips after FailureThreshold consecutive failures. isFailure
// decides which errors count; nil counts every error.
func NewBreaker(name string, cfg CircuitBreakerConfig, isFailure func(error) bool, onStateChange func(from, to string)) *Breaker {
	cfg = NormalizeCircuitBreakerConfig(cfg)
	threshold := uint32(cfg.FailureThreshold)

	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: uint32(cfg.HalfOpenMaxReq),
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
	}
	if isFailure != nil {
		settings.IsSuccessful = func(err error) bool {
			return err == nil || !isFailure(err)
		}
	}
	if onStateChange != nil {
		settings.OnStateChange = func(_ string, from, to gobreaker.State) {
			onStateChange(from.String(), to.String())
		}
	}

	return &Breaker{
		cb:      gobreaker.NewCircuitBreaker(settings),
		enabled: cfg.Enabled,
	}
}

// Do runs fn through the breaker. Rejections are reported as ErrCircuitOpen.
func (b *Breaker) Do(fn func() error) error {
	if b == nil || !b.enabled {
		return fn()
	}

	_, err := b.cb.Execute(func() (interface{}, error) {
		return nil, fn()
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return ErrCircuitOpen
	}
	return err
}

func (b *Breaker) State() string {
	if b == nil || !b.enabled {
		return "disabled"
	}
	return b.cb.State().String()
}
