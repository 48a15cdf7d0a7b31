package mailer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/event-scoring/internal/domain/notification"
	"github.com/riskibarqy/event-scoring/internal/platform/logging"
	"github.com/riskibarqy/event-scoring/internal/platform/resilience"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL = "https://api.resend.com"
	DefaultFrom    = "AI Verse <onboarding@resend.dev>"
	DefaultReplyTo = "teams.aiverse@gmail.com"
)

var (
	errResendTransient = crerr.New("resend transient failure")

	ErrMailerUnavailable = errors.New("mailer unavailable")
)

type ResendConfig struct {
	BaseURL        string
	APIKey         string
	From           string
	ReplyTo        string
	Timeout        time.Duration
	RatePerSecond  float64
	CircuitBreaker resilience.CircuitBreakerConfig
}

// ResendMailer posts HTML emails to the Resend REST API.
type ResendMailer struct {
	client   *fasthttp.Client
	endpoint string
	apiKey   string
	from     string
	replyTo  string
	timeout  time.Duration
	limiter  *rate.Limiter
	breaker  *resilience.Breaker
	logger   *logging.Logger
}

func NewResendMailer(cfg ResendConfig, logger *logging.Logger) (*ResendMailer, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, crerr.New("resend api key is required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	from := strings.TrimSpace(cfg.From)
	if from == "" {
		from = DefaultFrom
	}
	replyTo := strings.TrimSpace(cfg.ReplyTo)
	if replyTo == "" {
		replyTo = DefaultReplyTo
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	limit := rate.Inf
	if cfg.RatePerSecond > 0 {
		limit = rate.Limit(cfg.RatePerSecond)
	}

	m := &ResendMailer{
		client: &fasthttp.Client{
			Name:         "event-scoring-mailer",
			ReadTimeout:  timeout,
			WriteTimeout: timeout,
		},
		endpoint: baseURL + "/emails",
		apiKey:   strings.TrimSpace(cfg.APIKey),
		from:     from,
		replyTo:  replyTo,
		timeout:  timeout,
		limiter:  rate.NewLimiter(limit, 1),
		logger:   logger,
	}
	m.breaker = resilience.NewBreaker("resend", cfg.CircuitBreaker, isTransient, func(from, to string) {
		logger.Warn("resend circuit breaker state changed", "from", from, "to", to)
	})
	return m, nil
}

func (m *ResendMailer) Send(ctx context.Context, msg notification.Message) (string, error) {
	if strings.TrimSpace(msg.To) == "" {
		return "", crerr.New("recipient is required")
	}
	if err := m.limiter.Wait(ctx); err != nil {
		return "", crerr.Wrap(err, "wait for resend rate limit")
	}

	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.SetAttributes(
			attribute.String("mailer.provider", "resend"),
			attribute.String("mailer.subject", msg.Subject),
		)
	}

	var messageID string
	err := m.breaker.Do(func() error {
		var sendErr error
		messageID, sendErr = m.post(ctx, msg)
		return sendErr
	})
	if errors.Is(err, resilience.ErrCircuitOpen) {
		m.logger.WarnContext(ctx, "resend circuit breaker rejected request", "state", m.breaker.State())
		return "", fmt.Errorf("%w: resend circuit open", ErrMailerUnavailable)
	}
	if err != nil {
		return "", err
	}

	m.logger.InfoContext(ctx, "email sent", "provider", "resend", "message_id", messageID, "subject", msg.Subject)
	return messageID, nil
}

func (m *ResendMailer) post(ctx context.Context, msg notification.Message) (string, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(sendEmailRequest{
		From:    m.from,
		To:      []string{formatRecipient(msg.ToName, msg.To)},
		ReplyTo: m.replyTo,
		Subject: msg.Subject,
		HTML:    msg.HTML,
	}); err != nil {
		return "", crerr.Wrap(err, "marshal resend payload")
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(m.endpoint)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.SetBody(buf.B)

	deadline := time.Now().Add(m.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}

	if err := m.client.DoDeadline(req, resp, deadline); err != nil {
		return "", crerr.Wrapf(fmt.Errorf("%w: %w: %w", ErrMailerUnavailable, errResendTransient, err), "post %s", m.endpoint)
	}

	status := resp.StatusCode()
	body := resp.Body()
	if status/100 != 2 {
		statusErr := crerr.Newf("resend status=%d body=%s", status, abbreviate(body, 512))
		if status == fasthttp.StatusTooManyRequests || status >= fasthttp.StatusInternalServerError {
			return "", fmt.Errorf("%w: %w: %w", ErrMailerUnavailable, errResendTransient, statusErr)
		}
		return "", statusErr
	}

	var decoded sendEmailResponse
	if err := sonic.Unmarshal(body, &decoded); err != nil {
		return "", crerr.Wrap(err, "decode resend response")
	}
	return decoded.ID, nil
}

type sendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type sendEmailResponse struct {
	ID string `json:"id"`
}

func isTransient(err error) bool {
	return errors.Is(err, errResendTransient)
}

func formatRecipient(name, email string) string {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || strings.ContainsAny(name, "<>\"") {
		return email
	}
	return name + " <" + email + ">"
}

func abbreviate(body []byte, max int) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= max {
		return text
	}
	return text[:max] + "...(truncated)"
}
