package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/event-scoring/internal/domain/user"
	"github.com/riskibarqy/event-scoring/internal/platform/logging"
	"github.com/riskibarqy/event-scoring/internal/usecase"
)

const maxRequestBodyBytes = 1 << 20

type Handler struct {
	scoringService      *usecase.ScoringService
	resultService       *usecase.ResultService
	assignmentService   *usecase.AssignmentService
	eventService        *usecase.EventService
	exportService       *usecase.ExportService
	notificationService *usecase.NotificationService
	logger              *logging.Logger
	validator           *validator.Validate
}

func NewHandler(
	scoringService *usecase.ScoringService,
	resultService *usecase.ResultService,
	assignmentService *usecase.AssignmentService,
	eventService *usecase.EventService,
	exportService *usecase.ExportService,
	notificationService *usecase.NotificationService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		scoringService:      scoringService,
		resultService:       resultService,
		assignmentService:   assignmentService,
		eventService:        eventService,
		exportService:       exportService,
		notificationService: notificationService,
		logger:              logger,
		validator:           validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func decodeJSON(r *http.Request, target any) error {
	decoder := sonic.ConfigDefault.NewDecoder(io.LimitReader(r.Body, maxRequestBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(target); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: request body is required", usecase.ErrInvalidInput)
		}
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func requirePrincipal(ctx context.Context) (user.Principal, error) {
	principal, ok := principalFromContext(ctx)
	if !ok {
		return user.Principal{}, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized)
	}
	return principal, nil
}

func pathValue(r *http.Request, name string) string {
	return strings.TrimSpace(r.PathValue(name))
}
