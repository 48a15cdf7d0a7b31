package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/event-scoring/internal/usecase"
)

// ListPublishedResults is unauthenticated and only ever returns published rows.
func (h *Handler) ListPublishedResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPublishedResults")
	defer span.End()

	eventID := strings.TrimSpace(r.URL.Query().Get("event_id"))

	groups, err := h.resultService.ListPublished(ctx, eventID)
	if err != nil {
		h.logger.WarnContext(ctx, "list published results failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, publicEventResultsToDTO(groups))
}

func (h *Handler) ListEventResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListEventResults")
	defer span.End()

	eventID := pathValue(r, "eventID")
	items, err := h.resultService.ListEventResults(ctx, eventID)
	if err != nil {
		h.logger.WarnContext(ctx, "list event results failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]resultDTO, 0, len(items))
	for _, item := range items {
		out = append(out, resultToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetResultDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetResultDraft")
	defer span.End()

	eventID := pathValue(r, "eventID")
	participantID := pathValue(r, "participantID")

	draft, err := h.resultService.PrepareDraft(ctx, eventID, participantID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, resultToDTO(draft))
}

func (h *Handler) PublishResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PublishResult")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req publishResultRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	eventID := pathValue(r, "eventID")
	participantID := pathValue(r, "participantID")

	item, err := h.resultService.Publish(ctx, usecase.PublishInput{
		EventID:       eventID,
		ParticipantID: participantID,
		Rank:          req.Rank,
		FinalScore:    req.FinalScore,
		Prize:         req.Prize,
		IsPublished:   req.IsPublished,
		PublishedBy:   principal.UserID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "publish result failed",
			"event_id", eventID,
			"participant_id", participantID,
			"admin_id", principal.UserID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, resultToDTO(item))
}

// PublishResultsBulk applies every item independently; per-item failures are
// reported in the body and never fail the whole request.
func (h *Handler) PublishResultsBulk(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PublishResultsBulk")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req bulkPublishRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	eventID := pathValue(r, "eventID")
	inputs := make([]usecase.PublishInput, 0, len(req.Items))
	for _, item := range req.Items {
		inputs = append(inputs, usecase.PublishInput{
			ParticipantID: item.ParticipantID,
			Rank:          item.Rank,
			FinalScore:    item.FinalScore,
			Prize:         item.Prize,
			IsPublished:   item.IsPublished,
		})
	}

	outcomes, err := h.resultService.PublishMany(ctx, eventID, principal.UserID, inputs)
	if err != nil {
		h.logger.WarnContext(ctx, "bulk publish results failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	resp := bulkPublishResponseDTO{Outcomes: make([]publishOutcomeDTO, 0, len(outcomes))}
	for _, outcome := range outcomes {
		item := publishOutcomeDTO{ParticipantID: outcome.ParticipantID}
		if outcome.Err != nil {
			resp.Failed++
			item.Reason, item.Error = publicError(ctx, outcome.Err)
		} else {
			resp.Succeeded++
			dto := resultToDTO(outcome.Result)
			item.Result = &dto
		}
		resp.Outcomes = append(resp.Outcomes, item)
	}

	writeSuccess(ctx, w, http.StatusOK, resp)
}
