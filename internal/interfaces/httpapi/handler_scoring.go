package httpapi

import (
	"net/http"

	"github.com/riskibarqy/event-scoring/internal/domain/scoring"
	"github.com/riskibarqy/event-scoring/internal/usecase"
)

func (h *Handler) ListMyJuryEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMyJuryEvents")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.assignmentService.ListAssignedEvents(ctx, principal.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "list jury events failed", "jury_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]eventDTO, 0, len(items))
	for _, item := range items {
		out = append(out, eventToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetEvaluationSheet(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetEvaluationSheet")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	eventID := pathValue(r, "eventID")

	sheet, err := h.scoringService.EvaluationSheet(ctx, principal.UserID, eventID)
	if err != nil {
		h.logger.WarnContext(ctx, "get evaluation sheet failed", "jury_id", principal.UserID, "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, evaluationSheetToDTO(sheet))
}

func (h *Handler) GetMyScore(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMyScore")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	eventID := pathValue(r, "eventID")
	participantID := pathValue(r, "participantID")

	item, err := h.scoringService.GetMyScore(ctx, principal.UserID, eventID, participantID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, submissionToDTO(item))
}

func (h *Handler) SubmitScore(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitScore")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req submitScoreRequest
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

	item, err := h.scoringService.SubmitScore(ctx, usecase.SubmitScoreInput{
		EventID:       eventID,
		ParticipantID: participantID,
		JuryID:        principal.UserID,
		Scores: scoring.Scores{
			Innovation:   *req.Innovation,
			Technical:    *req.Technical,
			Presentation: *req.Presentation,
			Impact:       *req.Impact,
		},
		Feedback: req.Feedback,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "submit score failed",
			"jury_id", principal.UserID,
			"event_id", eventID,
			"participant_id", participantID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, submissionToDTO(item))
}
