package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/event-scoring/internal/domain/scoring"
	"github.com/riskibarqy/event-scoring/internal/usecase"
)

func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeaderboard")
	defer span.End()

	eventID := pathValue(r, "eventID")
	board, err := h.scoringService.Leaderboard(ctx, eventID)
	if err != nil {
		h.logger.WarnContext(ctx, "get leaderboard failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leaderboardToDTO(board))
}

func (h *Handler) ExportLeaderboardCSV(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportLeaderboardCSV")
	defer span.End()

	eventID := pathValue(r, "eventID")
	file, err := h.exportService.LeaderboardCSV(ctx, eventID)
	if err != nil {
		h.logger.WarnContext(ctx, "export leaderboard csv failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeFile(ctx, w, file)
}

func (h *Handler) ExportLeaderboardXLSX(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportLeaderboardXLSX")
	defer span.End()

	eventID := pathValue(r, "eventID")
	file, err := h.exportService.LeaderboardXLSX(ctx, eventID)
	if err != nil {
		h.logger.WarnContext(ctx, "export leaderboard xlsx failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeFile(ctx, w, file)
}

func (h *Handler) UpdateScoreLimits(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateScoreLimits")
	defer span.End()

	var req scoreLimitsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	eventID := pathValue(r, "eventID")
	item, err := h.eventService.UpdateScoreLimits(ctx, eventID, scoring.Limits{
		Innovation:   req.Innovation,
		Technical:    req.Technical,
		Presentation: req.Presentation,
		Impact:       req.Impact,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update score limits failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, eventToDTO(item))
}

func (h *Handler) ListJuryAssignments(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListJuryAssignments")
	defer span.End()

	eventID := strings.TrimSpace(r.URL.Query().Get("event_id"))
	items, err := h.assignmentService.List(ctx, eventID)
	if err != nil {
		h.logger.WarnContext(ctx, "list jury assignments failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]assignmentDTO, 0, len(items))
	for _, item := range items {
		out = append(out, assignmentToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) CreateJuryAssignment(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateJuryAssignment")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req createAssignmentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.assignmentService.Assign(ctx, usecase.AssignJuryInput{
		JuryID:     req.JuryID,
		EventID:    req.EventID,
		AssignedBy: principal.UserID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create jury assignment failed", "jury_id", req.JuryID, "event_id", req.EventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, assignmentToDTO(item))
}

func (h *Handler) DeleteJuryAssignment(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteJuryAssignment")
	defer span.End()

	assignmentID := pathValue(r, "assignmentID")
	if err := h.assignmentService.Unassign(ctx, assignmentID); err != nil {
		h.logger.WarnContext(ctx, "delete jury assignment failed", "assignment_id", assignmentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"id": assignmentID, "status": "deleted"})
}

func (h *Handler) SendTicket(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SendTicket")
	defer span.End()

	participantID := pathValue(r, "participantID")
	delivery, err := h.notificationService.SendTicket(ctx, participantID)
	if err != nil {
		h.logger.WarnContext(ctx, "send ticket failed", "participant_id", participantID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, deliveryToDTO(delivery))
}
