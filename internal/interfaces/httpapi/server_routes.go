package httpapi

import (
	"net/http"

	"github.com/riskibarqy/event-scoring/internal/domain/user"
	"github.com/riskibarqy/event-scoring/internal/platform/metrics"
)

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, registry *metrics.Registry) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if registry != nil {
		mux.Handle("GET /metrics", registry.Handler())
	}
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/results", handler.ListPublishedResults)
}

func registerJuryRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	jury := func(h http.HandlerFunc) http.Handler {
		return RequireAuth(verifier, RequireRole(h, user.RoleJury, user.RoleAdmin))
	}

	mux.Handle("GET /v1/jury/events", jury(handler.ListMyJuryEvents))
	mux.Handle("GET /v1/jury/events/{eventID}/scores", jury(handler.GetEvaluationSheet))
	mux.Handle("GET /v1/jury/events/{eventID}/participants/{participantID}/score", jury(handler.GetMyScore))
	mux.Handle("PUT /v1/jury/events/{eventID}/participants/{participantID}/score", jury(handler.SubmitScore))
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	admin := func(h http.HandlerFunc) http.Handler {
		return RequireAuth(verifier, RequireRole(h, user.RoleAdmin))
	}

	mux.Handle("GET /v1/admin/events/{eventID}/leaderboard", admin(handler.GetLeaderboard))
	mux.Handle("GET /v1/admin/events/{eventID}/leaderboard.csv", admin(handler.ExportLeaderboardCSV))
	mux.Handle("GET /v1/admin/events/{eventID}/leaderboard.xlsx", admin(handler.ExportLeaderboardXLSX))
	mux.Handle("PUT /v1/admin/events/{eventID}/score-limits", admin(handler.UpdateScoreLimits))

	mux.Handle("GET /v1/admin/events/{eventID}/results", admin(handler.ListEventResults))
	mux.Handle("GET /v1/admin/events/{eventID}/results/{participantID}/draft", admin(handler.GetResultDraft))
	mux.Handle("PUT /v1/admin/events/{eventID}/results/{participantID}", admin(handler.PublishResult))
	mux.Handle("POST /v1/admin/events/{eventID}/results:bulk", admin(handler.PublishResultsBulk))

	mux.Handle("GET /v1/admin/jury-assignments", admin(handler.ListJuryAssignments))
	mux.Handle("POST /v1/admin/jury-assignments", admin(handler.CreateJuryAssignment))
	mux.Handle("DELETE /v1/admin/jury-assignments/{assignmentID}", admin(handler.DeleteJuryAssignment))

	mux.Handle("POST /v1/admin/participants/{participantID}/ticket", admin(handler.SendTicket))
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/send-reminders", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunSendRemindersJob)))
}
