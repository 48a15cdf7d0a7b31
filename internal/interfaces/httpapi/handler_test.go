package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/riskibarqy/event-scoring/internal/domain/user"
	"github.com/riskibarqy/event-scoring/internal/infrastructure/mailer"
	"github.com/riskibarqy/event-scoring/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/event-scoring/internal/platform/id"
	"github.com/riskibarqy/event-scoring/internal/platform/logging"
	"github.com/riskibarqy/event-scoring/internal/platform/metrics"
	"github.com/riskibarqy/event-scoring/internal/usecase"
	"github.com/stretchr/testify/require"
)

const (
	adminToken   = "token-admin"
	adaToken     = "token-ada"
	graceToken   = "token-grace"
	studentToken = "token-student"
	jobToken     = "job-secret"
)

type staticVerifier map[string]user.Principal

func (v staticVerifier) VerifyAccessToken(_ context.Context, token string) (user.Principal, error) {
	p, ok := v[token]
	if !ok {
		return user.Principal{}, fmt.Errorf("%w: unknown token", usecase.ErrUnauthorized)
	}
	return p, nil
}

func newTestRouter(t *testing.T, registry *metrics.Registry) http.Handler {
	t.Helper()

	logger := logging.NewNop()
	eventRepo := memory.NewEventRepository(memory.SeedEvents())
	participantRepo := memory.NewParticipantRepository(memory.SeedParticipants())
	juryRepo := memory.NewJuryRepository(memory.SeedAssignments())
	scoringRepo := memory.NewScoringRepository()
	resultRepo := memory.NewResultRepository()

	scoringService := usecase.NewScoringService(scoringRepo, eventRepo, participantRepo, juryRepo, &id.Sequence{Prefix: "score"}, registry, logger)
	resultService := usecase.NewResultService(resultRepo, scoringRepo, eventRepo, participantRepo, 2, registry, logger)
	assignmentService := usecase.NewAssignmentService(juryRepo, eventRepo, &id.Sequence{Prefix: "asg"}, logger)
	eventService := usecase.NewEventService(eventRepo, logger)
	exportService := usecase.NewExportService(scoringService)
	notificationService := usecase.NewNotificationService(eventRepo, participantRepo, mailer.NewLogMailer(logger), 2, registry, logger)

	handler := NewHandler(scoringService, resultService, assignmentService, eventService, exportService, notificationService, logger)
	verifier := staticVerifier{
		adminToken:   {UserID: "admin-1", Role: user.RoleAdmin},
		adaToken:     {UserID: memory.JuryIDAda, Role: user.RoleJury},
		graceToken:   {UserID: memory.JuryIDGrace, Role: user.RoleJury},
		studentToken: {UserID: "student-1", Role: user.RoleStudent},
	}

	return NewRouter(handler, verifier, logger, RouterConfig{
		CORSAllowedOrigins: []string{"https://aiverse.example"},
		InternalJobToken:   jobToken,
		Metrics:            registry,
	})
}

type testEnvelope struct {
	APIVersion string           `json:"apiVersion"`
	Data       json.RawMessage  `json:"data"`
	Error      *googleErrorBody `json:"error"`
}

func do(t *testing.T, router http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, target any) {
	t.Helper()

	var env testEnvelope
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	require.Nil(t, env.Error, rec.Body.String())
	require.NoError(t, sonic.Unmarshal(env.Data, target))
}

func errorStatus(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var env testEnvelope
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	require.NotNil(t, env.Error, rec.Body.String())
	return env.Error.Status
}

func scorePath(eventID, participantID string) string {
	return "/v1/jury/events/" + eventID + "/participants/" + participantID + "/score"
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := do(t, router, http.MethodGet, "/healthz", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestSubmitScore_StoresAndReplaces(t *testing.T) {
	router := newTestRouter(t, nil)
	path := scorePath(memory.EventIDHackathon, "reg-neural-ninjas")

	rec := do(t, router, http.MethodPut, path, adaToken, `{"innovation":8,"technical":7,"presentation":9,"impact":6,"feedback":"solid demo"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var first submissionDTO
	decodeData(t, rec, &first)
	require.Equal(t, 30, first.TotalScore)
	require.Equal(t, memory.JuryIDAda, first.JuryID)

	rec = do(t, router, http.MethodPut, path, adaToken, `{"innovation":10,"technical":10,"presentation":10,"impact":10}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, router, http.MethodGet, path, adaToken, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var stored submissionDTO
	decodeData(t, rec, &stored)
	require.Equal(t, 40, stored.TotalScore)
	require.Equal(t, first.SubmittedAt, stored.SubmittedAt)
}

func TestSubmitScore_Rejections(t *testing.T) {
	router := newTestRouter(t, nil)
	hackathon := scorePath(memory.EventIDHackathon, "reg-neural-ninjas")

	cases := []struct {
		name       string
		path       string
		token      string
		body       string
		wantStatus int
	}{
		{name: "missing token", path: hackathon, body: `{"innovation":1,"technical":1,"presentation":1,"impact":1}`, wantStatus: http.StatusUnauthorized},
		{name: "unknown token", path: hackathon, token: "nope", body: `{"innovation":1,"technical":1,"presentation":1,"impact":1}`, wantStatus: http.StatusUnauthorized},
		{name: "student role", path: hackathon, token: studentToken, body: `{"innovation":1,"technical":1,"presentation":1,"impact":1}`, wantStatus: http.StatusForbidden},
		{name: "juror not assigned", path: scorePath(memory.EventIDPitchDay, "reg-token-titans"), token: graceToken, body: `{"innovation":1,"technical":1,"presentation":1,"impact":1}`, wantStatus: http.StatusForbidden},
		{name: "score above limit", path: hackathon, token: adaToken, body: `{"innovation":11,"technical":1,"presentation":1,"impact":1}`, wantStatus: http.StatusBadRequest},
		{name: "negative score", path: hackathon, token: adaToken, body: `{"innovation":-1,"technical":1,"presentation":1,"impact":1}`, wantStatus: http.StatusBadRequest},
		{name: "missing category", path: hackathon, token: adaToken, body: `{"innovation":1,"technical":1,"presentation":1}`, wantStatus: http.StatusBadRequest},
		{name: "unknown field", path: hackathon, token: adaToken, body: `{"innovation":1,"technical":1,"presentation":1,"impact":1,"bonus":5}`, wantStatus: http.StatusBadRequest},
		{name: "participant from another event", path: scorePath(memory.EventIDHackathon, "reg-token-titans"), token: adaToken, body: `{"innovation":1,"technical":1,"presentation":1,"impact":1}`, wantStatus: http.StatusBadRequest},
		{name: "unknown event", path: scorePath("evt-missing", "reg-neural-ninjas"), token: adaToken, body: `{"innovation":1,"technical":1,"presentation":1,"impact":1}`, wantStatus: http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, router, http.MethodPut, tc.path, tc.token, tc.body)
			if rec.Code != tc.wantStatus {
				t.Fatalf("unexpected status: got=%d want=%d body=%s", rec.Code, tc.wantStatus, rec.Body.String())
			}
		})
	}
}

func TestGetMyScore_NotScoredYet(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := do(t, router, http.MethodGet, scorePath(memory.EventIDHackathon, "reg-gradient-gang"), adaToken, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "NOT_FOUND", errorStatus(t, rec))
}

func TestEvaluationSheet_TracksProgress(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := do(t, router, http.MethodPut, scorePath(memory.EventIDHackathon, "reg-gradient-gang"), adaToken, `{"innovation":5,"technical":5,"presentation":5,"impact":5}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, router, http.MethodGet, "/v1/jury/events/"+memory.EventIDHackathon+"/scores", adaToken, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var sheet evaluationSheetDTO
	decodeData(t, rec, &sheet)
	require.Equal(t, 1, sheet.Scored)
	require.Equal(t, 40, sheet.Event.MaxTotal)
	require.Len(t, sheet.Event.Categories, 4)
	for _, row := range sheet.Rows {
		if row.Participant.ID == "reg-gradient-gang" {
			require.NotNil(t, row.Submission)
			continue
		}
		require.Nil(t, row.Submission)
	}
}

func TestListMyJuryEvents(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := do(t, router, http.MethodGet, "/v1/jury/events", graceToken, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var events []eventDTO
	decodeData(t, rec, &events)
	require.Len(t, events, 1)
	require.Equal(t, memory.EventIDHackathon, events[0].ID)
}

func TestLeaderboardAndPublishFlow(t *testing.T) {
	router := newTestRouter(t, nil)

	submit := func(token, participantID, body string) {
		t.Helper()
		rec := do(t, router, http.MethodPut, scorePath(memory.EventIDHackathon, participantID), token, body)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}
	submit(adaToken, "reg-neural-ninjas", `{"innovation":8,"technical":7,"presentation":9,"impact":6}`)
	submit(graceToken, "reg-neural-ninjas", `{"innovation":6,"technical":8,"presentation":7,"impact":9}`)
	submit(adaToken, "reg-gradient-gang", `{"innovation":5,"technical":5,"presentation":5,"impact":5}`)

	rec := do(t, router, http.MethodGet, "/v1/admin/events/"+memory.EventIDHackathon+"/leaderboard", adaToken, "")
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(t, router, http.MethodGet, "/v1/admin/events/"+memory.EventIDHackathon+"/leaderboard", adminToken, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var board leaderboardDTO
	decodeData(t, rec, &board)
	require.Len(t, board.Rows, 2)
	require.Equal(t, "reg-neural-ninjas", board.Rows[0].ParticipantID)
	require.Equal(t, 30.0, board.Rows[0].AverageScore)
	require.Equal(t, 7.5, board.Rows[0].CategoryAverages.Technical)
	require.Equal(t, 1, board.Rows[0].ProvisionalRank)

	rec = do(t, router, http.MethodGet, "/v1/admin/events/"+memory.EventIDHackathon+"/results/reg-neural-ninjas/draft", adminToken, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var draft resultDTO
	decodeData(t, rec, &draft)
	require.Equal(t, 1, draft.Rank)
	require.Equal(t, 30.0, draft.FinalScore)

	rec = do(t, router, http.MethodPut, "/v1/admin/events/"+memory.EventIDHackathon+"/results/reg-neural-ninjas", adminToken, `{"rank":1,"finalScore":30,"prize":"Gold","isPublished":true}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, router, http.MethodPut, "/v1/admin/events/"+memory.EventIDHackathon+"/results/reg-gradient-gang", adminToken, `{"rank":2,"finalScore":20,"isPublished":false}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, router, http.MethodGet, "/v1/results", "", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var public []publicEventResultsDTO
	decodeData(t, rec, &public)
	require.Len(t, public, 1)
	require.Equal(t, "AI Verse Hackathon", public[0].EventTitle)
	require.Len(t, public[0].Results, 1)
	require.Equal(t, "Neural Ninjas", public[0].Results[0].TeamName)
	require.Equal(t, "Gold", public[0].Results[0].Prize)

	rec = do(t, router, http.MethodGet, "/v1/admin/events/"+memory.EventIDHackathon+"/results", adminToken, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var all []resultDTO
	decodeData(t, rec, &all)
	require.Len(t, all, 2)
}

func TestPublishResult_RequiresRankAndScore(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := do(t, router, http.MethodPut, "/v1/admin/events/"+memory.EventIDHackathon+"/results/reg-neural-ninjas", adminToken, `{"finalScore":30,"isPublished":true}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "INVALID_ARGUMENT", errorStatus(t, rec))
}

func TestPublishResultsBulk_ReportsPerItemOutcome(t *testing.T) {
	router := newTestRouter(t, nil)

	body := `{"items":[
		{"participantId":"reg-neural-ninjas","rank":1,"finalScore":30,"isPublished":true},
		{"participantId":"reg-token-titans","rank":2,"finalScore":20,"isPublished":true}
	]}`
	rec := do(t, router, http.MethodPost, "/v1/admin/events/"+memory.EventIDHackathon+"/results:bulk", adminToken, body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp bulkPublishResponseDTO
	decodeData(t, rec, &resp)
	require.Equal(t, 1, resp.Succeeded)
	require.Equal(t, 1, resp.Failed)
	require.Equal(t, "reg-neural-ninjas", resp.Outcomes[0].ParticipantID)
	require.NotNil(t, resp.Outcomes[0].Result)
	require.Equal(t, "invalidInput", resp.Outcomes[1].Reason)
}

func TestExportLeaderboardCSV(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := do(t, router, http.MethodPut, scorePath(memory.EventIDHackathon, "reg-neural-ninjas"), adaToken, `{"innovation":8,"technical":7,"presentation":9,"impact":6}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, router, http.MethodGet, "/v1/admin/events/"+memory.EventIDHackathon+"/leaderboard.csv", adminToken, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Header().Get("Content-Disposition"), "results_event_"+memory.EventIDHackathon+".csv")

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasPrefix(lines[1], "1,Neural Ninjas,Rina Putri,"), lines[1])
}

func TestUpdateScoreLimits(t *testing.T) {
	router := newTestRouter(t, nil)
	path := "/v1/admin/events/" + memory.EventIDHackathon + "/score-limits"

	rec := do(t, router, http.MethodPut, path, adminToken, `{"innovation":0,"technical":10,"presentation":10,"impact":10}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodPut, path, adminToken, `{"innovation":20,"technical":10,"presentation":10,"impact":10}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var ev eventDTO
	decodeData(t, rec, &ev)
	require.Equal(t, 50, ev.MaxTotal)

	rec = do(t, router, http.MethodPut, scorePath(memory.EventIDHackathon, "reg-neural-ninjas"), adaToken, `{"innovation":15,"technical":1,"presentation":1,"impact":1}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestJuryAssignments(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := do(t, router, http.MethodPost, "/v1/admin/jury-assignments", adminToken, `{"juryId":"jury-grace","eventId":"`+memory.EventIDPitchDay+`"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created assignmentDTO
	decodeData(t, rec, &created)
	require.Equal(t, "admin-1", created.AssignedBy)

	rec = do(t, router, http.MethodPost, "/v1/admin/jury-assignments", adminToken, `{"juryId":"jury-grace","eventId":"`+memory.EventIDPitchDay+`"}`)
	require.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, router, http.MethodPut, scorePath(memory.EventIDPitchDay, "reg-token-titans"), graceToken, `{"innovation":1,"technical":1,"presentation":1,"impact":1}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, router, http.MethodGet, "/v1/admin/jury-assignments?event_id="+memory.EventIDPitchDay, adminToken, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var listed []assignmentDTO
	decodeData(t, rec, &listed)
	require.Len(t, listed, 2)

	rec = do(t, router, http.MethodDelete, "/v1/admin/jury-assignments/"+created.ID, adminToken, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, router, http.MethodDelete, "/v1/admin/jury-assignments/"+created.ID, adminToken, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSendTicket(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := do(t, router, http.MethodPost, "/v1/admin/participants/reg-neural-ninjas/ticket", adminToken, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var delivery deliveryDTO
	decodeData(t, rec, &delivery)
	require.Equal(t, "sent", delivery.Status)
	require.Equal(t, "rina@example.com", delivery.Recipient)

	rec = do(t, router, http.MethodPost, "/v1/admin/participants/reg-missing/ticket", adminToken, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRunSendRemindersJob(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := do(t, router, http.MethodPost, "/v1/internal/jobs/send-reminders", "", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/send-reminders", nil)
	req.Header.Set("X-Internal-Job-Token", jobToken)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var summary reminderSummaryDTO
	decodeData(t, rec, &summary)
	require.NotNil(t, summary.Deliveries)
	require.Equal(t, summary.Sent+summary.Failed, len(summary.Deliveries))
}

func TestMetricsEndpoint(t *testing.T) {
	registry := metrics.New()
	router := newTestRouter(t, registry)

	rec := do(t, router, http.MethodPut, scorePath(memory.EventIDHackathon, "reg-neural-ninjas"), adaToken, `{"innovation":1,"technical":1,"presentation":1,"impact":1}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, router, http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "score_submissions_total")
}
