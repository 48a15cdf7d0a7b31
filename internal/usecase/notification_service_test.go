package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/event-scoring/internal/domain/event"
	"github.com/riskibarqy/event-scoring/internal/domain/notification"
	"github.com/riskibarqy/event-scoring/internal/domain/participant"
	"github.com/riskibarqy/event-scoring/internal/infrastructure/repository/memory"
	notificationmock "github.com/riskibarqy/event-scoring/internal/mocks/domain/notification"
	"github.com/riskibarqy/event-scoring/internal/platform/logging"
	"github.com/riskibarqy/event-scoring/internal/platform/metrics"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newNotificationFixture(t *testing.T) (*NotificationService, *notificationmock.Mailer) {
	t.Helper()

	events := memory.NewEventRepository([]event.Event{
		{ID: "E1", Title: "AI Verse Hackathon", Location: "Hall A", IsPublished: true, StartDate: fixtureNow.Add(30 * time.Hour)},
		{ID: "E2", Title: "Too Far", IsPublished: true, StartDate: fixtureNow.Add(60 * time.Hour)},
		{ID: "E3", Title: "Draft Event", IsPublished: false, StartDate: fixtureNow.Add(30 * time.Hour)},
		{ID: "E4", Title: "Edge Event", IsPublished: true, StartDate: fixtureNow.Add(24 * time.Hour)},
	})
	participants := memory.NewParticipantRepository([]participant.Participant{
		{ID: "P1", EventID: "E1", TeamName: "Neural Ninjas", TeamLeaderName: "Rina", TeamLeaderEmail: "rina@example.com", IsTeamRegistration: true, Status: participant.StatusApproved, CreatedAt: fixtureNow},
		{ID: "P2", EventID: "E1", TeamLeaderName: "Budi", TeamLeaderEmail: "budi@example.com", Status: participant.StatusApproved, CreatedAt: fixtureNow.Add(time.Minute)},
		{ID: "P3", EventID: "E1", TeamLeaderName: "Sari", TeamLeaderEmail: "sari@example.com", Status: participant.StatusPending, CreatedAt: fixtureNow.Add(2 * time.Minute)},
		{ID: "P4", EventID: "E2", TeamLeaderName: "Andi", TeamLeaderEmail: "andi@example.com", Status: participant.StatusApproved},
		{ID: "P5", EventID: "E3", TeamLeaderName: "Dewi", TeamLeaderEmail: "dewi@example.com", Status: participant.StatusApproved},
	})

	mailer := notificationmock.NewMailer(t)
	service := NewNotificationService(events, participants, mailer, 2, metrics.New(), logging.NewNop())
	service.now = func() time.Time { return fixtureNow }
	return service, mailer
}

func recipient(email string) interface{} {
	return mock.MatchedBy(func(m notification.Message) bool { return m.To == email })
}

func TestNotificationService_SendEventReminders_ContinuesAfterFailure(t *testing.T) {
	t.Parallel()

	service, mailer := newNotificationFixture(t)

	var rinaBody string
	mailer.On("Send", mock.Anything, recipient("rina@example.com")).
		Run(func(args mock.Arguments) { rinaBody = args.Get(1).(notification.Message).HTML }).
		Return("msg-1", nil).
		Once()
	mailer.On("Send", mock.Anything, recipient("budi@example.com")).
		Return("", errors.New("422 invalid recipient")).
		Once()

	summary, err := service.SendEventReminders(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, summary.Events, "E1 and the 24h boundary event E4")
	require.Equal(t, 1, summary.Sent)
	require.Equal(t, 1, summary.Failed)
	require.Len(t, summary.Deliveries, 2)

	require.Equal(t, notification.Delivery{
		EventID: "E1", Event: "AI Verse Hackathon", Recipient: "rina@example.com",
		MessageID: "msg-1", Status: notification.StatusSent,
	}, summary.Deliveries[0])
	require.Equal(t, notification.StatusFailed, summary.Deliveries[1].Status)
	require.Equal(t, "422 invalid recipient", summary.Deliveries[1].Error)

	require.Contains(t, rinaBody, "Hi Rina,")
	require.Contains(t, rinaBody, "Hall A")
	require.Contains(t, rinaBody, "Neural Ninjas")
	require.Contains(t, rinaBody, supportEmail)
}

func TestNotificationService_SendEventReminders_SubjectAndSoloBody(t *testing.T) {
	t.Parallel()

	service, mailer := newNotificationFixture(t)

	var budi notification.Message
	mailer.On("Send", mock.Anything, recipient("rina@example.com")).Return("msg-1", nil).Once()
	mailer.On("Send", mock.Anything, recipient("budi@example.com")).
		Run(func(args mock.Arguments) { budi = args.Get(1).(notification.Message) }).
		Return("msg-2", nil).
		Once()

	summary, err := service.SendEventReminders(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, summary.Sent)
	require.Equal(t, "Reminder: AI Verse Hackathon is tomorrow!", budi.Subject)
	require.False(t, strings.Contains(budi.HTML, "<strong>Team:</strong>"), "solo registrations carry no team row")
}

func TestNotificationService_SendTicket(t *testing.T) {
	t.Parallel()

	service, mailer := newNotificationFixture(t)

	var sent notification.Message
	mailer.On("Send", mock.Anything, recipient("rina@example.com")).
		Run(func(args mock.Arguments) { sent = args.Get(1).(notification.Message) }).
		Return("msg-9", nil).
		Once()

	delivery, err := service.SendTicket(context.Background(), "P1")
	require.NoError(t, err)
	require.Equal(t, notification.StatusSent, delivery.Status)
	require.Equal(t, "Your Ticket: AI Verse Hackathon", sent.Subject)
	require.Contains(t, sent.HTML, "Team Entry")
	require.Contains(t, sent.HTML, "api.qrserver.com")

	_, err = service.SendTicket(context.Background(), "P404")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestNotificationService_SendTicket_MailerFailure(t *testing.T) {
	t.Parallel()

	service, mailer := newNotificationFixture(t)
	mailer.On("Send", mock.Anything, recipient("budi@example.com")).Return("", errors.New("circuit open")).Once()

	delivery, err := service.SendTicket(context.Background(), "P2")
	require.ErrorIs(t, err, ErrDependencyUnavailable)
	require.Equal(t, notification.StatusFailed, delivery.Status)
}

func TestRegistrationCode(t *testing.T) {
	if got := registrationCode("3f9a2b1c-aaaa-bbbb"); got != "3F9A2B1C" {
		t.Fatalf("unexpected code: %s", got)
	}
	if got := registrationCode("reg"); got != "REG" {
		t.Fatalf("unexpected code: %s", got)
	}
}
