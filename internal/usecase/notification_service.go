package usecase

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/event-scoring/internal/domain/event"
	"github.com/riskibarqy/event-scoring/internal/domain/notification"
	"github.com/riskibarqy/event-scoring/internal/domain/participant"
	"github.com/riskibarqy/event-scoring/internal/platform/logging"
	"github.com/riskibarqy/event-scoring/internal/platform/metrics"
)

const (
	defaultNotifyWorkers = 4
	reminderWindowStart  = 24 * time.Hour
	reminderWindowEnd    = 48 * time.Hour
	qrCodeEndpoint       = "https://api.qrserver.com/v1/create-qr-code/"
)

type ReminderSummary struct {
	Events     int
	Sent       int
	Failed     int
	Deliveries []notification.Delivery
}

type NotificationService struct {
	eventRepo       event.Repository
	participantRepo participant.Repository
	mailer          notification.Mailer
	workers         int
	metrics         *metrics.Registry
	logger          *logging.Logger
	now             func() time.Time
}

func NewNotificationService(
	eventRepo event.Repository,
	participantRepo participant.Repository,
	mailer notification.Mailer,
	workers int,
	metricsRegistry *metrics.Registry,
	logger *logging.Logger,
) *NotificationService {
	if logger == nil {
		logger = logging.Default()
	}
	if workers <= 0 {
		workers = defaultNotifyWorkers
	}
	return &NotificationService{
		eventRepo:       eventRepo,
		participantRepo: participantRepo,
		mailer:          mailer,
		workers:         workers,
		metrics:         metricsRegistry,
		logger:          logger,
		now:             time.Now,
	}
}

type reminderJob struct {
	event       event.Event
	participant participant.Participant
}

// SendEventReminders emails every approved participant of published events
// starting between 24h and 48h from now. A failed recipient is recorded in
// the summary and never stops the batch.
func (s *NotificationService) SendEventReminders(ctx context.Context) (ReminderSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NotificationService.SendEventReminders")
	defer span.End()

	now := s.now().UTC()
	events, err := s.eventRepo.ListPublishedStartingBetween(ctx, now.Add(reminderWindowStart), now.Add(reminderWindowEnd))
	if err != nil {
		return ReminderSummary{}, persistenceError(err, "list events due for reminders")
	}

	summary := ReminderSummary{Events: len(events), Deliveries: []notification.Delivery{}}
	if len(events) == 0 {
		return summary, nil
	}

	var jobs []reminderJob
	for _, ev := range events {
		participants, err := s.participantRepo.ListApprovedByEvent(ctx, ev.ID)
		if err != nil {
			s.logger.WarnContext(ctx, "list approved participants failed, skipping event", "event_id", ev.ID, "error", err)
			summary.Deliveries = append(summary.Deliveries, notification.Delivery{
				EventID: ev.ID,
				Event:   ev.Title,
				Status:  notification.StatusFailed,
				Error:   err.Error(),
			})
			summary.Failed++
			continue
		}
		for _, p := range participants {
			jobs = append(jobs, reminderJob{event: ev, participant: p})
		}
	}

	deliveries, err := s.fanOut(ctx, jobs)
	if err != nil {
		return ReminderSummary{}, err
	}
	for _, d := range deliveries {
		if d.Status == notification.StatusSent {
			summary.Sent++
		} else {
			summary.Failed++
		}
	}
	summary.Deliveries = append(summary.Deliveries, deliveries...)

	s.logger.InfoContext(ctx, "event reminders processed",
		"events", summary.Events,
		"sent", summary.Sent,
		"failed", summary.Failed,
	)
	return summary, nil
}

func (s *NotificationService) fanOut(ctx context.Context, jobs []reminderJob) ([]notification.Delivery, error) {
	if len(jobs) == 0 {
		return []notification.Delivery{}, nil
	}

	workerPool, err := ants.NewPool(s.workers)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer workerPool.Release()

	type indexed struct {
		pos      int
		delivery notification.Delivery
	}
	results := make(chan indexed, len(jobs))

	var workers sync.WaitGroup
	for i, job := range jobs {
		i, job := i, job
		workers.Add(1)
		if err := workerPool.Submit(func() {
			defer workers.Done()
			results <- indexed{pos: i, delivery: s.sendReminder(ctx, job)}
		}); err != nil {
			workers.Done()
			results <- indexed{pos: i, delivery: notification.Delivery{
				EventID:   job.event.ID,
				Event:     job.event.Title,
				Recipient: job.participant.TeamLeaderEmail,
				Status:    notification.StatusFailed,
				Error:     fmt.Sprintf("submit to worker pool: %v", err),
			}}
		}
	}

	workers.Wait()
	close(results)

	collected := make([]indexed, 0, len(jobs))
	for item := range results {
		collected = append(collected, item)
	}
	sort.Slice(collected, func(i, j int) bool { return collected[i].pos < collected[j].pos })

	out := make([]notification.Delivery, 0, len(collected))
	for _, item := range collected {
		out = append(out, item.delivery)
	}
	return out, nil
}

func (s *NotificationService) sendReminder(ctx context.Context, job reminderJob) notification.Delivery {
	delivery := notification.Delivery{
		EventID:   job.event.ID,
		Event:     job.event.Title,
		Recipient: job.participant.TeamLeaderEmail,
	}

	view := reminderView{
		LeaderName:   job.participant.TeamLeaderName,
		EventTitle:   job.event.Title,
		Date:         formatEventDate(job.event.StartDate),
		Time:         formatEventTime(job.event.StartDate),
		Location:     job.event.LocationOrTBD(),
		Year:         s.now().Year(),
		SupportEmail: supportEmail,
	}
	if job.participant.IsTeamRegistration {
		view.TeamName = job.participant.TeamName
	}

	var body bytes.Buffer
	if err := reminderTemplate.Execute(&body, view); err != nil {
		return s.finish(ctx, notification.KindReminder, delivery, "", fmt.Errorf("render reminder: %w", err))
	}

	messageID, err := s.mailer.Send(ctx, notification.Message{
		To:      job.participant.TeamLeaderEmail,
		ToName:  job.participant.TeamLeaderName,
		Subject: fmt.Sprintf("Reminder: %s is tomorrow!", job.event.Title),
		HTML:    body.String(),
	})
	return s.finish(ctx, notification.KindReminder, delivery, messageID, err)
}

// SendTicket emails the entry ticket for one registration to its leader.
func (s *NotificationService) SendTicket(ctx context.Context, participantID string) (notification.Delivery, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NotificationService.SendTicket")
	defer span.End()

	participantID = strings.TrimSpace(participantID)
	if participantID == "" {
		return notification.Delivery{}, fmt.Errorf("%w: participant_id is required", ErrInvalidInput)
	}

	p, exists, err := s.participantRepo.GetByID(ctx, participantID)
	if err != nil {
		return notification.Delivery{}, persistenceError(err, "get participant participant=%s", participantID)
	}
	if !exists {
		return notification.Delivery{}, fmt.Errorf("%w: participant=%s", ErrNotFound, participantID)
	}
	if strings.TrimSpace(p.TeamLeaderEmail) == "" {
		return notification.Delivery{}, fmt.Errorf("%w: participant=%s has no leader email", ErrInvalidInput, participantID)
	}

	ev, exists, err := s.eventRepo.GetByID(ctx, p.EventID)
	if err != nil {
		return notification.Delivery{}, persistenceError(err, "get event event=%s", p.EventID)
	}
	if !exists {
		return notification.Delivery{}, fmt.Errorf("%w: event=%s", ErrNotFound, p.EventID)
	}

	qrURL, err := ticketQRCodeURL(ev, p)
	if err != nil {
		return notification.Delivery{}, err
	}

	view := ticketView{
		LeaderName:       p.TeamLeaderName,
		EventTitle:       ev.Title,
		Date:             formatEventDate(ev.StartDate),
		Time:             formatEventTime(ev.StartDate),
		Location:         ticketLocation(ev),
		TicketType:       "General Admission",
		RegistrationCode: registrationCode(p.ID),
		QRCodeURL:        qrURL,
		Year:             s.now().Year(),
	}
	if p.IsTeamRegistration {
		view.TicketType = "Team Entry"
		view.TeamName = p.TeamName
	}

	var body bytes.Buffer
	if err := ticketTemplate.Execute(&body, view); err != nil {
		return notification.Delivery{}, fmt.Errorf("render ticket: %w", err)
	}

	delivery := notification.Delivery{EventID: ev.ID, Event: ev.Title, Recipient: p.TeamLeaderEmail}
	messageID, err := s.mailer.Send(ctx, notification.Message{
		To:      p.TeamLeaderEmail,
		ToName:  p.TeamLeaderName,
		Subject: fmt.Sprintf("Your Ticket: %s", ev.Title),
		HTML:    body.String(),
	})
	delivery = s.finish(ctx, notification.KindTicket, delivery, messageID, err)
	if err != nil {
		return delivery, fmt.Errorf("%w: send ticket participant=%s: %w", ErrDependencyUnavailable, participantID, err)
	}
	return delivery, nil
}

func (s *NotificationService) finish(ctx context.Context, kind notification.Kind, d notification.Delivery, messageID string, err error) notification.Delivery {
	if err != nil {
		d.Status = notification.StatusFailed
		d.Error = err.Error()
		s.logger.WarnContext(ctx, "email delivery failed", "kind", kind, "event_id", d.EventID, "recipient", d.Recipient, "error", err)
	} else {
		d.Status = notification.StatusSent
		d.MessageID = messageID
	}
	s.metrics.NotificationDelivered(string(kind), string(d.Status))
	return d
}

type ticketQRPayload struct {
	ID    string `json:"id"`
	Event string `json:"event"`
	Name  string `json:"name"`
	Team  string `json:"team"`
	Type  string `json:"type"`
}

func ticketQRCodeURL(ev event.Event, p participant.Participant) (string, error) {
	payload := ticketQRPayload{
		ID:    p.ID,
		Event: ev.Title,
		Name:  p.TeamLeaderName,
		Team:  p.DisplayTeamName(),
		Type:  "Individual",
	}
	if p.IsTeamRegistration {
		payload.Type = "Team"
	}
	data, err := sonic.MarshalString(payload)
	if err != nil {
		return "", fmt.Errorf("encode ticket qr payload: %w", err)
	}

	query := url.Values{}
	query.Set("size", "300x300")
	query.Set("data", data)
	return qrCodeEndpoint + "?" + query.Encode(), nil
}

func ticketLocation(ev event.Event) string {
	if loc := strings.TrimSpace(ev.Location); loc != "" {
		return loc
	}
	return "Online / TBD"
}

// registrationCode is the short form printed on tickets: the first id
// segment, upper-cased.
func registrationCode(participantID string) string {
	head, _, _ := strings.Cut(participantID, "-")
	return strings.ToUpper(head)
}

func formatEventDate(t time.Time) string {
	if t.IsZero() {
		return "TBD"
	}
	return t.Format("Monday, January 2, 2006")
}

func formatEventTime(t time.Time) string {
	if t.IsZero() {
		return "TBD"
	}
	return t.Format("03:04 PM")
}

