package notification

import "context"

type Kind string

const (
	KindReminder Kind = "reminder"
	KindTicket   Kind = "ticket"
)

type Status string

const (
	StatusSent   Status = "sent"
	StatusFailed Status = "failed"
)

// Message is one outgoing HTML email.
type Message struct {
	To      string
	ToName  string
	Subject string
	HTML    string
}

// Mailer delivers a message and returns the provider's message id.
type Mailer interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// Delivery records the outcome for one recipient.
type Delivery struct {
	EventID   string
	Event     string
	Recipient string
	MessageID string
	Status    Status
	Error     string
}
