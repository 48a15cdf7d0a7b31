package mailer

import (
	"context"

	"github.com/riskibarqy/event-scoring/internal/domain/notification"
	"github.com/riskibarqy/event-scoring/internal/platform/id"
	"github.com/riskibarqy/event-scoring/internal/platform/logging"
)

// LogMailer records messages in the log instead of sending them. Used when
// outbound email is disabled.
type LogMailer struct {
	ids    id.Generator
	logger *logging.Logger
}

func NewLogMailer(logger *logging.Logger) *LogMailer {
	if logger == nil {
		logger = logging.Default()
	}
	return &LogMailer{ids: id.NewUUIDGenerator(), logger: logger}
}

func (m *LogMailer) Send(ctx context.Context, msg notification.Message) (string, error) {
	messageID, err := m.ids.NewID()
	if err != nil {
		return "", err
	}
	m.logger.InfoContext(ctx, "email suppressed",
		"message_id", messageID,
		"to", msg.To,
		"subject", msg.Subject,
		"html_bytes", len(msg.HTML),
	)
	return messageID, nil
}
