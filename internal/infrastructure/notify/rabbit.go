package notify

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/digitalhub/internal/application"
)

// MessageType tags notification messages on the queue.
const MessageType = "notification"

// Publisher is satisfied by helpers.RabbitPublisher.
type Publisher interface {
	PublishJSON(ctx context.Context, messageType string, body any) error
}

// QueueNotifier publishes notifications for the presentation layer. Publish
// failures are logged and dropped.
type QueueNotifier struct {
	pub     Publisher
	logger  *logrus.Logger
	timeout time.Duration
}

func NewQueueNotifier(pub Publisher, logger *logrus.Logger) *QueueNotifier {
	return &QueueNotifier{pub: pub, logger: logger, timeout: 5 * time.Second}
}

func (n *QueueNotifier) Notify(ctx context.Context, note application.Notification) {
	// the intent's request may already be done; delivery outlives it
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), n.timeout)
	defer cancel()
	if err := n.pub.PublishJSON(ctx, MessageType, note); err != nil {
		n.logger.WithError(err).WithField("notification_id", note.ID).Warn("publish notification failed")
	}
}
