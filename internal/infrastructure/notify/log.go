package notify

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/digitalhub/internal/application"
)

// LogNotifier writes notifications to the process log.
type LogNotifier struct {
	logger *logrus.Logger
}

func NewLogNotifier(logger *logrus.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(_ context.Context, note application.Notification) {
	entry := n.logger.WithFields(logrus.Fields{
		"notification_id": note.ID,
		"intent":          note.Intent,
	})
	if note.Level == application.LevelError {
		entry.Warn(note.Message)
		return
	}
	entry.Info(note.Message)
}
