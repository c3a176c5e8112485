package application

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type NotificationLevel string

const (
	LevelSuccess NotificationLevel = "success"
	LevelError   NotificationLevel = "error"
)

// Notification is a human-readable intent outcome for the presentation layer.
type Notification struct {
	ID      string            `json:"id"`
	Level   NotificationLevel `json:"level"`
	Intent  string            `json:"intent"`
	Message string            `json:"message"`
	At      time.Time         `json:"at"`
}

// Notifier delivers notifications. Delivery failures are the notifier's own
// concern and never affect store state.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, n Notification)

func (f NotifierFunc) Notify(ctx context.Context, n Notification) { f(ctx, n) }

// MultiNotifier fans a notification out to every notifier in order.
type MultiNotifier []Notifier

func (m MultiNotifier) Notify(ctx context.Context, n Notification) {
	for _, x := range m {
		if x != nil {
			x.Notify(ctx, n)
		}
	}
}

type outcomes struct {
	notifier Notifier
	now      func() time.Time
}

func (o outcomes) success(ctx context.Context, intent, msg string) {
	o.emit(ctx, LevelSuccess, intent, msg)
}

func (o outcomes) failure(ctx context.Context, intent, msg string) {
	o.emit(ctx, LevelError, intent, msg)
}

func (o outcomes) emit(ctx context.Context, level NotificationLevel, intent, msg string) {
	if o.notifier == nil {
		return
	}
	o.notifier.Notify(ctx, Notification{
		ID:      uuid.NewString(),
		Level:   level,
		Intent:  intent,
		Message: msg,
		At:      o.now().UTC(),
	})
}
