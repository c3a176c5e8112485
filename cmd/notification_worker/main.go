package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/digitalhub/config"
	"github.com/oksasatya/digitalhub/internal/application"
	"github.com/oksasatya/digitalhub/internal/infrastructure/notify"
	"github.com/oksasatya/digitalhub/pkg/helpers"
)

// Consumes intent outcome notifications and forwards them to the log, one
// line per notification.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-notifications", cfg.Env)
	if !cfg.NotifyEnabled {
		logger.Info("NOTIFY_ENABLED=false; notification worker disabled")
		return
	}

	conn, ch, err := helpers.DialRabbit(cfg.RabbitMQURL, cfg.RabbitMQNotifyQueue)
	if err != nil {
		log.Fatalf("amqp: %v", err)
	}
	defer func() { _ = conn.Close() }()
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(16, 0, false); err != nil {
		log.Fatalf("qos: %v", err)
	}
	msgs, err := ch.Consume(cfg.RabbitMQNotifyQueue, "", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("consume: %v", err)
	}

	sink := notify.NewLogNotifier(logger)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		for msg := range msgs {
			if msg.Type != "" && msg.Type != notify.MessageType {
				logger.WithField("type", msg.Type).Warn("skipping unknown message type")
				_ = msg.Nack(false, false)
				continue
			}
			var n application.Notification
			if err := json.Unmarshal(msg.Body, &n); err != nil {
				helpers.LogError(logger, "bad notification message", err, logrus.Fields{"delivery_tag": msg.DeliveryTag})
				_ = msg.Nack(false, false)
				continue
			}
			sink.Notify(context.Background(), n)
			_ = msg.Ack(false)
		}
		close(done)
	}()

	logger.WithField("queue", cfg.RabbitMQNotifyQueue).Info("notification worker listening")
	<-stop
	logger.Info("shutting down")
	select {
	case <-done:
	case <-time.After(2 * time.Second):
	}
}
