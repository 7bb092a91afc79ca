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
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/croshet/storefront-api/config"
	"github.com/croshet/storefront-api/pkg/helpers"
	"github.com/croshet/storefront-api/pkg/mailer"
)

// The worker drains the email queue and delivers through Mailgun. It runs
// separately from the API so slow SMTP never blocks a request.
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-worker", cfg.Env)

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("failed to connect to rabbitmq: %v", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("failed to open channel: %v", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(cfg.RabbitMQEmailQueue, true, false, false, false, nil); err != nil {
		log.Fatalf("failed to declare queue: %v", err)
	}
	if err := ch.Qos(4, 0, false); err != nil {
		log.Fatalf("failed to set qos: %v", err)
	}

	deliveries, err := ch.Consume(cfg.RabbitMQEmailQueue, "email-worker", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("failed to start consumer: %v", err)
	}

	mg := mailer.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Infof("email worker consuming from %q", cfg.RabbitMQEmailQueue)
	for {
		select {
		case <-ctx.Done():
			logger.Info("email worker shutting down")
			return
		case d, ok := <-deliveries:
			if !ok {
				logger.Warn("delivery channel closed, exiting")
				os.Exit(1)
			}
			handleDelivery(ctx, d, mg, cfg, logger)
		}
	}
}

func handleDelivery(ctx context.Context, d amqp.Delivery, mg *mailer.Mailgun, cfg *config.Config, logger *logrus.Logger) {
	var job mailer.EmailJob
	if err := json.Unmarshal(d.Body, &job); err != nil {
		logger.Warnf("dropping malformed email job: %v", err)
		_ = d.Nack(false, false)
		return
	}
	if !cfg.MailSendEnabled {
		logger.Infof("mail sending disabled, dropping email to %s (%s)", job.To, job.Subject)
		_ = d.Ack(false)
		return
	}

	sendCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	err := mg.Send(sendCtx, job.To, job.Subject, job.Text, job.HTML)
	cancel()
	if err != nil {
		logger.Errorf("failed to send email to %s: %v", job.To, err)
		// requeue once; redelivered messages that fail again are dropped
		_ = d.Nack(false, !d.Redelivered)
		return
	}
	logger.Infof("sent email to %s (%s)", job.To, job.Subject)
	_ = d.Ack(false)
}
