package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"opsdash/internal/messaging/kafka"
	"opsdash/internal/messaging/kafka/producer"
	"opsdash/internal/shared/connection"

	"go.uber.org/zap"
)

const defaultOutboxPoll = 3 * time.Second

// RunWorker drains the outbox table into Kafka until interrupted.
func RunWorker() error {
	logger := zap.L().Named("app.worker")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	kafkaWriter, err := connection.ConnectKafkaWithRetry(kafkaBroker, 5)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	worker := producer.NewWorker(
		kafka.NewOutboxRepository(gormDB),
		kafkaWriter,
		logger,
		outboxPollInterval(),
	)
	worker.Run(ctx)

	logger.Info("worker shut down")
	return nil
}

func outboxPollInterval() time.Duration {
	raw := os.Getenv("OUTBOX_POLL_INTERVAL")
	if raw == "" {
		return defaultOutboxPoll
	}
	interval, err := time.ParseDuration(raw)
	if err != nil || interval <= 0 {
		zap.L().Warn("invalid OUTBOX_POLL_INTERVAL, using default", zap.String("value", raw))
		return defaultOutboxPoll
	}
	return interval
}
