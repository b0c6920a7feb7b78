package producer

import (
	"context"
	"time"

	"opsdash/internal/messaging/kafka"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	defaultPollInterval = 3 * time.Second
	defaultBatchSize    = 50
)

// Worker drains pending outbox rows into Kafka on a fixed poll interval.
// Rows that fail to publish are marked failed and retried on a later pass
// once their backoff window elapses.
type Worker struct {
	repo      kafka.OutboxRepository
	writer    *kafkago.Writer
	logger    *zap.Logger
	interval  time.Duration
	batchSize int
}

func NewWorker(repo kafka.OutboxRepository, writer *kafkago.Writer, logger *zap.Logger, interval time.Duration) *Worker {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	if logger == nil {
		logger = zap.L()
	}

	return &Worker{
		repo:      repo,
		writer:    writer,
		logger:    logger.Named("kafka.producer.worker"),
		interval:  interval,
		batchSize: defaultBatchSize,
	}
}

// Run blocks until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info("outbox worker started", zap.Duration("poll_interval", w.interval))

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("outbox worker stopped")
			return
		case <-ticker.C:
			if err := w.drain(ctx); err != nil {
				w.logger.Error("outbox drain failed", zap.Error(err))
			}
		}
	}
}

// drain publishes one batch of due events. A publish failure marks the row
// failed and moves on; the batch itself only fails on a list error.
func (w *Worker) drain(ctx context.Context) error {
	events, err := w.repo.ListPending(ctx, w.batchSize)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		return nil
	}

	var sent, failed int
	for _, event := range events {
		if err := w.publish(ctx, event); err != nil {
			failed++
			w.logger.Warn("publish outbox event failed",
				zap.String("outbox_id", event.ID),
				zap.String("topic", event.Topic),
				zap.Int("retry_count", event.RetryCount),
				zap.Error(err),
			)
			if markErr := w.repo.MarkFailed(ctx, event.ID, err.Error()); markErr != nil {
				w.logger.Error("mark outbox failed errored",
					zap.String("outbox_id", event.ID), zap.Error(markErr))
			}
			continue
		}

		if err := w.repo.MarkSent(ctx, event.ID); err != nil {
			w.logger.Error("mark outbox sent errored",
				zap.String("outbox_id", event.ID), zap.Error(err))
			continue
		}
		sent++
	}

	w.logger.Info("outbox batch drained",
		zap.Int("sent", sent),
		zap.Int("failed", failed),
		zap.Int("batch", len(events)),
	)
	return nil
}
