package producer

import (
	"context"

	"opsdash/internal/messaging/kafka"

	kafkago "github.com/segmentio/kafka-go"
)

// publish writes a single outbox row to its topic. The aggregate id keys the
// message so events for one employee or batch stay in partition order, and
// the request id travels as a header for cross-service tracing.
func (w *Worker) publish(ctx context.Context, event kafka.OutboxEvent) error {
	headers := []kafkago.Header{
		{Key: "event_type", Value: []byte(event.EventType)},
		{Key: "aggregate_type", Value: []byte(event.AggregateType)},
	}
	if event.RequestID != "" {
		headers = append(headers, kafkago.Header{Key: "request_id", Value: []byte(event.RequestID)})
	}

	return w.writer.WriteMessages(ctx, kafkago.Message{
		Topic:   event.Topic,
		Key:     []byte(event.AggregateID),
		Value:   event.Payload,
		Headers: headers,
	})
}
