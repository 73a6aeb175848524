package notification

import (
	"context"
	"encoding/json"
	"fmt"
)

// EmailDispatchQueue is the queue the worker consumes email tasks from.
const EmailDispatchQueue = "email.dispatch"

// EmailTask is one email to deliver. ID doubles as the idempotency key.
type EmailTask struct {
	ID      string   `json:"id"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// Dispatcher hands an email task off for delivery. Delivery is
// best effort; callers never roll back on a dispatch error.
type Dispatcher interface {
	Dispatch(ctx context.Context, task EmailTask) error
}

// InlineDispatcher sends immediately through the provider.
type InlineDispatcher struct {
	sender EmailSender
}

func NewInlineDispatcher(sender EmailSender) *InlineDispatcher {
	return &InlineDispatcher{sender: sender}
}

func (d *InlineDispatcher) Dispatch(ctx context.Context, task EmailTask) error {
	if _, err := d.sender.Send(ctx, task.To, task.Subject, task.HTML); err != nil {
		EmailsFailed.Inc()
		return err
	}
	EmailsSent.Inc()
	return nil
}

// QueuePublisher is the slice of the RabbitMQ client the queue
// dispatcher needs.
type QueuePublisher interface {
	Publish(ctx context.Context, queue string, body []byte) error
}

// QueueDispatcher enqueues the task for the notifier worker.
type QueueDispatcher struct {
	publisher QueuePublisher
	queue     string
}

func NewQueueDispatcher(publisher QueuePublisher, queue string) *QueueDispatcher {
	if queue == "" {
		queue = EmailDispatchQueue
	}
	return &QueueDispatcher{publisher: publisher, queue: queue}
}

func (d *QueueDispatcher) Dispatch(ctx context.Context, task EmailTask) error {
	body, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("failed to marshal email task: %w", err)
	}
	return d.publisher.Publish(ctx, d.queue, body)
}
