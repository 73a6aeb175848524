package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/veridian-studio/backoffice/pkg/observability"
)

// Worker delivers queued email tasks through the provider. Task IDs are
// recorded in Redis so redelivered queue messages are skipped.
type Worker struct {
	sender EmailSender
	redis  *redis.Client
	logger *observability.Logger
}

func NewWorker(sender EmailSender, redisClient *redis.Client, logger *observability.Logger) *Worker {
	return &Worker{
		sender: sender,
		redis:  redisClient,
		logger: logger,
	}
}

// ProcessTask handles one queued email task.
func (w *Worker) ProcessTask(ctx context.Context, body []byte) error {
	var task EmailTask
	if err := json.Unmarshal(body, &task); err != nil {
		return fmt.Errorf("failed to unmarshal email task: %w", err)
	}
	if len(task.To) == 0 {
		w.logger.Warn("email task has no recipients, skipping", "task_id", task.ID)
		return nil
	}

	if w.redis != nil {
		key := "email:sent:" + task.ID
		exists, err := w.redis.Exists(ctx, key).Result()
		if err != nil {
			w.logger.Error("redis error checking idempotency", "task_id", task.ID, "error", err)
		} else if exists > 0 {
			w.logger.Info("email task already processed, skipping", "task_id", task.ID)
			return nil
		}
	}

	if _, err := w.sender.Send(ctx, task.To, task.Subject, task.HTML); err != nil {
		EmailsFailed.Inc()
		return fmt.Errorf("failed to send email for task %s: %w", task.ID, err)
	}
	EmailsSent.Inc()

	if w.redis != nil {
		w.redis.Set(ctx, "email:sent:"+task.ID, "1", 24*time.Hour)
	}

	w.logger.Info("email task delivered", "task_id", task.ID, "recipients", len(task.To))
	return nil
}
