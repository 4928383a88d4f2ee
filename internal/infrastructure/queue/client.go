package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

// Enqueuer publishes background tasks. Services depend on this interface so a
// disabled queue can be swapped for NoopEnqueuer.
type Enqueuer interface {
	Enqueue(ctx context.Context, taskType string, payload interface{}, opts ...asynq.Option) error
}

type AsynqEnqueuer struct {
	client *asynq.Client
}

func NewAsynqEnqueuer(redisAddr, password string, db int) *AsynqEnqueuer {
	return &AsynqEnqueuer{
		client: asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddr, Password: password, DB: db}),
	}
}

func (e *AsynqEnqueuer) Enqueue(ctx context.Context, taskType string, payload interface{}, opts ...asynq.Option) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", taskType, err)
	}

	defaults := []asynq.Option{asynq.MaxRetry(3), asynq.Timeout(2 * time.Minute)}
	info, err := e.client.EnqueueContext(ctx, asynq.NewTask(taskType, data), append(defaults, opts...)...)
	if err != nil {
		return fmt.Errorf("enqueue %s: %w", taskType, err)
	}

	log.Debug().Str("task_id", info.ID).Str("type", taskType).Str("queue", info.Queue).Msg("task enqueued")
	return nil
}

func (e *AsynqEnqueuer) Close() error {
	return e.client.Close()
}

// NoopEnqueuer drops tasks; used when QUEUE_ENABLED=false.
type NoopEnqueuer struct{}

func (NoopEnqueuer) Enqueue(ctx context.Context, taskType string, payload interface{}, opts ...asynq.Option) error {
	log.Debug().Str("type", taskType).Msg("queue disabled, task dropped")
	return nil
}
