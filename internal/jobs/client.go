package jobs

import (
	"context"
	"fmt"

	"echoaid-server/internal/observability"

	"github.com/hibiken/asynq"
)

// Client handles enqueueing background jobs
type Client struct {
	client *asynq.Client
	logger *observability.Logger
}

// NewClient creates a new job client
func NewClient(redisAddr string, logger *observability.Logger) *Client {
	client := asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddr})
	return &Client{
		client: client,
		logger: logger,
	}
}

// Close closes the client connection
func (c *Client) Close() error {
	return c.client.Close()
}

// EnqueueCallbackExecution enqueues a scheduled callback task. The task
// is held by the queue backend until its scheduled time.
func (c *Client) EnqueueCallbackExecution(ctx context.Context, payload CallbackJobPayload) error {
	task, err := NewCallbackExecutionTask(payload)
	if err != nil {
		c.logger.Error(ctx, "failed to create callback execution task", err)
		return fmt.Errorf("failed to create callback execution task: %w", err)
	}

	info, err := c.client.EnqueueContext(ctx, task)
	if err != nil {
		c.logger.Error(ctx, "failed to enqueue callback execution task", err)
		return fmt.Errorf("failed to enqueue callback execution task: %w", err)
	}

	c.logger.Info(ctx, fmt.Sprintf("enqueued callback execution task: %s (queue: %s)", info.ID, info.Queue))
	return nil
}

// EnqueueMissedCallCallback enqueues a return call for a missed caller.
func (c *Client) EnqueueMissedCallCallback(ctx context.Context, payload MissedCallJobPayload) error {
	task, err := NewMissedCallCallbackTask(payload)
	if err != nil {
		c.logger.Error(ctx, "failed to create missed call callback task", err)
		return fmt.Errorf("failed to create missed call callback task: %w", err)
	}

	info, err := c.client.EnqueueContext(ctx, task)
	if err != nil {
		c.logger.Error(ctx, "failed to enqueue missed call callback task", err)
		return fmt.Errorf("failed to enqueue missed call callback task: %w", err)
	}

	c.logger.Info(ctx, fmt.Sprintf("enqueued missed call callback task: %s (queue: %s)", info.ID, info.Queue))
	return nil
}
