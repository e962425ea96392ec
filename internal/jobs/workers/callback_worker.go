package workers

import (
	"context"
	"encoding/json"
	"fmt"

	"echoaid-server/internal/jobs"
	"echoaid-server/internal/observability"
	"echoaid-server/internal/store"

	"github.com/hibiken/asynq"
)

// Dialer places the outbound leg of a callback.
type Dialer interface {
	Dial(ctx context.Context, toNumber string) (string, error)
}

// CallbackWorker executes scheduled callbacks and missed-call return
// calls when their deferred tasks fire.
type CallbackWorker struct {
	store  *store.Store
	dialer Dialer
	logger *observability.Logger
}

// NewCallbackWorker creates a new callback worker
func NewCallbackWorker(store *store.Store, dialer Dialer, logger *observability.Logger) *CallbackWorker {
	return &CallbackWorker{
		store:  store,
		dialer: dialer,
		logger: logger,
	}
}

// ProcessCallbackTask processes a scheduled callback task. The task is
// not retried: a failed dial marks the log failed and leaves the
// follow-up flag for human review.
func (w *CallbackWorker) ProcessCallbackTask(ctx context.Context, task *asynq.Task) error {
	var payload jobs.CallbackJobPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		w.logger.Error(ctx, "failed to unmarshal callback payload", err)
		return fmt.Errorf("failed to unmarshal callback payload: %w", err)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "session_id", Value: payload.SessionID},
		observability.Field{Key: "callback_reference", Value: payload.Reference},
	)
	return w.placeCallback(ctx, payload.SessionID, payload.PhoneNumber)
}

// ProcessMissedCallTask processes a missed-call return call task.
func (w *CallbackWorker) ProcessMissedCallTask(ctx context.Context, task *asynq.Task) error {
	var payload jobs.MissedCallJobPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		w.logger.Error(ctx, "failed to unmarshal missed call payload", err)
		return fmt.Errorf("failed to unmarshal missed call payload: %w", err)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "session_id", Value: payload.SessionID},
	)
	return w.placeCallback(ctx, payload.SessionID, payload.PhoneNumber)
}

func (w *CallbackWorker) placeCallback(ctx context.Context, sessionID string, phoneNumber string) error {
	if phoneNumber == "" {
		w.logger.Warn(ctx, "callback has no phone number, skipping")
		return nil
	}

	callSid, err := w.dialer.Dial(ctx, phoneNumber)
	if err != nil {
		if updateErr := w.store.UpdateLatestCallStatus(ctx, sessionID, store.CallStatusFailed, nil); updateErr != nil {
			w.logger.Error(ctx, "failed to mark callback as failed", updateErr)
		}
		w.logger.Error(ctx, "callback dial failed", err)
		return fmt.Errorf("callback dial failed: %w", err)
	}

	if err := w.store.UpdateLatestCallStatus(ctx, sessionID, store.CallStatusConnected, nil); err != nil {
		w.logger.Error(ctx, "failed to mark callback as connected", err)
	}
	if err := w.store.TouchSession(ctx, sessionID, store.SessionStatusActive); err != nil {
		w.logger.Error(ctx, "failed to reactivate session for callback", err)
	}

	w.logger.Info(ctx, fmt.Sprintf("callback connected to %s (call %s)", phoneNumber, callSid))
	return nil
}
