package jobs

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

// Job type constants
const (
	TypeCallbackExecution  = "callback:execution"
	TypeMissedCallCallback = "callback:missed_call"
)

// Queue names
const (
	QueueHigh    = "high"
	QueueDefault = "default"
)

// CallbackJobPayload carries a scheduled callback to the worker. The
// task fires once at ScheduledFor; a missed callback is not retried.
type CallbackJobPayload struct {
	SessionID    string    `json:"session_id"`
	PhoneNumber  string    `json:"phone_number"`
	ProviderID   string    `json:"provider_id,omitempty"`
	Reference    string    `json:"reference"`
	Urgency      string    `json:"urgency"`
	ScheduledFor time.Time `json:"scheduled_for"`
}

// NewCallbackExecutionTask creates a deferred callback task. Emergency
// and urgent callbacks ride the high priority queue.
func NewCallbackExecutionTask(payload CallbackJobPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	queue := QueueDefault
	if payload.Urgency == "emergency" || payload.Urgency == "urgent" {
		queue = QueueHigh
	}

	return asynq.NewTask(TypeCallbackExecution, data,
		asynq.Queue(queue),
		asynq.MaxRetry(0),
		asynq.ProcessAt(payload.ScheduledFor)), nil
}

// MissedCallJobPayload carries a return call for a caller we missed.
type MissedCallJobPayload struct {
	SessionID    string    `json:"session_id"`
	PhoneNumber  string    `json:"phone_number"`
	ScheduledFor time.Time `json:"scheduled_for"`
}

// NewMissedCallCallbackTask creates a deferred return-call task.
func NewMissedCallCallbackTask(payload MissedCallJobPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeMissedCallCallback, data,
		asynq.Queue(QueueDefault),
		asynq.MaxRetry(0),
		asynq.ProcessAt(payload.ScheduledFor)), nil
}
