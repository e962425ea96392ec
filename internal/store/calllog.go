package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CallLog records one call event for a session. Status transitions
// patch the row in place rather than appending a new one.
type CallLog struct {
	ID               uuid.UUID      `db:"id"`
	LogID            string         `db:"log_id"`
	SessionID        string         `db:"session_id"`
	CallType         string         `db:"call_type"`
	FromNumber       string         `db:"from_number"`
	ToNumber         sql.NullString `db:"to_number"`
	CallSid          sql.NullString `db:"call_sid"`
	Duration         sql.NullInt64  `db:"duration"`
	Status           string         `db:"status"`
	TransferredTo    TransferTarget `db:"transferred_to"`
	FollowUpRequired bool           `db:"follow_up_required"`
	Notes            sql.NullString `db:"notes"`
	Timestamp        time.Time      `db:"timestamp"`
}

// CreateCallLogParams holds the fields for logging one call event.
type CreateCallLogParams struct {
	LogID         string
	SessionID     string
	CallType      string
	FromNumber    string
	ToNumber      string
	CallSid       string
	Status        string
	TransferredTo TransferTarget
	ScheduledTime time.Time
}

const sqlCreateCallLog = `
INSERT INTO call_logs (log_id, session_id, call_type, from_number, to_number, call_sid, status, transferred_to, follow_up_required, timestamp)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING *`

func (s *Store) CreateCallLog(ctx context.Context, params CreateCallLogParams) (CallLog, error) {
	var toNumber, callSid sql.NullString
	if params.ToNumber != "" {
		toNumber = sql.NullString{String: params.ToNumber, Valid: true}
	}
	if params.CallSid != "" {
		callSid = sql.NullString{String: params.CallSid, Valid: true}
	}

	// A scheduled callback carries its fire time as the log timestamp.
	timestamp := params.ScheduledTime
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	var log CallLog
	err := s.db.GetContext(ctx, &log, sqlCreateCallLog,
		params.LogID, params.SessionID, params.CallType, params.FromNumber,
		toNumber, callSid, params.Status, params.TransferredTo,
		params.Status == CallStatusFailed, timestamp)
	if err != nil {
		s.logger.Error(ctx, "failed to create call log", err)
		return CallLog{}, fmt.Errorf("failed to create call log: %w", err)
	}
	return log, nil
}

const sqlUpdateLatestCallStatus = `
UPDATE call_logs
SET status = $2, duration = $3, follow_up_required = ($2 = 'failed')
WHERE id = (
    SELECT id FROM call_logs WHERE session_id = $1 ORDER BY timestamp DESC, id DESC LIMIT 1
)`

// UpdateLatestCallStatus patches the most recent call log for the
// session with a new status and optional duration in seconds.
func (s *Store) UpdateLatestCallStatus(ctx context.Context, sessionID string, status string, duration *int) error {
	var dur sql.NullInt64
	if duration != nil {
		dur = sql.NullInt64{Int64: int64(*duration), Valid: true}
	}
	result, err := s.db.ExecContext(ctx, sqlUpdateLatestCallStatus, sessionID, status, dur)
	if err != nil {
		s.logger.Error(ctx, "failed to update latest call status", err)
		return fmt.Errorf("failed to update latest call status: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

const sqlListRecentCallsByPhone = `
SELECT * FROM call_logs
WHERE from_number = $1 AND timestamp > $2
ORDER BY timestamp DESC`

// ListRecentCallsByPhone returns the call history for a phone number
// since the cutoff, newest first.
func (s *Store) ListRecentCallsByPhone(ctx context.Context, fromNumber string, since time.Time) ([]CallLog, error) {
	var logs []CallLog
	err := s.db.SelectContext(ctx, &logs, sqlListRecentCallsByPhone, fromNumber, since)
	if err != nil {
		s.logger.Error(ctx, "failed to list recent calls by phone", err)
		return nil, fmt.Errorf("failed to list recent calls by phone: %w", err)
	}
	return logs, nil
}
