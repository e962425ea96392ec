package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// VoiceSession is a caller's ongoing interaction context. SessionID is
// the external identifier correlated to a phone number; rows are never
// hard-deleted.
type VoiceSession struct {
	ID           uuid.UUID      `db:"id"`
	SessionID    string         `db:"session_id"`
	PhoneNumber  sql.NullString `db:"phone_number"`
	Language     string         `db:"language"`
	Location     Location       `db:"location"`
	UserProfile  UserProfile    `db:"user_profile"`
	Status       string         `db:"status"`
	CreatedAt    time.Time      `db:"created_at"`
	LastActivity time.Time      `db:"last_activity"`
}

// CreateSessionParams holds the fields needed to open a new session.
type CreateSessionParams struct {
	SessionID   string
	PhoneNumber string
	Language    string
	Status      string
	CreatedAt   time.Time
}

const sqlGetSessionBySessionID = `
SELECT * FROM voice_sessions WHERE session_id = $1`

func (s *Store) GetSessionByID(ctx context.Context, sessionID string) (VoiceSession, error) {
	var session VoiceSession
	err := s.db.GetContext(ctx, &session, sqlGetSessionBySessionID, sessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return VoiceSession{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get session by session ID", err)
		return VoiceSession{}, fmt.Errorf("failed to get session by session ID: %w", err)
	}
	return session, nil
}

const sqlGetRecentSessionByPhone = `
SELECT * FROM voice_sessions
WHERE phone_number = $1 AND last_activity > $2
ORDER BY last_activity DESC
LIMIT 1`

// GetRecentSessionByPhone returns the most recent session for the phone
// number with activity after the given cutoff.
func (s *Store) GetRecentSessionByPhone(ctx context.Context, phoneNumber string, activeSince time.Time) (VoiceSession, error) {
	var session VoiceSession
	err := s.db.GetContext(ctx, &session, sqlGetRecentSessionByPhone, phoneNumber, activeSince)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return VoiceSession{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get recent session by phone", err)
		return VoiceSession{}, fmt.Errorf("failed to get recent session by phone: %w", err)
	}
	return session, nil
}

const sqlCreateSession = `
INSERT INTO voice_sessions (session_id, phone_number, language, status, created_at, last_activity)
VALUES ($1, $2, $3, $4, $5, $5)
RETURNING *`

func (s *Store) CreateSession(ctx context.Context, params CreateSessionParams) (VoiceSession, error) {
	createdAt := params.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	var phone sql.NullString
	if params.PhoneNumber != "" {
		phone = sql.NullString{String: params.PhoneNumber, Valid: true}
	}

	var session VoiceSession
	err := s.db.GetContext(ctx, &session, sqlCreateSession,
		params.SessionID, phone, params.Language, params.Status, createdAt)
	if err != nil {
		s.logger.Error(ctx, "failed to create session", err)
		return VoiceSession{}, fmt.Errorf("failed to create session: %w", err)
	}
	return session, nil
}

const sqlTouchSession = `
UPDATE voice_sessions SET status = $2, last_activity = now() WHERE session_id = $1`

// TouchSession bumps last_activity and sets the session status.
func (s *Store) TouchSession(ctx context.Context, sessionID string, status string) error {
	result, err := s.db.ExecContext(ctx, sqlTouchSession, sessionID, status)
	if err != nil {
		s.logger.Error(ctx, "failed to touch session", err)
		return fmt.Errorf("failed to touch session: %w", err)
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

const sqlUpdateSessionProfile = `
UPDATE voice_sessions SET user_profile = $2, last_activity = now() WHERE session_id = $1`

// UpdateSessionProfile replaces the embedded user profile.
func (s *Store) UpdateSessionProfile(ctx context.Context, sessionID string, profile UserProfile) error {
	result, err := s.db.ExecContext(ctx, sqlUpdateSessionProfile, sessionID, profile)
	if err != nil {
		s.logger.Error(ctx, "failed to update session profile", err)
		return fmt.Errorf("failed to update session profile: %w", err)
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
