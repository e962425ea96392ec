package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// VoiceInteraction is one turn of a conversation: what the caller said
// and what the system answered.
type VoiceInteraction struct {
	ID            uuid.UUID           `db:"id"`
	InteractionID string              `db:"interaction_id"`
	SessionID     string              `db:"session_id"`
	UserInput     InteractionInput    `db:"user_input"`
	AIResponse    InteractionResponse `db:"ai_response"`
	Timestamp     time.Time           `db:"timestamp"`
}

// CreateInteractionParams holds one conversation turn for persistence.
type CreateInteractionParams struct {
	InteractionID string
	SessionID     string
	UserInput     InteractionInput
	AIResponse    InteractionResponse
}

const sqlCreateInteraction = `
INSERT INTO voice_interactions (interaction_id, session_id, user_input, ai_response, timestamp)
VALUES ($1, $2, $3, $4, now())
RETURNING *`

func (s *Store) CreateInteraction(ctx context.Context, params CreateInteractionParams) (VoiceInteraction, error) {
	var interaction VoiceInteraction
	err := s.db.GetContext(ctx, &interaction, sqlCreateInteraction,
		params.InteractionID, params.SessionID, params.UserInput, params.AIResponse)
	if err != nil {
		s.logger.Error(ctx, "failed to create interaction", err)
		return VoiceInteraction{}, fmt.Errorf("failed to create interaction: %w", err)
	}
	return interaction, nil
}
