package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// EmergencyContact is a helpline with a coverage scope and a priority
// rank (1 = highest).
type EmergencyContact struct {
	ID           uuid.UUID      `db:"id"`
	ContactID    string         `db:"contact_id"`
	Name         LocalizedText  `db:"name"`
	Category     string         `db:"category"`
	Phone        string         `db:"phone"`
	ShortCode    sql.NullString `db:"short_code"`
	Coverage     string         `db:"coverage"`
	Location     Location       `db:"location"`
	Languages    StringArray    `db:"languages"`
	Availability string         `db:"availability"`
	Description  LocalizedText  `db:"description"`
	Priority     int            `db:"priority"`
	IsActive     bool           `db:"is_active"`
}

const sqlListActiveContactsByCategory = `
SELECT * FROM emergency_contacts
WHERE category = $1 AND is_active = true
ORDER BY id`

// ListActiveContactsByCategory returns active emergency contacts for
// the category in insertion order. Priority/coverage sorting happens in
// the routing engine.
func (s *Store) ListActiveContactsByCategory(ctx context.Context, category string) ([]EmergencyContact, error) {
	var contacts []EmergencyContact
	err := s.db.SelectContext(ctx, &contacts, sqlListActiveContactsByCategory, category)
	if err != nil {
		s.logger.Error(ctx, "failed to list active contacts by category", err)
		return nil, fmt.Errorf("failed to list active contacts by category: %w", err)
	}
	return contacts, nil
}
