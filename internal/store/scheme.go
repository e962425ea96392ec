package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// WelfareScheme is a government welfare program with localized copy and
// application metadata. Externally curated, read-only here.
type WelfareScheme struct {
	ID                 uuid.UUID          `db:"id"`
	SchemeID           string             `db:"scheme_id"`
	Name               LocalizedText      `db:"name"`
	Description        LocalizedText      `db:"description"`
	Category           string             `db:"category"`
	Eligibility        StringArray        `db:"eligibility"`
	TargetGroups       StringArray        `db:"target_groups"`
	ApplicationProcess ApplicationProcess `db:"application_process"`
	ContactInfo        SchemeContact      `db:"contact_info"`
	IsActive           bool               `db:"is_active"`
	LastUpdated        time.Time          `db:"last_updated"`
}

const sqlListActiveSchemesByCategory = `
SELECT * FROM welfare_schemes
WHERE category = $1 AND is_active = true
ORDER BY id`

// ListActiveSchemesByCategory returns active schemes for the category
// in insertion order.
func (s *Store) ListActiveSchemesByCategory(ctx context.Context, category string) ([]WelfareScheme, error) {
	var schemes []WelfareScheme
	err := s.db.SelectContext(ctx, &schemes, sqlListActiveSchemesByCategory, category)
	if err != nil {
		s.logger.Error(ctx, "failed to list active schemes by category", err)
		return nil, fmt.Errorf("failed to list active schemes by category: %w", err)
	}
	return schemes, nil
}
