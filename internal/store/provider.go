package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ServiceProvider is an externally curated organization that can take a
// transferred call. Read-only from the routing path.
type ServiceProvider struct {
	ID              uuid.UUID            `db:"id"`
	ProviderID      string               `db:"provider_id"`
	Name            string               `db:"name"`
	Type            string               `db:"type"`
	Services        StringArray          `db:"services"`
	Languages       StringArray          `db:"languages"`
	Location        Location             `db:"location"`
	Contact         ProviderContact      `db:"contact"`
	Availability    ProviderAvailability `db:"availability"`
	Capacity        ProviderCapacity     `db:"capacity"`
	Verification    ProviderVerification `db:"verification"`
	Specializations StringArray          `db:"specializations"`
	IsActive        bool                 `db:"is_active"`
}

const sqlGetProviderByProviderID = `
SELECT * FROM service_providers WHERE provider_id = $1`

func (s *Store) GetProviderByID(ctx context.Context, providerID string) (ServiceProvider, error) {
	var provider ServiceProvider
	err := s.db.GetContext(ctx, &provider, sqlGetProviderByProviderID, providerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ServiceProvider{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get provider by provider ID", err)
		return ServiceProvider{}, fmt.Errorf("failed to get provider by provider ID: %w", err)
	}
	return provider, nil
}

const sqlListVerifiedActiveProviders = `
SELECT * FROM service_providers
WHERE is_active = true AND (verification->>'isVerified')::boolean = true
ORDER BY id`

// ListVerifiedActiveProviders returns every active, verified provider
// in insertion order. Service/location/specialization filtering happens
// in the routing engine.
func (s *Store) ListVerifiedActiveProviders(ctx context.Context) ([]ServiceProvider, error) {
	var providers []ServiceProvider
	err := s.db.SelectContext(ctx, &providers, sqlListVerifiedActiveProviders)
	if err != nil {
		s.logger.Error(ctx, "failed to list verified active providers", err)
		return nil, fmt.Errorf("failed to list verified active providers: %w", err)
	}
	return providers, nil
}
