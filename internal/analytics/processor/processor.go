package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"fmt"
	"time"

	"echoaid-server/internal/observability"
	"echoaid-server/internal/store"
)

// AnalyticsStore defines the database operations required by AnalyticsProcessor
type AnalyticsStore interface {
	GetDailyCallMetrics(ctx context.Context, dayStart time.Time) (store.DailyCallMetrics, error)
}

type AnalyticsProcessor struct {
	store  AnalyticsStore
	logger *observability.Logger
	now    func() time.Time
}

func New(store AnalyticsStore, logger *observability.Logger) AnalyticsProcessor {
	return AnalyticsProcessor{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// GetDailySnapshot aggregates call and interaction metrics for one
// calendar day in UTC. A zero date means today.
func (p *AnalyticsProcessor) GetDailySnapshot(ctx context.Context, date time.Time) (store.DailyCallMetrics, error) {
	if date.IsZero() {
		date = p.now()
	}
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	metrics, err := p.store.GetDailyCallMetrics(ctx, dayStart)
	if err != nil {
		return store.DailyCallMetrics{}, fmt.Errorf("failed to build daily snapshot: %w", err)
	}
	return metrics, nil
}
