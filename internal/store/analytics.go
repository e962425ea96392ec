package store

import (
	"context"
	"fmt"
	"time"
)

// IntentCount is one entry of an intent frequency breakdown.
type IntentCount struct {
	Intent string `db:"intent" json:"intent"`
	Count  int    `db:"count" json:"count"`
}

// LanguageCount is one entry of a language distribution breakdown.
type LanguageCount struct {
	Language string `db:"language" json:"language"`
	Count    int    `db:"count" json:"count"`
}

// DailyCallMetrics is an aggregated snapshot over one calendar day.
type DailyCallMetrics struct {
	Date                  string          `json:"date"`
	TotalCalls            int             `json:"totalCalls"`
	UniqueCallers         int             `json:"uniqueUsers"`
	SuccessfulConnections int             `json:"successfulConnections"`
	AverageCallDuration   float64         `json:"averageCallDuration"`
	TopIntents            []IntentCount   `json:"topIntents"`
	LanguageDistribution  []LanguageCount `json:"languageDistribution"`
}

const sqlDailyCallTotals = `
SELECT
    count(*)                                        AS total_calls,
    count(DISTINCT from_number)                     AS unique_callers,
    count(*) FILTER (WHERE status = 'connected')    AS successful_connections,
    coalesce(avg(duration), 0)                      AS average_duration
FROM call_logs
WHERE timestamp >= $1 AND timestamp < $2`

const sqlDailyTopIntents = `
SELECT ai_response->>'intent' AS intent, count(*) AS count
FROM voice_interactions
WHERE timestamp >= $1 AND timestamp < $2
GROUP BY 1
ORDER BY count DESC, intent
LIMIT 5`

const sqlDailyLanguages = `
SELECT user_input->>'language' AS language, count(*) AS count
FROM voice_interactions
WHERE timestamp >= $1 AND timestamp < $2
GROUP BY 1
ORDER BY count DESC, language`

// GetDailyCallMetrics aggregates call logs and interactions for the
// calendar day starting at dayStart.
func (s *Store) GetDailyCallMetrics(ctx context.Context, dayStart time.Time) (DailyCallMetrics, error) {
	dayEnd := dayStart.Add(24 * time.Hour)

	var totals struct {
		TotalCalls            int     `db:"total_calls"`
		UniqueCallers         int     `db:"unique_callers"`
		SuccessfulConnections int     `db:"successful_connections"`
		AverageDuration       float64 `db:"average_duration"`
	}
	if err := s.db.GetContext(ctx, &totals, sqlDailyCallTotals, dayStart, dayEnd); err != nil {
		s.logger.Error(ctx, "failed to aggregate daily call totals", err)
		return DailyCallMetrics{}, fmt.Errorf("failed to aggregate daily call totals: %w", err)
	}

	var intents []IntentCount
	if err := s.db.SelectContext(ctx, &intents, sqlDailyTopIntents, dayStart, dayEnd); err != nil {
		s.logger.Error(ctx, "failed to aggregate daily top intents", err)
		return DailyCallMetrics{}, fmt.Errorf("failed to aggregate daily top intents: %w", err)
	}

	var languages []LanguageCount
	if err := s.db.SelectContext(ctx, &languages, sqlDailyLanguages, dayStart, dayEnd); err != nil {
		s.logger.Error(ctx, "failed to aggregate daily language distribution", err)
		return DailyCallMetrics{}, fmt.Errorf("failed to aggregate daily language distribution: %w", err)
	}

	return DailyCallMetrics{
		Date:                  dayStart.Format("2006-01-02"),
		TotalCalls:            totals.TotalCalls,
		UniqueCallers:         totals.UniqueCallers,
		SuccessfulConnections: totals.SuccessfulConnections,
		AverageCallDuration:   totals.AverageDuration,
		TopIntents:            intents,
		LanguageDistribution:  languages,
	}, nil
}
