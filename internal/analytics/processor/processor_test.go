package processor

import (
	"context"
	"errors"
	"testing"
	"time"

	"echoaid-server/internal/observability"
	"echoaid-server/internal/store"

	"go.uber.org/mock/gomock"
)

func TestGetDailySnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	t.Run("explicit date is truncated to the UTC day start", func(t *testing.T) {
		mockStore := NewMockAnalyticsStore(ctrl)
		p := New(mockStore, observability.NewLogger())

		want := store.DailyCallMetrics{Date: "2026-03-14", TotalCalls: 42}
		mockStore.EXPECT().
			GetDailyCallMetrics(ctx, time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)).
			Return(want, nil)

		got, err := p.GetDailySnapshot(ctx, time.Date(2026, time.March, 14, 17, 45, 3, 0, time.UTC))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.TotalCalls != 42 {
			t.Errorf("total calls = %d, want 42", got.TotalCalls)
		}
	})

	t.Run("zero date means today", func(t *testing.T) {
		mockStore := NewMockAnalyticsStore(ctrl)
		p := New(mockStore, observability.NewLogger())
		p.now = func() time.Time { return time.Date(2026, time.March, 14, 9, 0, 0, 0, time.UTC) }

		mockStore.EXPECT().
			GetDailyCallMetrics(ctx, time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)).
			Return(store.DailyCallMetrics{}, nil)

		if _, err := p.GetDailySnapshot(ctx, time.Time{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("store failure propagates", func(t *testing.T) {
		mockStore := NewMockAnalyticsStore(ctrl)
		p := New(mockStore, observability.NewLogger())

		mockStore.EXPECT().
			GetDailyCallMetrics(ctx, gomock.Any()).
			Return(store.DailyCallMetrics{}, errors.New("connection refused"))

		if _, err := p.GetDailySnapshot(ctx, time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)); err == nil {
			t.Fatal("expected error")
		}
	})
}
