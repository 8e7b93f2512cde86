package models

import (
	"testing"
	"time"
)

func TestNextDueDate(t *testing.T) {
	due := time.Date(2025, 1, 31, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		frequency string
		want      time.Time
	}{
		// AddDate normalizes Jan 31 + 1 month to Mar 3.
		{FrequencyMonthly, time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)},
		{FrequencyQuarterly, time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)},
		{FrequencyYearly, time.Date(2026, 1, 31, 9, 0, 0, 0, time.UTC)},
		{FrequencyOnce, time.Time{}},
		{"", time.Time{}},
	}
	for _, tt := range tests {
		if got := NextDueDate(due, tt.frequency); !got.Equal(tt.want) {
			t.Errorf("%q: got %v, want %v", tt.frequency, got, tt.want)
		}
	}
}
