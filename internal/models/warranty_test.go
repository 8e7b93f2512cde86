package models

import (
	"testing"
	"time"
)

func TestWarrantyExpiringSoon(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	window := 30 * 24 * time.Hour

	tests := []struct {
		name      string
		expiresAt time.Time
		want      bool
	}{
		{"inside window", now.Add(10 * 24 * time.Hour), true},
		{"at window edge", now.Add(window), true},
		{"beyond window", now.Add(31 * 24 * time.Hour), false},
		{"already expired", now.Add(-24 * time.Hour), false},
		{"expires now", now, false},
	}
	for _, tt := range tests {
		w := Warranty{ExpiresAt: tt.expiresAt}
		if got := w.ExpiringSoon(now, window); got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}
