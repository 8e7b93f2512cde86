package models

import (
	"testing"
	"time"
)

func TestQuoteExpired(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name      string
		status    string
		expiresAt *time.Time
		want      bool
	}{
		{"offered past expiry", QuoteOffered, &past, true},
		{"offered before expiry", QuoteOffered, &future, false},
		{"offered without expiry", QuoteOffered, nil, false},
		{"accepted never expires", QuoteAccepted, &past, false},
		{"declined never expires", QuoteDeclined, &past, false},
	}
	for _, tt := range tests {
		q := Quote{Status: tt.status, ExpiresAt: tt.expiresAt}
		if got := q.Expired(now); got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestQuoteItemsTotal(t *testing.T) {
	q := Quote{Items: []QuoteItem{
		{Description: "labor", Quantity: 3, UnitPrice: 120},
		{Description: "parts", Quantity: 1, UnitPrice: 89.50},
		{Description: "disposal", Quantity: 2, UnitPrice: 25.25},
	}}
	if got, want := q.ItemsTotal(), 3*120+89.50+2*25.25; got != want {
		t.Fatalf("got %.2f, want %.2f", got, want)
	}

	if got := (Quote{}).ItemsTotal(); got != 0 {
		t.Fatalf("no items: got %.2f, want 0", got)
	}
}
