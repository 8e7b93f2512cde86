package lifecycle

import (
	"testing"
	"time"
)

func TestComputeAggregatesEmpty(t *testing.T) {
	agg := ComputeAggregates(nil)
	if agg.VerifiedWorkCount != 0 || agg.TotalSpent != 0 || agg.LastServiceDate != nil {
		t.Fatalf("expected zero aggregates, got %+v", agg)
	}
}

// A connection with three verified records worth 1000.00 gains a fourth of
// 150.00: count 4, total 1150.00, last date the newest service date.
func TestComputeAggregatesApproval(t *testing.T) {
	d := func(day int) time.Time {
		return time.Date(2025, 3, day, 0, 0, 0, 0, time.UTC)
	}
	existing := []VerifiedWork{
		{Cost: 400, ServiceDate: d(1)},
		{Cost: 350, ServiceDate: d(10)},
		{Cost: 250, ServiceDate: d(5)},
	}

	before := ComputeAggregates(existing)
	if before.VerifiedWorkCount != 3 || before.TotalSpent != 1000 {
		t.Fatalf("before: %+v", before)
	}

	after := ComputeAggregates(append(existing, VerifiedWork{Cost: 150, ServiceDate: d(20)}))
	if after.VerifiedWorkCount != 4 {
		t.Fatalf("expected count 4, got %d", after.VerifiedWorkCount)
	}
	if after.TotalSpent != 1150 {
		t.Fatalf("expected total 1150, got %v", after.TotalSpent)
	}
	if after.LastServiceDate == nil || !after.LastServiceDate.Equal(d(20)) {
		t.Fatalf("expected last date %v, got %v", d(20), after.LastServiceDate)
	}
}

func TestComputeAggregatesLastDateUnordered(t *testing.T) {
	d := func(day int) time.Time {
		return time.Date(2025, 7, day, 0, 0, 0, 0, time.UTC)
	}
	agg := ComputeAggregates([]VerifiedWork{
		{Cost: 10, ServiceDate: d(15)},
		{Cost: 20, ServiceDate: d(2)},
		{Cost: 30, ServiceDate: d(9)},
	})
	if agg.LastServiceDate == nil || !agg.LastServiceDate.Equal(d(15)) {
		t.Fatalf("expected last date %v, got %v", d(15), agg.LastServiceDate)
	}
}
