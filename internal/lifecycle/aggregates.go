package lifecycle

import "time"

// VerifiedWork is the slice of a verified service record that feeds the
// connection aggregates.
type VerifiedWork struct {
	Cost        float64
	ServiceDate time.Time
}

// ConnectionAggregates is the derived state carried on a connection row.
type ConnectionAggregates struct {
	VerifiedWorkCount int
	TotalSpent        float64
	LastServiceDate   *time.Time
}

// ComputeAggregates derives the connection counters from the full set of
// verified records. Recomputing from scratch inside the approval transaction
// keeps the counters from drifting the way incremental updates can.
func ComputeAggregates(works []VerifiedWork) ConnectionAggregates {
	agg := ConnectionAggregates{VerifiedWorkCount: len(works)}
	for _, w := range works {
		agg.TotalSpent += w.Cost
		if agg.LastServiceDate == nil || w.ServiceDate.After(*agg.LastServiceDate) {
			d := w.ServiceDate
			agg.LastServiceDate = &d
		}
	}
	return agg
}
