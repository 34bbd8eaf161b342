package engine

import "rentcompass/server/internal/models"

// SnapshotSource tags how a market snapshot was obtained, so the fallback
// path stays visible to callers and tests instead of hiding behind an empty
// slice check.
type SnapshotSource string

const (
	// SourceProvided means the caller supplied market data and the engine
	// trusted it as-is.
	SourceProvided SnapshotSource = "provided"

	// SourceComparables means the snapshot was derived from store
	// comparables.
	SourceComparables SnapshotSource = "comparables"

	// SourceFallback means no comparables were available and the snapshot
	// rests on the size-based fallback average.
	SourceFallback SnapshotSource = "fallback"
)

// MarketSnapshot is the aggregated market view a single evaluation scores
// against.
type MarketSnapshot struct {
	AvgRent        float64
	AvgRatePerArea float64
	Source         SnapshotSource
	Comparables    []models.ComparableProperty
}

// Aggregate reduces a comparable set to the two scalars the scorer needs.
// With no comparables it falls back to fallbackAvgRent spread over the
// reference area; the returned snapshot is tagged accordingly.
func Aggregate(comparables []models.ComparableProperty, fallbackAvgRent float64, referenceArea float64, source SnapshotSource) MarketSnapshot {
	// Caller-supplied comparables may carry a zero area; drop them rather
	// than let a division blow up the mean.
	usable := comparables[:0:0]
	for _, c := range comparables {
		if c.Rent > 0 && c.AreaUnits > 0 {
			usable = append(usable, c)
		}
	}

	if len(usable) == 0 {
		return MarketSnapshot{
			AvgRent:        fallbackAvgRent,
			AvgRatePerArea: fallbackAvgRent / referenceArea,
			Source:         SourceFallback,
		}
	}

	var sumRent, sumRate float64
	for _, c := range usable {
		sumRent += c.Rent
		sumRate += c.Rent / c.AreaUnits
	}
	n := float64(len(usable))

	return MarketSnapshot{
		AvgRent:        sumRent / n,
		AvgRatePerArea: sumRate / n,
		Source:         source,
		Comparables:    usable,
	}
}
