package engine

import "time"

// Params holds the engine's tunable constants. Values are injected rather
// than inlined so the heuristic can be tuned and unit-tested independently.
type Params struct {
	// ComparableLimit caps how many comparables a single evaluation pulls
	// from the store.
	ComparableLimit int

	// StoreTimeout bounds the comparable store query. On expiry the
	// evaluation degrades to the no-comparables fallback.
	StoreTimeout time.Duration

	// ReferenceArea is the baseline area used to derive a rate per unit
	// when no comparable carries a usable area.
	ReferenceArea float64

	// FallbackRatePerArea sizes the fallback average rent when neither the
	// caller nor the store supplies market figures: rent ≈ area × rate.
	FallbackRatePerArea float64

	// AmenityBonusStep is the per-amenity factor bonus.
	AmenityBonusStep float64

	// AmenityBonusCap caps the total amenity bonus.
	AmenityBonusCap float64

	// SizeThreshold is the area above which the size factor rewards
	// instead of penalizing.
	SizeThreshold float64

	// FairRangeSpread is the half-width of the fair-price band around the
	// market-implied fair rent.
	FairRangeSpread float64
}

func DefaultParams() Params {
	return Params{
		ComparableLimit:     5,
		StoreTimeout:        2 * time.Second,
		ReferenceArea:       1000,
		FallbackRatePerArea: 1.5,
		AmenityBonusStep:    0.02,
		AmenityBonusCap:     0.2,
		SizeThreshold:       800,
		FairRangeSpread:     0.1,
	}
}
