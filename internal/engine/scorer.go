package engine

import (
	"math"

	"rentcompass/server/internal/models"
)

// Factor values applied on top of the base deviation score.
const (
	factorBonus   = 1.1
	factorNeutral = 1.0
	factorPenalty = 0.9
)

// FactorSet holds the four multiplicative adjustment factors, each centered
// near 1.0.
type FactorSet struct {
	Location  float64
	Condition float64
	Amenities float64
	Size      float64
}

// WeightPolicy combines the base score, adjustment factors and the market
// rate ratio into an unclamped weighted score. Isolated behind an interface
// so the weighting heuristic can be swapped without touching the pipeline.
type WeightPolicy interface {
	Combine(baseScore float64, factors FactorSet, rateRatio float64, metrics models.Metrics) float64
}

// legacyPolicy reproduces the original weighting: each factor scaled by its
// importance weight over 100 and summed, with the raw rate ratio standing in
// as the market-rate term. Weights outside [0,100] are clamped at the
// boundary.
type legacyPolicy struct{}

func (legacyPolicy) Combine(baseScore float64, f FactorSet, rateRatio float64, m models.Metrics) float64 {
	multiplier := f.Location*weight01(m.LocationImportance) +
		f.Condition*weight01(m.ConditionImportance) +
		f.Amenities*weight01(m.AmenitiesImportance) +
		rateRatio*weight01(m.MarketRateImportance) +
		f.Size*weight01(m.SizeImportance)
	return baseScore * multiplier
}

func weight01(w float64) float64 {
	return clamp(w, 0, 100) / 100
}

// Scorer computes the fairness score and fair-price range for a subject
// against a market snapshot.
type Scorer struct {
	params Params
	policy WeightPolicy
}

func NewScorer(params Params, policy WeightPolicy) *Scorer {
	if policy == nil {
		policy = legacyPolicy{}
	}
	return &Scorer{params: params, policy: policy}
}

// Score requires subject.Rent > 0, subject.AreaUnits > 0 and a positive
// market rate; validation upstream guarantees all three.
func (s *Scorer) Score(subject *models.PropertyDetails, metrics models.Metrics, market MarketSnapshot) (int, models.PriceRange) {
	pricePerArea := subject.Rent / subject.AreaUnits
	marketPricePerArea := market.AvgRatePerArea

	// Symmetric penalty for deviating from the market rate in either
	// direction, clamped to [0,100].
	deviation := math.Abs(pricePerArea/marketPricePerArea-1) * 100
	baseScore := 100 - math.Min(100, deviation)

	factors := s.factors(subject)
	rateRatio := marketPricePerArea / pricePerArea

	weighted := s.policy.Combine(baseScore, factors, rateRatio, metrics)
	score := int(math.Round(clamp(weighted, 0, 100)))

	fairPrice := marketPricePerArea * subject.AreaUnits
	priceRange := models.PriceRange{
		Min: math.Round(fairPrice * (1 - s.params.FairRangeSpread)),
		Max: math.Round(fairPrice * (1 + s.params.FairRangeSpread)),
	}

	return score, priceRange
}

func (s *Scorer) factors(subject *models.PropertyDetails) FactorSet {
	f := FactorSet{
		Location:  factorPenalty,
		Condition: factorPenalty,
		Amenities: factorNeutral,
		Size:      factorPenalty,
	}

	if subject.LocationDetails != nil {
		f.Location = factorNeutral
	}

	switch cond := models.ParseCondition(subject.Condition); {
	case cond.Favorable():
		f.Condition = factorBonus
	case cond.Neutral():
		f.Condition = factorNeutral
	}

	bonus := float64(len(subject.Amenities)) * s.params.AmenityBonusStep
	f.Amenities = 1 + math.Min(s.params.AmenityBonusCap, bonus)

	if subject.AreaUnits > s.params.SizeThreshold {
		f.Size = factorBonus
	}

	return f
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
