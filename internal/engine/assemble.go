package engine

import (
	"fmt"

	"rentcompass/server/internal/models"
)

// Thresholds for the above/below/at-market statement in the analysis.
const (
	aboveMarketRatio = 1.1
	belowMarketRatio = 0.9
)

// Assemble packages the pipeline outputs into the response contract.
func Assemble(subject *models.PropertyDetails, market MarketSnapshot, fairnessScore int, priceRange models.PriceRange, recommendations []string) *models.EvaluationResult {
	return &models.EvaluationResult{
		FairnessScore:   fairnessScore,
		Analysis:        buildAnalysis(subject, market),
		Recommendations: recommendations,
		FairPriceRange:  priceRange,
		Summary:         summarize(fairnessScore),
	}
}

func buildAnalysis(subject *models.PropertyDetails, market MarketSnapshot) string {
	pricePerArea := subject.Rent / subject.AreaUnits
	ratio := pricePerArea / market.AvgRatePerArea

	var position string
	switch {
	case ratio > aboveMarketRatio:
		position = "above market rates"
	case ratio < belowMarketRatio:
		position = "below market rates"
	default:
		position = "in line with market rates"
	}

	return fmt.Sprintf(
		"The property is priced at $%.2f per unit area against a market average of $%.2f per unit area, placing it %s.",
		pricePerArea, market.AvgRatePerArea, position)
}

func summarize(score int) string {
	switch {
	case score >= 90:
		return "Exceptional value - priced very competitively for the market"
	case score >= 80:
		return "Fair price - aligns well with comparable properties"
	case score >= 70:
		return "Reasonable price - minor adjustments could improve competitiveness"
	case score >= 60:
		return "Somewhat overpriced - consider reviewing the rent"
	default:
		return "Significantly overpriced - a rent adjustment is recommended"
	}
}
