package engine

import (
	"fmt"

	"rentcompass/server/internal/models"
)

const minAmenityCount = 3

// Recommend inspects the score and raw inputs and emits remediation
// suggestions. The returned slice is never empty: when no rule fires, a
// default monitoring suggestion is appended.
func Recommend(subject *models.PropertyDetails, fairnessScore int, priceRange models.PriceRange) []string {
	var recommendations []string

	if fairnessScore < 70 {
		recommendations = append(recommendations,
			"Consider adjusting the rent closer to market value to stay competitive")
		if subject.Rent > priceRange.Max {
			recommendations = append(recommendations, fmt.Sprintf(
				"Lower the rent into the fair range of $%.0f - $%.0f", priceRange.Min, priceRange.Max))
		}
	}

	if len(subject.Amenities) < minAmenityCount {
		recommendations = append(recommendations,
			"Add amenities (e.g. parking, laundry, dishwasher) to justify the current pricing")
	}

	if models.ParseCondition(subject.Condition).NeedsImprovement() {
		recommendations = append(recommendations,
			"Improve the property condition to justify the current pricing")
	}

	if len(recommendations) == 0 {
		recommendations = append(recommendations,
			"Pricing looks appropriate; continue monitoring market rates")
	}

	return recommendations
}
