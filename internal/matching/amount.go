package matching

import (
	"math"

	"polifund/grant-matcher/internal/models"
)

// AmountRange derives the conservative/base/optimistic funding
// estimate from company revenue, each step capped by the
// announcement's maximum.
func AmountRange(revenue, maxAmount int64) models.AmountRange {
	return models.AmountRange{
		Conservative: capByRevenue(revenue, maxAmount, RevenueCapRatioConservative),
		Base:         capByRevenue(revenue, maxAmount, RevenueCapRatioBase),
		Optimistic:   capByRevenue(revenue, maxAmount, RevenueCapRatioOptimistic),
	}
}

func capByRevenue(revenue, maxAmount int64, ratio float64) int64 {
	fromRevenue := int64(math.Floor(float64(revenue) * ratio))
	if maxAmount < fromRevenue {
		return maxAmount
	}
	return fromRevenue
}

// Confidence buckets a final score into its display tier.
func Confidence(score int) models.MatchConfidence {
	switch {
	case score >= ConfidenceHighMin:
		return models.ConfidenceHigh
	case score >= ConfidenceMediumMin:
		return models.ConfidenceMedium
	default:
		return models.ConfidenceLow
	}
}
