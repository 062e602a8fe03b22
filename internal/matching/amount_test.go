package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"polifund/grant-matcher/internal/models"
)

func TestAmountRangeFromRevenue(t *testing.T) {
	got := AmountRange(400_000_000, 500_000_000)

	assert.Equal(t, models.AmountRange{
		Conservative: 100_000_000,
		Base:         140_000_000,
		Optimistic:   200_000_000,
	}, got)
}

func TestAmountRangeCappedByAnnouncementMax(t *testing.T) {
	got := AmountRange(2_000_000_000, 300_000_000)

	// Base and optimistic both exceed the cap; conservative does not.
	assert.Equal(t, models.AmountRange{
		Conservative: 300_000_000,
		Base:         300_000_000,
		Optimistic:   300_000_000,
	}, got)

	got = AmountRange(1_000_000_000, 300_000_000)
	assert.Equal(t, int64(250_000_000), got.Conservative)
	assert.Equal(t, int64(300_000_000), got.Base)
	assert.Equal(t, int64(300_000_000), got.Optimistic)
}

func TestAmountRangeZeroMaxAmount(t *testing.T) {
	got := AmountRange(400_000_000, 0)

	assert.Equal(t, models.AmountRange{}, got)
}

func TestAmountRangeOrderingInvariant(t *testing.T) {
	revenues := []int64{0, 1, 999, 50_000_000, 400_000_000, 7_777_777_777}
	maxes := []int64{0, 1_000_000, 100_000_000, 5_000_000_000}

	for _, revenue := range revenues {
		for _, max := range maxes {
			got := AmountRange(revenue, max)
			assert.LessOrEqual(t, got.Conservative, got.Base)
			assert.LessOrEqual(t, got.Base, got.Optimistic)
			assert.LessOrEqual(t, got.Optimistic, max)
			assert.GreaterOrEqual(t, got.Conservative, int64(0))
		}
	}
}

func TestConfidenceTiers(t *testing.T) {
	tests := []struct {
		score int
		want  models.MatchConfidence
	}{
		{100, models.ConfidenceHigh},
		{80, models.ConfidenceHigh},
		{79, models.ConfidenceMedium},
		{55, models.ConfidenceMedium},
		{54, models.ConfidenceLow},
		{0, models.ConfidenceLow},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Confidence(tt.score), "score %d", tt.score)
	}
}
