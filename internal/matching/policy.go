// Package matching implements the eligibility matching and ranking
// engine: hard filters, weighted fitness scoring, certification
// bonuses, risk penalties, funding estimates, and the deterministic
// ordering of results. It is pure computation over in-memory values;
// no I/O happens here.
package matching

// Score weights for the criteria stage. Business type, keyword/items
// match, and the "other" bucket (age/revenue/region, split three ways)
// add up to 100.
const (
	ScoreBizType  = 40
	ScoreKeywords = 35
	ScoreOther    = 25
)

// Final score composition and caps.
const (
	CriteriaScoreWeight = 0.7
	CertBonusCap        = 15
	RiskPenaltyCap      = 30
	MaxScore            = 100
)

// Confidence tier boundaries, inclusive on the lower bound of each
// tier. The Medium/Low boundary is pinned at 55.
const (
	ConfidenceHighMin   = 80
	ConfidenceMediumMin = 55
)

// Revenue ratios for the three-step funding estimate. Fixed policy
// constants, not configurable per announcement.
const (
	RevenueCapRatioConservative = 0.25
	RevenueCapRatioBase         = 0.35
	RevenueCapRatioOptimistic   = 0.5
)

// Soft risk penalties.
const (
	PenaltyGuaranteeAccidentOpen     = 20
	PenaltyPastDefaultResolved       = 8
	PenaltyGuaranteeAccidentResolved = 5
	PenaltyOverLeveraged             = 5
)

// Display caps.
const (
	MaxReasons         = 3
	MaxRejectReasons   = 4
	MaxWarnings        = 3
	MaxNamedExcludeKws = 3
)

// interestRateNilSentinel sorts announcements without a published rate
// after every real rate.
const interestRateNilSentinel = 999

// daysPerYear converts elapsed time to whole company-age years.
const daysPerYear = 365.25

// Policy carries the few evaluation knobs that are configurable. The
// zero value is not meaningful; use DefaultPolicy.
type Policy struct {
	// ArrearsHardFail disqualifies companies with tax, local-tax, or
	// social-insurance arrears. Most programs require clearance
	// certificates, so this defaults to true; switching it off
	// downgrades arrears to warnings. TODO: make this per-announcement
	// once criteria carry an arrears-tolerance field.
	ArrearsHardFail bool

	// Concurrency bounds the per-announcement evaluation fan-out.
	Concurrency int
}

func DefaultPolicy() Policy {
	return Policy{
		ArrearsHardFail: true,
		Concurrency:     4,
	}
}
