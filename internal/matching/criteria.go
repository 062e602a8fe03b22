package matching

import (
	"fmt"
	"math"
	"strings"
	"time"

	"polifund/grant-matcher/internal/models"
)

// timeNow is swapped in tests that pin company age.
var timeNow = time.Now

// CriteriaResult is the outcome of the hard-filter and scoring stage
// for a single announcement.
type CriteriaResult struct {
	Pass          bool
	Score         int
	ReasonLines   []string
	RejectReasons []string
}

// otherShare is the per-dimension slice of the age/revenue/region
// bucket.
var otherShare = int(math.Round(float64(ScoreOther) / 3.0))

// EvaluateCriteria applies the announcement's hard filters and
// accumulates the criteria score. Every applicable hard filter is
// checked even after the first failure so RejectReasons reports all
// failing dimensions, in the fixed order: business type, exclude
// keyword, age, revenue, region. Any failure zeroes the score.
func EvaluateCriteria(company *models.CompanyProfile, criteria *models.TargetCriteria, match KeywordMatcher) CriteriaResult {
	var (
		score         int
		reasonLines   []string
		rejectReasons []string
	)
	tokens := CompanyTokens(company)

	// Hard filter: business-type allow-list.
	allowed := normalizeAll(criteria.AllowedBizTypes)
	companyBiz := normalizeAll(company.BizType)
	if len(allowed) > 0 {
		if len(companyBiz) == 0 {
			rejectReasons = append(rejectReasons, MsgRejectBizType)
		} else if bizTypeAllowed(companyBiz, allowed) {
			score += ScoreBizType
			reasonLines = append(reasonLines, MsgBizTypeMet)
		} else {
			rejectReasons = append(rejectReasons, MsgRejectBizType)
		}
	} else if len(companyBiz) > 0 {
		score += ScoreBizType
		reasonLines = append(reasonLines, MsgBizTypeMet)
	}

	// Hard filter: exclude keywords.
	if len(criteria.ExcludeKeywords) > 0 {
		var matched []string
		for _, kw := range criteria.ExcludeKeywords {
			if match(kw, tokens) {
				matched = append(matched, kw)
			}
		}
		if len(matched) > 0 {
			if len(matched) > MaxNamedExcludeKws {
				matched = matched[:MaxNamedExcludeKws]
			}
			rejectReasons = append(rejectReasons, fmt.Sprintf(MsgRejectExcludeKeyword, strings.Join(matched, ", ")))
		}
	}

	// Company age. An unknown founding date is informational, not a
	// failure.
	if criteria.MinYears != nil || criteria.MaxYears != nil {
		years, known := companyAgeYears(company.EstDate)
		switch {
		case !known:
			reasonLines = append(reasonLines, MsgYearsUnknown)
		case criteria.MinYears != nil && years < *criteria.MinYears,
			criteria.MaxYears != nil && years > *criteria.MaxYears:
			rejectReasons = append(rejectReasons, MsgRejectYears)
		default:
			score += otherShare
			reasonLines = append(reasonLines, MsgYearsMet)
		}
	}

	// Revenue bounds.
	switch {
	case criteria.MinRevenue != nil && company.Revenue < *criteria.MinRevenue:
		rejectReasons = append(rejectReasons, MsgRejectRevenue)
	case criteria.MaxRevenue != nil && company.Revenue > *criteria.MaxRevenue:
		rejectReasons = append(rejectReasons, MsgRejectRevenue)
	case criteria.MinRevenue != nil || criteria.MaxRevenue != nil:
		score += otherShare
		reasonLines = append(reasonLines, MsgRevenueMet)
	}

	// Region. Missing company location when the announcement restricts
	// regions is a rejection: region is access-gating.
	if len(criteria.Regions) > 0 {
		if regionMatches(company.Region, criteria.Regions) {
			score += otherShare
			reasonLines = append(reasonLines, MsgRegionMet)
		} else {
			rejectReasons = append(rejectReasons, MsgRejectRegion)
		}
	}

	if len(rejectReasons) > 0 {
		return CriteriaResult{Pass: false, Score: 0, RejectReasons: rejectReasons}
	}

	// Keyword/items score. With include keywords configured, the award
	// is proportional to the matched share; without them, having any
	// item/keyword data at all earns a half-weight base credit.
	if len(criteria.IncludeKeywords) > 0 && len(tokens) > 0 {
		matchCount := 0
		for _, kw := range criteria.IncludeKeywords {
			if match(kw, tokens) {
				matchCount++
			}
		}
		if matchCount > 0 {
			ratio := math.Min(1, float64(matchCount)/float64(len(criteria.IncludeKeywords)))
			score += int(math.Round(ScoreKeywords * ratio))
			reasonLines = append(reasonLines, MsgKeywordsMatched)
		}
	} else if len(tokens) > 0 {
		score += int(math.Round(ScoreKeywords * 0.5))
		reasonLines = append(reasonLines, MsgItemsPresent)
	}

	if score > MaxScore {
		score = MaxScore
	}
	return CriteriaResult{Pass: true, Score: score, ReasonLines: reasonLines}
}

func normalizeAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if n := Normalize(v); n != "" {
			out = append(out, n)
		}
	}
	return out
}

func bizTypeAllowed(companyBiz, allowed []string) bool {
	for _, cb := range companyBiz {
		for _, a := range allowed {
			if containsEither(cb, a) {
				return true
			}
		}
	}
	return false
}

func regionMatches(region *models.Region, allowed []string) bool {
	if region == nil || region.IsEmpty() {
		return false
	}
	for _, candidate := range region.Candidates() {
		c := Normalize(candidate)
		if c == "" {
			continue
		}
		for _, r := range allowed {
			a := Normalize(r)
			if a == "" {
				continue
			}
			if containsEither(c, a) {
				return true
			}
		}
	}
	return false
}

// companyAgeYears derives whole years since founding, floor of the
// elapsed time. Returns known=false for an absent or unparseable date.
func companyAgeYears(estDate string) (int, bool) {
	estDate = strings.TrimSpace(estDate)
	if estDate == "" {
		return 0, false
	}

	est, err := time.Parse("2006-01-02", estDate)
	if err != nil {
		est, err = time.Parse(time.RFC3339, estDate)
		if err != nil {
			return 0, false
		}
	}

	elapsed := timeNow().Sub(est)
	if elapsed < 0 {
		return 0, true
	}
	return int(math.Floor(elapsed.Hours() / 24 / daysPerYear)), true
}
