package matching

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"polifund/grant-matcher/internal/models"
)

// OutcomeKind tags the three possible evaluation outcomes. The engine
// never signals disqualification through errors.
type OutcomeKind int

const (
	OutcomeAccepted OutcomeKind = iota
	OutcomeRejected
	OutcomeHardFail
)

// Engine evaluates a company against announcement batches. It holds no
// mutable state across calls; concurrent use for different companies
// is safe.
type Engine struct {
	policy Policy
	match  KeywordMatcher
}

func NewEngine(policy Policy) *Engine {
	return &Engine{
		policy: policy,
		match:  MatchBidirectional,
	}
}

// SetKeywordMatcher swaps the keyword strategy. Intended for future
// token-set or fuzzy matching; the control flow stays untouched.
func (e *Engine) SetKeywordMatcher(m KeywordMatcher) {
	if m != nil {
		e.match = m
	}
}

// Evaluate produces the match result for a single announcement.
// Risk screening runs first and short-circuits criteria evaluation on
// a hard fail; otherwise criteria, certification bonus, and risk
// penalty compose into the final score.
func (e *Engine) Evaluate(company *models.CompanyProfile, ann models.GrantAnnouncement) models.MatchResult {
	risk := EvaluateRisk(company.RiskFlags, e.policy)
	if risk.HardFail {
		return models.MatchResult{
			Passed:        false,
			Score:         0,
			Confidence:    models.ConfidenceLow,
			RejectReasons: truncate(risk.HardFailReasons, MaxRejectReasons),
			Announcement:  ann,
			Flags: models.ResultFlags{
				HardFail:        true,
				HardFailReasons: risk.HardFailReasons,
				Warnings:        risk.Warnings,
			},
		}
	}

	crit := EvaluateCriteria(company, &ann.TargetCriteria, e.match)
	if !crit.Pass {
		return models.MatchResult{
			Passed:        false,
			Score:         0,
			Confidence:    models.ConfidenceLow,
			RejectReasons: truncate(crit.RejectReasons, MaxRejectReasons),
			Announcement:  ann,
			Flags:         models.ResultFlags{Warnings: risk.Warnings},
		}
	}

	certs := EvaluateCertifications(company.Certifications)

	base := int(math.Round(float64(crit.Score) * CriteriaScoreWeight))
	final := clampScore(base + certs.Bonus - risk.Penalty)

	amountRange := AmountRange(company.Revenue, ann.MaxAmount)

	return models.MatchResult{
		Passed:         true,
		Score:          final,
		Confidence:     Confidence(final),
		Reasons:        assembleReasons(certs.ReasonLines, crit.ReasonLines, company),
		Announcement:   ann,
		ExpectedAmount: amountRange.Base,
		AmountRange:    amountRange,
		ScoreBreakdown: models.ScoreBreakdown{
			Base:        base,
			CertBonus:   certs.Bonus,
			RiskPenalty: risk.Penalty,
			Final:       final,
		},
		Flags: models.ResultFlags{Warnings: risk.Warnings},
	}
}

// Match evaluates the whole batch, partitions it into recommended and
// rejected, and ranks the recommended subset. Per-announcement
// evaluations are independent and run in a bounded fan-out; the sort
// and rank pass runs single-threaded once all of them complete.
func (e *Engine) Match(company *models.CompanyProfile, announcements []models.GrantAnnouncement) *models.MatchingResponse {
	results := e.evaluateAll(company, announcements)

	recommended := make([]models.MatchResult, 0, len(results))
	rejected := make([]models.MatchResult, 0)
	for _, r := range results {
		if r.Passed {
			recommended = append(recommended, r)
		} else {
			rejected = append(rejected, r)
		}
	}

	// Score descending, then interest rate ascending with missing
	// rates last, then deadline ascending with missing deadlines last.
	sort.SliceStable(recommended, func(i, j int) bool {
		a, b := &recommended[i], &recommended[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		ar, br := rateOrSentinel(a.Announcement.InterestRate), rateOrSentinel(b.Announcement.InterestRate)
		if ar != br {
			return ar < br
		}
		ad, bd := deadlineOrSentinel(&a.Announcement), deadlineOrSentinel(&b.Announcement)
		return ad < bd
	})
	for i := range recommended {
		recommended[i].Rank = i + 1
	}

	collator := collate.New(language.Korean)
	sort.SliceStable(rejected, func(i, j int) bool {
		return collator.CompareString(rejected[i].Announcement.Title, rejected[j].Announcement.Title) < 0
	})

	var totalExpected int64
	for _, r := range recommended {
		totalExpected += r.ExpectedAmount
	}

	response := &models.MatchingResponse{
		CompanyName:         company.CompanyName,
		Recommended:         recommended,
		Rejected:            rejected,
		TotalExpectedAmount: totalExpected,
		MatchCount:          len(recommended),
	}
	if len(recommended) > 0 {
		response.BestMatch = &response.Recommended[0]
	}
	return response
}

func (e *Engine) evaluateAll(company *models.CompanyProfile, announcements []models.GrantAnnouncement) []models.MatchResult {
	results := make([]models.MatchResult, len(announcements))

	workers := e.policy.Concurrency
	if workers <= 1 || len(announcements) < 2 {
		for i, ann := range announcements {
			results[i] = e.Evaluate(company, ann)
		}
		return results
	}

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i := range announcements {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = e.Evaluate(company, announcements[i])
		}(i)
	}
	wg.Wait()
	return results
}

// assembleReasons merges certification sentences ahead of criteria
// sentences, deduplicated and order-preserving, then pads with the
// business-type summary and a generic line until exactly three exist.
func assembleReasons(certLines, criteriaLines []string, company *models.CompanyProfile) []string {
	merged := make([]string, 0, len(certLines)+len(criteriaLines))
	for _, line := range certLines {
		merged = appendUnique(merged, line)
	}
	for _, line := range criteriaLines {
		merged = appendUnique(merged, line)
	}

	out := truncate(merged, MaxReasons)
	if len(out) < MaxReasons && len(company.BizType) > 0 {
		out = append(out, fmt.Sprintf(MsgBizTypeSummary, strings.Join(company.BizType, ", ")))
	}
	if len(out) < MaxReasons {
		out = append(out, MsgGenericMet)
	}
	return truncate(out, MaxReasons)
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}

func truncate(lines []string, max int) []string {
	if len(lines) > max {
		return lines[:max]
	}
	return lines
}

func rateOrSentinel(rate *float64) float64 {
	if rate == nil {
		return interestRateNilSentinel
	}
	return *rate
}

// deadlineOrSentinel orders missing deadlines after every real one.
func deadlineOrSentinel(ann *models.GrantAnnouncement) int64 {
	if ann.DeadlineAt == nil {
		return math.MaxInt64
	}
	return ann.DeadlineAt.Unix()
}
