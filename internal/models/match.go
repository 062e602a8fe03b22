package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// MatchConfidence buckets a final score for display.
type MatchConfidence string

const (
	ConfidenceHigh   MatchConfidence = "High"
	ConfidenceMedium MatchConfidence = "Medium"
	ConfidenceLow    MatchConfidence = "Low"
)

// AmountRange is the conservative/base/optimistic funding estimate,
// each capped by the announcement's stated maximum.
type AmountRange struct {
	Conservative int64 `json:"conservative"`
	Base         int64 `json:"base"`
	Optimistic   int64 `json:"optimistic"`
}

// ScoreBreakdown records how the final score was composed, for audit.
type ScoreBreakdown struct {
	Base        int `json:"base"`
	CertBonus   int `json:"certBonus"`
	RiskPenalty int `json:"riskPenalty"`
	Final       int `json:"final"`
}

// ResultFlags carries disqualification and warning detail next to the
// pass/fail verdict.
type ResultFlags struct {
	HardFail        bool     `json:"hardFail"`
	HardFailReasons []string `json:"hardFailReasons,omitempty"`
	Warnings        []string `json:"warnings,omitempty"`
}

// MatchResult is the evaluation outcome for one (company, announcement)
// pair. It is a pure derived value: built once per evaluation, only
// Rank is assigned afterwards, by the ranker.
type MatchResult struct {
	Passed         bool              `json:"passed"`
	Score          int               `json:"score"`
	Confidence     MatchConfidence   `json:"confidence"`
	Reasons        []string          `json:"reasons"`
	RejectReasons  []string          `json:"rejectReasons,omitempty"`
	Announcement   GrantAnnouncement `json:"announcement"`
	ExpectedAmount int64             `json:"expectedAmount"`
	AmountRange    AmountRange       `json:"amountRange"`
	ScoreBreakdown ScoreBreakdown    `json:"scoreBreakdown"`
	Flags          ResultFlags       `json:"flags"`
	Rank           int               `json:"rank,omitempty"`
}

// MatchingResponse is the full batch outcome served by the API.
type MatchingResponse struct {
	CompanyName         string        `json:"companyName"`
	Recommended         []MatchResult `json:"recommended"`
	Rejected            []MatchResult `json:"rejected"`
	BestMatch           *MatchResult  `json:"bestMatch"`
	TotalExpectedAmount int64         `json:"totalExpectedAmount"`
	MatchCount          int           `json:"matchCount"`
}

// Value implements driver.Valuer so completed run results can be
// stored as JSONB.
func (r MatchingResponse) Value() (driver.Value, error) {
	return json.Marshal(r)
}

// Scan implements sql.Scanner.
func (r *MatchingResponse) Scan(value interface{}) error {
	if value == nil {
		*r = MatchingResponse{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for MatchingResponse: %T", value)
	}

	return json.Unmarshal(data, r)
}
