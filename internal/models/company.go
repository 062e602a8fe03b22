package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// StringList accepts either a JSON string or an array of strings.
// Callers historically send bizType as a single value, so both forms
// are coerced into a trimmed, non-empty slice.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*l = cleanStrings(arr)
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return fmt.Errorf("expected string or array of strings: %s", string(data))
	}
	*l = cleanStrings([]string{single})
	return nil
}

func cleanStrings(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if t := strings.TrimSpace(v); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// Region is the company location used for region hard filters.
// Province/District are preferred; Legacy keeps the old single-field
// form submitted by earlier clients.
type Region struct {
	Province string `json:"province,omitempty"`
	District string `json:"district,omitempty"`
	Legacy   string `json:"legacy,omitempty"`
}

// IsEmpty reports whether no location data is present at all.
func (r Region) IsEmpty() bool {
	return r.Province == "" && r.District == "" && r.Legacy == ""
}

// Candidates returns the strings a region criterion is matched against.
func (r Region) Candidates() []string {
	var out []string
	if r.Province != "" {
		out = append(out, r.Province)
	}
	if r.District != "" {
		out = append(out, r.District)
	}
	if r.Province != "" && r.District != "" {
		out = append(out, r.Province+" "+r.District)
	}
	if r.Legacy != "" {
		out = append(out, r.Legacy)
	}
	return out
}

// RiskFlags are company-level declarations collected during intake.
// Hard-fail flags disqualify before any criteria evaluation; the rest
// only reduce the score.
type RiskFlags struct {
	BusinessClosed            bool `json:"businessClosed,omitempty"`
	InsolvencyProceeding      bool `json:"insolvencyProceeding,omitempty"`
	CurrentDefault            bool `json:"currentDefault,omitempty"`
	TaxArrears                bool `json:"taxArrears,omitempty"`
	LocalTaxArrears           bool `json:"localTaxArrears,omitempty"`
	InsuranceArrears          bool `json:"insuranceArrears,omitempty"`
	GuaranteeAccidentOpen     bool `json:"guaranteeAccidentOpen,omitempty"`
	PastDefaultResolved       bool `json:"pastDefaultResolved,omitempty"`
	GuaranteeAccidentResolved bool `json:"guaranteeAccidentResolved,omitempty"`
	OverLeveraged             bool `json:"overLeveraged,omitempty"`
}

// CompanyProfile is the applicant as submitted by the consultant.
// Constructed once per matching request and treated as immutable for
// the duration of a run. Revenue is in KRW, no minor units.
type CompanyProfile struct {
	CompanyName      string     `json:"companyName"`
	Revenue          int64      `json:"revenue"`
	BizType          StringList `json:"bizType"`
	Items            StringList `json:"items"`
	IndustryKeywords StringList `json:"industryKeywords,omitempty"`
	EstDate          string     `json:"estDate,omitempty"` // YYYY-MM-DD
	Region           *Region    `json:"region,omitempty"`
	Certifications   []string   `json:"certifications,omitempty"`
	RiskFlags        *RiskFlags `json:"riskFlags,omitempty"`
	BizNo            string     `json:"bizNo,omitempty"`
}

// Value implements driver.Valuer so profiles can be stored as JSONB
// alongside their match run.
func (p CompanyProfile) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan implements sql.Scanner.
func (p *CompanyProfile) Scan(value interface{}) error {
	if value == nil {
		*p = CompanyProfile{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for CompanyProfile: %T", value)
	}

	return json.Unmarshal(data, p)
}
