package models

// MatchRequest is the body of POST /match and POST /match/runs.
// bizType accepts a single string or an array; both are coerced.
type MatchRequest struct {
	CompanyName      string     `json:"companyName" validate:"required"`
	Revenue          *int64     `json:"revenue" validate:"required"`
	BizType          StringList `json:"bizType" validate:"required"`
	Items            StringList `json:"items" validate:"required"`
	IndustryKeywords StringList `json:"industryKeywords,omitempty"`
	EstDate          string     `json:"estDate,omitempty"`
	Region           *Region    `json:"region,omitempty"`
	Certifications   []string   `json:"certifications,omitempty"`
	RiskFlags        *RiskFlags `json:"riskFlags,omitempty"`
}

// Profile builds the immutable CompanyProfile the engine consumes.
func (r *MatchRequest) Profile() CompanyProfile {
	var revenue int64
	if r.Revenue != nil {
		revenue = *r.Revenue
	}
	return CompanyProfile{
		CompanyName:      r.CompanyName,
		Revenue:          revenue,
		BizType:          r.BizType,
		Items:            r.Items,
		IndustryKeywords: r.IndustryKeywords,
		EstDate:          r.EstDate,
		Region:           r.Region,
		Certifications:   r.Certifications,
		RiskFlags:        r.RiskFlags,
	}
}

type MatchRunResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type MatchRunResultResponse struct {
	ID           string            `json:"id"`
	Status       string            `json:"status"`
	Result       *MatchingResponse `json:"result,omitempty"`
	ErrorMessage *string           `json:"error_message,omitempty"`
}

// AnnouncementUpsertRequest carries a batch of normalized announcements
// from the ingestion collaborator.
type AnnouncementUpsertRequest struct {
	Announcements []GrantAnnouncement `json:"announcements" validate:"required"`
}

type AnnouncementUpsertResponse struct {
	Upserted int `json:"upserted"`
}

type AnnouncementListResponse struct {
	Announcements []GrantAnnouncement `json:"announcements"`
	Count         int                 `json:"count"`
}
