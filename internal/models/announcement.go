package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// TargetCriteria is the eligibility predicate attached to an
// announcement. Missing fields mean "unrestricted" for that dimension.
// Unknown JSON keys survive a round trip through Extra so ingestion
// collaborators can attach source-specific fields.
type TargetCriteria struct {
	MinRevenue      *int64   `json:"minRevenue,omitempty"`
	MaxRevenue      *int64   `json:"maxRevenue,omitempty"`
	MinYears        *int     `json:"minYears,omitempty"`
	MaxYears        *int     `json:"maxYears,omitempty"`
	AllowedBizTypes []string `json:"allowed_biz_types,omitempty"`
	IncludeKeywords []string `json:"include_keywords,omitempty"`
	ExcludeKeywords []string `json:"exclude_keywords,omitempty"`
	Regions         []string `json:"regions,omitempty"`
	RequiredCerts   []string `json:"requiredCerts,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

// criteriaKnownKeys are the fields handled by the struct itself.
var criteriaKnownKeys = map[string]bool{
	"minRevenue": true, "maxRevenue": true,
	"minYears": true, "maxYears": true,
	"allowed_biz_types": true, "include_keywords": true,
	"exclude_keywords": true, "regions": true, "requiredCerts": true,
}

func (c *TargetCriteria) UnmarshalJSON(data []byte) error {
	type plain TargetCriteria
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for key := range raw {
		if criteriaKnownKeys[key] {
			delete(raw, key)
		}
	}
	if len(raw) > 0 {
		p.Extra = raw
	}

	*c = TargetCriteria(p)
	return nil
}

func (c TargetCriteria) MarshalJSON() ([]byte, error) {
	type plain TargetCriteria
	data, err := json.Marshal(plain(c))
	if err != nil {
		return nil, err
	}
	if len(c.Extra) == 0 {
		return data, nil
	}

	var merged map[string]json.RawMessage
	if err := json.Unmarshal(data, &merged); err != nil {
		return nil, err
	}
	for key, value := range c.Extra {
		if _, exists := merged[key]; !exists {
			merged[key] = value
		}
	}
	return json.Marshal(merged)
}

// Value implements driver.Valuer for the JSONB criteria column.
func (c TargetCriteria) Value() (driver.Value, error) {
	return json.Marshal(c)
}

// Scan implements sql.Scanner.
func (c *TargetCriteria) Scan(value interface{}) error {
	if value == nil {
		*c = TargetCriteria{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for TargetCriteria: %T", value)
	}

	return json.Unmarshal(data, c)
}

// GrantAnnouncement is one funding announcement, already normalized by
// the ingestion collaborator. The engine treats it as read-only.
type GrantAnnouncement struct {
	AnnID             string         `gorm:"primaryKey;type:text" json:"annId"`
	Agency            string         `gorm:"type:text" json:"agency"`
	Title             string         `gorm:"type:text" json:"title"`
	MaxAmount         int64          `gorm:"not null;default:0" json:"maxAmount"`
	InterestRate      *float64       `json:"interestRate,omitempty"`
	GracePeriodMonths *int           `json:"gracePeriodMonths,omitempty"`
	Source            string         `gorm:"type:text" json:"source"`
	URL               string         `gorm:"type:text" json:"url,omitempty"`
	PublishedAt       *time.Time     `json:"publishedAt,omitempty"`
	StartAt           *time.Time     `json:"startAt,omitempty"`
	DeadlineAt        *time.Time     `json:"deadlineAt,omitempty"`
	TargetCriteria    TargetCriteria `gorm:"type:jsonb" json:"targetCriteria"`
	CreatedAt         time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (GrantAnnouncement) TableName() string {
	return "grant_announcements"
}
