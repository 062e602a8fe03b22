package models

import (
	"time"

	"github.com/google/uuid"
)

type MatchRunStatus string

const (
	RunStatusQueued     MatchRunStatus = "queued"
	RunStatusProcessing MatchRunStatus = "processing"
	RunStatusCompleted  MatchRunStatus = "completed"
	RunStatusFailed     MatchRunStatus = "failed"
)

// MatchRun is an asynchronous matching job: the submitted profile plus
// the batch result once the worker has processed it.
type MatchRun struct {
	ID           uuid.UUID         `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CompanyName  string            `gorm:"type:text" json:"company_name"`
	Profile      CompanyProfile    `gorm:"type:jsonb" json:"profile"`
	Status       MatchRunStatus    `gorm:"not null;default:'queued'" json:"status"`
	Result       *MatchingResponse `gorm:"type:jsonb" json:"result,omitempty"`
	ErrorMessage *string           `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt    time.Time         `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time         `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (MatchRun) TableName() string {
	return "match_runs"
}
