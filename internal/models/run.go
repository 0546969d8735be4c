package models

import (
	"time"

	"github.com/google/uuid"
)

type RunStatus string

const (
	StatusCompleted RunStatus = "completed"
	StatusFailed    RunStatus = "failed"
)

// ScreeningRun is the stored summary of one batch run: the criteria
// snapshot, how many candidates were scored, and where the merged report
// landed. A run whose report persistence failed is recorded as failed with
// the write error, while its ranked results were still returned to the
// caller.
type ScreeningRun struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Keywords       string    `gorm:"type:text" json:"keywords"`
	Skills         string    `gorm:"type:text" json:"skills"`
	MinYears       float64   `gorm:"type:decimal(5,2)" json:"min_years"`
	Education      string    `gorm:"type:text" json:"education"`
	CandidateCount int       `gorm:"type:int" json:"candidate_count"`
	TopScore       *float64  `gorm:"type:decimal(8,2)" json:"top_score,omitempty"`
	ReportPath     string    `gorm:"type:text" json:"report_path"`
	Status         RunStatus `gorm:"not null;default:'completed'" json:"status"`
	ErrorMessage   string    `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt      time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt      time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (ScreeningRun) TableName() string {
	return "screening_runs"
}
