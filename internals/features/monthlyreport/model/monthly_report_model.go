package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SkillScore is one element of the JSONB scores column. SkillName is
// free text in storage; the aggregator matches it against the fixed
// category set case-insensitively.
type SkillScore struct {
	SkillName string  `json:"skill_name"`
	Marks     float64 `json:"marks"`
}

type MonthlyReportModel struct {
	MonthlyReportID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:monthly_report_id" json:"monthly_report_id"`

	MonthlyReportStudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_monthly_report_student_month;column:monthly_report_student_id" json:"monthly_report_student_id"`

	// [{skill_name, marks}], marks always within [0,5].
	MonthlyReportScores  datatypes.JSON `gorm:"type:jsonb;not null;column:monthly_report_scores" json:"monthly_report_scores"`
	MonthlyReportRemarks string         `gorm:"not null;default:'';column:monthly_report_remarks" json:"monthly_report_remarks"`

	MonthlyReportMonth   string `gorm:"not null;uniqueIndex:uq_monthly_report_student_month;column:monthly_report_month" json:"monthly_report_month"`
	MonthlyReportYear    int    `gorm:"not null;uniqueIndex:uq_monthly_report_student_month;column:monthly_report_year" json:"monthly_report_year"`
	MonthlyReportQuarter string `gorm:"not null;column:monthly_report_quarter" json:"monthly_report_quarter"`

	MonthlyReportCreatedAt time.Time  `gorm:"column:monthly_report_created_at;autoCreateTime" json:"monthly_report_created_at"`
	MonthlyReportUpdatedAt *time.Time `gorm:"column:monthly_report_updated_at;autoUpdateTime" json:"monthly_report_updated_at,omitempty"`
}

func (MonthlyReportModel) TableName() string { return "monthly_reports" }
