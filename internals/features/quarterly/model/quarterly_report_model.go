package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SkillFeedback is one element of the JSONB skills feedback column:
// one fixed category and its computed average for the quarter.
// A score of 0 means "no data this quarter", not a failing score.
type SkillFeedback struct {
	SkillName  string  `json:"skill_name"`
	SkillScore float64 `json:"skill_score"`
}

// QuarterlyReportModel is a derived aggregate, one per
// (student, quarter, year). Every derived column is recomputed
// wholesale from source records; nothing here is hand-edited except
// the two feedback text fields.
type QuarterlyReportModel struct {
	QuarterlyReportID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:quarterly_report_id" json:"quarterly_report_id"`

	QuarterlyReportStudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_quarterly_report_student_period;column:quarterly_report_student_id" json:"quarterly_report_student_id"`
	QuarterlyReportQuarter   string    `gorm:"not null;uniqueIndex:uq_quarterly_report_student_period;column:quarterly_report_quarter" json:"quarterly_report_quarter"`
	QuarterlyReportYear      int       `gorm:"not null;uniqueIndex:uq_quarterly_report_student_period;column:quarterly_report_year" json:"quarterly_report_year"`

	QuarterlyReportDate time.Time `gorm:"not null;column:quarterly_report_date" json:"quarterly_report_date"`

	// [{skill_name, skill_score}], always all five fixed categories.
	QuarterlyReportSkillsFeedback datatypes.JSON `gorm:"type:jsonb;not null;default:'[]';column:quarterly_report_skills_feedback" json:"quarterly_report_skills_feedback"`

	QuarterlyReportOverallScore float64 `gorm:"not null;default:0;column:quarterly_report_overall_score" json:"quarterly_report_overall_score"`

	// References (ids only) to the contributing source records.
	QuarterlyReportMonthlyIDs    datatypes.JSON `gorm:"type:jsonb;not null;default:'[]';column:quarterly_report_monthly_ids" json:"quarterly_report_monthly_ids"`
	QuarterlyReportAssessmentIDs datatypes.JSON `gorm:"type:jsonb;not null;default:'[]';column:quarterly_report_assessment_ids" json:"quarterly_report_assessment_ids"`

	QuarterlyReportSuggestions     *string `gorm:"column:quarterly_report_suggestions" json:"quarterly_report_suggestions,omitempty"`
	QuarterlyReportTeacherComments *string `gorm:"column:quarterly_report_teacher_comments" json:"quarterly_report_teacher_comments,omitempty"`

	QuarterlyReportCreatedAt time.Time  `gorm:"column:quarterly_report_created_at;autoCreateTime" json:"quarterly_report_created_at"`
	QuarterlyReportUpdatedAt *time.Time `gorm:"column:quarterly_report_updated_at;autoUpdateTime" json:"quarterly_report_updated_at,omitempty"`
}

func (QuarterlyReportModel) TableName() string { return "quarterly_reports" }
