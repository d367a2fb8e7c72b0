package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	m "progresstrack_backend/internals/features/monthlyreport/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type SkillScoreInput struct {
	SkillName string  `json:"skill_name" validate:"required,max=60"`
	Marks     float64 `json:"marks" validate:"min=0,max=5"`
}

// TimeFrameInput is optional; when omitted the service derives the
// current month/year and quarter = ceil(month/3).
type TimeFrameInput struct {
	Month   string `json:"month" validate:"required,oneof=Jan Feb Mar Apr May Jun Jul Aug Sep Oct Nov Dec"`
	Year    int    `json:"year" validate:"required,min=2000,max=2100"`
	Quarter string `json:"quarter" validate:"omitempty,oneof=Q1 Q2 Q3 Q4"`
}

type RecordMonthlyScoreRequest struct {
	StudentID string            `json:"student_id" validate:"required,max=40"`
	Scores    []SkillScoreInput `json:"scores" validate:"required,min=1,dive"`
	Remarks   string            `json:"remarks" validate:"omitempty,max=2000"`
	TimeFrame *TimeFrameInput   `json:"time_frame" validate:"omitempty"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type MonthlyReportResponse struct {
	MonthlyReportID        uuid.UUID      `json:"monthly_report_id"`
	MonthlyReportStudentID uuid.UUID      `json:"monthly_report_student_id"`
	MonthlyReportScores    []m.SkillScore `json:"monthly_report_scores"`
	MonthlyReportRemarks   string         `json:"monthly_report_remarks"`
	MonthlyReportMonth     string         `json:"monthly_report_month"`
	MonthlyReportYear      int            `json:"monthly_report_year"`
	MonthlyReportQuarter   string         `json:"monthly_report_quarter"`
	MonthlyReportCreatedAt time.Time      `json:"monthly_report_created_at"`
}

func NewMonthlyReportResponse(mdl m.MonthlyReportModel) MonthlyReportResponse {
	var scores []m.SkillScore
	_ = json.Unmarshal(mdl.MonthlyReportScores, &scores)
	if scores == nil {
		scores = []m.SkillScore{}
	}
	return MonthlyReportResponse{
		MonthlyReportID:        mdl.MonthlyReportID,
		MonthlyReportStudentID: mdl.MonthlyReportStudentID,
		MonthlyReportScores:    scores,
		MonthlyReportRemarks:   mdl.MonthlyReportRemarks,
		MonthlyReportMonth:     mdl.MonthlyReportMonth,
		MonthlyReportYear:      mdl.MonthlyReportYear,
		MonthlyReportQuarter:   mdl.MonthlyReportQuarter,
		MonthlyReportCreatedAt: mdl.MonthlyReportCreatedAt,
	}
}
