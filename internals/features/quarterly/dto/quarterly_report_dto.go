package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	mrdto "progresstrack_backend/internals/features/monthlyreport/dto"
	mrmodel "progresstrack_backend/internals/features/monthlyreport/model"
	m "progresstrack_backend/internals/features/quarterly/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type RecomputeQuarterRequest struct {
	StudentID string `json:"student_id" validate:"required,max=40"`
	Quarter   string `json:"quarter" validate:"required,oneof=Q1 Q2 Q3 Q4"`
	Year      int    `json:"year" validate:"required,min=2000,max=2100"`
}

type UpdateFeedbackRequest struct {
	Suggestions     *string `json:"suggestions" validate:"omitempty,max=2000"`
	TeacherComments *string `json:"teacher_comments" validate:"omitempty,max=2000"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type QuarterlyReportResponse struct {
	QuarterlyReportID        uuid.UUID `json:"quarterly_report_id"`
	QuarterlyReportStudentID uuid.UUID `json:"quarterly_report_student_id"`
	QuarterlyReportQuarter   string    `json:"quarterly_report_quarter"`
	QuarterlyReportYear      int       `json:"quarterly_report_year"`
	QuarterlyReportDate      time.Time `json:"quarterly_report_date"`

	QuarterlyReportSkillsFeedback []m.SkillFeedback `json:"quarterly_report_skills_feedback"`
	QuarterlyReportOverallScore   float64           `json:"quarterly_report_overall_score"`

	QuarterlyReportMonthlyIDs    []uuid.UUID `json:"quarterly_report_monthly_ids"`
	QuarterlyReportAssessmentIDs []uuid.UUID `json:"quarterly_report_assessment_ids"`

	QuarterlyReportSuggestions     *string `json:"quarterly_report_suggestions,omitempty"`
	QuarterlyReportTeacherComments *string `json:"quarterly_report_teacher_comments,omitempty"`

	// Joined for caller convenience on recompute.
	MonthlyReports []mrdto.MonthlyReportResponse `json:"monthly_reports,omitempty"`
}

func NewQuarterlyReportResponse(mdl m.QuarterlyReportModel, monthlies []mrmodel.MonthlyReportModel) QuarterlyReportResponse {
	var feedback []m.SkillFeedback
	_ = json.Unmarshal(mdl.QuarterlyReportSkillsFeedback, &feedback)
	if feedback == nil {
		feedback = []m.SkillFeedback{}
	}

	var monthlyIDs []uuid.UUID
	_ = json.Unmarshal(mdl.QuarterlyReportMonthlyIDs, &monthlyIDs)
	if monthlyIDs == nil {
		monthlyIDs = []uuid.UUID{}
	}

	var assessmentIDs []uuid.UUID
	_ = json.Unmarshal(mdl.QuarterlyReportAssessmentIDs, &assessmentIDs)
	if assessmentIDs == nil {
		assessmentIDs = []uuid.UUID{}
	}

	joined := make([]mrdto.MonthlyReportResponse, 0, len(monthlies))
	for _, mr := range monthlies {
		joined = append(joined, mrdto.NewMonthlyReportResponse(mr))
	}

	return QuarterlyReportResponse{
		QuarterlyReportID:              mdl.QuarterlyReportID,
		QuarterlyReportStudentID:       mdl.QuarterlyReportStudentID,
		QuarterlyReportQuarter:         mdl.QuarterlyReportQuarter,
		QuarterlyReportYear:            mdl.QuarterlyReportYear,
		QuarterlyReportDate:            mdl.QuarterlyReportDate,
		QuarterlyReportSkillsFeedback:  feedback,
		QuarterlyReportOverallScore:    mdl.QuarterlyReportOverallScore,
		QuarterlyReportMonthlyIDs:      monthlyIDs,
		QuarterlyReportAssessmentIDs:   assessmentIDs,
		QuarterlyReportSuggestions:     mdl.QuarterlyReportSuggestions,
		QuarterlyReportTeacherComments: mdl.QuarterlyReportTeacherComments,
		MonthlyReports:                 joined,
	}
}
