package dto

import (
	"time"

	"github.com/google/uuid"

	m "progresstrack_backend/internals/features/assessment/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type RecordGradeRequest struct {
	StudentID      string  `json:"student_id" validate:"required,max=40"`
	EducatorID     string  `json:"educator_id" validate:"required,max=40"`
	Program        string  `json:"program" validate:"required,max=120"`
	AssessmentName string  `json:"assessment_name" validate:"required,max=200"`
	Marks          float64 `json:"marks" validate:"min=0"`
	Feedback       string  `json:"feedback" validate:"omitempty,max=2000"`
	Date           *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type AssessmentGradeResponse struct {
	AssessmentGradeID         uuid.UUID `json:"assessment_grade_id"`
	AssessmentGradeStudentID  uuid.UUID `json:"assessment_grade_student_id"`
	AssessmentGradeEducatorID uuid.UUID `json:"assessment_grade_educator_id"`
	AssessmentGradeProgram    string    `json:"assessment_grade_program"`
	AssessmentGradeName       string    `json:"assessment_grade_name"`
	AssessmentGradeMarks      float64   `json:"assessment_grade_marks"`
	AssessmentGradeFeedback   string    `json:"assessment_grade_feedback"`
	AssessmentGradeDate       time.Time `json:"assessment_grade_date"`
}

/* =========================================================
 * HELPERS
 * ========================================================= */

func (r RecordGradeRequest) ToModel(studentID, educatorID uuid.UUID) m.AssessmentGradeModel {
	date := time.Now()
	if r.Date != nil {
		if t, err := time.Parse("2006-01-02", *r.Date); err == nil {
			date = t
		}
	}
	return m.AssessmentGradeModel{
		AssessmentGradeStudentID:  studentID,
		AssessmentGradeEducatorID: educatorID,
		AssessmentGradeProgram:    r.Program,
		AssessmentGradeName:       r.AssessmentName,
		AssessmentGradeMarks:      r.Marks,
		AssessmentGradeFeedback:   r.Feedback,
		AssessmentGradeDate:       date,
	}
}

func NewAssessmentGradeResponse(mdl m.AssessmentGradeModel) AssessmentGradeResponse {
	return AssessmentGradeResponse{
		AssessmentGradeID:         mdl.AssessmentGradeID,
		AssessmentGradeStudentID:  mdl.AssessmentGradeStudentID,
		AssessmentGradeEducatorID: mdl.AssessmentGradeEducatorID,
		AssessmentGradeProgram:    mdl.AssessmentGradeProgram,
		AssessmentGradeName:       mdl.AssessmentGradeName,
		AssessmentGradeMarks:      mdl.AssessmentGradeMarks,
		AssessmentGradeFeedback:   mdl.AssessmentGradeFeedback,
		AssessmentGradeDate:       mdl.AssessmentGradeDate,
	}
}
