package model

import (
	"time"

	"github.com/google/uuid"
)

// AssessmentGradeModel is an immutable graded event. Marks are on the
// assessment's own scale (often percentage-like), not the 0–5 skill
// scale; no update path exists after creation.
type AssessmentGradeModel struct {
	AssessmentGradeID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:assessment_grade_id" json:"assessment_grade_id"`

	AssessmentGradeStudentID  uuid.UUID `gorm:"type:uuid;not null;index;column:assessment_grade_student_id" json:"assessment_grade_student_id"`
	AssessmentGradeEducatorID uuid.UUID `gorm:"type:uuid;not null;index;column:assessment_grade_educator_id" json:"assessment_grade_educator_id"`

	AssessmentGradeProgram  string  `gorm:"not null;column:assessment_grade_program" json:"assessment_grade_program"`
	AssessmentGradeName     string  `gorm:"not null;column:assessment_grade_name" json:"assessment_grade_name"`
	AssessmentGradeMarks    float64 `gorm:"not null;column:assessment_grade_marks" json:"assessment_grade_marks"`
	AssessmentGradeFeedback string  `gorm:"not null;default:'';column:assessment_grade_feedback" json:"assessment_grade_feedback"`

	AssessmentGradeDate time.Time `gorm:"type:date;not null;column:assessment_grade_date" json:"assessment_grade_date"`

	AssessmentGradeCreatedAt time.Time `gorm:"column:assessment_grade_created_at;autoCreateTime" json:"assessment_grade_created_at"`
}

func (AssessmentGradeModel) TableName() string { return "assessment_grades" }
