package dto

import (
	"time"

	"github.com/google/uuid"

	m "progresstrack_backend/internals/features/students/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type CreateStudentRequest struct {
	StudentHumanID      string  `json:"student_human_id" validate:"required,max=40"`
	StudentName         string  `json:"student_name" validate:"required,max=120"`
	StudentGuardianName *string `json:"student_guardian_name" validate:"omitempty,max=120"`
	StudentProgram      *string `json:"student_program" validate:"omitempty,max=120"`
	StudentDOB          *string `json:"student_dob" validate:"omitempty,datetime=2006-01-02"`
}

type CreateEducatorRequest struct {
	EducatorHumanID string  `json:"educator_human_id" validate:"required,max=40"`
	EducatorName    string  `json:"educator_name" validate:"required,max=120"`
	EducatorEmail   *string `json:"educator_email" validate:"omitempty,email"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type StudentResponse struct {
	StudentID           uuid.UUID  `json:"student_id"`
	StudentHumanID      string     `json:"student_human_id"`
	StudentName         string     `json:"student_name"`
	StudentGuardianName *string    `json:"student_guardian_name,omitempty"`
	StudentProgram      *string    `json:"student_program,omitempty"`
	StudentDOB          *time.Time `json:"student_dob,omitempty"`
	StudentCreatedAt    time.Time  `json:"student_created_at"`
}

type EducatorResponse struct {
	EducatorID      uuid.UUID `json:"educator_id"`
	EducatorHumanID string    `json:"educator_human_id"`
	EducatorName    string    `json:"educator_name"`
	EducatorEmail   *string   `json:"educator_email,omitempty"`
}

/* =========================================================
 * HELPERS
 * ========================================================= */

func (r CreateStudentRequest) ToModel() m.StudentModel {
	mdl := m.StudentModel{
		StudentHumanID:      r.StudentHumanID,
		StudentName:         r.StudentName,
		StudentGuardianName: r.StudentGuardianName,
		StudentProgram:      r.StudentProgram,
	}
	if r.StudentDOB != nil {
		if t, err := time.Parse("2006-01-02", *r.StudentDOB); err == nil {
			mdl.StudentDOB = &t
		}
	}
	return mdl
}

func (r CreateEducatorRequest) ToModel() m.EducatorModel {
	return m.EducatorModel{
		EducatorHumanID: r.EducatorHumanID,
		EducatorName:    r.EducatorName,
		EducatorEmail:   r.EducatorEmail,
	}
}

func NewStudentResponse(mdl m.StudentModel) StudentResponse {
	return StudentResponse{
		StudentID:           mdl.StudentID,
		StudentHumanID:      mdl.StudentHumanID,
		StudentName:         mdl.StudentName,
		StudentGuardianName: mdl.StudentGuardianName,
		StudentProgram:      mdl.StudentProgram,
		StudentDOB:          mdl.StudentDOB,
		StudentCreatedAt:    mdl.StudentCreatedAt,
	}
}

func NewEducatorResponse(mdl m.EducatorModel) EducatorResponse {
	return EducatorResponse{
		EducatorID:      mdl.EducatorID,
		EducatorHumanID: mdl.EducatorHumanID,
		EducatorName:    mdl.EducatorName,
		EducatorEmail:   mdl.EducatorEmail,
	}
}
