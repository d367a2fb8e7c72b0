package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentModel struct {
	StudentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_id" json:"student_id"`

	// Human-readable id used everywhere outside storage (e.g. "STU2024001").
	StudentHumanID string `gorm:"not null;uniqueIndex;column:student_human_id" json:"student_human_id"`

	StudentName         string  `gorm:"not null;column:student_name" json:"student_name"`
	StudentGuardianName *string `gorm:"column:student_guardian_name" json:"student_guardian_name,omitempty"`
	StudentProgram      *string `gorm:"column:student_program" json:"student_program,omitempty"`

	StudentDOB *time.Time `gorm:"type:date;column:student_dob" json:"student_dob,omitempty"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt *time.Time     `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at,omitempty"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }
