package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"progresstrack_backend/internals/features/assessment/dto"
	"progresstrack_backend/internals/features/assessment/model"
	studentsvc "progresstrack_backend/internals/features/students/service"
)

// RecordGrade resolves both human ids and persists an immutable grade
// event. It deliberately triggers no quarterly recomputation: the
// rollup is always an explicit request, so grade entry stays cheap.
func RecordGrade(db *gorm.DB, req dto.RecordGradeRequest) (*model.AssessmentGradeModel, error) {
	student, err := studentsvc.ResolveStudent(db, req.StudentID)
	if err != nil {
		return nil, err
	}
	educator, err := studentsvc.ResolveEducator(db, req.EducatorID)
	if err != nil {
		return nil, err
	}

	grade := req.ToModel(student.StudentID, educator.EducatorID)
	if err := db.Create(&grade).Error; err != nil {
		return nil, err
	}
	return &grade, nil
}

// FetchByStudent lists the student's grade events, oldest first.
func FetchByStudent(db *gorm.DB, studentID uuid.UUID) ([]model.AssessmentGradeModel, error) {
	var grades []model.AssessmentGradeModel
	if err := db.
		Where("assessment_grade_student_id = ?", studentID).
		Order("assessment_grade_date ASC, assessment_grade_created_at ASC").
		Find(&grades).Error; err != nil {
		return nil, err
	}
	return grades, nil
}
