package service

import (
	"errors"

	"gorm.io/gorm"

	"progresstrack_backend/internals/features/students/model"
	helper "progresstrack_backend/internals/helpers"
)

// ResolveStudent maps a human-readable student id to its stored row.
// Unknown ids come back as helper.ErrNotFound, never as an empty row.
func ResolveStudent(db *gorm.DB, humanID string) (*model.StudentModel, error) {
	var s model.StudentModel
	err := db.Where("student_human_id = ?", humanID).Take(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ResolveEducator maps a human-readable educator id to its stored row.
func ResolveEducator(db *gorm.DB, humanID string) (*model.EducatorModel, error) {
	var e model.EducatorModel
	err := db.Where("educator_human_id = ?", humanID).Take(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}
