package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EducatorModel struct {
	EducatorID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:educator_id" json:"educator_id"`

	EducatorHumanID string `gorm:"not null;uniqueIndex;column:educator_human_id" json:"educator_human_id"`

	EducatorName  string  `gorm:"not null;column:educator_name" json:"educator_name"`
	EducatorEmail *string `gorm:"column:educator_email" json:"educator_email,omitempty"`

	EducatorCreatedAt time.Time      `gorm:"column:educator_created_at;autoCreateTime" json:"educator_created_at"`
	EducatorUpdatedAt *time.Time     `gorm:"column:educator_updated_at;autoUpdateTime" json:"educator_updated_at,omitempty"`
	EducatorDeletedAt gorm.DeletedAt `gorm:"column:educator_deleted_at;index" json:"educator_deleted_at,omitempty"`
}

func (EducatorModel) TableName() string { return "educators" }
