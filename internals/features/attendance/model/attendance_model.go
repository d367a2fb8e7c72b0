package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MonthAttendance is one element of the JSONB months column:
// a month abbreviation plus one single-character code per calendar slot.
type MonthAttendance struct {
	Month  string   `json:"month"`
	Status []string `json:"status"`
}

type AttendanceLedgerModel struct {
	AttendanceLedgerID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_ledger_id" json:"attendance_ledger_id"`

	AttendanceLedgerStudentID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_ledger_student_educator;column:attendance_ledger_student_id" json:"attendance_ledger_student_id"`
	AttendanceLedgerEducatorID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_ledger_student_educator;column:attendance_ledger_educator_id" json:"attendance_ledger_educator_id"`

	// [{month, status[]}], codes P/A/$ only, normalized on write.
	AttendanceLedgerMonths datatypes.JSON `gorm:"type:jsonb;not null;default:'[]';column:attendance_ledger_months" json:"attendance_ledger_months"`

	// Derived. Recomputed from the months column on every mutation,
	// never written directly.
	AttendanceLedgerPercentage float64 `gorm:"not null;default:0;column:attendance_ledger_percentage" json:"attendance_ledger_percentage"`

	AttendanceLedgerCreatedAt time.Time  `gorm:"column:attendance_ledger_created_at;autoCreateTime" json:"attendance_ledger_created_at"`
	AttendanceLedgerUpdatedAt *time.Time `gorm:"column:attendance_ledger_updated_at;autoUpdateTime" json:"attendance_ledger_updated_at,omitempty"`
}

func (AttendanceLedgerModel) TableName() string { return "attendance_ledgers" }
