package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	m "progresstrack_backend/internals/features/attendance/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type RecordAttendanceRequest struct {
	StudentID  string   `json:"student_id" validate:"required,max=40"`
	EducatorID string   `json:"educator_id" validate:"required,max=40"`
	Month      string   `json:"month" validate:"required,oneof=Jan Feb Mar Apr May Jun Jul Aug Sep Oct Nov Dec"`
	DailyMarks []string `json:"daily_marks" validate:"required,min=1,max=31"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type AttendanceLedgerResponse struct {
	AttendanceLedgerID         uuid.UUID           `json:"attendance_ledger_id"`
	AttendanceLedgerStudentID  uuid.UUID           `json:"attendance_ledger_student_id"`
	AttendanceLedgerEducatorID uuid.UUID           `json:"attendance_ledger_educator_id"`
	AttendanceLedgerMonths     []m.MonthAttendance `json:"attendance_ledger_months"`
	AttendanceLedgerPercentage float64             `json:"attendance_ledger_percentage"`
	AttendanceLedgerUpdatedAt  *time.Time          `json:"attendance_ledger_updated_at,omitempty"`
}

// ImportRowError is one skipped row of a bulk upload.
type ImportRowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// ImportSummary is the batch report for a bulk upload: bad rows are
// collected here, they never abort the rest of the file.
type ImportSummary struct {
	TotalRows    int              `json:"total_rows"`
	ImportedRows int              `json:"imported_rows"`
	SkippedRows  int              `json:"skipped_rows"`
	Errors       []ImportRowError `json:"errors,omitempty"`
}

/* =========================================================
 * HELPERS
 * ========================================================= */

func NewAttendanceLedgerResponse(mdl m.AttendanceLedgerModel) AttendanceLedgerResponse {
	var months []m.MonthAttendance
	_ = json.Unmarshal(mdl.AttendanceLedgerMonths, &months)
	if months == nil {
		months = []m.MonthAttendance{}
	}
	return AttendanceLedgerResponse{
		AttendanceLedgerID:         mdl.AttendanceLedgerID,
		AttendanceLedgerStudentID:  mdl.AttendanceLedgerStudentID,
		AttendanceLedgerEducatorID: mdl.AttendanceLedgerEducatorID,
		AttendanceLedgerMonths:     months,
		AttendanceLedgerPercentage: mdl.AttendanceLedgerPercentage,
		AttendanceLedgerUpdatedAt:  mdl.AttendanceLedgerUpdatedAt,
	}
}
