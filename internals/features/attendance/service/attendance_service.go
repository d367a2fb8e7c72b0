package service

import (
	"encoding/json"
	"math"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"progresstrack_backend/internals/constants"
	"progresstrack_backend/internals/features/attendance/model"
)

// NormalizeCode maps any incoming day value onto the P/A/$ code set.
// Unknown values become "$" (no data) so malformed spreadsheet cells
// degrade to gaps instead of failing the import.
func NormalizeCode(code string) string {
	switch code {
	case constants.CodePresent, constants.CodeAbsent, constants.CodeNoData:
		return code
	default:
		return constants.CodeNoData
	}
}

// ComputePercentage derives the attendance percentage over the whole
// ledger: present / (present + absent) * 100, ignoring "$" slots.
// Returns 0 when no dated slot exists. Pure; called after every
// mutation so the stored value can never drift from the raw marks.
func ComputePercentage(months []model.MonthAttendance) float64 {
	var present, total int
	for _, mo := range months {
		for _, code := range mo.Status {
			switch code {
			case constants.CodePresent:
				present++
				total++
			case constants.CodeAbsent:
				total++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return round2(float64(present) / float64(total) * 100)
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// RecordAttendance upserts the ledger for (student, educator): the
// named month's status sequence is replaced outright (no merging),
// every code is normalized, and the percentage is recomputed over all
// months. The write is a single ON CONFLICT upsert on the natural key,
// so concurrent writers resolve to last-write-wins on one row.
func RecordAttendance(db *gorm.DB, studentID, educatorID uuid.UUID, month string, dailyMarks []string) (*model.AttendanceLedgerModel, error) {
	normalized := make([]string, len(dailyMarks))
	for i, code := range dailyMarks {
		normalized[i] = NormalizeCode(code)
	}

	var ledger model.AttendanceLedgerModel
	err := db.
		Where("attendance_ledger_student_id = ? AND attendance_ledger_educator_id = ?", studentID, educatorID).
		Take(&ledger).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, err
	}

	var months []model.MonthAttendance
	if len(ledger.AttendanceLedgerMonths) > 0 {
		if err := json.Unmarshal(ledger.AttendanceLedgerMonths, &months); err != nil {
			return nil, err
		}
	}

	replaced := false
	for i := range months {
		if months[i].Month == month {
			months[i].Status = normalized
			replaced = true
			break
		}
	}
	if !replaced {
		months = append(months, model.MonthAttendance{Month: month, Status: normalized})
	}

	raw, err := json.Marshal(months)
	if err != nil {
		return nil, err
	}

	ledger.AttendanceLedgerStudentID = studentID
	ledger.AttendanceLedgerEducatorID = educatorID
	ledger.AttendanceLedgerMonths = datatypes.JSON(raw)
	ledger.AttendanceLedgerPercentage = ComputePercentage(months)

	if err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "attendance_ledger_student_id"},
			{Name: "attendance_ledger_educator_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"attendance_ledger_months",
			"attendance_ledger_percentage",
			"attendance_ledger_updated_at",
		}),
	}).Create(&ledger).Error; err != nil {
		return nil, err
	}

	return &ledger, nil
}

// FetchByStudent returns every ledger for the student. An empty slice
// is a valid state (no attendance uploaded yet); the caller resolves
// the student first, so "student does not exist" surfaces separately.
func FetchByStudent(db *gorm.DB, studentID uuid.UUID) ([]model.AttendanceLedgerModel, error) {
	var ledgers []model.AttendanceLedgerModel
	if err := db.
		Where("attendance_ledger_student_id = ?", studentID).
		Order("attendance_ledger_created_at ASC").
		Find(&ledgers).Error; err != nil {
		return nil, err
	}
	return ledgers, nil
}
