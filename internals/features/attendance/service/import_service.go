package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strings"

	"gorm.io/gorm"

	"progresstrack_backend/internals/constants"
	"progresstrack_backend/internals/features/attendance/dto"
	studentsvc "progresstrack_backend/internals/features/students/service"
)

// ImportCSV feeds a tabular attendance upload into RecordAttendance
// row by row. Expected header: StudentId, EducatorId, Month, then one
// column per day. Malformed rows are skipped and reported in the
// summary; one bad row never blocks the rest of the batch.
func ImportCSV(db *gorm.DB, r io.Reader) (*dto.ImportSummary, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // day columns vary by month

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("unreadable CSV header: %w", err)
	}
	if len(header) < 4 {
		return nil, fmt.Errorf("CSV needs StudentId, EducatorId, Month and at least one day column")
	}

	summary := &dto.ImportSummary{}
	rowNum := 1

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		rowNum++
		summary.TotalRows++
		if err != nil {
			summary.SkippedRows++
			summary.Errors = append(summary.Errors, dto.ImportRowError{Row: rowNum, Reason: "unparseable row"})
			continue
		}

		if reason := importRow(db, record); reason != "" {
			summary.SkippedRows++
			summary.Errors = append(summary.Errors, dto.ImportRowError{Row: rowNum, Reason: reason})
			continue
		}
		summary.ImportedRows++
	}

	log.Printf("[INFO] attendance import: %d rows, %d imported, %d skipped",
		summary.TotalRows, summary.ImportedRows, summary.SkippedRows)
	return summary, nil
}

func importRow(db *gorm.DB, record []string) string {
	if len(record) < 4 {
		return "too few columns"
	}

	studentHumanID := strings.TrimSpace(record[0])
	educatorHumanID := strings.TrimSpace(record[1])
	month := strings.TrimSpace(record[2])

	if studentHumanID == "" || educatorHumanID == "" {
		return "missing student or educator id"
	}
	if !constants.ValidMonth(month) {
		return "unknown month " + month
	}

	student, err := studentsvc.ResolveStudent(db, studentHumanID)
	if err != nil {
		return "unknown student " + studentHumanID
	}
	educator, err := studentsvc.ResolveEducator(db, educatorHumanID)
	if err != nil {
		return "unknown educator " + educatorHumanID
	}

	// Day cells are normalized inside RecordAttendance; anything that
	// is not P/A/$ just becomes a "$" gap.
	dailyMarks := make([]string, 0, len(record)-3)
	for _, cell := range record[3:] {
		dailyMarks = append(dailyMarks, strings.TrimSpace(cell))
	}

	if _, err := RecordAttendance(db, student.StudentID, educator.EducatorID, month, dailyMarks); err != nil {
		return "write failed: " + err.Error()
	}
	return ""
}
