package service

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"progresstrack_backend/internals/constants"
	"progresstrack_backend/internals/features/monthlyreport/dto"
	"progresstrack_backend/internals/features/monthlyreport/model"
)

// ResolveTimeFrame fills the month/year/quarter triple: the current
// calendar month when none is supplied, and quarter derived as
// ceil(month/3) whenever the quarter field is blank.
func ResolveTimeFrame(tf *dto.TimeFrameInput, now time.Time) (month string, year int, quarter string) {
	if tf == nil {
		month = constants.MonthAbbrevs[int(now.Month())-1]
		year = now.Year()
		quarter = constants.QuarterOf(int(now.Month()))
		return
	}
	month = tf.Month
	year = tf.Year
	quarter = tf.Quarter
	if quarter == "" {
		quarter = constants.QuarterOf(constants.MonthNumber(month))
	}
	return
}

// RecordMonthlyScore upserts the one record per (student, month, year).
// A re-submission for the same month replaces the prior record outright.
// Range validation (marks in [0,5], non-empty skill names) happens at
// the DTO layer before this is called.
func RecordMonthlyScore(db *gorm.DB, studentID uuid.UUID, req dto.RecordMonthlyScoreRequest) (*model.MonthlyReportModel, error) {
	month, year, quarter := ResolveTimeFrame(req.TimeFrame, time.Now())

	scores := make([]model.SkillScore, 0, len(req.Scores))
	for _, s := range req.Scores {
		scores = append(scores, model.SkillScore{SkillName: s.SkillName, Marks: s.Marks})
	}
	raw, err := json.Marshal(scores)
	if err != nil {
		return nil, err
	}

	record := model.MonthlyReportModel{
		MonthlyReportStudentID: studentID,
		MonthlyReportScores:    datatypes.JSON(raw),
		MonthlyReportRemarks:   req.Remarks,
		MonthlyReportMonth:     month,
		MonthlyReportYear:      year,
		MonthlyReportQuarter:   quarter,
	}

	if err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "monthly_report_student_id"},
			{Name: "monthly_report_month"},
			{Name: "monthly_report_year"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"monthly_report_scores",
			"monthly_report_remarks",
			"monthly_report_quarter",
			"monthly_report_updated_at",
		}),
	}).Create(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

// SortChronological orders records by calendar position, year then
// month number. The month column stores a text abbreviation, so the
// database cannot produce this ordering; sorting by created_at would
// put a backfilled month after the months entered before it.
func SortChronological(records []model.MonthlyReportModel) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].MonthlyReportYear != records[j].MonthlyReportYear {
			return records[i].MonthlyReportYear < records[j].MonthlyReportYear
		}
		return constants.MonthNumber(records[i].MonthlyReportMonth) <
			constants.MonthNumber(records[j].MonthlyReportMonth)
	})
}

// FetchByStudent lists the student's monthly records in calendar order.
func FetchByStudent(db *gorm.DB, studentID uuid.UUID) ([]model.MonthlyReportModel, error) {
	var records []model.MonthlyReportModel
	if err := db.
		Where("monthly_report_student_id = ?", studentID).
		Find(&records).Error; err != nil {
		return nil, err
	}
	SortChronological(records)
	return records, nil
}

// FetchByQuarter returns the student's records for one quarter/year,
// in calendar order.
func FetchByQuarter(db *gorm.DB, studentID uuid.UUID, quarter string, year int) ([]model.MonthlyReportModel, error) {
	var records []model.MonthlyReportModel
	if err := db.
		Where("monthly_report_student_id = ? AND monthly_report_quarter = ? AND monthly_report_year = ?",
			studentID, quarter, year).
		Find(&records).Error; err != nil {
		return nil, err
	}
	SortChronological(records)
	return records, nil
}
