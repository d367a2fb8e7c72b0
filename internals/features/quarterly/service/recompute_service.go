package service

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	assessmentsvc "progresstrack_backend/internals/features/assessment/service"
	mrmodel "progresstrack_backend/internals/features/monthlyreport/model"
	mrsvc "progresstrack_backend/internals/features/monthlyreport/service"
	"progresstrack_backend/internals/features/quarterly/model"
	helper "progresstrack_backend/internals/helpers"
)

// RecomputeQuarter rebuilds the derived report for (student, quarter,
// year) from its monthly source records:
//
//  1. fetch the quarter's monthly records; none means there is
//     nothing to aggregate, a hard precondition error;
//  2. average each fixed category (0 for absent categories);
//  3. overall = mean of the category averages;
//  4. upsert by the natural key so concurrent recomputes collapse to
//     one row, last writer wins;
//  5. return the report with its monthly records joined.
//
// Running it twice over unchanged sources writes identical values.
func RecomputeQuarter(db *gorm.DB, studentID uuid.UUID, quarter string, year int) (*model.QuarterlyReportModel, []mrmodel.MonthlyReportModel, error) {
	monthlies, err := mrsvc.FetchByQuarter(db, studentID, quarter, year)
	if err != nil {
		return nil, nil, err
	}
	if len(monthlies) == 0 {
		return nil, nil, helper.ErrNothingToAggregate
	}

	scoreLists, err := parseScoreLists(monthlies)
	if err != nil {
		return nil, nil, err
	}

	feedback := CategoryAverages(scoreLists)
	overall := OverallFromCategories(feedback)

	monthlyIDs := make([]uuid.UUID, 0, len(monthlies))
	for _, m := range monthlies {
		monthlyIDs = append(monthlyIDs, m.MonthlyReportID)
	}

	rawFeedback, err := json.Marshal(feedback)
	if err != nil {
		return nil, nil, err
	}
	rawIDs, err := json.Marshal(monthlyIDs)
	if err != nil {
		return nil, nil, err
	}

	report := model.QuarterlyReportModel{
		QuarterlyReportStudentID:      studentID,
		QuarterlyReportQuarter:        quarter,
		QuarterlyReportYear:           year,
		QuarterlyReportDate:           time.Now(),
		QuarterlyReportSkillsFeedback: datatypes.JSON(rawFeedback),
		QuarterlyReportOverallScore:   overall,
		QuarterlyReportMonthlyIDs:     datatypes.JSON(rawIDs),
	}

	if err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "quarterly_report_student_id"},
			{Name: "quarterly_report_quarter"},
			{Name: "quarterly_report_year"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"quarterly_report_date",
			"quarterly_report_skills_feedback",
			"quarterly_report_overall_score",
			"quarterly_report_monthly_ids",
			"quarterly_report_updated_at",
		}),
	}).Create(&report).Error; err != nil {
		return nil, nil, err
	}

	return &report, monthlies, nil
}

// RefreshOverallScore is the full-report path: it re-links the
// student's assessment grades onto the report and recomputes the
// overall score as the flat grand mean over all three sources. The
// original system did this inside a pre-save hook; here it is an
// explicit call made by report generation so it can be tested without
// persistence.
func RefreshOverallScore(db *gorm.DB, report *model.QuarterlyReportModel) error {
	monthlies, err := fetchLinkedMonthlies(db, report)
	if err != nil {
		return err
	}
	scoreLists, err := parseScoreLists(monthlies)
	if err != nil {
		return err
	}

	grades, err := assessmentsvc.FetchByStudent(db, report.QuarterlyReportStudentID)
	if err != nil {
		return err
	}
	marks := make([]float64, 0, len(grades))
	gradeIDs := make([]uuid.UUID, 0, len(grades))
	for _, g := range grades {
		marks = append(marks, g.AssessmentGradeMarks)
		gradeIDs = append(gradeIDs, g.AssessmentGradeID)
	}

	var feedback []model.SkillFeedback
	if len(report.QuarterlyReportSkillsFeedback) > 0 {
		if err := json.Unmarshal(report.QuarterlyReportSkillsFeedback, &feedback); err != nil {
			return err
		}
	}

	report.QuarterlyReportOverallScore = FlatOverallScore(feedback, marks, scoreLists)

	rawIDs, err := json.Marshal(gradeIDs)
	if err != nil {
		return err
	}
	report.QuarterlyReportAssessmentIDs = datatypes.JSON(rawIDs)

	return db.Model(&model.QuarterlyReportModel{}).
		Where("quarterly_report_id = ?", report.QuarterlyReportID).
		Updates(map[string]interface{}{
			"quarterly_report_overall_score":  report.QuarterlyReportOverallScore,
			"quarterly_report_assessment_ids": report.QuarterlyReportAssessmentIDs,
		}).Error
}

// FetchLatestByStudent returns the student's most recent report by
// (year, quarter), or ErrNotFound when none has been aggregated yet.
func FetchLatestByStudent(db *gorm.DB, studentID uuid.UUID) (*model.QuarterlyReportModel, error) {
	var report model.QuarterlyReportModel
	err := db.
		Where("quarterly_report_student_id = ?", studentID).
		Order("quarterly_report_year DESC, quarterly_report_quarter DESC").
		Take(&report).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// FetchByPeriod returns the report for one (student, quarter, year).
func FetchByPeriod(db *gorm.DB, studentID uuid.UUID, quarter string, year int) (*model.QuarterlyReportModel, error) {
	var report model.QuarterlyReportModel
	err := db.
		Where("quarterly_report_student_id = ? AND quarterly_report_quarter = ? AND quarterly_report_year = ?",
			studentID, quarter, year).
		Take(&report).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// UpdateFeedback sets the two hand-written feedback fields without
// touching any derived column.
func UpdateFeedback(db *gorm.DB, reportID uuid.UUID, suggestions, teacherComments *string) error {
	updates := map[string]interface{}{}
	if suggestions != nil {
		updates["quarterly_report_suggestions"] = *suggestions
	}
	if teacherComments != nil {
		updates["quarterly_report_teacher_comments"] = *teacherComments
	}
	if len(updates) == 0 {
		return nil
	}

	res := db.Model(&model.QuarterlyReportModel{}).
		Where("quarterly_report_id = ?", reportID).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return helper.ErrNotFound
	}
	return nil
}

func fetchLinkedMonthlies(db *gorm.DB, report *model.QuarterlyReportModel) ([]mrmodel.MonthlyReportModel, error) {
	var ids []uuid.UUID
	if len(report.QuarterlyReportMonthlyIDs) > 0 {
		if err := json.Unmarshal(report.QuarterlyReportMonthlyIDs, &ids); err != nil {
			return nil, err
		}
	}
	if len(ids) == 0 {
		return nil, nil
	}

	var monthlies []mrmodel.MonthlyReportModel
	if err := db.
		Where("monthly_report_id IN ?", ids).
		Find(&monthlies).Error; err != nil {
		return nil, err
	}
	mrsvc.SortChronological(monthlies)
	return monthlies, nil
}

func parseScoreLists(monthlies []mrmodel.MonthlyReportModel) ([][]mrmodel.SkillScore, error) {
	lists := make([][]mrmodel.SkillScore, 0, len(monthlies))
	for _, m := range monthlies {
		var scores []mrmodel.SkillScore
		if len(m.MonthlyReportScores) > 0 {
			if err := json.Unmarshal(m.MonthlyReportScores, &scores); err != nil {
				return nil, err
			}
		}
		lists = append(lists, scores)
	}
	return lists, nil
}
