package service

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"progresstrack_backend/internals/configs"
	assessmentsvc "progresstrack_backend/internals/features/assessment/service"
	mrmodel "progresstrack_backend/internals/features/monthlyreport/model"
	mrsvc "progresstrack_backend/internals/features/monthlyreport/service"
	qmodel "progresstrack_backend/internals/features/quarterly/model"
	qsvc "progresstrack_backend/internals/features/quarterly/service"
	studentsvc "progresstrack_backend/internals/features/students/service"
)

// RenderReport assembles the student's latest quarterly report with
// its linked records and renders the downloadable PDF. Returns the
// bytes and the suggested filename. NotFound when the student is
// unknown or no report has been aggregated yet.
func RenderReport(db *gorm.DB, studentHumanID string) ([]byte, string, error) {
	student, err := studentsvc.ResolveStudent(db, studentHumanID)
	if err != nil {
		return nil, "", err
	}

	report, err := qsvc.FetchLatestByStudent(db, student.StudentID)
	if err != nil {
		return nil, "", err
	}

	// Full-report path: re-link assessments and refresh the overall
	// score (the flat grand mean) before rendering.
	if err := qsvc.RefreshOverallScore(db, report); err != nil {
		return nil, "", err
	}

	grades, err := assessmentsvc.FetchByStudent(db, student.StudentID)
	if err != nil {
		return nil, "", err
	}
	bars := make([]AssessmentBar, 0, len(grades))
	for _, g := range grades {
		bars = append(bars, AssessmentBar{
			Name:     g.AssessmentGradeName,
			Marks:    g.AssessmentGradeMarks,
			Feedback: g.AssessmentGradeFeedback,
			Date:     g.AssessmentGradeDate,
		})
	}

	monthlies, err := linkedMonthlies(db, report)
	if err != nil {
		return nil, "", err
	}
	points := make([]MonthlyPoint, 0, len(monthlies))
	for _, m := range monthlies {
		var scores []mrmodel.SkillScore
		if len(m.MonthlyReportScores) > 0 {
			if err := json.Unmarshal(m.MonthlyReportScores, &scores); err != nil {
				return nil, "", err
			}
		}
		total := 0.0
		for _, s := range scores {
			total += s.Marks
		}
		points = append(points, MonthlyPoint{
			Label:   fmt.Sprintf("%s %d", m.MonthlyReportMonth, m.MonthlyReportYear),
			Total:   total,
			Remarks: m.MonthlyReportRemarks,
		})
	}

	var feedback []qmodel.SkillFeedback
	if len(report.QuarterlyReportSkillsFeedback) > 0 {
		if err := json.Unmarshal(report.QuarterlyReportSkillsFeedback, &feedback); err != nil {
			return nil, "", err
		}
	}

	data := DocumentData{
		StudentHumanID: student.StudentHumanID,
		StudentName:    student.StudentName,
		Quarter:        report.QuarterlyReportQuarter,
		Year:           report.QuarterlyReportYear,
		OverallScore:   report.QuarterlyReportOverallScore,
		SkillsFeedback: feedback,
		Assessments:    bars,
		Monthlies:      points,
		OrgName:        configs.ReportOrg,
		GeneratedAt:    time.Now(),
	}
	if student.StudentGuardianName != nil {
		data.GuardianName = *student.StudentGuardianName
	}
	if student.StudentProgram != nil {
		data.Program = *student.StudentProgram
	}
	if report.QuarterlyReportSuggestions != nil {
		data.Suggestions = *report.QuarterlyReportSuggestions
	}
	if report.QuarterlyReportTeacherComments != nil {
		data.TeacherComments = *report.QuarterlyReportTeacherComments
	}

	out, err := BuildDocument(data)
	if err != nil {
		log.Printf("[ERROR] report render failed for %s: %v", studentHumanID, err)
		return nil, "", err
	}

	return out, SuggestedFilename(student.StudentHumanID), nil
}

func linkedMonthlies(db *gorm.DB, report *qmodel.QuarterlyReportModel) ([]mrmodel.MonthlyReportModel, error) {
	var ids []string
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
	// Chart points and transcript lines follow calendar order even
	// when a month was backfilled after its neighbors.
	mrsvc.SortChronological(monthlies)
	return monthlies, nil
}
