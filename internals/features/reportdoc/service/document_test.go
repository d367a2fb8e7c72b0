package service

import (
	"bytes"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	qmodel "progresstrack_backend/internals/features/quarterly/model"
)

func sampleData() DocumentData {
	return DocumentData{
		StudentHumanID: "STU2024001",
		StudentName:    "Aarav Shah",
		GuardianName:   "Meera Shah",
		Program:        "Early Intervention",
		Quarter:        "Q1",
		Year:           2024,
		OverallScore:   3.2,
		SkillsFeedback: []qmodel.SkillFeedback{
			{SkillName: "Cognitive", SkillScore: 4.5},
			{SkillName: "Communication", SkillScore: 3},
			{SkillName: "Attention", SkillScore: 0},
			{SkillName: "Behavior", SkillScore: 0},
			{SkillName: "Others", SkillScore: 0},
		},
		Assessments: []AssessmentBar{
			{Name: "Motor Skills Eval", Marks: 78, Feedback: "good grip control", Date: time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)},
			{Name: "Speech Review", Marks: 64, Date: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		},
		Monthlies: []MonthlyPoint{
			{Label: "Jan 2024", Total: 12.5, Remarks: "settled in well"},
			{Label: "Feb 2024", Total: 14},
			{Label: "Mar 2024", Total: 15.5},
		},
		Suggestions:     "more group activities",
		TeacherComments: "responds well to routine",
		OrgName:         "Student Progress Tracker",
		GeneratedAt:     time.Date(2024, 4, 1, 9, 30, 0, 0, time.UTC),
	}
}

func TestBuildDocument(t *testing.T) {
	out, err := BuildDocument(sampleData())
	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "output must be a PDF stream")
	assert.Greater(t, len(out), 1000)
}

// An empty assessment list renders a bar chart with zero bars; the
// document itself still succeeds.
func TestBuildDocumentNoAssessments(t *testing.T) {
	data := sampleData()
	data.Assessments = nil

	out, err := BuildDocument(data)
	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestBuildDocumentEmptyEverything(t *testing.T) {
	data := DocumentData{
		StudentHumanID: "STU2024002",
		StudentName:    "Diya Patel",
		Quarter:        "Q2",
		Year:           2024,
		OrgName:        "Student Progress Tracker",
		GeneratedAt:    time.Now(),
	}
	out, err := BuildDocument(data)
	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestSuggestedFilename(t *testing.T) {
	assert.Equal(t, "Student_Report_STU2024001.pdf", SuggestedFilename("STU2024001"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Motor Skills", truncate("Motor Skills", 14))
	assert.Equal(t, "Motor Skill...", truncate("Motor Skills Evaluation", 14))

	// Multi-byte names must never be cut mid-rune.
	got := truncate("Évaluation psychomotrice", 14)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, "Évaluation ...", got)
}
