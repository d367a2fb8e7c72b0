package service

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	qmodel "progresstrack_backend/internals/features/quarterly/model"
	helper "progresstrack_backend/internals/helpers"
)

// AssessmentBar is one bar of the assessment chart plus its transcript line.
type AssessmentBar struct {
	Name     string
	Marks    float64
	Feedback string
	Date     time.Time
}

// MonthlyPoint is one point of the trend chart: a month label and the
// sum of that month's skill marks.
type MonthlyPoint struct {
	Label   string
	Total   float64
	Remarks string
}

// DocumentData is everything the renderer needs. It carries plain
// values only, so building the document is a pure function of the
// report's data: same input, visually identical output.
type DocumentData struct {
	StudentHumanID string
	StudentName    string
	GuardianName   string
	Program        string

	Quarter      string
	Year         int
	OverallScore float64

	SkillsFeedback []qmodel.SkillFeedback
	Assessments    []AssessmentBar
	Monthlies      []MonthlyPoint

	Suggestions     string
	TeacherComments string

	OrgName     string
	GeneratedAt time.Time
}

// SuggestedFilename is the download name handed to the transfer boundary.
func SuggestedFilename(studentHumanID string) string {
	return "Student_Report_" + studentHumanID + ".pdf"
}

// BuildDocument renders the full report PDF: header, skill summary,
// assessment bar chart, monthly trend line chart, chronological
// transcript, timestamp footer. Empty chart datasets degrade to an
// empty chart frame; they never abort the document.
func BuildDocument(data DocumentData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	drawHeader(pdf, data)
	drawSkillSummary(pdf, data)

	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 6, "ASSESSMENT PERFORMANCE")
	pdf.Ln(8)
	drawBarChart(pdf, data.Assessments)
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 6, "MONTHLY PROGRESS TREND")
	pdf.Ln(8)
	drawLineChart(pdf, data.Monthlies)
	pdf.Ln(6)

	drawTranscript(pdf, data)
	drawFooter(pdf, data)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", helper.ErrRender, err)
	}
	return buf.Bytes(), nil
}

func drawHeader(pdf *gofpdf.Fpdf, data DocumentData) {
	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 8, data.OrgName)
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 5, "Quarterly Progress Report")
	pdf.Ln(4)
	pdf.SetDrawColor(40, 108, 145)
	pdf.SetLineWidth(0.5)
	pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(45, 6, "Student ID:")
	pdf.SetFont("Arial", "B", 10)
	pdf.Cell(0, 6, data.StudentHumanID)
	pdf.Ln(5)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(45, 6, "Name:")
	pdf.SetFont("Arial", "B", 10)
	pdf.Cell(0, 6, data.StudentName)
	pdf.Ln(5)

	if data.GuardianName != "" {
		pdf.SetFont("Arial", "", 10)
		pdf.Cell(45, 6, "Guardian:")
		pdf.SetFont("Arial", "B", 10)
		pdf.Cell(0, 6, data.GuardianName)
		pdf.Ln(5)
	}
	if data.Program != "" {
		pdf.SetFont("Arial", "", 10)
		pdf.Cell(45, 6, "Program:")
		pdf.SetFont("Arial", "B", 10)
		pdf.Cell(0, 6, data.Program)
		pdf.Ln(5)
	}

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(45, 6, "Period:")
	pdf.SetFont("Arial", "B", 10)
	pdf.Cell(0, 6, fmt.Sprintf("%s %d", data.Quarter, data.Year))
	pdf.Ln(10)
}

func drawSkillSummary(pdf *gofpdf.Fpdf, data DocumentData) {
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 6, "SKILL SUMMARY")
	pdf.Ln(7)

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(40, 108, 145)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(95, 8, "SKILL", "1", 0, "L", true, 0, "")
	pdf.CellFormat(75, 8, "SCORE (0-5)", "1", 1, "C", true, 0, "")
	pdf.SetTextColor(0, 0, 0)

	pdf.SetFont("Arial", "", 9)
	for _, f := range data.SkillsFeedback {
		pdf.CellFormat(95, 7, f.SkillName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(75, 7, fmt.Sprintf("%.1f", f.SkillScore), "1", 1, "C", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(95, 8, "OVERALL", "1", 0, "L", false, 0, "")
	pdf.CellFormat(75, 8, fmt.Sprintf("%.1f", data.OverallScore), "1", 1, "C", false, 0, "")
	pdf.Ln(8)
}

const (
	chartX = 25.0
	chartW = 160.0
	chartH = 50.0
)

// drawBarChart renders assessment name vs marks. Zero assessments
// produce the empty frame only.
func drawBarChart(pdf *gofpdf.Fpdf, bars []AssessmentBar) {
	top := pdf.GetY()
	drawChartFrame(pdf, top, maxBarValue(bars))

	if len(bars) > 0 {
		slot := chartW / float64(len(bars))
		barW := slot * 0.6
		maxVal := maxBarValue(bars)

		pdf.SetFillColor(40, 108, 145)
		pdf.SetFont("Arial", "", 7)
		for i, b := range bars {
			h := 0.0
			if maxVal > 0 {
				h = b.Marks / maxVal * chartH
			}
			x := chartX + float64(i)*slot + (slot-barW)/2
			pdf.Rect(x, top+chartH-h, barW, h, "F")
			pdf.SetXY(chartX+float64(i)*slot, top+chartH+1)
			pdf.CellFormat(slot, 4, truncate(b.Name, 14), "", 0, "C", false, 0, "")
		}
	}

	pdf.SetY(top + chartH + 8)
}

// drawLineChart renders month label vs summed skill marks.
func drawLineChart(pdf *gofpdf.Fpdf, points []MonthlyPoint) {
	top := pdf.GetY()
	drawChartFrame(pdf, top, maxPointValue(points))

	if len(points) > 0 {
		slot := chartW / float64(len(points))
		maxVal := maxPointValue(points)

		pdf.SetDrawColor(180, 70, 40)
		pdf.SetLineWidth(0.6)
		pdf.SetFont("Arial", "", 7)

		prevX, prevY := 0.0, 0.0
		for i, p := range points {
			x := chartX + float64(i)*slot + slot/2
			y := top + chartH
			if maxVal > 0 {
				y = top + chartH - p.Total/maxVal*chartH
			}
			if i > 0 {
				pdf.Line(prevX, prevY, x, y)
			}
			pdf.Circle(x, y, 0.8, "D")
			prevX, prevY = x, y

			pdf.SetXY(chartX+float64(i)*slot, top+chartH+1)
			pdf.CellFormat(slot, 4, p.Label, "", 0, "C", false, 0, "")
		}
		pdf.SetDrawColor(0, 0, 0)
		pdf.SetLineWidth(0.2)
	}

	pdf.SetY(top + chartH + 8)
}

func drawChartFrame(pdf *gofpdf.Fpdf, top, maxVal float64) {
	pdf.SetDrawColor(120, 120, 120)
	pdf.SetLineWidth(0.3)
	pdf.Rect(chartX, top, chartW, chartH, "D")

	pdf.SetFont("Arial", "", 7)
	pdf.SetXY(chartX-14, top-1)
	pdf.CellFormat(12, 4, fmt.Sprintf("%.0f", maxVal), "", 0, "R", false, 0, "")
	pdf.SetXY(chartX-14, top+chartH-3)
	pdf.CellFormat(12, 4, "0", "", 0, "R", false, 0, "")
}

func drawTranscript(pdf *gofpdf.Fpdf, data DocumentData) {
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 6, "FEEDBACK & REMARKS")
	pdf.Ln(7)

	pdf.SetFont("Arial", "", 9)
	for _, b := range data.Assessments {
		line := fmt.Sprintf("%s - %s: %.1f marks", b.Date.Format("02 Jan 2006"), b.Name, b.Marks)
		if b.Feedback != "" {
			line += " - " + b.Feedback
		}
		pdf.MultiCell(0, 5, line, "", "L", false)
		pdf.Ln(1)
	}
	for _, p := range data.Monthlies {
		line := fmt.Sprintf("%s: total skill marks %.1f", p.Label, p.Total)
		if p.Remarks != "" {
			line += " - " + p.Remarks
		}
		pdf.MultiCell(0, 5, line, "", "L", false)
		pdf.Ln(1)
	}

	if data.Suggestions != "" {
		pdf.Ln(2)
		pdf.SetFont("Arial", "B", 9)
		pdf.Cell(0, 5, "Suggestions:")
		pdf.Ln(5)
		pdf.SetFont("Arial", "", 9)
		pdf.MultiCell(0, 5, data.Suggestions, "", "L", false)
	}
	if data.TeacherComments != "" {
		pdf.Ln(2)
		pdf.SetFont("Arial", "B", 9)
		pdf.Cell(0, 5, "Teacher comments:")
		pdf.Ln(5)
		pdf.SetFont("Arial", "", 9)
		pdf.MultiCell(0, 5, data.TeacherComments, "", "L", false)
	}
}

func drawFooter(pdf *gofpdf.Fpdf, data DocumentData) {
	pdf.Ln(6)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.Cell(0, 5, "Generated on "+data.GeneratedAt.Format("02 Jan 2006 15:04 MST"))
	pdf.SetTextColor(0, 0, 0)
}

func maxBarValue(bars []AssessmentBar) float64 {
	max := 0.0
	for _, b := range bars {
		if b.Marks > max {
			max = b.Marks
		}
	}
	return max
}

func maxPointValue(points []MonthlyPoint) float64 {
	max := 0.0
	for _, p := range points {
		if p.Total > max {
			max = p.Total
		}
	}
	return max
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
