package constants

// Fixed skill category set used by monthly scoring and the quarterly
// rollup. Stored as free text on records; matching is case-insensitive.
var SkillCategories = []string{
	"Cognitive",
	"Communication",
	"Attention",
	"Behavior",
	"Others",
}

// Attendance day codes. Anything else coming in from a bulk upload is
// normalized to CodeNoData, never rejected.
const (
	CodePresent = "P"
	CodeAbsent  = "A"
	CodeNoData  = "$"
)

// Month abbreviations in calendar order.
var MonthAbbrevs = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

var monthIndex = func() map[string]int {
	m := make(map[string]int, len(MonthAbbrevs))
	for i, abbr := range MonthAbbrevs {
		m[abbr] = i + 1
	}
	return m
}()

// MonthNumber returns 1..12 for a known abbreviation, 0 otherwise.
func MonthNumber(abbr string) int {
	return monthIndex[abbr]
}

// ValidMonth reports whether abbr is one of MonthAbbrevs.
func ValidMonth(abbr string) bool {
	return monthIndex[abbr] != 0
}

// QuarterOf derives the calendar quarter label for a 1-based month
// number: Q = ceil(month/3).
func QuarterOf(month int) string {
	switch {
	case month <= 3:
		return "Q1"
	case month <= 6:
		return "Q2"
	case month <= 9:
		return "Q3"
	default:
		return "Q4"
	}
}

var Quarters = []string{"Q1", "Q2", "Q3", "Q4"}

// ValidQuarter reports whether q is one of Q1..Q4.
func ValidQuarter(q string) bool {
	for _, v := range Quarters {
		if v == q {
			return true
		}
	}
	return false
}
