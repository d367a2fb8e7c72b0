package constants

import "testing"

func TestQuarterOf(t *testing.T) {
	tests := []struct {
		month int
		want  string
	}{
		{1, "Q1"}, {3, "Q1"},
		{4, "Q2"}, {6, "Q2"},
		{7, "Q3"}, {9, "Q3"},
		{10, "Q4"}, {12, "Q4"},
	}
	for _, tt := range tests {
		if got := QuarterOf(tt.month); got != tt.want {
			t.Errorf("QuarterOf(%d) = %s, want %s", tt.month, got, tt.want)
		}
	}
}

func TestMonthNumber(t *testing.T) {
	if got := MonthNumber("Jan"); got != 1 {
		t.Errorf("MonthNumber(Jan) = %d, want 1", got)
	}
	if got := MonthNumber("Dec"); got != 12 {
		t.Errorf("MonthNumber(Dec) = %d, want 12", got)
	}
	if got := MonthNumber("January"); got != 0 {
		t.Errorf("MonthNumber(January) = %d, want 0", got)
	}
}

func TestValidMonth(t *testing.T) {
	if !ValidMonth("Sep") {
		t.Error("Sep must be valid")
	}
	if ValidMonth("") || ValidMonth("sep") {
		t.Error("abbreviations are case sensitive")
	}
}
