package service

import (
	"fmt"
	"testing"
	"time"

	"progresstrack_backend/internals/features/monthlyreport/dto"
	"progresstrack_backend/internals/features/monthlyreport/model"
)

func TestResolveTimeFrame(t *testing.T) {
	now := time.Date(2024, time.May, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		tf          *dto.TimeFrameInput
		wantMonth   string
		wantYear    int
		wantQuarter string
	}{
		{
			name:        "nil derives from now",
			tf:          nil,
			wantMonth:   "May",
			wantYear:    2024,
			wantQuarter: "Q2",
		},
		{
			name:        "quarter derived when blank",
			tf:          &dto.TimeFrameInput{Month: "Feb", Year: 2023},
			wantMonth:   "Feb",
			wantYear:    2023,
			wantQuarter: "Q1",
		},
		{
			name:        "explicit quarter kept",
			tf:          &dto.TimeFrameInput{Month: "Oct", Year: 2024, Quarter: "Q4"},
			wantMonth:   "Oct",
			wantYear:    2024,
			wantQuarter: "Q4",
		},
		{
			name:        "december is Q4",
			tf:          &dto.TimeFrameInput{Month: "Dec", Year: 2024},
			wantMonth:   "Dec",
			wantYear:    2024,
			wantQuarter: "Q4",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			month, year, quarter := ResolveTimeFrame(tt.tf, now)
			if month != tt.wantMonth || year != tt.wantYear || quarter != tt.wantQuarter {
				t.Errorf("ResolveTimeFrame() = (%s, %d, %s), want (%s, %d, %s)",
					month, year, quarter, tt.wantMonth, tt.wantYear, tt.wantQuarter)
			}
		})
	}
}

// A month backfilled after its neighbors (Mar entered, then Feb) must
// still come out in calendar order, not insertion order.
func TestSortChronological(t *testing.T) {
	records := []model.MonthlyReportModel{
		{MonthlyReportMonth: "Mar", MonthlyReportYear: 2024},
		{MonthlyReportMonth: "Feb", MonthlyReportYear: 2024},
		{MonthlyReportMonth: "Dec", MonthlyReportYear: 2023},
		{MonthlyReportMonth: "Jan", MonthlyReportYear: 2024},
	}

	SortChronological(records)

	want := []string{"Dec 2023", "Jan 2024", "Feb 2024", "Mar 2024"}
	for i, r := range records {
		got := fmt.Sprintf("%s %d", r.MonthlyReportMonth, r.MonthlyReportYear)
		if got != want[i] {
			t.Fatalf("position %d = %s, want %s", i, got, want[i])
		}
	}
}
