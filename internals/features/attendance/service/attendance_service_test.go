package service

import (
	"testing"

	"progresstrack_backend/internals/features/attendance/model"
)

func TestComputePercentage(t *testing.T) {
	tests := []struct {
		name   string
		months []model.MonthAttendance
		want   float64
	}{
		{
			name: "two present of three dated days",
			months: []model.MonthAttendance{
				{Month: "Jan", Status: []string{"P", "P", "A", "$"}},
			},
			want: 66.67,
		},
		{
			name:   "no months",
			months: nil,
			want:   0,
		},
		{
			name: "only gaps",
			months: []model.MonthAttendance{
				{Month: "Feb", Status: []string{"$", "$", "$"}},
			},
			want: 0,
		},
		{
			name: "all present",
			months: []model.MonthAttendance{
				{Month: "Mar", Status: []string{"P", "P"}},
			},
			want: 100,
		},
		{
			name: "spans multiple months",
			months: []model.MonthAttendance{
				{Month: "Jan", Status: []string{"P", "A"}},
				{Month: "Feb", Status: []string{"P", "P", "$"}},
			},
			want: 75,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputePercentage(tt.months); got != tt.want {
				t.Errorf("ComputePercentage() = %v, want %v", got, tt.want)
			}
		})
	}
}

// Percentage is zero exactly when no day is P or A.
func TestComputePercentageZeroInvariant(t *testing.T) {
	withData := []model.MonthAttendance{{Month: "Jan", Status: []string{"A"}}}
	if got := ComputePercentage(withData); got != 0 {
		t.Errorf("all-absent ledger: got %v, want 0", got)
	}
	present := []model.MonthAttendance{{Month: "Jan", Status: []string{"P", "A", "A", "A"}}}
	if got := ComputePercentage(present); got == 0 {
		t.Error("ledger with a P day must not report 0")
	}
}

func TestNormalizeCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"P", "P"},
		{"A", "A"},
		{"$", "$"},
		{"X", "$"},
		{"", "$"},
		{"p", "$"},
		{"Present", "$"},
	}
	for _, tt := range tests {
		if got := NormalizeCode(tt.in); got != tt.want {
			t.Errorf("NormalizeCode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
