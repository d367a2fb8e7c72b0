package service

import (
	"strings"
	"testing"
)

// One bad row never aborts the batch: every malformed row lands in
// the summary with a reason and iteration moves on to the next line.
func TestImportCSVAccumulatesRowErrors(t *testing.T) {
	csvData := "StudentId,EducatorId,Month,1,2,3\n" +
		"STU001,\"EDU01\"x,Feb,P,A,P\n" + // stray quote, unparseable
		"STU001,EDU01,Febber,P,A,P\n" + // unknown month
		"STU001,,Feb,P,A,P\n" + // blank educator id
		"STU001,EDU01\n" // too few columns

	summary, err := ImportCSV(nil, strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("ImportCSV() error = %v", err)
	}

	if summary.TotalRows != 4 {
		t.Errorf("TotalRows = %d, want 4", summary.TotalRows)
	}
	if summary.ImportedRows != 0 {
		t.Errorf("ImportedRows = %d, want 0", summary.ImportedRows)
	}
	if summary.SkippedRows != 4 {
		t.Errorf("SkippedRows = %d, want 4", summary.SkippedRows)
	}
	if summary.TotalRows != summary.ImportedRows+summary.SkippedRows {
		t.Errorf("TotalRows %d != ImportedRows %d + SkippedRows %d",
			summary.TotalRows, summary.ImportedRows, summary.SkippedRows)
	}

	if len(summary.Errors) != 4 {
		t.Fatalf("len(Errors) = %d, want 4", len(summary.Errors))
	}
	// Row numbers are 1-based including the header line.
	wantRows := []int{2, 3, 4, 5}
	for i, e := range summary.Errors {
		if e.Row != wantRows[i] {
			t.Errorf("Errors[%d].Row = %d, want %d", i, e.Row, wantRows[i])
		}
		if e.Reason == "" {
			t.Errorf("Errors[%d] has no reason", i)
		}
	}
	if !strings.Contains(summary.Errors[1].Reason, "unknown month") {
		t.Errorf("Errors[1].Reason = %q, want an unknown month reason", summary.Errors[1].Reason)
	}
}

func TestImportCSVRejectsShortHeader(t *testing.T) {
	_, err := ImportCSV(nil, strings.NewReader("StudentId,EducatorId,Month\n"))
	if err == nil {
		t.Fatal("expected an error for a header without day columns")
	}
}

func TestImportRowValidation(t *testing.T) {
	tests := []struct {
		name       string
		record     []string
		wantReason string
	}{
		{"too few columns", []string{"STU001", "EDU01", "Feb"}, "too few columns"},
		{"blank student id", []string{"  ", "EDU01", "Feb", "P"}, "missing student or educator id"},
		{"unknown month", []string{"STU001", "EDU01", "February", "P"}, "unknown month February"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := importRow(nil, tt.record); got != tt.wantReason {
				t.Errorf("importRow() = %q, want %q", got, tt.wantReason)
			}
		})
	}
}
