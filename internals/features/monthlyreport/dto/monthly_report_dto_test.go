package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

func validRequest() RecordMonthlyScoreRequest {
	return RecordMonthlyScoreRequest{
		StudentID: "STU2024001",
		Scores: []SkillScoreInput{
			{SkillName: "Cognitive", Marks: 4.5},
			{SkillName: "Communication", Marks: 0},
		},
		Remarks: "steady improvement",
	}
}

func TestRecordMonthlyScoreValidation(t *testing.T) {
	v := validator.New()

	tests := []struct {
		name    string
		mutate  func(*RecordMonthlyScoreRequest)
		wantErr bool
	}{
		{name: "valid", mutate: func(r *RecordMonthlyScoreRequest) {}},
		{
			name:    "marks above 5",
			mutate:  func(r *RecordMonthlyScoreRequest) { r.Scores[0].Marks = 5.1 },
			wantErr: true,
		},
		{
			name:    "negative marks",
			mutate:  func(r *RecordMonthlyScoreRequest) { r.Scores[0].Marks = -1 },
			wantErr: true,
		},
		{
			name:    "empty skill name",
			mutate:  func(r *RecordMonthlyScoreRequest) { r.Scores[1].SkillName = "" },
			wantErr: true,
		},
		{
			name:    "no scores",
			mutate:  func(r *RecordMonthlyScoreRequest) { r.Scores = nil },
			wantErr: true,
		},
		{
			name:    "missing student id",
			mutate:  func(r *RecordMonthlyScoreRequest) { r.StudentID = "" },
			wantErr: true,
		},
		{
			name: "bad month in time frame",
			mutate: func(r *RecordMonthlyScoreRequest) {
				r.TimeFrame = &TimeFrameInput{Month: "January", Year: 2024}
			},
			wantErr: true,
		},
		{
			name: "valid time frame without quarter",
			mutate: func(r *RecordMonthlyScoreRequest) {
				r.TimeFrame = &TimeFrameInput{Month: "Jan", Year: 2024}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			err := v.Struct(req)
			if (err != nil) != tt.wantErr {
				t.Errorf("Struct() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
