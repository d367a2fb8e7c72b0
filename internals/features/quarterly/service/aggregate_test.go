package service

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	mrmodel "progresstrack_backend/internals/features/monthlyreport/model"
	"progresstrack_backend/internals/features/quarterly/model"
)

func TestCategoryAverages(t *testing.T) {
	// Q1 with Cognitive scores [4,5] and Communication [3] across two
	// monthly records, no other categories.
	lists := [][]mrmodel.SkillScore{
		{
			{SkillName: "Cognitive", Marks: 4},
			{SkillName: "Communication", Marks: 3},
		},
		{
			{SkillName: "Cognitive", Marks: 5},
		},
	}

	got := CategoryAverages(lists)

	want := []model.SkillFeedback{
		{SkillName: "Cognitive", SkillScore: 4.5},
		{SkillName: "Communication", SkillScore: 3},
		{SkillName: "Attention", SkillScore: 0},
		{SkillName: "Behavior", SkillScore: 0},
		{SkillName: "Others", SkillScore: 0},
	}
	assert.Equal(t, want, got)

	// Mean of the five category averages: (4.5+3+0+0+0)/5.
	assert.Equal(t, 1.5, OverallFromCategories(got))
}

// The feedback list always has exactly one entry per fixed category,
// even when no record touched a category this quarter.
func TestCategoryAveragesCompleteness(t *testing.T) {
	got := CategoryAverages(nil)
	assert.Len(t, got, 5)
	for _, f := range got {
		assert.Zero(t, f.SkillScore)
	}

	got = CategoryAverages([][]mrmodel.SkillScore{{{SkillName: "Behavior", Marks: 2}}})
	assert.Len(t, got, 5)
}

func TestCategoryAveragesCaseInsensitive(t *testing.T) {
	got := CategoryAverages([][]mrmodel.SkillScore{
		{{SkillName: "cognitive", Marks: 4}, {SkillName: "COGNITIVE", Marks: 2}},
	})
	assert.Equal(t, 3.0, got[0].SkillScore)
}

func TestCategoryAveragesUnknownSkillIgnored(t *testing.T) {
	got := CategoryAverages([][]mrmodel.SkillScore{
		{{SkillName: "Telepathy", Marks: 5}},
	})
	for _, f := range got {
		assert.Zero(t, f.SkillScore, "unknown skill must not land in %s", f.SkillName)
	}
}

func TestCategoryAveragesRounding(t *testing.T) {
	got := CategoryAverages([][]mrmodel.SkillScore{
		{{SkillName: "Attention", Marks: 4}, {SkillName: "Attention", Marks: 4}, {SkillName: "Attention", Marks: 5}},
	})
	// 13/3 = 4.333..., rounded to one decimal.
	for _, f := range got {
		if f.SkillName == "Attention" {
			assert.Equal(t, 4.3, f.SkillScore)
		}
	}
}

// Unchanged input yields byte-identical output on repeat runs.
func TestAggregationIdempotence(t *testing.T) {
	lists := [][]mrmodel.SkillScore{
		{{SkillName: "Cognitive", Marks: 3.7}, {SkillName: "Others", Marks: 1.2}},
		{{SkillName: "Cognitive", Marks: 4.1}},
	}

	first := CategoryAverages(lists)
	second := CategoryAverages(lists)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeat aggregation differs: %v vs %v", first, second)
	}
	if OverallFromCategories(first) != OverallFromCategories(second) {
		t.Error("repeat overall score differs")
	}
}

func TestFlatOverallScore(t *testing.T) {
	feedback := []model.SkillFeedback{
		{SkillName: "Cognitive", SkillScore: 4},
		{SkillName: "Communication", SkillScore: 2},
	}
	marks := []float64{80}
	lists := [][]mrmodel.SkillScore{{{SkillName: "Cognitive", Marks: 4}}}

	// Flat mean over raw values, not a mean of means:
	// (4 + 2 + 80 + 4) / 4 = 22.5. Scales are deliberately mixed.
	assert.Equal(t, 22.5, FlatOverallScore(feedback, marks, lists))
}

func TestFlatOverallScoreEmpty(t *testing.T) {
	assert.Zero(t, FlatOverallScore(nil, nil, nil))
}

// The two overall-score semantics disagree by design whenever
// assessments contribute; this pins the difference down.
func TestOverallSemanticsDiffer(t *testing.T) {
	feedback := CategoryAverages([][]mrmodel.SkillScore{
		{{SkillName: "Cognitive", Marks: 4}},
	})
	rollup := OverallFromCategories(feedback)
	flat := FlatOverallScore(feedback, []float64{90}, nil)
	assert.NotEqual(t, rollup, flat)
}
