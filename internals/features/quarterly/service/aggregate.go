package service

import (
	"math"
	"strings"

	"progresstrack_backend/internals/constants"
	mrmodel "progresstrack_backend/internals/features/monthlyreport/model"
	"progresstrack_backend/internals/features/quarterly/model"
)

// CategoryAverages collects every mark across the quarter's score
// lists per fixed category and averages it, rounded to one decimal.
// The output always carries all five categories in canonical order;
// a category with no contributing marks gets 0 (the "not assessed"
// sentinel), so the feedback list has a stable shape quarter to
// quarter. Skill names match case-insensitively; marks filed under an
// unknown name contribute to no category.
func CategoryAverages(scoreLists [][]mrmodel.SkillScore) []model.SkillFeedback {
	sums := make(map[string]float64, len(constants.SkillCategories))
	counts := make(map[string]int, len(constants.SkillCategories))

	for _, scores := range scoreLists {
		for _, s := range scores {
			for _, cat := range constants.SkillCategories {
				if strings.EqualFold(s.SkillName, cat) {
					sums[cat] += s.Marks
					counts[cat]++
					break
				}
			}
		}
	}

	feedback := make([]model.SkillFeedback, 0, len(constants.SkillCategories))
	for _, cat := range constants.SkillCategories {
		avg := 0.0
		if counts[cat] > 0 {
			avg = round1(sums[cat] / float64(counts[cat]))
		}
		feedback = append(feedback, model.SkillFeedback{SkillName: cat, SkillScore: avg})
	}
	return feedback
}

// OverallFromCategories is the quarter-rollup semantic: an unweighted
// mean of the five category averages, rounded to one decimal.
func OverallFromCategories(feedback []model.SkillFeedback) float64 {
	if len(feedback) == 0 {
		return 0
	}
	var sum float64
	for _, f := range feedback {
		sum += f.SkillScore
	}
	return round1(sum / float64(len(feedback)))
}

// FlatOverallScore is the full-report semantic: one grand mean over
// every raw value from all three sources: category averages, linked
// assessment marks, and every individual monthly skill mark. It is a
// flat mean, not a mean of means, so sources with more data points
// weigh more. Assessment marks are on their own scale, which this
// deliberately does not rescale; see DESIGN.md.
func FlatOverallScore(feedback []model.SkillFeedback, assessmentMarks []float64, scoreLists [][]mrmodel.SkillScore) float64 {
	var sum float64
	var count int

	for _, f := range feedback {
		sum += f.SkillScore
		count++
	}
	for _, m := range assessmentMarks {
		sum += m
		count++
	}
	for _, scores := range scoreLists {
		for _, s := range scores {
			sum += s.Marks
			count++
		}
	}

	if count == 0 {
		return 0
	}
	return round1(sum / float64(count))
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
