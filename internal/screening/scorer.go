package screening

import "math"

// Scoring weights. The formula is deliberately transparent so that a
// screening decision can always be explained term by term.
const (
	keywordWeight   = 5
	skillWeight     = 3
	yearWeight      = 2
	yearCap         = 10
	educationBonus  = 10
	minYearsPenalty = 10
)

// Score applies the fixed additive formula: +5 per keyword, +3 per skill,
// +2 per year of experience capped at 10 years, a flat +10 when any
// education term matched, and -10 when the candidate falls short of the
// minimum years. A candidate with no parsable experience is treated as
// having 0 years, so it still takes the penalty when a minimum is set.
// The result is rounded to 2 decimal places and may be negative.
func Score(keywordsFound, skillsFound []string, years float64, educationFound []string, minYears float64) float64 {
	score := float64(keywordWeight * len(keywordsFound))
	score += float64(skillWeight * len(skillsFound))
	score += yearWeight * math.Min(years, yearCap)
	if len(educationFound) > 0 {
		score += educationBonus
	}
	if years < minYears {
		score -= minYearsPenalty
	}
	return math.Round(score*100) / 100
}
