package screening

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	// 1 keyword + 1 skill + 5 capped years + education bonus, minimum met:
	// 5 + 3 + 2*5 + 10 = 28
	got := Score([]string{"python"}, []string{"flask"}, 5, []string{"bachelor"}, 2)

	assert.Equal(t, 28.0, got)
}

func TestScore_YearCap(t *testing.T) {
	atCap := Score(nil, nil, 10, nil, 0)

	for _, years := range []float64{10, 11, 15, 40} {
		assert.Equal(t, atCap, Score(nil, nil, years, nil, 0), "years=%v", years)
	}
	assert.Less(t, Score(nil, nil, 9.5, nil, 0), atCap)
}

func TestScore_MinYearsPenalty(t *testing.T) {
	below := Score([]string{"go"}, nil, 1, nil, 3)
	met := Score([]string{"go"}, nil, 1, nil, 1)

	assert.Equal(t, met-10, below)
}

func TestScore_PenaltyAppliesToZeroYears(t *testing.T) {
	// No parsable experience still fails a positive minimum; the score can
	// go negative.
	assert.Equal(t, -10.0, Score(nil, nil, 0, nil, 2))
}

func TestScore_EducationBonusIsBinary(t *testing.T) {
	one := Score(nil, nil, 0, []string{"bachelor"}, 0)
	two := Score(nil, nil, 0, []string{"bachelor", "master"}, 0)

	assert.Equal(t, 10.0, one)
	assert.Equal(t, one, two)
}

func TestScore_RoundsToTwoDecimals(t *testing.T) {
	assert.Equal(t, 5.11, Score(nil, nil, 2.555, nil, 0))
}

func TestScoreCandidate_EndToEnd(t *testing.T) {
	criteria := ParseCriteria("python", "flask", "2", "bachelor")
	candidate := Candidate{
		ID:   "cv.pdf",
		Text: "5 years experience with python and flask. Bachelor's degree.",
	}

	r := ScoreCandidate(candidate, criteria)

	assert.Equal(t, "cv.pdf", r.CandidateID)
	assert.Equal(t, []string{"python"}, r.KeywordsFound)
	assert.Equal(t, []string{"flask"}, r.SkillsFound)
	assert.Equal(t, 5.0, r.Years)
	assert.Equal(t, []string{"bachelor"}, r.EducationFound)
	assert.Equal(t, 28.0, r.Score)
}

func TestScoreCandidate_EmptyText(t *testing.T) {
	criteria := ParseCriteria("python", "", "2", "")

	r := ScoreCandidate(Candidate{ID: "broken.pdf"}, criteria)

	assert.Empty(t, r.KeywordsFound)
	assert.Zero(t, r.Years)
	assert.Equal(t, -10.0, r.Score)
}
