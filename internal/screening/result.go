package screening

// Candidate is one document reduced to plain text. Text may be empty when
// extraction failed; downstream stages treat that as zero matches and zero
// years rather than as an error.
type Candidate struct {
	ID   string
	Text string
}

// ScoreResult is the immutable scoring outcome for one Candidate. Exactly
// one is produced per candidate per run, including candidates whose text
// extraction failed (ExtractionErr carries the annotation in that case).
type ScoreResult struct {
	CandidateID    string
	KeywordsFound  []string
	SkillsFound    []string
	Years          float64
	EducationFound []string
	Score          float64
	ExtractionErr  string
}

// ScoreCandidate runs the full per-candidate pipeline (experience parsing,
// criteria matching, scoring) as a pure function of its inputs.
func ScoreCandidate(c Candidate, criteria Criteria) ScoreResult {
	keywords, skills, education := Match(c.Text, criteria)
	years := ParseYears(c.Text)

	return ScoreResult{
		CandidateID:    c.ID,
		KeywordsFound:  keywords,
		SkillsFound:    skills,
		Years:          years,
		EducationFound: education,
		Score:          Score(keywords, skills, years, education, criteria.MinYears),
	}
}
