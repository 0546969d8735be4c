package models

// CandidateResult is the JSON shape of one ranked candidate.
type CandidateResult struct {
	Filename       string   `json:"filename"`
	KeywordsFound  []string `json:"keywords_found"`
	SkillsFound    []string `json:"skills_found"`
	Years          float64  `json:"years"`
	EducationFound []string `json:"education_found"`
	Score          float64  `json:"score"`
	ExtractionErr  string   `json:"extraction_error,omitempty"`
}

// ScreenResponse is returned by POST /screen: the ranked batch plus a
// handle to the merged report and any non-fatal warnings collected along
// the way (rejected files, unreadable history).
type ScreenResponse struct {
	RunID     string            `json:"run_id"`
	Results   []CandidateResult `json:"results"`
	ReportURL string            `json:"report_url"`
	Warnings  []string          `json:"warnings,omitempty"`
}

// RunResponse is the stored summary of a past run.
type RunResponse struct {
	ID             string   `json:"id"`
	Status         string   `json:"status"`
	Keywords       string   `json:"keywords"`
	Skills         string   `json:"skills"`
	MinYears       float64  `json:"min_years"`
	Education      string   `json:"education"`
	CandidateCount int      `json:"candidate_count"`
	TopScore       *float64 `json:"top_score,omitempty"`
	ReportURL      string   `json:"report_url,omitempty"`
	ErrorMessage   string   `json:"error_message,omitempty"`
}
