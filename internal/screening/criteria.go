package screening

import (
	"strconv"
	"strings"
)

// Criteria is the screening configuration applied uniformly to one batch.
// All terms are lower-cased at construction; a Criteria value is never
// mutated after ParseCriteria returns.
type Criteria struct {
	Keywords       []string
	Skills         []string
	MinYears       float64
	EducationTerms []string
}

// ParseCriteria builds a Criteria from the raw form inputs: comma-separated
// term lists and a minimum-years string. Malformed or negative min-years
// falls back to 0 rather than failing the batch.
func ParseCriteria(keywords, skills, minYears, education string) Criteria {
	return Criteria{
		Keywords:       splitTerms(keywords),
		Skills:         splitTerms(skills),
		MinYears:       parseMinYears(minYears),
		EducationTerms: splitTerms(education),
	}
}

func splitTerms(raw string) []string {
	var terms []string
	for _, part := range strings.Split(raw, ",") {
		term := strings.ToLower(strings.TrimSpace(part))
		if term != "" {
			terms = append(terms, term)
		}
	}
	return terms
}

func parseMinYears(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
