package screening

import (
	"regexp"
	"strconv"
)

var (
	// "5 years", "3+ yrs", "2.5 years"
	yearsPattern = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*\+?\s*(?:years|yrs)`)
	// "2-year" as in "a 2-year contract"
	hyphenYearPattern = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)-year`)
)

// ParseYears scans free text for duration-of-experience phrases and resolves
// them to a single year count. A resume usually lists several roles; the
// maximum single span is taken as a proxy for seniority. Hyphenated "N-year"
// phrases are only consulted when the primary "N years" family has no match.
// Returns 0 when no duration phrase is present.
func ParseYears(text string) float64 {
	if v, ok := maxMatch(yearsPattern, text); ok {
		return v
	}
	if v, ok := maxMatch(hyphenYearPattern, text); ok {
		return v
	}
	return 0
}

func maxMatch(re *regexp.Regexp, text string) (float64, bool) {
	var max float64
	found := false
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		if !found || v > max {
			max = v
		}
		found = true
	}
	return max, found
}
