package screening

import "strings"

// Match reports which criteria terms occur in the text. A term matches when
// it appears as a case-insensitive substring anywhere in the text; there is
// no tokenization, so "java" also matches inside "javascript". That is the
// established screening behaviour and is kept on purpose. Returned slices
// preserve the ordering of the criteria lists, not order of appearance.
func Match(text string, c Criteria) (keywords, skills, education []string) {
	lower := strings.ToLower(text)
	return matchTerms(lower, c.Keywords),
		matchTerms(lower, c.Skills),
		matchTerms(lower, c.EducationTerms)
}

func matchTerms(lower string, terms []string) []string {
	var found []string
	for _, term := range terms {
		if strings.Contains(lower, term) {
			found = append(found, term)
		}
	}
	return found
}
