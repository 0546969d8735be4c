package screening

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	c := ParseCriteria("python,go", "flask,django", "0", "bachelor")

	keywords, skills, education := Match("Built Python services with Flask. Bachelor's degree.", c)

	assert.Equal(t, []string{"python"}, keywords)
	assert.Equal(t, []string{"flask"}, skills)
	assert.Equal(t, []string{"bachelor"}, education)
}

func TestMatch_SubstringSemantics(t *testing.T) {
	// "java" matching inside "javascript" is the established screening
	// behaviour and must not be "fixed" to word-boundary matching.
	c := ParseCriteria("java", "", "0", "")

	keywords, _, _ := Match("Senior JavaScript developer", c)

	assert.Equal(t, []string{"java"}, keywords)
}

func TestMatch_PreservesCriteriaOrder(t *testing.T) {
	c := ParseCriteria("go,python,rust", "", "0", "")

	keywords, _, _ := Match("rust first, then python, finally go", c)

	assert.Equal(t, []string{"go", "python", "rust"}, keywords)
}

func TestMatch_EmptyText(t *testing.T) {
	c := ParseCriteria("python", "flask", "0", "bachelor")

	keywords, skills, education := Match("", c)

	assert.Empty(t, keywords)
	assert.Empty(t, skills)
	assert.Empty(t, education)
}

func TestMatch_NoEducationTerms(t *testing.T) {
	c := ParseCriteria("python", "", "0", "")

	_, _, education := Match("Bachelor of Science in Python wrangling", c)

	assert.Empty(t, education)
}
