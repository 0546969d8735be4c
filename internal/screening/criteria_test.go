package screening

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCriteria(t *testing.T) {
	c := ParseCriteria(" Python, Go ,", "Flask,  ,Docker", "2", "Bachelor, MSc")

	assert.Equal(t, []string{"python", "go"}, c.Keywords)
	assert.Equal(t, []string{"flask", "docker"}, c.Skills)
	assert.Equal(t, 2.0, c.MinYears)
	assert.Equal(t, []string{"bachelor", "msc"}, c.EducationTerms)
}

func TestParseCriteria_Empty(t *testing.T) {
	c := ParseCriteria("", "", "", "")

	assert.Empty(t, c.Keywords)
	assert.Empty(t, c.Skills)
	assert.Zero(t, c.MinYears)
	assert.Empty(t, c.EducationTerms)
}

func TestParseCriteria_MinYears(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{"integer", "3", 3},
		{"decimal", "1.5", 1.5},
		{"padded", " 4 ", 4},
		{"non-numeric defaults to zero", "three", 0},
		{"empty defaults to zero", "", 0},
		{"negative defaults to zero", "-2", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ParseCriteria("", "", tt.raw, "")
			assert.Equal(t, tt.want, c.MinYears)
		})
	}
}
