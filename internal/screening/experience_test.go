package screening

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseYears(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{
			name: "plain years",
			text: "5 years of experience building services",
			want: 5,
		},
		{
			name: "plus years",
			text: "3+ years with Go",
			want: 3,
		},
		{
			name: "yrs abbreviation",
			text: "7 yrs in operations",
			want: 7,
		},
		{
			name: "decimal years",
			text: "2.5 years of consulting",
			want: 2.5,
		},
		{
			name: "hyphenated fallback",
			text: "completed a 2-year engagement",
			want: 2,
		},
		{
			name: "maximum span wins",
			text: "5 years at Acme, before that 3 years at Initech",
			want: 5,
		},
		{
			name: "hyphen family ignored when primary matches",
			text: "4 years total, after a 9-year stint elsewhere",
			want: 4,
		},
		{
			name: "case insensitive",
			text: "10 YEARS LEADING TEAMS",
			want: 10,
		},
		{
			name: "no duration phrase",
			text: "experienced engineer with strong fundamentals",
			want: 0,
		},
		{
			name: "empty text",
			text: "",
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseYears(tt.text))
		})
	}
}
