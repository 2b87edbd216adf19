package parsing

import (
	"testing"

	"github.com/jonathan/resume-deck/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExperience_TwoEntries(t *testing.T) {
	lines := []string{
		"Senior Engineer, Acme Corp (2020 – Present)",
		"• Led the platform team",
		"• Cut deploy time in half",
		"Engineer, Beta Inc (2017 – 2020)",
		"Built the billing service",
	}

	entries := ParseExperience(lines)

	require.Len(t, entries, 2)
	assert.Equal(t, types.ExperienceEntry{
		Position:    "Senior Engineer",
		Company:     "Acme Corp",
		Dates:       "2020 – Present",
		Description: "Led the platform team\nCut deploy time in half",
	}, entries[0])
	assert.Equal(t, types.ExperienceEntry{
		Position:    "Engineer",
		Company:     "Beta Inc",
		Dates:       "2017 – 2020",
		Description: "Built the billing service",
	}, entries[1])
}

func TestParseExperience_HeaderVariants(t *testing.T) {
	tests := []struct {
		name string
		line string
		want types.ExperienceEntry
	}{
		{
			name: "title company dates",
			line: "Data Analyst, Globex, Inc. (Jan 2015 - Dec 2016)",
			want: types.ExperienceEntry{Position: "Data Analyst", Company: "Globex, Inc.", Dates: "Jan 2015 - Dec 2016"},
		},
		{
			name: "at separator",
			line: "Engineer at Initech (2012–2014)",
			want: types.ExperienceEntry{Position: "Engineer", Company: "Initech", Dates: "2012–2014"},
		},
		{
			name: "at separator is case insensitive",
			line: "Intern AT Hooli (2011)",
			want: types.ExperienceEntry{Position: "Intern", Company: "Hooli", Dates: "2011"},
		},
		{
			name: "trailing year segment without parentheses",
			line: "Consultant, Umbrella Corp, 2009 – 2011",
			want: types.ExperienceEntry{Position: "Consultant", Company: "Umbrella Corp", Dates: "2009 – 2011"},
		},
		{
			name: "position only",
			line: "Freelance Developer (2008 – Present)",
			want: types.ExperienceEntry{Position: "Freelance Developer", Dates: "2008 – Present"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := ParseExperience([]string{tt.line})
			require.Len(t, entries, 1)
			assert.Equal(t, tt.want, entries[0])
		})
	}
}

func TestParseExperience_BulletLinesAreNeverHeaders(t *testing.T) {
	lines := []string{
		"Engineer, Acme (2018 – 2020)",
		"- Migrated services to Go (2019)",
		"• Presented at GopherCon, 2019",
	}

	entries := ParseExperience(lines)

	require.Len(t, entries, 1)
	assert.Equal(t, "Migrated services to Go (2019)\nPresented at GopherCon, 2019", entries[0].Description)
}

func TestParseExperience_TextBeforeFirstHeaderIsDropped(t *testing.T) {
	lines := []string{
		"Ten years across startups",
		"Engineer, Acme (2018 – 2020)",
		"Shipped things",
	}

	entries := ParseExperience(lines)

	require.Len(t, entries, 1)
	assert.Equal(t, "Shipped things", entries[0].Description)
}

func TestParseExperience_EntryWithoutPositionDropped(t *testing.T) {
	lines := []string{
		"(2015 – 2016)",
		"Orphan description",
		"Engineer, Acme (2018 – 2020)",
	}

	entries := ParseExperience(lines)

	require.Len(t, entries, 1)
	assert.Equal(t, "Engineer", entries[0].Position)
	assert.Empty(t, entries[0].Description)
}

func TestParseExperience_ParenthesesWithoutDatesStartEntry(t *testing.T) {
	lines := []string{
		"Engineer, Acme (2018 – 2020)",
		"Built things",
		"Contractor, Globex (Remote)",
		"Did other things",
	}

	entries := ParseExperience(lines)

	require.Len(t, entries, 2)
	assert.Equal(t, "Built things", entries[0].Description)
	assert.Equal(t, types.ExperienceEntry{
		Position:    "Contractor",
		Company:     "Globex (Remote)",
		Description: "Did other things",
	}, entries[1])
}

func TestParseExperience_BulletedParenthesesStayDescription(t *testing.T) {
	lines := []string{
		"Engineer, Acme (2018 – 2020)",
		"• Rewrote the scheduler (in Go)",
	}

	entries := ParseExperience(lines)

	require.Len(t, entries, 1)
	assert.Equal(t, "Rewrote the scheduler (in Go)", entries[0].Description)
}

func TestParseExperience_Empty(t *testing.T) {
	entries := ParseExperience(nil)

	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestExperienceParser_States(t *testing.T) {
	p := &experienceParser{}
	assert.Equal(t, awaitingHeader, p.state)

	p.feed("Engineer, Acme (2018 – 2020)")
	assert.Equal(t, accumulatingDescription, p.state)

	p.feed("Did things")
	assert.Equal(t, accumulatingDescription, p.state)

	p.flush()
	assert.Equal(t, awaitingHeader, p.state)
	require.Len(t, p.entries, 1)
	assert.Equal(t, "Did things", p.entries[0].Description)
}
