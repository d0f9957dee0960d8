package heuristics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_LoadsEmbeddedTables(t *testing.T) {
	tbl := Default()
	require.NotNil(t, tbl)
	assert.Positive(t, tbl.Version)
	assert.Len(t, tbl.Pedigree, 5)
	assert.Len(t, tbl.Origins, 4)
	assert.NotEmpty(t, tbl.Sectors)
	assert.Equal(t, []string{"YC", "500 Global", "Plug and Play"}, []string{
		tbl.Incubators[0].Name, tbl.Incubators[1].Name, tbl.Incubators[2].Name,
	})
	assert.True(t, tbl.IsStopword("the"))
	assert.False(t, tbl.IsStopword("payments"))
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"invalid yaml", "version: [1"},
		{"missing version", "stopwords: [a]"},
		{"bad pattern", "version: 1\nincubators:\n  - name: X\n    patterns: ['(']"},
		{"unnamed incubator", "version: 1\nincubators:\n  - patterns: ['x']"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestContainsKeyword(t *testing.T) {
	tests := []struct {
		text     string
		keyword  string
		expected bool
	}{
		{"YC W26 founder", "yc", true},
		{"(YC) alum", "yc", true},
		{"built a bicycle app", "yc", false},
		{"ex-Google engineer", "google", true},
		{"googled everything", "google", false},
		{"Previously founded Acme", "previously founded", true},
		{"co-founded two startups", "co-founded", true},
		{"ex-stripe", "ex-", true},
		{"ArXiv PhD.", "phd", true},
		{"", "phd", false},
		{"anything", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.text+"/"+tt.keyword, func(t *testing.T) {
			assert.Equal(t, tt.expected, ContainsKeyword(tt.text, tt.keyword))
		})
	}
}

func TestCountHitsAndAnyHit(t *testing.T) {
	kws := []string{"revenue", "arr", "customers"}
	assert.Equal(t, 2, CountHits("$1M ARR and 40 paying customers", kws))
	assert.Equal(t, 0, CountHits("carrot farming", kws))
	assert.True(t, AnyHit("growing revenue", kws))
	assert.False(t, AnyHit("", kws))
}

func TestStageScore(t *testing.T) {
	tbl := Default()
	assert.Equal(t, 90.0, tbl.StageScore("Pre-Seed", 50))
	assert.Equal(t, 25.0, tbl.StageScore(" series a ", 50))
	assert.Equal(t, 50.0, tbl.StageScore("unknown", 50))
}

func TestDetectIncubator(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
		found    bool
	}{
		{"batch code", "Building agents. YC W26.", "YC W26", true},
		{"lowercase code", "yc s25 company", "YC S25", true},
		{"y combinator code", "Y Combinator S24 alum", "YC S24", true},
		{"season and year", "YC Winter 2026 batch", "YC W26", true},
		{"fall season", "Y Combinator Fall 2024", "YC F24", true},
		{"parenthesised", "Acme (YC W25)", "YC W25", true},
		{"backed without batch", "We are YC backed", "YC", true},
		{"500 global", "Part of 500 Startups", "500 Global", true},
		{"500 batch", "500 Batch 30", "500 Global", true},
		{"plug and play", "Plug & Play accelerator", "Plug and Play", true},
		{"pnp", "PnP Tech cohort", "Plug and Play", true},
		{"yc wins over 500", "500 Global and YC W23", "YC W23", true},
		{"none", "bicycle repair", "", false},
		{"empty", "   ", "", false},
	}
	tbl := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inc, ok := tbl.DetectIncubator(tt.text)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, inc.String())
		})
	}
}

func TestDetectIncubatorFromLabels(t *testing.T) {
	tbl := Default()

	inc, ok := tbl.DetectIncubatorFromLabels([]string{"Shipped v2", "Launch YC: Acme - 120 pts"})
	require.True(t, ok)
	assert.Equal(t, Incubator{Name: "YC"}, inc)

	inc, ok = tbl.DetectIncubatorFromLabels([]string{"Demo day recap (YC S25)"})
	require.True(t, ok)
	assert.Equal(t, "YC S25", inc.String())

	_, ok = tbl.DetectIncubatorFromLabels([]string{"Show HN: a tool"})
	assert.False(t, ok)
}
