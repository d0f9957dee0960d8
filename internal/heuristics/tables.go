// Package heuristics holds the keyword tables used to read founder text:
// pedigree groups, funding and traction vocabularies, origin categories,
// sector reference phrases and incubator batch patterns.
package heuristics

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed keywords.yaml
var defaultTables []byte

// KeywordGroup awards Points once when any of Keywords appears in the text
type KeywordGroup struct {
	Category string   `yaml:"category"`
	Label    string   `yaml:"label"`
	Points   int      `yaml:"points"`
	Keywords []string `yaml:"keywords"`
}

// Tenure awards Points to companies founded at least MinYears ago
type Tenure struct {
	MinYears int `yaml:"min_years"`
	Points   int `yaml:"points"`
}

// Sector is a named reference phrase used for nearest-neighbour classification
type Sector struct {
	Name      string `yaml:"name"`
	Reference string `yaml:"reference"`
}

// IncubatorPatterns lists the regular expressions that identify one incubator
type IncubatorPatterns struct {
	Name     string   `yaml:"name"`
	Patterns []string `yaml:"patterns"`

	compiled []*regexp.Regexp
}

// Tables is the parsed form of a keyword table document
type Tables struct {
	Version         int                 `yaml:"version"`
	Pedigree        []KeywordGroup      `yaml:"pedigree"`
	Tenure          Tenure              `yaml:"tenure"`
	Funding         []string            `yaml:"funding"`
	DomainExpertise []string            `yaml:"domain_expertise"`
	NarrowDomain    []string            `yaml:"narrow_domain"`
	Revenue         []string            `yaml:"revenue"`
	Stages          map[string]float64  `yaml:"stages"`
	Origins         []KeywordGroup      `yaml:"origins"`
	Stopwords       []string            `yaml:"stopwords"`
	Sectors         []Sector            `yaml:"sectors"`
	Incubators      []IncubatorPatterns `yaml:"incubators"`

	stopwords map[string]struct{}
}

// Load parses and validates a keyword table document
func Load(data []byte) (*Tables, error) {
	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse keyword tables: %w", err)
	}

	if t.Version <= 0 {
		return nil, fmt.Errorf("keyword tables must declare a positive version")
	}

	for i := range t.Incubators {
		inc := &t.Incubators[i]
		if inc.Name == "" {
			return nil, fmt.Errorf("incubator %d has no name", i)
		}
		for _, p := range inc.Patterns {
			re, err := regexp.Compile(p)
			if err != nil {
				return nil, fmt.Errorf("invalid pattern for incubator %s: %w", inc.Name, err)
			}
			inc.compiled = append(inc.compiled, re)
		}
	}

	t.stopwords = make(map[string]struct{}, len(t.Stopwords))
	for _, w := range t.Stopwords {
		t.stopwords[strings.ToLower(w)] = struct{}{}
	}

	normalized := make(map[string]float64, len(t.Stages))
	for stage, v := range t.Stages {
		normalized[strings.ToLower(stage)] = v
	}
	t.Stages = normalized

	return &t, nil
}

var (
	defaultOnce sync.Once
	defaultTbl  *Tables
)

// Default returns the tables compiled into the binary
func Default() *Tables {
	defaultOnce.Do(func() {
		t, err := Load(defaultTables)
		if err != nil {
			panic(fmt.Sprintf("embedded keyword tables are invalid: %v", err))
		}
		defaultTbl = t
	})
	return defaultTbl
}

// IsStopword reports whether the lower-cased token is a stopword
func (t *Tables) IsStopword(token string) bool {
	_, ok := t.stopwords[token]
	return ok
}

// StageScore maps a funding stage to a 0-100 availability value; unknown stages score fallback
func (t *Tables) StageScore(stage string, fallback float64) float64 {
	v, ok := t.Stages[strings.ToLower(strings.TrimSpace(stage))]
	if !ok {
		return fallback
	}
	return v
}
