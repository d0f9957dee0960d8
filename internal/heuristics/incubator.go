package heuristics

import (
	"regexp"
	"strings"
)

var (
	batchCodePattern  = regexp.MustCompile(`[WSws]\d{2}`)
	seasonYearPattern = regexp.MustCompile(`(?i)(Winter|Summer|Fall|Spring)\s*(\d{4})`)
	seasonCodes       = map[string]string{"winter": "W", "summer": "S", "fall": "F", "spring": "S"}
)

const ycName = "YC"

// Incubator is a detected accelerator affiliation
type Incubator struct {
	Name  string
	Batch string
}

// String formats the affiliation as "YC W26", or just the name when no batch is known
func (i Incubator) String() string {
	if i.Name == "" {
		return ""
	}
	if i.Batch == "" {
		return i.Name
	}
	return i.Name + " " + i.Batch
}

// DetectIncubator finds the first incubator mentioned in text, in table order
func (t *Tables) DetectIncubator(text string) (Incubator, bool) {
	if strings.TrimSpace(text) == "" {
		return Incubator{}, false
	}

	for _, inc := range t.Incubators {
		for _, re := range inc.compiled {
			matched := re.FindString(text)
			if matched == "" {
				continue
			}
			result := Incubator{Name: inc.Name}
			if inc.Name == ycName {
				result.Batch = ycBatch(matched)
			}
			return result, true
		}
	}
	return Incubator{}, false
}

// DetectIncubatorFromLabels scans signal labels; a "Launch YC" post marks a YC company without a batch
func (t *Tables) DetectIncubatorFromLabels(labels []string) (Incubator, bool) {
	for _, label := range labels {
		if strings.HasPrefix(strings.ToLower(label), "launch yc") {
			return Incubator{Name: ycName}, true
		}
		if inc, ok := t.DetectIncubator(label); ok {
			return inc, true
		}
	}
	return Incubator{}, false
}

func ycBatch(matched string) string {
	if code := batchCodePattern.FindString(matched); code != "" {
		return strings.ToUpper(code)
	}
	m := seasonYearPattern.FindStringSubmatch(matched)
	if m == nil {
		return ""
	}
	season, ok := seasonCodes[strings.ToLower(m[1])]
	if !ok {
		return ""
	}
	return season + m[2][len(m[2])-2:]
}
