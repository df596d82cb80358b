package soc

import (
	"regexp"
	"strings"
)

// titleStopwords are filler tokens common in SOC residual-category titles
// ("Managers, All Other", "Teachers and Instructors, All Other, Except...")
// that carry no search value.
var titleStopwords = map[string]bool{
	"all":    true,
	"other":  true,
	"misc":   true,
	"except": true,
}

var titleSanitizer = regexp.MustCompile(`[^a-z0-9 \-]`)

// titleTokens derives searchable keyword terms from an occupation title:
// lowercase, strip everything but letters, digits, spaces and hyphens, then
// keep tokens longer than three characters that are not stopwords.
func titleTokens(title string) []string {
	clean := titleSanitizer.ReplaceAllString(strings.ToLower(title), " ")

	var tokens []string
	for _, word := range strings.Fields(clean) {
		if len(word) <= 3 || titleStopwords[word] {
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens
}

// dedupe removes duplicate strings preserving first-seen order. Returns nil
// for an empty input so omitempty JSON fields stay absent.
func dedupe(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
