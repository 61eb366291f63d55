package extract

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"opd-extraction-service/internal/lexicon"
)

// spokenCounts are the number words that plausibly quantify a duration in
// spoken Hindi. Larger counts arrive as digits.
var spokenCounts = []string{
	"एक", "दो", "तीन", "चार", "पांच", "पाँच", "छह", "सात", "आठ", "नौ", "दस",
	"पंद्रह", "बीस",
}

// relativeDays are duration phrases with no explicit unit.
var relativeDays = []string{"आज से", "कल से", "परसों से"}

// durationMatcher recognises "<count> <unit> [से]" phrases plus the
// relative-day forms, built from the lexicon's duration-unit variants.
type durationMatcher struct {
	re    *regexp.Regexp
	units []lexicon.Entry // variant containment resolves the canonical unit
}

func newDurationMatcher(lex *lexicon.Lexicon) *durationMatcher {
	units := lex.DurationUnits()

	var unitAlts []string
	for _, entry := range units {
		for _, v := range entry.Variants {
			unitAlts = append(unitAlts, regexp.QuoteMeta(v))
		}
	}
	// longest alternative first, so दिनों wins over दिन
	sort.SliceStable(unitAlts, func(i, j int) bool {
		return utf8.RuneCountInString(unitAlts[i]) > utf8.RuneCountInString(unitAlts[j])
	})

	var countAlts []string
	countAlts = append(countAlts, `[0-9०-९]+`)
	for _, w := range spokenCounts {
		countAlts = append(countAlts, regexp.QuoteMeta(w))
	}

	var relAlts []string
	for _, r := range relativeDays {
		relAlts = append(relAlts, regexp.QuoteMeta(r))
	}

	pattern := `(?:(?:` + strings.Join(countAlts, "|") + `)\s*(?:` +
		strings.Join(unitAlts, "|") + `)(?:\s*से)?)|(?:` +
		strings.Join(relAlts, "|") + `)`

	return &durationMatcher{
		re:    regexp.MustCompile(pattern),
		units: units,
	}
}

// find returns the first duration phrase in segment, verbatim, with the
// canonical unit when one of the unit variants resolves it. Relative-day
// phrases resolve to "day".
func (m *durationMatcher) find(segment string) *Duration {
	phrase := m.re.FindString(segment)
	if phrase == "" {
		return nil
	}
	d := &Duration{Phrase: phrase}
	for _, entry := range m.units {
		if _, idx := longestMatch(phrase, entry.Variants); idx >= 0 {
			d.Unit = entry.Canonical
			return d
		}
	}
	for _, rel := range relativeDays {
		if phrase == rel {
			d.Unit = "day"
			return d
		}
	}
	// unresolved unit stays absent rather than guessed
	return d
}
