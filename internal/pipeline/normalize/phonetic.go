package normalize

import (
	"strings"
	"unicode"

	"github.com/antzucaro/matchr"

	"opd-extraction-service/internal/lexicon"
)

const phoneticThreshold = 0.85

// phoneticMatcher corrects misheard Latin-script (Hinglish) tokens against
// the lexicon's Latin variants: Double Metaphone codes filter candidates,
// Jaro-Winkler similarity ranks them.
type phoneticMatcher struct {
	lex      *lexicon.Lexicon
	codes    map[string][2]string // variant -> metaphone codes
	variants []string
	exact    map[string]struct{}
}

func newPhoneticMatcher(lex *lexicon.Lexicon) *phoneticMatcher {
	m := &phoneticMatcher{
		lex:   lex,
		codes: make(map[string][2]string),
		exact: make(map[string]struct{}),
	}
	for _, v := range lex.LatinVariants() {
		primary, secondary := matchr.DoubleMetaphone(v)
		m.codes[v] = [2]string{primary, secondary}
		m.variants = append(m.variants, v)
		m.exact[v] = struct{}{}
	}
	return m
}

func (m *phoneticMatcher) correctLine(line string) string {
	if len(m.variants) == 0 {
		return line
	}
	fields := strings.Fields(line)
	changed := false
	for i, tok := range fields {
		if !isASCIIWord(tok) {
			continue
		}
		if _, known := m.exact[tok]; known {
			continue
		}
		if canonical, ok := m.match(tok); ok {
			fields[i] = canonical
			changed = true
		}
	}
	if !changed {
		return line
	}
	return strings.Join(fields, " ")
}

// match returns the canonical term for the best phonetic candidate of tok,
// provided its Jaro-Winkler score clears the threshold.
func (m *phoneticMatcher) match(tok string) (string, bool) {
	tokPrimary, tokSecondary := matchr.DoubleMetaphone(tok)

	best := ""
	bestScore := 0.0
	for _, v := range m.variants {
		codes := m.codes[v]
		if !codesOverlap(tokPrimary, tokSecondary, codes[0], codes[1]) {
			continue
		}
		score := matchr.JaroWinkler(tok, v, true)
		if score > bestScore {
			best, bestScore = v, score
		}
	}
	if best == "" || bestScore < phoneticThreshold {
		return "", false
	}
	canonical, ok := m.lex.CanonicalForLatin(best)
	return canonical, ok
}

func codesOverlap(p1, s1, p2, s2 string) bool {
	if p1 == "" && s1 == "" {
		return false
	}
	return p1 == p2 || (s1 != "" && s1 == s2) ||
		(s1 != "" && s1 == p2) || (s2 != "" && p1 == s2)
}

func isASCIIWord(s string) bool {
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsLetter(r) {
			return false
		}
	}
	return s != ""
}
