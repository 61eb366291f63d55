// Package normalize rewrites raw utterance text into the canonical form the
// rest of the pipeline matches against: filler removal, longest-match-first
// canonicalization of lexicon variants, and a phonetic fallback for
// Latin-script (Hinglish) tokens.
package normalize

import (
	"strings"

	"opd-extraction-service/internal/lexicon"
)

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithPhonetic toggles the phonetic fallback for Latin-script tokens.
// Enabled by default.
func WithPhonetic(enabled bool) Option {
	return func(n *Normalizer) { n.phonetic = enabled }
}

// Normalizer is stateless given its lexicon and safe for concurrent use.
type Normalizer struct {
	lex      *lexicon.Lexicon
	phonetic bool
	matcher  *phoneticMatcher
}

// New builds a Normalizer over lex.
func New(lex *lexicon.Lexicon, opts ...Option) *Normalizer {
	n := &Normalizer{lex: lex, phonetic: true}
	for _, o := range opts {
		o(n)
	}
	if n.phonetic {
		n.matcher = newPhoneticMatcher(lex)
	}
	return n
}

// Normalize rewrites raw text into canonical form. It is idempotent:
// Normalize(Normalize(x)) == Normalize(x). Unknown tokens pass through
// unchanged.
func (n *Normalizer) Normalize(raw string) string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.ToLower(strings.TrimSpace(line))
		if line == "" {
			continue
		}
		if n.isFillerLine(line) {
			continue
		}
		line = n.dropFillerTokens(line)
		if line == "" {
			continue
		}
		if n.matcher != nil {
			line = n.matcher.correctLine(line)
		}
		line = n.canonicalize(line)
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// isFillerLine reports whether line carries no clinical content: it is a
// known filler phrase, repetitions of one, or a concatenation of several.
// Lines mixing filler with clinical content are kept.
func (n *Normalizer) isFillerLine(line string) bool {
	for _, filler := range n.lex.FillerPhrases() {
		if line == filler {
			return true
		}
		// repetitions of one filler, e.g. "हेलो हेलो हेलो"
		if strings.TrimSpace(strings.ReplaceAll(line, filler, "")) == "" {
			return true
		}
	}

	// combinations of several fillers, e.g. "हेलो आवाज आ रही है"
	remaining := line
	for _, filler := range n.lex.FillerPhrases() {
		remaining = strings.ReplaceAll(remaining, filler, "")
	}
	remaining = strings.Trim(strings.TrimSpace(remaining), ",.!? ")
	return remaining == ""
}

// dropFillerTokens removes single-word fillers from a mixed line,
// token-boundary aware so filler words never damage longer words.
func (n *Normalizer) dropFillerTokens(line string) string {
	fields := strings.Fields(line)
	kept := fields[:0]
	for _, f := range fields {
		if n.lex.IsFillerToken(f) {
			continue
		}
		kept = append(kept, f)
	}
	return strings.Join(kept, " ")
}

// canonicalize collapses every known surface variant to its canonical term,
// longest variant first so a multi-word form is never shadowed by a shorter
// substring match.
func (n *Normalizer) canonicalize(line string) string {
	for _, p := range n.lex.CanonicalPairs() {
		if p.Variant == p.Canonical {
			continue
		}
		line = strings.ReplaceAll(line, p.Variant, p.Canonical)
	}
	return strings.Join(strings.Fields(line), " ")
}
