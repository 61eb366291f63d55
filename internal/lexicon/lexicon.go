// Package lexicon provides the clinical vocabulary: canonical terms, their
// spoken surface variants (misspellings, Hinglish code-mixing) and the filler
// vocabulary. A Lexicon is immutable after construction and is shared
// read-only across all consultation sessions.
package lexicon

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Category classifies a lexicon entry.
type Category string

const (
	CategorySymptom      Category = "symptom"
	CategoryMedication   Category = "medication"
	CategoryFiller       Category = "filler"
	CategoryNegation     Category = "negation-marker"
	CategoryLocation     Category = "location-marker"
	CategoryDurationUnit Category = "duration-unit"
)

// IsValid reports whether c is a recognised category.
func (c Category) IsValid() bool {
	switch c {
	case CategorySymptom, CategoryMedication, CategoryFiller,
		CategoryNegation, CategoryLocation, CategoryDurationUnit:
		return true
	}
	return false
}

// Entry maps one canonical clinical term to its surface variants.
type Entry struct {
	Canonical string   `yaml:"canonical"`
	Variants  []string `yaml:"variants"`
	Category  Category `yaml:"category"`
}

// Pair is an ordered (variant, canonical) substitution used by the normalizer.
type Pair struct {
	Variant   string
	Canonical string
}

var errEmptyCanonical = errors.New("lexicon: entry with empty canonical term")

// Lexicon is the immutable, indexed vocabulary.
type Lexicon struct {
	entries    []Entry
	byCategory map[Category][]Entry

	// canonicalization pairs for symptom/medication/location entries,
	// longest variant first so multi-word surface forms are never
	// shadowed by a shorter substring
	pairs []Pair

	fillerPhrases []string            // longest first
	fillerTokens  map[string]struct{} // single-word fillers

	negations []string

	latinVariants  []string
	latinCanonical map[string]string
}

// New builds a Lexicon from entries. Variants are lowercased; each canonical
// term is implicitly a variant of itself.
func New(entries []Entry) (*Lexicon, error) {
	l := &Lexicon{
		byCategory:     make(map[Category][]Entry),
		fillerTokens:   make(map[string]struct{}),
		latinCanonical: make(map[string]string),
	}

	for i, e := range entries {
		canonical := strings.ToLower(strings.TrimSpace(e.Canonical))
		if canonical == "" {
			return nil, fmt.Errorf("%w (entry %d)", errEmptyCanonical, i)
		}
		if !e.Category.IsValid() {
			return nil, fmt.Errorf("lexicon: entry %q has unknown category %q", canonical, e.Category)
		}

		variants := make([]string, 0, len(e.Variants)+1)
		seen := make(map[string]struct{}, len(e.Variants)+1)
		for _, v := range append([]string{canonical}, e.Variants...) {
			v = strings.ToLower(strings.TrimSpace(v))
			if v == "" {
				continue
			}
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			variants = append(variants, v)
		}

		entry := Entry{Canonical: canonical, Variants: variants, Category: e.Category}
		l.entries = append(l.entries, entry)
		l.byCategory[e.Category] = append(l.byCategory[e.Category], entry)

		switch e.Category {
		case CategorySymptom, CategoryMedication, CategoryLocation:
			for _, v := range variants {
				l.pairs = append(l.pairs, Pair{Variant: v, Canonical: canonical})
				if isLatin(v) && !strings.ContainsRune(v, ' ') {
					l.latinVariants = append(l.latinVariants, v)
					l.latinCanonical[v] = canonical
				}
			}
		case CategoryFiller:
			for _, v := range variants {
				l.fillerPhrases = append(l.fillerPhrases, v)
				if !strings.ContainsRune(v, ' ') {
					l.fillerTokens[v] = struct{}{}
				}
			}
		case CategoryNegation:
			l.negations = append(l.negations, variants...)
		}
	}

	sortLongestFirst(l.pairs)
	sort.SliceStable(l.fillerPhrases, func(i, j int) bool {
		return utf8.RuneCountInString(l.fillerPhrases[i]) > utf8.RuneCountInString(l.fillerPhrases[j])
	})

	return l, nil
}

func sortLongestFirst(pairs []Pair) {
	sort.SliceStable(pairs, func(i, j int) bool {
		return utf8.RuneCountInString(pairs[i].Variant) > utf8.RuneCountInString(pairs[j].Variant)
	})
}

func isLatin(s string) bool {
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsLetter(r) {
			return false
		}
	}
	return s != ""
}

// Entries returns all entries in insertion order.
func (l *Lexicon) Entries() []Entry { return l.entries }

// Category returns all entries of one category in insertion order.
func (l *Lexicon) Category(c Category) []Entry { return l.byCategory[c] }

// Symptoms returns the symptom entries.
func (l *Lexicon) Symptoms() []Entry { return l.byCategory[CategorySymptom] }

// Medications returns the medication entries.
func (l *Lexicon) Medications() []Entry { return l.byCategory[CategoryMedication] }

// Locations returns the location-marker entries.
func (l *Lexicon) Locations() []Entry { return l.byCategory[CategoryLocation] }

// DurationUnits returns the duration-unit entries.
func (l *Lexicon) DurationUnits() []Entry { return l.byCategory[CategoryDurationUnit] }

// Negations returns every negation-marker surface form.
func (l *Lexicon) Negations() []string { return l.negations }

// CanonicalPairs returns the (variant, canonical) substitutions for
// symptom, medication and location entries, longest variant first.
func (l *Lexicon) CanonicalPairs() []Pair { return l.pairs }

// FillerPhrases returns every filler surface form, longest first.
func (l *Lexicon) FillerPhrases() []string { return l.fillerPhrases }

// IsFillerToken reports whether tok is a single-word filler.
func (l *Lexicon) IsFillerToken(tok string) bool {
	_, ok := l.fillerTokens[tok]
	return ok
}

// LatinVariants returns the single-word Latin-script variants, for phonetic
// matching of Hinglish tokens.
func (l *Lexicon) LatinVariants() []string { return l.latinVariants }

// CanonicalForLatin returns the canonical term for a Latin-script variant.
func (l *Lexicon) CanonicalForLatin(variant string) (string, bool) {
	c, ok := l.latinCanonical[variant]
	return c, ok
}
