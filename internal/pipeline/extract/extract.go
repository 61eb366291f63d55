// Package extract pulls structured clinical records out of labeled segments:
// symptoms with negation/location/duration context from patient speech,
// diagnosis and advice statements from doctor speech. All captured text is
// verbatim or a canonical lexicon value, never paraphrased.
package extract

import (
	"strings"
	"unicode/utf8"

	"opd-extraction-service/internal/lexicon"
	"opd-extraction-service/internal/models"
)

// DefaultNegationWindow is the rune window searched before and after a
// symptom surface form for a negation marker.
const DefaultNegationWindow = 15

// Config holds the extractor's tunable policy.
type Config struct {
	// NegationWindow is the rune distance around a symptom match within
	// which a negation marker negates it. Zero means DefaultNegationWindow.
	NegationWindow int
}

// Extractor matches one lexicon snapshot. Stateless per segment and safe
// for concurrent use; cross-segment context (pending durations, the last
// positive symptom) belongs to the report aggregator.
type Extractor struct {
	lex      *lexicon.Lexicon
	window   int
	duration *durationMatcher
}

// New builds an Extractor over lex.
func New(lex *lexicon.Lexicon, cfg Config) *Extractor {
	if cfg.NegationWindow <= 0 {
		cfg.NegationWindow = DefaultNegationWindow
	}
	return &Extractor{
		lex:      lex,
		window:   cfg.NegationWindow,
		duration: newDurationMatcher(lex),
	}
}

// PatientFindings is the partial entity set of one patient segment.
// StandaloneDuration/StandaloneLocation are set when the segment carried a
// duration or location phrase but no symptom; the aggregator attaches them
// to a neighbouring symptom.
type PatientFindings struct {
	Symptoms           []models.SymptomRecord
	Negatives          []string
	Medications        []models.MedicationRecord
	StandaloneDuration *Duration
	StandaloneLocation string
}

// Duration is a verbatim duration phrase with its resolved unit, when any.
type Duration struct {
	Phrase string
	Unit   string
}

// ExtractPatient scans one patient-attributed segment.
func (e *Extractor) ExtractPatient(segment string) PatientFindings {
	var f PatientFindings

	dur := e.duration.find(segment)
	location := e.findLocation(segment)

	for _, entry := range e.lex.Symptoms() {
		surface, idx := longestMatch(segment, entry.Variants)
		if idx < 0 {
			continue
		}
		if e.negatedAround(segment, surface, idx) {
			f.Negatives = append(f.Negatives, entry.Canonical)
			continue
		}
		rec := models.SymptomRecord{
			Name:     entry.Canonical,
			Surface:  surface,
			Location: location,
		}
		if dur != nil {
			rec.Duration = dur.Phrase
			rec.DurationUnit = dur.Unit
		}
		f.Symptoms = append(f.Symptoms, rec)
	}

	f.Medications = e.findMedications(segment)

	if len(f.Symptoms) == 0 && len(f.Negatives) == 0 {
		// "मेरी उम्र 30 साल" is an age statement, not a symptom duration
		if !isAgeContext(segment) {
			f.StandaloneDuration = dur
		}
		f.StandaloneLocation = location
	}
	return f
}

func isAgeContext(segment string) bool {
	return strings.Contains(segment, "उम्र") || strings.Contains(segment, "age")
}

// DoctorFindings is the partial entity set of one doctor segment. A segment
// may be both a diagnosis and advice; entity loss harms documentation more
// than an extra note line, so ambiguity keeps both.
type DoctorFindings struct {
	Diagnoses   []string
	Advice      []string
	Medications []models.MedicationRecord
}

// ExtractDoctor classifies one doctor-attributed segment. A segment matching
// neither pattern is discarded, which is not an error.
func (e *Extractor) ExtractDoctor(segment string) DoctorFindings {
	var f DoctorFindings
	if containsDiagnosisSignal(segment) {
		f.Diagnoses = append(f.Diagnoses, segment)
	}
	if containsAny(segment, adviceCues) {
		f.Advice = append(f.Advice, segment)
	}
	// doctors routinely mention the patient's current medication
	f.Medications = e.findMedications(segment)
	return f
}

func (e *Extractor) findMedications(segment string) []models.MedicationRecord {
	var meds []models.MedicationRecord
	for _, entry := range e.lex.Medications() {
		surface, idx := longestMatch(segment, entry.Variants)
		if idx < 0 {
			continue
		}
		meds = append(meds, models.MedicationRecord{Name: entry.Canonical, Surface: surface})
	}
	return meds
}

func (e *Extractor) findLocation(segment string) string {
	for _, entry := range e.lex.Locations() {
		if _, idx := longestMatch(segment, entry.Variants); idx >= 0 {
			return entry.Canonical
		}
	}
	return ""
}

// negatedAround reports whether a negation marker occurs within the rune
// window immediately before or after the matched surface form.
func (e *Extractor) negatedAround(segment, surface string, idx int) bool {
	before := lastRunes(segment[:idx], e.window)
	after := firstRunes(segment[idx+len(surface):], e.window)
	for _, neg := range e.lex.Negations() {
		if strings.Contains(before, neg) || strings.Contains(after, neg) {
			return true
		}
	}
	return false
}

// longestMatch returns the longest variant contained in segment and its byte
// offset, or ("", -1).
func longestMatch(segment string, variants []string) (string, int) {
	best, bestIdx := "", -1
	for _, v := range variants {
		idx := strings.Index(segment, v)
		if idx < 0 {
			continue
		}
		if utf8.RuneCountInString(v) > utf8.RuneCountInString(best) {
			best, bestIdx = v, idx
		}
	}
	return best, bestIdx
}

func lastRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		runes = runes[len(runes)-n:]
	}
	return string(runes)
}

func firstRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		runes = runes[:n]
	}
	return string(runes)
}

func containsAny(text string, cues []string) bool {
	for _, cue := range cues {
		if strings.Contains(text, cue) {
			return true
		}
	}
	return false
}
