// Package report orchestrates the extraction pipeline for one consultation
// session: normalize → segment → speaker attribution → entity extraction,
// accumulating into a single Report that Finalize freezes.
package report

import (
	"errors"
	"strings"
	"sync"

	"opd-extraction-service/internal/lexicon"
	"opd-extraction-service/internal/models"
	"opd-extraction-service/internal/pipeline/extract"
	"opd-extraction-service/internal/pipeline/normalize"
	"opd-extraction-service/internal/pipeline/segmenter"
	"opd-extraction-service/internal/pipeline/speaker"
)

// ErrSessionFinalized is returned when an utterance arrives after Finalize.
var ErrSessionFinalized = errors.New("report: session already finalized")

// Config holds the per-session pipeline policy.
type Config struct {
	DefaultSpeaker models.Speaker
	NegationWindow int
	SpeakerHistory int
	Phonetic       bool
}

// IngestResult is the labeled outcome of one ingested utterance.
type IngestResult struct {
	Segments []models.LabeledSegment
}

type symptomKey struct {
	name     string
	location string
}

// Aggregator owns all mutable state of one consultation session: the
// conversation state and the accumulating report. Utterances must be
// ingested in arrival order. Methods are serialized by an internal mutex,
// which does not relax the ordering requirement.
type Aggregator struct {
	mu sync.Mutex

	norm       *normalize.Normalizer
	classifier *speaker.Classifier
	extractor  *extract.Extractor
	state      *speaker.ConversationState

	symptoms    []*models.SymptomRecord
	symptomIdx  map[symptomKey]*models.SymptomRecord
	lastSymptom *models.SymptomRecord
	pending     *extract.Duration

	negatives    []string
	negativeSeen map[string]struct{}
	medications  []models.MedicationRecord
	medSeen      map[string]struct{}
	diagnoses    []string
	diagSeen     map[string]struct{}
	advice       []string
	adviceSeen   map[string]struct{}

	patientLines []string

	finalized bool
	frozen    *models.Report
}

// New builds an Aggregator over one lexicon snapshot.
func New(lex *lexicon.Lexicon, cfg Config) *Aggregator {
	return &Aggregator{
		norm:       normalize.New(lex, normalize.WithPhonetic(cfg.Phonetic)),
		classifier: speaker.NewClassifier(speaker.Config{DefaultSpeaker: cfg.DefaultSpeaker}),
		extractor:  extract.New(lex, extract.Config{NegationWindow: cfg.NegationWindow}),
		state:      speaker.NewState(cfg.SpeakerHistory),

		symptomIdx:   make(map[symptomKey]*models.SymptomRecord),
		negativeSeen: make(map[string]struct{}),
		medSeen:      make(map[string]struct{}),
		diagSeen:     make(map[string]struct{}),
		adviceSeen:   make(map[string]struct{}),
	}
}

// Turns returns how many segments this session has classified.
func (a *Aggregator) Turns() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state.Turns()
}

// Finalized reports whether the session's report has been frozen.
func (a *Aggregator) Finalized() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.finalized
}

// Ingest runs one utterance through the pipeline and accumulates its
// records. Empty or whitespace-only text is a no-op, not an error.
func (a *Aggregator) Ingest(u models.Utterance) (IngestResult, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.finalized {
		return IngestResult{}, ErrSessionFinalized
	}

	normalized := a.norm.Normalize(u.Text)
	if normalized == "" {
		return IngestResult{}, nil
	}

	var res IngestResult
	for i, seg := range segmenter.Split(normalized) {
		label := a.classifier.Classify(seg, u.SpeakerHint, a.state)
		res.Segments = append(res.Segments, models.LabeledSegment{
			Ordinal: i,
			Text:    seg,
			Speaker: label,
		})
		switch label {
		case models.SpeakerPatient:
			a.patientLines = append(a.patientLines, seg)
			a.mergePatient(a.extractor.ExtractPatient(seg))
		case models.SpeakerDoctor:
			a.mergeDoctor(a.extractor.ExtractDoctor(seg))
		}
	}
	return res, nil
}

func (a *Aggregator) mergePatient(f extract.PatientFindings) {
	for _, rec := range f.Symptoms {
		a.addSymptom(rec)
	}
	for _, name := range f.Negatives {
		if _, seen := a.negativeSeen[name]; seen {
			continue
		}
		a.negativeSeen[name] = struct{}{}
		a.negatives = append(a.negatives, name)
	}
	a.addMedications(f.Medications)

	// a clause like "3 दिन से" qualifies the symptom spoken just before
	// it; with no prior symptom it buffers for the next one
	if d := f.StandaloneDuration; d != nil {
		if a.lastSymptom != nil && a.lastSymptom.Duration == "" {
			a.lastSymptom.Duration = d.Phrase
			a.lastSymptom.DurationUnit = d.Unit
		} else if a.lastSymptom == nil {
			a.pending = d
		}
	}
	// a clause like "बाईं तरफ" localises the symptom spoken just before it
	if loc := f.StandaloneLocation; loc != "" {
		a.attachLocation(loc)
	}
}

func (a *Aggregator) addSymptom(rec models.SymptomRecord) {
	key := symptomKey{name: rec.Name, location: rec.Location}
	if existing, ok := a.symptomIdx[key]; ok {
		if existing.Duration == "" && rec.Duration != "" {
			existing.Duration = rec.Duration
			existing.DurationUnit = rec.DurationUnit
		}
		a.lastSymptom = existing
		return
	}
	if rec.Duration == "" && a.pending != nil {
		rec.Duration = a.pending.Phrase
		rec.DurationUnit = a.pending.Unit
		a.pending = nil
	}
	stored := rec
	a.symptoms = append(a.symptoms, &stored)
	a.symptomIdx[key] = &stored
	a.lastSymptom = &stored
}

func (a *Aggregator) attachLocation(location string) {
	s := a.lastSymptom
	if s == nil || s.Location != "" {
		return
	}
	oldKey := symptomKey{name: s.Name, location: ""}
	newKey := symptomKey{name: s.Name, location: location}
	if existing, ok := a.symptomIdx[newKey]; ok {
		// already tracked at that location: merge and drop the duplicate
		if existing.Duration == "" && s.Duration != "" {
			existing.Duration = s.Duration
			existing.DurationUnit = s.DurationUnit
		}
		delete(a.symptomIdx, oldKey)
		a.removeSymptom(s)
		a.lastSymptom = existing
		return
	}
	delete(a.symptomIdx, oldKey)
	s.Location = location
	a.symptomIdx[newKey] = s
}

func (a *Aggregator) removeSymptom(target *models.SymptomRecord) {
	for i, s := range a.symptoms {
		if s == target {
			a.symptoms = append(a.symptoms[:i], a.symptoms[i+1:]...)
			return
		}
	}
}

func (a *Aggregator) mergeDoctor(f extract.DoctorFindings) {
	for _, d := range f.Diagnoses {
		if _, seen := a.diagSeen[d]; seen {
			continue
		}
		a.diagSeen[d] = struct{}{}
		a.diagnoses = append(a.diagnoses, d)
	}
	for _, adv := range f.Advice {
		if _, seen := a.adviceSeen[adv]; seen {
			continue
		}
		a.adviceSeen[adv] = struct{}{}
		a.advice = append(a.advice, adv)
	}
	a.addMedications(f.Medications)
}

func (a *Aggregator) addMedications(meds []models.MedicationRecord) {
	for _, m := range meds {
		if _, seen := a.medSeen[m.Name]; seen {
			continue
		}
		a.medSeen[m.Name] = struct{}{}
		a.medications = append(a.medications, m)
	}
}

// Finalize freezes the report and returns it. The chief complaint is the
// first positive symptom recorded in the session; earliest insertion order
// wins, there is no severity ranking. Finalize is idempotent; Ingest after
// Finalize fails with ErrSessionFinalized.
func (a *Aggregator) Finalize() *models.Report {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.finalized {
		return a.frozen
	}

	r := &models.Report{
		Symptoms:    make([]models.SymptomRecord, 0, len(a.symptoms)),
		Negatives:   append([]string{}, a.negatives...),
		Medications: append([]models.MedicationRecord{}, a.medications...),
		Diagnoses:   append([]string{}, a.diagnoses...),
		Advice:      append([]string{}, a.advice...),
	}
	for _, s := range a.symptoms {
		r.Symptoms = append(r.Symptoms, *s)
	}
	if len(r.Symptoms) > 0 {
		r.ChiefComplaint = r.Symptoms[0].Name
	}

	patientText := strings.Join(a.patientLines, "\n")
	r.PatientName = extract.PatientName(patientText)
	r.PatientAge = extract.PatientAge(patientText)

	a.finalized = true
	a.frozen = r
	return r
}
