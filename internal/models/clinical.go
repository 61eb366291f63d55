// Package models defines the data structures for consultation events and reports.
package models

import "time"

// Speaker identifies which party a segment is attributed to.
type Speaker string

const (
	SpeakerDoctor  Speaker = "doctor"
	SpeakerPatient Speaker = "patient"
	SpeakerUnknown Speaker = "unknown"
)

// IsValid reports whether s is a recognised speaker label.
func (s Speaker) IsValid() bool {
	return s == SpeakerDoctor || s == SpeakerPatient || s == SpeakerUnknown
}

// Utterance is one recognised unit of speech from the upstream ASR engine.
// The speaker hint, when present, is advisory only.
type Utterance struct {
	Text        string    `json:"text"`
	Timestamp   time.Time `json:"timestamp"`
	SpeakerHint Speaker   `json:"speakerHint,omitempty"`
}

// LabeledSegment is one clause of an utterance with its attributed speaker.
type LabeledSegment struct {
	Ordinal int     `json:"ordinal"`
	Text    string  `json:"text"`
	Speaker Speaker `json:"speaker"`
}

// SymptomRecord is a positive or negated symptom mention.
// Location and duration are captured verbatim from the transcript;
// DurationUnit is the canonicalized time unit when it could be resolved.
type SymptomRecord struct {
	Name         string `json:"name"`
	Surface      string `json:"surface,omitempty"`
	Location     string `json:"location,omitempty"`
	Duration     string `json:"duration,omitempty"`
	DurationUnit string `json:"durationUnit,omitempty"`
	Negated      bool   `json:"negated,omitempty"`
}

// MedicationRecord is a medication mention, canonicalized against the lexicon.
type MedicationRecord struct {
	Name    string `json:"name"`
	Surface string `json:"surface,omitempty"`
}

// Report is the structured outcome of one consultation session.
// Every field is verbatim-derived text or a canonical lexicon value;
// the downstream note generator depends on that for its anti-hallucination
// guarantee.
type Report struct {
	ChiefComplaint string             `json:"chiefComplaint,omitempty"`
	Symptoms       []SymptomRecord    `json:"symptoms"`
	Negatives      []string           `json:"negatives"`
	Medications    []MedicationRecord `json:"medications"`
	Diagnoses      []string           `json:"diagnosis"`
	Advice         []string           `json:"advice"`
	PatientName    string             `json:"patientName,omitempty"`
	PatientAge     int                `json:"patientAge,omitempty"`
}
