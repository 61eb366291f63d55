// Package speaker attributes clinical clause segments to DOCTOR or PATIENT
// with a small stateful rule engine. Attribution is rule-based diarization:
// strong cue tables first, then conversation-context inheritance.
package speaker

import (
	"strings"

	"opd-extraction-service/internal/models"
)

// Doctor-specific clinical language.
var doctorCues = []string{
	"मैं आपकी जांच", "मैं आपकी जाँच", "जाँच कर रहा", "जांच कर रहा",
	"दवा", "लेनी है", "लें", "लिख रहा",
	"केस", "निदान", "डायग्नोसिस", "diagnosis", "लगता है",
}

// Doctor imperative / advisory language.
var doctorImperatives = []string{
	"खाएं", "न खाएं", "पीएं", "मत", "परहेज",
	"आराम", "बचें", "लेते रहें", "कम करें", "ज्यादा न",
}

// Patient complaint / self-report language.
var patientCues = []string{
	"मुझे", "मेरे", "मेरी", "दर्द", "तकलीफ",
	"हो रहा", "हो रही", "है", "नहीं है", "नहीं हुई",
}

// Config holds the classifier's tunable policy.
type Config struct {
	// DefaultSpeaker is applied when the first segment carries no strong
	// cue. Consultations begin with patient self-report by operating
	// convention, so the documented default is SpeakerPatient.
	DefaultSpeaker models.Speaker
}

// Classifier labels segments and is the sole mutator of ConversationState.
// It is stateless itself and safe to share across sessions.
type Classifier struct {
	cfg Config
}

// NewClassifier builds a Classifier. A zero or invalid default speaker
// falls back to SpeakerPatient.
func NewClassifier(cfg Config) *Classifier {
	if cfg.DefaultSpeaker != models.SpeakerDoctor && cfg.DefaultSpeaker != models.SpeakerPatient {
		cfg.DefaultSpeaker = models.SpeakerPatient
	}
	return &Classifier{cfg: cfg}
}

// Classify labels one segment and records the label in state.
//
// Priority order:
//  1. strong doctor cue (clinical terminology, then imperatives)
//  2. strong patient cue (complaint language)
//  3. advisory hint from the upstream ASR, when present
//  4. context inheritance: previous non-unknown label
//  5. the configured default speaker
func (c *Classifier) Classify(segment string, hint models.Speaker, state *ConversationState) models.Speaker {
	label := c.decide(strings.TrimSpace(segment), hint, state)
	state.push(label)
	return label
}

func (c *Classifier) decide(text string, hint models.Speaker, state *ConversationState) models.Speaker {
	if containsAny(text, doctorCues) || containsAny(text, doctorImperatives) {
		return models.SpeakerDoctor
	}
	if containsAny(text, patientCues) {
		return models.SpeakerPatient
	}
	if hint == models.SpeakerDoctor || hint == models.SpeakerPatient {
		return hint
	}
	if state.Current() != models.SpeakerUnknown {
		return state.Current()
	}
	return c.cfg.DefaultSpeaker
}

func containsAny(text string, cues []string) bool {
	for _, cue := range cues {
		if strings.Contains(text, cue) {
			return true
		}
	}
	return false
}
