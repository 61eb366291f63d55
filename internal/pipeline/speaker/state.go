package speaker

import "opd-extraction-service/internal/models"

// DefaultHistoryDepth bounds the per-session label history when no explicit
// depth is configured.
const DefaultHistoryDepth = 8

// ConversationState carries speaker context across the segments of one
// consultation session. One instance exists per session; the Classifier is
// the only component that mutates it.
type ConversationState struct {
	current    models.Speaker
	history    []models.Speaker
	turns      int
	maxHistory int
}

// NewState returns a fresh state with no attributed speaker yet.
func NewState(maxHistory int) *ConversationState {
	if maxHistory <= 0 {
		maxHistory = DefaultHistoryDepth
	}
	return &ConversationState{
		current:    models.SpeakerUnknown,
		maxHistory: maxHistory,
	}
}

// Current returns the most recently attributed speaker, or SpeakerUnknown
// before the first segment.
func (s *ConversationState) Current() models.Speaker { return s.current }

// Turns returns how many segments have been classified.
func (s *ConversationState) Turns() int { return s.turns }

// History returns a copy of the most recent labels, oldest first.
func (s *ConversationState) History() []models.Speaker {
	out := make([]models.Speaker, len(s.history))
	copy(out, s.history)
	return out
}

func (s *ConversationState) push(label models.Speaker) {
	s.current = label
	s.history = append(s.history, label)
	if len(s.history) > s.maxHistory {
		s.history = s.history[len(s.history)-s.maxHistory:]
	}
	s.turns++
}
