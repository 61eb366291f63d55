package models

// UtteranceLabeled is the event emitted after one utterance has been
// normalized, segmented and speaker-attributed.
type UtteranceLabeled struct {
	EventType      string           `json:"eventType"`
	ConsultationID string           `json:"consultationId"`
	Timestamp      int64            `json:"timestamp"`
	Segments       []LabeledSegment `json:"segments"`
}

// ReportFinalized is the event emitted when a consultation session is
// finalized and its report frozen.
type ReportFinalized struct {
	EventType      string `json:"eventType"`
	ConsultationID string `json:"consultationId"`
	Timestamp      int64  `json:"timestamp"`
	Report         Report `json:"report"`
}
