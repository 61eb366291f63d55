package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"opd-extraction-service/internal/events"
	"opd-extraction-service/internal/models"
	"opd-extraction-service/internal/observability/metrics"
	"opd-extraction-service/internal/pipeline/report"
	"opd-extraction-service/internal/session"
)

// ConsultationHandler serves the consultation lifecycle endpoints.
type ConsultationHandler struct {
	sessions  *session.Manager
	publisher *events.Publisher
}

type createResponse struct {
	ConsultationID string `json:"consultationId"`
}

type utteranceRequest struct {
	Text        string `json:"text"`
	SpeakerHint string `json:"speakerHint,omitempty"`
}

type utteranceResponse struct {
	ConsultationID string                  `json:"consultationId"`
	Segments       []models.LabeledSegment `json:"segments"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Create starts a new consultation session.
func (h *ConsultationHandler) Create(w http.ResponseWriter, _ *http.Request) {
	id := h.sessions.Create()
	writeJSON(w, http.StatusCreated, createResponse{ConsultationID: id})
}

// Ingest accepts one utterance and returns its labeled segments.
func (h *ConsultationHandler) Ingest(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "consultationId")

	var req utteranceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	hint := models.Speaker(req.SpeakerHint)
	if req.SpeakerHint != "" && !hint.IsValid() {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid speakerHint"})
		return
	}

	start := time.Now()
	result, err := h.sessions.Ingest(id, models.Utterance{
		Text:        req.Text,
		Timestamp:   time.Now(),
		SpeakerHint: hint,
	})
	if err != nil {
		writeSessionError(w, err)
		return
	}
	metrics.DefaultMetrics.RecordUtterance(len(result.Segments) == 0, time.Since(start).Seconds())
	for _, seg := range result.Segments {
		metrics.DefaultMetrics.RecordSegment(string(seg.Speaker))
	}

	if len(result.Segments) > 0 {
		event := models.UtteranceLabeled{
			EventType:      "consultation.utterance.labeled",
			ConsultationID: id,
			Timestamp:      time.Now().UnixMilli(),
			Segments:       result.Segments,
		}
		if err := h.publisher.PublishUtterance(r.Context(), id, event); err != nil {
			log.Warn().Err(err).Str("consultationId", id).Msg("Utterance event not published")
		}
	}

	writeJSON(w, http.StatusOK, utteranceResponse{ConsultationID: id, Segments: result.Segments})
}

// Finalize freezes the session and returns the structured report.
func (h *ConsultationHandler) Finalize(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "consultationId")

	rep, err := h.sessions.Finalize(id)
	if err != nil {
		writeSessionError(w, err)
		return
	}

	metrics.DefaultMetrics.RecordEntities("symptom", len(rep.Symptoms))
	metrics.DefaultMetrics.RecordEntities("negative", len(rep.Negatives))
	metrics.DefaultMetrics.RecordEntities("medication", len(rep.Medications))
	metrics.DefaultMetrics.RecordEntities("diagnosis", len(rep.Diagnoses))
	metrics.DefaultMetrics.RecordEntities("advice", len(rep.Advice))

	event := models.ReportFinalized{
		EventType:      "consultation.report.finalized",
		ConsultationID: id,
		Timestamp:      time.Now().UnixMilli(),
		Report:         *rep,
	}
	if err := h.publisher.PublishReport(r.Context(), id, event); err != nil {
		log.Warn().Err(err).Str("consultationId", id).Msg("Report event not published")
	}

	writeJSON(w, http.StatusOK, rep)
}

// Discard drops the session without producing a report.
func (h *ConsultationHandler) Discard(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "consultationId")

	if err := h.sessions.Discard(id); err != nil {
		writeSessionError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeSessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "consultation not found"})
	case errors.Is(err, report.ErrSessionFinalized):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "consultation already finalized"})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}
