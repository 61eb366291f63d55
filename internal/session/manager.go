// Package session manages active consultation sessions.
package session

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"opd-extraction-service/internal/lexicon"
	"opd-extraction-service/internal/models"
	"opd-extraction-service/internal/observability/metrics"
	"opd-extraction-service/internal/pipeline/report"
)

// ErrNotFound is returned when a consultation ID is unknown.
var ErrNotFound = errors.New("session: consultation not found")

// Manager keeps one report aggregator per active consultation. Each session
// snapshots the lexicon at creation time, so a live reload never changes the
// vocabulary of an in-flight consultation.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*report.Aggregator
	lexicons lexicon.Provider
	cfg      report.Config
	metrics  *metrics.Metrics
}

// NewManager creates a session manager drawing lexicon snapshots from provider.
func NewManager(provider lexicon.Provider, cfg report.Config) *Manager {
	return &Manager{
		sessions: make(map[string]*report.Aggregator),
		lexicons: provider,
		cfg:      cfg,
		metrics:  metrics.DefaultMetrics,
	}
}

// Create starts a new consultation and returns its ID.
func (m *Manager) Create() string {
	id := uuid.New().String()
	agg := report.New(m.lexicons.Current(), m.cfg)

	m.mu.Lock()
	m.sessions[id] = agg
	m.mu.Unlock()

	m.metrics.RecordSessionCreated()
	log.Info().Str("consultationId", id).Msg("Consultation created")
	return id
}

// Ingest feeds an utterance into the consultation's aggregator.
func (m *Manager) Ingest(id string, u models.Utterance) (report.IngestResult, error) {
	m.mu.RLock()
	agg, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return report.IngestResult{}, ErrNotFound
	}
	return agg.Ingest(u)
}

// Finalize builds the consultation report and freezes the session. The
// session stays registered so repeated finalize calls return the same
// report; Discard removes it.
func (m *Manager) Finalize(id string) (*models.Report, error) {
	m.mu.RLock()
	agg, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}

	alreadyFrozen := agg.Finalized()
	rep := agg.Finalize()
	if !alreadyFrozen {
		m.metrics.RecordSessionFinalized()
	}
	log.Info().
		Str("consultationId", id).
		Int("symptoms", len(rep.Symptoms)).
		Int("medications", len(rep.Medications)).
		Msg("Consultation finalized")
	return rep, nil
}

// Discard removes a consultation. A session that was already finalized
// left the active count at finalize time and is only unregistered here.
func (m *Manager) Discard(id string) error {
	m.mu.Lock()
	agg, ok := m.sessions[id]
	if ok {
		delete(m.sessions, id)
	}
	m.mu.Unlock()
	if !ok {
		return ErrNotFound
	}

	if !agg.Finalized() {
		m.metrics.RecordSessionDiscarded()
	}
	log.Info().Str("consultationId", id).Msg("Consultation discarded")
	return nil
}

// Count reports the number of active sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
