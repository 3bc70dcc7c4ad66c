package handlers

import (
	"net/http"

	"fluento/internal/words"
)

const apiVersion = "1.0.0"

// HealthHandler reports service availability
type HealthHandler struct {
	corpus        *words.Corpus
	sttConfigured bool
	ttsConfigured bool
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(corpus *words.Corpus, sttConfigured, ttsConfigured bool) *HealthHandler {
	return &HealthHandler{corpus: corpus, sttConfigured: sttConfigured, ttsConfigured: ttsConfigured}
}

// Root returns the API banner
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"name":    "Fluento API",
		"status":  "running",
		"version": apiVersion,
	})
}

// Health reports per-service readiness and the loaded word count
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "healthy",
		"services": map[string]bool{
			"speech_recognition": h.sttConfigured,
			"text_to_speech":     h.ttsConfigured,
		},
		"word_count": h.corpus.Count(""),
	})
}
