package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"fluento/internal/audio"
	"fluento/internal/scoring"
)

// SpellingHandler evaluates typed spelling attempts and serves the word
// audio used for dictation.
type SpellingHandler struct {
	tts *audio.TTSService
}

// NewSpellingHandler creates a new spelling handler
func NewSpellingHandler(tts *audio.TTSService) *SpellingHandler {
	return &SpellingHandler{tts: tts}
}

type spellingEvaluateRequest struct {
	UserText   string `json:"user_text"`
	TargetWord string `json:"target_word"`
}

// Evaluate scores one spelling attempt
func (h *SpellingHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var req spellingEvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	if strings.TrimSpace(req.UserText) == "" {
		respondWithError(w, http.StatusBadRequest, "User text cannot be empty", "", nil)
		return
	}
	if strings.TrimSpace(req.TargetWord) == "" {
		respondWithError(w, http.StatusBadRequest, "Target word cannot be empty", "", nil)
		return
	}

	result := scoring.ScoreSpelling(req.UserText, req.TargetWord)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"user_text":    req.UserText,
		"correct_word": req.TargetWord,
		"score":        result.Score,
		"feedback":     result.Feedback,
	})
}

type ttsGenerateRequest struct {
	Word string `json:"word"`
}

// GenerateTTS synthesizes (or fetches cached) audio for a word, POST body
func (h *SpellingHandler) GenerateTTS(w http.ResponseWriter, r *http.Request) {
	var req ttsGenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}
	h.serveWordAudio(w, r, req.Word)
}

// GetTTS synthesizes (or fetches cached) audio for the word in the path
func (h *SpellingHandler) GetTTS(w http.ResponseWriter, r *http.Request) {
	h.serveWordAudio(w, r, r.PathValue("word"))
}

func (h *SpellingHandler) serveWordAudio(w http.ResponseWriter, r *http.Request, word string) {
	word = strings.TrimSpace(word)
	if word == "" {
		respondWithError(w, http.StatusBadRequest, "Word cannot be empty", "", nil)
		return
	}

	path, err := h.tts.AudioPath(r.Context(), word)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to generate audio", "TTS generation failed", err)
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	http.ServeFile(w, r, path)
}
