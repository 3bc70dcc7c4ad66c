package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"fluento/internal/scoring"
	"fluento/internal/stt"
)

// PronunciationHandler evaluates spoken attempts: audio goes to the
// speech-to-text collaborator, the recognized text is scored on phonemes.
type PronunciationHandler struct {
	transcriber   stt.Transcriber
	transliterate scoring.Transliterator
	maxUploadSize int64
}

// NewPronunciationHandler creates a new pronunciation handler
func NewPronunciationHandler(transcriber stt.Transcriber, transliterate scoring.Transliterator, maxUploadSize int64) *PronunciationHandler {
	return &PronunciationHandler{
		transcriber:   transcriber,
		transliterate: transliterate,
		maxUploadSize: maxUploadSize,
	}
}

var allowedAudioTypes = []string{"audio", "webm", "wav", "mp3", "ogg"}

// Evaluate scores one pronunciation attempt. Multipart form fields:
// audio_file (the recording) and target_word.
func (h *PronunciationHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	if h.transcriber == nil {
		respondWithError(w, http.StatusServiceUnavailable, "Speech recognition is not configured", "", nil)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		respondWithError(w, http.StatusBadRequest, fmt.Sprintf("File too large. Maximum size: %dMB", h.maxUploadSize/(1024*1024)), "", err)
		return
	}

	targetWord := strings.TrimSpace(r.FormValue("target_word"))
	if targetWord == "" {
		respondWithError(w, http.StatusBadRequest, "Target word cannot be empty", "", nil)
		return
	}

	file, header, err := r.FormFile("audio_file")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Audio file is required", "", err)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !isAllowedAudioType(contentType) {
		respondWithError(w, http.StatusBadRequest,
			fmt.Sprintf("Invalid file type: %s. Allowed: audio/wav, audio/webm, audio/mp3, audio/ogg", contentType), "", nil)
		return
	}

	audio, err := io.ReadAll(file)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Failed to read audio file", "", err)
		return
	}

	recognized, err := h.transcriber.Transcribe(r.Context(), audio, header.Filename)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Error processing audio", "Transcription failed", err)
		return
	}

	result := scoring.ScorePronunciation(h.transliterate, recognized, targetWord)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"recognized_text":     recognized,
		"target_word":         targetWord,
		"score":               result.Score,
		"target_phonemes":     result.TargetPhonemes,
		"recognized_phonemes": result.RecognizedPhonemes,
		"feedback":            result.Feedback,
	})
}

func isAllowedAudioType(contentType string) bool {
	for _, t := range allowedAudioTypes {
		if strings.Contains(contentType, t) {
			return true
		}
	}
	return false
}
