package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"fluento/internal/models"
	"fluento/internal/words"
)

// WordsHandler serves the word dataset endpoints
type WordsHandler struct {
	corpus *words.Corpus
	daily  *words.DailySelector
}

// NewWordsHandler creates a new words handler
func NewWordsHandler(corpus *words.Corpus, daily *words.DailySelector) *WordsHandler {
	return &WordsHandler{corpus: corpus, daily: daily}
}

// Daily returns the word set of the day: 2 easy, 2 medium, 1 hard, the
// same for every caller until midnight UTC.
func (h *WordsHandler) Daily(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"words": h.daily.WordsFor(time.Now()),
	})
}

// Stats returns word counts by difficulty tier
func (h *WordsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]int{
		"total_words": h.corpus.Count(""),
		"easy":        h.corpus.Count(models.DifficultyEasy),
		"medium":      h.corpus.Count(models.DifficultyMedium),
		"hard":        h.corpus.Count(models.DifficultyHard),
	})
}

// Count returns the corpus size, optionally filtered by difficulty
func (h *WordsHandler) Count(w http.ResponseWriter, r *http.Request) {
	difficulty := strings.ToLower(r.URL.Query().Get("difficulty"))
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"count":      h.corpus.Count(difficulty),
		"difficulty": difficulty,
	})
}

// Random returns a random practice word for the mode and difficulty in the
// request path.
func (h *WordsHandler) Random(w http.ResponseWriter, r *http.Request) {
	mode := models.Mode(r.PathValue("mode"))
	difficulty := strings.ToLower(r.PathValue("difficulty"))

	if !mode.IsValid() {
		respondWithError(w, http.StatusBadRequest, "Mode must be 'pronunciation' or 'spelling'", "", nil)
		return
	}
	if !models.ValidDifficulty(difficulty) {
		respondWithError(w, http.StatusBadRequest, "Difficulty must be 'easy', 'medium' or 'hard'", "", nil)
		return
	}

	word, ok := h.corpus.RandomWord(difficulty)
	if !ok {
		respondWithError(w, http.StatusNotFound, fmt.Sprintf("No words found for difficulty: %s", difficulty), "", nil)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"word":       word.Word,
		"pos":        word.POS,
		"difficulty": word.Difficulty,
		"definition": word.Definition(),
		"examples":   word.Examples,
		"synonyms":   word.Synonyms,
	})
}
