package scoring

import (
	"math"
	"strings"

	"fluento/internal/models"
)

// Transliterator converts text to a phoneme representation. Implementations
// may fail on unpronounceable input; the scorer recovers by comparing
// normalized raw text instead.
type Transliterator interface {
	ToPhonemes(text string) (string, error)
}

// PronunciationResult is the outcome of scoring one pronunciation attempt
type PronunciationResult struct {
	Score              int    `json:"score"`
	TargetPhonemes     string `json:"target_phonemes"`
	RecognizedPhonemes string `json:"recognized_phonemes"`
	Feedback           string `json:"feedback"`
}

// SpellingResult is the outcome of scoring one spelling attempt
type SpellingResult struct {
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

// ScoreStrings converts the edit distance between a and b into a 0-100
// similarity score. Identical strings short-circuit to 100, which also
// covers the degenerate case of two empty strings. The metric is symmetric.
func ScoreStrings(a, b string) int {
	if a == b {
		return 100
	}

	dist := Distance(a, b)
	maxLen := max(len([]rune(a)), len([]rune(b)), 1)
	similarity := 1 - float64(dist)/float64(maxLen)

	score := int(math.Round(similarity * 100))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// ScorePronunciation compares recognized speech against the target word on
// phoneme strings. When the transliterator cannot produce phonemes for a
// side, that side falls back to its normalized raw text. An empty target
// after conversion forces a zero score with an explicit message rather
// than a meaningless ratio.
func ScorePronunciation(t Transliterator, recognizedText, targetWord string) PronunciationResult {
	targetPhonemes := toPhonemes(t, targetWord)
	recognizedPhonemes := toPhonemes(t, recognizedText)

	if targetPhonemes == "" {
		return PronunciationResult{
			Score:              0,
			TargetPhonemes:     targetPhonemes,
			RecognizedPhonemes: recognizedPhonemes,
			Feedback:           "Could not process target word",
		}
	}

	score := ScoreStrings(targetPhonemes, recognizedPhonemes)

	return PronunciationResult{
		Score:              score,
		TargetPhonemes:     targetPhonemes,
		RecognizedPhonemes: recognizedPhonemes,
		Feedback:           pronunciationFeedback(score, recognizedText, targetWord),
	}
}

// ScoreSpelling compares a typed attempt against the correct spelling on
// normalized characters. An exact normalized match is always 100.
func ScoreSpelling(userText, targetWord string) SpellingResult {
	user := strings.ToLower(strings.TrimSpace(userText))
	target := strings.ToLower(strings.TrimSpace(targetWord))

	if user == target {
		return SpellingResult{
			Score:    100,
			Feedback: "Perfect! You spelled it correctly!",
		}
	}

	score := ScoreStrings(target, user)

	return SpellingResult{
		Score:    score,
		Feedback: spellingFeedback(score, targetWord),
	}
}

// Feedback selects the deterministic message for a scored attempt in the
// given mode. Exposed for callers that score phoneme strings directly.
func Feedback(score int, attemptText, targetText string, mode models.Mode) string {
	if mode == models.ModeSpelling {
		if Normalize(attemptText) == Normalize(targetText) {
			return "Perfect! You spelled it correctly!"
		}
		return spellingFeedback(score, targetText)
	}
	return pronunciationFeedback(score, attemptText, targetText)
}

// toPhonemes converts text for comparison, substituting normalized raw
// text when conversion fails or yields nothing.
func toPhonemes(t Transliterator, text string) string {
	normalized := Normalize(text)
	if normalized == "" {
		return ""
	}
	if t == nil {
		return normalized
	}

	phonemes, err := t.ToPhonemes(normalized)
	if err != nil || strings.TrimSpace(phonemes) == "" {
		return normalized
	}
	return strings.TrimSpace(phonemes)
}
