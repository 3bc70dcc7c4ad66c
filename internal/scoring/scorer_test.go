package scoring

import (
	"errors"
	"strings"
	"testing"

	"fluento/internal/models"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "HELLO", "hello"},
		{"trims whitespace", "  cat  ", "cat"},
		{"strips punctuation", "don't!", "dont"},
		{"keeps inner spaces", "the cat", "the cat"},
		{"punctuation only", "!?.,", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{"identical", "cat", "cat", 0},
		{"both empty", "", "", 0},
		{"empty to word", "", "abc", 3},
		{"word to empty", "abc", "", 3},
		{"single substitution", "cat", "bat", 1},
		{"single deletion", "ameliorate", "amelorate", 1},
		{"classic", "kitten", "sitting", 3},
		{"unicode runes", "héllo", "hello", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Distance(tt.a, tt.b); got != tt.want {
				t.Errorf("Distance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestDistanceSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"", "word"},
		{"ameliorate", "amelorate"},
	}
	for _, p := range pairs {
		if Distance(p[0], p[1]) != Distance(p[1], p[0]) {
			t.Errorf("Distance(%q, %q) not symmetric", p[0], p[1])
		}
	}
}

func TestScoreStrings(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{"identical", "cat", "cat", 100},
		{"both empty", "", "", 100},
		{"one empty", "cat", "", 0},
		{"nothing in common", "abc", "xyz", 0},
		{"one edit in ten", "ameliorate", "amelorate", 90},
		{"one edit in three rounds up", "abc", "abd", 67},
		{"one edit in five", "happy", "hapy", 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScoreStrings(tt.a, tt.b); got != tt.want {
				t.Errorf("ScoreStrings(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestScoreStringsSymmetricAndBounded(t *testing.T) {
	pairs := [][2]string{
		{"cat", "catalog"},
		{"", "ephemeral"},
		{"ubiquitous", "ubiqituous"},
		{"a", "z"},
	}
	for _, p := range pairs {
		forward := ScoreStrings(p[0], p[1])
		backward := ScoreStrings(p[1], p[0])
		if forward != backward {
			t.Errorf("ScoreStrings(%q, %q) = %d but reversed = %d", p[0], p[1], forward, backward)
		}
		if forward < 0 || forward > 100 {
			t.Errorf("ScoreStrings(%q, %q) = %d, out of range", p[0], p[1], forward)
		}
	}
}

// failingTransliterator always errors, forcing the raw-text fallback
type failingTransliterator struct{}

func (failingTransliterator) ToPhonemes(string) (string, error) {
	return "", errors.New("conversion failed")
}

// staticTransliterator returns canned phoneme strings per input
type staticTransliterator map[string]string

func (s staticTransliterator) ToPhonemes(text string) (string, error) {
	if out, ok := s[text]; ok {
		return out, nil
	}
	return "", errors.New("unknown word")
}

func TestScorePronunciationExactMatch(t *testing.T) {
	result := ScorePronunciation(nil, "cat", "cat")

	if result.Score != 100 {
		t.Errorf("expected score 100, got %d", result.Score)
	}
	if result.Feedback != "Perfect pronunciation! Great job!" {
		t.Errorf("unexpected feedback %q", result.Feedback)
	}
}

func TestScorePronunciationCaseAndPunctuation(t *testing.T) {
	result := ScorePronunciation(nil, "  Cat! ", "cat")

	if result.Score != 100 {
		t.Errorf("expected score 100 after normalization, got %d", result.Score)
	}
}

func TestScorePronunciationEmptyTarget(t *testing.T) {
	result := ScorePronunciation(nil, "cat", "")

	if result.Score != 0 {
		t.Errorf("expected score 0, got %d", result.Score)
	}
	if result.Feedback != "Could not process target word" {
		t.Errorf("unexpected feedback %q", result.Feedback)
	}
}

func TestScorePronunciationNoSpeech(t *testing.T) {
	result := ScorePronunciation(nil, "", "cat")

	if result.Score != 0 {
		t.Errorf("expected score 0, got %d", result.Score)
	}
	if result.Feedback != "Could not detect speech. Please try again." {
		t.Errorf("unexpected feedback %q", result.Feedback)
	}
}

func TestScorePronunciationTargetContained(t *testing.T) {
	result := ScorePronunciation(nil, "the cat", "cat")

	if result.Feedback != "Good! You said the word correctly. Score based on clarity." {
		t.Errorf("unexpected feedback %q", result.Feedback)
	}
	if result.Score <= 0 || result.Score >= 100 {
		t.Errorf("expected partial score, got %d", result.Score)
	}
}

func TestScorePronunciationFallsBackWhenTransliteratorFails(t *testing.T) {
	result := ScorePronunciation(failingTransliterator{}, "cat", "cat")

	if result.Score != 100 {
		t.Errorf("expected raw-text fallback to score 100, got %d", result.Score)
	}
	if result.TargetPhonemes != "cat" {
		t.Errorf("expected fallback phonemes %q, got %q", "cat", result.TargetPhonemes)
	}
}

func TestScorePronunciationUsesPhonemes(t *testing.T) {
	translit := staticTransliterator{
		"night": "nt",
		"knite": "nt",
	}

	result := ScorePronunciation(translit, "knite", "night")

	if result.Score != 100 {
		t.Errorf("expected homophone to score 100 on phonemes, got %d", result.Score)
	}
	if result.TargetPhonemes != "nt" || result.RecognizedPhonemes != "nt" {
		t.Errorf("expected phoneme strings 'nt', got %q and %q", result.TargetPhonemes, result.RecognizedPhonemes)
	}
}

func TestScoreSpelling(t *testing.T) {
	tests := []struct {
		name         string
		userText     string
		targetWord   string
		wantScore    int
		wantFeedback string
	}{
		{
			name:         "exact match",
			userText:     "cat",
			targetWord:   "cat",
			wantScore:    100,
			wantFeedback: "Perfect! You spelled it correctly!",
		},
		{
			name:         "case and whitespace insensitive",
			userText:     "  CaT ",
			targetWord:   "cat",
			wantScore:    100,
			wantFeedback: "Perfect! You spelled it correctly!",
		},
		{
			name:         "small typo",
			userText:     "amelorate",
			targetWord:   "ameliorate",
			wantScore:    90,
			wantFeedback: "Almost perfect! Just a small typo.",
		},
		{
			name:         "a few letters off",
			userText:     "hapy",
			targetWord:   "happy",
			wantScore:    80,
			wantFeedback: "Good try! A few letters are off.",
		},
		{
			name:         "some letters right",
			userText:     "ran",
			targetWord:   "run",
			wantScore:    67,
			wantFeedback: "Keep going! You got some letters right.",
		},
		{
			name:         "completely wrong",
			userText:     "xyz",
			targetWord:   "ameliorate",
			wantScore:    0,
			wantFeedback: "The correct spelling is 'ameliorate'. Try again!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ScoreSpelling(tt.userText, tt.targetWord)
			if result.Score != tt.wantScore {
				t.Errorf("expected score %d, got %d", tt.wantScore, result.Score)
			}
			if result.Feedback != tt.wantFeedback {
				t.Errorf("expected feedback %q, got %q", tt.wantFeedback, result.Feedback)
			}
		})
	}
}

func TestFeedbackBands(t *testing.T) {
	tests := []struct {
		name  string
		score int
		mode  models.Mode
		want  string
	}{
		{"pronunciation excellent", 92, models.ModePronunciation, "Excellent pronunciation! Almost perfect!"},
		{"pronunciation great", 75, models.ModePronunciation, "Great pronunciation! Minor differences detected."},
		{"pronunciation good", 60, models.ModePronunciation, "Good attempt! Some sounds need work."},
		{"pronunciation keep practicing", 40, models.ModePronunciation, "Keep practicing! Focus on individual sounds."},
		{"spelling almost perfect", 90, models.ModeSpelling, "Almost perfect! Just a small typo."},
		{"spelling good try", 75, models.ModeSpelling, "Good try! A few letters are off."},
		{"spelling keep going", 50, models.ModeSpelling, "Keep going! You got some letters right."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Feedback(tt.score, "attempt", "target", tt.mode)
			if got != tt.want {
				t.Errorf("Feedback(%d) = %q, want %q", tt.score, got, tt.want)
			}
		})
	}
}

func TestFeedbackBandBoundaries(t *testing.T) {
	// One message per band edge, pronunciation mode
	boundaries := map[int]string{
		90: "Excellent",
		89: "Great",
		74: "Good attempt",
		59: "Keep practicing",
		39: "sounds quite different",
	}
	for score, fragment := range boundaries {
		got := Feedback(score, "attempt", "target", models.ModePronunciation)
		if !strings.Contains(got, fragment) {
			t.Errorf("Feedback(%d) = %q, expected fragment %q", score, got, fragment)
		}
	}
}
