package models

// Difficulty tiers used to partition the word corpus
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// ValidDifficulty reports whether s is a recognized difficulty tier
func ValidDifficulty(s string) bool {
	switch s {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Word is a single entry from the word dataset
type Word struct {
	Word        string   `json:"word"`
	POS         string   `json:"pos"`
	Difficulty  string   `json:"difficulty"`
	Definitions []string `json:"definitions"`
	Examples    []string `json:"examples"`
	Synonyms    []string `json:"synonyms"`
}

// Definition returns the first definition, or an empty string
func (w Word) Definition() string {
	if len(w.Definitions) == 0 {
		return ""
	}
	return w.Definitions[0]
}

// DailyWord is one entry of the daily word set shown to all users
type DailyWord struct {
	Word       string `json:"word"`
	Meaning    string `json:"meaning"`
	Difficulty string `json:"difficulty"`
}
