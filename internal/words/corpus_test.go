package words

import (
	"os"
	"path/filepath"
	"testing"

	"fluento/internal/models"
)

func TestLoadMissingFileFallsBackToSamples(t *testing.T) {
	corpus, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if corpus.Count("") == 0 {
		t.Fatal("expected the built-in sample set")
	}
	if corpus.Count(models.DifficultyEasy) == 0 || corpus.Count(models.DifficultyHard) == 0 {
		t.Error("expected samples in multiple difficulty tiers")
	}
}

func TestLoadParsesWordsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.json")
	content := `[
		{"word": "tree", "pos": "n", "difficulty": "Easy", "definitions": ["a woody plant"], "examples": [], "synonyms": []},
		{"word": "labyrinth", "pos": "n", "difficulty": "Hard", "definitions": ["a maze"], "examples": [], "synonyms": []}
	]`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	corpus, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if corpus.Count("") != 2 {
		t.Errorf("expected 2 words, got %d", corpus.Count(""))
	}
	if corpus.Count(models.DifficultyEasy) != 1 {
		t.Errorf("expected 1 easy word, got %d", corpus.Count(models.DifficultyEasy))
	}
	if corpus.Count(models.DifficultyHard) != 1 {
		t.Errorf("expected 1 hard word, got %d", corpus.Count(models.DifficultyHard))
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestRandomWord(t *testing.T) {
	corpus := testCorpus()

	word, ok := corpus.RandomWord(models.DifficultyHard)
	if !ok {
		t.Fatal("expected a word")
	}
	if word.Difficulty != "Hard" {
		t.Errorf("expected a hard word, got difficulty %q", word.Difficulty)
	}

	// unknown tier falls back to the whole corpus
	if _, ok := corpus.RandomWord("impossible"); !ok {
		t.Error("expected fallback to the full corpus")
	}

	if _, ok := newCorpus(nil).RandomWord(""); ok {
		t.Error("expected no word from an empty corpus")
	}
}

func TestWordDefinition(t *testing.T) {
	w := models.Word{Definitions: []string{"first", "second"}}
	if w.Definition() != "first" {
		t.Errorf("expected first definition, got %q", w.Definition())
	}
	if (models.Word{}).Definition() != "" {
		t.Error("expected empty definition for a word without definitions")
	}
}
