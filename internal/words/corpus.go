package words

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"

	"fluento/internal/models"
)

// Corpus is the in-memory word dataset, indexed by difficulty tier.
// Read-only after Load, safe for concurrent use.
type Corpus struct {
	words        []models.Word
	byDifficulty map[string][]models.Word
}

// Load reads the word dataset from a JSON file and indexes it by
// difficulty. When the file does not exist the built-in sample set is used
// so the server still comes up in development.
func Load(path string) (*Corpus, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Printf("Words file not found at %s, using built-in sample set", path)
		return newCorpus(sampleWords()), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read words file: %w", err)
	}

	var words []models.Word
	if err := json.Unmarshal(data, &words); err != nil {
		return nil, fmt.Errorf("failed to parse words file: %w", err)
	}

	c := newCorpus(words)
	log.Printf("Loaded %d words (easy: %d, medium: %d, hard: %d)",
		c.Count(""),
		c.Count(models.DifficultyEasy),
		c.Count(models.DifficultyMedium),
		c.Count(models.DifficultyHard))

	return c, nil
}

func newCorpus(words []models.Word) *Corpus {
	c := &Corpus{
		words: words,
		byDifficulty: map[string][]models.Word{
			models.DifficultyEasy:   nil,
			models.DifficultyMedium: nil,
			models.DifficultyHard:   nil,
		},
	}
	for _, w := range words {
		tier := strings.ToLower(w.Difficulty)
		if _, ok := c.byDifficulty[tier]; ok {
			c.byDifficulty[tier] = append(c.byDifficulty[tier], w)
		}
	}
	return c
}

// RandomWord returns a random word from the requested difficulty tier. An
// empty or unpopulated tier falls back to the whole corpus. The second
// return value is false only when the corpus itself is empty.
func (c *Corpus) RandomWord(difficulty string) (models.Word, bool) {
	pool := c.words
	if difficulty != "" {
		if tier := c.byDifficulty[strings.ToLower(difficulty)]; len(tier) > 0 {
			pool = tier
		}
	}

	if len(pool) == 0 {
		return models.Word{}, false
	}
	return pool[rand.Intn(len(pool))], true
}

// Count returns the number of words in a tier, or in the whole corpus when
// difficulty is empty.
func (c *Corpus) Count(difficulty string) int {
	if difficulty == "" {
		return len(c.words)
	}
	return len(c.byDifficulty[strings.ToLower(difficulty)])
}

// Pool returns the words of one difficulty tier. The returned slice is
// shared and must not be modified.
func (c *Corpus) Pool(difficulty string) []models.Word {
	return c.byDifficulty[strings.ToLower(difficulty)]
}

// sampleWords is the development fallback dataset
func sampleWords() []models.Word {
	return []models.Word{
		{Word: "cat", POS: "n", Difficulty: "Easy", Definitions: []string{"a small domesticated carnivorous mammal"}, Examples: []string{"The cat sat on the mat"}, Synonyms: []string{"feline", "kitty"}},
		{Word: "dog", POS: "n", Difficulty: "Easy", Definitions: []string{"a domesticated carnivorous mammal"}, Examples: []string{"The dog barked loudly"}, Synonyms: []string{"canine", "hound"}},
		{Word: "happy", POS: "a", Difficulty: "Easy", Definitions: []string{"feeling or showing pleasure"}, Examples: []string{"She was happy to see him"}, Synonyms: []string{"joyful", "cheerful"}},
		{Word: "run", POS: "v", Difficulty: "Easy", Definitions: []string{"move at a speed faster than a walk"}, Examples: []string{"He ran to catch the bus"}, Synonyms: []string{"sprint", "dash"}},
		{Word: "beautiful", POS: "a", Difficulty: "Medium", Definitions: []string{"pleasing the senses or mind aesthetically"}, Examples: []string{"A beautiful sunset"}, Synonyms: []string{"gorgeous", "stunning"}},
		{Word: "comprehend", POS: "v", Difficulty: "Medium", Definitions: []string{"grasp mentally; understand"}, Examples: []string{"I cannot comprehend his motives"}, Synonyms: []string{"understand", "grasp"}},
		{Word: "eloquent", POS: "a", Difficulty: "Hard", Definitions: []string{"fluent or persuasive in speaking or writing"}, Examples: []string{"An eloquent speaker"}, Synonyms: []string{"articulate", "expressive"}},
		{Word: "ephemeral", POS: "a", Difficulty: "Hard", Definitions: []string{"lasting for a very short time"}, Examples: []string{"Ephemeral pleasures"}, Synonyms: []string{"transient", "fleeting"}},
		{Word: "ubiquitous", POS: "a", Difficulty: "Hard", Definitions: []string{"present, appearing, or found everywhere"}, Examples: []string{"Smartphones are now ubiquitous"}, Synonyms: []string{"omnipresent", "pervasive"}},
		{Word: "ameliorate", POS: "v", Difficulty: "Hard", Definitions: []string{"make something bad or unsatisfactory better"}, Examples: []string{"Steps to ameliorate the situation"}, Synonyms: []string{"improve", "enhance"}},
	}
}
