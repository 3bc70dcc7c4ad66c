package words

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"fluento/internal/models"
)

// Daily word set composition: 2 easy, 2 medium, 1 hard (pools permitting)
const (
	dailyEasyCount   = 2
	dailyMediumCount = 2
	dailyHardCount   = 1
)

// DailySelector picks the word set for a calendar date. The selection is
// deterministic for a given date and corpus, so every user (and every
// process restart) sees the same daily words. The current selection is
// cached as an immutable snapshot behind a mutex and replaced wholesale on
// date rollover; concurrent callers never observe a partial update.
type DailySelector struct {
	corpus *Corpus

	mu     sync.Mutex
	cached *dailySnapshot
}

type dailySnapshot struct {
	day   string
	words []models.DailyWord
}

// NewDailySelector creates a selector over the given corpus
func NewDailySelector(corpus *Corpus) *DailySelector {
	return &DailySelector{corpus: corpus}
}

// WordsFor returns the daily word set for the calendar date of now.
// Repeated calls within a date return the cached snapshot; a new date
// invalidates and replaces it.
func (s *DailySelector) WordsFor(now time.Time) []models.DailyWord {
	day := now.UTC().Format("2006-01-02")

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil && s.cached.day == day {
		return s.cached.words
	}

	selected := s.selectWords(ordinal(now))
	s.cached = &dailySnapshot{day: day, words: selected}
	return selected
}

// selectWords samples the stratified set with a generator seeded by the
// date ordinal. Pools smaller than their quota contribute everything they
// have, degrading the total below 5 rather than failing.
func (s *DailySelector) selectWords(seed int64) []models.DailyWord {
	rng := rand.New(rand.NewSource(seed))

	picks := sampleWithoutReplacement(rng, s.corpus.Pool(models.DifficultyEasy), dailyEasyCount)
	picks = append(picks, sampleWithoutReplacement(rng, s.corpus.Pool(models.DifficultyMedium), dailyMediumCount)...)
	picks = append(picks, sampleWithoutReplacement(rng, s.corpus.Pool(models.DifficultyHard), dailyHardCount)...)

	daily := make([]models.DailyWord, 0, len(picks))
	for _, w := range picks {
		daily = append(daily, models.DailyWord{
			Word:       w.Word,
			Meaning:    w.Definition(),
			Difficulty: strings.ToLower(w.Difficulty),
		})
	}
	return daily
}

// sampleWithoutReplacement draws up to n distinct elements from pool using
// rng. When the pool holds fewer than n words, all of them are returned in
// pool order.
func sampleWithoutReplacement(rng *rand.Rand, pool []models.Word, n int) []models.Word {
	if n >= len(pool) {
		return append([]models.Word(nil), pool...)
	}

	picked := make([]models.Word, 0, n)
	for _, idx := range rng.Perm(len(pool))[:n] {
		picked = append(picked, pool[idx])
	}
	return picked
}

// Ordinal of the Unix epoch: days from January 1 of year 1 (day 1) to
// 1970-01-01 in the proleptic Gregorian calendar.
const unixEpochOrdinal = 719163

// ordinal returns the proleptic-Gregorian ordinal day number of t's UTC
// date (day 1 is January 1 of year 1), so the same calendar date seeds the
// same generator across restarts.
func ordinal(t time.Time) int64 {
	return t.UTC().Unix()/86400 + unixEpochOrdinal
}
