// Package phoneme provides the text-to-phoneme transliteration consumed by
// the pronunciation scorer. The default implementation encodes words with
// Double Metaphone, which approximates how a word sounds well enough for
// edit-distance comparison without an external phonemizer process.
package phoneme

import (
	"errors"
	"strings"

	"github.com/antzucaro/matchr"
)

// ErrNoPhonemes is returned when no word in the input produced a phonetic code
var ErrNoPhonemes = errors.New("no phonemes produced")

// Metaphone transliterates text using Double Metaphone primary codes.
// Stateless and safe for concurrent use.
type Metaphone struct{}

// New returns the default transliterator
func New() Metaphone {
	return Metaphone{}
}

// ToPhonemes converts text to a space-separated phoneme string, one code
// per input word. Words that yield no code (digits, symbols) are skipped;
// if nothing remains the error signals the caller to fall back to raw text.
func (Metaphone) ToPhonemes(text string) (string, error) {
	var codes []string
	for _, word := range strings.Fields(text) {
		primary, _ := matchr.DoubleMetaphone(word)
		if primary == "" {
			continue
		}
		codes = append(codes, strings.ToLower(primary))
	}

	if len(codes) == 0 {
		return "", ErrNoPhonemes
	}
	return strings.Join(codes, " "), nil
}
