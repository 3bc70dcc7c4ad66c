package progression

import (
	"errors"
	"time"

	"fluento/internal/models"
)

// ErrInvalidMode is returned when a session is applied with a mode outside
// the two recognized practice modes.
var ErrInvalidMode = errors.New("invalid practice mode")

// XP required to advance one level
const xpPerLevel = 500

// Level derives the level tier from total XP. Level 1 starts at 0 XP and
// each level spans 500 XP.
func Level(totalXP int) int {
	return totalXP/xpPerLevel + 1
}

// ApplySession computes the stats snapshot resulting from one completed
// practice session. The input snapshot is not mutated.
//
// Streak rules, relative to the calendar day of now:
//   - no prior practice date: streak becomes 1
//   - same day: streak unchanged (repeat sessions still add XP and counters)
//   - exactly one day later: streak increments
//   - a longer gap: streak resets to 1
//
// A now that precedes the last practice date (clock skew, backdated events)
// is treated as same-day: the streak holds steady and the last practice
// date still moves to now.
func ApplySession(stats models.UserStats, xpEarned int, mode models.Mode, now time.Time) (models.UserStats, error) {
	switch mode {
	case models.ModePronunciation:
		stats.PronunciationSessions++
	case models.ModeSpelling:
		stats.SpellingSessions++
	default:
		return stats, ErrInvalidMode
	}

	stats.TotalXP += xpEarned
	stats.Level = Level(stats.TotalXP)

	if stats.LastPracticeDate == nil {
		stats.Streak = 1
	} else {
		switch days := daysBetween(*stats.LastPracticeDate, now); {
		case days <= 0:
			// same day (or skewed clock): unchanged
		case days == 1:
			stats.Streak++
		default:
			stats.Streak = 1
		}
	}

	practiced := now
	stats.LastPracticeDate = &practiced

	return stats, nil
}

// UpdateBestScore raises the stored best score for a mode when the new
// score exceeds it. Monotonic and idempotent; an unrecognized mode leaves
// the snapshot untouched (callers validate the mode before scoring).
func UpdateBestScore(stats models.UserStats, mode models.Mode, score int) models.UserStats {
	switch mode {
	case models.ModePronunciation:
		if score > stats.BestPronunciationScore {
			stats.BestPronunciationScore = score
		}
	case models.ModeSpelling:
		if score > stats.BestSpellingScore {
			stats.BestSpellingScore = score
		}
	}
	return stats
}

// daysBetween returns the number of whole calendar days from a to b,
// comparing dates in UTC so the boundary does not drift with server
// timezone changes.
func daysBetween(a, b time.Time) int {
	ad := time.Date(a.UTC().Year(), a.UTC().Month(), a.UTC().Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.UTC().Year(), b.UTC().Month(), b.UTC().Day(), 0, 0, 0, 0, time.UTC)
	return int(bd.Sub(ad).Hours() / 24)
}
