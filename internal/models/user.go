package models

import "time"

// User represents a learner account in the system
type User struct {
	UID         string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Stats       UserStats `json:"stats"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

// UserStats holds the gamification counters for a user.
// Level is always derived from TotalXP, never stored independently.
type UserStats struct {
	TotalXP                int        `json:"total_xp"`
	Level                  int        `json:"level"`
	Streak                 int        `json:"streak"`
	LastPracticeDate       *time.Time `json:"last_practice_date,omitempty"`
	PronunciationSessions  int        `json:"pronunciation_sessions"`
	SpellingSessions       int        `json:"spelling_sessions"`
	BestPronunciationScore int        `json:"best_pronunciation_score"`
	BestSpellingScore      int        `json:"best_spelling_score"`
}

// TotalSessions returns the combined session count across both practice modes
func (s UserStats) TotalSessions() int {
	return s.PronunciationSessions + s.SpellingSessions
}

// Badge represents a permanently earned achievement marker.
// Once earned a badge is never removed or re-timestamped.
type Badge struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	EarnedAt    time.Time `json:"earned_at"`
}
