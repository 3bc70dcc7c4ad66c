package progression

import (
	"time"

	"fluento/internal/models"
)

// BadgeRule pairs a stable badge identifier with the predicate that earns it
type BadgeRule struct {
	ID          string
	Name        string
	Description string
	Earned      func(models.UserStats) bool
}

// badgeRules is the fixed, ordered badge table. Order matters only for the
// order of the returned delta; thresholds are evaluated against the full
// stats snapshot every call.
var badgeRules = []BadgeRule{
	{"first_session", "🎯 First Session", "Completed your first practice!",
		func(s models.UserStats) bool { return s.TotalSessions() >= 1 }},
	{"getting_started", "🚀 Getting Started", "Earned 10 XP",
		func(s models.UserStats) bool { return s.TotalXP >= 10 }},
	{"first_steps", "👣 First Steps", "Earned 100 XP",
		func(s models.UserStats) bool { return s.TotalXP >= 100 }},
	{"xp_500", "⭐ XP Hunter", "Earned 500 XP",
		func(s models.UserStats) bool { return s.TotalXP >= 500 }},

	{"five_sessions", "🎮 Dedicated", "Completed 5 sessions",
		func(s models.UserStats) bool { return s.TotalSessions() >= 5 }},
	{"ten_sessions", "🔥 On Fire", "Completed 10 sessions",
		func(s models.UserStats) bool { return s.TotalSessions() >= 10 }},
	{"century", "💯 Century", "Completed 100 sessions",
		func(s models.UserStats) bool { return s.TotalSessions() >= 100 }},

	{"streak_3", "📅 3 Day Streak", "3 day practice streak",
		func(s models.UserStats) bool { return s.Streak >= 3 }},
	{"streak_week", "🗓️ Week Warrior", "7 day streak",
		func(s models.UserStats) bool { return s.Streak >= 7 }},
	{"streak_month", "📆 Monthly Master", "30 day streak",
		func(s models.UserStats) bool { return s.Streak >= 30 }},

	{"level_2", "🌱 Level 2", "Reached level 2",
		func(s models.UserStats) bool { return s.Level >= 2 }},
	{"level_5", "🌟 Rising Star", "Reached level 5",
		func(s models.UserStats) bool { return s.Level >= 5 }},
	{"level_10", "👑 Expert", "Reached level 10",
		func(s models.UserStats) bool { return s.Level >= 10 }},

	{"pronunciation_first", "🎤 Voice Activated", "First pronunciation practice",
		func(s models.UserStats) bool { return s.PronunciationSessions >= 1 }},
	{"spelling_first", "📝 Wordsmith", "First spelling practice",
		func(s models.UserStats) bool { return s.SpellingSessions >= 1 }},
	{"perfect_pronunciation", "🏆 Perfect Pronunciation", "100% pronunciation score",
		func(s models.UserStats) bool { return s.BestPronunciationScore >= 100 }},
	{"perfect_spelling", "🏅 Spelling Bee", "100% spelling score",
		func(s models.UserStats) bool { return s.BestSpellingScore >= 100 }},
}

// EvaluateBadges returns the badges newly earned by stats that are not in
// current. The badge set is append-only: evaluating twice with the same
// inputs yields an empty delta the second time, and already-held badges
// are never re-timestamped.
func EvaluateBadges(stats models.UserStats, current []models.Badge, now time.Time) []models.Badge {
	held := make(map[string]bool, len(current))
	for _, b := range current {
		held[b.ID] = true
	}

	var earned []models.Badge
	for _, rule := range badgeRules {
		if held[rule.ID] || !rule.Earned(stats) {
			continue
		}
		earned = append(earned, models.Badge{
			ID:          rule.ID,
			Name:        rule.Name,
			Description: rule.Description,
			EarnedAt:    now,
		})
	}

	return earned
}
