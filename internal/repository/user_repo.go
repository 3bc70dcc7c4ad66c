package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"fluento/internal/database"
	"fluento/internal/models"
	"fluento/internal/progression"
)

// ErrUserNotFound is returned when no user exists for the given UID
var ErrUserNotFound = errors.New("user not found")

// UserRepository handles user and badge persistence. The stats snapshot is
// written back in a single UPDATE, so per-user write serialization is the
// database's concern, not this layer's.
type UserRepository struct {
	db database.DBTX
}

// NewUserRepository creates a new user repository
func NewUserRepository(db database.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// GetByUID retrieves a user and their stats snapshot
func (r *UserRepository) GetByUID(uid string) (*models.User, error) {
	query := `
		SELECT uid, email, display_name, total_xp, streak, last_practice_date,
		       pronunciation_sessions, spelling_sessions,
		       best_pronunciation_score, best_spelling_score,
		       created_at, updated_at
		FROM users
		WHERE uid = ?
	`

	user := &models.User{}
	var lastPractice sql.NullTime

	err := r.db.QueryRow(query, uid).Scan(
		&user.UID,
		&user.Email,
		&user.DisplayName,
		&user.Stats.TotalXP,
		&user.Stats.Streak,
		&lastPractice,
		&user.Stats.PronunciationSessions,
		&user.Stats.SpellingSessions,
		&user.Stats.BestPronunciationScore,
		&user.Stats.BestSpellingScore,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	if lastPractice.Valid {
		user.Stats.LastPracticeDate = &lastPractice.Time
	}
	// Level is derived, never stored
	user.Stats.Level = progression.Level(user.Stats.TotalXP)

	return user, nil
}

// Create inserts a new user with zeroed stats
func (r *UserRepository) Create(uid, email, displayName string) (*models.User, error) {
	if displayName == "" {
		displayName = strings.SplitN(email, "@", 2)[0]
	}

	now := time.Now().UTC()
	query := `
		INSERT INTO users (uid, email, display_name, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`
	if _, err := r.db.Exec(query, uid, email, displayName, now, now); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return r.GetByUID(uid)
}

// GetOrCreate returns the existing user or creates a fresh record
func (r *UserRepository) GetOrCreate(uid, email, displayName string) (*models.User, error) {
	user, err := r.GetByUID(uid)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}
	return r.Create(uid, email, displayName)
}

// SaveStats writes a full stats snapshot back in one statement
func (r *UserRepository) SaveStats(uid string, stats models.UserStats) error {
	query := `
		UPDATE users
		SET total_xp = ?, streak = ?, last_practice_date = ?,
		    pronunciation_sessions = ?, spelling_sessions = ?,
		    best_pronunciation_score = ?, best_spelling_score = ?,
		    updated_at = ?
		WHERE uid = ?
	`

	var lastPractice interface{}
	if stats.LastPracticeDate != nil {
		lastPractice = stats.LastPracticeDate.UTC()
	}

	result, err := r.db.Exec(query,
		stats.TotalXP,
		stats.Streak,
		lastPractice,
		stats.PronunciationSessions,
		stats.SpellingSessions,
		stats.BestPronunciationScore,
		stats.BestSpellingScore,
		time.Now().UTC(),
		uid,
	)
	if err != nil {
		return fmt.Errorf("failed to save stats: %w", err)
	}

	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return ErrUserNotFound
	}
	return nil
}

// GetBadges returns a user's badge set in the order earned
func (r *UserRepository) GetBadges(uid string) ([]models.Badge, error) {
	query := `
		SELECT badge_id, name, description, earned_at
		FROM user_badges
		WHERE user_uid = ?
		ORDER BY earned_at, badge_id
	`

	rows, err := r.db.Query(query, uid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var badges []models.Badge
	for rows.Next() {
		var b models.Badge
		if err := rows.Scan(&b.ID, &b.Name, &b.Description, &b.EarnedAt); err != nil {
			return nil, err
		}
		badges = append(badges, b)
	}
	return badges, rows.Err()
}

// AppendBadges inserts newly earned badges. The (user_uid, badge_id)
// uniqueness constraint keeps the set append-only even if two sessions
// race on the same badge.
func (r *UserRepository) AppendBadges(uid string, badges []models.Badge) error {
	query := `
		INSERT INTO user_badges (user_uid, badge_id, name, description, earned_at)
		VALUES (?, ?, ?, ?, ?)
	`
	for _, b := range badges {
		if _, err := r.db.Exec(query, uid, b.ID, b.Name, b.Description, b.EarnedAt.UTC()); err != nil {
			return fmt.Errorf("failed to append badge %s: %w", b.ID, err)
		}
	}
	return nil
}
