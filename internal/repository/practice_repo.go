package repository

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"fluento/internal/database"
	"fluento/internal/models"
)

// PracticeRepository logs completed practice sessions for analytics
type PracticeRepository struct {
	db database.DBTX
}

// NewPracticeRepository creates a new practice repository
func NewPracticeRepository(db database.DBTX) *PracticeRepository {
	return &PracticeRepository{db: db}
}

// Log records one practice attempt and returns the stored entry
func (r *PracticeRepository) Log(userUID string, mode models.Mode, word string, score int) (*models.PracticeLog, error) {
	entry := &models.PracticeLog{
		ID:        uuid.New().String(),
		UserUID:   userUID,
		Mode:      mode,
		Word:      word,
		Score:     score,
		CreatedAt: time.Now().UTC(),
	}

	query := `
		INSERT INTO practice_log (id, user_uid, mode, word, score, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query, entry.ID, entry.UserUID, string(entry.Mode), entry.Word, entry.Score, entry.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to log practice session: %w", err)
	}
	return entry, nil
}

// RecentForUser returns the user's most recent practice attempts
func (r *PracticeRepository) RecentForUser(userUID string, limit int) ([]models.PracticeLog, error) {
	query := `
		SELECT id, user_uid, mode, word, score, created_at
		FROM practice_log
		WHERE user_uid = ?
		ORDER BY created_at DESC
		LIMIT ?
	`

	rows, err := r.db.Query(query, userUID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []models.PracticeLog
	for rows.Next() {
		var entry models.PracticeLog
		var mode string
		if err := rows.Scan(&entry.ID, &entry.UserUID, &mode, &entry.Word, &entry.Score, &entry.CreatedAt); err != nil {
			return nil, err
		}
		entry.Mode = models.Mode(mode)
		logs = append(logs, entry)
	}
	return logs, rows.Err()
}
