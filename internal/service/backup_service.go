package service

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"fluento/internal/database"
)

// BackupData represents the complete database backup structure
type BackupData struct {
	Version      string           `json:"version"`
	ExportedAt   time.Time        `json:"exported_at"`
	DatabaseType string           `json:"database_type"`
	Users        []UserBackup     `json:"users"`
	Badges       []BadgeBackup    `json:"badges"`
	Practices    []PracticeBackup `json:"practices"`
}

// UserBackup represents a user record with its stats snapshot
type UserBackup struct {
	UID                    string     `json:"uid"`
	Email                  string     `json:"email"`
	DisplayName            string     `json:"display_name"`
	TotalXP                int        `json:"total_xp"`
	Streak                 int        `json:"streak"`
	LastPracticeDate       *time.Time `json:"last_practice_date"`
	PronunciationSessions  int        `json:"pronunciation_sessions"`
	SpellingSessions       int        `json:"spelling_sessions"`
	BestPronunciationScore int        `json:"best_pronunciation_score"`
	BestSpellingScore      int        `json:"best_spelling_score"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`
}

// BadgeBackup represents an earned badge record
type BadgeBackup struct {
	UserUID     string    `json:"user_uid"`
	BadgeID     string    `json:"badge_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	EarnedAt    time.Time `json:"earned_at"`
}

// PracticeBackup represents a logged practice attempt
type PracticeBackup struct {
	ID        string    `json:"id"`
	UserUID   string    `json:"user_uid"`
	Mode      string    `json:"mode"`
	Word      string    `json:"word"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

// BackupService handles database backup and restore operations
type BackupService struct {
	db *database.DB
}

// NewBackupService creates a new backup service
func NewBackupService(db *database.DB) *BackupService {
	return &BackupService{db: db}
}

// Export creates a complete backup of the database to a file
func (s *BackupService) Export(outputPath string) error {
	log.Println("Starting database export...")

	backup := &BackupData{
		Version:      "1.0",
		ExportedAt:   time.Now().UTC(),
		DatabaseType: "universal",
	}

	if err := s.exportUsers(backup); err != nil {
		return fmt.Errorf("failed to export users: %w", err)
	}
	if err := s.exportBadges(backup); err != nil {
		return fmt.Errorf("failed to export badges: %w", err)
	}
	if err := s.exportPractices(backup); err != nil {
		return fmt.Errorf("failed to export practice log: %w", err)
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(backup); err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}

	log.Printf("Database exported successfully to %s", outputPath)
	log.Printf("Exported: %d users, %d badges, %d practice entries",
		len(backup.Users), len(backup.Badges), len(backup.Practices))

	return nil
}

// Import restores a database from a backup file
func (s *BackupService) Import(inputPath string) error {
	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	return s.ImportFromReader(file)
}

// ImportFromReader restores a database from a backup stream
func (s *BackupService) ImportFromReader(reader io.Reader) error {
	var backup BackupData
	if err := json.NewDecoder(reader).Decode(&backup); err != nil {
		return fmt.Errorf("failed to decode backup: %w", err)
	}

	log.Printf("Backup version: %s, exported at: %s", backup.Version, backup.ExportedAt)

	// Import in order of dependencies
	if err := s.importUsers(backup.Users); err != nil {
		return fmt.Errorf("failed to import users: %w", err)
	}
	if err := s.importBadges(backup.Badges); err != nil {
		return fmt.Errorf("failed to import badges: %w", err)
	}
	if err := s.importPractices(backup.Practices); err != nil {
		return fmt.Errorf("failed to import practice log: %w", err)
	}

	log.Println("Database import completed successfully")
	return nil
}

func (s *BackupService) exportUsers(backup *BackupData) error {
	query := `
		SELECT uid, email, display_name, total_xp, streak, last_practice_date,
		       pronunciation_sessions, spelling_sessions,
		       best_pronunciation_score, best_spelling_score,
		       created_at, updated_at
		FROM users ORDER BY uid
	`
	rows, err := s.db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var u UserBackup
		if err := rows.Scan(&u.UID, &u.Email, &u.DisplayName, &u.TotalXP, &u.Streak,
			&u.LastPracticeDate, &u.PronunciationSessions, &u.SpellingSessions,
			&u.BestPronunciationScore, &u.BestSpellingScore, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return err
		}
		backup.Users = append(backup.Users, u)
	}
	return rows.Err()
}

func (s *BackupService) exportBadges(backup *BackupData) error {
	query := "SELECT user_uid, badge_id, name, description, earned_at FROM user_badges ORDER BY user_uid, earned_at"
	rows, err := s.db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var b BadgeBackup
		if err := rows.Scan(&b.UserUID, &b.BadgeID, &b.Name, &b.Description, &b.EarnedAt); err != nil {
			return err
		}
		backup.Badges = append(backup.Badges, b)
	}
	return rows.Err()
}

func (s *BackupService) exportPractices(backup *BackupData) error {
	query := "SELECT id, user_uid, mode, word, score, created_at FROM practice_log ORDER BY created_at"
	rows, err := s.db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var p PracticeBackup
		if err := rows.Scan(&p.ID, &p.UserUID, &p.Mode, &p.Word, &p.Score, &p.CreatedAt); err != nil {
			return err
		}
		backup.Practices = append(backup.Practices, p)
	}
	return rows.Err()
}

func (s *BackupService) importUsers(users []UserBackup) error {
	log.Printf("Importing %d users...", len(users))
	query := `
		INSERT INTO users (uid, email, display_name, total_xp, streak, last_practice_date,
		                   pronunciation_sessions, spelling_sessions,
		                   best_pronunciation_score, best_spelling_score,
		                   created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	for _, u := range users {
		_, err := s.db.Exec(query, u.UID, u.Email, u.DisplayName, u.TotalXP, u.Streak,
			u.LastPracticeDate, u.PronunciationSessions, u.SpellingSessions,
			u.BestPronunciationScore, u.BestSpellingScore, u.CreatedAt, u.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to import user %s: %w", u.UID, err)
		}
	}
	return nil
}

func (s *BackupService) importBadges(badges []BadgeBackup) error {
	log.Printf("Importing %d badges...", len(badges))
	query := "INSERT INTO user_badges (user_uid, badge_id, name, description, earned_at) VALUES (?, ?, ?, ?, ?)"
	for _, b := range badges {
		if _, err := s.db.Exec(query, b.UserUID, b.BadgeID, b.Name, b.Description, b.EarnedAt); err != nil {
			return fmt.Errorf("failed to import badge %s for %s: %w", b.BadgeID, b.UserUID, err)
		}
	}
	return nil
}

func (s *BackupService) importPractices(practices []PracticeBackup) error {
	log.Printf("Importing %d practice entries...", len(practices))
	query := "INSERT INTO practice_log (id, user_uid, mode, word, score, created_at) VALUES (?, ?, ?, ?, ?, ?)"
	for _, p := range practices {
		if _, err := s.db.Exec(query, p.ID, p.UserUID, p.Mode, p.Word, p.Score, p.CreatedAt); err != nil {
			return fmt.Errorf("failed to import practice entry %s: %w", p.ID, err)
		}
	}
	return nil
}
