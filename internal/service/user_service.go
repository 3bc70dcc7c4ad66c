package service

import (
	"context"
	"log"
	"time"

	"fluento/internal/models"
	"fluento/internal/progression"
	"fluento/internal/repository"
)

// SessionUpdate is the outcome of applying one practice session to a user
type SessionUpdate struct {
	TotalXP  int            `json:"total_xp"`
	Level    int            `json:"level"`
	Streak   int            `json:"streak"`
	XPEarned int            `json:"xp_earned"`
	Badges   []models.Badge `json:"badges"`
}

// UserService orchestrates user progression: it loads a consistent
// snapshot, runs the pure progression and badge engines over it, and
// persists the new snapshot. It takes no locks itself; concurrent sessions
// for one user are serialized (or not) by the storage engine.
type UserService struct {
	users    *repository.UserRepository
	practice *repository.PracticeRepository
	email    *EmailService
}

// NewUserService creates a new user service
func NewUserService(users *repository.UserRepository, practice *repository.PracticeRepository, email *EmailService) *UserService {
	return &UserService{users: users, practice: practice, email: email}
}

// Sync creates the user record on first login, or returns the existing one
func (s *UserService) Sync(uid, email, displayName string) (*models.User, error) {
	return s.users.GetOrCreate(uid, email, displayName)
}

// Profile returns a user together with their badge set
func (s *UserService) Profile(uid string) (*models.User, []models.Badge, error) {
	user, err := s.users.GetByUID(uid)
	if err != nil {
		return nil, nil, err
	}

	badges, err := s.users.GetBadges(uid)
	if err != nil {
		return nil, nil, err
	}
	return user, badges, nil
}

// ApplySession applies a completed practice session: XP, level, streak and
// session counters, then badge evaluation. Newly earned badges are
// appended and announced by email (best effort).
func (s *UserService) ApplySession(uid string, xpEarned int, mode models.Mode) (*SessionUpdate, error) {
	user, err := s.users.GetByUID(uid)
	if err != nil {
		return nil, err
	}

	badges, err := s.users.GetBadges(uid)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	stats, err := progression.ApplySession(user.Stats, xpEarned, mode, now)
	if err != nil {
		return nil, err
	}

	newBadges := progression.EvaluateBadges(stats, badges, now)

	if err := s.users.SaveStats(uid, stats); err != nil {
		return nil, err
	}
	if err := s.users.AppendBadges(uid, newBadges); err != nil {
		return nil, err
	}

	if len(newBadges) > 0 && s.email != nil {
		go s.notifyBadges(user, newBadges)
	}

	return &SessionUpdate{
		TotalXP:  stats.TotalXP,
		Level:    stats.Level,
		Streak:   stats.Streak,
		XPEarned: xpEarned,
		Badges:   append(badges, newBadges...),
	}, nil
}

// LogSession records a practice attempt and raises the best score for the
// mode when beaten. Badge evaluation happens on the next stats update, as
// the best-score change alone never lowers anything.
func (s *UserService) LogSession(uid string, mode models.Mode, word string, score int) error {
	user, err := s.users.GetByUID(uid)
	if err != nil {
		return err
	}

	stats := progression.UpdateBestScore(user.Stats, mode, score)
	if stats != user.Stats {
		if err := s.users.SaveStats(uid, stats); err != nil {
			return err
		}
	}

	_, err = s.practice.Log(uid, mode, word, score)
	return err
}

// RecentSessions returns the user's latest practice log entries
func (s *UserService) RecentSessions(uid string, limit int) ([]models.PracticeLog, error) {
	return s.practice.RecentForUser(uid, limit)
}

func (s *UserService) notifyBadges(user *models.User, badges []models.Badge) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := s.email.SendBadgeEmail(ctx, user.Email, user.DisplayName, badges); err != nil {
		log.Printf("Failed to send badge email to %s: %v", user.Email, err)
	}
}
