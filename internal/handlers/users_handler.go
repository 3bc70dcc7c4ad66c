package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"fluento/internal/models"
	"fluento/internal/progression"
	"fluento/internal/repository"
	"fluento/internal/service"
)

// UsersHandler serves user profiles, stats and session logging
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler creates a new users handler
func NewUsersHandler(users *service.UserService) *UsersHandler {
	return &UsersHandler{users: users}
}

type syncUserRequest struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

// Sync creates or refreshes the user record after a successful login
func (h *UsersHandler) Sync(w http.ResponseWriter, r *http.Request) {
	var req syncUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	if strings.TrimSpace(req.UID) == "" || strings.TrimSpace(req.Email) == "" {
		respondWithError(w, http.StatusBadRequest, "uid and email are required", "", nil)
		return
	}

	user, err := h.users.Sync(req.UID, req.Email, req.DisplayName)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to sync user", "User sync failed", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "User synced successfully",
		"user_id": user.UID,
	})
}

// Profile returns the user's profile with stats and badges
func (h *UsersHandler) Profile(w http.ResponseWriter, r *http.Request) {
	uid := UserUIDFromContext(r.Context())

	user, badges, err := h.users.Profile(uid)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			respondWithError(w, http.StatusNotFound, "User not found. Please sync your account first.", "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to load profile", "Profile lookup failed", err)
		return
	}

	if badges == nil {
		badges = []models.Badge{}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"id":           user.UID,
		"email":        user.Email,
		"display_name": user.DisplayName,
		"stats":        user.Stats,
		"badges":       badges,
	})
}

// Stats returns the user's stats snapshot only
func (h *UsersHandler) Stats(w http.ResponseWriter, r *http.Request) {
	uid := UserUIDFromContext(r.Context())

	user, _, err := h.users.Profile(uid)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			respondWithError(w, http.StatusNotFound, "User not found", "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to load stats", "Stats lookup failed", err)
		return
	}

	respondJSON(w, http.StatusOK, user.Stats)
}

type updateStatsRequest struct {
	XPEarned int    `json:"xp_earned"`
	Mode     string `json:"mode"`
}

// UpdateStats applies a completed practice session to the user's stats
func (h *UsersHandler) UpdateStats(w http.ResponseWriter, r *http.Request) {
	uid := UserUIDFromContext(r.Context())

	var req updateStatsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	if req.XPEarned < 0 || req.XPEarned > 100 {
		respondWithError(w, http.StatusBadRequest, "xp_earned must be between 0 and 100", "", nil)
		return
	}

	mode := models.Mode(req.Mode)
	if !mode.IsValid() {
		respondWithError(w, http.StatusBadRequest, "Mode must be 'pronunciation' or 'spelling'", "", nil)
		return
	}

	update, err := h.users.ApplySession(uid, req.XPEarned, mode)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			respondWithError(w, http.StatusNotFound, "User not found", "", nil)
		case errors.Is(err, progression.ErrInvalidMode):
			respondWithError(w, http.StatusBadRequest, "Mode must be 'pronunciation' or 'spelling'", "", nil)
		default:
			respondWithError(w, http.StatusInternalServerError, "Failed to update stats", "Stats update failed", err)
		}
		return
	}

	if update.Badges == nil {
		update.Badges = []models.Badge{}
	}
	respondJSON(w, http.StatusOK, update)
}

type logSessionRequest struct {
	Word  string `json:"word"`
	Mode  string `json:"mode"`
	Score int    `json:"score"`
}

// LogSession records a practice attempt and updates the best score for the
// mode when beaten.
func (h *UsersHandler) LogSession(w http.ResponseWriter, r *http.Request) {
	uid := UserUIDFromContext(r.Context())

	var req logSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", err)
		return
	}

	mode := models.Mode(req.Mode)
	if !mode.IsValid() {
		respondWithError(w, http.StatusBadRequest, "Mode must be 'pronunciation' or 'spelling'", "", nil)
		return
	}
	if req.Score < 0 || req.Score > 100 {
		respondWithError(w, http.StatusBadRequest, "score must be between 0 and 100", "", nil)
		return
	}
	if strings.TrimSpace(req.Word) == "" {
		respondWithError(w, http.StatusBadRequest, "word is required", "", nil)
		return
	}

	if err := h.users.LogSession(uid, mode, req.Word, req.Score); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			respondWithError(w, http.StatusNotFound, "User not found", "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to log session", "Session logging failed", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Session logged successfully"})
}

// Sessions returns the user's most recent practice attempts
func (h *UsersHandler) Sessions(w http.ResponseWriter, r *http.Request) {
	uid := UserUIDFromContext(r.Context())

	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 100 {
			respondWithError(w, http.StatusBadRequest, "limit must be between 1 and 100", "", nil)
			return
		}
		limit = n
	}

	logs, err := h.users.RecentSessions(uid, limit)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load sessions", "Session lookup failed", err)
		return
	}

	if logs == nil {
		logs = []models.PracticeLog{}
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"sessions": logs})
}
