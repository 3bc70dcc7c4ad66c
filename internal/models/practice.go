package models

import "time"

// PracticeLog records one completed practice attempt for analytics
type PracticeLog struct {
	ID        string    `json:"id"`
	UserUID   string    `json:"user_id"`
	Mode      Mode      `json:"mode"`
	Word      string    `json:"word"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}
