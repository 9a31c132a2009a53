package models

import "time"

// StreakState tracks consecutive-day logging per user. One row per user,
// mutated only through the footprint streak transition inside the entry
// upsert transaction.
type StreakState struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	UserID        uint       `gorm:"uniqueIndex;not null" json:"user_id"`
	CurrentStreak int        `gorm:"not null;default:0" json:"current_streak"`
	BestStreak    int        `gorm:"not null;default:0" json:"best_streak"`
	LastLoggedAt  *time.Time `gorm:"type:date" json:"last_logged_at"`
	TotalEntries  int        `gorm:"not null;default:0" json:"total_entries"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
