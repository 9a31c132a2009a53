package utils

import (
	"time"

	"github.com/cppla/verdantlog/config"
	"github.com/cppla/verdantlog/footprint"
	"github.com/cppla/verdantlog/models"
)

// StartStreakAuditor launches a background goroutine that periodically
// rebuilds streak counters from the entry log and repairs rows that drifted
// (crashed transactions, manual data fixes). Best-effort; failures are logged.
func StartStreakAuditor(interval time.Duration) {
	if interval <= 0 {
		return
	}
	go func() {
		for {
			// Sleep first to avoid racing the initial migration at startup
			time.Sleep(interval)
			auditStreaksOnce()
		}
	}()
}

func auditStreaksOnce() {
	db := config.DB()
	if db == nil {
		return
	}

	var states []models.StreakState
	if err := db.Limit(500).Find(&states).Error; err != nil {
		Sugar.Warnf("streak audit query failed: %v", err)
		return
	}

	for _, state := range states {
		var dates []time.Time
		if err := db.Model(&models.ActivityEntry{}).
			Where("user_id = ?", state.UserID).
			Order("date ASC").
			Pluck("date", &dates).Error; err != nil {
			Sugar.Warnf("streak audit entries query failed user=%d: %v", state.UserID, err)
			continue
		}

		want := footprint.RebuildStreak(dates)
		if want.Current == state.CurrentStreak &&
			want.Best == state.BestStreak &&
			want.TotalEntries == state.TotalEntries {
			continue
		}

		state.CurrentStreak = want.Current
		state.BestStreak = want.Best
		state.TotalEntries = want.TotalEntries
		state.LastLoggedAt = want.LastLogged
		if err := db.Save(&state).Error; err != nil {
			Sugar.Warnf("streak audit repair failed user=%d: %v", state.UserID, err)
			continue
		}
		Sugar.Infof("streak audit repaired user=%d current=%d best=%d entries=%d",
			state.UserID, want.Current, want.Best, want.TotalEntries)
	}
}
