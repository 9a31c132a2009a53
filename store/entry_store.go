// Package store is the persistence boundary around the footprint engine.
// The core packages never touch gorm; all reads and writes flow through here.
package store

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/cppla/verdantlog/footprint"
	"github.com/cppla/verdantlog/models"
)

// EntryStore persists activity entries and streak state per user.
type EntryStore struct {
	db *gorm.DB
}

// NewEntryStore creates an EntryStore.
func NewEntryStore(db *gorm.DB) *EntryStore {
	return &EntryStore{db: db}
}

// Entries returns a user's entries within [from, to], ascending by date.
func (s *EntryStore) Entries(userID uint, from, to time.Time) ([]models.ActivityEntry, error) {
	var entries []models.ActivityEntry
	err := s.db.
		Where("user_id = ? AND date >= ? AND date <= ?",
			userID, footprint.DateOf(from), footprint.DateOf(to)).
		Order("date ASC").
		Find(&entries).Error
	return entries, err
}

// StreakState returns the user's streak row, or the zero-value state when the
// user has never logged.
func (s *EntryStore) StreakState(userID uint) (models.StreakState, error) {
	var state models.StreakState
	err := s.db.Where("user_id = ?", userID).First(&state).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.StreakState{UserID: userID}, nil
	}
	return state, err
}

// PutEntry upserts one day's entry with its computed breakdown and advances
// the streak counters in the same transaction. Resubmitting an existing date
// replaces the prior quantities (last write wins) without advancing the
// streak. Returns the stored entry and the refreshed streak state.
func (s *EntryStore) PutEntry(userID uint, entry models.ActivityEntry) (models.ActivityEntry, models.StreakState, error) {
	entry.UserID = userID
	entry.Date = footprint.DateOf(entry.Date)
	entry.EmissionBreakdown = footprint.Compute(entry)

	var state models.StreakState
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", userID).First(&state).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			state = models.StreakState{UserID: userID}
			if err := tx.Create(&state).Error; err != nil {
				return err
			}
		}

		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"electricity_kwh", "natural_gas_therms", "water_gallons",
				"car_miles", "transit_miles", "short_haul_flights", "long_haul_flights",
				"meat_servings", "dairy_servings", "plant_servings",
				"home_energy_kg", "transportation_kg", "food_kg", "total_kg",
				"updated_at",
			}),
		}).Create(&entry).Error; err != nil {
			return err
		}

		next := footprint.AdvanceStreak(footprint.StreakCounters{
			Current:      state.CurrentStreak,
			Best:         state.BestStreak,
			TotalEntries: state.TotalEntries,
			LastLogged:   state.LastLoggedAt,
		}, entry.Date)

		state.CurrentStreak = next.Current
		state.BestStreak = next.Best
		state.TotalEntries = next.TotalEntries
		state.LastLoggedAt = next.LastLogged
		return tx.Save(&state).Error
	})
	if err != nil {
		return models.ActivityEntry{}, models.StreakState{}, err
	}
	return entry, state, nil
}
