package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cppla/verdantlog/config"
	"github.com/cppla/verdantlog/footprint"
	"github.com/cppla/verdantlog/models"
	"github.com/cppla/verdantlog/store"
	"github.com/cppla/verdantlog/utils"
)

const dateLayout = "2006-01-02"

// EntryController handles daily activity log endpoints.
type EntryController struct {
	db    *gorm.DB
	store *store.EntryStore
}

// NewEntryController creates a new controller instance.
func NewEntryController(db *gorm.DB) *EntryController {
	return &EntryController{db: db, store: store.NewEntryStore(db)}
}

// entryRequest carries one day's raw quantities. Negative quantities are
// rejected here so the emission model only ever sees sanitized input.
type entryRequest struct {
	Date             string  `json:"date" binding:"required"`
	ElectricityKWh   float64 `json:"electricity_kwh" binding:"omitempty,gte=0"`
	NaturalGasTherms float64 `json:"natural_gas_therms" binding:"omitempty,gte=0"`
	WaterGallons     float64 `json:"water_gallons" binding:"omitempty,gte=0"`
	CarMiles         float64 `json:"car_miles" binding:"omitempty,gte=0"`
	TransitMiles     float64 `json:"transit_miles" binding:"omitempty,gte=0"`
	ShortHaulFlights float64 `json:"short_haul_flights" binding:"omitempty,gte=0"`
	LongHaulFlights  float64 `json:"long_haul_flights" binding:"omitempty,gte=0"`
	MeatServings     float64 `json:"meat_servings" binding:"omitempty,gte=0"`
	DairyServings    float64 `json:"dairy_servings" binding:"omitempty,gte=0"`
	PlantServings    float64 `json:"plant_servings" binding:"omitempty,gte=0"`
}

// UpsertEntry records or replaces one day's activity log, computes the
// emission breakdown and advances the streak in a single transaction.
func (e *EntryController) UpsertEntry(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	var req entryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40020, "invalid request payload: quantities must be non-negative")
		return
	}

	date, err := time.ParseInLocation(dateLayout, strings.TrimSpace(req.Date), time.Local)
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40021, "invalid date, expected YYYY-MM-DD")
		return
	}

	entry := models.ActivityEntry{
		Date:             date,
		ElectricityKWh:   req.ElectricityKWh,
		NaturalGasTherms: req.NaturalGasTherms,
		WaterGallons:     req.WaterGallons,
		CarMiles:         req.CarMiles,
		TransitMiles:     req.TransitMiles,
		ShortHaulFlights: req.ShortHaulFlights,
		LongHaulFlights:  req.LongHaulFlights,
		MeatServings:     req.MeatServings,
		DairyServings:    req.DairyServings,
		PlantServings:    req.PlantServings,
	}

	stored, streak, err := e.store.PutEntry(userID, entry)
	if err != nil {
		utils.Sugar.Errorf("entry upsert failed user=%d date=%s: %v", userID, req.Date, err)
		utils.Error(ctx, http.StatusInternalServerError, 50020, "failed to save entry")
		return
	}

	// Stored summaries are stale now.
	utils.InvalidateByPrefix(summaryCachePrefix(userID))

	baseline := config.Get().BaselineDailyKg
	utils.Success(ctx, gin.H{
		"entry":  stored,
		"streak": streak,
		"comparison": gin.H{
			"baseline_kg":     baseline,
			"delta_percent":   (stored.TotalKg - baseline) / baseline * 100,
			"trees_to_offset": stored.TotalKg / footprint.TreeKgPerYear,
		},
	})
}

// ListEntries returns the user's entries in a date range, ascending.
func (e *EntryController) ListEntries(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	from, to, err := parseRange(ctx)
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40022, err.Error())
		return
	}

	entries, err := e.store.Entries(userID, from, to)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50021, "failed to load entries")
		return
	}

	utils.Success(ctx, gin.H{
		"from":    from.Format(dateLayout),
		"to":      to.Format(dateLayout),
		"entries": entries,
	})
}

// GetStreak returns the user's current streak counters.
func (e *EntryController) GetStreak(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	state, err := e.store.StreakState(userID)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50022, "failed to load streak")
		return
	}

	utils.Success(ctx, state)
}

// parseRange reads optional from/to query params (YYYY-MM-DD, both endpoints
// inclusive), defaulting to the last 30 days ending today.
func parseRange(ctx *gin.Context) (time.Time, time.Time, error) {
	now := footprint.DateOf(time.Now())
	from := now.AddDate(0, 0, -29)
	to := now

	if v := strings.TrimSpace(ctx.Query("from")); v != "" {
		t, err := time.ParseInLocation(dateLayout, v, time.Local)
		if err != nil {
			return from, to, fmt.Errorf("invalid from date, expected YYYY-MM-DD")
		}
		from = t
	}
	if v := strings.TrimSpace(ctx.Query("to")); v != "" {
		t, err := time.ParseInLocation(dateLayout, v, time.Local)
		if err != nil {
			return from, to, fmt.Errorf("invalid to date, expected YYYY-MM-DD")
		}
		to = t
	}
	if to.Before(from) {
		return from, to, fmt.Errorf("to date precedes from date")
	}
	return from, to, nil
}

func summaryCachePrefix(userID uint) string {
	return fmt.Sprintf("cache:summary:%d:", userID)
}
