package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cppla/verdantlog/config"
	"github.com/cppla/verdantlog/footprint"
	"github.com/cppla/verdantlog/store"
	"github.com/cppla/verdantlog/utils"
)

// DashboardController serves history summaries derived from stored entries.
type DashboardController struct {
	db    *gorm.DB
	store *store.EntryStore
}

// NewDashboardController creates a new controller instance.
func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{db: db, store: store.NewEntryStore(db)}
}

// Summary aggregates the user's entries over a range: category breakdown,
// trend series and baseline comparison. Cached in Redis per user and range;
// entry writes invalidate the cache.
func (d *DashboardController) Summary(ctx *gin.Context) {
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

	key := fmt.Sprintf("%s%s:%s", summaryCachePrefix(userID), from.Format(dateLayout), to.Format(dateLayout))
	if b, ok := utils.CacheGetBytes(key); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	entries, err := d.store.Entries(userID, from, to)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50023, "failed to load entries")
		return
	}

	cfg := config.Get()
	summary := footprint.Summarize(entries, from, to, cfg.BaselineDailyKg)

	wrapper := utils.JSONResponse{Code: 0, Message: "success", Data: summary}
	utils.CacheSetJSON(key, wrapper, time.Duration(cfg.SummaryCacheTTLSec)*time.Second)
	utils.Success(ctx, summary)
}
