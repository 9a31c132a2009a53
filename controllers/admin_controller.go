package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cppla/verdantlog/footprint"
	"github.com/cppla/verdantlog/models"
	"github.com/cppla/verdantlog/utils"
)

// AdminController provides system-wide statistics and management views.
type AdminController struct {
	db *gorm.DB
}

// NewAdminController creates a new AdminController instance.
func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{db: db}
}

// ListUsers returns paginated users, newest first.
func (a *AdminController) ListUsers(ctx *gin.Context) {
	var users []models.User
	var total int64

	page, pageSize := pagination(ctx)

	if err := a.db.Model(&models.User{}).Count(&total).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50040, "failed to count users")
		return
	}

	if err := a.db.Order("created_at DESC").Offset((page - 1) * pageSize).Limit(pageSize).Find(&users).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50041, "failed to retrieve users")
		return
	}

	utils.Success(ctx, gin.H{
		"items": users,
		"pagination": gin.H{
			"page":        page,
			"page_size":   pageSize,
			"total":       total,
			"total_pages": int((total + int64(pageSize) - 1) / int64(pageSize)),
		},
	})
}

// adminEntryRow joins an entry with its owner's username for the data view.
type adminEntryRow struct {
	models.ActivityEntry
	Username string `json:"username"`
}

// ListEntries returns all users' entries, newest first, paginated.
func (a *AdminController) ListEntries(ctx *gin.Context) {
	var rows []adminEntryRow
	var total int64

	page, pageSize := pagination(ctx)

	if err := a.db.Model(&models.ActivityEntry{}).Count(&total).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50042, "failed to count entries")
		return
	}

	if err := a.db.Model(&models.ActivityEntry{}).
		Select("activity_entries.*, users.username").
		Joins("JOIN users ON users.id = activity_entries.user_id").
		Order("activity_entries.date DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Scan(&rows).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50043, "failed to retrieve entries")
		return
	}

	utils.Success(ctx, gin.H{
		"items": rows,
		"pagination": gin.H{
			"page":        page,
			"page_size":   pageSize,
			"total":       total,
			"total_pages": int((total + int64(pageSize) - 1) / int64(pageSize)),
		},
	})
}

// SystemStats returns aggregate statistics across all users.
func (a *AdminController) SystemStats(ctx *gin.Context) {
	var userCount int64
	var entryCount int64
	var activeUsers int64
	var totalCarbon float64
	var entriesThisWeek int64

	if err := a.db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		// Fall back to 0 instead of failing the whole endpoint
		userCount = 0
	}
	if err := a.db.Model(&models.ActivityEntry{}).Count(&entryCount).Error; err != nil {
		entryCount = 0
	}
	if err := a.db.Model(&models.ActivityEntry{}).
		Distinct("user_id").Count(&activeUsers).Error; err != nil {
		activeUsers = 0
	}
	if err := a.db.Model(&models.ActivityEntry{}).
		Select("COALESCE(SUM(total_kg),0)").Scan(&totalCarbon).Error; err != nil {
		totalCarbon = 0
	}

	weekAgo := footprint.DateOf(time.Now()).AddDate(0, 0, -6)
	if err := a.db.Model(&models.ActivityEntry{}).
		Where("date >= ?", weekAgo).Count(&entriesThisWeek).Error; err != nil {
		entriesThisWeek = 0
	}

	// Daily system-wide totals for the last 30 days.
	type dailyTotal struct {
		Date    time.Time `json:"date"`
		TotalKg float64   `json:"total_kg"`
	}
	var daily []dailyTotal
	monthAgo := footprint.DateOf(time.Now()).AddDate(0, 0, -29)
	if err := a.db.Model(&models.ActivityEntry{}).
		Select("date, COALESCE(SUM(total_kg),0) AS total_kg").
		Where("date >= ?", monthAgo).
		Group("date").Order("date ASC").
		Scan(&daily).Error; err != nil {
		daily = nil
	}

	// Most active users, top five by entry count.
	type activeUser struct {
		Username string `json:"username"`
		Entries  int64  `json:"entries"`
	}
	var topUsers []activeUser
	if err := a.db.Model(&models.ActivityEntry{}).
		Select("users.username, COUNT(*) AS entries").
		Joins("JOIN users ON users.id = activity_entries.user_id").
		Group("users.username").Order("entries DESC").Limit(5).
		Scan(&topUsers).Error; err != nil {
		topUsers = nil
	}

	avgPerEntry := 0.0
	if entryCount > 0 {
		avgPerEntry = totalCarbon / float64(entryCount)
	}

	utils.Success(ctx, gin.H{
		"user_count":        userCount,
		"entry_count":       entryCount,
		"active_users":      activeUsers,
		"total_carbon_kg":   totalCarbon,
		"avg_per_entry_kg":  avgPerEntry,
		"entries_this_week": entriesThisWeek,
		"daily_totals":      daily,
		"most_active_users": topUsers,
	})
}

func pagination(ctx *gin.Context) (page, pageSize int) {
	page, pageSize = 1, 10
	if v := strings.TrimSpace(ctx.Query("page")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}
	if v := strings.TrimSpace(ctx.Query("page_size")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			pageSize = n
		}
	}
	return page, pageSize
}
