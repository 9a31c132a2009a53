package main

import (
	"time"

	"github.com/cppla/verdantlog/config"
	"github.com/cppla/verdantlog/models"
	"github.com/cppla/verdantlog/routes"
	"github.com/cppla/verdantlog/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	db := config.InitDatabase(&models.User{}, &models.ActivityEntry{}, &models.StreakState{})

	r := routes.SetupRouter(db)

	// Background repair of streak counters against the entry log (best-effort)
	utils.StartStreakAuditor(time.Duration(cfg.StreakAuditMinutes) * time.Minute)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
