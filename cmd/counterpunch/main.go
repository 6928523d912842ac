package main

import (
	"os"

	"github.com/gin-gonic/gin"

	"github.com/kawertyff-source/Simungboxing-128/internal/api"
	"github.com/kawertyff-source/Simungboxing-128/internal/arena"
	"github.com/kawertyff-source/Simungboxing-128/internal/config"
	"github.com/kawertyff-source/Simungboxing-128/internal/constants"
	"github.com/kawertyff-source/Simungboxing-128/internal/logging"
	"github.com/kawertyff-source/Simungboxing-128/internal/service"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		logging.Fatal("Failed to load .env file", err, nil)
	}
	checkEnvVars([]string{constants.EnvGoogleClientID, constants.EnvGoogleClientSecret})
	if os.Getenv(constants.EnvSessionSecret) == "" {
		logging.Warn("SESSION_SECRET not set; sessions will not survive a restart", nil)
	}

	cfg := loadConfigOrExit()

	// COUNTERPUNCH_DB wins over database_path from the config file.
	dbPath := os.Getenv(constants.EnvDBPath)
	if dbPath == "" {
		dbPath = cfg.DatabasePath
	}
	repo := createRepositoryOrExit(dbPath)

	profiles := service.NewProfiles(repo)
	arenas := arena.NewManager(profiles, cfg.Tuning, cfg.TickHz)
	handler := api.NewHandler(profiles, arenas, cfg.Tuning, cfg.Loot, cfg.TickHz, nil)
	authHandler := api.NewAuthHandler(profiles)

	router := gin.Default()
	api.RegisterRoutes(router, handler, authHandler)

	runServer(cfg.ServerAddress, router, arenas)
}

func checkEnvVars(vars []string) {
	for _, v := range vars {
		if os.Getenv(v) == "" {
			logging.Fatal("Required environment variable not set", nil, logging.Fields{"var": v})
		}
	}
}
