package main

import (
	"os"

	"github.com/kawertyff-source/Simungboxing-128/internal/config"
	"github.com/kawertyff-source/Simungboxing-128/internal/constants"
	"github.com/kawertyff-source/Simungboxing-128/internal/logging"
	"github.com/kawertyff-source/Simungboxing-128/internal/storage"
)

// loadConfigOrExit reads COUNTERPUNCH_CONFIG when set (the file must exist)
// and otherwise the default path, where a missing file means defaults.
func loadConfigOrExit() *config.LoadedConfig {
	path := os.Getenv(constants.EnvConfigPath)
	var (
		cfg *config.LoadedConfig
		err error
	)
	if path != "" {
		cfg, err = config.LoadConfig(path)
	} else {
		path = constants.DefaultConfigPath
		cfg, err = config.LoadConfigOrDefault(path)
	}
	if err != nil {
		logging.Fatal("Missing or invalid counterpunch configuration", err, logging.Fields{
			constants.LogFieldPath: path,
			"hint":                 "optional keys: server.address, database_path, tick_hz, combat{...}, loot{...}",
		})
	}
	return cfg
}

func createRepositoryOrExit(dbPath string) storage.Repository {
	db, err := storage.OpenAndMigrate(dbPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, logging.Fields{constants.LogFieldPath: dbPath})
	}
	return storage.NewSQLiteRepository(db)
}
