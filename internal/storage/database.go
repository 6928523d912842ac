package storage

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SaveRecord is one key-value save slot. Values are JSON documents.
type SaveRecord struct {
	Key       string `gorm:"primaryKey;column:record_key"`
	Value     []byte `gorm:"type:blob"`
	UpdatedAt time.Time
}

// TableName keeps the table name stable regardless of the struct name.
func (SaveRecord) TableName() string { return "save_records" }

// OpenAndMigrate opens the sqlite database at dataSourceName and makes sure
// the save table exists. The parent directory is created for file paths.
func OpenAndMigrate(dataSourceName string) (*gorm.DB, error) {
	if !isMemoryDSN(dataSourceName) {
		if dir := filepath.Dir(dataSourceName); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, err
			}
		}
	}
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&SaveRecord{}); err != nil {
		return nil, err
	}
	return db, nil
}

func isMemoryDSN(dsn string) bool {
	return dsn == ":memory:" || strings.Contains(dsn, "mode=memory") || strings.HasPrefix(dsn, "file::memory:")
}
