package datastore

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// SQLiteStore implements Interface for SQLite
type SQLiteStore struct {
	DataStore
}

// Open sets up the SQLite database connection and migrates the schema.
func (store *SQLiteStore) Open() error {
	path := store.Settings.Storage.SQLite.Path
	if path == "" {
		return validationError("sqlite path is not configured", "storage.sqlite.path")
	}

	logMode := gormlogger.Default.LogMode(gormlogger.Silent)
	if store.Settings.Debug {
		logMode = gormlogger.Default.LogMode(gormlogger.Info)
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logMode})
	if err != nil {
		return dbError(fmt.Errorf("failed to open SQLite database at %s: %w", path, err), "open")
	}

	if err := db.AutoMigrate(&Entry{}); err != nil {
		return dbError(fmt.Errorf("failed to migrate schema: %w", err), "auto_migrate")
	}

	store.DB = db
	getLogger().Info("sqlite store opened", "path", path)
	return nil
}

// Close releases the underlying SQLite connection.
func (store *SQLiteStore) Close() error {
	if store.DB == nil {
		return nil
	}
	sqlDB, err := store.DB.DB()
	if err != nil {
		return dbError(err, "close")
	}
	return sqlDB.Close()
}
