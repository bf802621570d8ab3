package db

import (
	"errors"
	"fmt"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"controlecompras/internal/models"
)

// ConnectAndMigrate opens the SQLite store and brings the schema up to date.
// The returned handle is owned by the caller; nothing in this package keeps
// a process-wide connection alive.
func ConnectAndMigrate(path string) (*gorm.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("DB_PATH est vazio, verifique a configuração do ambiente")
	}
	logLevel := logger.Silent
	if os.Getenv("DB_DEBUG") == "1" {
		logLevel = logger.Info
	}
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logLevel)}
	db, err := gorm.Open(sqlite.Open(path), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}

	// Basic connectivity test
	if pingErr := db.Exec("SELECT 1").Error; pingErr != nil {
		return nil, fmt.Errorf("db ping failed: %w", pingErr)
	}

	for _, m := range []interface{}{&models.Company{}, &models.Item{}} {
		if migErr := db.AutoMigrate(m); migErr != nil {
			return nil, fmt.Errorf("automigrate %T: %w", m, migErr)
		}
	}

	// sanity check: ensure required core tables exist
	for _, table := range []string{"configuracao_empresa", "itens"} {
		if !db.Migrator().HasTable(table) {
			return nil, errors.New("missing table after migration: " + table)
		}
	}
	return db, nil
}
