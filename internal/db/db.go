package db

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/velkov/taskdeck/internal/models"
)

// Open sets up the database connection and runs migrations.
//
// A migration failure is logged and tolerated so startup still succeeds;
// operations that touch the missing tables will then fail individually with
// storage errors instead of the whole tool refusing to start.
func Open(path string, logger *zap.Logger) (*gorm.DB, error) {
	if err := ensureDir(path); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent), // quiet by default
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Single local writer; also pins :memory: databases to one connection.
	if sqlDB, err := gdb.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}

	if err := migrate(gdb); err != nil {
		logger.Warn("schema migration failed, continuing degraded", zap.Error(err))
	}

	return gdb, nil
}

// ensureDir creates the parent directory for a file-backed database.
func ensureDir(path string) error {
	if strings.Contains(path, ":memory:") || strings.Contains(path, "mode=memory") {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&models.Task{},
		&models.Subtask{},
		&models.Session{},
		&models.Project{},
		&models.RecurringTask{},
		&models.DailyAnalytics{},
	)
}

// Close closes the underlying connection.
func Close(gdb *gorm.DB) error {
	if gdb == nil {
		return nil
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
