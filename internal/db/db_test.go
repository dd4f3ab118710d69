package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/velkov/taskdeck/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := Open(":memory:", zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(gdb) })
	return gdb
}

// newTestServices wires the full service graph against an in-memory store.
func newTestServices(t *testing.T) (*gorm.DB, *TaskService, *SessionTracker, *AnalyticsService) {
	t.Helper()
	gdb := newTestDB(t)
	analytics := NewAnalyticsService(gdb)
	tasks := NewTaskService(gdb, analytics, zap.NewNop())
	sessions := NewSessionTracker(gdb, tasks, analytics, zap.NewNop())
	return gdb, tasks, sessions, analytics
}

func TestOpenMigratesSchema(t *testing.T) {
	gdb := newTestDB(t)

	for _, model := range []interface{}{
		&models.Task{}, &models.Subtask{}, &models.Session{},
		&models.Project{}, &models.RecurringTask{}, &models.DailyAnalytics{},
	} {
		require.True(t, gdb.Migrator().HasTable(model), "missing table for %T", model)
	}
}

func TestOpenCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "taskdeck.db")
	gdb, err := Open(path, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, Close(gdb))

	// Reopening an existing file re-runs migrations as a no-op.
	gdb, err = Open(path, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, Close(gdb))
}
