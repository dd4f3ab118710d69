package db

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/velkov/taskdeck/internal/models"
)

// SessionTracker enforces the single-active-session rule: at most one session
// system-wide has a nil end_time. The check-then-act around that rule is a
// critical section, guarded by a per-process mutex.
type SessionTracker struct {
	db        *gorm.DB
	tasks     *TaskService
	analytics *AnalyticsService
	logger    *zap.Logger

	mu sync.Mutex
}

func NewSessionTracker(db *gorm.DB, tasks *TaskService, analytics *AnalyticsService, logger *zap.Logger) *SessionTracker {
	return &SessionTracker{db: db, tasks: tasks, analytics: analytics, logger: logger}
}

// Active returns the currently running session, or nil if there is none.
func (t *SessionTracker) Active() (*models.Session, error) {
	var session models.Session
	err := t.db.Where("end_time IS NULL").First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// Start begins a focus session on the task. If that task is already the
// active one this is idempotent and returns the same session. If a different
// task is active, its session is stopped first with full stop side effects;
// sessions never overlap. Starting also moves the task to IN_PROGRESS.
func (t *SessionTracker) Start(taskID string) (*models.Session, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	active, err := t.Active()
	if err != nil {
		return nil, err
	}
	if active != nil {
		if active.TaskID == taskID {
			return active, nil
		}
		if _, err := t.stop(active.TaskID); err != nil {
			return nil, fmt.Errorf("stop previous session: %w", err)
		}
	}

	session := models.Session{TaskID: taskID, StartTime: time.Now()}
	if err := t.db.Create(&session).Error; err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}

	status := models.StatusInProgress
	if _, err := t.tasks.Update(taskID, TaskPatch{Status: &status}); err != nil {
		return nil, fmt.Errorf("mark task in progress: %w", err)
	}

	return &session, nil
}

// Stop closes the active session for the task. When there is no active
// session, or it belongs to a different task, Stop is a no-op returning nil.
func (t *SessionTracker) Stop(taskID string) (*models.Session, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stop(taskID)
}

func (t *SessionTracker) stop(taskID string) (*models.Session, error) {
	active, err := t.Active()
	if err != nil {
		return nil, err
	}
	if active == nil || active.TaskID != taskID {
		return nil, nil
	}

	now := time.Now()
	// Floor, never round: partial minutes were not actually completed.
	seconds := int(now.Sub(active.StartTime).Seconds())
	if seconds < 0 {
		seconds = 0
	}

	active.EndTime = &now
	active.DurationSeconds = seconds
	if err := t.db.Save(active).Error; err != nil {
		return nil, fmt.Errorf("stop session: %w", err)
	}

	minutes := seconds / 60
	if err := t.db.Model(&models.Task{}).Where("id = ?", taskID).
		Update("actual_duration", gorm.Expr("actual_duration + ?", minutes)).Error; err != nil {
		return nil, fmt.Errorf("accumulate task duration: %w", err)
	}

	if err := t.analytics.RecordFocusMinutes(minutes); err != nil {
		t.logger.Warn("failed to record focus minutes in daily analytics",
			zap.String("task_id", taskID), zap.Error(err))
	}

	return active, nil
}

// ListForTask returns every session of a task, open or closed, most recent
// first.
func (t *SessionTracker) ListForTask(taskID string) ([]models.Session, error) {
	var sessions []models.Session
	err := t.db.Where("task_id = ?", taskID).
		Order("start_time DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}
