package archive

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/velkov/taskdeck/internal/models"
)

// Engine relocates tasks that have aged out of their category's active window
// into durable archive buckets, then removes them from the live store.
//
// Category to archive type: inbox/today -> daily, week -> weekly,
// month -> monthly.
type Engine struct {
	db     *gorm.DB
	store  BucketStore
	logger *zap.Logger

	now func() time.Time
}

func NewEngine(db *gorm.DB, store BucketStore, logger *zap.Logger) *Engine {
	return &Engine{db: db, store: store, logger: logger, now: time.Now}
}

// AutoArchive sweeps every task whose reference timestamp (completed_at for
// DONE tasks, created_at otherwise) falls strictly before the start of the
// current window for its category:
//
//	inbox/today  start of today, local midnight
//	week         start of the current week, Sunday midnight
//	month        the 1st of the current month, midnight
//
// Returns the number of tasks archived and removed.
func (e *Engine) AutoArchive() (int, error) {
	var tasks []models.Task
	if err := e.db.Preload("Subtasks").Find(&tasks).Error; err != nil {
		return 0, fmt.Errorf("load tasks for archival: %w", err)
	}
	if len(tasks) == 0 {
		return 0, nil
	}

	now := e.now()
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfWeek := startOfToday.AddDate(0, 0, -int(startOfToday.Weekday()))
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var eligible []models.Task
	for _, task := range tasks {
		ref := referenceTime(task)

		var boundary time.Time
		switch task.Category {
		case models.CategoryMonth:
			boundary = startOfMonth
		case models.CategoryWeek:
			boundary = startOfWeek
		default: // today, inbox
			boundary = startOfToday
		}

		if ref.Before(boundary) {
			eligible = append(eligible, task)
		}
	}

	if len(eligible) == 0 {
		return 0, nil
	}
	return e.archive(eligible)
}

// ArchiveDone is the manual sweep: every DONE task is archived regardless of
// age or category boundary.
func (e *Engine) ArchiveDone() (int, error) {
	var tasks []models.Task
	if err := e.db.Preload("Subtasks").
		Where("status = ?", models.StatusDone).
		Find(&tasks).Error; err != nil {
		return 0, fmt.Errorf("load done tasks for archival: %w", err)
	}
	if len(tasks) == 0 {
		return 0, nil
	}
	return e.archive(tasks)
}

// referenceTime is the timestamp archival eligibility is judged against.
func referenceTime(task models.Task) time.Time {
	if task.Status == models.StatusDone && task.CompletedAt != nil {
		return *task.CompletedAt
	}
	return task.CreatedAt
}

type bucket struct {
	typ Type
	key string
}

// bucketFor assigns a task to exactly one (type, date key) bucket. The
// weekly key deliberately uses the historical week scheme
// ceil(dayOfYear/7) counted from Jan 1; changing it would re-address
// buckets that already exist on disk.
func bucketFor(category string, ref time.Time) bucket {
	switch category {
	case models.CategoryWeek:
		week := (ref.YearDay() + 6) / 7
		return bucket{TypeWeekly, fmt.Sprintf("%d-W%d", ref.Year(), week)}
	case models.CategoryMonth:
		return bucket{TypeMonthly, ref.Format("2006-01")}
	default: // today, inbox
		return bucket{TypeDaily, ref.Format("2006-01-02")}
	}
}

// archive groups the candidates into buckets, appends each group to its
// bucket file, and removes the archived tasks from the live store. All
// database deletions for one run share a transaction; a failure removing an
// individual task's tree is logged and only excluded from the count, because
// its snapshot is already durable on disk and a re-run can finish the job.
func (e *Engine) archive(tasks []models.Task) (int, error) {
	buckets := map[bucket][]models.Task{}
	for _, task := range tasks {
		ref := e.now()
		if task.CompletedAt != nil {
			ref = *task.CompletedAt
		}
		b := bucketFor(task.Category, ref)
		buckets[b] = append(buckets[b], task)
	}

	archived := 0
	err := e.db.Transaction(func(tx *gorm.DB) error {
		for b, group := range buckets {
			existing, err := e.store.Read(b.typ, b.key)
			if err != nil {
				// An unreadable bucket is appended to from scratch rather
				// than aborting the sweep, matching the tolerant protocol.
				e.logger.Error("failed to read archive bucket",
					zap.String("type", string(b.typ)), zap.String("key", b.key), zap.Error(err))
				existing = nil
			}

			if err := e.store.Write(b.typ, b.key, append(existing, group...)); err != nil {
				return err
			}

			for _, task := range group {
				if err := deleteTaskTree(tx, task.ID); err != nil {
					e.logger.Error("failed to remove archived task",
						zap.String("task_id", task.ID), zap.Error(err))
					continue
				}
				archived++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return archived, nil
}

// deleteTaskTree removes a task and its dependents: sessions, then subtasks,
// then the task row.
func deleteTaskTree(tx *gorm.DB, taskID string) error {
	if err := tx.Where("task_id = ?", taskID).Delete(&models.Session{}).Error; err != nil {
		return fmt.Errorf("delete sessions: %w", err)
	}
	if err := tx.Where("task_id = ?", taskID).Delete(&models.Subtask{}).Error; err != nil {
		return fmt.Errorf("delete subtasks: %w", err)
	}
	if err := tx.Delete(&models.Task{}, "id = ?", taskID).Error; err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

// Archived returns the snapshots stored in one bucket. A bucket that was
// never written yields an empty list.
func (e *Engine) Archived(t Type, dateKey string) ([]models.Task, error) {
	return e.store.Read(t, dateKey)
}

// Keys returns the available bucket date keys for an archive type, newest
// first.
func (e *Engine) Keys(t Type) ([]string, error) {
	return e.store.Keys(t)
}
