package db

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/velkov/taskdeck/internal/models"
)

// TaskService is the authoritative CRUD and ordering layer for tasks and
// their subtasks.
type TaskService struct {
	db        *gorm.DB
	analytics *AnalyticsService
	logger    *zap.Logger
}

func NewTaskService(db *gorm.DB, analytics *AnalyticsService, logger *zap.Logger) *TaskService {
	return &TaskService{db: db, analytics: analytics, logger: logger}
}

// CreateTaskRequest holds the data needed to create a new task. Zero-valued
// fields fall back to the entity defaults (TODO, P4, inbox).
type CreateTaskRequest struct {
	Title             string
	Description       string
	Status            string
	Priority          string
	DueDate           *time.Time
	ProjectID         *string
	EstimatedDuration *int
	Category          string
}

// Create persists a new task and returns it.
func (s *TaskService) Create(req CreateTaskRequest) (*models.Task, error) {
	task := models.Task{
		Title:             req.Title,
		Description:       req.Description,
		Status:            defaultString(req.Status, models.StatusTodo),
		Priority:          defaultString(req.Priority, models.PriorityP4),
		Category:          defaultString(req.Category, models.CategoryInbox),
		DueDate:           req.DueDate,
		ProjectID:         req.ProjectID,
		EstimatedDuration: req.EstimatedDuration,
	}

	if err := s.db.Create(&task).Error; err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	return &task, nil
}

// GetByID returns the task with its subtasks, or nil when it does not exist.
// Absence is not an error.
func (s *TaskService) GetByID(id string) (*models.Task, error) {
	var task models.Task
	err := s.db.Preload("Subtasks").First(&task, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// TaskFilter narrows List results. Empty fields match everything.
type TaskFilter struct {
	Status    string
	ProjectID string
}

// List returns tasks ordered by manual position, newest-first on ties, each
// hydrated with its subtasks.
func (s *TaskService) List(filter TaskFilter) ([]models.Task, error) {
	q := s.db.Preload("Subtasks")
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.ProjectID != "" {
		q = q.Where("project_id = ?", filter.ProjectID)
	}

	var tasks []models.Task
	if err := q.Order("position ASC, created_at DESC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// TaskPatch is a partial update: only non-nil fields are written. The id,
// creation timestamp, and subtasks can never be patched.
type TaskPatch struct {
	Title             *string
	Description       *string
	Status            *string
	Priority          *string
	DueDate           *time.Time
	ProjectID         *string
	EstimatedDuration *int
	ActualDuration    *int
	Category          *string
	IsLocked          *bool
	TimerElapsed      *int
	Position          *int
}

func (p TaskPatch) changes() map[string]interface{} {
	ch := map[string]interface{}{}
	if p.Title != nil {
		ch["title"] = *p.Title
	}
	if p.Description != nil {
		ch["description"] = *p.Description
	}
	if p.Status != nil {
		ch["status"] = *p.Status
	}
	if p.Priority != nil {
		ch["priority"] = *p.Priority
	}
	if p.DueDate != nil {
		ch["due_date"] = *p.DueDate
	}
	if p.ProjectID != nil {
		ch["project_id"] = *p.ProjectID
	}
	if p.EstimatedDuration != nil {
		ch["estimated_duration"] = *p.EstimatedDuration
	}
	if p.ActualDuration != nil {
		ch["actual_duration"] = *p.ActualDuration
	}
	if p.Category != nil {
		ch["category"] = *p.Category
	}
	if p.IsLocked != nil {
		ch["is_locked"] = *p.IsLocked
	}
	if p.TimerElapsed != nil {
		ch["timer_elapsed"] = *p.TimerElapsed
	}
	if p.Position != nil {
		ch["position"] = *p.Position
	}
	return ch
}

// Update applies the set fields of patch in one write and returns the
// resulting task. An empty patch returns the current row untouched; an
// unknown id is a silent no-op returning nil.
func (s *TaskService) Update(id string, patch TaskPatch) (*models.Task, error) {
	ch := patch.changes()
	if len(ch) == 0 {
		return s.GetByID(id)
	}

	if err := s.db.Model(&models.Task{}).Where("id = ?", id).Updates(ch).Error; err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}

	return s.GetByID(id)
}

// Complete marks the task DONE and stamps completed_at, once. Completing an
// already-DONE task changes nothing. The daily completion counter is bumped
// as a side effect; its failure is logged, never rolled into the completion.
func (s *TaskService) Complete(id string) (*models.Task, error) {
	res := s.db.Model(&models.Task{}).
		Where("id = ? AND status <> ?", id, models.StatusDone).
		Updates(map[string]interface{}{
			"status":       models.StatusDone,
			"completed_at": time.Now(),
		})
	if res.Error != nil {
		return nil, fmt.Errorf("complete task: %w", res.Error)
	}

	if res.RowsAffected > 0 {
		if err := s.analytics.RecordCompletion(); err != nil {
			s.logger.Warn("failed to record completion in daily analytics",
				zap.String("task_id", id), zap.Error(err))
		}
	}

	return s.GetByID(id)
}

// Delete removes the task together with all of its subtasks and sessions in
// one transaction. A partial cascade never survives. Unknown ids are a
// silent no-op.
func (s *TaskService) Delete(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", id).Delete(&models.Subtask{}).Error; err != nil {
			return fmt.Errorf("delete subtasks: %w", err)
		}
		if err := tx.Where("task_id = ?", id).Delete(&models.Session{}).Error; err != nil {
			return fmt.Errorf("delete sessions: %w", err)
		}
		if err := tx.Delete(&models.Task{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("delete task: %w", err)
		}
		return nil
	})
}

// Reorder assigns position = index for exactly the ids given, all-or-nothing.
// Ids not present in the store are tolerated.
func (s *TaskService) Reorder(orderedIDs []string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		for i, id := range orderedIDs {
			if err := tx.Model(&models.Task{}).Where("id = ?", id).
				Update("position", i).Error; err != nil {
				return fmt.Errorf("reorder task %s: %w", id, err)
			}
		}
		return nil
	})
}

// AddSubtask appends a checklist line and returns the task's full subtask
// list. The parent task's own fields are untouched.
func (s *TaskService) AddSubtask(taskID, title string) ([]models.Subtask, error) {
	sub := models.Subtask{TaskID: taskID, Title: title}
	if err := s.db.Create(&sub).Error; err != nil {
		return nil, fmt.Errorf("add subtask: %w", err)
	}
	return s.Subtasks(taskID)
}

// Subtasks returns all subtasks of a task.
func (s *TaskService) Subtasks(taskID string) ([]models.Subtask, error) {
	var subs []models.Subtask
	if err := s.db.Where("task_id = ?", taskID).Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

// ToggleSubtask sets a subtask's completion state. Taking the desired state
// rather than flipping keeps retries idempotent.
func (s *TaskService) ToggleSubtask(id string, completed bool) error {
	return s.db.Model(&models.Subtask{}).Where("id = ?", id).
		Update("is_completed", completed).Error
}

// DeleteSubtask removes a single subtask.
func (s *TaskService) DeleteSubtask(id string) error {
	return s.db.Delete(&models.Subtask{}, "id = ?", id).Error
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
