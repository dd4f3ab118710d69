package db

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/velkov/taskdeck/internal/models"
)

// RecurringService manages stateless task templates.
type RecurringService struct {
	db    *gorm.DB
	tasks *TaskService
}

func NewRecurringService(db *gorm.DB, tasks *TaskService) *RecurringService {
	return &RecurringService{db: db, tasks: tasks}
}

// All returns every template, newest first.
func (s *RecurringService) All() ([]models.RecurringTask, error) {
	var templates []models.RecurringTask
	if err := s.db.Order("created_at DESC").Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}

// Create stores a new template.
func (s *RecurringService) Create(title, description, priority string) (*models.RecurringTask, error) {
	tpl := models.RecurringTask{
		Title:       title,
		Description: description,
		Priority:    defaultString(priority, models.PriorityP4),
	}
	if err := s.db.Create(&tpl).Error; err != nil {
		return nil, fmt.Errorf("create recurring template: %w", err)
	}
	return &tpl, nil
}

// Delete removes a template. The tasks it spawned are untouched.
func (s *RecurringService) Delete(id string) error {
	return s.db.Delete(&models.RecurringTask{}, "id = ?", id).Error
}

// Instantiate creates a fresh live task from a template. The template itself
// is never mutated. Returns nil when the template does not exist.
func (s *RecurringService) Instantiate(id, category string) (*models.Task, error) {
	var tpl models.RecurringTask
	err := s.db.First(&tpl, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return s.tasks.Create(CreateTaskRequest{
		Title:       tpl.Title,
		Description: tpl.Description,
		Priority:    tpl.Priority,
		Category:    defaultString(category, models.CategoryInbox),
	})
}
