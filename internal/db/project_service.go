package db

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/velkov/taskdeck/internal/models"
)

// ProjectService handles CRUD for projects. Projects reference tasks loosely:
// removing a project detaches its tasks instead of deleting them.
type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

// CreateProjectRequest holds the data needed to create a project.
type CreateProjectRequest struct {
	Name        string
	Description string
	Deadline    *time.Time
}

func (s *ProjectService) Create(req CreateProjectRequest) (*models.Project, error) {
	project := models.Project{
		Name:        req.Name,
		Description: req.Description,
		Deadline:    req.Deadline,
		Status:      models.ProjectActive,
	}
	if err := s.db.Create(&project).Error; err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return &project, nil
}

// GetByID returns the project or nil when it does not exist.
func (s *ProjectService) GetByID(id string) (*models.Project, error) {
	var project models.Project
	err := s.db.First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// List returns projects newest first, optionally filtered by status.
func (s *ProjectService) List(status string) ([]models.Project, error) {
	q := s.db.Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var projects []models.Project
	if err := q.Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// ProjectPatch is a partial update; only non-nil fields are written.
type ProjectPatch struct {
	Name        *string
	Description *string
	Deadline    *time.Time
	Status      *string
}

// Update applies the set fields. Moving a project to COMPLETED stamps
// completed_at the first time only.
func (s *ProjectService) Update(id string, patch ProjectPatch) (*models.Project, error) {
	ch := map[string]interface{}{}
	if patch.Name != nil {
		ch["name"] = *patch.Name
	}
	if patch.Description != nil {
		ch["description"] = *patch.Description
	}
	if patch.Deadline != nil {
		ch["deadline"] = *patch.Deadline
	}
	if patch.Status != nil {
		ch["status"] = *patch.Status
		if *patch.Status == models.ProjectCompleted {
			ch["completed_at"] = gorm.Expr("COALESCE(completed_at, ?)", time.Now())
		}
	}
	if len(ch) == 0 {
		return s.GetByID(id)
	}

	if err := s.db.Model(&models.Project{}).Where("id = ?", id).Updates(ch).Error; err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	return s.GetByID(id)
}

// Delete nullifies project_id on every referencing task and removes the
// project row, atomically.
func (s *ProjectService) Delete(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Task{}).Where("project_id = ?", id).
			Update("project_id", nil).Error; err != nil {
			return fmt.Errorf("detach tasks: %w", err)
		}
		if err := tx.Delete(&models.Project{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("delete project: %w", err)
		}
		return nil
	})
}
