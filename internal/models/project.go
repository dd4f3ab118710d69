package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project statuses
const (
	ProjectActive    = "ACTIVE"
	ProjectCompleted = "COMPLETED"
)

// Project groups tasks by reference. Deleting a project nullifies
// project_id on its tasks, it never deletes them.
type Project struct {
	ID        string    `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Name        string     `gorm:"not null" json:"name"`
	Description string     `json:"description"`
	Deadline    *time.Time `json:"deadline"`
	Status      string     `gorm:"default:ACTIVE" json:"status"`
	CompletedAt *time.Time `json:"completed_at"`
}

func (p *Project) BeforeCreate(*gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
