package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecurringTask is a stateless template. It is instantiated into a concrete
// Task on demand and is never itself archived or executed.
type RecurringTask struct {
	ID        string    `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	Priority    string `gorm:"default:P4" json:"priority"`
}

func (r *RecurringTask) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
