package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Task statuses
const (
	StatusTodo       = "TODO"
	StatusInProgress = "IN_PROGRESS"
	StatusBlocked    = "BLOCKED"
	StatusDone       = "DONE"
)

// Task priorities, P1 is highest
const (
	PriorityP1 = "P1"
	PriorityP2 = "P2"
	PriorityP3 = "P3"
	PriorityP4 = "P4"
)

// Task categories: the time horizon a task lives in. The category decides
// which archive bucket the task eventually rolls into.
const (
	CategoryInbox = "inbox"
	CategoryToday = "today"
	CategoryWeek  = "week"
	CategoryMonth = "month"
)

// Task represents a tracked todo item
type Task struct {
	ID        string    `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Title             string     `gorm:"not null" json:"title"`
	Description       string     `json:"description"`
	Status            string     `gorm:"default:TODO" json:"status"`
	Priority          string     `gorm:"default:P4" json:"priority"`
	DueDate           *time.Time `json:"due_date"`
	CompletedAt       *time.Time `json:"completed_at"`
	ProjectID         *string    `json:"project_id"`
	EstimatedDuration *int       `json:"estimated_duration"` // minutes
	ActualDuration    int        `gorm:"default:0" json:"actual_duration"` // accumulated minutes
	Category          string     `gorm:"default:inbox" json:"category"`
	IsLocked          bool       `gorm:"default:false" json:"is_locked"`
	TimerElapsed      int        `gorm:"default:0" json:"timer_elapsed"` // seconds from paused sessions
	Position          int        `gorm:"default:0" json:"position"`

	// Relationships
	Subtasks []Subtask `gorm:"foreignKey:TaskID" json:"subtasks"`
}

func (t *Task) BeforeCreate(*gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// Subtask is a checklist line owned by a task, cascade-deleted with it
type Subtask struct {
	ID          string `gorm:"primarykey" json:"id"`
	TaskID      string `gorm:"not null;index" json:"task_id"`
	Title       string `gorm:"not null" json:"title"`
	IsCompleted bool   `gorm:"default:false" json:"is_completed"`
}

func (s *Subtask) BeforeCreate(*gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
