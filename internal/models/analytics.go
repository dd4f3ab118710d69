package models

// DailyAnalytics is an additive per-day rollup, one row per calendar date.
// Counters only ever increase; archiving tasks does not touch them.
type DailyAnalytics struct {
	Date           string `gorm:"primarykey" json:"date"` // YYYY-MM-DD
	TasksCompleted int    `gorm:"default:0" json:"tasks_completed"`
	TotalFocusTime int    `gorm:"default:0" json:"total_focus_time"` // minutes
}

func (DailyAnalytics) TableName() string {
	return "analytics_daily"
}
