package db

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/velkov/taskdeck/internal/models"
)

// AnalyticsService maintains the additive daily rollups. Rows are created on
// the first event of a day and only ever incremented after that, so archival
// can never erase a task's contribution to history.
type AnalyticsService struct {
	db *gorm.DB
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{db: db}
}

// RecordCompletion increments today's tasks_completed by one.
func (a *AnalyticsService) RecordCompletion() error {
	row := models.DailyAnalytics{Date: today(), TasksCompleted: 1}
	return a.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"tasks_completed": gorm.Expr("tasks_completed + 1"),
		}),
	}).Create(&row).Error
}

// RecordFocusMinutes adds n minutes to today's total_focus_time.
func (a *AnalyticsService) RecordFocusMinutes(n int) error {
	row := models.DailyAnalytics{Date: today(), TotalFocusTime: n}
	return a.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"total_focus_time": gorm.Expr("total_focus_time + ?", n),
		}),
	}).Create(&row).Error
}

// Daily returns the most recent days rows, newest first.
func (a *AnalyticsService) Daily(days int) ([]models.DailyAnalytics, error) {
	var rows []models.DailyAnalytics
	if err := a.db.Order("date DESC").Limit(days).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func today() string {
	return time.Now().Format("2006-01-02")
}
