package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velkov/taskdeck/internal/models"
)

func TestRecordFocusMinutesAccumulatesIntoOneRow(t *testing.T) {
	_, _, _, analytics := newTestServices(t)

	require.NoError(t, analytics.RecordFocusMinutes(30))
	require.NoError(t, analytics.RecordFocusMinutes(30))

	rows, err := analytics.Daily(7)
	require.NoError(t, err)
	require.Len(t, rows, 1, "one row per date")
	assert.Equal(t, time.Now().Format("2006-01-02"), rows[0].Date)
	assert.Equal(t, 60, rows[0].TotalFocusTime)
	assert.Equal(t, 0, rows[0].TasksCompleted)
}

func TestRecordCompletionCreatesAndIncrements(t *testing.T) {
	_, _, _, analytics := newTestServices(t)

	require.NoError(t, analytics.RecordCompletion())
	require.NoError(t, analytics.RecordCompletion())
	require.NoError(t, analytics.RecordFocusMinutes(5))

	rows, err := analytics.Daily(7)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].TasksCompleted)
	assert.Equal(t, 5, rows[0].TotalFocusTime)
}

func TestDailyReturnsNewestFirstWithLimit(t *testing.T) {
	gdb, _, _, analytics := newTestServices(t)

	for _, row := range []models.DailyAnalytics{
		{Date: "2026-08-25", TasksCompleted: 1, TotalFocusTime: 10},
		{Date: "2026-08-26", TasksCompleted: 2, TotalFocusTime: 20},
		{Date: "2026-08-27", TasksCompleted: 3, TotalFocusTime: 30},
	} {
		require.NoError(t, gdb.Create(&row).Error)
	}

	rows, err := analytics.Daily(2)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2026-08-27", rows[0].Date)
	assert.Equal(t, "2026-08-26", rows[1].Date)
}
