package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/velkov/taskdeck/internal/archive"
	"github.com/velkov/taskdeck/internal/config"
	"github.com/velkov/taskdeck/internal/db"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "taskdeck",
	Short: "A local task tracker with focus sessions and archival",
	Long: `taskdeck tracks tasks across time-horizon categories (inbox, today,
week, month), times focus sessions, rolls completions into daily stats, and
archives aged-out tasks into per-period JSON buckets.`,
}

// App bundles the one-per-process service instances commands run against.
type App struct {
	Config    config.Config
	Logger    *zap.Logger
	DB        *gorm.DB
	Tasks     *db.TaskService
	Sessions  *db.SessionTracker
	Analytics *db.AnalyticsService
	Projects  *db.ProjectService
	Recurring *db.RecurringService
	Archiver  *archive.Engine
}

func newApp() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	gdb, err := db.Open(cfg.DatabasePath, logger)
	if err != nil {
		return nil, err
	}

	analytics := db.NewAnalyticsService(gdb)
	tasks := db.NewTaskService(gdb, analytics, logger)

	return &App{
		Config:    cfg,
		Logger:    logger,
		DB:        gdb,
		Tasks:     tasks,
		Sessions:  db.NewSessionTracker(gdb, tasks, analytics, logger),
		Analytics: analytics,
		Projects:  db.NewProjectService(gdb),
		Recurring: db.NewRecurringService(gdb, tasks),
		Archiver:  archive.NewEngine(gdb, archive.NewDirStore(cfg.ArchiveDir), logger),
	}, nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	return cfg.Build()
}

// Close releases the app's resources.
func (a *App) Close() {
	if err := db.Close(a.DB); err != nil {
		a.Logger.Warn("failed to close database", zap.Error(err))
	}
	_ = a.Logger.Sync()
}

// withApp wraps a command function to build the service graph first.
func withApp(fn func(app *App, cmd *cobra.Command, args []string)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		app, err := newApp()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer app.Close()
		fn(app, cmd, args)
	}
}

// resolveTaskID accepts a full task id or a unique prefix of one.
func resolveTaskID(app *App, arg string) (string, error) {
	task, err := app.Tasks.GetByID(arg)
	if err != nil {
		return "", err
	}
	if task != nil {
		return task.ID, nil
	}

	tasks, err := app.Tasks.List(db.TaskFilter{})
	if err != nil {
		return "", err
	}
	var matches []string
	for _, t := range tasks {
		if strings.HasPrefix(t.ID, arg) {
			matches = append(matches, t.ID)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", fmt.Errorf("task '%s' not found", arg)
	default:
		return "", fmt.Errorf("task id '%s' is ambiguous (%d matches)", arg, len(matches))
	}
}

// parseDate parses a YYYY-MM-DD argument in local time.
func parseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date '%s', expected YYYY-MM-DD", value)
	}
	return t, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(reorderCmd)
	rootCmd.AddCommand(subtaskCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(archiveCmd)
	rootCmd.AddCommand(archivedCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(recurringCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(versionCmd)
}
