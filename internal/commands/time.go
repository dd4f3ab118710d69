package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start [task-id]",
	Short: "Start a focus session on a task",
	Long: `Start a focus session. If a session is already running on another
task it is stopped first; starting the same task again is a no-op.`,
	Args: cobra.ExactArgs(1),
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) {
		id, err := resolveTaskID(app, args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		session, err := app.Sessions.Start(id)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("⏱️  Focusing on task %s\n", shortID(session.TaskID))
		fmt.Printf("Started at: %s\n", session.StartTime.Format("15:04:05"))
	}),
}

var stopCmd = &cobra.Command{
	Use:   "stop [task-id]",
	Short: "Stop the focus session on a task",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) {
		id, err := resolveTaskID(app, args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		session, err := app.Sessions.Stop(id)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if session == nil {
			fmt.Println("No active session for that task.")
			return
		}

		duration := time.Duration(session.DurationSeconds) * time.Second
		fmt.Printf("⏹  Stopped session on task %s after %s\n", shortID(session.TaskID), duration)
	}),
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the active focus session",
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) {
		session, err := app.Sessions.Active()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if session == nil {
			fmt.Println("No active session.")
			return
		}

		elapsed := time.Since(session.StartTime).Truncate(time.Second)
		line := fmt.Sprintf("⏱️  Task %s, running for %s", shortID(session.TaskID), elapsed)
		if task, err := app.Tasks.GetByID(session.TaskID); err == nil && task != nil {
			line = fmt.Sprintf("⏱️  %s (%s), running for %s", task.Title, shortID(task.ID), elapsed)
		}
		fmt.Println(line)
	}),
}

var sessionsCmd = &cobra.Command{
	Use:   "sessions [task-id]",
	Short: "List sessions of a task, most recent first",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) {
		id, err := resolveTaskID(app, args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		sessions, err := app.Sessions.ListForTask(id)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if len(sessions) == 0 {
			fmt.Println("No sessions for that task.")
			return
		}

		for _, session := range sessions {
			end := "running"
			if session.EndTime != nil {
				end = session.EndTime.Format("15:04:05")
			}
			duration := time.Duration(session.DurationSeconds) * time.Second
			fmt.Printf("%s  %s → %s  (%s)\n",
				session.StartTime.Format("2006-01-02"),
				session.StartTime.Format("15:04:05"),
				end,
				duration,
			)
		}
	}),
}
