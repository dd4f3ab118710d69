package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var doneCmd = &cobra.Command{
	Use:   "done [task-id]",
	Short: "Mark a task as completed",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) {
		id, err := resolveTaskID(app, args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		task, err := app.Tasks.Complete(id)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if task == nil {
			fmt.Printf("Task '%s' not found\n", args[0])
			return
		}

		fmt.Printf("✅ Marked task %s as done: %s\n", shortID(task.ID), task.Title)
		if task.CompletedAt != nil {
			fmt.Printf("Completed at: %s\n", task.CompletedAt.Format("15:04:05"))
		}
	}),
}

var deleteCmd = &cobra.Command{
	Use:     "rm [task-id]",
	Aliases: []string{"delete"},
	Short:   "Delete a task and everything it owns",
	Long:    "Delete a task together with its subtasks and sessions, atomically.",
	Args:    cobra.ExactArgs(1),
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) {
		id, err := resolveTaskID(app, args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if err := app.Tasks.Delete(id); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("🗑  Deleted task %s\n", shortID(id))
	}),
}
