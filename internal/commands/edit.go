package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/velkov/taskdeck/internal/db"
)

var editCmd = &cobra.Command{
	Use:   "edit [task-id]",
	Short: "Edit fields of an existing task",
	Long: `Edit an existing task. Only the flags you pass are written; every
other field keeps its current value.

Examples:
  taskdeck edit 3f2a --title "New title"
  taskdeck edit 3f2a --status BLOCKED --priority P2`,
	Args: cobra.ExactArgs(1),
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) {
		id, err := resolveTaskID(app, args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		patch := db.TaskPatch{}
		if cmd.Flags().Changed("title") {
			v, _ := cmd.Flags().GetString("title")
			patch.Title = &v
		}
		if cmd.Flags().Changed("desc") {
			v, _ := cmd.Flags().GetString("desc")
			patch.Description = &v
		}
		if cmd.Flags().Changed("status") {
			v, _ := cmd.Flags().GetString("status")
			patch.Status = &v
		}
		if cmd.Flags().Changed("priority") {
			v, _ := cmd.Flags().GetString("priority")
			patch.Priority = &v
		}
		if cmd.Flags().Changed("category") {
			v, _ := cmd.Flags().GetString("category")
			patch.Category = &v
		}
		if cmd.Flags().Changed("due") {
			v, _ := cmd.Flags().GetString("due")
			d, err := parseDate(v)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			patch.DueDate = &d
		}
		if cmd.Flags().Changed("project") {
			v, _ := cmd.Flags().GetString("project")
			patch.ProjectID = &v
		}
		if cmd.Flags().Changed("estimate") {
			v, _ := cmd.Flags().GetInt("estimate")
			patch.EstimatedDuration = &v
		}
		if cmd.Flags().Changed("locked") {
			v, _ := cmd.Flags().GetBool("locked")
			patch.IsLocked = &v
		}

		task, err := app.Tasks.Update(id, patch)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if task == nil {
			fmt.Printf("Task '%s' not found\n", args[0])
			return
		}

		fmt.Printf("✏️  Updated task %s: %s\n", shortID(task.ID), task.Title)
	}),
}

func init() {
	editCmd.Flags().String("title", "", "new title")
	editCmd.Flags().String("desc", "", "new description")
	editCmd.Flags().String("status", "", "new status (TODO, IN_PROGRESS, BLOCKED, DONE)")
	editCmd.Flags().String("priority", "", "new priority (P1-P4)")
	editCmd.Flags().String("category", "", "new category (inbox, today, week, month)")
	editCmd.Flags().String("due", "", "new due date (YYYY-MM-DD)")
	editCmd.Flags().String("project", "", "new project id")
	editCmd.Flags().Int("estimate", 0, "new estimate in minutes")
	editCmd.Flags().Bool("locked", false, "lock or unlock the task")
}
