package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/velkov/taskdeck/internal/db"
)

var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a new task",
	Long: `Add a new task. Omitted fields get defaults: status TODO,
priority P4, category inbox.

Examples:
  taskdeck add "Write report"
  taskdeck add "Ship release" --priority P1 --category today --due 2026-09-01`,
	Args: cobra.MinimumNArgs(1),
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) {
		req := db.CreateTaskRequest{Title: strings.Join(args, " ")}

		req.Description, _ = cmd.Flags().GetString("desc")
		req.Priority, _ = cmd.Flags().GetString("priority")
		req.Category, _ = cmd.Flags().GetString("category")

		if due, _ := cmd.Flags().GetString("due"); due != "" {
			d, err := parseDate(due)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			req.DueDate = &d
		}
		if project, _ := cmd.Flags().GetString("project"); project != "" {
			req.ProjectID = &project
		}
		if estimate, _ := cmd.Flags().GetInt("estimate"); estimate > 0 {
			req.EstimatedDuration = &estimate
		}

		task, err := app.Tasks.Create(req)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("➕ Added task %s: %s [%s/%s]\n", shortID(task.ID), task.Title, task.Priority, task.Category)
	}),
}

func init() {
	addCmd.Flags().String("desc", "", "task description")
	addCmd.Flags().String("priority", "", "priority (P1-P4)")
	addCmd.Flags().String("category", "", "category (inbox, today, week, month)")
	addCmd.Flags().String("due", "", "due date (YYYY-MM-DD)")
	addCmd.Flags().String("project", "", "project id")
	addCmd.Flags().Int("estimate", 0, "estimated duration in minutes")
}
