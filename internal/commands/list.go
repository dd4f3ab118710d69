package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/velkov/taskdeck/internal/db"
)

var listCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List tasks",
	Long:    "List tasks in manual order, with optional status and project filters",
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) {
		filter := db.TaskFilter{}
		filter.Status, _ = cmd.Flags().GetString("status")
		filter.ProjectID, _ = cmd.Flags().GetString("project")

		tasks, err := app.Tasks.List(filter)
		if err != nil {
			fmt.Printf("Error fetching tasks: %v\n", err)
			return
		}

		if len(tasks) == 0 {
			fmt.Println("No tasks found. Use 'taskdeck add \"task title\"' to create your first task.")
			return
		}

		fmt.Printf("%-10s %-12s %-40s %-8s %-8s %s\n", "ID", "STATUS", "TITLE", "PRIORITY", "CATEGORY", "SUBTASKS")
		fmt.Println(strings.Repeat("-", 90))

		for _, task := range tasks {
			title := task.Title
			if len(title) > 38 {
				title = title[:35] + "..."
			}

			doneSubs := 0
			for _, sub := range task.Subtasks {
				if sub.IsCompleted {
					doneSubs++
				}
			}
			subsStr := ""
			if len(task.Subtasks) > 0 {
				subsStr = fmt.Sprintf("%d/%d", doneSubs, len(task.Subtasks))
			}

			fmt.Printf("%-10s %-12s %-40s %-8s %-8s %s\n",
				shortID(task.ID),
				task.Status,
				title,
				task.Priority,
				task.Category,
				subsStr,
			)
		}
	}),
}

var showCmd = &cobra.Command{
	Use:   "show [task-id]",
	Short: "Show a task in full",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) {
		id, err := resolveTaskID(app, args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		task, err := app.Tasks.GetByID(id)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if task == nil {
			fmt.Printf("Task '%s' not found\n", args[0])
			return
		}

		fmt.Printf("Task %s: %s\n", shortID(task.ID), task.Title)
		fmt.Printf("  Status:   %s\n", task.Status)
		fmt.Printf("  Priority: %s\n", task.Priority)
		fmt.Printf("  Category: %s\n", task.Category)
		if task.Description != "" {
			fmt.Printf("  Notes:    %s\n", task.Description)
		}
		if task.DueDate != nil {
			fmt.Printf("  Due:      %s\n", task.DueDate.Format("2006-01-02"))
		}
		if task.ProjectID != nil {
			fmt.Printf("  Project:  %s\n", shortID(*task.ProjectID))
		}
		if task.EstimatedDuration != nil {
			fmt.Printf("  Estimate: %dm\n", *task.EstimatedDuration)
		}
		fmt.Printf("  Tracked:  %dm\n", task.ActualDuration)
		if task.CompletedAt != nil {
			fmt.Printf("  Done at:  %s\n", task.CompletedAt.Format("2006-01-02 15:04"))
		}
		for _, sub := range task.Subtasks {
			mark := " "
			if sub.IsCompleted {
				mark = "x"
			}
			fmt.Printf("  [%s] %s %s\n", mark, shortID(sub.ID), sub.Title)
		}
	}),
}

func init() {
	listCmd.Flags().String("status", "", "filter by status (TODO, IN_PROGRESS, BLOCKED, DONE)")
	listCmd.Flags().String("project", "", "filter by project id")
}
