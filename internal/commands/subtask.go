package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var subtaskCmd = &cobra.Command{
	Use:     "subtask",
	Aliases: []string{"sub"},
	Short:   "Manage subtasks of a task",
}

var subtaskAddCmd = &cobra.Command{
	Use:   "add [task-id] [title]",
	Short: "Add a subtask to a task",
	Args:  cobra.MinimumNArgs(2),
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) {
		id, err := resolveTaskID(app, args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		title := strings.Join(args[1:], " ")
		subs, err := app.Tasks.AddSubtask(id, title)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("➕ Added subtask to %s (%d total)\n", shortID(id), len(subs))
	}),
}

var subtaskToggleCmd = &cobra.Command{
	Use:   "toggle [subtask-id]",
	Short: "Set a subtask's completion state",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) {
		undone, _ := cmd.Flags().GetBool("undone")
		if err := app.Tasks.ToggleSubtask(args[0], !undone); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if undone {
			fmt.Printf("◻️  Marked subtask %s as not done\n", shortID(args[0]))
		} else {
			fmt.Printf("☑️  Marked subtask %s as done\n", shortID(args[0]))
		}
	}),
}

var subtaskDeleteCmd = &cobra.Command{
	Use:     "rm [subtask-id]",
	Aliases: []string{"delete"},
	Short:   "Delete a subtask",
	Args:    cobra.ExactArgs(1),
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) {
		if err := app.Tasks.DeleteSubtask(args[0]); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("🗑  Deleted subtask %s\n", shortID(args[0]))
	}),
}

func init() {
	subtaskToggleCmd.Flags().Bool("undone", false, "mark as not completed instead")

	subtaskCmd.AddCommand(subtaskAddCmd)
	subtaskCmd.AddCommand(subtaskToggleCmd)
	subtaskCmd.AddCommand(subtaskDeleteCmd)
}
