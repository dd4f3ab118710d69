package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var recurringCmd = &cobra.Command{
	Use:     "recurring",
	Aliases: []string{"rec"},
	Short:   "Manage recurring task templates",
}

var recurringListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List templates",
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) {
		templates, err := app.Recurring.All()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if len(templates) == 0 {
			fmt.Println("No recurring templates.")
			return
		}
		for _, tpl := range templates {
			fmt.Printf("%-10s %-40s %s\n", shortID(tpl.ID), tpl.Title, tpl.Priority)
		}
	}),
}

var recurringAddCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Create a template",
	Args:  cobra.MinimumNArgs(1),
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) {
		desc, _ := cmd.Flags().GetString("desc")
		priority, _ := cmd.Flags().GetString("priority")

		tpl, err := app.Recurring.Create(strings.Join(args, " "), desc, priority)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("🔁 Created template %s: %s\n", shortID(tpl.ID), tpl.Title)
	}),
}

var recurringDeleteCmd = &cobra.Command{
	Use:     "rm [template-id]",
	Aliases: []string{"delete"},
	Short:   "Delete a template",
	Args:    cobra.ExactArgs(1),
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) {
		if err := app.Recurring.Delete(args[0]); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("🗑  Deleted template %s\n", shortID(args[0]))
	}),
}

var recurringSpawnCmd = &cobra.Command{
	Use:   "spawn [template-id]",
	Short: "Create a live task from a template",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) {
		category, _ := cmd.Flags().GetString("category")

		task, err := app.Recurring.Instantiate(args[0], category)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if task == nil {
			fmt.Printf("Template '%s' not found\n", args[0])
			return
		}
		fmt.Printf("➕ Spawned task %s: %s [%s]\n", shortID(task.ID), task.Title, task.Category)
	}),
}

func init() {
	recurringAddCmd.Flags().String("desc", "", "template description")
	recurringAddCmd.Flags().String("priority", "", "priority (P1-P4)")
	recurringSpawnCmd.Flags().String("category", "", "category for the new task (default inbox)")

	recurringCmd.AddCommand(recurringListCmd)
	recurringCmd.AddCommand(recurringAddCmd)
	recurringCmd.AddCommand(recurringDeleteCmd)
	recurringCmd.AddCommand(recurringSpawnCmd)
}
