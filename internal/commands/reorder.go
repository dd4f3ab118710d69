package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var reorderCmd = &cobra.Command{
	Use:   "reorder [task-id...]",
	Short: "Set the manual order of tasks",
	Long: `Assign positions 0..n-1 to the given tasks, in the order given,
as one all-or-nothing write. Unknown ids are skipped.`,
	Args: cobra.MinimumNArgs(1),
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) {
		ids := make([]string, 0, len(args))
		for _, arg := range args {
			id, err := resolveTaskID(app, arg)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			ids = append(ids, id)
		}

		if err := app.Tasks.Reorder(ids); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("↕️  Reordered %d task(s)\n", len(ids))
	}),
}
