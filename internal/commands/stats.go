package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show daily completion and focus-time rollups",
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) {
		days, _ := cmd.Flags().GetInt("days")

		rows, err := app.Analytics.Daily(days)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if len(rows) == 0 {
			fmt.Println("No stats yet. Complete a task or run a focus session first.")
			return
		}

		fmt.Printf("%-12s %-10s %s\n", "DATE", "COMPLETED", "FOCUS")
		for _, row := range rows {
			fmt.Printf("%-12s %-10d %dm\n", row.Date, row.TasksCompleted, row.TotalFocusTime)
		}
	}),
}

func init() {
	statsCmd.Flags().Int("days", 7, "number of days to show")
}
