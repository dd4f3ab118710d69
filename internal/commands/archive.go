package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/velkov/taskdeck/internal/archive"
)

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Archive tasks into period buckets",
	Long: `Archive tasks into JSON buckets and remove them from the live store.

By default every DONE task is swept regardless of age. With --auto only the
tasks that have aged out of their category's current window are archived:
inbox/today before today's midnight, week before Sunday, month before the
1st.`,
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) {
		auto, _ := cmd.Flags().GetBool("auto")

		var (
			count int
			err   error
		)
		if auto {
			count, err = app.Archiver.AutoArchive()
		} else {
			count, err = app.Archiver.ArchiveDone()
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if count == 0 {
			fmt.Println("Nothing to archive.")
			return
		}
		fmt.Printf("🗃️  Archived %d task(s)\n", count)
	}),
}

var archivedCmd = &cobra.Command{
	Use:   "archived [type] [date]",
	Short: "Browse archived tasks",
	Long: `Browse the archive. With just a type (daily, weekly, monthly) the
available bucket keys are listed, newest first. With a date key the bucket's
tasks are printed.

Examples:
  taskdeck archived daily
  taskdeck archived daily 2026-08-27
  taskdeck archived weekly 2026-W35`,
	Args: cobra.RangeArgs(1, 2),
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) {
		typ := archive.Type(args[0])
		if !archive.ValidType(typ) {
			fmt.Printf("Error: unknown archive type '%s' (want daily, weekly, or monthly)\n", args[0])
			return
		}

		if len(args) == 1 {
			keys, err := app.Archiver.Keys(typ)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			if len(keys) == 0 {
				fmt.Println("No archives yet.")
				return
			}
			for _, key := range keys {
				fmt.Println(key)
			}
			return
		}

		tasks, err := app.Archiver.Archived(typ, args[1])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if len(tasks) == 0 {
			fmt.Println("Empty bucket.")
			return
		}

		for _, task := range tasks {
			done := ""
			if task.CompletedAt != nil {
				done = task.CompletedAt.Format("2006-01-02 15:04")
			}
			fmt.Printf("%-10s %-40s %-4s %s\n", shortID(task.ID), task.Title, task.Priority, done)
		}
	}),
}

func init() {
	archiveCmd.Flags().Bool("auto", false, "apply the category boundary rule instead of sweeping all DONE tasks")
}
