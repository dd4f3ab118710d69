package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/velkov/taskdeck/internal/scheduler"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run auto-archival continuously",
	Long: `Run the auto-archival sweep immediately, then keep the process
alive re-running it at local midnight (when the daily window rolls over) and
on the configured interval. Stop with Ctrl-C.`,
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) {
		sweep := func() {
			count, err := app.Archiver.AutoArchive()
			if err != nil {
				app.Logger.Error("auto-archival sweep failed", zap.Error(err))
				return
			}
			if count > 0 {
				app.Logger.Info("auto-archival sweep finished", zap.Int("archived", count))
				fmt.Printf("🗃️  [%s] archived %d task(s)\n", time.Now().Format("15:04:05"), count)
			}
		}

		sweep()

		sched := scheduler.New(time.Local, app.Logger)
		if _, err := sched.AtMidnight(sweep); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if _, err := sched.Every(app.Config.ArchiveInterval, sweep); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		sched.Start()
		defer sched.Stop()

		fmt.Printf("👀 Watching; sweeping every %s and at midnight. Ctrl-C to stop.\n", app.Config.ArchiveInterval)

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		fmt.Println("\nStopping.")
	}),
}
