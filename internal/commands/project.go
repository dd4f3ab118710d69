package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/velkov/taskdeck/internal/db"
	"github.com/velkov/taskdeck/internal/models"
)

var projectCmd = &cobra.Command{
	Use:     "project",
	Aliases: []string{"proj"},
	Short:   "Manage projects",
}

var projectAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Create a project",
	Args:  cobra.MinimumNArgs(1),
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) {
		req := db.CreateProjectRequest{Name: strings.Join(args, " ")}
		req.Description, _ = cmd.Flags().GetString("desc")
		if deadline, _ := cmd.Flags().GetString("deadline"); deadline != "" {
			d, err := parseDate(deadline)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			req.Deadline = &d
		}

		project, err := app.Projects.Create(req)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("📁 Created project %s: %s\n", shortID(project.ID), project.Name)
	}),
}

var projectListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List projects",
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) {
		status, _ := cmd.Flags().GetString("status")
		projects, err := app.Projects.List(status)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if len(projects) == 0 {
			fmt.Println("No projects.")
			return
		}

		fmt.Printf("%-10s %-30s %-10s %s\n", "ID", "NAME", "STATUS", "DEADLINE")
		for _, project := range projects {
			deadline := ""
			if project.Deadline != nil {
				deadline = project.Deadline.Format("2006-01-02")
			}
			fmt.Printf("%-10s %-30s %-10s %s\n", shortID(project.ID), project.Name, project.Status, deadline)
		}
	}),
}

var projectDoneCmd = &cobra.Command{
	Use:   "done [project-id]",
	Short: "Mark a project completed",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) {
		status := models.ProjectCompleted
		project, err := app.Projects.Update(args[0], db.ProjectPatch{Status: &status})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if project == nil {
			fmt.Printf("Project '%s' not found\n", args[0])
			return
		}
		fmt.Printf("✅ Completed project %s: %s\n", shortID(project.ID), project.Name)
	}),
}

var projectDeleteCmd = &cobra.Command{
	Use:     "rm [project-id]",
	Aliases: []string{"delete"},
	Short:   "Delete a project, detaching its tasks",
	Args:    cobra.ExactArgs(1),
	Run: withApp(func(app *App, cmd *cobra.Command, args []string) {
		if err := app.Projects.Delete(args[0]); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("🗑  Deleted project %s (its tasks were kept)\n", shortID(args[0]))
	}),
}

func init() {
	projectAddCmd.Flags().String("desc", "", "project description")
	projectAddCmd.Flags().String("deadline", "", "deadline (YYYY-MM-DD)")
	projectListCmd.Flags().String("status", "", "filter by status (ACTIVE, COMPLETED)")

	projectCmd.AddCommand(projectAddCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectDoneCmd)
	projectCmd.AddCommand(projectDeleteCmd)
}
