package cli

import (
	"context"
	"fmt"

	"github.com/studiofront/designer-console/internal/models"
	"github.com/studiofront/designer-console/internal/tracker"

	"github.com/spf13/cobra"
)

func (a *App) tasksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Manage tasks within a tracker",
	}

	var trackerID, tag, note string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a task and start its first session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl := tracker.NewController(a.gateway, trackerID, a.logger)
			if err := ctrl.CreateTask(cmd.Context(), tag, note); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Task %q created\n", tag)
			return nil
		},
	}
	createCmd.Flags().StringVar(&trackerID, "tracker", "", "tracker id")
	createCmd.Flags().StringVar(&tag, "tag", "", "task tag")
	createCmd.Flags().StringVar(&note, "note", "", "optional note")
	createCmd.MarkFlagRequired("tracker")
	createCmd.MarkFlagRequired("tag")

	pauseCmd := a.transitionCmd("pause <task-id>", "Pause a running task",
		func(ctrl *tracker.Controller, ctx context.Context, taskID string) error {
			return ctrl.Pause(ctx, taskID)
		})
	resumeCmd := a.transitionCmd("resume <task-id>", "Resume a paused task",
		func(ctrl *tracker.Controller, ctx context.Context, taskID string) error {
			return ctrl.Resume(ctx, taskID)
		})
	endCmd := a.transitionCmd("end <task-id>", "End a running task",
		func(ctrl *tracker.Controller, ctx context.Context, taskID string) error {
			return ctrl.End(ctx, taskID)
		})

	sessionsCmd := &cobra.Command{
		Use:   "sessions <task-id>",
		Short: "Show a task's session log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions := a.gateway.ListTaskSessions(cmd.Context(), args[0])
			if len(sessions) == 0 {
				a.emptyState("sessions")
				return nil
			}

			w := a.table()
			fmt.Fprintln(w, "SESSION\tSTARTED\tENDED\tDURATION")
			for _, s := range sessions {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					s.ID, formatDateTime(s.StartTime),
					formatOptionalTime(s.EndTime),
					models.FormatDuration(s.Duration))
			}
			return w.Flush()
		},
	}

	tagsCmd := &cobra.Command{
		Use:   "tags <package-name>",
		Short: "Show the task tag vocabulary for a service package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, t := range models.ResolveTagVocabulary(args[0]) {
				fmt.Fprintln(a.out, t)
			}
			return nil
		},
	}

	cmd.AddCommand(createCmd)
	cmd.AddCommand(pauseCmd)
	cmd.AddCommand(resumeCmd)
	cmd.AddCommand(endCmd)
	cmd.AddCommand(sessionsCmd)
	cmd.AddCommand(tagsCmd)
	return cmd
}

// transitionCmd builds one pause/resume/end command. The controller is
// refreshed first so the local status guards run against current server
// state.
func (a *App) transitionCmd(use, short string, action func(*tracker.Controller, context.Context, string) error) *cobra.Command {
	var trackerID string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl := tracker.NewController(a.gateway, trackerID, a.logger)
			ctrl.Refresh(cmd.Context())

			if err := action(ctrl, cmd.Context(), args[0]); err != nil {
				return err
			}

			task := findTask(ctrl.Tasks(), args[0])
			if task != nil {
				fmt.Fprintf(a.out, "Task %q is now %s (%s)\n",
					task.Tag, task.Status, models.FormatDuration(task.Duration))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&trackerID, "tracker", "", "tracker id")
	cmd.MarkFlagRequired("tracker")
	return cmd
}

func findTask(tasks []models.TimeTrackerState, taskID string) *models.TimeTrackerState {
	for i := range tasks {
		if tasks[i].ID == taskID {
			return &tasks[i]
		}
	}
	return nil
}
