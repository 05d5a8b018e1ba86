package cli

import (
	"context"
	"fmt"

	"github.com/studiofront/designer-console/internal/models"
	"github.com/studiofront/designer-console/internal/pager"
	"github.com/studiofront/designer-console/internal/tracker"

	"github.com/spf13/cobra"
)

func (a *App) trackersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trackers",
		Short: "Designer time trackers",
	}

	var pages int
	var all bool
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the current designer's trackers",
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := pager.New(a.cfg.Paging.TrackerPageSize,
				func(ctx context.Context, skip, limit int) ([]models.TimeTracker, error) {
					return a.gateway.ListTrackers(ctx, skip, limit), nil
				},
				func(t models.TimeTracker) string { return t.ID },
				a.logger,
			)

			if all {
				if err := loader.DrainAll(cmd.Context()); err != nil {
					return err
				}
			} else {
				for i := 0; i < pages && loader.HasMore(); i++ {
					if _, err := loader.LoadMore(cmd.Context()); err != nil {
						return err
					}
				}
			}

			trackers := loader.Items()
			if len(trackers) == 0 {
				a.emptyState("trackers")
				return nil
			}

			w := a.table()
			fmt.Fprintln(w, "ID\tPROJECT\tCUSTOMER\tSPENT\tBUDGET\tREMAINING")
			for _, t := range trackers {
				remaining := models.FormatDuration(t.DisplayRemaining())
				if t.IsOvertime() {
					remaining += " over"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					t.ID, t.Project.Name, t.Project.CustomerName,
					models.FormatDuration(t.TotalTimeSpend),
					models.FormatDuration(t.MaximumTimeSeconds),
					remaining)
			}
			return w.Flush()
		},
	}
	listCmd.Flags().IntVar(&pages, "pages", 1, "number of pages to fetch")
	listCmd.Flags().BoolVar(&all, "all", false, "fetch every page")

	showCmd := &cobra.Command{
		Use:   "show <tracker-id>",
		Short: "Show a tracker's summary and tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl := tracker.NewController(a.gateway, args[0], a.logger)
			ctrl.Refresh(cmd.Context())

			summary := ctrl.Summary()
			if summary == nil {
				a.emptyState("tracker")
				return nil
			}

			a.printTrackerSummary(summary)

			tasks := ctrl.Tasks()
			if len(tasks) == 0 {
				fmt.Fprintln(a.out, "No tasks yet.")
				return nil
			}

			w := a.table()
			fmt.Fprintln(w, "TASK\tTAG\tSTATUS\tDURATION\tSTARTED\tENDED")
			for _, t := range tasks {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					t.ID, t.Tag, t.Status,
					models.FormatDuration(t.Duration),
					formatDateTime(t.StartTime),
					formatOptionalTime(t.EndTime))
			}
			return w.Flush()
		},
	}

	var date models.DateRange
	var searchPages int
	var searchAll bool
	searchCmd := &cobra.Command{
		Use:   "search [text]",
		Short: "Search all designer trackers (admin)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := ""
			if len(args) > 0 {
				text = args[0]
			}

			loader := pager.New(a.cfg.Paging.AdminPageSize,
				func(ctx context.Context, skip, limit int) ([]models.AdminTimeTracker, error) {
					return a.gateway.SearchAdminTrackers(ctx, text, date, skip, limit), nil
				},
				func(t models.AdminTimeTracker) string { return t.ID },
				a.logger,
			)

			if searchAll {
				if err := loader.DrainAll(cmd.Context()); err != nil {
					return err
				}
			} else {
				for i := 0; i < searchPages && loader.HasMore(); i++ {
					if _, err := loader.LoadMore(cmd.Context()); err != nil {
						return err
					}
				}
			}

			trackers := loader.Items()
			if len(trackers) == 0 {
				a.emptyState("trackers")
				return nil
			}

			w := a.table()
			fmt.Fprintln(w, "ID\tDESIGNER\tPROJECT\tCUSTOMER\tSPENT\tRATE\tEARNINGS\tOVERTIME")
			for _, t := range trackers {
				overtime := "-"
				if t.OverTime.IsOverTime {
					overtime = models.FormatDuration(-t.TimeRemaining())
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t$%.0f/h\t$%.2f\t%s\n",
					t.ID, t.Designer.Profile.Name, t.ProjectName, t.Customer,
					models.FormatDuration(t.TotalTimeSpend),
					t.HourlyRate, t.Earnings, overtime)
			}
			return w.Flush()
		},
	}
	searchCmd.Flags().StringVar(&date.Start, "from", "", "start of the date range")
	searchCmd.Flags().StringVar(&date.End, "to", "", "end of the date range")
	searchCmd.Flags().IntVar(&searchPages, "pages", 1, "number of pages to fetch")
	searchCmd.Flags().BoolVar(&searchAll, "all", false, "fetch every page")

	var reason string
	overtimeCmd := &cobra.Command{
		Use:   "overtime-reason <tracker-id>",
		Short: "Record why a tracker ran past its budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl := tracker.NewController(a.gateway, args[0], a.logger)
			if err := ctrl.SetOvertimeReason(cmd.Context(), reason); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "Overtime reason recorded")
			return nil
		},
	}
	overtimeCmd.Flags().StringVar(&reason, "reason", "", "overtime reason")
	overtimeCmd.MarkFlagRequired("reason")

	cmd.AddCommand(listCmd)
	cmd.AddCommand(showCmd)
	cmd.AddCommand(searchCmd)
	cmd.AddCommand(overtimeCmd)
	return cmd
}

func (a *App) printTrackerSummary(t *models.TimeTracker) {
	fmt.Fprintf(a.out, "%s's %s\n", t.Project.CustomerName, t.Project.Name)
	fmt.Fprintf(a.out, "Time spent: %s\n", models.FormatDuration(t.TotalTimeSpend))
	fmt.Fprintf(a.out, "Maximum:    %s\n", models.FormatDuration(t.MaximumTimeSeconds))
	if t.IsOvertime() {
		fmt.Fprintf(a.out, "Overtime:   %s\n", models.FormatDuration(t.DisplayRemaining()))
		if t.OverTime.Reason != "" {
			fmt.Fprintf(a.out, "Reason:     %s\n", t.OverTime.Reason)
		}
	} else {
		fmt.Fprintf(a.out, "Remaining:  %s\n", models.FormatDuration(t.DisplayRemaining()))
	}
}
