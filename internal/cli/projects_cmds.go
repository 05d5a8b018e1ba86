package cli

import (
	"context"
	"fmt"

	"github.com/studiofront/designer-console/internal/models"
	"github.com/studiofront/designer-console/internal/pager"

	"github.com/spf13/cobra"
)

func (a *App) projectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Search projects",
	}

	var phase, status []string
	var pages int
	searchCmd := &cobra.Command{
		Use:   "search",
		Short: "Search projects with filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			filters := models.DefaultProjectFilters()
			if len(phase) > 0 {
				filters.Phase = phase
			}
			if len(status) > 0 {
				filters.Status = status
			}

			loader := pager.New(a.cfg.Paging.ProjectPageSize,
				func(ctx context.Context, skip, limit int) ([]models.Project, error) {
					result := a.gateway.SearchProjects(ctx, filters, skip, limit)
					return result.Projects, nil
				},
				func(p models.Project) string { return p.ID },
				a.logger,
			)

			for i := 0; i < pages && loader.HasMore(); i++ {
				if _, err := loader.LoadMore(cmd.Context()); err != nil {
					return err
				}
			}

			projects := loader.Items()
			if len(projects) == 0 {
				a.emptyState("projects")
				return nil
			}

			w := a.table()
			fmt.Fprintln(w, "ID\tNAME\tCUSTOMER")
			for _, p := range projects {
				fmt.Fprintf(w, "%s\t%s\t%s\n", p.ID, p.Name, p.User.Profile.Name)
			}
			return w.Flush()
		},
	}
	searchCmd.Flags().StringSliceVar(&phase, "phase", nil, "project phases to match")
	searchCmd.Flags().StringSliceVar(&status, "status", nil, "project statuses to match")
	searchCmd.Flags().IntVar(&pages, "pages", 1, "number of pages to fetch")

	cmd.AddCommand(searchCmd)
	return cmd
}
