package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) designsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "designs",
		Short: "Browse the AI design feed",
	}

	var skip, limit int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List designs",
		RunE: func(cmd *cobra.Command, args []string) error {
			designs := a.gateway.ListDesigns(cmd.Context(), skip, limit)
			if len(designs) == 0 {
				a.emptyState("designs")
				return nil
			}

			w := a.table()
			fmt.Fprintln(w, "ID\tROOM\tINTENT\tIMAGES\tTITLE")
			for _, d := range designs {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
					d.ID, d.RoomType, d.Intent.Primary, len(d.DesignImages), d.Title)
			}
			return w.Flush()
		},
	}
	listCmd.Flags().IntVar(&skip, "skip", 0, "offset into the feed")
	listCmd.Flags().IntVar(&limit, "limit", 10, "page size")

	showCmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one design with its assets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			detail := a.gateway.GetDesign(cmd.Context(), args[0])
			if detail == nil {
				a.emptyState("design")
				return nil
			}

			fmt.Fprintf(a.out, "%s\n", detail.Title)
			fmt.Fprintf(a.out, "Room: %s  Style: %s  Intent: %s\n",
				detail.RoomType, detail.Style, detail.Intent.Primary)

			if len(detail.Assets) == 0 {
				return nil
			}
			w := a.table()
			fmt.Fprintln(w, "ASSET\tRETAILER\tPRICE\tMSRP")
			for _, asset := range detail.Assets {
				fmt.Fprintf(w, "%s\t%s\t$%.2f\t$%.2f\n",
					asset.Name, asset.Retailer.Name, asset.Price, asset.MSRP)
			}
			return w.Flush()
		},
	}

	cmd.AddCommand(listCmd)
	cmd.AddCommand(showCmd)
	return cmd
}
