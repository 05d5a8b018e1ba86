package cli

import (
	"fmt"

	"github.com/studiofront/designer-console/internal/models"

	"github.com/spf13/cobra"
)

func (a *App) notificationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notifications",
		Aliases: []string{"notif"},
		Short:   "Manage broadcast notifications",
	}

	var skip, limit int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List notifications",
		RunE: func(cmd *cobra.Command, args []string) error {
			notifications := a.gateway.ListNotifications(cmd.Context(), skip, limit)
			if len(notifications) == 0 {
				a.emptyState("notifications")
				return nil
			}

			w := a.table()
			fmt.Fprintln(w, "ID\tTOPIC\tTITLE\tTYPE\tCREATED")
			for _, n := range notifications {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					n.ID, n.Topic, n.Title, n.Type, formatDateTime(n.CreatedAt))
			}
			return w.Flush()
		},
	}
	listCmd.Flags().IntVar(&skip, "skip", 0, "offset into the list")
	listCmd.Flags().IntVar(&limit, "limit", 10, "page size")

	var draft models.NotificationDraft
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a notification draft",
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := a.gateway.CreateNotification(cmd.Context(), draft)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Created notification %s\n", created.ID)
			return nil
		},
	}
	createCmd.Flags().StringVar(&draft.Topic, "topic", "", "notification topic")
	createCmd.Flags().StringVar(&draft.Title, "title", "", "notification title")
	createCmd.Flags().StringVar(&draft.Body, "body", "", "notification body")
	createCmd.Flags().StringVar(&draft.Type, "type", "", "notification type")
	createCmd.Flags().StringVar(&draft.Route, "route", "", "in-app route")
	createCmd.MarkFlagRequired("topic")
	createCmd.MarkFlagRequired("title")
	createCmd.MarkFlagRequired("body")

	var update models.NotificationDraft
	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a notification",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			updated, err := a.gateway.UpdateNotification(cmd.Context(), args[0], update)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Updated notification %s\n", updated.ID)
			return nil
		},
	}
	updateCmd.Flags().StringVar(&update.Topic, "topic", "", "notification topic")
	updateCmd.Flags().StringVar(&update.Title, "title", "", "notification title")
	updateCmd.Flags().StringVar(&update.Body, "body", "", "notification body")
	updateCmd.Flags().StringVar(&update.Type, "type", "", "notification type")
	updateCmd.Flags().StringVar(&update.Route, "route", "", "in-app route")

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a notification",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.gateway.DeleteNotification(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Deleted notification %s\n", args[0])
			return nil
		},
	}

	var audience string
	pushCmd := &cobra.Command{
		Use:   "push <id>",
		Short: "Broadcast a notification to an audience segment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.gateway.PushNotification(cmd.Context(), args[0], audience); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Pushed notification %s\n", args[0])
			return nil
		},
	}
	pushCmd.Flags().StringVar(&audience, "audience", "",
		fmt.Sprintf("audience segment (%q or %q)", models.AudienceMarketing, models.AudienceNonPurchasers))

	cmd.AddCommand(listCmd)
	cmd.AddCommand(createCmd)
	cmd.AddCommand(updateCmd)
	cmd.AddCommand(deleteCmd)
	cmd.AddCommand(pushCmd)
	return cmd
}
