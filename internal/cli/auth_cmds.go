package cli

import (
	"errors"
	"fmt"

	"github.com/studiofront/designer-console/internal/session"

	"github.com/spf13/cobra"
)

func (a *App) loginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and store a session",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.gateway.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}

			sess := session.Session{
				Token:     result.Token,
				UserName:  result.User.Name,
				UserRole:  result.User.Role,
				ExpiresAt: session.TokenExpiry(result.Token),
			}
			if err := a.sessions.Save(sess); err != nil {
				return err
			}

			fmt.Fprintf(a.out, "Logged in as %s (%s)\n", result.User.Name, result.User.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")

	return cmd
}

func (a *App) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.sessions.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "Logged out")
			return nil
		},
	}
}

func (a *App) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := a.sessions.Current()
			if errors.Is(err, session.ErrNoSession) {
				fmt.Fprintln(a.out, "Not logged in")
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "%s (%s)\n", sess.UserName, sess.UserRole)
			if sess.ExpiresAt != nil {
				fmt.Fprintf(a.out, "Token expires %s\n", sess.ExpiresAt.Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
}
