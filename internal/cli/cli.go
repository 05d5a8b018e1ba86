package cli

import (
	"context"
	"io"
	"os"

	"github.com/studiofront/designer-console/internal/client"
	"github.com/studiofront/designer-console/internal/config"
	"github.com/studiofront/designer-console/internal/session"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// App wires the gateway, session store, and configuration into the
// command tree. It is the console's view surface: commands render state,
// the gateway and controllers own the behavior.
type App struct {
	cfg      *config.Config
	gateway  *client.APIClient
	sessions *session.Store
	logger   *zap.Logger
	out      io.Writer
}

// New creates the CLI application
func New(cfg *config.Config, gateway *client.APIClient, sessions *session.Store, logger *zap.Logger) *App {
	return &App{
		cfg:      cfg,
		gateway:  gateway,
		sessions: sessions,
		logger:   logger,
		out:      os.Stdout,
	}
}

// Execute builds the command tree and runs it against the given
// arguments (the remainder after main's own flags).
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := &cobra.Command{
		Use:           "designer-console",
		Short:         "Admin console for the design, notification, and time-tracker services",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(a.loginCmd())
	rootCmd.AddCommand(a.logoutCmd())
	rootCmd.AddCommand(a.whoamiCmd())
	rootCmd.AddCommand(a.designsCmd())
	rootCmd.AddCommand(a.notificationsCmd())
	rootCmd.AddCommand(a.projectsCmd())
	rootCmd.AddCommand(a.trackersCmd())
	rootCmd.AddCommand(a.tasksCmd())

	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}
