package cli

import (
	"fmt"
	"text/tabwriter"
	"time"
)

// table returns a tabwriter over the app's output. Callers must Flush.
func (a *App) table() *tabwriter.Writer {
	return tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
}

// emptyState prints the no-results line a failed or empty read renders
func (a *App) emptyState(what string) {
	fmt.Fprintf(a.out, "No %s found.\n", what)
}

func formatDateTime(t time.Time) string {
	return t.Local().Format("Jan 2 15:04")
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return formatDateTime(*t)
}
