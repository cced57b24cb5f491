package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/calibre47/watchdesk"
	"github.com/calibre47/watchdesk/date"
	"github.com/calibre47/watchdesk/renderer"
	"github.com/google/subcommands"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	date string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display the full desk dashboard" }
func (*reportCmd) Usage() string {
	return `wd report [-d <date>]

  Displays the full dashboard: per-watch metrics, monthly profits and
  the yearly goal, as of the given date.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Reference date for the report (defaults to today)")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, err := generateDashboard(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.DashboardMarkdown(report))
	return subcommands.ExitSuccess
}

// generateDashboard builds the dashboard report as of the given date string.
// It is shared with the assist subcommand that briefs the agent with it.
func generateDashboard(on string) (*watchdesk.DashboardReport, error) {
	day := date.Today()
	if on != "" {
		var err error
		day, err = date.Parse(on)
		if err != nil {
			return nil, fmt.Errorf("parsing date: %w", err)
		}
	}
	inv, err := DecodeInventory()
	if err != nil {
		return nil, fmt.Errorf("decoding inventory: %w", err)
	}
	target, err := Target()
	if err != nil {
		return nil, err
	}
	return watchdesk.NewDashboardReport(inv, target, day), nil
}
