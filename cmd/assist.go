package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/calibre47/watchdesk/agent"
	"github.com/calibre47/watchdesk/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the AI desk analyst.
type assistCmd struct {
	date string
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the desk analyst" }
func (*assistCmd) Usage() string {
	return `wd assist [-d <date>] [question...]

  Starts an interactive chat with the desk analyst, briefed with the
  current dashboard. Type 'bye' to exit.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Reference date for the briefing dashboard (defaults to today)")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var prompts []string
	if f.NArg() > 0 {
		prompts = append(prompts, strings.Join(f.Args(), " "))
	}

	report, err := generateDashboard(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	briefing := renderer.DashboardMarkdown(report)

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	a := agent.New(os.Stdout, os.Stdin)
	if err := a.Run(ctx, client, briefing, prompts...); err != nil {
		fmt.Fprintln(os.Stderr, "Analyst failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
