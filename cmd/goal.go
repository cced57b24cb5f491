package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/calibre47/watchdesk"
	"github.com/calibre47/watchdesk/date"
	"github.com/calibre47/watchdesk/renderer"
	"github.com/google/subcommands"
)

// goalCmd holds the flags for the 'goal' subcommand.
type goalCmd struct {
	date   string
	target string
}

func (*goalCmd) Name() string     { return "goal" }
func (*goalCmd) Synopsis() string { return "display progress towards the yearly profit goal" }
func (*goalCmd) Usage() string {
	return `wd goal [-d <date>] [-t <target>]

  Displays progress towards the yearly profit goal: percentage achieved,
  remaining amount, days left and the daily pace required to reach it.
`
}

func (c *goalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Reference date for the goal (defaults to today)")
	f.StringVar(&c.target, "t", "", "Yearly profit target (overrides the global -target flag)")
}

func (c *goalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day := date.Today()
	if c.date != "" {
		var err error
		day, err = date.Parse(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	target, err := Target()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.target != "" {
		v, err := strconv.ParseFloat(c.target, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: parsing target %q: %v\n", c.target, err)
			return subcommands.ExitUsageError
		}
		target = watchdesk.M(v, *defaultCurrency)
	}

	inv, err := DecodeInventory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: decoding inventory: %v\n", err)
		return subcommands.ExitFailure
	}

	report := watchdesk.NewGoalReport(inv, target, day)
	printMarkdown(renderer.GoalMarkdown(report))
	return subcommands.ExitSuccess
}
