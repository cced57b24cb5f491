package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/calibre47/watchdesk"
	"github.com/calibre47/watchdesk/renderer"
	"github.com/google/subcommands"
)

type monthlyCmd struct{}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "display profits grouped by month of sale" }
func (*monthlyCmd) Usage() string {
	return `wd monthly

  Displays realized profit per calendar month, oldest month first.
`
}

func (*monthlyCmd) SetFlags(_ *flag.FlagSet) {}

func (c *monthlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	inv, err := DecodeInventory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: decoding inventory: %v\n", err)
		return subcommands.ExitFailure
	}
	report := watchdesk.NewMonthlyReport(inv)
	printMarkdown(renderer.MonthlyMarkdown(report))
	return subcommands.ExitSuccess
}
