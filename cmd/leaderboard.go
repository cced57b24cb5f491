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

// leaderboardCmd holds the flags for the 'leaderboard' subcommand.
type leaderboardCmd struct {
	file   string
	user   string
	season string
}

func (*leaderboardCmd) Name() string     { return "leaderboard" }
func (*leaderboardCmd) Synopsis() string { return "rank participants of a season by realized profit" }
func (*leaderboardCmd) Usage() string {
	return `wd leaderboard -f <export-file> [-user <id>] [-season <name>]

  Reads a dashboard export document holding the season's participants and
  ranks them by total realized profit. The current user's row is
  highlighted and the top three get badges.
`
}

func (c *leaderboardCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Dashboard export file holding the leaderboard document")
	f.StringVar(&c.user, "user", "", "Participant id of the current user (overrides the global -user flag)")
	f.StringVar(&c.season, "season", "", "Season label (overrides the one in the document)")
}

func (c *leaderboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -f <export-file> is required")
		return subcommands.ExitUsageError
	}
	r, err := os.Open(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: opening export file: %v\n", err)
		return subcommands.ExitFailure
	}
	defer r.Close()

	season, participants, err := watchdesk.ImportLeaderboard(r, *defaultCurrency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: importing leaderboard: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.season != "" {
		season = c.season
	}
	user := *currentUser
	if c.user != "" {
		user = c.user
	}

	report := watchdesk.NewLeaderboardReport(participants, user, season)
	printMarkdown(renderer.LeaderboardMarkdown(report))
	return subcommands.ExitSuccess
}
