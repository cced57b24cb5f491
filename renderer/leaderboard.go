package renderer

import (
	"fmt"
	"strings"

	"github.com/calibre47/watchdesk"
)

// LeaderboardMarkdown renders the season ranking.
func LeaderboardMarkdown(r *watchdesk.LeaderboardReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Leaderboard, %s season\n\n", nonEmpty(r.Season, "current"))

	if len(r.Entries) == 0 {
		fmt.Fprintln(&b, "*No participants.*")
		return b.String()
	}

	if r.UserRank > 0 {
		fmt.Fprintf(&b, "You are **#%d** of %d.\n\n", r.UserRank, r.TotalParticipants)
	}

	t := newTable(&b, "Rank", "Trader", "Sold", "Total Profit", "Avg Profit")
	for _, e := range r.Entries {
		rank := fmt.Sprintf("%d", e.Rank)
		if s := e.Badge.Symbol(); s != "" {
			rank += " " + s
		}
		name := nonEmpty(e.Name, e.ParticipantID)
		if e.IsCurrentUser {
			name = bold(name)
		}
		t.row(rank, name, fmt.Sprintf("%d", e.WatchesSold), e.TotalProfit.SignedString(), e.AvgProfit.String())
	}
	return b.String()
}
