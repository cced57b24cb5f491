package watchdesk

import "sort"

// Participant is one trader competing on the leaderboard, with the
// inventory snapshot their score is computed from.
type Participant struct {
	ID        string
	Name      string
	Inventory *Inventory
}

// LeaderboardEntry is one participant's aggregate profit ranking within a
// season.
type LeaderboardEntry struct {
	ParticipantID string
	Name          string
	TotalProfit   Money
	WatchesSold   int
	AvgProfit     Money // zero when nothing was sold
	Rank          int   // 1-based position after the total sort
	Badge         Badge
	IsCurrentUser bool
}

// LeaderboardReport ranks participants by total profit over their sold
// records.
type LeaderboardReport struct {
	Season            string
	Entries           []LeaderboardEntry
	UserRank          int // rank of the current user's entry, 0 when absent
	TotalParticipants int
}

// NewLeaderboardReport scores every participant and ranks them descending
// by total profit. The sort is stable: participants with equal totals keep
// their input order (the tie-break the product currently relies on; see
// DESIGN.md). Podium ranks get badges, and the entry whose participant id
// matches currentUserID is marked.
func NewLeaderboardReport(participants []Participant, currentUserID, season string) *LeaderboardReport {
	entries := make([]LeaderboardEntry, 0, len(participants))
	for _, p := range participants {
		e := LeaderboardEntry{
			ParticipantID: p.ID,
			Name:          p.Name,
			IsCurrentUser: p.ID == currentUserID && currentUserID != "",
		}
		for _, w := range p.Inventory.Watches(Sold) {
			e.TotalProfit = e.TotalProfit.Add(w.NetProfit())
			e.WatchesSold++
		}
		if e.WatchesSold > 0 {
			e.AvgProfit = e.TotalProfit.Div(e.WatchesSold)
		}
		entries = append(entries, e)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalProfit.GreaterThan(entries[j].TotalProfit)
	})

	report := &LeaderboardReport{
		Season:            season,
		Entries:           entries,
		TotalParticipants: len(entries),
	}
	for i := range report.Entries {
		report.Entries[i].Rank = i + 1
		report.Entries[i].Badge = BadgeForRank(i + 1)
		if report.Entries[i].IsCurrentUser {
			report.UserRank = i + 1
		}
	}
	return report
}
