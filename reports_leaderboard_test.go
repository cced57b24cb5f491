package watchdesk

import "testing"

func participant(id, name string, profits ...float64) Participant {
	inv := NewInventory("USD")
	for i, p := range profits {
		in := "2025-01-01"
		out := "2025-02-01"
		inv.Append(soldWatch(id+string(rune('a'+i)), 0, p, in, out))
	}
	return Participant{ID: id, Name: name, Inventory: inv}
}

func TestLeaderboardReport_StableTies(t *testing.T) {
	// totals [500, 500, 300] in input order: the tied entries keep their
	// relative input order.
	report := NewLeaderboardReport([]Participant{
		participant("p1", "Ana", 200, 300),
		participant("p2", "Ben", 500),
		participant("p3", "Cleo", 300),
	}, "", "2025")

	wantOrder := []string{"p1", "p2", "p3"}
	for i, want := range wantOrder {
		if report.Entries[i].ParticipantID != want {
			t.Fatalf("entry %d = %s, want %s (%+v)", i, report.Entries[i].ParticipantID, want, report.Entries)
		}
		if report.Entries[i].Rank != i+1 {
			t.Errorf("entry %d rank = %d, want %d", i, report.Entries[i].Rank, i+1)
		}
	}
}

func TestLeaderboardReport_Scoring(t *testing.T) {
	report := NewLeaderboardReport([]Participant{
		participant("p1", "Ana", 100, 300), // total 400, avg 200
		participant("p2", "Ben"),           // nothing sold
	}, "p1", "2025")

	ana := report.Entries[0]
	if !ana.TotalProfit.Equal(USD(400)) || ana.WatchesSold != 2 || !ana.AvgProfit.Equal(USD(200)) {
		t.Errorf("ana = %+v", ana)
	}
	if !ana.IsCurrentUser || report.UserRank != 1 {
		t.Errorf("current user mark lost: %+v, userRank=%d", ana, report.UserRank)
	}

	ben := report.Entries[1]
	if ben.WatchesSold != 0 || !ben.AvgProfit.IsZero() {
		t.Errorf("avg profit must be zero with no sales: %+v", ben)
	}

	if report.TotalParticipants != 2 || report.Season != "2025" {
		t.Errorf("report header = %+v", report)
	}
}

func TestLeaderboardReport_Badges(t *testing.T) {
	report := NewLeaderboardReport([]Participant{
		participant("p1", "Ana", 400),
		participant("p2", "Ben", 300),
		participant("p3", "Cleo", 200),
		participant("p4", "Dan", 100),
	}, "nobody", "2025")

	wantBadges := []Badge{BadgeTrophy, BadgeMedal, BadgeAward, BadgeNone}
	for i, want := range wantBadges {
		if report.Entries[i].Badge != want {
			t.Errorf("rank %d badge = %v, want %v", i+1, report.Entries[i].Badge, want)
		}
	}
	// no participant matches the session user
	if report.UserRank != 0 {
		t.Errorf("UserRank = %d, want 0 when the user has no entry", report.UserRank)
	}
}

func TestLeaderboardReport_UnsoldExcluded(t *testing.T) {
	inv := NewInventory("USD")
	inv.Append(Watch{ID: "w", PurchasePrice: USDp(9000)}) // unsold, pure cost
	report := NewLeaderboardReport([]Participant{{ID: "p", Name: "Ana", Inventory: inv}}, "", "2025")
	if !report.Entries[0].TotalProfit.IsZero() {
		t.Errorf("unsold records must not contribute to leaderboard totals: %+v", report.Entries[0])
	}
}
