package watchdesk

// Badge decorates the podium ranks of a leaderboard.
type Badge int

const (
	BadgeNone Badge = iota
	BadgeTrophy
	BadgeMedal
	BadgeAward
)

// BadgeForRank maps a 1-based rank to its badge. Ranks outside the podium
// get BadgeNone, the explicit default, never an error.
func BadgeForRank(rank int) Badge {
	switch rank {
	case 1:
		return BadgeTrophy
	case 2:
		return BadgeMedal
	case 3:
		return BadgeAward
	default:
		return BadgeNone
	}
}

func (b Badge) String() string {
	switch b {
	case BadgeTrophy:
		return "trophy"
	case BadgeMedal:
		return "medal"
	case BadgeAward:
		return "award"
	default:
		return ""
	}
}

// Symbol returns the display glyph for the badge, empty off the podium.
func (b Badge) Symbol() string {
	switch b {
	case BadgeTrophy:
		return "🏆"
	case BadgeMedal:
		return "🥈"
	case BadgeAward:
		return "🥉"
	default:
		return ""
	}
}
