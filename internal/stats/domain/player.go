package domain

import "math"

// Points awarded per match.
const (
	WinPoints  = 100
	LossPoints = 30
)

// Player is identified by name, which is also the username it logs in with.
type Player struct {
	Name          string   `json:"name"`
	TotalScore    int      `json:"totalScore"`
	MatchesPlayed int      `json:"matchesPlayed"`
	WinRate       int      `json:"winRate"`
	MatchIDs      []string `json:"matchIds"`
}

// RecordResult applies the outcome of one match: points, match count, win rate and history.
// WinRate is a whole percentage in [0, 100].
func (p *Player) RecordResult(matchID string, won bool) {
	before := p.MatchesPlayed
	wins := math.Round(float64(p.WinRate) * float64(before) / 100)

	points := LossPoints
	if won {
		points = WinPoints
		wins++
	}

	after := before + 1
	rate := math.Round(wins / float64(after) * 100)
	rate = math.Max(0, math.Min(100, rate))

	p.TotalScore += points
	p.MatchesPlayed = after
	p.WinRate = int(rate)
	p.MatchIDs = append(p.MatchIDs, matchID)
}

// PlayerStats is a player's summary together with the matches they played.
type PlayerStats struct {
	Player        *Player
	RecentMatches []*Match
}
