package domain

import "time"

// DateLayout is the calendar date format used to select matches by day.
const DateLayout = "2006-01-02"

// Match is a single game played on a server. PlayerScores maps player names to their score.
type Match struct {
	ID             string         `json:"id"`
	ServerEndpoint string         `json:"serverEndpoint"`
	Timestamp      time.Time      `json:"timestamp"`
	PlayerScores   map[string]int `json:"playerScores"`
}

// PlayedOn reports whether the match took place on date, formatted as YYYY-MM-DD.
func (m *Match) PlayedOn(date string) bool {
	return m.Timestamp.Format(DateLayout) == date
}
