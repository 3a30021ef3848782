package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPlayer_RecordResult(t *testing.T) {
	tests := []struct {
		name         string
		player       Player
		won          bool
		wantScore    int
		wantPlayed   int
		wantWinRate  int
		wantMatchIDs []string
	}{
		{
			name:         "FirstMatchWon",
			player:       Player{Name: "alice"},
			won:          true,
			wantScore:    WinPoints,
			wantPlayed:   1,
			wantWinRate:  100,
			wantMatchIDs: []string{"m1"},
		},
		{
			name:         "FirstMatchLost",
			player:       Player{Name: "alice"},
			won:          false,
			wantScore:    LossPoints,
			wantPlayed:   1,
			wantWinRate:  0,
			wantMatchIDs: []string{"m1"},
		},
		{
			name:         "HalfToTwoThirds",
			player:       Player{Name: "bob", TotalScore: 130, MatchesPlayed: 2, WinRate: 50, MatchIDs: []string{"a", "b"}},
			won:          true,
			wantScore:    230,
			wantPlayed:   3,
			wantWinRate:  67,
			wantMatchIDs: []string{"a", "b", "m1"},
		},
		{
			name:         "PerfectRecordDrops",
			player:       Player{Name: "carol", TotalScore: 300, MatchesPlayed: 3, WinRate: 100},
			won:          false,
			wantScore:    330,
			wantPlayed:   4,
			wantWinRate:  75,
			wantMatchIDs: []string{"m1"},
		},
		{
			name:         "OutOfRangeRateClamped",
			player:       Player{Name: "dave", MatchesPlayed: 1, WinRate: 400},
			won:          true,
			wantScore:    WinPoints,
			wantPlayed:   2,
			wantWinRate:  100,
			wantMatchIDs: []string{"m1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.player
			p.RecordResult("m1", tt.won)

			assert.Equal(t, tt.wantScore, p.TotalScore)
			assert.Equal(t, tt.wantPlayed, p.MatchesPlayed)
			assert.Equal(t, tt.wantWinRate, p.WinRate)
			assert.Equal(t, tt.wantMatchIDs, p.MatchIDs)
		})
	}
}

func TestServer_Stats(t *testing.T) {
	server := &Server{Endpoint: "eu-1:27015", Name: "Frankfurt", Region: "EU", Rating: 4.5}
	server.AddMatch("m1")
	server.AddMatch("m2")

	stats := server.Stats()

	assert.Equal(t, &ServerStats{Name: "Frankfurt", Region: "EU", MatchCount: 2, Rating: 4.5}, stats)
}

func TestMatch_PlayedOn(t *testing.T) {
	match := &Match{Timestamp: time.Date(2024, 3, 9, 23, 59, 0, 0, time.UTC)}

	assert.True(t, match.PlayedOn("2024-03-09"))
	assert.False(t, match.PlayedOn("2024-03-10"))
	assert.False(t, match.PlayedOn("09-03-2024"))
}
