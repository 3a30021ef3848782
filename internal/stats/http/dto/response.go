package dto

import (
	"strconv"
	"time"

	"github.com/allisson/gamestats/internal/stats/domain"
)

// ServerResponse represents a server in API responses.
type ServerResponse struct {
	Endpoint string   `json:"endpoint"`
	Name     string   `json:"name"`
	Region   string   `json:"region"`
	MatchIDs []string `json:"matchIds"`
	Rating   float64  `json:"rating"`
}

// ServerStatsResponse represents a server summary.
type ServerStatsResponse struct {
	Name       string  `json:"name"`
	Region     string  `json:"region"`
	MatchCount int     `json:"matchCount"`
	Rating     float64 `json:"rating"`
}

// MatchResponse represents a match in API responses.
type MatchResponse struct {
	ID             string         `json:"id"`
	ServerEndpoint string         `json:"serverEndpoint"`
	Timestamp      time.Time      `json:"timestamp"`
	PlayerScores   map[string]int `json:"playerScores"`
}

// PlayerResponse represents a player in API responses.
type PlayerResponse struct {
	Name          string   `json:"name"`
	TotalScore    int      `json:"totalScore"`
	MatchesPlayed int      `json:"matchesPlayed"`
	WinRate       int      `json:"winRate"`
	MatchIDs      []string `json:"matchIds"`
}

// PlayerStatsResponse represents a player's own statistics. WinRate is rendered as a
// percentage string such as "67%".
type PlayerStatsResponse struct {
	Name          string          `json:"name"`
	TotalScore    int             `json:"totalScore"`
	MatchesPlayed int             `json:"matchesPlayed"`
	WinRate       string          `json:"winRate"`
	RecentMatches []MatchResponse `json:"recentMatches"`
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}

// MapServerToResponse converts a domain server to an API response.
func MapServerToResponse(server *domain.Server) ServerResponse {
	return ServerResponse{
		Endpoint: server.Endpoint,
		Name:     server.Name,
		Region:   server.Region,
		MatchIDs: nonNil(server.MatchIDs),
		Rating:   server.Rating,
	}
}

// MapServersToResponse converts domain servers to API responses.
func MapServersToResponse(servers []*domain.Server) []ServerResponse {
	responses := make([]ServerResponse, 0, len(servers))
	for _, server := range servers {
		responses = append(responses, MapServerToResponse(server))
	}
	return responses
}

// MapServerStatsToResponse converts a server summary to an API response.
func MapServerStatsToResponse(stats *domain.ServerStats) ServerStatsResponse {
	return ServerStatsResponse{
		Name:       stats.Name,
		Region:     stats.Region,
		MatchCount: stats.MatchCount,
		Rating:     stats.Rating,
	}
}

// MapMatchToResponse converts a domain match to an API response.
func MapMatchToResponse(match *domain.Match) MatchResponse {
	scores := match.PlayerScores
	if scores == nil {
		scores = map[string]int{}
	}
	return MatchResponse{
		ID:             match.ID,
		ServerEndpoint: match.ServerEndpoint,
		Timestamp:      match.Timestamp.UTC(),
		PlayerScores:   scores,
	}
}

// MapMatchesToResponse converts domain matches to API responses.
func MapMatchesToResponse(matches []*domain.Match) []MatchResponse {
	responses := make([]MatchResponse, 0, len(matches))
	for _, match := range matches {
		responses = append(responses, MapMatchToResponse(match))
	}
	return responses
}

// MapPlayerToResponse converts a domain player to an API response.
func MapPlayerToResponse(player *domain.Player) PlayerResponse {
	return PlayerResponse{
		Name:          player.Name,
		TotalScore:    player.TotalScore,
		MatchesPlayed: player.MatchesPlayed,
		WinRate:       player.WinRate,
		MatchIDs:      nonNil(player.MatchIDs),
	}
}

// MapPlayersToResponse converts domain players to API responses.
func MapPlayersToResponse(players []*domain.Player) []PlayerResponse {
	responses := make([]PlayerResponse, 0, len(players))
	for _, player := range players {
		responses = append(responses, MapPlayerToResponse(player))
	}
	return responses
}

// MapPlayerStatsToResponse converts player statistics to an API response.
func MapPlayerStatsToResponse(stats *domain.PlayerStats) PlayerStatsResponse {
	return PlayerStatsResponse{
		Name:          stats.Player.Name,
		TotalScore:    stats.Player.TotalScore,
		MatchesPlayed: stats.Player.MatchesPlayed,
		WinRate:       strconv.Itoa(stats.Player.WinRate) + "%",
		RecentMatches: MapMatchesToResponse(stats.RecentMatches),
	}
}
