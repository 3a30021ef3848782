package domain

// Server is a game server identified by its endpoint.
type Server struct {
	Endpoint string   `json:"endpoint"`
	Name     string   `json:"name"`
	Region   string   `json:"region"`
	MatchIDs []string `json:"matchIds"`
	Rating   float64  `json:"rating"`
}

// MatchCount returns how many matches were played on the server.
func (s *Server) MatchCount() int {
	return len(s.MatchIDs)
}

// AddMatch appends a match id to the server history.
func (s *Server) AddMatch(matchID string) {
	s.MatchIDs = append(s.MatchIDs, matchID)
}

// ServerStats summarizes a server.
type ServerStats struct {
	Name       string
	Region     string
	MatchCount int
	Rating     float64
}

// Stats builds the server summary.
func (s *Server) Stats() *ServerStats {
	return &ServerStats{
		Name:       s.Name,
		Region:     s.Region,
		MatchCount: s.MatchCount(),
		Rating:     s.Rating,
	}
}
