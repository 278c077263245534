package demofeed

import (
	"encoding/json"
	"net/http"
	"sort"
	"sync"
	"time"
)

// Wire shapes mirroring the upstream payload contract.
type payloadEntrant struct {
	ID         string  `json:"id,omitempty"`
	Name       string  `json:"name"`
	Avatar     string  `json:"avatar"`
	Department string  `json:"department"`
	Team       string  `json:"team"`
	Points     int     `json:"points"`
	Revenue    float64 `json:"revenue"`
	NPS        float64 `json:"nps"`
	Trend      int     `json:"trend"`
	XP         *int    `json:"xp,omitempty"`
	Rank       int     `json:"rank"`
}

type payloadSubject struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Team   string `json:"team"`
	Points int    `json:"points"`
	Rank   int    `json:"rank"`
}

type payloadTier struct {
	Name  string `json:"name"`
	MinXP int    `json:"minXP"`
}

type payload struct {
	Leaderboard []payloadEntrant `json:"leaderboard"`
	CurrentUser payloadSubject   `json:"currentUser"`
	LevelTiers  []payloadTier    `json:"levelTiers"`
	LastUpdated string           `json:"lastUpdated"`
}

// Server serves GET /leaderboard with a drifting demo payload.
type Server struct {
	mu  sync.Mutex
	gen *Generator
}

// NewServer creates a demo feed server around a generator.
func NewServer(gen *Generator) *Server {
	return &Server{gen: gen}
}

// Register attaches the demo routes to mux.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("/leaderboard", s.handleLeaderboard)
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	s.mu.Lock()
	s.gen.drift()
	p := s.gen.payload()
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(p)
}

// payload snapshots the roster into the wire shape, with upstream ranks
// assigned by points so the subject's fallback rank is meaningful.
func (g *Generator) payload() payload {
	rows := make([]payloadEntrant, len(g.roster))
	order := make([]int, len(g.roster))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return g.roster[order[a]].points > g.roster[order[b]].points
	})

	rankOf := make(map[int]int, len(order))
	for pos, idx := range order {
		rankOf[idx] = pos + 1
	}

	for i, e := range g.roster {
		row := payloadEntrant{
			ID:         e.id,
			Name:       e.name,
			Avatar:     e.avatar,
			Department: e.department,
			Team:       e.team,
			Points:     e.points,
			Revenue:    e.revenue,
			NPS:        e.nps,
			Trend:      e.trend,
			Rank:       rankOf[i],
		}
		if e.hasXPField {
			xp := e.points / 10
			row.XP = &xp
		}
		rows[i] = row
	}

	subject := g.roster[g.subjectIdx]
	return payload{
		Leaderboard: rows,
		CurrentUser: payloadSubject{
			ID:     subject.id,
			Name:   subject.name,
			Team:   subject.team,
			Points: subject.points,
			Rank:   rankOf[g.subjectIdx],
		},
		LevelTiers: []payloadTier{
			{Name: "Master", MinXP: 1500},
			{Name: "Elite", MinXP: 1200},
			{Name: "Diamond", MinXP: 500},
			{Name: "Platinum", MinXP: 300},
			{Name: "Gold", MinXP: 200},
			{Name: "Silver", MinXP: 100},
			{Name: "Bronze", MinXP: 0},
		},
		LastUpdated: time.Now().UTC().Format(time.RFC3339),
	}
}
