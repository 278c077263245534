// Package types contains the render-ready shapes returned to view consumers.
package types

// Row is a single rendered leaderboard table row.
type Row struct {
	Rank       int     `json:"rank"`
	EntrantID  string  `json:"entrant_id"`
	Name       string  `json:"name"`
	Avatar     string  `json:"avatar"`
	Department string  `json:"department"`
	Team       string  `json:"team"`
	Points     int     `json:"points"`
	Revenue    float64 `json:"revenue"`
	NPS        float64 `json:"nps"`
	XP         int     `json:"xp"`
	Tier       string  `json:"tier"`
	Trend      string  `json:"trend"`
}

// Position is the "your position" summary card for the current subject.
type Position struct {
	EntrantID string `json:"entrant_id"`
	Name      string `json:"name"`
	Rank      int    `json:"rank"`
	XP        int    `json:"xp"`
	Tier      string `json:"tier"`
	// InScope is false when the subject was filtered out of the current
	// view and Rank carries the unfiltered fallback instead.
	InScope bool `json:"in_scope"`
}

// Pager mirrors the pagination controls state of a board view.
type Pager struct {
	CurrentPage int  `json:"current_page"`
	TotalPages  int  `json:"total_pages"`
	HasMore     bool `json:"has_more"`
}

// ViewModel is the assembled, render-ready board view.
type ViewModel struct {
	// Podium holds the top finishers, at most three. Missing places are
	// omitted rather than padded.
	Podium      []Row    `json:"podium"`
	Rows        []Row    `json:"rows"`
	Position    Position `json:"position"`
	Pager       Pager    `json:"pager"`
	LastUpdated string   `json:"last_updated"`
}
