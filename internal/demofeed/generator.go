// Package demofeed serves randomized leaderboard payloads so the board
// service can run locally without the real upstream API.
package demofeed

import (
	"math/rand"

	"github.com/google/uuid"
)

// Default generator configuration constants.
const (
	defaultRosterSize = 40
	defaultSeed       = 42
	maxPointsStart    = 20000
	maxPointsDrift    = 500
)

var firstNames = []string{
	"Alex", "Jordan", "Sam", "Riley", "Casey", "Morgan", "Taylor", "Jamie",
	"Avery", "Quinn", "Dana", "Reese", "Skyler", "Drew", "Emerson", "Harper",
}

var lastNames = []string{
	"Nguyen", "Garcia", "Smith", "Okafor", "Kim", "Hassan", "Brown", "Silva",
	"Kowalski", "Ivanov", "Tanaka", "Mehta", "Dubois", "Ricci", "Larsen", "Novak",
}

var departments = []string{"Sales", "Support", "Retention", "Onboarding"}

var teams = map[string][]string{
	"Sales":      {"Closers", "Hunters"},
	"Support":    {"Night Owls", "First Line"},
	"Retention":  {"Keepers", "Winback"},
	"Onboarding": {"Launchpad"},
}

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithRosterSize sets the number of generated entrants.
func WithRosterSize(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.rosterSize = n
		}
	}
}

// WithSeed sets the random seed for a reproducible roster.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// entrant is the generator's mutable roster row.
type entrant struct {
	id         string
	name       string
	avatar     string
	department string
	team       string
	points     int
	revenue    float64
	nps        float64
	trend      int
	hasXPField bool
}

// Generator maintains a fixed roster whose scores drift on every payload,
// so trends and rank movement look alive across refreshes.
type Generator struct {
	rosterSize int
	seed       int64
	rng        *rand.Rand
	roster     []entrant
	subjectIdx int
}

// NewGenerator creates a Generator with configuration options.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		rosterSize: defaultRosterSize,
		seed:       defaultSeed,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.rng = rand.New(rand.NewSource(g.seed)) //nolint:gosec // deterministic demo data
	g.buildRoster()
	return g
}

func (g *Generator) buildRoster() {
	g.roster = make([]entrant, g.rosterSize)
	for i := range g.roster {
		first := firstNames[g.rng.Intn(len(firstNames))]
		last := lastNames[g.rng.Intn(len(lastNames))]
		dept := departments[g.rng.Intn(len(departments))]
		deptTeams := teams[dept]
		g.roster[i] = entrant{
			id:         uuid.NewString(),
			name:       first + " " + last,
			avatar:     string(first[0]) + string(last[0]),
			department: dept,
			team:       deptTeams[g.rng.Intn(len(deptTeams))],
			points:     g.rng.Intn(maxPointsStart),
			revenue:    float64(g.rng.Intn(500_000)) / 10.0,
			nps:        float64(g.rng.Intn(1000)) / 10.0,
			// Roughly a third of rows carry a precomputed xp field so
			// the normalizer's override path gets exercised.
			hasXPField: g.rng.Intn(3) == 0,
		}
	}
	g.subjectIdx = g.rng.Intn(len(g.roster))
}

// drift nudges every entrant's scores and derives trends from the nudge.
func (g *Generator) drift() {
	for i := range g.roster {
		delta := g.rng.Intn(2*maxPointsDrift+1) - maxPointsDrift
		g.roster[i].points += delta
		if g.roster[i].points < 0 {
			g.roster[i].points = 0
		}
		g.roster[i].revenue += float64(delta) * 2.5
		if g.roster[i].revenue < 0 {
			g.roster[i].revenue = 0
		}
		switch {
		case delta > 0:
			g.roster[i].trend = 1
		case delta < 0:
			g.roster[i].trend = -1
		default:
			g.roster[i].trend = 0
		}
	}
}
