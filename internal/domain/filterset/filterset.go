// Package filterset narrows an entrant list by search text, categorical
// selections, and view scope. Predicates compose with logical AND; the
// output is always a stable subsequence of the input and the input is
// never mutated.
package filterset

import (
	"strings"

	"github.com/playmetrics/podium/internal/domain/model"
	"github.com/playmetrics/podium/internal/domain/score"
	"github.com/playmetrics/podium/internal/domain/tier"
)

// Scope selects which slice of the organization a view covers.
type Scope string

// View scopes.
const (
	ScopeCurrentTeam    Scope = "current-team"
	ScopeDepartments    Scope = "departments"
	ScopeAllDepartments Scope = "all-departments"
)

// TierAll is the sentinel tier selection meaning "no tier filter".
const TierAll = "all"

// State is one immutable filter selection. An empty field means the
// corresponding predicate passes everything through.
type State struct {
	Search     string
	Department string
	Tier       string
	Scope      Scope
}

// Option applies a configuration option to the Filter.
type Option func(*Filter)

// WithNormalizer sets the normalizer used for tier predicates.
func WithNormalizer(n *score.Normalizer) Option {
	return func(f *Filter) {
		if n != nil {
			f.norm = n
		}
	}
}

// WithLadder sets the ladder used for tier predicates.
func WithLadder(l tier.Ladder) Option {
	return func(f *Filter) {
		if l.Len() > 0 {
			f.ladder = l
		}
	}
}

// Filter applies a State to entrant lists. The tier predicate classifies
// each entrant on the fly, so the Filter needs the same normalizer and
// ladder the rest of the pipeline uses.
type Filter struct {
	norm   *score.Normalizer
	ladder tier.Ladder
}

// New creates a Filter with configuration options.
func New(opts ...Option) *Filter {
	f := &Filter{
		norm:   score.NewNormalizer(),
		ladder: tier.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Apply returns the entrants matching every active predicate, in input
// order. Applying the same State twice is a fixed point.
func (f *Filter) Apply(entrants []model.Entrant, st State, subject model.Subject) []model.Entrant {
	needle := strings.ToLower(strings.TrimSpace(st.Search))

	out := make([]model.Entrant, 0, len(entrants))
	for _, e := range entrants {
		if !f.inScope(e, st, subject) {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(e.Name), needle) {
			continue
		}
		if st.Department != "" && e.Department != st.Department {
			continue
		}
		if !f.matchesTier(e, st.Tier) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func (f *Filter) inScope(e model.Entrant, st State, subject model.Subject) bool {
	switch st.Scope {
	case ScopeCurrentTeam:
		return e.Team == subject.Team
	case ScopeDepartments:
		// Department narrowing is carried by the department predicate;
		// the scope itself passes everything through.
		return true
	case ScopeAllDepartments, "":
		return true
	default:
		return true
	}
}

func (f *Filter) matchesTier(e model.Entrant, selected string) bool {
	if selected == "" || selected == TierAll {
		return true
	}
	xp := f.norm.Resolve(e.Points, e.XP)
	return f.ladder.Classify(xp).Name == selected
}
