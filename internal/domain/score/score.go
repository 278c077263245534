// Package score converts raw leaderboard points into canonical XP.
//
// The Normalizer is the single authority for unit conversion: callers must
// never derive XP themselves or scatter field-or-derive fallbacks. When the
// upstream payload already carries an XP value, Resolve prefers it over
// derivation so a backend using a different conversion stays authoritative.
package score

// Default conversion configuration constants.
const (
	defaultRatio = 10 // raw points per XP
)

// Option applies a configuration option to the Normalizer.
type Option func(*Normalizer)

// WithRatio sets the points-to-XP conversion ratio.
func WithRatio(ratio int) Option {
	return func(n *Normalizer) {
		if ratio > 0 {
			n.ratio = ratio
		}
	}
}

// Normalizer converts raw points into XP at a fixed ratio.
type Normalizer struct {
	ratio int
}

// NewNormalizer creates a Normalizer with configuration options.
func NewNormalizer(opts ...Option) *Normalizer {
	n := &Normalizer{
		ratio: defaultRatio,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize derives XP from raw points: floor(points / ratio).
// Negative points clamp to zero XP; defaulted rows sort to the bottom
// rather than producing negative experience.
func (n *Normalizer) Normalize(points int) int {
	if points <= 0 {
		return 0
	}
	return points / n.ratio
}

// Resolve returns the canonical XP for an entrant: the supplied upstream
// value when present, the derived value otherwise.
func (n *Normalizer) Resolve(points int, supplied *int) int {
	if supplied != nil {
		return *supplied
	}
	return n.Normalize(points)
}

// Ratio reports the active conversion ratio.
func (n *Normalizer) Ratio() int {
	return n.ratio
}
