// Package tier classifies XP values into named performance bands.
package tier

// Tier is a named performance band with an inclusive XP lower bound.
type Tier struct {
	Name  string `json:"name"`
	MinXP int    `json:"min_xp"`
}

// Ladder is an ordered list of tiers, descending by MinXP, whose last
// element has MinXP zero and acts as a total catch-all.
type Ladder struct {
	tiers []Tier
}

// NewLadder validates and wraps a tier list. The list must be non-empty,
// non-increasing in MinXP, and end in a zero threshold.
func NewLadder(tiers []Tier) (Ladder, error) {
	if len(tiers) == 0 {
		return Ladder{}, ErrEmptyLadder
	}
	for i := 1; i < len(tiers); i++ {
		if tiers[i].MinXP > tiers[i-1].MinXP {
			return Ladder{}, ErrNotDescending
		}
	}
	if tiers[len(tiers)-1].MinXP != 0 {
		return Ladder{}, ErrNoCatchAll
	}
	own := make([]Tier, len(tiers))
	copy(own, tiers)
	return Ladder{tiers: own}, nil
}

// Default returns the stock ladder used when neither configuration nor the
// payload supplies one.
func Default() Ladder {
	return Ladder{tiers: []Tier{
		{Name: "Master", MinXP: 1500},
		{Name: "Elite", MinXP: 1200},
		{Name: "Diamond", MinXP: 500},
		{Name: "Platinum", MinXP: 300},
		{Name: "Gold", MinXP: 200},
		{Name: "Silver", MinXP: 100},
		{Name: "Bronze", MinXP: 0},
	}}
}

// Classify returns the first tier whose threshold the XP meets or exceeds.
// Given the catch-all invariant it always returns exactly one tier; when
// two tiers share a threshold the earlier one in list order wins.
func (l Ladder) Classify(xp int) Tier {
	for _, t := range l.tiers {
		if xp >= t.MinXP {
			return t
		}
	}
	// Negative XP cannot happen through the normalizer, but the ladder
	// still answers with the catch-all rather than a zero Tier.
	return l.tiers[len(l.tiers)-1]
}

// Tiers returns a copy of the ladder contents in order.
func (l Ladder) Tiers() []Tier {
	out := make([]Tier, len(l.tiers))
	copy(out, l.tiers)
	return out
}

// Contains reports whether the ladder has a tier with the given name.
func (l Ladder) Contains(name string) bool {
	for _, t := range l.tiers {
		if t.Name == name {
			return true
		}
	}
	return false
}

// Len reports the number of tiers in the ladder.
func (l Ladder) Len() int {
	return len(l.tiers)
}
