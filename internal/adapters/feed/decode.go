package feed

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/playmetrics/podium/internal/domain/model"
)

// wirePayload mirrors the upstream JSON contract. Optional fields are
// pointers so absence is distinguishable from zero.
type wirePayload struct {
	Leaderboard []json.RawMessage `json:"leaderboard"`
	CurrentUser json.RawMessage   `json:"currentUser"`
	LevelTiers  []wireLevelTier   `json:"levelTiers"`
	LastUpdated string            `json:"lastUpdated"`
}

type wireLevelTier struct {
	Name  string `json:"name"`
	MinXP int    `json:"minXP"`
}

// DecodeSnapshot parses a payload into a Snapshot under the graceful
// degradation policy: a malformed payload envelope is an error, but
// row-level defects (missing or mistyped fields) are defaulted, counted
// in Snapshot.RowDefects, and never abort decoding.
//
// Entrants keep their upstream id when one is present; otherwise a UUID
// is minted so every downstream identity lookup works on opaque IDs.
// When the current user carries no id, it adopts the id of the entrant
// row with the same display name. That name comparison happens exactly
// once, here, and nowhere downstream.
func DecodeSnapshot(data []byte, generation uint64) (model.Snapshot, error) {
	var payload wirePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return model.Snapshot{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	snap := model.Snapshot{
		Entrants:    make([]model.Entrant, 0, len(payload.Leaderboard)),
		LastUpdated: payload.LastUpdated,
		Generation:  generation,
	}

	for _, raw := range payload.Leaderboard {
		entrant, defective := decodeEntrant(raw)
		if defective {
			snap.RowDefects++
		}
		snap.Entrants = append(snap.Entrants, entrant)
	}

	subject, defective := decodeSubject(payload.CurrentUser)
	if defective {
		snap.RowDefects++
	}
	if subject.ID == "" {
		subject.ID = adoptSubjectID(subject.Name, snap.Entrants)
	}
	snap.Subject = subject

	snap.LevelTiers = decodeLevelTiers(payload.LevelTiers)
	return snap, nil
}

// decodeEntrant extracts one leaderboard row field by field so a single
// mistyped value defaults that value instead of dropping the row.
func decodeEntrant(raw json.RawMessage) (model.Entrant, bool) {
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		// Not even an object; keep a fully defaulted row so counts and
		// pagination stay honest about the upstream list length.
		return model.Entrant{ID: uuid.NewString()}, true
	}

	defective := false
	e := model.Entrant{
		ID:         getString(fields, "id", nil),
		Name:       getString(fields, "name", &defective),
		Avatar:     getString(fields, "avatar", nil),
		Department: getString(fields, "department", &defective),
		Team:       getString(fields, "team", nil),
		Points:     getInt(fields, "points", &defective),
		Revenue:    getFloat(fields, "revenue", nil),
		NPS:        getFloat(fields, "nps", nil),
		XP:         getOptionalInt(fields, "xp"),
		Trend:      getTrend(fields, &defective),
		Rank:       getInt(fields, "rank", nil),
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return e, defective
}

func decodeSubject(raw json.RawMessage) (model.Subject, bool) {
	if len(raw) == 0 {
		return model.Subject{}, true
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return model.Subject{}, true
	}
	defective := false
	return model.Subject{
		ID:         getString(fields, "id", nil),
		Name:       getString(fields, "name", &defective),
		Department: getString(fields, "department", nil),
		Team:       getString(fields, "team", nil),
		Points:     getInt(fields, "points", &defective),
		XP:         getOptionalInt(fields, "xp"),
		Rank:       getInt(fields, "rank", nil),
	}, defective
}

// decodeLevelTiers sorts the override ladder descending by threshold.
// Validity (catch-all present, thresholds sane) is judged at assembly
// time; an unusable ladder falls back to the configured one there.
func decodeLevelTiers(tiers []wireLevelTier) []model.LevelTier {
	if len(tiers) == 0 {
		return nil
	}
	out := make([]model.LevelTier, 0, len(tiers))
	for _, t := range tiers {
		if t.Name == "" {
			continue
		}
		out = append(out, model.LevelTier{Name: t.Name, MinXP: t.MinXP})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].MinXP > out[j].MinXP })
	return out
}

func adoptSubjectID(name string, entrants []model.Entrant) string {
	if name != "" {
		for _, e := range entrants {
			if e.Name == name {
				return e.ID
			}
		}
	}
	return uuid.NewString()
}

func getString(fields map[string]json.RawMessage, key string, defective *bool) string {
	raw, ok := fields[key]
	if !ok {
		markDefect(defective)
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		markDefect(defective)
		return ""
	}
	return s
}

func getInt(fields map[string]json.RawMessage, key string, defective *bool) int {
	raw, ok := fields[key]
	if !ok {
		markDefect(defective)
		return 0
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		markDefect(defective)
		return 0
	}
	return int(f)
}

func getFloat(fields map[string]json.RawMessage, key string, defective *bool) float64 {
	raw, ok := fields[key]
	if !ok {
		markDefect(defective)
		return 0
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		markDefect(defective)
		return 0
	}
	return f
}

func getOptionalInt(fields map[string]json.RawMessage, key string) *int {
	raw, ok := fields[key]
	if !ok {
		return nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil
	}
	v := int(f)
	return &v
}

// getTrend accepts both upstream trend encodings: a signed number or the
// strings "up" / "down" / "flat".
func getTrend(fields map[string]json.RawMessage, defective *bool) int {
	raw, ok := fields["trend"]
	if !ok {
		markDefect(defective)
		return 0
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		switch {
		case f > 0:
			return 1
		case f < 0:
			return -1
		default:
			return 0
		}
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		switch s {
		case "up":
			return 1
		case "down":
			return -1
		case "flat":
			return 0
		}
	}
	markDefect(defective)
	return 0
}

func markDefect(defective *bool) {
	if defective != nil {
		*defective = true
	}
}
