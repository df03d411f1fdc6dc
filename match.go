package tftparse

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"time"

	"github.com/blang/semver/v4"

	json "github.com/tftdata/tft-parse/jsoncompat"
)

// patchPattern pulls the patch number out of a game version string such as
// "Version 11.6.365.1240 (Mar 17 2021/14:12:01) [PUBLIC]".
var patchPattern = regexp.MustCompile(`Version (.*?\..*?)\.`)

// Match is the root view over one match-history record, as returned by the
// match endpoints. It never copies or validates the record; every accessor
// reads the underlying data on call and reports missing or mismatched fields
// as errors.
type Match struct {
	v Value

	// Logger, when set, receives notes about fields that degrade without
	// failing an accessor outright, such as a game version the patch
	// number cannot be read from. Optional.
	Logger Logger
}

// WrapMatch wraps an already decoded match record, normally the result of
// unmarshaling the endpoint response into an any. The record is taken as-is;
// schema problems surface later, from the accessor that trips over them.
func WrapMatch(data any) *Match {
	return &Match{v: Wrap(data)}
}

// ParseMatch decodes a raw match-history response body and wraps it.
func ParseMatch(data []byte) (*Match, error) {
	return DecodeMatch(bytes.NewReader(data))
}

// DecodeMatch decodes one match-history record from r and wraps it.
func DecodeMatch(r io.Reader) (*Match, error) {
	data, err := json.DecodeValue(r)
	if err != nil {
		return nil, fmt.Errorf("decoding match: %w", err)
	}
	return WrapMatch(data), nil
}

// Value returns the wrapped record for free-form navigation beyond the
// typed accessors.
func (m *Match) Value() Value { return m.v }

// Metadata returns the metadata section of the record.
func (m *Match) Metadata() (Metadata, error) {
	v, err := m.v.Get("metadata")
	if err != nil {
		return Metadata{}, err
	}
	return Metadata{v: v}, nil
}

// Info returns the info section of the record.
func (m *Match) Info() (Info, error) {
	v, err := m.v.Get("info")
	if err != nil {
		return Info{}, err
	}
	return Info{v: v, log: m.Logger}, nil
}

// Region is shorthand for Metadata().Region().
func (m *Match) Region() (string, error) {
	md, err := m.Metadata()
	if err != nil {
		return "", err
	}
	return md.Region()
}

// Patch is shorthand for Info().Patch().
func (m *Match) Patch() (string, error) {
	info, err := m.Info()
	if err != nil {
		return "", err
	}
	return info.Patch()
}

// SetNumber is shorthand for Info().SetNumber().
func (m *Match) SetNumber() (int, error) {
	info, err := m.Info()
	if err != nil {
		return 0, err
	}
	return info.SetNumber()
}

// IsRanked is shorthand for Info().IsRanked().
func (m *Match) IsRanked() (bool, error) {
	info, err := m.Info()
	if err != nil {
		return false, err
	}
	return info.IsRanked()
}

// Metadata is a view over the metadata section of a match record.
type Metadata struct {
	v Value
}

// Value returns the wrapped metadata object.
func (md Metadata) Value() Value { return md.v }

// DataVersion returns the match data schema version, e.g. "5".
func (md Metadata) DataVersion() (string, error) {
	return getString(md.v, "data_version")
}

// MatchID returns the match ID, e.g. "OC1_4517281242".
func (md Metadata) MatchID() (string, error) {
	return getString(md.v, "match_id")
}

// Participants returns the PUUIDs of all players in the match.
func (md Metadata) Participants() ([]string, error) {
	vals, err := getValues(md.v, "participants")
	if err != nil {
		return nil, err
	}
	out := make([]string, len(vals))
	for i, pv := range vals {
		s, err := pv.String()
		if err != nil {
			return nil, fmt.Errorf("participants[%d]: %w", i, err)
		}
		out[i] = s
	}
	return out, nil
}

// Region returns the platform region prefix of the match ID, e.g. "OC1".
func (md Metadata) Region() (string, error) {
	id, err := md.MatchID()
	if err != nil {
		return "", err
	}
	region, _, ok := SplitMatchID(id)
	if !ok {
		return "", fmt.Errorf("match id %q: %w", id, ErrBadMatchID)
	}
	return region, nil
}

// MatchNumber returns the numeric suffix of the match ID, e.g. "4517281242".
func (md Metadata) MatchNumber() (string, error) {
	id, err := md.MatchID()
	if err != nil {
		return "", err
	}
	_, number, ok := SplitMatchID(id)
	if !ok {
		return "", fmt.Errorf("match id %q: %w", id, ErrBadMatchID)
	}
	return number, nil
}

// RouteRegion returns the routing region that serves this match's region.
func (md Metadata) RouteRegion() (Route, error) {
	region, err := md.Region()
	if err != nil {
		return "", err
	}
	return RouteForRegion(region)
}

// Info is a view over the info section of a match record.
type Info struct {
	v   Value
	log Logger
}

// Value returns the wrapped info object.
func (in Info) Value() Value { return in.v }

// GameDatetime returns the game creation time, in UTC. The record stores it
// as Unix milliseconds.
func (in Info) GameDatetime() (time.Time, error) {
	v, err := in.v.Get("game_datetime")
	if err != nil {
		return time.Time{}, err
	}
	millis, err := v.Int64()
	if err != nil {
		return time.Time{}, fmt.Errorf("game_datetime: %w", err)
	}
	return time.UnixMilli(millis).UTC(), nil
}

// GameLength returns the game duration in seconds.
func (in Info) GameLength() (float64, error) {
	return getFloat(in.v, "game_length")
}

// GameVersion returns the full build string the match was played on.
func (in Info) GameVersion() (string, error) {
	return getString(in.v, "game_version")
}

// QueueID returns the queue the match was played in. See the Queue constants.
func (in Info) QueueID() (int, error) {
	return getInt(in.v, "queue_id")
}

// SetNumber returns the Teamfight Tactics set the match was played on.
func (in Info) SetNumber() (int, error) {
	return getInt(in.v, "tft_set_number")
}

// IsRanked reports whether the match counted toward the ranked ladder.
func (in Info) IsRanked() (bool, error) {
	queue, err := in.QueueID()
	if err != nil {
		return false, err
	}
	return queue == QueueRanked, nil
}

// Patch extracts the patch number from the game version, e.g. "11.3". A game
// version the pattern cannot match is reported as ErrNoPatch and noted on the
// match's Logger.
func (in Info) Patch() (string, error) {
	version, err := in.GameVersion()
	if err != nil {
		return "", err
	}
	m := patchPattern.FindStringSubmatch(version)
	if m == nil {
		logWarn(in.log, "no patch number in game version", "game_version", version)
		return "", fmt.Errorf("game version %q: %w", version, ErrNoPatch)
	}
	logDebug(in.log, "patch extracted", "patch", m[1], "game_version", version)
	return m[1], nil
}

// PatchVersion returns the patch as a semantic version, so patches order
// correctly where a string compare would not ("9.24" sorts after "9.3").
func (in Info) PatchVersion() (semver.Version, error) {
	patch, err := in.Patch()
	if err != nil {
		return semver.Version{}, err
	}
	ver, err := semver.ParseTolerant(patch)
	if err != nil {
		return semver.Version{}, fmt.Errorf("patch %q: %w", patch, err)
	}
	return ver, nil
}

// Participants returns the per-player results, in record order.
func (in Info) Participants() ([]Participant, error) {
	vals, err := getValues(in.v, "participants")
	if err != nil {
		return nil, err
	}
	out := make([]Participant, len(vals))
	for i, pv := range vals {
		out[i] = Participant{v: pv}
	}
	return out, nil
}

// WinPlayers returns the PUUIDs of the players who gained LP, i.e. placed in
// the top four.
func (in Info) WinPlayers() ([]string, error) {
	return in.playersByOutcome(true)
}

// LosePlayers returns the PUUIDs of the players who lost LP.
func (in Info) LosePlayers() ([]string, error) {
	return in.playersByOutcome(false)
}

func (in Info) playersByOutcome(won bool) ([]string, error) {
	participants, err := in.Participants()
	if err != nil {
		return nil, err
	}
	var out []string
	for i, p := range participants {
		gained, err := p.GainedLP()
		if err != nil {
			return nil, fmt.Errorf("participants[%d]: %w", i, err)
		}
		if gained != won {
			continue
		}
		puuid, err := p.PUUID()
		if err != nil {
			return nil, fmt.Errorf("participants[%d]: %w", i, err)
		}
		out = append(out, puuid)
	}
	return out, nil
}

// WinTraits returns the active trait labels of each winning player's board,
// one list per player.
func (in Info) WinTraits() ([][]string, error) {
	return in.traitsByOutcome(true)
}

// LoseTraits returns the active trait labels of each losing player's board.
func (in Info) LoseTraits() ([][]string, error) {
	return in.traitsByOutcome(false)
}

func (in Info) traitsByOutcome(won bool) ([][]string, error) {
	participants, err := in.Participants()
	if err != nil {
		return nil, err
	}
	var out [][]string
	for i, p := range participants {
		gained, err := p.GainedLP()
		if err != nil {
			return nil, fmt.Errorf("participants[%d]: %w", i, err)
		}
		if gained != won {
			continue
		}
		traits, err := p.ActiveTraits()
		if err != nil {
			return nil, fmt.Errorf("participants[%d]: %w", i, err)
		}
		out = append(out, traits)
	}
	return out, nil
}

// WinUnits returns the final board of each winning player, one unit list per
// player.
func (in Info) WinUnits() ([][]Unit, error) {
	return in.unitsByOutcome(true)
}

// LoseUnits returns the final board of each losing player.
func (in Info) LoseUnits() ([][]Unit, error) {
	return in.unitsByOutcome(false)
}

func (in Info) unitsByOutcome(won bool) ([][]Unit, error) {
	participants, err := in.Participants()
	if err != nil {
		return nil, err
	}
	var out [][]Unit
	for i, p := range participants {
		gained, err := p.GainedLP()
		if err != nil {
			return nil, fmt.Errorf("participants[%d]: %w", i, err)
		}
		if gained != won {
			continue
		}
		units, err := p.Units()
		if err != nil {
			return nil, fmt.Errorf("participants[%d]: %w", i, err)
		}
		out = append(out, units)
	}
	return out, nil
}

// Placements maps each placement to the PUUID that finished there.
func (in Info) Placements() (map[int]string, error) {
	participants, err := in.Participants()
	if err != nil {
		return nil, err
	}
	out := make(map[int]string, len(participants))
	for i, p := range participants {
		placement, err := p.Placement()
		if err != nil {
			return nil, fmt.Errorf("participants[%d]: %w", i, err)
		}
		puuid, err := p.PUUID()
		if err != nil {
			return nil, fmt.Errorf("participants[%d]: %w", i, err)
		}
		out[placement] = puuid
	}
	return out, nil
}

// PlacementSummary is the end-of-game line for one placement.
type PlacementSummary struct {
	Level                int
	LastRound            int
	GoldLeft             int
	TotalDamageToPlayers int
	TimeEliminated       float64
}

// PlacementSummaries maps each placement to that player's end-of-game line.
func (in Info) PlacementSummaries() (map[int]PlacementSummary, error) {
	participants, err := in.Participants()
	if err != nil {
		return nil, err
	}
	out := make(map[int]PlacementSummary, len(participants))
	for i, p := range participants {
		placement, err := p.Placement()
		if err != nil {
			return nil, fmt.Errorf("participants[%d]: %w", i, err)
		}
		summary, err := p.summary()
		if err != nil {
			return nil, fmt.Errorf("participants[%d]: %w", i, err)
		}
		out[placement] = summary
	}
	return out, nil
}

// getString reads an object key as a string.
func getString(v Value, key string) (string, error) {
	child, err := v.Get(key)
	if err != nil {
		return "", err
	}
	s, err := child.String()
	if err != nil {
		return "", fmt.Errorf("%s: %w", key, err)
	}
	return s, nil
}

// getInt reads an object key as an int.
func getInt(v Value, key string) (int, error) {
	child, err := v.Get(key)
	if err != nil {
		return 0, err
	}
	n, err := child.Int()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

// getFloat reads an object key as a float64.
func getFloat(v Value, key string) (float64, error) {
	child, err := v.Get(key)
	if err != nil {
		return 0, err
	}
	f, err := child.Float64()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}

// getValues reads an object key as an array and returns its elements.
func getValues(v Value, key string) ([]Value, error) {
	child, err := v.Get(key)
	if err != nil {
		return nil, err
	}
	vals, err := child.Values()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return vals, nil
}
