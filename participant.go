package tftparse

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"
)

// Participant is a view over one player's result within a match.
type Participant struct {
	v Value
}

// Value returns the wrapped participant object.
func (p Participant) Value() Value { return p.v }

// Companion returns the player's Little Legend as a raw value; its schema
// varies across sets, so it stays unmodeled.
func (p Participant) Companion() (Value, error) {
	return p.v.Get("companion")
}

// GoldLeft returns the gold the player was holding when eliminated.
func (p Participant) GoldLeft() (int, error) {
	return getInt(p.v, "gold_left")
}

// LastRound returns the last round the player was alive for. Rounds count
// across stages, e.g. stage 4 round 2 of standard play is round 23.
func (p Participant) LastRound() (int, error) {
	return getInt(p.v, "last_round")
}

// Level returns the player's little legend level at the end of the game.
func (p Participant) Level() (int, error) {
	return getInt(p.v, "level")
}

// Placement returns the player's final placement, 1 through 8.
func (p Participant) Placement() (int, error) {
	return getInt(p.v, "placement")
}

// PlayersEliminated returns how many players this player eliminated.
func (p Participant) PlayersEliminated() (int, error) {
	return getInt(p.v, "players_eliminated")
}

// PUUID returns the player's universally unique identifier.
func (p Participant) PUUID() (string, error) {
	return getString(p.v, "puuid")
}

// TimeEliminated returns the number of seconds before the player was
// eliminated.
func (p Participant) TimeEliminated() (float64, error) {
	return getFloat(p.v, "time_eliminated")
}

// TotalDamageToPlayers returns the damage the player dealt to other players.
func (p Participant) TotalDamageToPlayers() (int, error) {
	return getInt(p.v, "total_damage_to_players")
}

// Traits returns the player's trait tallies, active and inactive.
func (p Participant) Traits() ([]Trait, error) {
	vals, err := getValues(p.v, "traits")
	if err != nil {
		return nil, err
	}
	out := make([]Trait, len(vals))
	for i, tv := range vals {
		out[i] = Trait{v: tv}
	}
	return out, nil
}

// Units returns the player's final board.
func (p Participant) Units() ([]Unit, error) {
	vals, err := getValues(p.v, "units")
	if err != nil {
		return nil, err
	}
	out := make([]Unit, len(vals))
	for i, uv := range vals {
		out[i] = Unit{v: uv}
	}
	return out, nil
}

// ActiveTraits returns the labels of the traits the player had active.
func (p Participant) ActiveTraits() ([]string, error) {
	traits, err := p.Traits()
	if err != nil {
		return nil, err
	}
	var out []string
	for i, t := range traits {
		active, err := t.IsActive()
		if err != nil {
			return nil, fmt.Errorf("traits[%d]: %w", i, err)
		}
		if !active {
			continue
		}
		label, err := t.Label()
		if err != nil {
			return nil, fmt.Errorf("traits[%d]: %w", i, err)
		}
		out = append(out, label)
	}
	return out, nil
}

// GainedLP reports whether the player gained LP, i.e. placed in the top four.
func (p Participant) GainedLP() (bool, error) {
	placement, err := p.Placement()
	if err != nil {
		return false, err
	}
	return placement <= 4, nil
}

// summary collects the fields PlacementSummaries reports per player.
func (p Participant) summary() (PlacementSummary, error) {
	var s PlacementSummary
	var err error
	if s.Level, err = p.Level(); err != nil {
		return PlacementSummary{}, err
	}
	if s.LastRound, err = p.LastRound(); err != nil {
		return PlacementSummary{}, err
	}
	if s.GoldLeft, err = p.GoldLeft(); err != nil {
		return PlacementSummary{}, err
	}
	if s.TotalDamageToPlayers, err = p.TotalDamageToPlayers(); err != nil {
		return PlacementSummary{}, err
	}
	if s.TimeEliminated, err = p.TimeEliminated(); err != nil {
		return PlacementSummary{}, err
	}
	return s, nil
}

// Trait is a view over one trait tally on a participant's board.
type Trait struct {
	v Value
}

// Value returns the wrapped trait object.
func (t Trait) Value() Value { return t.v }

// Name returns the trait name, e.g. "Set4_Cultist".
func (t Trait) Name() (string, error) {
	return getString(t.v, "name")
}

// NumUnits returns how many units on the board carry the trait.
func (t Trait) NumUnits() (int, error) {
	return getInt(t.v, "num_units")
}

// Style returns the activation style: 0 none, 1 bronze, 2 silver, 3 gold,
// 4 chromatic.
func (t Trait) Style() (int, error) {
	return getInt(t.v, "style")
}

// TierCurrent returns the trait tier the tally reached.
func (t Trait) TierCurrent() (int, error) {
	return getInt(t.v, "tier_current")
}

// TierTotal returns the number of tiers the trait has.
func (t Trait) TierTotal() (int, error) {
	return getInt(t.v, "tier_total")
}

// IsActive reports whether the trait was active, i.e. styled bronze or
// better.
func (t Trait) IsActive() (bool, error) {
	style, err := t.Style()
	if err != nil {
		return false, err
	}
	return style > 0, nil
}

// Label returns the name and style joined as "name_style", e.g.
// "Set4_Cultist_2". Labels distinguish activation levels when tallying
// board compositions.
func (t Trait) Label() (string, error) {
	name, err := t.Name()
	if err != nil {
		return "", err
	}
	style, err := t.Style()
	if err != nil {
		return "", err
	}
	return name + "_" + strconv.Itoa(style), nil
}

// Unit is a view over one unit on a participant's final board.
type Unit struct {
	v Value
}

// Value returns the wrapped unit object.
func (u Unit) Value() Value { return u.v }

// Items returns the unit's item IDs, sorted ascending. The returned slice is
// a copy; sorting never touches the wrapped record.
func (u Unit) Items() ([]int, error) {
	vals, err := getValues(u.v, "items")
	if err != nil {
		return nil, err
	}
	out := make([]int, len(vals))
	for i, iv := range vals {
		n, err := iv.Int()
		if err != nil {
			return nil, fmt.Errorf("items[%d]: %w", i, err)
		}
		out[i] = n
	}
	sort.Ints(out)
	return out, nil
}

// CharacterID returns the unit's character ID, e.g. "TFT4_MissFortune".
func (u Unit) CharacterID() (string, error) {
	return getString(u.v, "character_id")
}

// Name returns the unit's name field. The endpoints often leave it blank;
// prefer CharacterID.
func (u Unit) Name() (string, error) {
	return getString(u.v, "name")
}

// Chosen returns the chosen trait of the unit, e.g. "Set4_Duelist". Units
// that are not chosen carry no such key at all, so a missing key means ""
// here rather than an error.
func (u Unit) Chosen() (string, error) {
	v, err := u.v.Get("chosen")
	if errors.Is(err, ErrKeyNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	s, err := v.String()
	if err != nil {
		return "", fmt.Errorf("chosen: %w", err)
	}
	return s, nil
}

// IsChosen reports whether the unit is the board's chosen unit.
func (u Unit) IsChosen() (bool, error) {
	chosen, err := u.Chosen()
	if err != nil {
		return false, err
	}
	return chosen != "", nil
}

// Rarity returns the unit's rarity band. Rarity is zero-based and not the
// same as shop cost; see Cost.
func (u Unit) Rarity() (int, error) {
	return getInt(u.v, "rarity")
}

// Cost returns the unit's shop cost, i.e. rarity plus one.
func (u Unit) Cost() (int, error) {
	rarity, err := u.Rarity()
	if err != nil {
		return 0, err
	}
	return rarity + 1, nil
}

// Tier returns the unit's star level, 1 through 3.
func (u Unit) Tier() (int, error) {
	return getInt(u.v, "tier")
}

// StarLevel is an alias for Tier.
func (u Unit) StarLevel() (int, error) {
	return u.Tier()
}

// ChampionName returns the unit's display name derived from its character
// ID, e.g. "Miss Fortune" for "TFT4_MissFortune".
func (u Unit) ChampionName() (string, error) {
	id, err := u.CharacterID()
	if err != nil {
		return "", err
	}
	return ChampionDisplayName(id), nil
}

// ChampionDisplayName derives a human-readable champion name from a
// character ID by dropping the set prefix and splitting the camel-cased
// remainder into words.
func ChampionDisplayName(characterID string) string {
	name := characterID
	if i := strings.IndexByte(name, '_'); i >= 0 {
		name = name[i+1:]
	}
	words := strings.Fields(strcase.ToDelimited(name, ' '))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
