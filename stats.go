package tftparse

import (
	"fmt"
	"strconv"
	"strings"

	json "github.com/tftdata/tft-parse/jsoncompat"
)

// UnitAggregator folds units from match records into a running tally.
type UnitAggregator interface {
	// AddUnit counts one unit toward the tally. Units that do not belong
	// in the tally are rejected with an error and leave it unchanged.
	AddUnit(u Unit) error
}

// Compile-time conformance checks.
var (
	_ UnitAggregator = (*ChampionStats)(nil)
	_ UnitAggregator = (*ItemStats)(nil)
)

// ChampionStats tallies how one champion is played across matches: how often
// it shows up, which chosen traits it carries, which items it holds overall
// and per star level, and how far it gets starred up. The zero value is not
// usable; build tallies with NewChampionStats or ParseChampionStats.
//
// The JSON field names line up with tallies written by earlier collectors,
// so stored documents keep loading.
type ChampionStats struct {
	// ChampionName is the unit character ID the tally accepts,
	// e.g. "TFT4_Zilean".
	ChampionName string         `json:"champion_name"`
	Occurrence   int            `json:"occurrence"`
	ChosenDist   map[string]int `json:"chosen_dist"`

	// Item usage, overall and per star level. Keys are single item IDs.
	Items      map[string]int `json:"item"`
	ItemsStar1 map[string]int `json:"item_1"`
	ItemsStar2 map[string]int `json:"item_2"`
	ItemsStar3 map[string]int `json:"item_3"`

	// Full item sets, overall and per star level. Keys are sorted item IDs
	// joined with commas, e.g. "9,39,79".
	Combos      map[string]int `json:"item_comb"`
	CombosStar1 map[string]int `json:"item_comb1"`
	CombosStar2 map[string]int `json:"item_comb2"`
	CombosStar3 map[string]int `json:"item_comb3"`

	TierDist map[int]int `json:"tier_dist"`
}

// NewChampionStats returns an empty tally for one champion. characterID is
// the unit character ID the tally accepts, e.g. "TFT4_Zilean".
func NewChampionStats(characterID string) *ChampionStats {
	return &ChampionStats{
		ChampionName: characterID,
		ChosenDist:   map[string]int{},
		Items:        map[string]int{},
		ItemsStar1:   map[string]int{},
		ItemsStar2:   map[string]int{},
		ItemsStar3:   map[string]int{},
		Combos:       map[string]int{},
		CombosStar1:  map[string]int{},
		CombosStar2:  map[string]int{},
		CombosStar3:  map[string]int{},
		TierDist:     map[int]int{},
	}
}

// ParseChampionStats loads a champion tally from its JSON form, e.g. a
// document read back from storage. The loaded tally keeps aggregating where
// it left off. Documents missing any tally map are rejected.
func ParseChampionStats(data []byte) (*ChampionStats, error) {
	var cs ChampionStats
	if err := json.Unmarshal(data, &cs); err != nil {
		return nil, fmt.Errorf("parsing champion stats: %w", err)
	}
	if err := cs.validate(); err != nil {
		return nil, err
	}
	return &cs, nil
}

func (cs *ChampionStats) validate() error {
	if cs.ChampionName == "" {
		return fmt.Errorf("champion stats without champion_name: %w", ErrNotInitialized)
	}
	if !cs.initialized() {
		return fmt.Errorf("champion stats %q: %w", cs.ChampionName, ErrNotInitialized)
	}
	return nil
}

func (cs *ChampionStats) initialized() bool {
	return cs.ChosenDist != nil &&
		cs.Items != nil && cs.ItemsStar1 != nil && cs.ItemsStar2 != nil && cs.ItemsStar3 != nil &&
		cs.Combos != nil && cs.CombosStar1 != nil && cs.CombosStar2 != nil && cs.CombosStar3 != nil &&
		cs.TierDist != nil
}

// AddUnit counts one unit toward the champion's tally. The unit's character
// ID must match the tally's; the unit's fields are all read before anything
// is counted, so a failed read leaves the tally unchanged.
func (cs *ChampionStats) AddUnit(u Unit) error {
	if !cs.initialized() {
		return fmt.Errorf("champion stats %q: %w", cs.ChampionName, ErrNotInitialized)
	}
	id, err := u.CharacterID()
	if err != nil {
		return err
	}
	if id != cs.ChampionName {
		return fmt.Errorf("unit %q added to champion stats %q: %w", id, cs.ChampionName, ErrWrongChampion)
	}
	chosen, err := u.Chosen()
	if err != nil {
		return err
	}
	items, err := u.Items()
	if err != nil {
		return err
	}
	tier, err := u.Tier()
	if err != nil {
		return err
	}

	cs.Occurrence++
	if chosen != "" {
		cs.ChosenDist[chosen]++
	}
	starItems, starCombos := cs.starMaps(tier)
	for _, item := range items {
		key := strconv.Itoa(item)
		cs.Items[key]++
		if starItems != nil {
			starItems[key]++
		}
	}
	if len(items) > 0 {
		key := itemComboKey(items)
		cs.Combos[key]++
		if starCombos != nil {
			starCombos[key]++
		}
	}
	cs.TierDist[tier]++
	return nil
}

// starMaps returns the per-star buckets for a star level, or nil, nil for
// levels outside 1 through 3.
func (cs *ChampionStats) starMaps(tier int) (items, combos map[string]int) {
	switch tier {
	case 1:
		return cs.ItemsStar1, cs.CombosStar1
	case 2:
		return cs.ItemsStar2, cs.CombosStar2
	case 3:
		return cs.ItemsStar3, cs.CombosStar3
	}
	return nil, nil
}

// ItemStats tallies how one item is used across matches: which champions
// hold it, what full item sets it appears in, and which items sit next to
// it. The zero value is not usable; build tallies with NewItemStats or
// ParseItemStats.
type ItemStats struct {
	// ItemID is the item the tally accepts.
	ItemID int `json:"item_id"`

	// Champions counts holders by unit character ID.
	Champions map[string]int `json:"champion"`

	// Combinations counts the rest of the holder's items, keyed like
	// ChampionStats.Combos. The empty key counts units that carried the
	// item alone.
	Combinations map[string]int `json:"combination"`

	// OtherItems counts each item seen next to this one.
	OtherItems map[int]int `json:"other_item"`
}

// NewItemStats returns an empty tally for one item.
func NewItemStats(itemID int) *ItemStats {
	return &ItemStats{
		ItemID:       itemID,
		Champions:    map[string]int{},
		Combinations: map[string]int{},
		OtherItems:   map[int]int{},
	}
}

// ParseItemStats loads an item tally from its JSON form. The loaded tally
// keeps aggregating where it left off. Documents missing any tally map are
// rejected.
func ParseItemStats(data []byte) (*ItemStats, error) {
	var is ItemStats
	if err := json.Unmarshal(data, &is); err != nil {
		return nil, fmt.Errorf("parsing item stats: %w", err)
	}
	if err := is.validate(); err != nil {
		return nil, err
	}
	return &is, nil
}

func (is *ItemStats) validate() error {
	if !is.initialized() {
		return fmt.Errorf("item stats %d: %w", is.ItemID, ErrNotInitialized)
	}
	return nil
}

func (is *ItemStats) initialized() bool {
	return is.Champions != nil && is.Combinations != nil && is.OtherItems != nil
}

// AddUnit counts one unit toward the item's tally. The unit must hold the
// item at least once; one copy is set aside and the rest are counted as the
// items used alongside. A failed read leaves the tally unchanged.
func (is *ItemStats) AddUnit(u Unit) error {
	if !is.initialized() {
		return fmt.Errorf("item stats %d: %w", is.ItemID, ErrNotInitialized)
	}
	id, err := u.CharacterID()
	if err != nil {
		return err
	}
	items, err := u.Items()
	if err != nil {
		return err
	}
	rest, ok := removeFirst(items, is.ItemID)
	if !ok {
		return fmt.Errorf("unit %q does not hold item %d: %w", id, is.ItemID, ErrWrongItem)
	}

	is.Champions[id]++
	is.Combinations[itemComboKey(rest)]++
	for _, item := range rest {
		is.OtherItems[item]++
	}
	return nil
}

// itemComboKey builds the tally key for an item set: the IDs joined with
// commas. Callers pass sorted IDs so equal sets share a key.
func itemComboKey(items []int) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = strconv.Itoa(item)
	}
	return strings.Join(parts, ",")
}

// removeFirst returns items with the first occurrence of item removed,
// reporting whether it was present. The input slice is left untouched.
func removeFirst(items []int, item int) ([]int, bool) {
	for i, it := range items {
		if it == item {
			rest := make([]int, 0, len(items)-1)
			rest = append(rest, items[:i]...)
			return append(rest, items[i+1:]...), true
		}
	}
	return items, false
}
