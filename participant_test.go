package tftparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	json "github.com/tftdata/tft-parse/jsoncompat"
)

// fixtureParticipants returns the players of the reference match in record
// order: placements 4, 7, 1, 8, 2, 5, 3, 6.
func fixtureParticipants(t *testing.T) []Participant {
	t.Helper()

	info, err := loadMatch(t).Info()
	require.NoError(t, err)

	participants, err := info.Participants()
	require.NoError(t, err)
	require.Len(t, participants, 8)
	return participants
}

func TestParticipant_Fields(t *testing.T) {
	winner := fixtureParticipants(t)[2]

	placement, err := winner.Placement()
	require.NoError(t, err)
	assert.Equal(t, 1, placement)

	goldLeft, err := winner.GoldLeft()
	require.NoError(t, err)
	assert.Equal(t, 4, goldLeft)

	lastRound, err := winner.LastRound()
	require.NoError(t, err)
	assert.Equal(t, 35, lastRound)

	level, err := winner.Level()
	require.NoError(t, err)
	assert.Equal(t, 9, level)

	eliminated, err := winner.PlayersEliminated()
	require.NoError(t, err)
	assert.Equal(t, 3, eliminated)

	puuid, err := winner.PUUID()
	require.NoError(t, err)
	assert.Equal(t, fixturePUUIDs(t)[2], puuid)

	timeEliminated, err := winner.TimeEliminated()
	require.NoError(t, err)
	assert.Equal(t, 2095.48095703125, timeEliminated)

	damage, err := winner.TotalDamageToPlayers()
	require.NoError(t, err)
	assert.Equal(t, 171, damage)
}

func TestParticipant_Companion(t *testing.T) {
	winner := fixtureParticipants(t)[2]

	companion, err := winner.Companion()
	require.NoError(t, err)
	assert.Equal(t, KindObject, companion.Kind())

	species, err := companion.Get("species")
	require.NoError(t, err)
	name, err := species.String()
	require.NoError(t, err)
	assert.Equal(t, "PetUFO", name)
}

func TestParticipant_GainedLP(t *testing.T) {
	tests := []struct {
		name      string
		placement int
		want      bool
	}{
		{name: "first", placement: 1, want: true},
		{name: "fourth", placement: 4, want: true},
		{name: "fifth", placement: 5, want: false},
		{name: "eighth", placement: 8, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Participant{v: Wrap(map[string]any{"placement": tt.placement})}

			gained, err := p.GainedLP()
			require.NoError(t, err)
			assert.Equal(t, tt.want, gained)
		})
	}
}

func TestParticipant_MissingFields(t *testing.T) {
	p := Participant{v: Wrap(map[string]any{"placement": 1})}

	_, err := p.PUUID()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.Contains(t, err.Error(), `"puuid"`)

	_, err = p.Units()
	assert.ErrorIs(t, err, ErrKeyNotFound)

	p = Participant{v: Wrap(map[string]any{"placement": "first"})}
	_, err = p.Placement()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKindMismatch)
	assert.Contains(t, err.Error(), "placement")
}

func TestParticipant_Traits(t *testing.T) {
	winner := fixtureParticipants(t)[2]

	traits, err := winner.Traits()
	require.NoError(t, err)
	require.Len(t, traits, 3)

	cultist := traits[0]

	name, err := cultist.Name()
	require.NoError(t, err)
	assert.Equal(t, "Set4_Cultist", name)

	numUnits, err := cultist.NumUnits()
	require.NoError(t, err)
	assert.Equal(t, 6, numUnits)

	style, err := cultist.Style()
	require.NoError(t, err)
	assert.Equal(t, 3, style)

	tierCurrent, err := cultist.TierCurrent()
	require.NoError(t, err)
	assert.Equal(t, 2, tierCurrent)

	tierTotal, err := cultist.TierTotal()
	require.NoError(t, err)
	assert.Equal(t, 3, tierTotal)

	active, err := cultist.IsActive()
	require.NoError(t, err)
	assert.True(t, active)

	label, err := cultist.Label()
	require.NoError(t, err)
	assert.Equal(t, "Set4_Cultist_3", label)

	keeper := traits[1]

	active, err = keeper.IsActive()
	require.NoError(t, err)
	assert.False(t, active)

	label, err = keeper.Label()
	require.NoError(t, err)
	assert.Equal(t, "Set4_Keeper_0", label)
}

func TestParticipant_ActiveTraits(t *testing.T) {
	t.Run("inactive traits filtered out", func(t *testing.T) {
		winner := fixtureParticipants(t)[2]

		active, err := winner.ActiveTraits()
		require.NoError(t, err)
		assert.Equal(t, []string{"Set4_Cultist_3", "Set4_Mystic_1"}, active)
	})

	t.Run("no active traits", func(t *testing.T) {
		p := Participant{v: Wrap(map[string]any{
			"traits": []any{
				map[string]any{"name": "Set4_Keeper", "style": 0},
			},
		})}

		active, err := p.ActiveTraits()
		require.NoError(t, err)
		assert.Empty(t, active)
	})

	t.Run("trait missing style", func(t *testing.T) {
		p := Participant{v: Wrap(map[string]any{
			"traits": []any{map[string]any{"name": "Set4_Keeper"}},
		})}

		_, err := p.ActiveTraits()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrKeyNotFound)
		assert.Contains(t, err.Error(), "traits[0]")
	})
}

func TestUnit_Fields(t *testing.T) {
	winner := fixtureParticipants(t)[2]

	units, err := winner.Units()
	require.NoError(t, err)
	require.Len(t, units, 3)

	aatrox := units[1]

	id, err := aatrox.CharacterID()
	require.NoError(t, err)
	assert.Equal(t, "TFT4_Aatrox", id)

	// The record stores [39, 9, 79].
	items, err := aatrox.Items()
	require.NoError(t, err)
	assert.Equal(t, []int{9, 39, 79}, items)

	chosen, err := aatrox.Chosen()
	require.NoError(t, err)
	assert.Equal(t, "Set4_Cultist", chosen)

	isChosen, err := aatrox.IsChosen()
	require.NoError(t, err)
	assert.True(t, isChosen)

	rarity, err := aatrox.Rarity()
	require.NoError(t, err)
	assert.Equal(t, 1, rarity)

	cost, err := aatrox.Cost()
	require.NoError(t, err)
	assert.Equal(t, 2, cost)

	tier, err := aatrox.Tier()
	require.NoError(t, err)
	assert.Equal(t, 3, tier)

	star, err := aatrox.StarLevel()
	require.NoError(t, err)
	assert.Equal(t, tier, star)

	name, err := aatrox.Name()
	require.NoError(t, err)
	assert.Equal(t, "", name)

	champion, err := aatrox.ChampionName()
	require.NoError(t, err)
	assert.Equal(t, "Aatrox", champion)
}

func TestUnit_Chosen(t *testing.T) {
	t.Run("absent key means not chosen", func(t *testing.T) {
		u := Unit{v: Wrap(map[string]any{"character_id": "TFT4_Zilean"})}

		chosen, err := u.Chosen()
		require.NoError(t, err)
		assert.Equal(t, "", chosen)

		isChosen, err := u.IsChosen()
		require.NoError(t, err)
		assert.False(t, isChosen)
	})

	t.Run("wrong kind still fails", func(t *testing.T) {
		u := Unit{v: Wrap(map[string]any{"chosen": 7})}

		_, err := u.Chosen()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrKindMismatch)
	})

	t.Run("non-object unit fails rather than defaults", func(t *testing.T) {
		u := Unit{v: Wrap("TFT4_Zilean")}

		_, err := u.Chosen()
		assert.ErrorIs(t, err, ErrKindMismatch)
	})
}

func TestUnit_ItemsLeaveRecordUntouched(t *testing.T) {
	raw := []any{json.Number("39"), json.Number("9"), json.Number("79")}
	u := Unit{v: Wrap(map[string]any{"items": raw})}

	items, err := u.Items()
	require.NoError(t, err)
	assert.Equal(t, []int{9, 39, 79}, items)

	// Sorting happened on a copy; the wrapped record keeps its order.
	assert.Equal(t, []any{json.Number("39"), json.Number("9"), json.Number("79")}, raw)
}

func TestUnit_ItemErrors(t *testing.T) {
	u := Unit{v: Wrap(map[string]any{"items": []any{39, "thief's gloves"}})}

	_, err := u.Items()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKindMismatch)
	assert.Contains(t, err.Error(), "items[1]")

	u = Unit{v: Wrap(map[string]any{"items": "none"})}
	_, err = u.Items()
	assert.ErrorIs(t, err, ErrKindMismatch)
}

func TestChampionDisplayName(t *testing.T) {
	tests := []struct {
		name        string
		characterID string
		want        string
	}{
		{name: "two-word name", characterID: "TFT4_MissFortune", want: "Miss Fortune"},
		{name: "two-word name with article", characterID: "TFT4_TahmKench", want: "Tahm Kench"},
		{name: "single word", characterID: "TFT4_Zilean", want: "Zilean"},
		{name: "mid-set prefix", characterID: "TFT4b_Tristana", want: "Tristana"},
		{name: "no prefix", characterID: "TwistedFate", want: "Twisted Fate"},
		{name: "empty", characterID: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ChampionDisplayName(tt.characterID))
		})
	}
}
