package tftparse_test

import (
	"fmt"

	tftparse "github.com/tftdata/tft-parse"
)

// A match-history response is usually decoded once and then navigated
// through the typed views.
func ExampleWrapMatch() {
	record := map[string]any{
		"metadata": map[string]any{
			"match_id": "OC1_4517281242",
		},
		"info": map[string]any{
			"game_version":   "Version 11.3.355.9966 (Feb 04 2021/11:14:43) [PUBLIC]",
			"queue_id":       1100,
			"tft_set_number": 4,
		},
	}

	match := tftparse.WrapMatch(record)

	region, _ := match.Region()
	patch, _ := match.Patch()
	ranked, _ := match.IsRanked()

	fmt.Println(region, patch, ranked)
	// Output: OC1 11.3 true
}

// Lookups never fall back to defaults: data that is not there is an error.
func ExampleValue_Get() {
	v := tftparse.Wrap(map[string]any{"region": "OC1"})

	if _, err := v.Get("patch"); err != nil {
		fmt.Println(err)
	}
	// Output: "patch": key not found
}

func ExampleChampionStats() {
	match := tftparse.WrapMatch(map[string]any{
		"info": map[string]any{
			"participants": []any{
				map[string]any{
					"units": []any{
						map[string]any{
							"character_id": "TFT4_Aatrox",
							"items":        []any{39, 9, 79},
							"tier":         3,
						},
					},
				},
			},
		},
	})

	info, _ := match.Info()
	participants, _ := info.Participants()
	units, _ := participants[0].Units()

	stats := tftparse.NewChampionStats("TFT4_Aatrox")
	if err := stats.AddUnit(units[0]); err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(stats.Occurrence, stats.Combos["9,39,79"])
	// Output: 1 1
}
