package tftparse

import (
	"fmt"
	"strings"
)

// Route is the regional routing value that shards Riot's match endpoints.
// Every platform region is served by exactly one route.
type Route string

// Routing regions.
const (
	RouteAmericas Route = "AMERICAS"
	RouteAsia     Route = "ASIA"
	RouteEurope   Route = "EUROPE"
)

// Teamfight Tactics queue IDs as they appear in info.queue_id. Only
// QueueRanked affects ladder LP; Hyper Roll and Double Up keep separate
// ratings.
const (
	QueueNormal    = 1090
	QueueRanked    = 1100
	QueueTutorial  = 1110
	QueueHyperRoll = 1130
	QueueDoubleUp  = 1160
)

// routes maps a platform region to the routing region serving its matches.
var routes = map[string]Route{
	"NA1": RouteAmericas,
	"BR1": RouteAmericas,
	"LA1": RouteAmericas,
	"LA2": RouteAmericas,
	"OC1": RouteAmericas,

	"KR":  RouteAsia,
	"JP1": RouteAsia,

	"EUN1": RouteEurope,
	"EUW1": RouteEurope,
	"TR1":  RouteEurope,
	"RU":   RouteEurope,
}

// RouteForRegion returns the routing region for a platform region such as
// "OC1". Lookup is case-insensitive. Unknown regions return ErrUnknownRegion.
func RouteForRegion(region string) (Route, error) {
	route, ok := routes[strings.ToUpper(region)]
	if !ok {
		return "", fmt.Errorf("%q: %w", region, ErrUnknownRegion)
	}
	return route, nil
}

// SplitMatchID splits a match ID such as "OC1_4517281242" into its platform
// region prefix and match number. ok is false when the ID has no underscore
// separator; everything after the first underscore counts as the number.
func SplitMatchID(matchID string) (region, number string, ok bool) {
	return strings.Cut(matchID, "_")
}
