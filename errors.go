package tftparse

import "errors"

// Sentinel errors returned by value lookups, match accessors and the stats
// aggregators. Returned errors wrap these with key, index or kind context, so
// callers should match them with errors.Is.
var (
	// ErrKeyNotFound reports a lookup of a key absent from an object value.
	ErrKeyNotFound = errors.New("key not found")

	// ErrKindMismatch reports an access that does not fit the value's kind,
	// such as a key lookup on a string or a numeric read of an object.
	ErrKindMismatch = errors.New("kind mismatch")

	// ErrIndexOutOfRange reports an array access outside [0, len).
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrUnknownRegion reports a match region with no routing region.
	ErrUnknownRegion = errors.New("unknown region")

	// ErrBadMatchID reports a match ID without the <region>_<number> shape.
	ErrBadMatchID = errors.New("malformed match id")

	// ErrNoPatch reports a game version string the patch number could not be
	// extracted from.
	ErrNoPatch = errors.New("no patch number in game version")

	// ErrNotInitialized reports use of a zero-value stats aggregate. Build one
	// with NewChampionStats or NewItemStats, or load one from JSON.
	ErrNotInitialized = errors.New("stats not initialized")

	// ErrWrongChampion reports a unit added to stats kept for another champion.
	ErrWrongChampion = errors.New("unit belongs to a different champion")

	// ErrWrongItem reports a unit that does not carry the item the stats track.
	ErrWrongItem = errors.New("unit does not carry the tracked item")
)
