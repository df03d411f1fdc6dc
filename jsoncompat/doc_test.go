package json_test

// This package is a thin compatibility layer over encoding/json and
// encoding/json/v2 and delegates everything to the standard library.
//
// DecodeValue and the marshal helpers are exercised through the root package
// tests against testdata/match.json.
