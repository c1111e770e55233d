// Package json pins the jsoniter configuration used throughout the
// codebase so every encode/decode path behaves like encoding/json.
package json

import (
	stdjson "encoding/json"

	jsoniter "github.com/json-iterator/go"
)

// Number and RawMessage are the standard library types; jsoniter
// produces and consumes them directly.
type (
	Number     = stdjson.Number
	RawMessage = stdjson.RawMessage
)

var (
	// JSON is the jsoniter instance shared by the whole module.
	JSON = jsoniter.ConfigCompatibleWithStandardLibrary

	// Marshal is a shorthand for JSON.Marshal.
	Marshal = JSON.Marshal

	// MarshalIndent is a shorthand for JSON.MarshalIndent.
	MarshalIndent = JSON.MarshalIndent

	// Unmarshal is a shorthand for JSON.Unmarshal.
	Unmarshal = JSON.Unmarshal

	// Valid is a shorthand for JSON.Valid.
	Valid = JSON.Valid

	// NewDecoder is a shorthand for JSON.NewDecoder.
	NewDecoder = JSON.NewDecoder

	// NewEncoder is a shorthand for JSON.NewEncoder.
	NewEncoder = JSON.NewEncoder
)
