// Package value models the dynamic value space the validators operate on:
// parsed network payloads and deserialized records, plus the distinguished
// "missing" and "null" sentinels.
package value

import (
	"encoding/json"
	"math/big"

	"github.com/shopspring/decimal"
)

// Tag identifies the runtime kind of a dynamic value.
type Tag string

// The fixed set of runtime kinds.
const (
	TagUndefined Tag = "undefined"
	TagBoolean   Tag = "boolean"
	TagNumber    Tag = "number"
	TagBigInt    Tag = "bigint"
	TagString    Tag = "string"
	TagSymbol    Tag = "symbol"
	TagObject    Tag = "object"
)

// String returns the tag as it appears in diagnostic messages.
func (t Tag) String() string {
	return string(t)
}

// IsValid returns true if this is one of the fixed runtime kinds.
func (t Tag) IsValid() bool {
	switch t {
	case TagUndefined, TagBoolean, TagNumber, TagBigInt, TagString, TagSymbol, TagObject:
		return true
	default:
		return false
	}
}

type missingValue struct{}

// Missing is the sentinel for an absent value, distinct from null.
// Object substitutes it for keys not present on the input; Optional accepts it.
var Missing any = missingValue{}

// Symbol is an interned atom value with its own runtime kind.
type Symbol string

// TypeOf reports the runtime kind of v.
//
// Null, sequences, records, and class instances all report TagObject; the
// validators that need the finer distinction (Object, Array, Instance)
// perform their own checks instead of relying on this classification.
func TypeOf(v any) Tag {
	switch v.(type) {
	case missingValue:
		return TagUndefined
	case bool:
		return TagBoolean
	case float64, float32,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		json.Number, decimal.Decimal, *decimal.Decimal:
		return TagNumber
	case *big.Int, big.Int:
		return TagBigInt
	case string:
		return TagString
	case Symbol:
		return TagSymbol
	default:
		return TagObject
	}
}

// IsMissing reports whether v is the missing sentinel.
func IsMissing(v any) bool {
	_, ok := v.(missingValue)
	return ok
}

// IsNull reports whether v is the null sentinel.
func IsNull(v any) bool {
	return v == nil
}

// Describe returns the short descriptor used in rejection messages:
// "null" for the null sentinel, otherwise "type <tag>".
func Describe(v any) string {
	if IsNull(v) {
		return "null"
	}
	return "type " + string(TypeOf(v))
}
