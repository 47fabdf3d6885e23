package typeguard

import (
	"math/big"
	"reflect"

	"github.com/shopspring/decimal"

	"github.com/typeguard/validator/pkg/value"
)

// Primitive returns a validator accepting exactly the values whose
// runtime kind equals tag.
//
// The object kind is reported the way the runtime classifies it: null,
// sequences, and class instances all satisfy Primitive(value.TagObject).
// Validators needing the finer distinction (Object, Array, Instance) do
// their own checks.
func Primitive(tag value.Tag) Validator {
	return primitiveValidator{want: tag}
}

// Undefined accepts only the missing sentinel.
func Undefined() Validator { return Primitive(value.TagUndefined) }

// Boolean accepts boolean values.
func Boolean() Validator { return Primitive(value.TagBoolean) }

// Number accepts numeric values.
func Number() Validator { return Primitive(value.TagNumber) }

// BigInt accepts arbitrary-precision integers.
func BigInt() Validator { return Primitive(value.TagBigInt) }

// String accepts string values.
func String() Validator { return Primitive(value.TagString) }

// Symbol accepts symbol values.
func Symbol() Validator { return Primitive(value.TagSymbol) }

type primitiveValidator struct {
	want value.Tag
}

func (p primitiveValidator) Validate(v any) Result {
	if value.TypeOf(v) == p.want {
		return OK()
	}
	return Invalid("Expected type " + string(p.want) + ", found " + value.Describe(v))
}

// Exact returns a validator accepting only values strictly equal to want:
// value equality for primitives, identity for everything else. No deep
// structural comparison is performed.
func Exact(want any) Validator {
	return exactValidator{want: want}
}

type exactValidator struct {
	want any
}

func (e exactValidator) Validate(v any) Result {
	if strictEqual(v, e.want) {
		return OK()
	}
	return Invalid("Expected exactly " + value.Render(e.want) + ", found " + value.Render(v))
}

// strictEqual compares two dynamic values without panicking on
// uncomparable kinds: arbitrary-precision and decimal numbers compare
// by numeric value, other comparable values use ==, sequences and
// records fall back to reference identity.
func strictEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if ia, ok := bigIntValue(a); ok {
		ib, ok := bigIntValue(b)
		return ok && ia.Cmp(ib) == 0
	}
	if da, ok := decimalValue(a); ok {
		db, ok := decimalValue(b)
		return ok && da.Equal(db)
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta.Comparable() {
		return a == b
	}
	switch ta.Kind() {
	case reflect.Map, reflect.Slice, reflect.Func:
		return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
	}
	return false
}

func bigIntValue(v any) (*big.Int, bool) {
	switch n := v.(type) {
	case *big.Int:
		return n, n != nil
	case big.Int:
		return &n, true
	}
	return nil, false
}

func decimalValue(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case decimal.Decimal:
		return n, true
	case *decimal.Decimal:
		if n != nil {
			return *n, true
		}
	}
	return decimal.Decimal{}, false
}

// Anything returns a validator that accepts every value. It intentionally
// stops validation at a point, e.g. Array(Anything()).
func Anything() Validator {
	return anythingValidator{}
}

type anythingValidator struct{}

func (anythingValidator) Validate(any) Result {
	return OK()
}
