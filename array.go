package typeguard

import (
	"reflect"

	"github.com/typeguard/validator/pkg/value"
)

// Array returns a validator over homogeneous sequences, applying item to
// every element in index order and short-circuiting on the first failure.
// An empty sequence is always valid.
func Array(item Validator) Validator {
	return arrayValidator{item: item}
}

type arrayValidator struct {
	item Validator
}

func (a arrayValidator) Validate(v any) Result {
	switch s := v.(type) {
	case []any:
		for i, elem := range s {
			if res := a.item.Validate(elem); !res.Valid() {
				return Fail(WrapPath(res.Err(), IndexSegment(i)))
			}
		}
		return OK()
	}
	rv := reflect.ValueOf(v)
	if v == nil || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return Invalid("Expected an array, found " + value.Describe(v))
	}
	for i := 0; i < rv.Len(); i++ {
		if res := a.item.Validate(rv.Index(i).Interface()); !res.Valid() {
			return Fail(WrapPath(res.Err(), IndexSegment(i)))
		}
	}
	return OK()
}
