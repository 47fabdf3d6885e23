package typeguard

import (
	"reflect"

	"github.com/typeguard/validator/pkg/value"
)

// Property pairs an object key with the validator for its value.
type Property struct {
	Name      string
	Validator Validator
}

// Prop constructs a Property.
func Prop(name string, v Validator) Property {
	return Property{Name: name, Validator: v}
}

// Object returns a validator over keyed records. Properties are checked
// in the order they are listed, short-circuiting on the first failure,
// which keeps diagnostics deterministic. The validator is structurally
// open: keys not listed here are never inspected or rejected.
//
// Every listed property is required and non-nullable as far as Object is
// concerned; optionality or nullability of a property is expressed by
// wrapping that property's validator in Optional or Nullable.
func Object(props ...Property) Validator {
	ps := make([]Property, len(props))
	copy(ps, props)
	return objectValidator{props: ps}
}

type objectValidator struct {
	props []Property
}

func (o objectValidator) Validate(v any) Result {
	if value.IsNull(v) || value.TypeOf(v) != value.TagObject {
		return Invalid("Expected an object, found " + value.Describe(v))
	}
	lookup := keyLookup(v)
	for _, p := range o.props {
		pv, present := lookup(p.Name)
		if !present {
			pv = value.Missing
		}
		res := p.Validator.Validate(pv)
		if res.Valid() {
			continue
		}
		if !present {
			// The missing-property message stands alone, unqualified.
			return Invalid(`Missing required property "` + p.Name + `"`)
		}
		return Fail(WrapPath(res.Err(), FieldSegment(p.Name)))
	}
	return OK()
}

// keyLookup returns a property accessor for v. Records are string-keyed
// maps; any other object-kind value (sequences, instances) simply has no
// keys, so every lookup on it reports absence.
func keyLookup(v any) func(string) (any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return func(key string) (any, bool) {
			pv, ok := m[key]
			return pv, ok
		}
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String {
		keyType := rv.Type().Key()
		return func(key string) (any, bool) {
			mv := rv.MapIndex(reflect.ValueOf(key).Convert(keyType))
			if !mv.IsValid() {
				return nil, false
			}
			return mv.Interface(), true
		}
	}
	return func(string) (any, bool) {
		return nil, false
	}
}
