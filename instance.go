package typeguard

import (
	"reflect"

	"github.com/typeguard/validator/pkg/value"
)

// Instance returns a validator accepting runtime instances of T: values
// whose dynamic type is assignable to T, including implementations when T
// is an interface.
func Instance[T any]() Validator {
	return instanceValidator{target: reflect.TypeOf((*T)(nil)).Elem()}
}

// InstanceOf is the non-generic form of Instance for callers holding a
// reflect.Type descriptor. A nil target is a construction-time programmer
// error.
func InstanceOf(target reflect.Type) Validator {
	if target == nil {
		panic("typeguard: InstanceOf requires a non-nil target type")
	}
	return instanceValidator{target: target}
}

type instanceValidator struct {
	target reflect.Type
}

func (iv instanceValidator) Validate(v any) Result {
	t := reflect.TypeOf(v)
	if t != nil && t.AssignableTo(iv.target) {
		return OK()
	}
	return Invalid("Expected an instance of " + iv.target.String() + ", found " + describeInstance(v))
}

// describeInstance names the value's type when it has a discoverable
// class-like name, falling back to a raw rendering of the value itself.
func describeInstance(v any) string {
	if v == nil {
		return "null"
	}
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	// Named types declared in a package count as classes; builtins and
	// anonymous shapes do not.
	if t.Name() != "" && t.PkgPath() != "" {
		return t.Name()
	}
	return value.Render(v)
}
