package typeguard

import (
	"github.com/typeguard/validator/pool"
	"github.com/typeguard/validator/pkg/value"
)

// OneOf returns a validator accepting values strictly equal to one of the
// allowed literals. The list is ordered, must be non-empty, and its
// members are expected to be distinct. An empty list is a construction-time
// programmer error.
func OneOf(allowed ...any) Validator {
	if len(allowed) == 0 {
		panic("typeguard: OneOf requires at least one allowed literal")
	}
	members := make([]any, len(allowed))
	copy(members, allowed)
	return oneOfValidator{allowed: members}
}

type oneOfValidator struct {
	allowed []any
}

func (o oneOfValidator) Validate(v any) Result {
	for _, want := range o.allowed {
		if strictEqual(v, want) {
			return OK()
		}
	}
	pb := pool.AcquirePathBuilder()
	defer pb.Release()
	pb.WriteString("Expected one of [")
	for i, want := range o.allowed {
		if i > 0 {
			pb.WriteString(", ")
		}
		pb.WriteString(value.Render(want))
	}
	pb.WriteString("], found ")
	pb.WriteString(value.Render(v))
	return Invalid(pb.String())
}
