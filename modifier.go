package typeguard

import (
	"github.com/typeguard/validator/pkg/value"
)

// Optional accepts the missing sentinel, delegating everything else to v.
// It does not accept null; compose with Nullable for that.
func Optional(v Validator) Validator {
	return optionalValidator{inner: v}
}

type optionalValidator struct {
	inner Validator
}

func (o optionalValidator) Validate(v any) Result {
	if value.IsMissing(v) {
		return OK()
	}
	return o.inner.Validate(v)
}

// Nullable accepts the null sentinel, delegating everything else to v.
// It does not accept the missing sentinel; compose with Optional for that.
func Nullable(v Validator) Validator {
	return nullableValidator{inner: v}
}

type nullableValidator struct {
	inner Validator
}

func (n nullableValidator) Validate(v any) Result {
	if value.IsNull(v) {
		return OK()
	}
	return n.inner.Validate(v)
}

// AllowNullish accepts missing, null, or anything v accepts. It is pure
// composition of Optional and Nullable, not a distinct implementation.
func AllowNullish(v Validator) Validator {
	return Optional(Nullable(v))
}
