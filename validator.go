package typeguard

// Validator decides whether a dynamic value conforms to a type
// description and, if not, explains why.
//
// Validate must be a pure function of its argument and the validator's
// immutable construction-time configuration. Validators hold no per-call
// state, so a single instance is safe to invoke repeatedly and
// concurrently from multiple call sites.
type Validator interface {
	Validate(value any) Result
}

// Check reports whether value satisfies v. It never fails loudly and
// discards all error detail; callers needing the reason must call
// Validate directly or use Assert.
func Check(v Validator, value any) bool {
	return v.Validate(value).Valid()
}

// DefaultAssertContext prefixes assertion failures when Assert is not
// given an explicit context.
const DefaultAssertContext = "Type assertion failed"

// AssertionError is the failure returned by Assert and AssertType.
// It pairs the underlying validation error with a caller-supplied context.
type AssertionError struct {
	Context string
	Cause   *Error
}

// Error renders "<context>: <path-qualified message>".
func (e *AssertionError) Error() string {
	return e.Context + ": " + e.Cause.Message()
}

// Unwrap exposes the underlying validation error to errors.Is/As.
func (e *AssertionError) Unwrap() error {
	return e.Cause
}

// Assert validates value against v. On rejection it returns an
// *AssertionError; on success it returns nil and the caller may treat
// value as conforming.
func Assert(v Validator, value any, context ...string) error {
	res := v.Validate(value)
	if res.Valid() {
		return nil
	}
	ctx := DefaultAssertContext
	if len(context) > 0 && context[0] != "" {
		ctx = context[0]
	}
	return &AssertionError{Context: ctx, Cause: res.Err()}
}
