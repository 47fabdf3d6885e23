package typeguard

// CheckType reports whether val satisfies v. It never fails loudly; all
// rejection detail is discarded.
func CheckType(v Validator, val any) bool {
	return Check(v, val)
}

// AssertType validates val against v, returning an *AssertionError whose
// message is "<context>: <path-qualified message>" on rejection. With no
// context the default "Type assertion failed" prefix is used. A nil return
// means val conforms.
func AssertType(v Validator, val any, context ...string) error {
	return Assert(v, val, context...)
}

// CheckTypeWith is the legacy overload of CheckType: on rejection it
// invokes onError with the rendered failure message before returning
// false.
func CheckTypeWith(v Validator, val any, onError func(message string)) bool {
	res := v.Validate(val)
	if res.Valid() {
		return true
	}
	if onError != nil {
		onError(res.Err().Message())
	}
	return false
}
