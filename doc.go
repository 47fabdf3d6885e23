// Package typeguard builds composable runtime validators for
// dynamically-typed values, e.g. parsed network payloads or deserialized
// records. Each validator both checks an unknown value and carries a
// precise description of the shape it accepts; rejections come back as
// human-readable, location-qualified messages for arbitrarily nested
// failures.
//
// # Quick Start
//
//	import tg "github.com/typeguard/validator"
//
//	person := tg.Object(
//	    tg.Prop("name", tg.String()),
//	    tg.Prop("age", tg.Number()),
//	    tg.Prop("nickname", tg.Optional(tg.String())),
//	)
//
//	res := person.Validate(decoded)
//	if !res.Valid() {
//	    fmt.Println(res.Err().Message())
//	    // e.g. Expected type number, found type string ($.age)
//	}
//
// Check and Assert adapt a result into a boolean or an error:
//
//	if tg.CheckType(person, decoded) { ... }
//	if err := tg.AssertType(person, decoded); err != nil { ... }
//
// # Composition
//
// Leaf validators check a single runtime kind (Number, String, Boolean,
// BigInt, Symbol, Undefined), an exact value (Exact), a literal set
// (OneOf), a runtime instance type (Instance), or nothing at all
// (Anything). Object and Array recurse into their children and annotate
// failures with a path segment; Optional, Nullable, AllowNullish, Union,
// and Intersection recurse without consuming one.
//
// Validators are immutable, stateless values: build them once with the
// factory functions and reuse them freely, including concurrently. The
// engine and worker subpackages build on that guarantee for instrumented
// and parallel batch validation.
package typeguard
