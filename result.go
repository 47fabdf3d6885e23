package typeguard

import (
	"strconv"

	"github.com/typeguard/validator/pool"
)

// Error describes why a value was rejected.
//
// Problem is a complete, self-contained human-readable description that is
// not yet path-qualified. Path holds pre-formatted traversal segments
// (".name" or "[3]"); WrapPath prepends outer segments as the failure
// propagates, so after full propagation the sequence reads outer-to-inner.
//
// Errors are immutable values. They may be shared and reused across
// branches (Union keeps every branch's error alive while building its
// combined message), so nothing may modify one after construction.
type Error struct {
	Problem string   `json:"problem"`
	Path    []string `json:"path,omitempty"`
}

// Message renders the error as its single human-readable surface:
// the problem alone when the path is empty, otherwise
// "<problem> ($<segments>)", e.g.
// "Expected type number, found type string ($.val2.val3)".
func (e *Error) Message() string {
	if len(e.Path) == 0 {
		return e.Problem
	}
	pb := pool.AcquirePathBuilder()
	defer pb.Release()
	pb.WriteString(e.Problem)
	pb.WriteString(" ($")
	pb.WriteSegments(e.Path)
	pb.WriteByte(')')
	return pb.String()
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message()
}

// WrapPath returns a new Error with the outer segments prepended to err's
// path. The problem text is untouched and err itself is never mutated.
func WrapPath(err *Error, outer ...string) *Error {
	path := make([]string, 0, len(outer)+len(err.Path))
	path = append(path, outer...)
	path = append(path, err.Path...)
	return &Error{Problem: err.Problem, Path: path}
}

// FieldSegment formats the path segment for an object property.
func FieldSegment(name string) string {
	return "." + name
}

// IndexSegment formats the path segment for an array index.
func IndexSegment(index int) string {
	return "[" + strconv.Itoa(index) + "]"
}

// Result is the outcome of a single Validate call: either Ok, or Err
// carrying exactly one Error. Results are constructed once per call and
// never mutated.
type Result struct {
	err *Error
}

// OK returns a passing result.
func OK() Result {
	return Result{}
}

// Invalid returns a failing result with the given problem and optional
// pre-formatted path segments.
func Invalid(problem string, path ...string) Result {
	return Result{err: &Error{Problem: problem, Path: path}}
}

// Fail wraps an existing error into a failing result.
func Fail(err *Error) Result {
	return Result{err: err}
}

// Valid reports whether the validated value was accepted.
func (r Result) Valid() bool {
	return r.err == nil
}

// Err returns the rejection detail, or nil for a passing result.
func (r Result) Err() *Error {
	return r.err
}
