package typeguard

import "testing"

func TestResult_OK(t *testing.T) {
	r := OK()

	if !r.Valid() {
		t.Error("OK() should be valid")
	}
	if r.Err() != nil {
		t.Errorf("Err() = %v; want nil", r.Err())
	}
}

func TestResult_Invalid(t *testing.T) {
	r := Invalid("Expected type number, found type string")

	if r.Valid() {
		t.Error("Invalid() should not be valid")
	}
	if r.Err() == nil {
		t.Fatal("Err() = nil; want error")
	}
	if got := r.Err().Problem; got != "Expected type number, found type string" {
		t.Errorf("Problem = %q; want %q", got, "Expected type number, found type string")
	}
	if len(r.Err().Path) != 0 {
		t.Errorf("Path = %v; want empty", r.Err().Path)
	}
}

func TestError_Message_NoPath(t *testing.T) {
	e := &Error{Problem: "Expected type string, found type number"}

	if got := e.Message(); got != "Expected type string, found type number" {
		t.Errorf("Message() = %q; want problem verbatim", got)
	}
}

func TestError_Message_WithPath(t *testing.T) {
	e := &Error{
		Problem: "Expected type number, found type string",
		Path:    []string{".val2", ".val3"},
	}

	want := "Expected type number, found type string ($.val2.val3)"
	if got := e.Message(); got != want {
		t.Errorf("Message() = %q; want %q", got, want)
	}
}

func TestError_Message_MixedSegments(t *testing.T) {
	e := &Error{
		Problem: "Expected type boolean, found null",
		Path:    []string{".items", "[3]", ".flag"},
	}

	want := "Expected type boolean, found null ($.items[3].flag)"
	if got := e.Message(); got != want {
		t.Errorf("Message() = %q; want %q", got, want)
	}
}

func TestWrapPath_PrependsOuterSegments(t *testing.T) {
	inner := &Error{Problem: "boom", Path: []string{".leaf"}}

	wrapped := WrapPath(inner, "[4]")
	if got, want := wrapped.Message(), "boom ($[4].leaf)"; got != want {
		t.Errorf("Message() = %q; want %q", got, want)
	}

	outer := WrapPath(wrapped, ".root")
	if got, want := outer.Message(), "boom ($.root[4].leaf)"; got != want {
		t.Errorf("Message() = %q; want %q", got, want)
	}
}

// Wrapping with [a] then [b] must render outermost-first: b precedes a.
func TestWrapPath_OuterToInnerOrder(t *testing.T) {
	e := &Error{Problem: "bad"}

	e = WrapPath(e, "[a]")
	e = WrapPath(e, "[b]")

	if len(e.Path) != 2 || e.Path[0] != "[b]" || e.Path[1] != "[a]" {
		t.Errorf("Path = %v; want [[b] [a]]", e.Path)
	}
	if got, want := e.Message(), "bad ($[b][a])"; got != want {
		t.Errorf("Message() = %q; want %q", got, want)
	}
}

func TestWrapPath_DoesNotMutateInput(t *testing.T) {
	inner := &Error{Problem: "bad", Path: []string{".x"}}

	_ = WrapPath(inner, ".outer1")
	_ = WrapPath(inner, ".outer2")

	if len(inner.Path) != 1 || inner.Path[0] != ".x" {
		t.Errorf("input Path = %v; want [.x] untouched", inner.Path)
	}
	if inner.Problem != "bad" {
		t.Errorf("input Problem = %q; want %q untouched", inner.Problem, "bad")
	}
}

func TestSegments(t *testing.T) {
	if got := FieldSegment("name"); got != ".name" {
		t.Errorf("FieldSegment = %q; want %q", got, ".name")
	}
	if got := IndexSegment(3); got != "[3]" {
		t.Errorf("IndexSegment = %q; want %q", got, "[3]")
	}
	if got := IndexSegment(0); got != "[0]" {
		t.Errorf("IndexSegment = %q; want %q", got, "[0]")
	}
}

func TestError_ImplementsError(t *testing.T) {
	var err error = &Error{Problem: "bad", Path: []string{".a"}}

	if got, want := err.Error(), "bad ($.a)"; got != want {
		t.Errorf("Error() = %q; want %q", got, want)
	}
}
