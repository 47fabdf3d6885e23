package typeguard

import "testing"

func TestArray_AcceptsConformingSequence(t *testing.T) {
	v := Array(Number())

	if res := v.Validate([]any{1, 2.5, 3}); !res.Valid() {
		t.Errorf("conforming sequence rejected: %s", res.Err().Message())
	}
}

func TestArray_EmptyAlwaysValid(t *testing.T) {
	alwaysFail := Exact("unreachable")

	if res := Array(alwaysFail).Validate([]any{}); !res.Valid() {
		t.Errorf("empty sequence rejected: %s", res.Err().Message())
	}
}

func TestArray_RejectsNonSequence(t *testing.T) {
	v := Array(Number())

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"null", nil, "Expected an array, found null"},
		{"number", 7, "Expected an array, found type number"},
		{"string", "123", "Expected an array, found type string"},
		{"record", map[string]any{}, "Expected an array, found type object"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := v.Validate(tt.in)
			if res.Valid() {
				t.Fatalf("Validate(%v) accepted; want rejection", tt.in)
			}
			if got := res.Err().Message(); got != tt.want {
				t.Errorf("message = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestArray_WrapsFailureWithIndexSegment(t *testing.T) {
	v := Array(Number())

	res := v.Validate([]any{1, 2, "3"})
	if res.Valid() {
		t.Fatal("mistyped element accepted")
	}
	want := "Expected type number, found type string ($[2])"
	if got := res.Err().Message(); got != want {
		t.Errorf("message = %q; want %q", got, want)
	}
}

func TestArray_ShortCircuitsOnFirstFailure(t *testing.T) {
	v := Array(Number())

	res := v.Validate([]any{"a", "b"})
	if res.Valid() {
		t.Fatal("mistyped elements accepted")
	}
	want := "Expected type number, found type string ($[0])"
	if got := res.Err().Message(); got != want {
		t.Errorf("message = %q; want %q", got, want)
	}
}

func TestArray_NestedComposition(t *testing.T) {
	v := Array(Array(Number()))

	res := v.Validate([]any{
		[]any{1, 2},
		[]any{3, "4"},
	})
	if res.Valid() {
		t.Fatal("nested mistyped element accepted")
	}
	want := "Expected type number, found type string ($[1][1])"
	if got := res.Err().Message(); got != want {
		t.Errorf("message = %q; want %q", got, want)
	}
}

func TestArray_ObjectsInsideArrays(t *testing.T) {
	v := Array(Object(Prop("id", Number())))

	res := v.Validate([]any{
		map[string]any{"id": 1},
		map[string]any{"id": "2"},
	})
	if res.Valid() {
		t.Fatal("mistyped element accepted")
	}
	want := "Expected type number, found type string ($[1].id)"
	if got := res.Err().Message(); got != want {
		t.Errorf("message = %q; want %q", got, want)
	}
}

func TestArray_TypedSlices(t *testing.T) {
	if res := Array(Number()).Validate([]int{1, 2, 3}); !res.Valid() {
		t.Errorf("typed int slice rejected: %s", res.Err().Message())
	}
	if res := Array(String()).Validate([]string{"a"}); !res.Valid() {
		t.Errorf("typed string slice rejected: %s", res.Err().Message())
	}
}

func TestArray_AnythingStopsValidation(t *testing.T) {
	v := Array(Anything())

	if res := v.Validate([]any{1, "mixed", nil, map[string]any{}}); !res.Valid() {
		t.Errorf("mixed sequence rejected: %s", res.Err().Message())
	}
}
