package pool

import "testing"

func TestPathBuilder_Basic(t *testing.T) {
	pb := AcquirePathBuilder()
	defer pb.Release()

	pb.WriteString("problem")
	pb.WriteString(" ($")
	pb.WriteSegments([]string{".val2", ".val3"})
	pb.WriteByte(')')

	if got, want := pb.String(), "problem ($.val2.val3)"; got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}
}

func TestPathBuilder_WriteIndex(t *testing.T) {
	pb := AcquirePathBuilder()
	defer pb.Release()

	pb.WriteIndex(0)
	pb.WriteIndex(42)

	if got, want := pb.String(), "[0][42]"; got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}
}

func TestPathBuilder_ResetOnReacquire(t *testing.T) {
	pb := AcquirePathBuilder()
	pb.WriteString("leftover")
	pb.Release()

	pb2 := AcquirePathBuilder()
	defer pb2.Release()

	if pb2.Len() != 0 {
		t.Errorf("reacquired builder Len() = %d; want 0", pb2.Len())
	}
}

func TestPathBuilder_EmptySegments(t *testing.T) {
	pb := AcquirePathBuilder()
	defer pb.Release()

	pb.WriteSegments(nil)
	if got := pb.String(); got != "" {
		t.Errorf("String() = %q; want empty", got)
	}
}

func TestBuild(t *testing.T) {
	got := Build(func(b *PathBuilder) {
		b.WriteString("x")
		b.WriteIndex(3)
	})

	if want := "x[3]"; got != want {
		t.Errorf("Build() = %q; want %q", got, want)
	}
}

func TestPathBuilder_NilRelease(t *testing.T) {
	var pb *PathBuilder
	pb.Release() // must not panic
}
