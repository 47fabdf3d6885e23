// Package pool provides sync.Pool wrappers for reducing allocation churn
// when rendering diagnostic messages.
package pool

import (
	"strconv"
	"sync"
)

// PathBuilder assembles diagnostic messages and error paths from
// pre-formatted segments using a reusable byte buffer.
type PathBuilder struct {
	buf []byte
}

var pathBuilderPool = sync.Pool{
	New: func() any {
		return &PathBuilder{
			buf: make([]byte, 0, 128),
		}
	},
}

// AcquirePathBuilder gets a PathBuilder from the pool.
// Call Release() when done to return it.
func AcquirePathBuilder() *PathBuilder {
	pb := pathBuilderPool.Get().(*PathBuilder)
	pb.Reset()
	return pb
}

// Release returns the PathBuilder to the pool.
func (b *PathBuilder) Release() {
	if b == nil {
		return
	}
	// Oversized buffers are not worth keeping around.
	if cap(b.buf) <= 4096 {
		pathBuilderPool.Put(b)
	}
}

// Reset clears the buffer without deallocating.
func (b *PathBuilder) Reset() {
	b.buf = b.buf[:0]
}

// Len returns the current length of the buffer.
func (b *PathBuilder) Len() int {
	return len(b.buf)
}

// WriteString appends a string.
func (b *PathBuilder) WriteString(s string) {
	b.buf = append(b.buf, s...)
}

// WriteByte appends a single byte. It always returns nil, matching the
// io.ByteWriter signature.
func (b *PathBuilder) WriteByte(c byte) error {
	b.buf = append(b.buf, c)
	return nil
}

// WriteSegments appends path segments in order. Segments arrive
// pre-formatted (".name" or "[3]") so they are concatenated as-is.
func (b *PathBuilder) WriteSegments(segments []string) {
	for _, seg := range segments {
		b.buf = append(b.buf, seg...)
	}
}

// WriteIndex appends an array index in brackets, [n].
func (b *PathBuilder) WriteIndex(index int) {
	b.buf = append(b.buf, '[')
	b.buf = strconv.AppendInt(b.buf, int64(index), 10)
	b.buf = append(b.buf, ']')
}

// String returns the accumulated text. This is the single allocation
// for the final message.
func (b *PathBuilder) String() string {
	return string(b.buf)
}

// Build assembles a string using a callback, returning the builder to
// the pool afterwards.
func Build(fn func(*PathBuilder)) string {
	pb := AcquirePathBuilder()
	defer pb.Release()
	fn(pb)
	return pb.String()
}
