package pool

import (
	"sync"
)

// Frame buffer sizing for the default pool.
const (
	FrameBufferDefaultSize  = 1024 * 4   // 4KiB
	FrameBufferMaxThreshold = 1024 * 256 // 256KiB
)

// ByteBuffer is a reusable growable byte slice.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default size.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// MustWrite appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.Grow(len(data))
	bb.B = append(bb.B, data...)
}

// ExtendOrGrow extends the buffer length by n bytes, growing it if necessary.
//
// The contents of the extension are unspecified.
func (bb *ByteBuffer) ExtendOrGrow(n int) {
	start := len(bb.B)
	bb.Grow(n)
	bb.B = bb.B[:start+n]
}

// Grow ensures the buffer can hold requiredBytes more bytes without reallocating.
//
// Small buffers grow by FrameBufferDefaultSize, larger ones by 25% of their capacity,
// and never by less than requiredBytes.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := FrameBufferDefaultSize
	if cap(bb.B) > 4*FrameBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// ByteBufferPool is a pool of ByteBuffers to minimize allocations.
//
// Buffers that grew beyond maxThreshold are dropped instead of being returned to the
// pool, so one large payload does not pin memory forever.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the specified default size.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves an empty ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var frameDefaultPool = NewByteBufferPool(FrameBufferDefaultSize, FrameBufferMaxThreshold)

// GetFrameBuffer retrieves a ByteBuffer from the default frame pool.
func GetFrameBuffer() *ByteBuffer {
	return frameDefaultPool.Get()
}

// PutFrameBuffer returns a ByteBuffer to the default frame pool.
func PutFrameBuffer(bb *ByteBuffer) {
	frameDefaultPool.Put(bb)
}
