package outbuf

import (
	"encoding/binary"
	"math"
)

// floating point fields are transmitted in the byte order of the producing
// host, assumed Little Endian here, use an _arch.go to set it to BigEndian
// for those archs
var hostOrder = binary.LittleEndian

// Buffer is a fixed-capacity accumulator of encoded bytes. Appends are
// strictly sequential and unchecked: the caller guarantees that the total
// encoded size of all appends never exceeds the capacity passed to New.
// Overrunning the capacity is caller misuse, not a reported error; build
// with `-tags debug` to turn overruns into panics during development.
type Buffer struct {
	pos    int
	buffer []byte
}

// New creates a Buffer with room for exactly capacity bytes. The content
// of the region beyond the written prefix is unspecified.
func New(capacity uint32) *Buffer {
	return &Buffer{
		pos:    0,
		buffer: make([]byte, capacity),
	}
}

// NewSlice creates a Buffer that appends into the passed slice.
func NewSlice(buffer []byte) *Buffer {
	return &Buffer{
		pos:    0,
		buffer: buffer,
	}
}

// Size returns the number of bytes appended so far, not the capacity.
func (b *Buffer) Size() int { return b.pos }

// Cap returns the fixed capacity set at construction.
func (b *Buffer) Cap() int { return len(b.buffer) }

// Data returns the bytes appended so far. The slice aliases the backing
// memory and stays valid until the Buffer is moved from or unmapped.
func (b *Buffer) Data() []byte { return b.buffer[:b.pos] }

// Copy allocates an independent Buffer of the same capacity, duplicates
// the written bytes and places the cursor at the same position, ready to
// continue appending from the same offset.
func (b *Buffer) Copy() *Buffer {
	c := &Buffer{
		pos:    b.pos,
		buffer: make([]byte, len(b.buffer)),
	}
	copy(c.buffer, b.buffer[:b.pos])
	return c
}

// Move transfers ownership of the backing memory to the returned Buffer
// without copying. The receiver is left as an inert zero-capacity husk:
// safe to discard, not valid for further appends.
func (b *Buffer) Move() *Buffer {
	m := &Buffer{
		pos:    b.pos,
		buffer: b.buffer,
	}
	b.pos = 0
	b.buffer = nil
	return m
}

// AddBytes appends p verbatim.
func (b *Buffer) AddBytes(p []byte) {
	checkRoom(b, len(p))
	copy(b.buffer[b.pos:b.pos+len(p)], p)
	b.pos += len(p)
}

// AddString appends the bytes of s verbatim.
func (b *Buffer) AddString(s string) {
	checkRoom(b, len(s))
	copy(b.buffer[b.pos:b.pos+len(s)], s)
	b.pos += len(s)
}

// Write implements io.Writer over AddBytes. It never returns an error;
// the room precondition is the caller's, as with every append.
func (b *Buffer) Write(p []byte) (int, error) {
	b.AddBytes(p)
	return len(p), nil
}

// AddUint8 appends a single byte.
func (b *Buffer) AddUint8(v uint8) {
	checkRoom(b, 1)
	b.buffer[b.pos] = v
	b.pos++
}

// AddUint16 appends v in network byte order.
func (b *Buffer) AddUint16(v uint16) {
	checkRoom(b, 2)
	binary.BigEndian.PutUint16(b.buffer[b.pos:], v)
	b.pos += 2
}

// AddUint32 appends v in network byte order.
func (b *Buffer) AddUint32(v uint32) {
	checkRoom(b, 4)
	binary.BigEndian.PutUint32(b.buffer[b.pos:], v)
	b.pos += 4
}

// AddUint64 appends v in network byte order.
func (b *Buffer) AddUint64(v uint64) {
	checkRoom(b, 8)
	binary.BigEndian.PutUint64(b.buffer[b.pos:], v)
	b.pos += 8
}

// AddInt8 appends a single byte.
func (b *Buffer) AddInt8(v int8) { b.AddUint8(uint8(v)) }

// AddInt16 appends v in network byte order.
func (b *Buffer) AddInt16(v int16) { b.AddUint16(uint16(v)) }

// AddInt32 appends v in network byte order.
func (b *Buffer) AddInt32(v int32) { b.AddUint32(uint32(v)) }

// AddInt64 appends v in network byte order.
func (b *Buffer) AddInt64(v int64) { b.AddUint64(uint64(v)) }

// AddFloat32 appends the bits of v in host byte order. The wire format
// carries floating point fields in the producing host's representation,
// so this path must never byte-swap.
func (b *Buffer) AddFloat32(v float32) {
	checkRoom(b, 4)
	hostOrder.PutUint32(b.buffer[b.pos:], math.Float32bits(v))
	b.pos += 4
}

// AddFloat64 appends the bits of v in host byte order, see AddFloat32.
func (b *Buffer) AddFloat64(v float64) {
	checkRoom(b, 8)
	hostOrder.PutUint64(b.buffer[b.pos:], math.Float64bits(v))
	b.pos += 8
}
