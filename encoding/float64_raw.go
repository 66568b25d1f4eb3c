package encoding

import (
	"iter"
	"math"

	"github.com/arloliu/colf/endian"
	"github.com/arloliu/colf/internal/pool"
)

// Float64RawEncoder encodes 64-bit floats in their native IEEE-754 binary
// representation as fixed 8-byte slots in row order, using the specified
// endianness. The encoded block size is exactly 8 bytes per value, and
// round-trips are bit-exact (NaN payloads and signed zeros included).
type Float64RawEncoder struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
	count  int
}

var _ ColumnarEncoder[float64] = (*Float64RawEncoder)(nil)

// NewFloat64RawEncoder creates a new raw float64 encoder using the specified endian engine.
//
// The encoder uses a pooled byte buffer with amortized growth strategy:
//   - Write: amortized O(1) buffer growth with direct encoding
//   - WriteSlice: pre-allocated buffer for bulk operations
func NewFloat64RawEncoder(engine endian.EndianEngine) *Float64RawEncoder {
	return &Float64RawEncoder{
		engine: engine,
		buf:    pool.GetColumnBuffer(),
	}
}

// Write encodes a single float64 value with amortized buffer growth.
//
// For encoding whole columns, use WriteSlice for better performance.
//
// Panics if Finish() has been called (nil buffer).
func (e *Float64RawEncoder) Write(val float64) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	e.count++

	e.buf.Grow(8)
	bufLen := e.buf.Len()
	e.engine.PutUint64(e.buf.Slice(bufLen, bufLen+8), math.Float64bits(val))
	e.buf.SetLength(bufLen + 8)
}

// WriteSlice encodes a slice of float64 values with buffer pre-allocation.
//
// Buffer space for all values (8 bytes each) is reserved in a single growth
// operation, then each value is encoded directly into the reserved region.
//
// Panics if Finish() has been called (nil buffer).
func (e *Float64RawEncoder) WriteSlice(values []float64) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	valLen := len(values)
	e.count += valLen

	if valLen == 0 {
		return
	}

	startIdx := e.buf.Len()
	e.buf.ExtendOrGrow(valLen * 8)

	for i, v := range values {
		offset := startIdx + i*8
		e.engine.PutUint64(e.buf.Slice(offset, offset+8), math.Float64bits(v))
	}
}

// Bytes returns the encoded byte slice containing all written values.
//
// The returned slice references the internal buffer; the caller must not
// modify it and must copy it before calling Finish().
//
// Panics if Finish() has been called (nil buffer).
func (e *Float64RawEncoder) Bytes() []byte {
	if e.buf == nil {
		panic("encoder already finished - cannot access bytes after Finish()")
	}

	return e.buf.Bytes()
}

// Len returns the number of encoded float64 values.
func (e *Float64RawEncoder) Len() int {
	return e.count
}

// Size returns the size in bytes of the encoded values.
//
// Panics if Finish() has been called (nil buffer).
func (e *Float64RawEncoder) Size() int {
	if e.buf == nil {
		panic("encoder already finished - cannot access size after Finish()")
	}

	return e.buf.Len()
}

// Reset clears the encoder state so it can encode a new column.
// The internal buffer is retained for reuse.
func (e *Float64RawEncoder) Reset() {
	if e.buf != nil {
		e.buf.Reset()
	}
	e.count = 0
}

// Finish finalizes the encoding process and returns buffer resources to the pool.
//
// After calling Finish(), the encoder is no longer usable.
func (e *Float64RawEncoder) Finish() {
	if e.buf != nil {
		pool.PutColumnBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
}

// Float64RawDecoder decodes raw float64 values from a byte slice produced by
// Float64RawEncoder.
//
// The decoder is an immutable stateless value; decoding the same block twice
// yields identical results.
type Float64RawDecoder struct {
	engine endian.EndianEngine
}

var _ ColumnarDecoder[float64] = Float64RawDecoder{}

// NewFloat64RawDecoder creates a new raw float64 decoder using the specified endian engine.
//
// The decoder is returned by value: it is stateless and fits in a register.
func NewFloat64RawDecoder(engine endian.EndianEngine) Float64RawDecoder {
	return Float64RawDecoder{engine: engine}
}

// All decodes all float64 values from the given byte slice.
//
// The data must hold at least count*8 bytes; otherwise the iterator yields
// nothing.
func (d Float64RawDecoder) All(data []byte, count int) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if count <= 0 || len(data) < count*8 {
			return
		}

		for i := range count {
			start := i * 8
			val := math.Float64frombits(d.engine.Uint64(data[start : start+8]))
			if !yield(val) {
				return
			}
		}
	}
}

// At retrieves the float64 value at the specified index from the encoded data.
func (d Float64RawDecoder) At(data []byte, index int, count int) (float64, bool) {
	if len(data) == 0 || index < 0 || index >= count {
		return 0, false
	}

	start := index * 8
	if start+8 > len(data) {
		return 0, false
	}

	return math.Float64frombits(d.engine.Uint64(data[start : start+8])), true
}
