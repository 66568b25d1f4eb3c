package encoding

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/arloliu/colf/endian"
	"github.com/arloliu/colf/errs"
	"github.com/arloliu/colf/internal/pool"
)

// StringOffsetsEncoder encodes variable-length UTF-8 strings as two
// concatenated regions:
//
//   - an offset array of count Int32 values, where entry i is the cumulative
//     byte length of all string bytes from row 0 through row i inclusive
//     (the end offset of row i's bytes in the data region)
//   - a data region of the strings' bytes, contiguous in row order with no
//     delimiters
//
// The offset array gives O(1) positional access to any row without scanning
// preceding rows. The total data region length is capped at math.MaxInt32 so
// every end offset fits in an Int32 slot.
//
// Note: StringOffsetsEncoder is NOT a ColumnarEncoder - Write returns an
// error because the cumulative length cap can be exceeded.
type StringOffsetsEncoder struct {
	offsets *pool.ByteBuffer
	data    *pool.ByteBuffer
	engine  endian.EndianEngine
	count   int
	total   int
}

// NewStringOffsetsEncoder creates a new offset-array string encoder using the
// specified endian engine.
func NewStringOffsetsEncoder(engine endian.EndianEngine) *StringOffsetsEncoder {
	return &StringOffsetsEncoder{
		engine:  engine,
		offsets: pool.GetColumnBuffer(),
		data:    pool.GetColumnBuffer(),
	}
}

// Write encodes a single string.
//
// The string's bytes are appended to the data region and its cumulative end
// offset to the offset array. Returns an error if the cumulative data region
// length would exceed math.MaxInt32.
//
// Panics if Finish() has been called (nil buffers).
func (e *StringOffsetsEncoder) Write(text string) error {
	if e.offsets == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	if int64(e.total)+int64(len(text)) > math.MaxInt32 {
		return fmt.Errorf("string data region exceeds %d bytes", math.MaxInt32)
	}

	e.count++
	e.total += len(text)

	e.data.MustWrite([]byte(text))

	e.offsets.Grow(4)
	offLen := e.offsets.Len()
	e.engine.PutUint32(e.offsets.Slice(offLen, offLen+4), uint32(int32(e.total)))
	e.offsets.SetLength(offLen + 4)

	return nil
}

// WriteSlice encodes a slice of strings with buffer pre-allocation.
//
// Offset and data space for the whole slice is reserved up front, then each
// string is appended in row order. Returns an error if the cumulative data
// region length would exceed math.MaxInt32.
func (e *StringOffsetsEncoder) WriteSlice(texts []string) error {
	if e.offsets == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	totalBytes := int64(e.total)
	for _, text := range texts {
		totalBytes += int64(len(text))
	}
	if totalBytes > math.MaxInt32 {
		return fmt.Errorf("string data region exceeds %d bytes", math.MaxInt32)
	}

	e.offsets.Grow(len(texts) * 4)
	e.data.Grow(int(totalBytes) - e.total)

	for _, text := range texts {
		e.count++
		e.total += len(text)

		e.data.MustWrite([]byte(text))

		offLen := e.offsets.Len()
		e.offsets.ExtendOrGrow(4)
		e.engine.PutUint32(e.offsets.Slice(offLen, offLen+4), uint32(int32(e.total)))
	}

	return nil
}

// Bytes returns the encoded block: the offset array followed by the data
// region, materialized into a single newly allocated slice.
func (e *StringOffsetsEncoder) Bytes() []byte {
	if e.offsets == nil {
		panic("encoder already finished - cannot access bytes after Finish()")
	}

	out := make([]byte, 0, e.Size())
	out = append(out, e.offsets.Bytes()...)
	out = append(out, e.data.Bytes()...)

	return out
}

// Len returns the number of strings encoded.
func (e *StringOffsetsEncoder) Len() int {
	return e.count
}

// Size returns the total encoded block size in bytes: 4 bytes per row for
// the offset array plus the data region length.
func (e *StringOffsetsEncoder) Size() int {
	if e.offsets == nil {
		panic("encoder already finished - cannot access size after Finish()")
	}

	return e.offsets.Len() + e.data.Len()
}

// Reset clears the encoder state so it can encode a new column.
// The internal buffers are retained for reuse.
func (e *StringOffsetsEncoder) Reset() {
	if e.offsets != nil {
		e.offsets.Reset()
		e.data.Reset()
	}
	e.count = 0
	e.total = 0
}

// Finish finalizes the encoding process and returns buffer resources to the pool.
//
// After calling Finish(), the encoder is no longer usable.
func (e *StringOffsetsEncoder) Finish() {
	if e.offsets != nil {
		pool.PutColumnBuffer(e.offsets)
		pool.PutColumnBuffer(e.data)
		e.offsets = nil
		e.data = nil
	}
	e.count = 0
	e.total = 0
}

// StringOffsetsDecoder decodes offset-encoded strings from a byte slice
// produced by StringOffsetsEncoder.
//
// The decoder is an immutable stateless value; decoding the same block twice
// yields identical results.
type StringOffsetsDecoder struct {
	engine endian.EndianEngine
}

// NewStringOffsetsDecoder creates a new offset-array string decoder using the
// specified endian engine.
func NewStringOffsetsDecoder(engine endian.EndianEngine) StringOffsetsDecoder {
	return StringOffsetsDecoder{engine: engine}
}

// Decode decodes count strings from the given byte block.
//
// The block must start with count Int32 cumulative end offsets followed by
// the data region. Decode rejects, with an error wrapping
// errs.ErrCorruptBlock:
//
//   - a block too short to hold the offset array
//   - offsets that decrease, go negative, or point past the data region
//   - a final offset that does not equal the data region length
//   - string bytes that are not valid UTF-8
func (d StringOffsetsDecoder) Decode(data []byte, count int) ([]string, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: negative row count %d", errs.ErrInvalidStringOffsets, count)
	}

	offsetsLen := count * 4
	if len(data) < offsetsLen {
		return nil, fmt.Errorf("%w: block size %d cannot hold %d offsets", errs.ErrInvalidStringOffsets, len(data), count)
	}

	region := data[offsetsLen:]
	values := make([]string, 0, count)

	prev := int32(0)
	for i := range count {
		end := int32(d.engine.Uint32(data[i*4 : i*4+4]))
		if end < prev {
			return nil, fmt.Errorf("%w: offset %d at row %d precedes %d", errs.ErrInvalidStringOffsets, end, i, prev)
		}
		if int(end) > len(region) {
			return nil, fmt.Errorf("%w: offset %d at row %d exceeds data region length %d", errs.ErrInvalidStringOffsets, end, i, len(region))
		}

		raw := region[prev:end]
		if !utf8.Valid(raw) {
			return nil, fmt.Errorf("%w: row %d", errs.ErrInvalidUTF8, i)
		}

		values = append(values, string(raw))
		prev = end
	}

	// Trailing bytes no offset accounts for are corruption, not slack.
	if int(prev) != len(region) {
		return nil, fmt.Errorf("%w: final offset %d does not match data region length %d", errs.ErrInvalidStringOffsets, prev, len(region))
	}

	return values, nil
}

// At retrieves the string at the specified index without decoding the whole
// column. This is the O(1) positional access the offset array exists for.
//
// Unlike Decode, At does not validate the full offset array; it returns
// false for any index whose span cannot be resolved inside the block.
func (d StringOffsetsDecoder) At(data []byte, index int, count int) (string, bool) {
	if index < 0 || index >= count || len(data) < count*4 {
		return "", false
	}

	region := data[count*4:]

	start := int32(0)
	if index > 0 {
		start = int32(d.engine.Uint32(data[(index-1)*4 : index*4]))
	}
	end := int32(d.engine.Uint32(data[index*4 : index*4+4]))

	if start < 0 || end < start || int(end) > len(region) {
		return "", false
	}

	return string(region[start:end]), true
}
