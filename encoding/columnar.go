package encoding

import "iter"

// ColumnarEncoder encodes a column's values into an uncompressed byte block.
type ColumnarEncoder[T comparable] interface {
	// Bytes returns the encoded byte slice.
	// The returned slice is valid until the next call to Write, WriteSlice, or Reset.
	// The caller should not modify the returned slice.
	Bytes() []byte

	// Len returns the number of encoded values.
	Len() int

	// Size returns the size in bytes of the encoded values.
	// It represents the number of bytes that were written to the internal buffer.
	Size() int

	// Reset clears the encoder state so it can encode a new column.
	// The internal buffer is retained for reuse.
	Reset()

	// Finish finalizes the encoding process and returns buffer resources to the pool.
	//
	// After calling Finish(), the encoder is no longer usable. Any subsequent calls to
	// Write(), WriteSlice(), Bytes(), Len(), or Size() will result in a panic due to nil buffer.
	//
	// To encode more data, create a new encoder instance.
	//
	// This method must be called when the encoding session is complete to ensure buffer
	// resources are properly returned to the pool for reuse by other encoders. Use defer
	// to ensure it's called even in error paths:
	//
	//	encoder := NewInt32RawEncoder(engine)
	//	defer encoder.Finish()  // Ensure buffer is returned to pool
	//
	//	encoder.Write(value)
	//	data := encoder.Bytes()  // Get data before Finish
	//	// Finish() called automatically via defer
	Finish()

	// Write encodes a single value.
	//
	// This method is optimized for appending a single value.
	// For bulk writes, use WriteSlice for better performance.
	Write(data T)

	// WriteSlice encodes a slice of values.
	//
	// This method is optimized for bulk writes. For single writes, use Write
	// for better performance.
	WriteSlice(values []T)
}

// ColumnarDecoder decodes a column's values from an uncompressed byte block.
type ColumnarDecoder[T comparable] interface {
	// All returns an iterator that yields all decoded values from the provided
	// encoded data.
	//
	// The data should be the byte slice payload produced by a corresponding
	// encoder. The count parameter specifies the expected number of values.
	// If the data is malformed or too short, the iterator yields nothing;
	// callers that need the distinction should validate the block length
	// against count beforehand.
	All(data []byte, count int) iter.Seq[T]

	// At retrieves the value at the specified index from the encoded data.
	//
	// The index is zero-based. If the index is out of bounds (index < 0 or
	// index >= count), the second return value is false.
	At(data []byte, index int, count int) (T, bool)
}
