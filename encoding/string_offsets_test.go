package encoding

import (
	"strings"
	"testing"

	"github.com/arloliu/colf/endian"
	"github.com/arloliu/colf/errs"
	"github.com/stretchr/testify/require"
)

func TestStringOffsets_RoundTrip(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	values := []string{"Alice", "Bob", "Charlie", "", "日本語", strings.Repeat("x", 1000)}

	encoder := NewStringOffsetsEncoder(engine)
	defer encoder.Finish()
	require.NoError(t, encoder.WriteSlice(values))

	require.Equal(t, len(values), encoder.Len())

	decoder := NewStringOffsetsDecoder(engine)
	decoded, err := decoder.Decode(encoder.Bytes(), len(values))

	require.NoError(t, err)
	require.Equal(t, values, decoded)
}

func TestStringOffsets_Layout(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	encoder := NewStringOffsetsEncoder(engine)
	defer encoder.Finish()
	require.NoError(t, encoder.Write("ab"))
	require.NoError(t, encoder.Write("c"))

	// Cumulative end offsets [2, 3], then "abc" with no delimiters.
	require.Equal(t, []byte{2, 0, 0, 0, 3, 0, 0, 0, 'a', 'b', 'c'}, encoder.Bytes())
	require.Equal(t, 11, encoder.Size())
}

func TestStringOffsets_EmptyColumn(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	encoder := NewStringOffsetsEncoder(engine)
	defer encoder.Finish()

	require.Zero(t, encoder.Size())

	decoder := NewStringOffsetsDecoder(engine)
	decoded, err := decoder.Decode(encoder.Bytes(), 0)

	require.NoError(t, err)
	require.Empty(t, decoded)
}

func TestStringOffsets_AllEmptyStrings(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	values := []string{"", "", ""}

	encoder := NewStringOffsetsEncoder(engine)
	defer encoder.Finish()
	require.NoError(t, encoder.WriteSlice(values))

	decoder := NewStringOffsetsDecoder(engine)
	decoded, err := decoder.Decode(encoder.Bytes(), 3)

	require.NoError(t, err)
	require.Equal(t, values, decoded)
}

func TestStringOffsetsDecoder_At(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	values := []string{"Alice", "Bob", "Charlie"}

	encoder := NewStringOffsetsEncoder(engine)
	defer encoder.Finish()
	require.NoError(t, encoder.WriteSlice(values))

	data := encoder.Bytes()
	decoder := NewStringOffsetsDecoder(engine)

	for i, want := range values {
		got, ok := decoder.At(data, i, len(values))
		require.True(t, ok)
		require.Equal(t, want, got)
	}

	_, ok := decoder.At(data, -1, len(values))
	require.False(t, ok)

	_, ok = decoder.At(data, len(values), len(values))
	require.False(t, ok)
}

func TestStringOffsetsDecoder_Corruption(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	decoder := NewStringOffsetsDecoder(engine)

	encode := func(values ...string) []byte {
		encoder := NewStringOffsetsEncoder(engine)
		defer encoder.Finish()
		require.NoError(t, encoder.WriteSlice(values))

		return encoder.Bytes()
	}

	t.Run("Block too short for offsets", func(t *testing.T) {
		_, err := decoder.Decode([]byte{1, 2, 3}, 2)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidStringOffsets)
		require.ErrorIs(t, err, errs.ErrCorruptBlock)
	})

	t.Run("Decreasing offsets", func(t *testing.T) {
		data := encode("ab", "cd")
		// Second end offset drops below the first.
		engine.PutUint32(data[4:8], 1)

		_, err := decoder.Decode(data, 2)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidStringOffsets)
	})

	t.Run("Offset past data region", func(t *testing.T) {
		data := encode("ab", "cd")
		engine.PutUint32(data[4:8], 100)

		_, err := decoder.Decode(data, 2)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidStringOffsets)
	})

	t.Run("Negative offset", func(t *testing.T) {
		data := encode("ab")
		engine.PutUint32(data[0:4], 0x80000000)

		_, err := decoder.Decode(data, 1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidStringOffsets)
	})

	t.Run("Final offset below data region length", func(t *testing.T) {
		data := encode("ab", "cd")
		engine.PutUint32(data[4:8], 3) // leaves one unaccounted byte

		_, err := decoder.Decode(data, 2)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidStringOffsets)
	})

	t.Run("Invalid UTF-8", func(t *testing.T) {
		data := encode("ab")
		data[len(data)-1] = 0xFF

		_, err := decoder.Decode(data, 1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidUTF8)
		require.ErrorIs(t, err, errs.ErrCorruptBlock)
	})
}

func TestStringOffsetsDecoder_Idempotent(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	encoder := NewStringOffsetsEncoder(engine)
	defer encoder.Finish()
	require.NoError(t, encoder.WriteSlice([]string{"a", "bb", "ccc"}))

	decoder := NewStringOffsetsDecoder(engine)

	first, err := decoder.Decode(encoder.Bytes(), 3)
	require.NoError(t, err)
	second, err := decoder.Decode(encoder.Bytes(), 3)
	require.NoError(t, err)

	require.Equal(t, first, second)
}
