package encoding

import (
	"math"
	"testing"

	"github.com/arloliu/colf/endian"
	"github.com/stretchr/testify/require"
)

func TestInt32Raw_RoundTrip(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	values := []int32{0, 1, -1, 42, math.MaxInt32, math.MinInt32}

	encoder := NewInt32RawEncoder(engine)
	defer encoder.Finish()
	encoder.WriteSlice(values)

	require.Equal(t, len(values), encoder.Len())
	require.Equal(t, len(values)*4, encoder.Size())

	decoder := NewInt32RawDecoder(engine)
	decoded := make([]int32, 0, len(values))
	for v := range decoder.All(encoder.Bytes(), len(values)) {
		decoded = append(decoded, v)
	}

	require.Equal(t, values, decoded)
}

func TestInt32Raw_SingleWrites(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	encoder := NewInt32RawEncoder(engine)
	defer encoder.Finish()

	encoder.Write(7)
	encoder.Write(-13)

	require.Equal(t, 2, encoder.Len())
	require.Equal(t, 8, encoder.Size())

	decoder := NewInt32RawDecoder(engine)

	v, ok := decoder.At(encoder.Bytes(), 0, 2)
	require.True(t, ok)
	require.Equal(t, int32(7), v)

	v, ok = decoder.At(encoder.Bytes(), 1, 2)
	require.True(t, ok)
	require.Equal(t, int32(-13), v)
}

func TestInt32Raw_Layout(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	encoder := NewInt32RawEncoder(engine)
	defer encoder.Finish()
	encoder.Write(1)

	// Little-endian two's complement
	require.Equal(t, []byte{1, 0, 0, 0}, encoder.Bytes())
}

func TestInt32RawDecoder_At_OutOfBounds(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	decoder := NewInt32RawDecoder(engine)

	data := []byte{1, 0, 0, 0}

	_, ok := decoder.At(data, -1, 1)
	require.False(t, ok)

	_, ok = decoder.At(data, 1, 1)
	require.False(t, ok)

	_, ok = decoder.At(nil, 0, 1)
	require.False(t, ok)
}

func TestInt32RawDecoder_TruncatedData(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	decoder := NewInt32RawDecoder(engine)

	// 6 bytes cannot hold 2 values; iterator must yield nothing.
	count := 0
	for range decoder.All([]byte{1, 2, 3, 4, 5, 6}, 2) {
		count++
	}

	require.Zero(t, count)
}

func TestInt32Raw_Reset(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	encoder := NewInt32RawEncoder(engine)
	defer encoder.Finish()

	encoder.Write(1)
	encoder.Reset()

	require.Zero(t, encoder.Len())
	require.Zero(t, encoder.Size())

	encoder.Write(2)
	decoder := NewInt32RawDecoder(engine)
	v, ok := decoder.At(encoder.Bytes(), 0, 1)
	require.True(t, ok)
	require.Equal(t, int32(2), v)
}

func TestInt32Raw_WriteAfterFinishPanics(t *testing.T) {
	encoder := NewInt32RawEncoder(endian.GetLittleEndianEngine())
	encoder.Finish()

	require.Panics(t, func() { encoder.Write(1) })
	require.Panics(t, func() { encoder.Bytes() })
}
