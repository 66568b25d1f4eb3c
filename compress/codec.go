package compress

import (
	"fmt"

	"github.com/arloliu/colf/errs"
	"github.com/arloliu/colf/format"
)

// Compressor compresses one encoded column block into its on-disk form.
//
// The input is the uncompressed byte block produced by a column encoder; the
// compressor has no awareness of the column type.
//
// Memory management:
//   - Returned slice is newly allocated and owned by the caller
//   - Input slice is not modified
//   - Internal buffers may be reused for efficiency
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores one compressed column block to its encoded form.
//
// Implementations validate the stream format and return an error if the data
// is corrupted or was produced by a different algorithm. They do not validate
// the decompressed length; use DecompressSized for that.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec is a factory function that creates a Codec based on the specified compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Zlib, Zstd, S2, or LZ4)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: Codec instance for the specified type
//   - error: Invalid compression type error
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZlib:
		return NewZlibCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZlib: NewZlibCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}

// DecompressSized decompresses data and verifies that the output length equals
// expectedSize, the uncompressed size recorded in the block's metadata entry.
//
// Both a malformed stream and a length mismatch are reported as
// errs.ErrCorruptBlock: the format carries no redundancy to recover from, so
// corruption is surfaced, never masked.
func DecompressSized(d Decompressor, data []byte, expectedSize int) ([]byte, error) {
	out, err := d.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrCorruptBlock, err)
	}

	if len(out) != expectedSize {
		return nil, fmt.Errorf("%w: decompressed size mismatch: expected %d, got %d", errs.ErrCorruptBlock, expectedSize, len(out))
	}

	return out, nil
}
