package compress

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/zlib"
)

// zlibWriterPool pools zlib writers for reuse. The klauspost zlib writer
// supports Reset, so a warmed-up writer can be redirected at a fresh
// destination buffer without reallocating its internal state.
var zlibWriterPool = sync.Pool{
	New: func() any {
		w, err := zlib.NewWriterLevel(nil, zlib.DefaultCompression)
		if err != nil {
			// This should never happen with a valid level
			panic(fmt.Sprintf("failed to create zlib writer for pool: %v", err))
		}
		return w
	},
}

// ZlibCompressor provides zlib (Deflate) compression.
//
// This is the codec the COLF v1 file format is pinned to: every column block
// in a v1 file is a zlib stream. The remaining codecs in this package are
// available for callers compressing blocks out-of-band.
type ZlibCompressor struct{}

var _ Codec = (*ZlibCompressor)(nil)

// NewZlibCompressor creates a new zlib compressor with the default level.
func NewZlibCompressor() ZlibCompressor {
	return ZlibCompressor{}
}

// Compress compresses the input data as a zlib stream.
// Uses a pooled writer for better performance.
func (c ZlibCompressor) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(len(data)/2 + 64)

	w, _ := zlibWriterPool.Get().(*zlib.Writer)
	defer zlibWriterPool.Put(w)

	w.Reset(&buf)

	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("zlib compression failed: %w", err)
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("zlib compression failed: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress decompresses a zlib stream.
//
// This method validates the stream header and checksum and returns an error
// if the data is corrupted or was not compressed with zlib.
func (c ZlibCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("zlib decompression failed: %w", err)
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("zlib decompression failed: %w", err)
	}

	return out, nil
}
