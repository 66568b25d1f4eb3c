// Package compress provides compression and decompression codecs for COLF
// column blocks.
//
// Compression is applied per column, after encoding: each column's encoded
// byte block is compressed independently, so a selective read decompresses
// only the requested columns. The codec operates on opaque bytes and has no
// awareness of the column type.
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// DecompressSized wraps Decompress with the exact-length validation the file
// format requires: a block whose decompressed length does not match its
// metadata entry's uncompressed size fails with errs.ErrCorruptBlock.
//
// # Supported Algorithms
//
//   - Zlib: Deflate streams; the codec COLF v1 files are pinned to
//   - None: passthrough, for benchmarks and incompressible data
//   - Zstd: best ratio, moderate speed
//   - S2: balanced speed and ratio
//   - LZ4: fastest decompression, moderate ratio
//
// The v1 format carries no codec byte, so the file layer always uses Zlib.
// The remaining codecs are exported for callers compressing blocks outside
// the file format; a future format version may record the codec per file.
//
// # Thread Safety
//
// All codec implementations are stateless values backed by sync.Pool-managed
// scratch state and are safe for concurrent use.
package compress
