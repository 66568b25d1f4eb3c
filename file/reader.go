package file

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/arloliu/colf/compress"
	"github.com/arloliu/colf/encoding"
	"github.com/arloliu/colf/endian"
	"github.com/arloliu/colf/errs"
	"github.com/arloliu/colf/format"
	"github.com/arloliu/colf/internal/options"
	"github.com/arloliu/colf/section"
)

// Reader provides selective column access over a COLF file.
//
// Construction parses only the header and metadata table; no column data is
// read or decompressed until ReadColumns is called. Each read seeks directly
// to the requested columns' blocks and reads exactly their compressed spans,
// so unrequested columns cost nothing beyond their metadata entries.
//
// The Reader is not safe for concurrent use: reads seek the underlying source.
type Reader struct {
	rs          io.ReadSeeker
	closer      io.Closer
	header      section.FileHeader
	metas       []section.ColumnMeta
	index       map[string]int
	codec       compress.Codec
	engine      endian.EndianEngine
	parallelism int
	closed      bool
}

// NewReader parses the header and metadata table from rs and returns a Reader
// positioned to serve column reads.
//
// The header is validated before any metadata entry is read, so a file with a
// bad magic tag or unsupported version fails immediately. rs must be
// positioned at the start of the file.
func NewReader(rs io.ReadSeeker, opts ...ReaderOption) (*Reader, error) {
	codec, err := compress.GetCodec(format.CompressionZlib)
	if err != nil {
		panic(fmt.Sprintf("zlib codec unavailable: %v", err))
	}

	r := &Reader{
		rs:          rs,
		codec:       codec,
		engine:      endian.GetLittleEndianEngine(),
		parallelism: 1,
	}

	if err := options.Apply(r, opts...); err != nil {
		return nil, err
	}

	headerBuf := make([]byte, section.HeaderSize)
	if _, err := io.ReadFull(rs, headerBuf); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidHeaderSize, err)
	}

	if err := r.header.Parse(headerBuf); err != nil {
		return nil, err
	}

	r.metas = make([]section.ColumnMeta, 0, r.header.ColumnCount)
	r.index = make(map[string]int, r.header.ColumnCount)

	for i := int32(0); i < r.header.ColumnCount; i++ {
		meta, err := section.ReadColumnMeta(rs)
		if err != nil {
			return nil, err
		}

		// A well-formed file has unique names; if not, the later entry
		// shadows the earlier one in the index.
		r.index[meta.Name] = len(r.metas)
		r.metas = append(r.metas, meta)
	}

	return r, nil
}

// OpenFile opens the COLF file at path. The caller must Close the reader to
// release the underlying file.
func OpenFile(path string, opts ...ReaderOption) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	r, err := NewReader(f, opts...)
	if err != nil {
		f.Close()

		return nil, err
	}

	r.closer = f

	return r, nil
}

// RowCount returns the row count shared by every column in the file.
func (r *Reader) RowCount() int64 {
	return r.header.RowCount
}

// ColumnCount returns the number of columns in the file.
func (r *Reader) ColumnCount() int {
	return len(r.metas)
}

// Schema returns the column descriptors in schema order.
func (r *Reader) Schema() []format.Descriptor {
	schema := make([]format.Descriptor, 0, len(r.metas))
	for _, meta := range r.metas {
		schema = append(schema, format.Descriptor{Name: meta.Name, Type: meta.Type})
	}

	return schema
}

// ColumnMetas returns a copy of the metadata entries in schema order.
// Useful for inspecting per-column compression statistics.
func (r *Reader) ColumnMetas() []section.ColumnMeta {
	metas := make([]section.ColumnMeta, len(r.metas))
	copy(metas, r.metas)

	return metas
}

// Has reports whether the file contains a column with the given name.
func (r *Reader) Has(name string) bool {
	_, ok := r.index[name]

	return ok
}

// Close releases the underlying file if the reader was created by OpenFile.
// Subsequent reads fail with errs.ErrReaderClosed.
func (r *Reader) Close() error {
	if r.closed {
		return errs.ErrReaderClosed
	}
	r.closed = true

	if r.closer != nil {
		return r.closer.Close()
	}

	return nil
}

// ReadColumns reads and decodes the named columns.
//
// Only the requested columns' compressed blocks are read from the source;
// everything else is skipped over by seeking. Duplicate names are served
// once. Names not present in the file are collected into a single error
// wrapping errs.ErrColumnNotFound, returned ALONGSIDE the successfully
// decoded columns so a partial request still yields its hits.
//
// Corruption and I/O errors are terminal: the first one aborts the read and
// no partial result is returned. When decode parallelism is enabled the
// reported error is still deterministic, always the first failing column in
// request order.
func (r *Reader) ReadColumns(names ...string) (map[string]format.Column, error) {
	if r.closed {
		return nil, errs.ErrReaderClosed
	}

	requested := make([]int, 0, len(names))
	seen := make(map[string]struct{}, len(names))

	var missing []string
	for _, name := range names {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		idx, ok := r.index[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		requested = append(requested, idx)
	}

	// Phase 1: sequential seek and read of exactly the requested blocks.
	blocks := make([][]byte, len(requested))
	for i, idx := range requested {
		meta := &r.metas[idx]

		if _, err := r.rs.Seek(int64(meta.Offset), io.SeekStart); err != nil {
			return nil, fmt.Errorf("seek column %q: %w", meta.Name, err)
		}

		block := make([]byte, meta.CompressedSize)
		if _, err := io.ReadFull(r.rs, block); err != nil {
			return nil, fmt.Errorf("%w: short read for column %q: %w", errs.ErrCorruptBlock, meta.Name, err)
		}
		blocks[i] = block
	}

	// Phase 2: decompress and decode, optionally fanned out across
	// goroutines. Ordering no longer matters since all bytes are in memory.
	columns := make([]format.Column, len(requested))
	decodeErrs := make([]error, len(requested))

	if r.parallelism > 1 && len(requested) > 1 {
		sem := make(chan struct{}, r.parallelism)

		var wg sync.WaitGroup
		for i, idx := range requested {
			wg.Add(1)
			sem <- struct{}{}

			go func(i, idx int) {
				defer wg.Done()
				defer func() { <-sem }()

				columns[i], decodeErrs[i] = r.decodeColumn(&r.metas[idx], blocks[i])
			}(i, idx)
		}
		wg.Wait()
	} else {
		for i, idx := range requested {
			columns[i], decodeErrs[i] = r.decodeColumn(&r.metas[idx], blocks[i])
			if decodeErrs[i] != nil {
				break
			}
		}
	}

	for _, err := range decodeErrs {
		if err != nil {
			return nil, err
		}
	}

	result := make(map[string]format.Column, len(requested))
	for _, col := range columns {
		result[col.Name] = col
	}

	if len(missing) > 0 {
		return result, fmt.Errorf("%w: %s", errs.ErrColumnNotFound, strings.Join(missing, ", "))
	}

	return result, nil
}

// ReadColumn reads and decodes a single column by name.
func (r *Reader) ReadColumn(name string) (format.Column, error) {
	cols, err := r.ReadColumns(name)
	if err != nil {
		return format.Column{}, err
	}

	return cols[name], nil
}

// ReadAll reads and decodes every column in the file, in schema order.
func (r *Reader) ReadAll() ([]format.Column, error) {
	names := make([]string, 0, len(r.metas))
	for _, meta := range r.metas {
		names = append(names, meta.Name)
	}

	byName, err := r.ReadColumns(names...)
	if err != nil {
		return nil, err
	}

	cols := make([]format.Column, 0, len(byName))
	for _, name := range names {
		cols = append(cols, byName[name])
	}

	return cols, nil
}

// decodeColumn restores one column from its compressed block.
func (r *Reader) decodeColumn(meta *section.ColumnMeta, block []byte) (format.Column, error) {
	raw, err := compress.DecompressSized(r.codec, block, int(meta.UncompressedSize))
	if err != nil {
		return format.Column{}, fmt.Errorf("column %q: %w", meta.Name, err)
	}

	rowCount := int(r.header.RowCount)

	switch meta.Type {
	case format.TypeInt32:
		if err := r.checkNumericSize(meta, 4); err != nil {
			return format.Column{}, err
		}

		decoder := encoding.NewInt32RawDecoder(r.engine)
		values := make([]int32, 0, rowCount)
		for v := range decoder.All(raw, rowCount) {
			values = append(values, v)
		}

		return format.NewInt32Column(meta.Name, values), nil
	case format.TypeFloat64:
		if err := r.checkNumericSize(meta, 8); err != nil {
			return format.Column{}, err
		}

		decoder := encoding.NewFloat64RawDecoder(r.engine)
		values := make([]float64, 0, rowCount)
		for v := range decoder.All(raw, rowCount) {
			values = append(values, v)
		}

		return format.NewFloat64Column(meta.Name, values), nil
	case format.TypeString:
		decoder := encoding.NewStringOffsetsDecoder(r.engine)
		values, err := decoder.Decode(raw, rowCount)
		if err != nil {
			return format.Column{}, fmt.Errorf("column %q: %w", meta.Name, err)
		}

		return format.NewStringColumn(meta.Name, values), nil
	default:
		return format.Column{}, fmt.Errorf("%w: code %d", errs.ErrInvalidColumnType, meta.Type)
	}
}

// checkNumericSize verifies that a fixed-width block holds exactly rowCount
// slots. The metadata and the header can disagree only if the file is
// corrupt.
func (r *Reader) checkNumericSize(meta *section.ColumnMeta, width int64) error {
	expected := r.header.RowCount * width
	if int64(meta.UncompressedSize) != expected {
		return fmt.Errorf("%w: column %q uncompressed size %d, expected %d for %d rows",
			errs.ErrCorruptBlock, meta.Name, meta.UncompressedSize, expected, r.header.RowCount)
	}

	return nil
}
