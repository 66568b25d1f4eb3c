package file

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/arloliu/colf/compress"
	"github.com/arloliu/colf/encoding"
	"github.com/arloliu/colf/endian"
	"github.com/arloliu/colf/errs"
	"github.com/arloliu/colf/format"
	"github.com/arloliu/colf/internal/pool"
	"github.com/arloliu/colf/section"
)

// Writer assembles a complete COLF file from in-memory columns.
//
// Columns are added in schema order with Add; Finish encodes and compresses
// each column, computes the absolute block offsets, and emits the header,
// metadata table and data blocks as one byte slice.
//
// The writer enforces the file-wide invariants at Add time: every column must
// share the first column's row count, names must be unique and non-empty.
//
// Note: the Writer is NOT thread-safe and NOT reusable. After calling Finish,
// WriteTo or WriteFile, a new writer must be created for further encoding.
type Writer struct {
	columns  []format.Column
	names    map[string]struct{}
	rowCount int64
	codec    compress.Codec
	engine   endian.EndianEngine
	finished bool
}

// NewWriter creates a Writer for a new COLF v1 file.
//
// The v1 format pins block compression to zlib, so the writer takes no codec
// option; a future format version recording the codec per file may relax
// this.
func NewWriter() *Writer {
	codec, err := compress.GetCodec(format.CompressionZlib)
	if err != nil {
		// The zlib codec is always registered.
		panic(fmt.Sprintf("zlib codec unavailable: %v", err))
	}

	return &Writer{
		names:  make(map[string]struct{}),
		codec:  codec,
		engine: endian.GetLittleEndianEngine(),
	}
}

// Add appends a column in schema order.
//
// The first column fixes the file's row count; any later column with a
// different row count is rejected with errs.ErrRowCountMismatch rather than
// padded or truncated.
func (w *Writer) Add(col format.Column) error {
	if w.finished {
		return errs.ErrWriterFinished
	}

	if !col.Type.IsValid() {
		return fmt.Errorf("%w: column %q", errs.ErrInvalidColumnType, col.Name)
	}

	if col.Name == "" {
		return fmt.Errorf("%w: empty name", errs.ErrInvalidColumnName)
	}

	// The format cannot enforce name uniqueness, but a reader's name index
	// would silently shadow earlier duplicates, so reject them here.
	if _, exists := w.names[col.Name]; exists {
		return fmt.Errorf("%w: %q", errs.ErrDuplicateColumnName, col.Name)
	}

	if len(w.columns) >= section.MaxColumnCount {
		return fmt.Errorf("%w: max %d", errs.ErrColumnCountExceeded, section.MaxColumnCount)
	}

	if len(w.columns) == 0 {
		w.rowCount = int64(col.Len())
	} else if int64(col.Len()) != w.rowCount {
		return fmt.Errorf("%w: column %q has %d rows, expected %d", errs.ErrRowCountMismatch, col.Name, col.Len(), w.rowCount)
	}

	w.names[col.Name] = struct{}{}
	w.columns = append(w.columns, col)

	return nil
}

// AddColumns appends columns in order, stopping at the first invalid one.
func (w *Writer) AddColumns(cols ...format.Column) error {
	for _, col := range cols {
		if err := w.Add(col); err != nil {
			return err
		}
	}

	return nil
}

// Schema returns the added columns' descriptors in schema order.
func (w *Writer) Schema() []format.Descriptor {
	schema := make([]format.Descriptor, 0, len(w.columns))
	for _, col := range w.columns {
		schema = append(schema, col.Descriptor())
	}

	return schema
}

// RowCount returns the row count fixed by the first added column.
func (w *Writer) RowCount() int64 {
	return w.rowCount
}

// Finish encodes, compresses and assembles the complete file.
//
// Layout: the 17-byte header, one metadata entry per column in schema order,
// then every column's compressed block contiguously in the same order. Each
// block's absolute offset is the header size plus the metadata table size
// plus the sizes of all preceding blocks.
//
// The writer is unusable after Finish; the returned slice is owned by the
// caller.
func (w *Writer) Finish() ([]byte, error) {
	if w.finished {
		return nil, errs.ErrWriterFinished
	}
	w.finished = true

	header, err := section.NewFileHeader(len(w.columns), w.rowCount)
	if err != nil {
		return nil, err
	}

	metas := make([]section.ColumnMeta, len(w.columns))
	blocks := make([][]byte, len(w.columns))

	metaSize := 0
	for i, col := range w.columns {
		compressed, rawSize, err := w.encodeAndCompress(col)
		if err != nil {
			return nil, err
		}

		if int64(rawSize) > math.MaxUint32 || int64(len(compressed)) > math.MaxUint32 {
			return nil, fmt.Errorf("column %q block exceeds 4GiB", col.Name)
		}

		metas[i] = section.ColumnMeta{
			Name:             col.Name,
			Type:             col.Type,
			CompressedSize:   uint32(len(compressed)),
			UncompressedSize: uint32(rawSize),
		}
		blocks[i] = compressed
		metaSize += metas[i].EntrySize()
	}

	// Blocks are laid out contiguously after the metadata table, so each
	// offset is a running total over the preceding compressed sizes.
	offset := uint64(section.HeaderSize + metaSize)
	total := section.HeaderSize + metaSize
	for i := range metas {
		metas[i].Offset = offset
		offset += uint64(metas[i].CompressedSize)
		total += len(blocks[i])
	}

	buf := pool.GetFileBuffer()
	defer pool.PutFileBuffer(buf)

	buf.Grow(total)
	buf.MustWrite(header.Bytes())
	for i := range metas {
		buf.B = metas[i].AppendTo(buf.B)
	}
	for _, block := range blocks {
		buf.MustWrite(block)
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

// WriteTo assembles the file and writes it to wr.
// Like Finish, it can only be called once per writer.
func (w *Writer) WriteTo(wr io.Writer) (int64, error) {
	data, err := w.Finish()
	if err != nil {
		return 0, err
	}

	n, err := wr.Write(data)

	return int64(n), err
}

// WriteFile assembles the file and writes it to path atomically: the bytes go
// to a temporary file in the same directory which is then renamed into place,
// so a crash mid-write never leaves a truncated file at path.
func (w *Writer) WriteFile(path string) error {
	data, err := w.Finish()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".colf-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)

		return err
	}

	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)

		return err
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)

		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)

		return err
	}

	return nil
}

// encodeAndCompress translates one column into its compressed block,
// returning the block and the uncompressed (encoded) size.
func (w *Writer) encodeAndCompress(col format.Column) ([]byte, int, error) {
	switch col.Type {
	case format.TypeInt32:
		encoder := encoding.NewInt32RawEncoder(w.engine)
		defer encoder.Finish()
		encoder.WriteSlice(col.Ints)

		return w.compressBlock(col.Name, encoder.Bytes())
	case format.TypeFloat64:
		encoder := encoding.NewFloat64RawEncoder(w.engine)
		defer encoder.Finish()
		encoder.WriteSlice(col.Floats)

		return w.compressBlock(col.Name, encoder.Bytes())
	case format.TypeString:
		encoder := encoding.NewStringOffsetsEncoder(w.engine)
		defer encoder.Finish()
		if err := encoder.WriteSlice(col.Strings); err != nil {
			return nil, 0, fmt.Errorf("column %q: %w", col.Name, err)
		}

		return w.compressBlock(col.Name, encoder.Bytes())
	default:
		return nil, 0, fmt.Errorf("%w: column %q", errs.ErrInvalidColumnType, col.Name)
	}
}

func (w *Writer) compressBlock(name string, raw []byte) ([]byte, int, error) {
	compressed, err := w.codec.Compress(raw)
	if err != nil {
		return nil, 0, fmt.Errorf("compress column %q: %w", name, err)
	}

	return compressed, len(raw), nil
}
