package section

import (
	"bytes"
	"fmt"

	"github.com/arloliu/colf/endian"
	"github.com/arloliu/colf/errs"
)

// FileHeader is the fixed-size header at the start of every COLF file.
// It is 17 bytes: the 4-byte magic tag, a version byte, the column count and
// the row count shared by every column in the file.
//
// All multi-byte fields are little-endian, like the rest of the format.
type FileHeader struct {
	// ColumnCount is the number of metadata entries following the header.
	ColumnCount int32
	// RowCount is the row count shared by every column in the file.
	RowCount int64
}

// NewFileHeader creates a FileHeader for the given column and row counts.
func NewFileHeader(columnCount int, rowCount int64) (*FileHeader, error) {
	if columnCount < 0 || columnCount > MaxColumnCount {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidColumnCount, columnCount)
	}
	if rowCount < 0 {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidRowCount, rowCount)
	}

	return &FileHeader{
		ColumnCount: int32(columnCount),
		RowCount:    rowCount,
	}, nil
}

// Parse parses the header from a byte slice.
// It returns an error if the data is not exactly 17 bytes, the magic tag does
// not match, the version is unrecognized, or a count is negative.
func (h *FileHeader) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	if !bytes.Equal(data[0:4], MagicNumber[:]) {
		return fmt.Errorf("%w: % x", errs.ErrInvalidMagicNumber, data[0:4])
	}

	if data[4] != Version {
		return fmt.Errorf("%w: %d", errs.ErrUnsupportedVersion, data[4])
	}

	engine := endian.GetLittleEndianEngine()
	h.ColumnCount = int32(engine.Uint32(data[5:9]))
	h.RowCount = int64(engine.Uint64(data[9:17]))

	if h.ColumnCount < 0 {
		return fmt.Errorf("%w: %d", errs.ErrInvalidColumnCount, h.ColumnCount)
	}
	if h.RowCount < 0 {
		return fmt.Errorf("%w: %d", errs.ErrInvalidRowCount, h.RowCount)
	}

	return nil
}

// Bytes serializes the FileHeader into a 17-byte slice.
func (h *FileHeader) Bytes() []byte {
	engine := endian.GetLittleEndianEngine()

	b := make([]byte, 0, HeaderSize)
	b = append(b, MagicNumber[:]...)
	b = append(b, Version)
	b = engine.AppendUint32(b, uint32(h.ColumnCount))
	b = engine.AppendUint64(b, uint64(h.RowCount))

	return b
}
