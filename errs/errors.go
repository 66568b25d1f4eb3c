// Package errs defines the sentinel errors shared across the colf packages.
//
// Errors fall into four families:
//
//   - Format errors (bad magic, version, truncated header or metadata) are
//     raised while opening a file and make the whole file unusable.
//   - ErrCorruptBlock and the errors wrapping it fail a single column read;
//     the reader's metadata index stays valid for subsequent calls.
//   - ErrColumnNotFound is caller-recoverable and never aborts the retrieval
//     of other requested columns.
//   - Writer validation errors (row count mismatch, duplicate names) reject
//     the input before any bytes are emitted.
//
// Use errors.Is to match; call sites wrap sentinels with fmt.Errorf("%w: ...")
// to attach detail.
package errs

import (
	"errors"
	"fmt"
)

// Format errors: the file cannot be opened.
var (
	ErrInvalidMagicNumber = errors.New("invalid magic number")
	ErrUnsupportedVersion = errors.New("unsupported format version")
	ErrInvalidHeaderSize  = errors.New("invalid header size")
	ErrInvalidColumnCount = errors.New("invalid column count")
	ErrInvalidRowCount    = errors.New("invalid row count")
	ErrTruncatedMetadata  = errors.New("truncated column metadata")
	ErrInvalidColumnType  = errors.New("invalid column type")
)

// Corruption errors: a single column read fails, the reader stays usable.
// ErrInvalidStringOffsets and ErrInvalidUTF8 wrap ErrCorruptBlock, so
// errors.Is(err, ErrCorruptBlock) matches every corruption failure.
var (
	ErrCorruptBlock         = errors.New("corrupt column block")
	ErrInvalidStringOffsets = fmt.Errorf("%w: invalid string offset array", ErrCorruptBlock)
	ErrInvalidUTF8          = fmt.Errorf("%w: invalid UTF-8 in string data", ErrCorruptBlock)
)

// Lookup errors.
var (
	ErrColumnNotFound = errors.New("column not found")
	ErrReaderClosed   = errors.New("reader is closed")
)

// Writer validation errors.
var (
	ErrRowCountMismatch      = errors.New("row count mismatch across columns")
	ErrDuplicateColumnName   = errors.New("duplicate column name")
	ErrInvalidColumnName     = errors.New("invalid column name")
	ErrWriterFinished        = errors.New("writer already finished")
	ErrColumnCountExceeded   = errors.New("column count exceeded")
	ErrInvalidMetadataLength = errors.New("invalid metadata entry length")
)
