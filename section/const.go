package section

import "math"

// MagicNumber is the 4-byte tag at the start of every COLF file.
var MagicNumber = [4]byte{'C', 'O', 'L', 'F'}

const (
	// Version is the current format version. A reader rejects any other value.
	Version uint8 = 1

	// HeaderSize is the fixed file header size in bytes:
	// magic (4) + version (1) + column count (4) + row count (8).
	HeaderSize = 17

	// ColumnMetaFixedSize is the fixed portion of one metadata entry in bytes:
	// name length (4) + type code (1) + offset (8) + compressed size (4) +
	// uncompressed size (4). The column name follows the name length field,
	// so a full entry occupies ColumnMetaFixedSize + len(name) bytes.
	ColumnMetaFixedSize = 21

	// MaxColumnCount is the maximum number of columns in one file.
	MaxColumnCount = math.MaxInt32

	// MaxNameLength is a sanity cap on column name byte length during
	// metadata parsing, guarding against absurd allocations from a
	// corrupted length field.
	MaxNameLength = 1 << 20
)
