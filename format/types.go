package format

type (
	// ColumnType identifies the value type of a column. It is stored on disk
	// as a single byte in each column's metadata entry.
	ColumnType uint8

	// CompressionType identifies a block compression algorithm.
	CompressionType uint8
)

const (
	TypeInt32   ColumnType = 0x1 // TypeInt32 represents 32-bit signed integer columns.
	TypeFloat64 ColumnType = 0x2 // TypeFloat64 represents IEEE-754 double columns.
	TypeString  ColumnType = 0x3 // TypeString represents offset-encoded UTF-8 string columns.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZlib CompressionType = 0x2 // CompressionZlib represents zlib (Deflate) compression.
	CompressionZstd CompressionType = 0x3 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x4 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x5 // CompressionLZ4 represents LZ4 compression.
)

// IsValid reports whether t is one of the closed set of column types.
func (t ColumnType) IsValid() bool {
	switch t {
	case TypeInt32, TypeFloat64, TypeString:
		return true
	default:
		return false
	}
}

func (t ColumnType) String() string {
	switch t {
	case TypeInt32:
		return "Int32"
	case TypeFloat64:
		return "Float64"
	case TypeString:
		return "String"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZlib:
		return "Zlib"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
