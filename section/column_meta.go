package section

import (
	"fmt"
	"io"

	"github.com/arloliu/colf/endian"
	"github.com/arloliu/colf/errs"
	"github.com/arloliu/colf/format"
)

// ColumnMeta records where one column's compressed block lives and how to
// restore it. Entries are written after the file header in schema order.
//
// Entries are variable-length: the UTF-8 column name follows a 4-byte length
// prefix, then the fixed fields. Offsets are absolute from the start of the
// file, which lets a reader seek straight to a column's block without
// touching any other column's bytes.
type ColumnMeta struct {
	// Name is the column name, unique within a file by writer convention.
	Name string
	// Type is the column's value type code.
	Type format.ColumnType
	// Offset is the absolute byte offset of the compressed block from the
	// start of the file.
	Offset uint64
	// CompressedSize is the on-disk byte length of the compressed block.
	CompressedSize uint32
	// UncompressedSize is the exact byte length the block decompresses to.
	UncompressedSize uint32
}

// EntrySize returns the on-disk size of this metadata entry in bytes.
func (m *ColumnMeta) EntrySize() int {
	return ColumnMetaFixedSize + len(m.Name)
}

// AppendTo appends the serialized entry to buf and returns the extended slice.
func (m *ColumnMeta) AppendTo(buf []byte) []byte {
	engine := endian.GetLittleEndianEngine()

	buf = engine.AppendUint32(buf, uint32(len(m.Name)))
	buf = append(buf, m.Name...)
	buf = append(buf, byte(m.Type))
	buf = engine.AppendUint64(buf, m.Offset)
	buf = engine.AppendUint32(buf, m.CompressedSize)
	buf = engine.AppendUint32(buf, m.UncompressedSize)

	return buf
}

// ReadColumnMeta reads one metadata entry from r.
//
// A short read anywhere inside the entry is a terminal format error
// (errs.ErrTruncatedMetadata), not a partial result. The type code is
// validated against the closed column type set.
func ReadColumnMeta(r io.Reader) (ColumnMeta, error) {
	engine := endian.GetLittleEndianEngine()

	var meta ColumnMeta

	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return meta, fmt.Errorf("%w: %w", errs.ErrTruncatedMetadata, err)
	}

	nameLen := engine.Uint32(lenBuf[:])
	if nameLen > MaxNameLength {
		return meta, fmt.Errorf("%w: name length %d exceeds %d", errs.ErrInvalidMetadataLength, nameLen, MaxNameLength)
	}

	// name + type code + offset + compressed size + uncompressed size
	rest := make([]byte, int(nameLen)+ColumnMetaFixedSize-4)
	if _, err := io.ReadFull(r, rest); err != nil {
		return meta, fmt.Errorf("%w: %w", errs.ErrTruncatedMetadata, err)
	}

	meta.Name = string(rest[:nameLen])
	fixed := rest[nameLen:]

	meta.Type = format.ColumnType(fixed[0])
	if !meta.Type.IsValid() {
		return meta, fmt.Errorf("%w: code %d for column %q", errs.ErrInvalidColumnType, fixed[0], meta.Name)
	}

	meta.Offset = engine.Uint64(fixed[1:9])
	meta.CompressedSize = engine.Uint32(fixed[9:13])
	meta.UncompressedSize = engine.Uint32(fixed[13:17])

	return meta, nil
}
