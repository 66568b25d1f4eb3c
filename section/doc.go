// Package section defines the on-disk header and metadata structures of the
// COLF format.
//
// A COLF file is laid out as three regions:
//
//	FileHeader (17 bytes) | ColumnMeta entries (schema order) | compressed blocks (schema order)
//
// The header records the magic tag, format version, column count and the
// file-wide row count. Each ColumnMeta entry records a column's name, type
// code, absolute block offset and compressed/uncompressed sizes; blocks are
// laid out contiguously with no padding, so the metadata table alone is
// enough to seek to and restore any single column.
//
// All multi-byte integers are little-endian.
package section
