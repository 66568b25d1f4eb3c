// Package colf provides a compact binary columnar file format with selective
// column reads.
//
// A COLF file stores a table column by column: each column is encoded by
// type, compressed independently with zlib, and indexed by an absolute byte
// offset in the file's metadata table. A reader that wants two columns out of
// fifty seeks straight to their two blocks and never reads the other
// forty-eight.
//
// # Layout
//
// Every file begins with a fixed 17-byte header (magic tag, version, column
// count, row count), followed by one variable-length metadata entry per
// column, followed by the compressed column blocks laid out contiguously in
// schema order. All multi-byte values are little-endian.
//
// # Column types
//
//   - Int32: fixed 4-byte two's complement slots
//   - Float64: fixed 8-byte IEEE-754 slots, bit-exact round trips
//   - String: an Int32 cumulative end-offset array followed by the
//     concatenated UTF-8 data, no per-value length prefixes
//
// # Basic Usage
//
// Writing a file:
//
//	w := colf.NewWriter()
//	w.Add(format.NewInt32Column("id", []int32{1, 2, 3}))
//	w.Add(format.NewStringColumn("name", []string{"Alice", "Bob", "Charlie"}))
//	err := w.WriteFile("people.colf")
//
// Reading a subset of columns:
//
//	r, err := colf.OpenFile("people.colf")
//	defer r.Close()
//
//	cols, err := r.ReadColumns("name")
//	fmt.Println(cols["name"].Strings)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the file
// package, simplifying the most common use cases. For fine-grained control
// over encoding and compression, use the file, encoding and compress packages
// directly.
package colf

import (
	"io"

	"github.com/arloliu/colf/file"
	"github.com/arloliu/colf/format"
)

// NewWriter creates a writer for a new COLF file.
//
// Columns are added in schema order with Add or AddColumns; the first column
// fixes the file's row count. Finish, WriteTo or WriteFile assembles the
// file, after which the writer is spent.
//
// Example:
//
//	w := colf.NewWriter()
//	if err := w.AddColumns(
//	    format.NewInt32Column("id", ids),
//	    format.NewFloat64Column("score", scores),
//	); err != nil {
//	    log.Fatal(err)
//	}
//	data, err := w.Finish()
func NewWriter() *file.Writer {
	return file.NewWriter()
}

// NewReader creates a reader over an in-memory or already-open source.
//
// Only the header and metadata table are parsed up front; column blocks are
// read lazily, and only for the columns actually requested.
//
// Parameters:
//   - rs: the file content, positioned at the start (e.g. a bytes.Reader)
//   - opts: optional configuration (see file.ReaderOption)
//
// Example:
//
//	r, err := colf.NewReader(bytes.NewReader(data))
//	cols, err := r.ReadColumns("name", "score")
func NewReader(rs io.ReadSeeker, opts ...file.ReaderOption) (*file.Reader, error) {
	return file.NewReader(rs, opts...)
}

// OpenFile opens the COLF file at path for selective column reads.
// The caller must Close the returned reader.
//
// Example:
//
//	r, err := colf.OpenFile("people.colf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
//	for _, desc := range r.Schema() {
//	    fmt.Printf("%s: %s\n", desc.Name, desc.Type)
//	}
func OpenFile(path string, opts ...file.ReaderOption) (*file.Reader, error) {
	return file.OpenFile(path, opts...)
}

// WriteFile writes cols to path as a COLF file in one call.
//
// It is shorthand for creating a writer, adding every column and calling
// WriteFile. Column validation still applies: names must be unique and
// non-empty, and every column must share the first column's row count.
func WriteFile(path string, cols ...format.Column) error {
	w := file.NewWriter()
	if err := w.AddColumns(cols...); err != nil {
		return err
	}

	return w.WriteFile(path)
}

// ReadFile reads every column of the COLF file at path in schema order.
//
// For large files where only some columns are needed, prefer OpenFile with
// ReadColumns to avoid reading and decompressing the rest.
func ReadFile(path string) ([]format.Column, error) {
	r, err := file.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return r.ReadAll()
}
