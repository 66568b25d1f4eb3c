// Package file assembles and reads complete COLF files.
//
// The Writer collects typed columns, encodes and compresses each one, and
// emits the header, metadata table and contiguous data blocks. The Reader
// parses only the header and metadata up front, then serves selective column
// reads by seeking directly to the requested blocks; columns that are never
// requested are never read or decompressed.
//
// Both sides delegate value translation to the encoding package and block
// compression to the compress package.
package file
