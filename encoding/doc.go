// Package encoding provides the per-type column encoders and decoders that
// translate between in-memory column values and uncompressed byte blocks.
//
// Three encodings cover the closed column type set:
//
//   - Int32RawEncoder/Decoder: fixed 4-byte little-endian slots in row order
//   - Float64RawEncoder/Decoder: fixed 8-byte IEEE-754 slots in row order
//   - StringOffsetsEncoder/Decoder: an Int32 cumulative end-offset array
//     followed by the concatenated UTF-8 data region
//
// Encoders append into pooled byte buffers and must be released with
// Finish(). Decoders are stateless values: numeric decoders expose iterator
// (All) and positional (At) access, while the string decoder returns an
// error because offset arrays from disk require validation.
//
// The block produced here is what the compress package compresses; neither
// layer knows about the other's internals.
package encoding
