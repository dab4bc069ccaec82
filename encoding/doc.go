// Package encoding converts dictionary-encoded columns to and from compact byte streams.
//
// The package defines a pluggable Codec capability over uint32 code sequences
// and two implementations:
//
//   - VarByteCodec (format.TypeVarByte): each code is written as 7-bit groups,
//     least-significant group first, with the high bit set on every byte except
//     the last one of the code. Low-cardinality columns, whose codes are small,
//     take close to one byte per row.
//   - RawCodec (format.TypeRaw): each code is written as a fixed 4-byte integer
//     in the configured byte order.
//
// Compress and Decompress wrap a codec into a CompressedColumn value that keeps
// the element count needed to decode:
//
//	c := encoding.Compress(codes, encoding.NewVarByteCodec())
//	restored, err := encoding.Decompress(c, len(codes))
//
// Decoding never panics on corrupt input. A stream that ends before count codes
// are read or a code whose continuation chain overflows 32 bits fails with
// errs.ErrMalformedStream. Decompress reads the first count codes and ignores
// the rest; Codec.Decode also rejects bytes left after the last code, which is
// what the column blob decoder relies on.
//
// NewStreamEncoder returns a ColumnarEncoder that accumulates codes into a
// pooled buffer and must be finished to return the buffer.
package encoding
