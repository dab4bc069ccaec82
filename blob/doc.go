// Package blob encodes and decodes dicol column blobs.
//
// A column blob is the at-rest form of one dictionary-encoded column: a
// 32-byte header (see the section package), the dictionary keys in code
// order, and the code stream written by an encoding.Codec and block-compressed
// by a compress.Codec.
//
// # Encoding
//
//	enc, err := blob.NewColumnEncoder(
//	    blob.WithCodeEncoding(format.TypeVarByte),
//	    blob.WithCompression(format.CompressionZstd),
//	)
//	if err != nil {
//	    return err
//	}
//	data, err := enc.Encode(session.Dictionary(), session.Column())
//
// # Decoding
//
//	dec, err := blob.NewColumnDecoder(data)
//	if err != nil {
//	    return err
//	}
//	col, err := dec.Decode()
//	if err != nil {
//	    return err
//	}
//	session, err := encoder.Restore(col.Dictionary(), col.Codes())
//
// NewColumnDecoder validates the header and payload offsets. Decode verifies
// the xxHash64 checksum of the decompressed code stream, decodes exactly
// RowCount codes and checks every code against the dictionary. Corrupt input
// returns an error from the errs package and never panics.
package blob
