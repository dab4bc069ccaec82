// Package dicol is a dictionary-encoded single-column engine.
//
// A raw text column is dictionary-encoded in parallel: every distinct value
// gets a dense uint32 code in first-seen order and every row is replaced by
// its code. The encoded column is compressed with a variable-byte codec,
// stored as a self-describing column blob, and answers exact-match and
// prefix-match queries with an 8-lane vectorized scan.
//
// # Core Features
//
//   - Sharded parallel encoding with a deterministic merge
//   - Variable-byte (LEB128) and fixed-width code encodings
//   - Optional block compression of the code stream (Zstd, S2, LZ4)
//   - xxHash64 checksums on the stored code stream
//   - SWAR exact and prefix scans with a scalar fallback
//
// # Basic Usage
//
//	raw, _ := dicol.ReadColumnFile("names.txt")
//	session, _ := dicol.Encode(raw, runtime.NumCPU())
//
//	rows := dicol.FindExact(session, "Alice").Rows()
//	prefixed := dicol.FindPrefix(session, "Al").Rows()
//
// Storing and restoring a column:
//
//	data, _ := dicol.EncodeBlob(session, blob.WithCompression(format.CompressionZstd))
//	restored, _ := dicol.DecodeBlob(data)
//
// # Package Structure
//
// This package provides top-level wrappers for the common cases. The encoder,
// query, blob, encoding and persist packages expose the full APIs.
package dicol

import (
	"fmt"

	"github.com/arloliu/dicol/blob"
	"github.com/arloliu/dicol/encoder"
	"github.com/arloliu/dicol/errs"
	"github.com/arloliu/dicol/ingest"
	"github.com/arloliu/dicol/query"
)

// ReadColumnFile reads a raw column, one sanitized row per line.
func ReadColumnFile(path string) ([]string, error) {
	return ingest.ReadFile(path)
}

// Encode dictionary-encodes raw with shardCount workers.
//
// Example:
//
//	session, err := dicol.Encode([]string{"cat", "dog", "cat"}, 2)
//	// session.Column() == [0 1 0]
func Encode(raw []string, shardCount int, opts ...encoder.Option) (*encoder.Session, error) {
	return encoder.Encode(raw, shardCount, opts...)
}

// FindExact returns the rows of session equal to literal.
func FindExact(session *encoder.Session, literal string) query.Result {
	return query.FindExact(session.Dictionary(), session.Column(), literal)
}

// FindPrefix returns the rows of session starting with prefix.
func FindPrefix(session *encoder.Session, prefix string) query.Result {
	return query.FindPrefix(session.Dictionary(), session.Column(), prefix)
}

// EncodeBlob stores session as a column blob including its dictionary.
//
// The default blob uses variable-byte codes, little-endian byte order and no
// block compression; opts override these.
func EncodeBlob(session *encoder.Session, opts ...blob.ColumnEncoderOption) ([]byte, error) {
	enc, err := blob.NewColumnEncoder(opts...)
	if err != nil {
		return nil, err
	}

	return enc.Encode(session.Dictionary(), session.Column())
}

// DecodeBlob restores a session from a column blob written with its
// dictionary payload.
func DecodeBlob(data []byte) (*encoder.Session, error) {
	dec, err := blob.NewColumnDecoder(data)
	if err != nil {
		return nil, err
	}

	col, err := dec.Decode()
	if err != nil {
		return nil, err
	}

	if !col.HasDictionary() {
		return nil, fmt.Errorf("%w: blob holds codes only", errs.ErrInvalidDictionaryPayload)
	}

	return encoder.Restore(col.Dictionary(), col.Codes())
}
