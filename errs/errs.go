// Package errs defines the sentinel errors shared by all dicol packages.
//
// Callers match them with errors.Is; the packages that return them wrap the
// sentinel with context using fmt.Errorf("%w: ...").
package errs

import "errors"

// Ingestion and CLI errors.
var (
	// ErrIOFailure indicates the raw column could not be read.
	ErrIOFailure = errors.New("raw column is not readable")
	// ErrInvalidThreadCount indicates a worker count outside [1, hardware parallelism].
	ErrInvalidThreadCount = errors.New("invalid thread count")
)

// Encoding errors.
var (
	// ErrInvalidShardCount indicates a shard count smaller than 1.
	ErrInvalidShardCount = errors.New("shard count must be at least 1")
	// ErrInvariantViolation indicates the merged dictionary or encoded column is inconsistent.
	ErrInvariantViolation = errors.New("dictionary invariant violation")
)

// Codec and blob format errors.
var (
	// ErrMalformedStream indicates a compressed code stream that cannot be decoded.
	ErrMalformedStream = errors.New("malformed compressed stream")
	// ErrCountMismatch indicates a decoded element count that differs from the expected count.
	ErrCountMismatch = errors.New("element count mismatch")
	// ErrInvalidHeaderSize indicates a column blob header of the wrong size.
	ErrInvalidHeaderSize = errors.New("invalid header size")
	// ErrInvalidHeaderFlags indicates unknown encoding, compression or reserved bits in a header.
	ErrInvalidHeaderFlags = errors.New("invalid header flags")
	// ErrInvalidMagicNumber indicates data that is not a dicol column blob.
	ErrInvalidMagicNumber = errors.New("invalid magic number")
	// ErrInvalidPayloadOffset indicates header offsets that point outside the blob.
	ErrInvalidPayloadOffset = errors.New("invalid payload offset")
	// ErrChecksumMismatch indicates the decoded code stream does not match the stored checksum.
	ErrChecksumMismatch = errors.New("checksum mismatch")
	// ErrInvalidDictionaryPayload indicates a truncated or inconsistent dictionary payload.
	ErrInvalidDictionaryPayload = errors.New("invalid dictionary payload")
	// ErrUnsupportedEncoding indicates a code encoding without a registered codec.
	ErrUnsupportedEncoding = errors.New("unsupported code encoding")
	// ErrColumnTooLarge indicates a row or key count that does not fit the 32-bit header fields.
	ErrColumnTooLarge = errors.New("column too large")
)

// Text persistence errors.
var (
	// ErrInvalidDictionaryLine indicates a dictionary line not in "<key> : <code>" form.
	ErrInvalidDictionaryLine = errors.New("invalid dictionary line")
	// ErrInvalidCodeLine indicates an encoded data line that is not a decimal code.
	ErrInvalidCodeLine = errors.New("invalid code line")
)
