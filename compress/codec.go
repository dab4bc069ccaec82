package compress

import (
	"fmt"
	"time"

	"github.com/arloliu/dicol/errs"
	"github.com/arloliu/dicol/format"
)

// Compressor block-compresses an encoded code stream.
type Compressor interface {
	// Compress compresses data and returns the compressed result.
	//
	// Memory management:
	//   - The returned slice is owned by the caller
	//   - data is not modified
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a block produced by the matching Compressor.
//
// Implementations must be safe for concurrent use.
type Decompressor interface {
	// Decompress decompresses data and returns the original bytes.
	//
	// It returns an error if data is corrupted or was produced by another algorithm.
	Decompress(data []byte) ([]byte, error)

	// DecompressSize decompresses data whose uncompressed length is known to be size.
	//
	// The column header records the uncompressed code stream size, so decoders
	// can allocate the output once. A result of any other length is an error.
	DecompressSize(data []byte, size int) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats describes one compression operation on a code stream.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used
	Algorithm format.CompressionType

	// OriginalSize is the size of the encoded code stream before compression
	OriginalSize int64

	// CompressedSize is the size of the stored block
	CompressedSize int64

	// CompressionTimeNs is the time taken to compress the stream
	CompressionTimeNs int64
}

// CompressionRatio returns the compression ratio (compressed size / original size).
//
// Returns:
//   - float64: Compression ratio (0.0 if original size is zero)
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage.
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// CompressWithStats compresses data with the built-in codec for compressionType
// and reports sizes and elapsed time.
//
// Parameters:
//   - compressionType: algorithm to apply
//   - data: encoded code stream
//
// Returns:
//   - []byte: compressed block
//   - CompressionStats: sizes and timing of the operation
//   - error: unsupported compression type or compression failure
func CompressWithStats(compressionType format.CompressionType, data []byte) ([]byte, CompressionStats, error) {
	codec, err := GetCodec(compressionType)
	if err != nil {
		return nil, CompressionStats{}, err
	}

	start := time.Now()
	compressed, err := codec.Compress(data)
	if err != nil {
		return nil, CompressionStats{}, fmt.Errorf("%s compression failed: %w", compressionType, err)
	}

	stats := CompressionStats{
		Algorithm:         compressionType,
		OriginalSize:      int64(len(data)),
		CompressedSize:    int64(len(compressed)),
		CompressionTimeNs: time.Since(start).Nanoseconds(),
	}

	return compressed, stats, nil
}

// CreateCodec creates a new Codec for the specified compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, or LZ4)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: Codec instance for the specified type
//   - error: errs.ErrInvalidHeaderFlags for an unknown type
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w: invalid %s compression: %s", errs.ErrInvalidHeaderFlags, target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the shared built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: unsupported compression type: %s", errs.ErrInvalidHeaderFlags, compressionType)
}

// checkSize verifies a decompressed block against the size recorded in the header.
func checkSize(out []byte, size int, algorithm string) ([]byte, error) {
	if len(out) != size {
		return nil, fmt.Errorf("%w: %s block decompressed to %d bytes, header records %d",
			errs.ErrMalformedStream, algorithm, len(out), size)
	}

	return out, nil
}
