package compress

import (
	"fmt"

	"github.com/klauspost/compress/zstd"

	"github.com/arloliu/dicol/errs"
)

// ZstdCompressor applies Zstandard compression.
//
// Zstd gives the best ratio of the built-in algorithms on code streams with
// long runs of repeated codes, at the highest CPU cost. The default build uses
// the pure-Go klauspost/compress implementation; building with the gozstd tag
// (and cgo) switches to the valyala/gozstd bindings of the C library. Both
// produce standard Zstandard frames and read each other's output.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(codeStream)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

// zstdDstCap returns the output capacity to preallocate for a frame expected
// to decompress to size bytes.
//
// The frame header's content size, when present, must agree with size.
// Without it, nothing is preallocated and the output grows with what the
// frame actually produces.
func zstdDstCap(data []byte, size int) (int, error) {
	var header zstd.Header
	if err := header.Decode(data); err != nil {
		return 0, fmt.Errorf("%w: zstd frame header: %w", errs.ErrMalformedStream, err)
	}
	if !header.HasFCS {
		return 0, nil
	}
	if size < 0 || header.FrameContentSize != uint64(size) {
		return 0, fmt.Errorf("%w: zstd frame holds %d bytes, header records %d",
			errs.ErrMalformedStream, header.FrameContentSize, size)
	}

	return size, nil
}
