// Package compress provides the block compression codecs applied to encoded code streams.
//
// A column blob is built in two stages:
//
//  1. Encoding: the encoding package turns dictionary codes into bytes
//     (variable-byte or fixed-width raw).
//  2. Compression: this package optionally compresses that byte stream as a
//     single block before it is stored.
//
// Supported algorithms, selected with format.CompressionType:
//   - None: the stream is stored as-is
//   - Zstd: best ratio on long runs of repeated codes, slowest
//   - S2: balanced speed and ratio
//   - LZ4: fastest decompression
//
// Every codec implements Codec:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	block, err := codec.Compress(stream)
//	...
//	stream, err = codec.DecompressSize(block, codesSize)
//
// DecompressSize takes the uncompressed size recorded in the column header and
// rejects a block that decompresses to any other length.
//
// # Zstd backends
//
// The default build uses github.com/klauspost/compress/zstd with pooled
// encoders and decoders. Building with -tags gozstd on a cgo-enabled toolchain
// switches ZstdCompressor to github.com/valyala/gozstd. Both write standard
// Zstandard frames.
//
// # Thread Safety
//
// All codecs are stateless or pool their internal state and are safe for
// concurrent use. GetCodec returns shared instances.
package compress
