package blob

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/arloliu/dicol/column"
	"github.com/arloliu/dicol/encoding"
	"github.com/arloliu/dicol/errs"
	ienc "github.com/arloliu/dicol/internal/encoding"
	"github.com/arloliu/dicol/internal/hash"
	"github.com/arloliu/dicol/internal/options"
	"github.com/arloliu/dicol/section"
)

// ColumnEncoder serializes a dictionary and its encoded column into a column blob.
//
// The encoder holds only configuration, so one instance can encode many
// columns and is safe for concurrent use.
type ColumnEncoder struct {
	*ColumnEncoderConfig
}

// NewColumnEncoder creates a ColumnEncoder.
//
// Parameters:
//   - opts: code encoding, payload compression, endianness, dictionary payload,
//     logger and metrics options
//
// Returns:
//   - *ColumnEncoder: the configured encoder
//   - error: invalid option values
func NewColumnEncoder(opts ...ColumnEncoderOption) (*ColumnEncoder, error) {
	config := NewColumnEncoderConfig()

	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	if err := config.setCodecs(); err != nil {
		return nil, err
	}

	return &ColumnEncoder{ColumnEncoderConfig: config}, nil
}

// Encode builds the blob for codes.
//
// Parameters:
//   - dict: dictionary of codes; may be nil only when the dictionary payload is disabled
//   - codes: encoded column in row order
//
// Returns:
//   - []byte: the column blob, owned by the caller
//   - error: errs.ErrInvalidDictionaryPayload when dict is required but nil,
//     errs.ErrInvariantViolation when a code has no dictionary entry,
//     errs.ErrColumnTooLarge when a size exceeds the 32-bit header fields
func (e *ColumnEncoder) Encode(dict *column.Dictionary, codes column.Encoded) ([]byte, error) {
	dictLen := 0
	if dict != nil {
		dictLen = dict.Len()
	}

	if e.flag.HasDictionary() && dict == nil {
		return nil, fmt.Errorf("%w: dictionary payload enabled but no dictionary given", errs.ErrInvalidDictionaryPayload)
	}

	if dict != nil {
		if maxCode, ok := codes.MaxCode(); ok && int64(maxCode) >= int64(dictLen) {
			return nil, fmt.Errorf("%w: code %d has no entry in a dictionary of %d keys",
				errs.ErrInvariantViolation, maxCode, dictLen)
		}
	}

	header, err := section.NewColumnHeader(len(codes), dictLen)
	if err != nil {
		return nil, err
	}
	header.Flag = e.flag

	streamEnc := encoding.NewStreamEncoder(e.codeCodec)
	defer streamEnc.Finish()

	streamEnc.WriteSlice(codes)
	stream := streamEnc.Bytes()

	payload, err := e.payloadCodec.Compress(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to compress code stream: %w", err)
	}

	var keys []string
	if header.Flag.HasDictionary() {
		keys = dict.Keys()
	}
	keysSize := ienc.KeysSize(keys)

	codesOffset := section.HeaderSize + keysSize
	if uint64(codesOffset) > math.MaxUint32 || uint64(len(stream)) > math.MaxUint32 || uint64(len(payload)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: payload sizes exceed 32-bit offsets", errs.ErrColumnTooLarge)
	}

	header.CodesOffset = uint32(codesOffset) //nolint: gosec
	header.CodesSize = uint32(len(stream))   //nolint: gosec
	header.StoredSize = uint32(len(payload)) //nolint: gosec
	header.Checksum = hash.Sum(stream)

	// exact-size buffer, returned to the caller
	out := make([]byte, 0, codesOffset+len(payload))
	out = header.AppendTo(out)
	out = ienc.AppendKeys(out, keys)
	out = append(out, payload...)

	e.metrics.ObserveCompressed(header.Flag.GetCodeEncoding().String(), len(payload))
	e.logger.Debug("encoded column blob",
		zap.Int("rows", len(codes)),
		zap.Int("keys", dictLen),
		zap.Stringer("encoding", header.Flag.GetCodeEncoding()),
		zap.Stringer("compression", header.Flag.GetPayloadCompression()),
		zap.Int("code_stream_bytes", len(stream)),
		zap.Int("stored_bytes", len(payload)),
		zap.Int("blob_bytes", len(out)),
	)

	return out, nil
}
