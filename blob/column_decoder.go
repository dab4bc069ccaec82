package blob

import (
	"fmt"

	"github.com/arloliu/dicol/column"
	"github.com/arloliu/dicol/compress"
	"github.com/arloliu/dicol/encoding"
	"github.com/arloliu/dicol/errs"
	ienc "github.com/arloliu/dicol/internal/encoding"
	"github.com/arloliu/dicol/internal/hash"
	"github.com/arloliu/dicol/section"
)

// ColumnDecoder reads a column blob.
//
// The decoder validates the header and offsets up front and does not touch
// the payloads until Decode is called.
//
// Note: The ColumnDecoder is NOT thread-safe.
type ColumnDecoder struct {
	data   []byte
	header section.ColumnHeader
}

// NewColumnDecoder creates a ColumnDecoder for data.
//
// Parameters:
//   - data: column blob bytes
//
// Returns:
//   - *ColumnDecoder: decoder ready for Decode
//   - error: errs.ErrInvalidHeaderSize, errs.ErrInvalidMagicNumber,
//     errs.ErrInvalidHeaderFlags, errs.ErrInvalidPayloadOffset, or
//     errs.ErrMalformedStream when CodesSize is impossible for RowCount
func NewColumnDecoder(data []byte) (*ColumnDecoder, error) {
	if len(data) < section.HeaderSize {
		return nil, fmt.Errorf("%w: blob is %d bytes, header needs %d", errs.ErrInvalidHeaderSize, len(data), section.HeaderSize)
	}

	decoder := &ColumnDecoder{data: data}
	if err := decoder.header.Parse(data[:section.HeaderSize]); err != nil {
		return nil, err
	}

	if err := decoder.header.ValidateLayout(len(data)); err != nil {
		return nil, err
	}

	return decoder, nil
}

// Header returns the parsed header.
func (d *ColumnDecoder) Header() section.ColumnHeader {
	return d.header
}

// Decode decodes the dictionary payload (if present) and the codes payload.
//
// Returns:
//   - ColumnBlob: the decoded column
//   - error: errs.ErrInvalidDictionaryPayload, errs.ErrMalformedStream,
//     errs.ErrChecksumMismatch or errs.ErrCountMismatch
func (d *ColumnDecoder) Decode() (ColumnBlob, error) {
	blob := ColumnBlob{header: d.header}

	dict, err := d.decodeDictionary()
	if err != nil {
		return blob, err
	}

	codes, err := d.decodeCodes()
	if err != nil {
		return blob, err
	}

	if dict != nil {
		if maxCode, ok := codes.MaxCode(); ok && int64(maxCode) >= int64(dict.Len()) {
			return blob, fmt.Errorf("%w: code %d references a dictionary of %d keys",
				errs.ErrCountMismatch, maxCode, dict.Len())
		}
	}

	blob.dict = dict
	blob.codes = codes

	return blob, nil
}

func (d *ColumnDecoder) decodeDictionary() (*column.Dictionary, error) {
	if !d.header.Flag.HasDictionary() {
		return nil, nil //nolint: nilnil
	}

	payload := d.data[section.DictionaryOffset:d.header.CodesOffset]
	keys, n, err := ienc.DecodeKeys(payload, int(d.header.DictionaryCount))
	if err != nil {
		return nil, err
	}
	if n != len(payload) {
		return nil, fmt.Errorf("%w: %d unread bytes before the codes payload", errs.ErrInvalidDictionaryPayload, len(payload)-n)
	}

	if err := ienc.VerifyDistinctKeys(keys); err != nil {
		return nil, err
	}

	dict, ok := column.NewDictionary(keys)
	if !ok {
		return nil, fmt.Errorf("%w: duplicate keys", errs.ErrInvalidDictionaryPayload)
	}

	return dict, nil
}

func (d *ColumnDecoder) decodeCodes() (column.Encoded, error) {
	payloadCodec, err := compress.GetCodec(d.header.Flag.GetPayloadCompression())
	if err != nil {
		return nil, err
	}

	payload := d.data[d.header.CodesOffset:]
	stream, err := payloadCodec.DecompressSize(payload, int(d.header.CodesSize))
	if err != nil {
		return nil, fmt.Errorf("%w: codes payload: %w", errs.ErrMalformedStream, err)
	}

	if sum := hash.Sum(stream); sum != d.header.Checksum {
		return nil, fmt.Errorf("%w: code stream hashes to 0x%016x, header records 0x%016x",
			errs.ErrChecksumMismatch, sum, d.header.Checksum)
	}

	codec, err := encoding.CreateCodec(d.header.Flag.GetCodeEncoding(), d.header.GetEndianEngine())
	if err != nil {
		return nil, err
	}

	codes, err := codec.Decode(stream, int(d.header.RowCount))
	if err != nil {
		return nil, err
	}

	return codes, nil
}
