package section

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/dicol/endian"
	"github.com/arloliu/dicol/errs"
	"github.com/arloliu/dicol/format"
)

// ColumnHeader is the fixed 32-byte header of a column blob.
//
// Options (the first two bytes) are always little-endian so a reader can find
// the endianness bit before anything else; every later field uses the byte
// order that bit selects.
type ColumnHeader struct {
	// Flag holds options, magic number, code encoding and payload compression.
	Flag ColumnFlag // 4 bytes, offset 0-3
	// RowCount is the number of rows (codes) in the column.
	RowCount uint32 // 4 bytes, offset 4-7
	// DictionaryCount is the number of distinct keys.
	DictionaryCount uint32 // 4 bytes, offset 8-11
	// CodesOffset is the byte offset of the codes payload.
	CodesOffset uint32 // 4 bytes, offset 12-15
	// CodesSize is the size of the code stream before block compression.
	CodesSize uint32 // 4 bytes, offset 16-19
	// StoredSize is the size of the codes payload as stored.
	StoredSize uint32 // 4 bytes, offset 20-23
	// Checksum is the xxHash64 of the code stream before block compression.
	Checksum uint64 // 8 bytes, offset 24-31
}

// NewColumnHeader creates a header for a column of rowCount rows and dictCount distinct keys.
func NewColumnHeader(rowCount, dictCount int) (*ColumnHeader, error) {
	if rowCount < 0 || uint64(rowCount) > MaxColumnRows {
		return nil, fmt.Errorf("%w: row count %d", errs.ErrColumnTooLarge, rowCount)
	}
	if dictCount < 0 || uint64(dictCount) > MaxDictionarySize {
		return nil, fmt.Errorf("%w: dictionary size %d", errs.ErrColumnTooLarge, dictCount)
	}

	return &ColumnHeader{
		Flag:            NewColumnFlag(),
		RowCount:        uint32(rowCount),  //nolint: gosec
		DictionaryCount: uint32(dictCount), //nolint: gosec
		CodesOffset:     HeaderSize,
	}, nil
}

// Parse parses the header from a byte slice.
// It returns an error if data is not exactly 32 bytes or if the flags are invalid.
func (h *ColumnHeader) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return fmt.Errorf("%w: got %d bytes, want %d", errs.ErrInvalidHeaderSize, len(data), HeaderSize)
	}

	h.Flag.Options = binary.LittleEndian.Uint16(data[0:2])
	h.Flag.CodeEncoding = data[2]
	h.Flag.PayloadCompression = data[3]

	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.GetEndianEngine()
	h.RowCount = engine.Uint32(data[4:8])
	h.DictionaryCount = engine.Uint32(data[8:12])
	h.CodesOffset = engine.Uint32(data[12:16])
	h.CodesSize = engine.Uint32(data[16:20])
	h.StoredSize = engine.Uint32(data[20:24])
	h.Checksum = engine.Uint64(data[24:32])

	return nil
}

// Bytes serializes the header into a new 32-byte slice.
func (h *ColumnHeader) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// AppendTo appends the serialized header to dst.
func (h *ColumnHeader) AppendTo(dst []byte) []byte {
	engine := h.GetEndianEngine()

	dst = binary.LittleEndian.AppendUint16(dst, h.Flag.Options)
	dst = append(dst, h.Flag.CodeEncoding, h.Flag.PayloadCompression)
	dst = engine.AppendUint32(dst, h.RowCount)
	dst = engine.AppendUint32(dst, h.DictionaryCount)
	dst = engine.AppendUint32(dst, h.CodesOffset)
	dst = engine.AppendUint32(dst, h.CodesSize)
	dst = engine.AppendUint32(dst, h.StoredSize)
	dst = engine.AppendUint64(dst, h.Checksum)

	return dst
}

// GetEndianEngine returns the endian engine selected by the header flags.
func (h *ColumnHeader) GetEndianEngine() endian.EndianEngine {
	return endian.ForHeader(h.Flag.IsBigEndian())
}

// ValidateLayout checks that the header's offsets describe a blob of blobSize bytes:
// the codes payload starts after the header (right after it when there is no
// dictionary payload) and ends exactly at the end of the blob.
//
// It also bounds CodesSize by RowCount, so a decoder never sizes a buffer from
// an unchecked header field.
func (h *ColumnHeader) ValidateLayout(blobSize int) error {
	if h.CodesOffset < HeaderSize {
		return fmt.Errorf("%w: codes offset %d inside header", errs.ErrInvalidPayloadOffset, h.CodesOffset)
	}
	if !h.Flag.HasDictionary() && h.CodesOffset != HeaderSize {
		return fmt.Errorf("%w: codes offset %d without dictionary payload", errs.ErrInvalidPayloadOffset, h.CodesOffset)
	}

	end := uint64(h.CodesOffset) + uint64(h.StoredSize)
	if end != uint64(blobSize) { //nolint: gosec
		return fmt.Errorf("%w: codes payload [%d, %d) does not end at blob size %d",
			errs.ErrInvalidPayloadOffset, h.CodesOffset, end, blobSize)
	}

	return h.validateCodesSize()
}

func (h *ColumnHeader) validateCodesSize() error {
	rows := uint64(h.RowCount)
	size := uint64(h.CodesSize)

	switch h.Flag.GetCodeEncoding() {
	case format.TypeRaw:
		if size != rows*RawCodeSize {
			return fmt.Errorf("%w: %d raw codes need %d bytes, header records %d",
				errs.ErrMalformedStream, rows, rows*RawCodeSize, size)
		}
	case format.TypeVarByte:
		if size < rows || size > rows*MaxVarByteCodeSize {
			return fmt.Errorf("%w: %d variable-byte codes need %d-%d bytes, header records %d",
				errs.ErrMalformedStream, rows, rows, rows*MaxVarByteCodeSize, size)
		}
	}

	if h.Flag.GetPayloadCompression() == format.CompressionNone && h.CodesSize != h.StoredSize {
		return fmt.Errorf("%w: uncompressed code stream of %d bytes stored in %d bytes",
			errs.ErrMalformedStream, h.CodesSize, h.StoredSize)
	}

	return nil
}
