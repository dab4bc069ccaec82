package blob

import (
	"github.com/arloliu/dicol/column"
	"github.com/arloliu/dicol/endian"
	"github.com/arloliu/dicol/format"
	"github.com/arloliu/dicol/section"
)

// ColumnBlob is a decoded column blob.
//
// The codes and dictionary are fully materialized; the blob bytes it was
// decoded from are no longer referenced.
type ColumnBlob struct {
	header section.ColumnHeader
	codes  column.Encoded
	dict   *column.Dictionary
}

// Header returns a copy of the parsed header.
func (b ColumnBlob) Header() section.ColumnHeader {
	return b.header
}

// RowCount returns the number of rows.
func (b ColumnBlob) RowCount() int {
	return len(b.codes)
}

// Codes returns the encoded column.
func (b ColumnBlob) Codes() column.Encoded {
	return b.codes
}

// Dictionary returns the stored dictionary, or nil when the blob holds codes only.
func (b ColumnBlob) Dictionary() *column.Dictionary {
	return b.dict
}

// HasDictionary reports whether the blob carried a dictionary payload.
func (b ColumnBlob) HasDictionary() bool {
	return b.dict != nil
}

// CodeEncoding returns the code layout recorded in the header.
func (b ColumnBlob) CodeEncoding() format.EncodingType {
	return b.header.Flag.GetCodeEncoding()
}

// Compression returns the block compression recorded in the header.
func (b ColumnBlob) Compression() format.CompressionType {
	return b.header.Flag.GetPayloadCompression()
}

// SameByteOrder reports whether the blob's byte order matches the host.
func (b ColumnBlob) SameByteOrder() bool {
	return endian.IsNative(b.header.GetEndianEngine())
}

// StoredSize returns the size of the codes payload as stored.
func (b ColumnBlob) StoredSize() int {
	return int(b.header.StoredSize)
}
