// Package encoding holds the internal payload encodings of the column blob format.
//
// The public code codecs live in github.com/arloliu/dicol/encoding. This package
// only covers the dictionary key payload that precedes the code stream in a
// column blob:
//
//	[Len0: uvarint][Key0 bytes] [Len1: uvarint][Key1 bytes] ...
//
// Keys are written in code order, so the i-th key decoded is the key of code i.
// The key count is not part of the payload; it is recorded in the column header.
package encoding
