package column

import (
	"iter"
	"strings"
)

// Dictionary maps distinct column values to dense uint32 codes.
//
// A Dictionary is immutable; it is safe for concurrent readers.
type Dictionary struct {
	keys  []string          // code -> key
	index map[string]uint32 // key -> code
}

// NewDictionary builds a Dictionary from keys listed in code order.
//
// Keys must be distinct; the second return value is false if a duplicate is found.
func NewDictionary(keys []string) (*Dictionary, bool) {
	index := make(map[string]uint32, len(keys))
	for code, key := range keys {
		if _, dup := index[key]; dup {
			return nil, false
		}
		index[key] = uint32(code) //nolint: gosec
	}

	owned := make([]string, len(keys))
	copy(owned, keys)

	return &Dictionary{keys: owned, index: index}, true
}

// Len returns the number of distinct keys.
func (d *Dictionary) Len() int {
	return len(d.keys)
}

// Code returns the code assigned to key.
func (d *Dictionary) Code(key string) (uint32, bool) {
	code, ok := d.index[key]
	return code, ok
}

// Key returns the key assigned to code.
func (d *Dictionary) Key(code uint32) (string, bool) {
	if int(code) >= len(d.keys) {
		return "", false
	}

	return d.keys[code], true
}

// Keys returns a copy of all keys in code order.
func (d *Dictionary) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)

	return out
}

// All yields every (key, code) pair in ascending code order.
func (d *Dictionary) All() iter.Seq2[string, uint32] {
	return func(yield func(string, uint32) bool) {
		for code, key := range d.keys {
			if !yield(key, uint32(code)) { //nolint: gosec
				return
			}
		}
	}
}

// MatchPrefix returns, in ascending order, the codes of all keys that start
// with prefix. Matching is byte-wise; the empty prefix matches every key.
func (d *Dictionary) MatchPrefix(prefix string) []uint32 {
	var codes []uint32
	for code, key := range d.keys {
		if strings.HasPrefix(key, prefix) {
			codes = append(codes, uint32(code)) //nolint: gosec
		}
	}

	return codes
}

// Decode maps codes back to their keys. It reports false if a code has no entry.
func (d *Dictionary) Decode(codes Encoded) ([]string, bool) {
	out := make([]string, len(codes))
	for i, code := range codes {
		key, ok := d.Key(code)
		if !ok {
			return nil, false
		}
		out[i] = key
	}

	return out, true
}
