package encoding

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/dicol/errs"
)

// KeysSize returns the encoded size of keys in bytes.
func KeysSize(keys []string) int {
	size := 0
	for _, key := range keys {
		size += uvarintLen(uint64(len(key))) + len(key)
	}

	return size
}

// AppendKeys appends the length-prefixed key payload to dst.
//
// Parameters:
//   - dst: destination buffer, may be nil
//   - keys: dictionary keys in code order
//
// Returns:
//   - []byte: the extended buffer
func AppendKeys(dst []byte, keys []string) []byte {
	size := KeysSize(keys)
	if cap(dst)-len(dst) < size {
		grown := make([]byte, len(dst), len(dst)+size)
		copy(grown, dst)
		dst = grown
	}

	for _, key := range keys {
		dst = binary.AppendUvarint(dst, uint64(len(key)))
		dst = append(dst, key...)
	}

	return dst
}

// DecodeKeys decodes count length-prefixed keys from the start of data.
//
// Parameters:
//   - data: payload bytes, starting at the first length prefix
//   - count: number of keys recorded in the column header
//
// Returns:
//   - []string: decoded keys in code order
//   - int: number of bytes consumed
//   - error: errs.ErrInvalidDictionaryPayload if data is truncated or a length is invalid
func DecodeKeys(data []byte, count int) ([]string, int, error) {
	if count < 0 {
		return nil, 0, fmt.Errorf("%w: negative key count %d", errs.ErrInvalidDictionaryPayload, count)
	}
	// every key takes at least its one-byte length prefix
	if count > len(data) {
		return nil, 0, fmt.Errorf("%w: %d bytes cannot hold %d keys", errs.ErrInvalidDictionaryPayload, len(data), count)
	}

	keys := make([]string, count)
	offset := 0

	for i := range keys {
		keyLen, n := binary.Uvarint(data[offset:])
		if n <= 0 {
			return nil, 0, fmt.Errorf("%w: cannot read length of key %d at offset %d", errs.ErrInvalidDictionaryPayload, i, offset)
		}
		offset += n

		if keyLen > uint64(len(data)-offset) {
			return nil, 0, fmt.Errorf("%w: key %d needs %d bytes at offset %d, have %d total",
				errs.ErrInvalidDictionaryPayload, i, keyLen, offset, len(data))
		}

		end := offset + int(keyLen) //nolint: gosec
		keys[i] = string(data[offset:end])
		offset = end
	}

	return keys, offset, nil
}

// VerifyDistinctKeys checks that no key appears twice.
// A dictionary maps each key to exactly one code, so duplicates mean a corrupt payload.
func VerifyDistinctKeys(keys []string) error {
	seen := make(map[string]int, len(keys))
	for i, key := range keys {
		if prev, ok := seen[key]; ok {
			return fmt.Errorf("%w: key %q appears at codes %d and %d", errs.ErrInvalidDictionaryPayload, key, prev, i)
		}
		seen[key] = i
	}

	return nil
}

func uvarintLen(v uint64) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}

	return n
}
