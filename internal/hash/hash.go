// Package hash wraps xxHash64 for payload checksums and dictionary fingerprints.
package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Sum computes the xxHash64 of data.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Fingerprint hashes an ordered key list. Each key is length-prefixed so that
// ["ab","c"] and ["a","bc"] produce different fingerprints.
func Fingerprint(keys []string) uint64 {
	d := xxhash.New()

	var lenBuf [binary.MaxVarintLen64]byte
	for _, key := range keys {
		n := binary.PutUvarint(lenBuf[:], uint64(len(key)))
		_, _ = d.Write(lenBuf[:n])
		_, _ = d.WriteString(key)
	}

	return d.Sum64()
}
