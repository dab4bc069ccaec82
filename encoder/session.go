package encoder

import (
	"fmt"
	"time"

	"github.com/arloliu/dicol/column"
	"github.com/arloliu/dicol/errs"
	"github.com/arloliu/dicol/internal/hash"
)

// Session owns the result of one encoding run: the frozen dictionary and the
// encoded column. Both are immutable and are handed to the query engines by
// reference, so a Session is safe for concurrent readers.
type Session struct {
	dict       *column.Dictionary
	codes      column.Encoded
	shardCount int
	elapsed    time.Duration
}

// Restore rebuilds a Session from a dictionary and encoded column, typically
// read back from a column blob.
//
// It returns errs.ErrInvariantViolation when dict is nil or a code has no
// dictionary entry.
func Restore(dict *column.Dictionary, codes column.Encoded) (*Session, error) {
	if dict == nil {
		return nil, fmt.Errorf("%w: no dictionary", errs.ErrInvariantViolation)
	}

	for row, code := range codes {
		if int64(code) >= int64(dict.Len()) {
			return nil, fmt.Errorf("%w: row %d holds code %d, dictionary has %d keys",
				errs.ErrInvariantViolation, row, code, dict.Len())
		}
	}

	return &Session{dict: dict, codes: codes}, nil
}

// Dictionary returns the global dictionary.
func (s *Session) Dictionary() *column.Dictionary {
	return s.dict
}

// Column returns the encoded column. Callers must not modify it.
func (s *Session) Column() column.Encoded {
	return s.codes
}

// RowCount returns the number of rows.
func (s *Session) RowCount() int {
	return len(s.codes)
}

// Decode returns the raw value of row.
func (s *Session) Decode(row int) (string, bool) {
	code, ok := s.codes.At(row)
	if !ok {
		return "", false
	}

	return s.dict.Key(code)
}

// DecodeAll reconstructs the raw column.
func (s *Session) DecodeAll() []string {
	rows, _ := s.dict.Decode(s.codes)
	return rows
}

// ShardCount returns the number of shards used to encode the column, or 0 for
// a restored session.
func (s *Session) ShardCount() int {
	return s.shardCount
}

// Elapsed returns the wall time of Encode including the merge.
func (s *Session) Elapsed() time.Duration {
	return s.elapsed
}

// Fingerprint hashes the dictionary keys in code order. Two sessions with
// equal fingerprints assign the same codes to the same keys.
func (s *Session) Fingerprint() uint64 {
	return hash.Fingerprint(s.dict.Keys())
}
