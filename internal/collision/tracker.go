// Package collision audits dictionary code assignment during the shard merge.
package collision

import (
	"fmt"

	"github.com/arloliu/dicol/errs"
)

// Tracker records every (code, key) pair produced by a merge and rejects any
// pair that would break the dictionary's one-to-one, dense code mapping.
//
// A Tracker is not safe for concurrent use; the merge step owns it.
type Tracker struct {
	keys  []string          // code -> key, dense
	codes map[string]uint32 // key -> code
}

// NewTracker creates a tracker sized for about sizeHint distinct keys.
func NewTracker(sizeHint int) *Tracker {
	if sizeHint < 0 {
		sizeHint = 0
	}

	return &Tracker{
		keys:  make([]string, 0, sizeHint),
		codes: make(map[string]uint32, sizeHint),
	}
}

// Observe records that key was resolved to code.
//
// It returns ErrInvariantViolation when code already belongs to a different
// key, when key was previously resolved to a different code, or when a new
// code skips ahead of the next dense code.
func (t *Tracker) Observe(code uint32, key string) error {
	if prev, ok := t.codes[key]; ok {
		if prev != code {
			return fmt.Errorf("%w: key %q resolved to code %d, previously %d", errs.ErrInvariantViolation, key, code, prev)
		}

		return nil
	}

	next := uint32(len(t.keys)) //nolint: gosec
	if code < next {
		return fmt.Errorf("%w: code %d assigned to %q already belongs to %q", errs.ErrInvariantViolation, code, key, t.keys[code])
	}
	if code > next {
		return fmt.Errorf("%w: code %d assigned to %q is not dense, expected %d", errs.ErrInvariantViolation, code, key, next)
	}

	t.keys = append(t.keys, key)
	t.codes[key] = code

	return nil
}

// Count returns the number of distinct keys observed.
func (t *Tracker) Count() int {
	return len(t.keys)
}
