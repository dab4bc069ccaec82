package column

import "sync"

// DictionaryBuilder assigns dense codes to keys in the order they are first added.
//
// The builder is guarded by a mutex so a merge may add keys from several call
// sites; Freeze ends the build and hands ownership of the keys to a Dictionary.
type DictionaryBuilder struct {
	mu     sync.Mutex
	keys   []string
	index  map[string]uint32
	frozen bool
}

// NewDictionaryBuilder creates a builder sized for about sizeHint distinct keys.
func NewDictionaryBuilder(sizeHint int) *DictionaryBuilder {
	if sizeHint < 0 {
		sizeHint = 0
	}

	return &DictionaryBuilder{
		keys:  make([]string, 0, sizeHint),
		index: make(map[string]uint32, sizeHint),
	}
}

// Add returns the code of key, assigning the next free code if key is new.
// The second return value reports whether key was newly added.
//
// Add panics if called after Freeze.
func (b *DictionaryBuilder) Add(key string) (uint32, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.frozen {
		panic("column: DictionaryBuilder.Add called after Freeze")
	}

	if code, ok := b.index[key]; ok {
		return code, false
	}

	code := uint32(len(b.keys)) //nolint: gosec
	b.keys = append(b.keys, key)
	b.index[key] = code

	return code, true
}

// Len returns the number of distinct keys added so far.
func (b *DictionaryBuilder) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.keys)
}

// Freeze returns the finished Dictionary. The builder must not be used afterwards.
func (b *DictionaryBuilder) Freeze() *Dictionary {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.frozen = true
	d := &Dictionary{keys: b.keys, index: b.index}
	b.keys, b.index = nil, nil

	return d
}
