package column

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDictionary(t *testing.T) {
	d, ok := NewDictionary([]string{"cat", "dog", "car"})
	require.True(t, ok)
	require.Equal(t, 3, d.Len())

	code, ok := d.Code("dog")
	require.True(t, ok)
	require.Equal(t, uint32(1), code)

	key, ok := d.Key(2)
	require.True(t, ok)
	require.Equal(t, "car", key)

	_, ok = d.Key(3)
	require.False(t, ok)

	_, ok = d.Code("bird")
	require.False(t, ok)
}

func TestNewDictionary_Duplicate(t *testing.T) {
	_, ok := NewDictionary([]string{"cat", "dog", "cat"})
	require.False(t, ok)
}

func TestDictionary_KeysIsCopy(t *testing.T) {
	src := []string{"a", "b"}
	d, ok := NewDictionary(src)
	require.True(t, ok)

	src[0] = "mutated"
	keys := d.Keys()
	keys[1] = "mutated"

	require.Equal(t, []string{"a", "b"}, d.Keys())
}

func TestDictionary_All(t *testing.T) {
	d, _ := NewDictionary([]string{"cat", "dog", "car"})

	var keys []string
	var codes []uint32
	for key, code := range d.All() {
		keys = append(keys, key)
		codes = append(codes, code)
	}
	require.Equal(t, []string{"cat", "dog", "car"}, keys)
	require.Equal(t, []uint32{0, 1, 2}, codes)

	// early break
	n := 0
	for range d.All() {
		n++
		break
	}
	require.Equal(t, 1, n)
}

func TestDictionary_MatchPrefix(t *testing.T) {
	d, _ := NewDictionary([]string{"cat", "dog", "car", "cart", ""})

	tests := []struct {
		prefix string
		want   []uint32
	}{
		{"ca", []uint32{0, 2, 3}},
		{"car", []uint32{2, 3}},
		{"d", []uint32{1}},
		{"", []uint32{0, 1, 2, 3, 4}},
		{"z", nil},
		{"Ca", nil}, // byte-wise, case sensitive
	}
	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			require.Equal(t, tt.want, d.MatchPrefix(tt.prefix))
		})
	}
}

func TestDictionary_Decode(t *testing.T) {
	d, _ := NewDictionary([]string{"cat", "dog", "car"})

	rows, ok := d.Decode(Encoded{0, 1, 0, 2, 1})
	require.True(t, ok)
	require.Equal(t, []string{"cat", "dog", "cat", "car", "dog"}, rows)

	_, ok = d.Decode(Encoded{0, 7})
	require.False(t, ok)
}

func TestDictionaryBuilder(t *testing.T) {
	b := NewDictionaryBuilder(0)

	for i, key := range []string{"cat", "dog", "cat", "car", "dog"} {
		code, added := b.Add(key)
		switch i {
		case 0, 1, 3:
			require.True(t, added, key)
		default:
			require.False(t, added, key)
		}
		_ = code
	}
	require.Equal(t, 3, b.Len())

	d := b.Freeze()
	require.Equal(t, []string{"cat", "dog", "car"}, d.Keys())
	require.Panics(t, func() { b.Add("bird") })
}

func TestDictionaryBuilder_ConcurrentAdd(t *testing.T) {
	b := NewDictionaryBuilder(16)
	keys := []string{"a", "b", "c", "d", "e", "f", "g", "h"}

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, k := range keys {
				b.Add(k)
			}
		}()
	}
	wg.Wait()

	d := b.Freeze()
	require.Equal(t, len(keys), d.Len())
	for _, k := range keys {
		code, ok := d.Code(k)
		require.True(t, ok)
		back, _ := d.Key(code)
		require.Equal(t, k, back)
	}
}

func TestEncoded(t *testing.T) {
	col := Encoded{3, 1, 4, 1, 5}
	require.Equal(t, 5, col.Len())

	v, ok := col.At(2)
	require.True(t, ok)
	require.Equal(t, uint32(4), v)

	_, ok = col.At(-1)
	require.False(t, ok)
	_, ok = col.At(5)
	require.False(t, ok)

	maxCode, ok := col.MaxCode()
	require.True(t, ok)
	require.Equal(t, uint32(5), maxCode)

	_, ok = Encoded(nil).MaxCode()
	require.False(t, ok)
}
