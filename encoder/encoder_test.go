package encoder

import (
	"fmt"
	"math/rand/v2"
	"runtime"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/arloliu/dicol/column"
	"github.com/arloliu/dicol/errs"
	"github.com/arloliu/dicol/internal/metrics"
)

var animals = []string{"cat", "dog", "cat", "car", "dog"}

func randomColumn(seed uint64, rows, distinct int) []string {
	rng := rand.New(rand.NewPCG(seed, 7))
	raw := make([]string, rows)
	for i := range raw {
		raw[i] = fmt.Sprintf("key%d", rng.IntN(distinct))
	}

	return raw
}

func TestEncode_Animals(t *testing.T) {
	for _, shards := range []int{1, 2, 3, 5, 8} {
		t.Run(fmt.Sprintf("shards=%d", shards), func(t *testing.T) {
			session, err := Encode(animals, shards)
			require.NoError(t, err)

			require.Equal(t, []string{"cat", "dog", "car"}, session.Dictionary().Keys())
			require.Equal(t, column.Encoded{0, 1, 0, 2, 1}, session.Column())
			require.Equal(t, 5, session.RowCount())
			require.Equal(t, shards, session.ShardCount())
			require.Equal(t, animals, session.DecodeAll())
		})
	}
}

func TestEncode_InvalidShardCount(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := Encode(animals, n)
		require.ErrorIs(t, err, errs.ErrInvalidShardCount)
	}
}

func TestEncode_Empty(t *testing.T) {
	session, err := Encode(nil, 4)
	require.NoError(t, err)
	require.Equal(t, 0, session.RowCount())
	require.Equal(t, 0, session.Dictionary().Len())
	require.Empty(t, session.DecodeAll())

	_, ok := session.Decode(0)
	require.False(t, ok)
}

func TestEncode_DeterministicAcrossShardCounts(t *testing.T) {
	raw := randomColumn(1, 10_007, 300)

	want, err := Encode(raw, 1)
	require.NoError(t, err)

	for shards := 2; shards <= 2*runtime.NumCPU()+3; shards++ {
		got, err := Encode(raw, shards)
		require.NoError(t, err)
		require.Equal(t, want.Column(), got.Column(), "shards=%d", shards)
		require.Equal(t, want.Dictionary().Keys(), got.Dictionary().Keys(), "shards=%d", shards)
		require.Equal(t, want.Fingerprint(), got.Fingerprint())
	}
}

func TestEncode_GlobalCodeConsistency(t *testing.T) {
	raw := randomColumn(2, 2_000, 40)

	session, err := Encode(raw, 7)
	require.NoError(t, err)

	codes := session.Column()
	dict := session.Dictionary()

	// codes are dense and follow global first-seen order
	next := uint32(0)
	seen := make(map[string]uint32)
	for i, key := range raw {
		code, ok := seen[key]
		if !ok {
			code = next
			seen[key] = code
			next++
		}
		require.Equal(t, code, codes[i], "row %d", i)

		decoded, ok := session.Decode(i)
		require.True(t, ok)
		require.Equal(t, key, decoded)
	}
	require.Equal(t, int(next), dict.Len())

	for i := 0; i < len(raw); i += 13 {
		for j := 0; j < len(raw); j += 17 {
			require.Equal(t, raw[i] == raw[j], codes[i] == codes[j])
		}
	}
}

func TestEncode_MoreShardsThanRows(t *testing.T) {
	session, err := Encode([]string{"x", "y", "x"}, 16)
	require.NoError(t, err)
	require.Equal(t, column.Encoded{0, 1, 0}, session.Column())
}

func TestEncode_EmptyStrings(t *testing.T) {
	raw := []string{"", "a", "", "a", ""}
	session, err := Encode(raw, 2)
	require.NoError(t, err)
	require.Equal(t, column.Encoded{0, 1, 0, 1, 0}, session.Column())
	require.Equal(t, raw, session.DecodeAll())
}

func TestEncode_LoggerAndMetrics(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	collector := metrics.NewCollector()

	_, err := Encode(animals, 2, WithLogger(zap.New(core)), WithMetrics(collector), WithLogger(nil))
	require.NoError(t, err)

	require.Equal(t, 1, logs.FilterMessage("encoding column").Len())
	summary := logs.FilterMessage("column encoded").All()
	require.Len(t, summary, 1)
	require.Equal(t, int64(3), summary[0].ContextMap()["dictionary_keys"])

	snap, err := collector.Snapshot()
	require.NoError(t, err)
	require.InDelta(t, 5.0, snap["dicol_rows_encoded_total"], 0)
	require.InDelta(t, 3.0, snap["dicol_dictionary_keys"], 0)
	require.InDelta(t, 2.0, snap["dicol_encode_shards"], 0)

	n, err := testutil.GatherAndCount(collector.Registry(), "dicol_encode_duration_seconds")
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestPartition(t *testing.T) {
	tests := []struct {
		rows, count int
		want        []shard
	}{
		{5, 1, []shard{{0, 5}}},
		{5, 2, []shard{{0, 2}, {2, 5}}},
		{10, 3, []shard{{0, 3}, {3, 6}, {6, 10}}},
		{2, 4, []shard{{0, 0}, {0, 0}, {0, 0}, {0, 2}}},
		{0, 2, []shard{{0, 0}, {0, 0}}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d/%d", tt.rows, tt.count), func(t *testing.T) {
			require.Equal(t, tt.want, partition(tt.rows, tt.count))
		})
	}
}

func TestEncodeShard(t *testing.T) {
	dst := make([]uint32, 4)
	local := encodeShard([]string{"dog", "car", "dog", "bird"}, dst)

	require.Equal(t, []uint32{0, 1, 0, 2}, dst)
	require.Equal(t, []string{"dog", "car", "bird"}, local.keys)
}

func BenchmarkEncode(b *testing.B) {
	raw := randomColumn(3, 1<<18, 5_000)

	for _, shards := range []int{1, 2, 4, runtime.NumCPU()} {
		b.Run(fmt.Sprintf("shards=%d", shards), func(b *testing.B) {
			for b.Loop() {
				if _, err := Encode(raw, shards); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
