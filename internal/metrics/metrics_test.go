package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestCollector_ObserveEncode(t *testing.T) {
	c := NewCollector()

	c.ObserveEncode(5, 3, 2, 10*time.Millisecond)
	c.ObserveEncode(7, 4, 4, 20*time.Millisecond)

	require.InDelta(t, 12.0, testutil.ToFloat64(c.rowsEncoded), 1e-9)
	require.InDelta(t, 4.0, testutil.ToFloat64(c.dictionarySize), 1e-9)
	require.InDelta(t, 4.0, testutil.ToFloat64(c.shardCount), 1e-9)
	require.Equal(t, 1, testutil.CollectAndCount(c.encodeDuration))
}

func TestCollector_ObserveQuery(t *testing.T) {
	c := NewCollector()

	c.ObserveQuery(KindExact, 2, time.Microsecond)
	c.ObserveQuery(KindExact, 3, time.Microsecond)
	c.ObserveQuery(KindPrefix, 10, time.Microsecond)

	require.InDelta(t, 5.0, testutil.ToFloat64(c.queryMatches.WithLabelValues(KindExact)), 1e-9)
	require.InDelta(t, 10.0, testutil.ToFloat64(c.queryMatches.WithLabelValues(KindPrefix)), 1e-9)
	require.Equal(t, 2, testutil.CollectAndCount(c.queryDuration))
}

func TestCollector_Snapshot(t *testing.T) {
	c := NewCollector()
	c.ObserveEncode(5, 3, 1, time.Millisecond)
	c.ObserveQuery(KindPrefix, 2, time.Microsecond)
	c.ObserveCompressed("VarByte", 5)

	snap, err := c.Snapshot()
	require.NoError(t, err)

	require.InDelta(t, 5.0, snap["dicol_rows_encoded_total"], 1e-9)
	require.InDelta(t, 3.0, snap["dicol_dictionary_keys"], 1e-9)
	require.InDelta(t, 1.0, snap["dicol_encode_duration_seconds_count"], 1e-9)
	require.InDelta(t, 2.0, snap["dicol_query_matches_total{kind=prefix}"], 1e-9)
	require.InDelta(t, 1.0, snap["dicol_query_duration_seconds_count{kind=prefix}"], 1e-9)
	require.InDelta(t, 5.0, snap["dicol_compressed_bytes{encoding=VarByte}"], 1e-9)
}

func TestCollector_Isolated(t *testing.T) {
	a := NewCollector()
	b := NewCollector()

	a.ObserveEncode(1, 1, 1, time.Millisecond)
	require.InDelta(t, 0.0, testutil.ToFloat64(b.rowsEncoded), 1e-9)
}

func TestCollector_NilSafe(t *testing.T) {
	var c *Collector

	require.NotPanics(t, func() {
		c.ObserveEncode(1, 1, 1, time.Millisecond)
		c.ObserveQuery(KindExact, 1, time.Millisecond)
		c.ObserveCompressed("Raw", 4)
	})
	require.Nil(t, c.Registry())

	snap, err := c.Snapshot()
	require.NoError(t, err)
	require.Empty(t, snap)
}
