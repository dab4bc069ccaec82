// Package metrics records dicol's encoding and query statistics as Prometheus metrics.
//
// Every Collector owns a private registry, so several engines (and tests) can
// record in the same process without clashing on the default registry. All
// Collector methods are safe on a nil receiver, which lets library code record
// unconditionally:
//
//	var m *metrics.Collector // metrics disabled
//	m.ObserveQuery(metrics.KindExact, 3, time.Millisecond) // no-op
package metrics

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dicol"

// Query kinds used as the "kind" label.
const (
	KindExact  = "exact"
	KindPrefix = "prefix"
)

// Collector wraps the Prometheus metrics of one engine instance.
type Collector struct {
	registry        *prometheus.Registry
	encodeDuration  prometheus.Histogram
	rowsEncoded     prometheus.Counter
	dictionarySize  prometheus.Gauge
	shardCount      prometheus.Gauge
	queryDuration   *prometheus.HistogramVec
	queryMatches    *prometheus.CounterVec
	compressedBytes *prometheus.GaugeVec
}

// NewCollector creates a collector with its own registry.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,
		encodeDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "encode_duration_seconds",
			Help:      "Wall time of sharded dictionary encoding including the merge.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		rowsEncoded: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_encoded_total",
			Help:      "Rows dictionary-encoded.",
		}),
		dictionarySize: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dictionary_keys",
			Help:      "Distinct keys in the most recently built dictionary.",
		}),
		shardCount: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "encode_shards",
			Help:      "Shard count of the most recent encoding.",
		}),
		queryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "query_duration_seconds",
			Help:      "Wall time of column scans by query kind.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}, []string{"kind"}),
		queryMatches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "query_matches_total",
			Help:      "Matching rows returned by query kind.",
		}, []string{"kind"}),
		compressedBytes: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "compressed_bytes",
			Help:      "Size of the most recently stored code stream by code encoding.",
		}, []string{"encoding"}),
	}
}

// Registry returns the collector's registry, e.g. for promhttp or testutil.
func (c *Collector) Registry() *prometheus.Registry {
	if c == nil {
		return nil
	}

	return c.registry
}

// ObserveEncode records one completed encoding.
func (c *Collector) ObserveEncode(rows, dictSize, shards int, elapsed time.Duration) {
	if c == nil {
		return
	}

	c.encodeDuration.Observe(elapsed.Seconds())
	c.rowsEncoded.Add(float64(rows))
	c.dictionarySize.Set(float64(dictSize))
	c.shardCount.Set(float64(shards))
}

// ObserveQuery records one query of the given kind.
func (c *Collector) ObserveQuery(kind string, matches int, elapsed time.Duration) {
	if c == nil {
		return
	}

	c.queryDuration.WithLabelValues(kind).Observe(elapsed.Seconds())
	c.queryMatches.WithLabelValues(kind).Add(float64(matches))
}

// ObserveCompressed records the stored size of a code stream.
func (c *Collector) ObserveCompressed(encoding string, size int) {
	if c == nil {
		return
	}

	c.compressedBytes.WithLabelValues(encoding).Set(float64(size))
}

// Snapshot gathers every series as "name{label=value,...}" -> value.
// Histograms contribute their _count and _sum series.
func (c *Collector) Snapshot() (map[string]float64, error) {
	if c == nil {
		return map[string]float64{}, nil
	}

	families, err := c.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather metrics: %w", err)
	}

	out := make(map[string]float64)
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				labels = append(labels, lp.GetName()+"="+lp.GetValue())
			}
			sort.Strings(labels)

			suffix := ""
			if len(labels) > 0 {
				suffix = "{" + strings.Join(labels, ",") + "}"
			}

			switch {
			case m.GetCounter() != nil:
				out[mf.GetName()+suffix] = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				out[mf.GetName()+suffix] = m.GetGauge().GetValue()
			case m.GetHistogram() != nil:
				out[mf.GetName()+"_count"+suffix] = float64(m.GetHistogram().GetSampleCount())
				out[mf.GetName()+"_sum"+suffix] = m.GetHistogram().GetSampleSum()
			}
		}
	}

	return out, nil
}
