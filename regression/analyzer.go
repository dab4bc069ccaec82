package regression

import (
	"errors"
	"fmt"

	"github.com/arloliu/dicol/blob"
	"github.com/arloliu/dicol/encoder"
	"github.com/arloliu/dicol/internal/options"
)

// sampleLadder lists the candidate blob row counts.
var sampleLadder = []int{
	10, 20, 50, 100, 200, 500,
	1_000, 2_000, 5_000, 10_000, 20_000, 50_000,
	100_000, 200_000, 500_000, 1_000_000,
}

// Analyze measures blob sizes over growing prefixes of raw and fits the size
// models to them.
//
// Parameters:
//   - raw: a representative sample column
//   - opts: blob settings of the measured blobs
//
// Returns:
//   - *Result: best-fit model, all candidate models and the measured samples
//   - error: fewer than two sample points, or an encoding failure
func Analyze(raw []string, opts ...AnalyzeOption) (*Result, error) {
	if len(raw) == 0 {
		return nil, errors.New("no rows provided")
	}

	cfg := defaultAnalyzeConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	enc, err := blob.NewColumnEncoder(
		blob.WithCodeEncoding(cfg.CodeEncoding),
		blob.WithCompression(cfg.Compression),
		blob.WithDictionary(cfg.Dictionary),
	)
	if err != nil {
		return nil, err
	}

	points := samplePoints(len(raw))
	samples := make([]Sample, 0, len(points))
	for _, rows := range points {
		sample, err := measure(enc, raw[:rows])
		if err != nil {
			return nil, fmt.Errorf("measure %d rows: %w", rows, err)
		}
		samples = append(samples, sample)
	}

	x := make([]float64, len(samples))
	y := make([]float64, len(samples))
	for i, s := range samples {
		x[i] = float64(s.Rows)
		y[i] = s.BytesPerRow()
	}

	models, err := fitModels(x, y)
	if err != nil {
		return nil, err
	}

	return &Result{BestFit: models[0], AllModels: models, Samples: samples}, nil
}

func measure(enc *blob.ColumnEncoder, rows []string) (Sample, error) {
	session, err := encoder.Encode(rows, 1)
	if err != nil {
		return Sample{}, err
	}

	data, err := enc.Encode(session.Dictionary(), session.Column())
	if err != nil {
		return Sample{}, err
	}

	return Sample{Rows: len(rows), Bytes: len(data), DictionaryKeys: session.Dictionary().Len()}, nil
}

// samplePoints picks the ladder entries up to maxRows, and maxRows itself when
// it is more than 20% beyond the last ladder entry.
func samplePoints(maxRows int) []int {
	var out []int
	for _, p := range sampleLadder {
		if p <= maxRows {
			out = append(out, p)
		}
	}

	if len(out) == 0 {
		return []int{maxRows}
	}

	if last := out[len(out)-1]; maxRows > last && float64(maxRows)/float64(last) > 1.2 {
		out = append(out, maxRows)
	}

	return out
}
