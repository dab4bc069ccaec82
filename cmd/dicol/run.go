package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/arloliu/dicol/blob"
	"github.com/arloliu/dicol/compress"
	"github.com/arloliu/dicol/encoder"
	"github.com/arloliu/dicol/encoding"
	"github.com/arloliu/dicol/endian"
	"github.com/arloliu/dicol/errs"
	"github.com/arloliu/dicol/format"
	"github.com/arloliu/dicol/ingest"
	"github.com/arloliu/dicol/internal/cli"
	"github.com/arloliu/dicol/internal/metrics"
	"github.com/arloliu/dicol/internal/simd"
	"github.com/arloliu/dicol/persist"
	"github.com/arloliu/dicol/query"
)

const (
	prefixLen     = 3
	maxPrintedRow = 20
)

// runConfig is the resolved configuration of one pipeline run.
type runConfig struct {
	Threads     int
	OutputDir   string
	Query       string
	Prefix      string
	Codec       string
	Compression string
	Seed        uint64
}

func runConfigFrom(v *viper.Viper) runConfig {
	return runConfig{
		Threads:     v.GetInt("threads"),
		OutputDir:   v.GetString("output-dir"),
		Query:       v.GetString("query"),
		Prefix:      v.GetString("prefix"),
		Codec:       v.GetString("codec"),
		Compression: v.GetString("compression"),
		Seed:        v.GetUint64("seed"),
	}
}

// runPipeline reads the column at path, encodes it, persists it and runs one
// exact and one prefix query, reporting to out.
func runPipeline(in io.Reader, out io.Writer, logger *zap.Logger, path string, cfg runConfig) error {
	codeEncoding, ok := format.ParseEncodingType(cfg.Codec)
	if !ok {
		return fmt.Errorf("%w: unknown codec %q", errs.ErrUnsupportedEncoding, cfg.Codec)
	}

	compression, ok := format.ParseCompressionType(cfg.Compression)
	if !ok {
		return fmt.Errorf("%w: unknown compression %q", errs.ErrInvalidHeaderFlags, cfg.Compression)
	}

	logger.Info("reading column", zap.String("path", path))
	raw, err := ingest.ReadFile(path)
	if err != nil {
		return usageError(err)
	}
	fmt.Fprintf(out, "Read %d rows from %s\n", len(raw), path)

	threads, err := resolveThreads(in, out, cfg.Threads)
	if err != nil {
		return err
	}

	collector := metrics.NewCollector()

	session, err := encoder.Encode(raw, threads, encoder.WithLogger(logger), encoder.WithMetrics(collector))
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Encoding with %d threads took %s (%d distinct keys)\n",
		threads, session.Elapsed(), session.Dictionary().Len())

	blobData, err := compressColumn(out, logger, collector, session, codeEncoding, compression)
	if err != nil {
		return err
	}

	paths, err := persist.SaveSession(cfg.OutputDir, session, blobData)
	if err != nil {
		return err
	}
	logger.Info("session saved",
		zap.String("dictionary", paths.Dictionary),
		zap.String("codes", paths.Codes),
		zap.String("blob", paths.Blob),
	)
	fmt.Fprintf(out, "Wrote %s, %s and %s\n", paths.Dictionary, paths.Codes, paths.Blob)

	literal, prefix, ok := chooseQueries(raw, cfg)
	if !ok {
		fmt.Fprintln(out, "Column is empty; no query to run.")
		return logSnapshot(logger, collector)
	}

	if err := runQueries(out, logger, collector, raw, session, literal, prefix); err != nil {
		return err
	}

	return logSnapshot(logger, collector)
}

func resolveThreads(in io.Reader, out io.Writer, threads int) (int, error) {
	maxThreads := runtime.NumCPU()
	if threads == 0 {
		return cli.PromptThreadCount(in, out, maxThreads)
	}

	if err := cli.ValidateThreadCount(threads, maxThreads); err != nil {
		return 0, err
	}

	return threads, nil
}

// compressColumn reports the variable-byte size of the column and builds the
// column blob with the configured code encoding and block compression.
func compressColumn(out io.Writer, logger *zap.Logger, collector *metrics.Collector, session *encoder.Session,
	codeEncoding format.EncodingType, compression format.CompressionType,
) ([]byte, error) {
	start := time.Now()
	compressed := encoding.Compress(session.Column(), encoding.NewVarByteCodec())
	elapsed := time.Since(start)

	collector.ObserveCompressed(compressed.Encoding().String(), compressed.Size())
	fmt.Fprintf(out, "Variable-byte compression: %d codes, %d -> %d bytes (%.1f%%) in %s\n",
		compressed.Count, compressed.Count*4, compressed.Size(), compressed.Ratio()*100, elapsed)

	if compression != format.CompressionNone {
		codec, err := encoding.CreateCodec(codeEncoding, endian.GetLittleEndianEngine())
		if err != nil {
			return nil, err
		}

		_, stats, err := compress.CompressWithStats(compression, codec.Encode(nil, session.Column()))
		if err != nil {
			return nil, err
		}
		logger.Info("block compression",
			zap.Stringer("algorithm", stats.Algorithm),
			zap.Int64("original_bytes", stats.OriginalSize),
			zap.Int64("compressed_bytes", stats.CompressedSize),
			zap.Float64("space_savings", stats.SpaceSavings()),
			zap.Duration("elapsed", time.Duration(stats.CompressionTimeNs)),
		)
	}

	enc, err := blob.NewColumnEncoder(
		blob.WithCodeEncoding(codeEncoding),
		blob.WithCompression(compression),
		blob.WithLogger(logger),
		blob.WithMetrics(collector),
	)
	if err != nil {
		return nil, err
	}

	data, err := enc.Encode(session.Dictionary(), session.Column())
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(out, "Column blob: %d bytes (%s codes, %s compression)\n", len(data), codeEncoding, compression)

	return data, nil
}

// chooseQueries picks the exact literal (flag or a random row) and the
// prefix (flag or the first bytes of the literal).
func chooseQueries(raw []string, cfg runConfig) (string, string, bool) {
	literal := cfg.Query
	if literal == "" {
		if len(raw) == 0 {
			return "", "", false
		}

		seed := cfg.Seed
		if seed == 0 {
			seed = rand.Uint64()
		}
		rng := rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
		literal = raw[rng.IntN(len(raw))]
	}

	prefix := cfg.Prefix
	if prefix == "" {
		prefix = literal[:min(prefixLen, len(literal))]
	}

	return literal, prefix, true
}

func runQueries(out io.Writer, logger *zap.Logger, collector *metrics.Collector, raw []string,
	session *encoder.Session, literal, prefix string,
) error {
	dict, col := session.Dictionary(), session.Column()

	engine, err := query.NewEngine(dict, col, query.WithLogger(logger), query.WithMetrics(collector))
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Scan kernel: %s (%s)\n", simd.ActiveKernel(), simd.Features())

	baseline := timed(func() query.Result { return query.ScanRaw(raw, literal) })
	scalar := timed(func() query.Result { return query.FindExactScalar(dict, col, literal) })
	vector := timed(func() query.Result { return engine.Exact(literal) })

	fmt.Fprintf(out, "Exact query '%s':\n", literal)
	fmt.Fprintf(out, "  baseline scan:   %d matches in %s\n", baseline.res.Len(), baseline.elapsed)
	fmt.Fprintf(out, "  dictionary scan: %d matches in %s\n", scalar.res.Len(), scalar.elapsed)
	fmt.Fprintf(out, "  vector scan:     %d matches in %s\n", vector.res.Len(), vector.elapsed)
	printRows(out, literal, vector.res)

	if baseline.res.Len() != vector.res.Len() {
		logger.Warn("exact query results differ",
			zap.Int("baseline", baseline.res.Len()),
			zap.Int("vector", vector.res.Len()),
		)
	}

	rawPrefix := timed(func() query.Result { return query.ScanRawPrefix(raw, prefix) })
	vectorPrefix := timed(func() query.Result { return engine.Prefix(prefix) })

	fmt.Fprintf(out, "Prefix query '%s':\n", prefix)
	fmt.Fprintf(out, "  baseline scan:   %d matches in %s\n", rawPrefix.res.Len(), rawPrefix.elapsed)
	fmt.Fprintf(out, "  vector scan:     %d matches in %s\n", vectorPrefix.res.Len(), vectorPrefix.elapsed)
	printRows(out, prefix, vectorPrefix.res)

	return nil
}

type timedResult struct {
	res     query.Result
	elapsed time.Duration
}

func timed(fn func() query.Result) timedResult {
	start := time.Now()
	res := fn()

	return timedResult{res: res, elapsed: time.Since(start)}
}

func printRows(out io.Writer, operand string, res query.Result) {
	if res.Empty() {
		fmt.Fprintf(out, "No matches found for '%s'.\n", operand)
		return
	}

	rows := res.Rows()
	shown := rows[:min(len(rows), maxPrintedRow)]

	var sb strings.Builder
	for i, row := range shown {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d", row)
	}
	if len(rows) > len(shown) {
		fmt.Fprintf(&sb, " ... (%d more)", len(rows)-len(shown))
	}

	fmt.Fprintf(out, "Rows matching '%s': %s\n", operand, sb.String())
}

func logSnapshot(logger *zap.Logger, collector *metrics.Collector) error {
	snapshot, err := collector.Snapshot()
	if err != nil {
		return err
	}
	logger.Info("metrics", zap.Any("snapshot", snapshot))

	return nil
}
