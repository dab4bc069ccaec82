package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/arloliu/dicol/errs"
	"github.com/arloliu/dicol/format"
	"github.com/arloliu/dicol/ingest"
	"github.com/arloliu/dicol/regression"
)

func newEstimateCmd() *cobra.Command {
	var codec, compression string
	var rows int

	cmd := &cobra.Command{
		Use:   "estimate <column-file>",
		Short: "Fit blob size models to a sample column",
		Long: `estimate encodes growing prefixes of the column into column blobs, fits
bytes-per-row models to the measured sizes and prints them ranked by R².`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			codeEncoding, ok := format.ParseEncodingType(codec)
			if !ok {
				return fmt.Errorf("%w: unknown codec %q", errs.ErrUnsupportedEncoding, codec)
			}

			comp, ok := format.ParseCompressionType(compression)
			if !ok {
				return fmt.Errorf("%w: unknown compression %q", errs.ErrInvalidHeaderFlags, compression)
			}

			raw, err := ingest.ReadFile(args[0])
			if err != nil {
				return usageError(err)
			}

			result, err := regression.Analyze(raw,
				regression.WithCodeEncoding(codeEncoding),
				regression.WithCompression(comp),
			)
			if err != nil {
				return err
			}

			printEstimate(cmd.OutOrStdout(), result, rows)

			return nil
		},
	}

	cmd.Flags().StringVar(&codec, "codec", "varbyte", "Code encoding of the measured blobs (varbyte, raw)")
	cmd.Flags().StringVar(&compression, "compression", "none", "Block compression of the measured blobs (none, zstd, s2, lz4)")
	cmd.Flags().IntVar(&rows, "rows", 1_000_000, "Blob row count to estimate the size of")

	return cmd
}

func printEstimate(out io.Writer, result *regression.Result, rows int) {
	fmt.Fprintln(out, "Samples:")
	for _, s := range result.Samples {
		fmt.Fprintf(out, "  %9d rows  %6d keys  %10d bytes  %8.3f B/row\n",
			s.Rows, s.DictionaryKeys, s.Bytes, s.BytesPerRow())
	}

	fmt.Fprintln(out, "Models:")
	for _, m := range result.AllModels {
		fmt.Fprintf(out, "  %-12s R²=%.4f RMSE=%.4f  %s\n", m.Type, m.RSquared, m.RMSE, m.Formula)
	}

	bpr := result.BestFit.Estimator.Estimate(float64(rows))
	fmt.Fprintf(out, "Estimated blob of %d rows: %.0f bytes (%.3f B/row, %s)\n",
		rows, bpr*float64(rows), bpr, result.BestFit.Type)
}
