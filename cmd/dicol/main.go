// Command dicol dictionary-encodes a text column, stores it and runs an exact
// and a prefix query against it.
//
// Usage:
//
//	dicol <column-file> [--threads N] [--query TEXT] [--prefix TEXT]
//	dicol inspect <column.dcl>
//	dicol estimate <column-file>
//	dicol version
//
// Every flag can also be set through a DICOL_ environment variable, for
// example DICOL_THREADS=4 or DICOL_COMPRESSION=zstd.
package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/arloliu/dicol/internal/logging"
)

var version = "0.1.0"

const envPrefix = "DICOL"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:   "dicol <column-file>",
		Short: "dicol - dictionary-encoded column engine",
		Long: `dicol reads a text column (one value per line), dictionary-encodes it in
parallel, writes the dictionary, the encoded column and a compressed column blob,
and answers an exact-match and a prefix-match query with a vectorized scan.

Example:
  dicol names.txt --threads 4 --query Alice --prefix Al`,
		Args:          exactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(v)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			return runPipeline(cmd.InOrStdin(), cmd.OutOrStdout(), logger, args[0], runConfigFrom(v))
		},
	}

	flags := root.Flags()
	flags.IntP("threads", "t", 0, fmt.Sprintf("Number of encoding threads, 1-%d (0 prompts interactively)", runtime.NumCPU()))
	flags.StringP("output-dir", "o", ".", "Directory for dictionary.txt, encoded_data.txt and column.dcl")
	flags.StringP("query", "q", "", "Exact-match literal (default: the value of a random row)")
	flags.StringP("prefix", "p", "", "Prefix to match (default: the first 3 bytes of the query)")
	flags.String("codec", "varbyte", "Code encoding of the column blob (varbyte, raw)")
	flags.String("compression", "none", "Block compression of the column blob (none, zstd, s2, lz4)")
	flags.Uint64("seed", 0, "Seed for the random query row (0 picks a random seed)")

	root.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().String("log-format", "console", "Log format (console, json)")

	_ = v.BindPFlags(flags)
	_ = v.BindPFlags(root.PersistentFlags())

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})
	root.AddCommand(newInspectCmd(v), newEstimateCmd(), newVersionCmd())

	return root
}

func newLogger(v *viper.Viper) (*zap.Logger, error) {
	cfg := logging.DefaultConfig()
	cfg.Level = v.GetString("log-level")
	cfg.Encoding = v.GetString("log-format")

	return logging.New(cfg)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "dicol v%s\n", version)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
