package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/arloliu/dicol/blob"
	"github.com/arloliu/dicol/encoder"
	"github.com/arloliu/dicol/errs"
)

func newInspectCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <blob-file>",
		Short: "Decode a column blob and print its header and statistics",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(v)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			rows, err := cmd.Flags().GetInt("rows")
			if err != nil {
				return err
			}

			return inspectBlob(cmd.OutOrStdout(), logger, args[0], rows)
		},
	}
	cmd.Flags().Int("rows", 0, "Print the first N decoded rows")

	return cmd
}

func inspectBlob(out io.Writer, logger *zap.Logger, path string, rows int) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return usageError(fmt.Errorf("%w: %w", errs.ErrIOFailure, err))
	}

	dec, err := blob.NewColumnDecoder(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	col, err := dec.Decode()
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	header := col.Header()
	logger.Debug("blob decoded", zap.String("path", path), zap.Int("bytes", len(data)))

	byteOrder := "little-endian"
	if header.Flag.IsBigEndian() {
		byteOrder = "big-endian"
	}
	if col.SameByteOrder() {
		byteOrder += " (host order)"
	}

	fmt.Fprintf(out, "File:            %s (%d bytes)\n", path, len(data))
	fmt.Fprintf(out, "Rows:            %d\n", header.RowCount)
	fmt.Fprintf(out, "Dictionary keys: %d (payload stored: %v)\n", header.DictionaryCount, col.HasDictionary())
	fmt.Fprintf(out, "Code encoding:   %s\n", col.CodeEncoding())
	fmt.Fprintf(out, "Compression:     %s\n", col.Compression())
	fmt.Fprintf(out, "Byte order:      %s\n", byteOrder)
	fmt.Fprintf(out, "Codes:           %d bytes stored, %d bytes decoded at offset %d\n",
		header.StoredSize, header.CodesSize, header.CodesOffset)
	fmt.Fprintf(out, "Checksum:        %016x\n", header.Checksum)

	if !col.HasDictionary() {
		return nil
	}

	session, err := encoder.Restore(col.Dictionary(), col.Codes())
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Fingerprint:     %016x\n", session.Fingerprint())

	for row := range min(rows, session.RowCount()) {
		value, _ := session.Decode(row)
		fmt.Fprintf(out, "%8d  %s\n", row, value)
	}

	return nil
}
