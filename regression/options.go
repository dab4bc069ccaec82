package regression

import (
	"github.com/arloliu/dicol/format"
	"github.com/arloliu/dicol/internal/options"
)

// AnalyzeConfig holds the blob settings the sample column is re-encoded with.
type AnalyzeConfig struct {
	CodeEncoding format.EncodingType
	Compression  format.CompressionType
	// Dictionary includes the dictionary payload in every measured blob.
	Dictionary bool
}

func defaultAnalyzeConfig() AnalyzeConfig {
	return AnalyzeConfig{
		CodeEncoding: format.TypeVarByte,
		Compression:  format.CompressionNone,
		Dictionary:   true,
	}
}

// AnalyzeOption is a functional option for AnalyzeConfig.
type AnalyzeOption = options.Option[*AnalyzeConfig]

// WithCodeEncoding sets the code encoding of the measured blobs.
func WithCodeEncoding(enc format.EncodingType) AnalyzeOption {
	return options.NoError(func(cfg *AnalyzeConfig) {
		cfg.CodeEncoding = enc
	})
}

// WithCompression sets the block compression of the measured blobs.
func WithCompression(comp format.CompressionType) AnalyzeOption {
	return options.NoError(func(cfg *AnalyzeConfig) {
		cfg.Compression = comp
	})
}

// WithDictionary controls whether measured blobs carry the dictionary payload.
func WithDictionary(enabled bool) AnalyzeOption {
	return options.NoError(func(cfg *AnalyzeConfig) {
		cfg.Dictionary = enabled
	})
}
