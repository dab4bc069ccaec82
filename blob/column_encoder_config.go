package blob

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/arloliu/dicol/compress"
	"github.com/arloliu/dicol/encoding"
	"github.com/arloliu/dicol/endian"
	"github.com/arloliu/dicol/format"
	"github.com/arloliu/dicol/internal/metrics"
	"github.com/arloliu/dicol/internal/options"
	"github.com/arloliu/dicol/section"
)

// ColumnEncoderConfig holds the header template and codecs of a ColumnEncoder.
type ColumnEncoderConfig struct {
	flag         section.ColumnFlag
	engine       endian.EndianEngine
	codeCodec    encoding.Codec
	payloadCodec compress.Codec
	logger       *zap.Logger
	metrics      *metrics.Collector
}

// NewColumnEncoderConfig creates the default configuration: little-endian,
// variable-byte codes, no block compression, dictionary payload included.
func NewColumnEncoderConfig() *ColumnEncoderConfig {
	flag := section.NewColumnFlag()

	return &ColumnEncoderConfig{
		flag:   flag,
		engine: endian.GetLittleEndianEngine(),
		logger: zap.NewNop(),
	}
}

// setCodeEncoding sets the code encoding type.
func (c *ColumnEncoderConfig) setCodeEncoding(enc format.EncodingType) error {
	switch enc {
	case format.TypeRaw, format.TypeVarByte:
		c.flag.SetCodeEncoding(enc)
		return nil
	default:
		return fmt.Errorf("invalid code encoding: %v", enc)
	}
}

// setPayloadCompression sets the block compression of the code stream.
func (c *ColumnEncoderConfig) setPayloadCompression(comp format.CompressionType) error {
	switch comp {
	case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
		c.flag.SetPayloadCompression(comp)
		return nil
	default:
		return fmt.Errorf("invalid payload compression: %v", comp)
	}
}

// setEndianess sets the endianness option.
func (c *ColumnEncoderConfig) setEndianess(endiness endianness) {
	if endiness == bigEndianOpt {
		c.flag.WithBigEndian()
	} else {
		c.flag.WithLittleEndian()
	}

	c.engine = endian.ForHeader(c.flag.IsBigEndian())
}

// setCodecs creates the codecs selected by the flag. Called once all options are applied.
func (c *ColumnEncoderConfig) setCodecs() error {
	var err error

	c.codeCodec, err = encoding.CreateCodec(c.flag.GetCodeEncoding(), c.engine)
	if err != nil {
		return fmt.Errorf("failed to create code codec: %w", err)
	}

	c.payloadCodec, err = compress.CreateCodec(c.flag.GetPayloadCompression(), "payload")
	if err != nil {
		return fmt.Errorf("failed to create payload codec: %w", err)
	}

	return nil
}

// endianness represents the byte order configuration option.
type endianness uint8

const (
	littleEndianOpt endianness = iota
	bigEndianOpt
)

// ColumnEncoderOption is a functional option for configuring ColumnEncoder.
type ColumnEncoderOption = options.Option[*ColumnEncoderConfig]

// WithCodeEncoding configures how codes are laid out.
// Valid values are format.TypeVarByte (default) and format.TypeRaw.
func WithCodeEncoding(enc format.EncodingType) ColumnEncoderOption {
	return options.New(func(cfg *ColumnEncoderConfig) error {
		return cfg.setCodeEncoding(enc)
	})
}

// WithCompression configures block compression of the code stream.
// Default is format.CompressionNone.
func WithCompression(comp format.CompressionType) ColumnEncoderOption {
	return options.New(func(cfg *ColumnEncoderConfig) error {
		return cfg.setPayloadCompression(comp)
	})
}

// WithLittleEndian writes the header and fixed-width codes little-endian (default).
func WithLittleEndian() ColumnEncoderOption {
	return options.NoError(func(c *ColumnEncoderConfig) {
		c.setEndianess(littleEndianOpt)
	})
}

// WithBigEndian writes the header and fixed-width codes big-endian.
func WithBigEndian() ColumnEncoderOption {
	return options.NoError(func(c *ColumnEncoderConfig) {
		c.setEndianess(bigEndianOpt)
	})
}

// WithDictionary controls whether the dictionary keys are stored in the blob.
// Without them the blob holds codes only. Default is true.
func WithDictionary(enabled bool) ColumnEncoderOption {
	return options.NoError(func(c *ColumnEncoderConfig) {
		c.flag.SetHasDictionary(enabled)
	})
}

// WithLogger sets the logger for encode summaries.
func WithLogger(logger *zap.Logger) ColumnEncoderOption {
	return options.NoError(func(c *ColumnEncoderConfig) {
		if logger != nil {
			c.logger = logger
		}
	})
}

// WithMetrics records stored sizes into collector.
func WithMetrics(collector *metrics.Collector) ColumnEncoderOption {
	return options.NoError(func(c *ColumnEncoderConfig) {
		c.metrics = collector
	})
}
