package compress

import (
	"testing"

	"github.com/arloliu/dicol/format"
)

func BenchmarkAllCodecs_Compress(b *testing.B) {
	data := codeStream(256*1024, 8)

	for cType, codec := range getAllCodecs() {
		b.Run(cType.String(), func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			b.ReportAllocs()
			for b.Loop() {
				_, _ = codec.Compress(data)
			}
		})
	}
}

func BenchmarkAllCodecs_DecompressSize(b *testing.B) {
	data := codeStream(256*1024, 8)

	for cType, codec := range getAllCodecs() {
		compressed, err := codec.Compress(data)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(cType.String(), func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			b.ReportAllocs()
			for b.Loop() {
				_, _ = codec.DecompressSize(compressed, len(data))
			}
		})
	}
}

func BenchmarkZstdDecompress_Parallel(b *testing.B) {
	data := codeStream(64*1024, 4)
	codec, _ := GetCodec(format.CompressionZstd)
	compressed, _ := codec.Compress(data)

	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = codec.DecompressSize(compressed, len(data))
		}
	})
}
