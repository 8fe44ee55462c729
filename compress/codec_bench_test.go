package compress

import (
	"fmt"
	"testing"
)

func BenchmarkCodec_Compress(b *testing.B) {
	data := generateTestData(16384, "text")

	for _, cType := range allCompressionTypes {
		codec, err := GetCodec(cType)
		if err != nil {
			b.Fatal(err)
		}

		b.Run(fmt.Sprintf("%s/16KB", cType), func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := codec.Compress(data); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkCodec_Decompress(b *testing.B) {
	data := generateTestData(16384, "text")

	for _, cType := range allCompressionTypes {
		codec, err := GetCodec(cType)
		if err != nil {
			b.Fatal(err)
		}
		compressed, err := codec.Compress(data)
		if err != nil {
			b.Fatal(err)
		}

		b.Run(fmt.Sprintf("%s/16KB", cType), func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := codec.Decompress(compressed); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
