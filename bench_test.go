package crcengine

import (
	"fmt"
	"testing"
)

func BenchmarkKernels(b *testing.B) {
	sizes := []int{1024, 64 * 1024, 1 << 20}
	profiles := []struct {
		name    string
		profile Profile
	}{
		{"CRC32", ProfileCRC32()},
		{"CRC64", ProfileCRC64()},
		{"CRC16-CCITT", ProfileCRC16CCITT()},
	}

	for _, tp := range profiles {
		for _, k := range allKernels {
			for _, size := range sizes {
				data := make([]byte, size)
				for i := range data {
					data[i] = byte(i)
				}

				b.Run(fmt.Sprintf("%s/%s/%d", tp.name, k, size), func(b *testing.B) {
					e, err := NewHash(tp.profile)
					if err != nil {
						b.Fatal(err)
					}
					b.SetBytes(int64(size))
					b.ResetTimer()

					for i := 0; i < b.N; i++ {
						e.ConsumeWith(data, k)
					}

					b.ReportMetric(float64(size*b.N)/b.Elapsed().Seconds()/1e9, "GB/s")
				})
			}
		}
	}
}

func BenchmarkTableBuild(b *testing.B) {
	p := ProfileCRC64()
	for i := 0; i < b.N; i++ {
		_ = makeTable[uint64](p)
	}
}

func BenchmarkTune(b *testing.B) {
	e := NewCRC32()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		e.Tune(DefaultTuneBufferSize, 4)
	}
}
