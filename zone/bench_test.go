package zone_test

import (
	"testing"

	"github.com/katalvlaran/lvtime/civil"
	"github.com/katalvlaran/lvtime/zone"
)

func BenchmarkOffsetAt(b *testing.B) {
	z, err := zone.Of("Europe/Berlin")
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = z.OffsetAt(int64(i) * 7919)
	}
}

func BenchmarkResolve(b *testing.B) {
	z, err := zone.Of("America/New_York")
	if err != nil {
		b.Fatal(err)
	}
	dt := civil.MustDateTime(2024, civil.November, 3, 1, 30, 0, 0)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = z.Resolve(dt)
	}
}

func BenchmarkDatabase_CachedZone(b *testing.B) {
	db := zone.NewDatabase()
	if _, err := db.Zone("Asia/Tokyo"); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = db.Zone("Asia/Tokyo")
		}
	})
}
