package instant_test

import (
	"testing"

	"github.com/katalvlaran/lvtime/instant"
)

func BenchmarkParse(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := instant.Parse("2021-03-28T03:30:00.123+02:00"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkString(b *testing.B) {
	at := instant.FromEpochSeconds(1616895000, 123_000_000)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = at.String()
	}
}
