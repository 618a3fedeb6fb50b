package counter

import "testing"

// Run:
//
//	go test -bench=. -benchmem

var sink int64

func BenchmarkIncSerial(b *testing.B) {
	for _, kind := range []Kind{KindUnsync, KindLocked, KindSequenced} {
		b.Run(kind.String(), func(b *testing.B) {
			c := New(kind)
			for i := 0; i < b.N; i++ {
				c.Inc()
			}
			sink = c.Value()
		})
	}
}

func BenchmarkIncParallel(b *testing.B) {
	for _, kind := range []Kind{KindLocked, KindSequenced} {
		b.Run(kind.String(), func(b *testing.B) {
			c := New(kind)
			b.RunParallel(func(pb *testing.PB) {
				for pb.Next() {
					c.Inc()
				}
			})
			sink = c.Value()
		})
	}
}

func BenchmarkValue(b *testing.B) {
	for _, kind := range []Kind{KindLocked, KindSequenced} {
		b.Run(kind.String(), func(b *testing.B) {
			c := New(kind)
			c.Inc()
			for i := 0; i < b.N; i++ {
				sink = c.Value()
			}
		})
	}
}
