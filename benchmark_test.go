package nbt

import "testing"

func BenchmarkParse(b *testing.B) {
	data := document("bench", func(w *wire) {
		w.tag(TagIntArray)
		w.str("ids")
		w.i32(256)
		for i := int32(0); i < 256; i++ {
			w.i32(i)
		}
		w.tag(TagList)
		w.str("entries")
		w.tag(TagCompound)
		w.i32(32)
		for i := 0; i < 32; i++ {
			w.tag(TagString)
			w.str("name")
			w.str("entry")
			w.tag(TagDouble)
			w.str("value")
			w.f64(float64(i) * 0.5)
			w.tag(TagEnd)
		}
	})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(data); err != nil {
			b.Fatalf("parse: %v", err)
		}
	}
}
