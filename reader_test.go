package nbt

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_Scalars(t *testing.T) {
	t.Run("values decode and re-encode to the original bytes", func(t *testing.T) {
		var w wire
		w.i8(-5)
		w.i16(-1234)
		w.i32(0x01020304)
		w.i64(-0x0102030405060708)
		w.f32(1.5)
		w.f64(-2.25)
		original := w.Bytes()

		rd := newReader(bytes.NewReader(original))
		b, err := rd.readInt8()
		require.NoError(t, err)
		s, err := rd.readInt16()
		require.NoError(t, err)
		i, err := rd.readInt32()
		require.NoError(t, err)
		l, err := rd.readInt64()
		require.NoError(t, err)
		f, err := rd.readFloat32()
		require.NoError(t, err)
		d, err := rd.readFloat64()
		require.NoError(t, err)

		assert.Equal(t, int8(-5), b)
		assert.Equal(t, int16(-1234), s)
		assert.Equal(t, int32(0x01020304), i)
		assert.Equal(t, int64(-0x0102030405060708), l)
		assert.Equal(t, float32(1.5), f)
		assert.Equal(t, float64(-2.25), d)

		var again wire
		again.i8(b)
		again.i16(s)
		again.i32(i)
		again.i64(l)
		again.f32(f)
		again.f64(d)
		assert.Equal(t, original, again.Bytes())
	})

	t.Run("short stream fails with truncated input", func(t *testing.T) {
		for _, tc := range []struct {
			name string
			n    int
			read func(rd *reader) error
		}{
			{"int16 needs 2 bytes", 1, func(rd *reader) error { _, err := rd.readInt16(); return err }},
			{"int32 needs 4 bytes", 3, func(rd *reader) error { _, err := rd.readInt32(); return err }},
			{"int64 needs 8 bytes", 7, func(rd *reader) error { _, err := rd.readInt64(); return err }},
			{"float32 needs 4 bytes", 2, func(rd *reader) error { _, err := rd.readFloat32(); return err }},
			{"float64 needs 8 bytes", 5, func(rd *reader) error { _, err := rd.readFloat64(); return err }},
			{"int8 needs 1 byte", 0, func(rd *reader) error { _, err := rd.readInt8(); return err }},
		} {
			t.Run(tc.name, func(t *testing.T) {
				rd := newReader(bytes.NewReader(make([]byte, tc.n)))
				err := tc.read(rd)
				require.ErrorIs(t, err, ErrTruncated)
			})
		}
	})
}

func TestReader_ReadString(t *testing.T) {
	t.Run("length prefixed body decodes", func(t *testing.T) {
		rd := newReader(bytes.NewReader([]byte{0x00, 0x04, 'A', 'B', 'C', 'D'}))
		s, err := rd.readString()
		require.NoError(t, err)
		assert.Equal(t, "ABCD", s)
	})

	t.Run("zero length yields empty string", func(t *testing.T) {
		rd := newReader(bytes.NewReader([]byte{0x00, 0x00}))
		s, err := rd.readString()
		require.NoError(t, err)
		assert.Equal(t, "", s)
	})

	t.Run("body shorter than declared length is truncated", func(t *testing.T) {
		rd := newReader(bytes.NewReader([]byte{0x00, 0x05, 'A', 'B'}))
		_, err := rd.readString()
		require.ErrorIs(t, err, ErrTruncated)
	})

	t.Run("missing length prefix is truncated", func(t *testing.T) {
		rd := newReader(bytes.NewReader([]byte{0x00}))
		_, err := rd.readString()
		require.ErrorIs(t, err, ErrTruncated)
	})
}

func TestReader_ReadTagType(t *testing.T) {
	t.Run("every defined byte maps to its tag type", func(t *testing.T) {
		for b := uint8(0); b <= tagTypeMax; b++ {
			rd := newReader(bytes.NewReader([]byte{b}))
			tt, err := rd.readTagType()
			require.NoError(t, err)
			assert.Equal(t, TagType(b), tt)
		}
	})

	t.Run("undefined byte is rejected", func(t *testing.T) {
		rd := newReader(bytes.NewReader([]byte{0x0d}))
		_, err := rd.readTagType()
		require.ErrorIs(t, err, ErrUnknownTag)
	})

	t.Run("empty stream is truncated", func(t *testing.T) {
		rd := newReader(bytes.NewReader(nil))
		_, err := rd.readTagType()
		require.ErrorIs(t, err, ErrTruncated)
	})
}
