package nbt

import (
	"bytes"
	"encoding/binary"
	"math"
)

// wire assembles big-endian NBT fixture bytes by hand. The package exposes
// no encoder, so tests build their own images field by field.
type wire struct {
	bytes.Buffer
}

func (w *wire) tag(t TagType) { w.WriteByte(byte(t)) }
func (w *wire) i8(v int8)     { w.WriteByte(byte(v)) }
func (w *wire) u16(v uint16)  { w.Write(binary.BigEndian.AppendUint16(nil, v)) }
func (w *wire) i16(v int16)   { w.u16(uint16(v)) }
func (w *wire) i32(v int32)   { w.Write(binary.BigEndian.AppendUint32(nil, uint32(v))) }
func (w *wire) i64(v int64)   { w.Write(binary.BigEndian.AppendUint64(nil, uint64(v))) }
func (w *wire) f32(v float32) { w.Write(binary.BigEndian.AppendUint32(nil, math.Float32bits(v))) }
func (w *wire) f64(v float64) { w.Write(binary.BigEndian.AppendUint64(nil, math.Float64bits(v))) }
func (w *wire) str(s string)  { w.u16(uint16(len(s))); w.WriteString(s) }

// document frames body as a named compound document and appends the TAG_END
// terminator.
func document(name string, body func(w *wire)) []byte {
	var w wire
	w.tag(TagCompound)
	w.str(name)
	body(&w)
	w.tag(TagEnd)
	return w.Bytes()
}
