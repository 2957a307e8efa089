package nbt

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// reader is a strictly forward cursor over the raw NBT byte stream. All
// multi-byte fields are big-endian on the wire and are returned in host
// order; the byte-order transform never depends on the value itself. Short
// reads surface ErrTruncated with the stream offset.
type reader struct {
	r   io.Reader
	buf [8]byte
	pos int64
}

func newReader(r io.Reader) *reader {
	return &reader{r: r}
}

// readExact fills dst from the stream or fails with ErrTruncated.
func (rd *reader) readExact(dst []byte) error {
	n, err := io.ReadFull(rd.r, dst)
	rd.pos += int64(n)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return fmt.Errorf("%w at offset %d", ErrTruncated, rd.pos)
	}
	return err
}

func (rd *reader) readUint8() (uint8, error) {
	if err := rd.readExact(rd.buf[:1]); err != nil {
		return 0, err
	}
	return rd.buf[0], nil
}

func (rd *reader) readInt8() (int8, error) {
	v, err := rd.readUint8()
	return int8(v), err
}

func (rd *reader) readUint16() (uint16, error) {
	if err := rd.readExact(rd.buf[:2]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(rd.buf[:2]), nil
}

func (rd *reader) readInt16() (int16, error) {
	v, err := rd.readUint16()
	return int16(v), err
}

func (rd *reader) readInt32() (int32, error) {
	if err := rd.readExact(rd.buf[:4]); err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(rd.buf[:4])), nil
}

func (rd *reader) readInt64() (int64, error) {
	if err := rd.readExact(rd.buf[:8]); err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(rd.buf[:8])), nil
}

func (rd *reader) readFloat32() (float32, error) {
	if err := rd.readExact(rd.buf[:4]); err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.BigEndian.Uint32(rd.buf[:4])), nil
}

func (rd *reader) readFloat64() (float64, error) {
	if err := rd.readExact(rd.buf[:8]); err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.BigEndian.Uint64(rd.buf[:8])), nil
}

// readString reads a 16-bit length prefix and then exactly that many bytes.
// A zero length yields the empty string.
func (rd *reader) readString() (string, error) {
	length, err := rd.readUint16()
	if err != nil {
		return "", err
	}
	if length == 0 {
		return "", nil
	}
	b := make([]byte, length)
	if err := rd.readExact(b); err != nil {
		return "", err
	}
	return string(b), nil
}

// readTagType reads one byte and maps it through the tag type registry.
func (rd *reader) readTagType() (TagType, error) {
	b, err := rd.readUint8()
	if err != nil {
		return TagEnd, err
	}
	if b > tagTypeMax {
		return TagEnd, fmt.Errorf("%w: byte 0x%02x at offset %d", ErrUnknownTag, b, rd.pos)
	}
	return TagType(b), nil
}
