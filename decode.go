package nbt

import (
	"bytes"
	"fmt"
	"io"
)

// maxPrealloc caps the initial capacity of length-prefixed allocations so a
// lying length cannot force a huge allocation before the stream runs dry.
const maxPrealloc = 1 << 16

// Parse decodes a single NBT document from data.
func Parse(data []byte) (*Node, error) {
	return Read(bytes.NewReader(data))
}

// Read decodes a single NBT document from r and returns the root node. The
// document must be exactly one named compound; any other root tag fails with
// ErrBadRoot. The stream is consumed strictly forward, exactly as far as the
// document extends, and is neither opened nor closed here. On error no
// partial tree is returned.
func Read(r io.Reader) (*Node, error) {
	rd := newReader(r)
	typ, err := rd.readTagType()
	if err != nil {
		return nil, fmt.Errorf("read document type: %w", err)
	}
	if typ != TagCompound {
		return nil, fmt.Errorf("%w, got %s", ErrBadRoot, typ)
	}
	name, err := rd.readString()
	if err != nil {
		return nil, fmt.Errorf("read document name: %w", err)
	}
	return makeTag(rd, TagCompound, name, true)
}

// makeTag constructs the node for one tag type and immediately decodes its
// payload from the stream, consuming precisely the bytes that type's format
// defines. It is the single dispatch point used by every container decoder;
// a new tag type means extending this switch plus its decode procedure.
func makeTag(rd *reader, typ TagType, name string, named bool) (*Node, error) {
	n := &Node{typ: typ, name: name, named: named}
	switch typ {
	case TagByte:
		v, err := rd.readInt8()
		if err != nil {
			return nil, err
		}
		n.intVal = int64(v)
	case TagShort:
		v, err := rd.readInt16()
		if err != nil {
			return nil, err
		}
		n.intVal = int64(v)
	case TagInt:
		v, err := rd.readInt32()
		if err != nil {
			return nil, err
		}
		n.intVal = int64(v)
	case TagLong:
		v, err := rd.readInt64()
		if err != nil {
			return nil, err
		}
		n.intVal = v
	case TagFloat:
		v, err := rd.readFloat32()
		if err != nil {
			return nil, err
		}
		n.floatVal = float64(v)
	case TagDouble:
		v, err := rd.readFloat64()
		if err != nil {
			return nil, err
		}
		n.floatVal = v
	case TagString:
		v, err := rd.readString()
		if err != nil {
			return nil, err
		}
		n.strVal = v
	case TagByteArray:
		v, err := decodeByteArray(rd)
		if err != nil {
			return nil, err
		}
		n.byteArr = v
	case TagIntArray:
		v, err := decodeIntArray(rd)
		if err != nil {
			return nil, err
		}
		n.intArr = v
	case TagLongArray:
		v, err := decodeLongArray(rd)
		if err != nil {
			return nil, err
		}
		n.longArr = v
	case TagList:
		if err := decodeList(rd, n); err != nil {
			return nil, err
		}
	case TagCompound:
		if err := decodeCompound(rd, n); err != nil {
			return nil, err
		}
	case TagEnd:
		return nil, ErrEndTag
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownTag, uint8(typ))
	}
	return n, nil
}

// arrayLength reads a 32-bit array length. Non-positive lengths mean an
// empty array; a conforming writer never produces them, but the format's
// reference reader treats them as zero and so does this one.
func arrayLength(rd *reader) (int, error) {
	length, err := rd.readInt32()
	if err != nil {
		return 0, fmt.Errorf("read array length: %w", err)
	}
	if length <= 0 {
		return 0, nil
	}
	return int(length), nil
}

func decodeByteArray(rd *reader) ([]int8, error) {
	remain, err := arrayLength(rd)
	if err != nil || remain == 0 {
		return nil, err
	}
	out := make([]int8, 0, min(remain, maxPrealloc))
	var chunk [4096]byte
	for remain > 0 {
		c := min(remain, len(chunk))
		if err := rd.readExact(chunk[:c]); err != nil {
			return nil, err
		}
		for _, b := range chunk[:c] {
			out = append(out, int8(b))
		}
		remain -= c
	}
	return out, nil
}

func decodeIntArray(rd *reader) ([]int32, error) {
	length, err := arrayLength(rd)
	if err != nil || length == 0 {
		return nil, err
	}
	out := make([]int32, 0, min(length, maxPrealloc))
	for i := 0; i < length; i++ {
		v, err := rd.readInt32()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func decodeLongArray(rd *reader) ([]int64, error) {
	length, err := arrayLength(rd)
	if err != nil || length == 0 {
		return nil, err
	}
	out := make([]int64, 0, min(length, maxPrealloc))
	for i := 0; i < length; i++ {
		v, err := rd.readInt64()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// decodeList reads the declared element type and length, then decodes that
// many unnamed children of the one element type. A non-positive length is
// the unsupported variant-length encoding and is rejected outright rather
// than guessed to mean an empty list. Child errors propagate unwrapped.
func decodeList(rd *reader, n *Node) error {
	elem, err := rd.readTagType()
	if err != nil {
		return fmt.Errorf("read list element type: %w", err)
	}
	length, err := rd.readInt32()
	if err != nil {
		return fmt.Errorf("read list length: %w", err)
	}
	if length <= 0 {
		return fmt.Errorf("%w (declared length %d)", ErrVariantList, length)
	}
	n.elemType = elem
	n.list = make([]*Node, 0, min(int(length), maxPrealloc))
	for i := int32(0); i < length; i++ {
		child, err := makeTag(rd, elem, "", false)
		if err != nil {
			return err
		}
		n.list = append(n.list, child)
	}
	return nil
}

// decodeCompound reads (type, name, payload) triples until the TAG_END
// terminator. The terminator is consumed, never materialized. Running out of
// stream before it is a truncation, not a valid empty compound.
func decodeCompound(rd *reader, n *Node) error {
	for {
		typ, err := rd.readTagType()
		if err != nil {
			return err
		}
		if typ == TagEnd {
			return nil
		}
		name, err := rd.readString()
		if err != nil {
			return fmt.Errorf("read name for %s: %w", typ, err)
		}
		child, err := makeTag(rd, typ, name, true)
		if err != nil {
			return err
		}
		n.insert(name, child)
	}
}
