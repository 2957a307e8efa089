package nbt

// TagType identifies which of the 13 NBT tag kinds an encoded value is. The
// numeric values are the wire bytes and are frozen by the format.
type TagType uint8

const (
	TagEnd TagType = iota
	TagByte
	TagShort
	TagInt
	TagLong
	TagFloat
	TagDouble
	TagByteArray
	TagString
	TagList
	TagCompound
	TagIntArray
	TagLongArray
)

// tagTypeMax is the highest defined tag byte.
const tagTypeMax = uint8(TagLongArray)

// String returns the canonical name of the tag type.
func (t TagType) String() string {
	switch t {
	case TagEnd:
		return "TAG_END"
	case TagByte:
		return "TAG_BYTE"
	case TagShort:
		return "TAG_SHORT"
	case TagInt:
		return "TAG_INT"
	case TagLong:
		return "TAG_LONG"
	case TagFloat:
		return "TAG_FLOAT"
	case TagDouble:
		return "TAG_DOUBLE"
	case TagByteArray:
		return "TAG_BYTE_ARRAY"
	case TagString:
		return "TAG_STRING"
	case TagList:
		return "TAG_LIST"
	case TagCompound:
		return "TAG_COMPOUND"
	case TagIntArray:
		return "TAG_INT_ARRAY"
	case TagLongArray:
		return "TAG_LONG_ARRAY"
	default:
		return "TAG_UNKNOWN"
	}
}

// IsScalar reports whether the tag type carries a single value payload
// (numbers and strings).
func (t TagType) IsScalar() bool {
	switch t {
	case TagByte, TagShort, TagInt, TagLong, TagFloat, TagDouble, TagString:
		return true
	}
	return false
}

// IsArray reports whether the tag type carries a length-prefixed numeric
// array payload.
func (t TagType) IsArray() bool {
	switch t {
	case TagByteArray, TagIntArray, TagLongArray:
		return true
	}
	return false
}

// IsContainer reports whether the tag type holds child nodes.
func (t TagType) IsContainer() bool {
	return t == TagList || t == TagCompound
}
