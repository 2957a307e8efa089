package nbt

import "errors"

var (
	// ErrTruncated indicates the stream ended before a field's declared
	// length was satisfied.
	ErrTruncated = errors.New("truncated input")

	// ErrUnknownTag indicates a byte that does not map to any defined tag type.
	ErrUnknownTag = errors.New("unknown tag type")

	// ErrEndTag indicates an attempt to construct a standalone TAG_END node.
	// TAG_END is a compound terminator, never a value.
	ErrEndTag = errors.New("cannot construct TAG_END node")

	// ErrVariantList indicates a list with a non-positive declared length.
	// That encoding (variant-length lists) is not supported and is rejected
	// rather than guessed at.
	ErrVariantList = errors.New("variant length list not supported")

	// ErrBadRoot indicates a document whose root tag is not a compound.
	ErrBadRoot = errors.New("document root must be a named compound")
)
