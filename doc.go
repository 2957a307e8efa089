/*
Package nbt decodes the Named Binary Tag format into an immutable tree of
typed nodes. The wire format is self-describing: every value carries a
one-byte tag type, multi-byte fields are big-endian, strings and arrays are
length-prefixed, and two container kinds (named compounds and homogeneous
lists) nest recursively.

A document is exactly one named compound. Decoding consumes the stream
strictly forward and returns either a fully built tree or an error; there is
no partial result and no recovery.

Reader example:

	root, err := nbt.Read(r)
	if err != nil {
		// handle error
	}
	level, ok := root.Get("Level")
	if ok {
		name, _ := level.Get("Name")
		_, _ = name.AsString()
	}

Byte-slice example:

	root, err := nbt.Parse(data)
	if err != nil {
		// handle error
	}

Decoded nodes implement json/v2's MarshalerTo, so a tree can be projected to
JSON for inspection:

	out, err := json.Marshal(root)

The package is decode-only: it exposes no encoder, performs no schema
validation beyond structural well-formedness, and expects the input to be
already decompressed.
*/
package nbt
