package nbt

import (
	"fmt"

	"github.com/go-json-experiment/json/jsontext"
)

// MarshalJSONTo writes the node's payload as JSON, implementing json/v2's
// MarshalerTo so a decoded tree can be passed straight to json.Marshal.
// Compounds become objects in entry order, lists and numeric arrays become
// arrays, and scalars map to JSON numbers and strings. Node names are object
// keys; the document root's own name is not represented.
func (n *Node) MarshalJSONTo(enc *jsontext.Encoder) error {
	switch n.typ {
	case TagByte, TagShort, TagInt, TagLong:
		return enc.WriteToken(jsontext.Int(n.intVal))
	case TagFloat, TagDouble:
		return enc.WriteToken(jsontext.Float(n.floatVal))
	case TagString:
		return enc.WriteToken(jsontext.String(n.strVal))
	case TagByteArray:
		if err := enc.WriteToken(jsontext.BeginArray); err != nil {
			return err
		}
		for _, v := range n.byteArr {
			if err := enc.WriteToken(jsontext.Int(int64(v))); err != nil {
				return err
			}
		}
		return enc.WriteToken(jsontext.EndArray)
	case TagIntArray:
		if err := enc.WriteToken(jsontext.BeginArray); err != nil {
			return err
		}
		for _, v := range n.intArr {
			if err := enc.WriteToken(jsontext.Int(int64(v))); err != nil {
				return err
			}
		}
		return enc.WriteToken(jsontext.EndArray)
	case TagLongArray:
		if err := enc.WriteToken(jsontext.BeginArray); err != nil {
			return err
		}
		for _, v := range n.longArr {
			if err := enc.WriteToken(jsontext.Int(v)); err != nil {
				return err
			}
		}
		return enc.WriteToken(jsontext.EndArray)
	case TagList:
		if err := enc.WriteToken(jsontext.BeginArray); err != nil {
			return err
		}
		for _, child := range n.list {
			if err := child.MarshalJSONTo(enc); err != nil {
				return err
			}
		}
		return enc.WriteToken(jsontext.EndArray)
	case TagCompound:
		if err := enc.WriteToken(jsontext.BeginObject); err != nil {
			return err
		}
		for _, e := range n.compound {
			if err := enc.WriteToken(jsontext.String(e.Name)); err != nil {
				return err
			}
			if err := e.Node.MarshalJSONTo(enc); err != nil {
				return err
			}
		}
		return enc.WriteToken(jsontext.EndObject)
	default:
		return fmt.Errorf("cannot marshal %s node", n.typ)
	}
}
