package nbt

import "fmt"

// Entry is a single named child of a compound. Entries keep the order in
// which names first appeared on the wire.
type Entry struct {
	Name string
	Node *Node
}

// Node is one decoded NBT value. It is a tagged union: exactly one payload
// field is live, selected by the tag type, and the two always agree by
// construction. Nodes are fully decoded when returned and immutable
// afterwards; a node exclusively owns its children.
type Node struct {
	typ   TagType
	name  string
	named bool

	intVal   int64   // TAG_BYTE..TAG_LONG, width-exact at the accessor
	floatVal float64 // TAG_FLOAT, TAG_DOUBLE
	strVal   string  // TAG_STRING

	byteArr []int8  // TAG_BYTE_ARRAY
	intArr  []int32 // TAG_INT_ARRAY
	longArr []int64 // TAG_LONG_ARRAY

	elemType TagType // TAG_LIST: declared element type
	list     []*Node // TAG_LIST, children are unnamed
	compound []Entry // TAG_COMPOUND
}

// Type returns the node's tag type.
func (n *Node) Type() TagType {
	return n.typ
}

// Name returns the node's name and whether it has one. Compound children and
// the document root are always named (possibly with the empty string); list
// elements never are.
func (n *Node) Name() (string, bool) {
	return n.name, n.named
}

// AsByte returns the TAG_BYTE payload.
func (n *Node) AsByte() (int8, error) {
	if err := n.expect(TagByte); err != nil {
		return 0, err
	}
	return int8(n.intVal), nil
}

// AsShort returns the TAG_SHORT payload.
func (n *Node) AsShort() (int16, error) {
	if err := n.expect(TagShort); err != nil {
		return 0, err
	}
	return int16(n.intVal), nil
}

// AsInt returns the TAG_INT payload.
func (n *Node) AsInt() (int32, error) {
	if err := n.expect(TagInt); err != nil {
		return 0, err
	}
	return int32(n.intVal), nil
}

// AsLong returns the TAG_LONG payload.
func (n *Node) AsLong() (int64, error) {
	if err := n.expect(TagLong); err != nil {
		return 0, err
	}
	return n.intVal, nil
}

// AsFloat returns the TAG_FLOAT payload.
func (n *Node) AsFloat() (float32, error) {
	if err := n.expect(TagFloat); err != nil {
		return 0, err
	}
	return float32(n.floatVal), nil
}

// AsDouble returns the TAG_DOUBLE payload.
func (n *Node) AsDouble() (float64, error) {
	if err := n.expect(TagDouble); err != nil {
		return 0, err
	}
	return n.floatVal, nil
}

// AsString returns the TAG_STRING payload.
func (n *Node) AsString() (string, error) {
	if err := n.expect(TagString); err != nil {
		return "", err
	}
	return n.strVal, nil
}

// AsByteArray returns the TAG_BYTE_ARRAY payload. The returned slice is the
// node's own storage; callers must not modify it.
func (n *Node) AsByteArray() ([]int8, error) {
	if err := n.expect(TagByteArray); err != nil {
		return nil, err
	}
	return n.byteArr, nil
}

// AsIntArray returns the TAG_INT_ARRAY payload.
func (n *Node) AsIntArray() ([]int32, error) {
	if err := n.expect(TagIntArray); err != nil {
		return nil, err
	}
	return n.intArr, nil
}

// AsLongArray returns the TAG_LONG_ARRAY payload.
func (n *Node) AsLongArray() ([]int64, error) {
	if err := n.expect(TagLongArray); err != nil {
		return nil, err
	}
	return n.longArr, nil
}

// AsList returns the TAG_LIST children in stream order.
func (n *Node) AsList() ([]*Node, error) {
	if err := n.expect(TagList); err != nil {
		return nil, err
	}
	return n.list, nil
}

// ElemType returns the declared element type of a TAG_LIST. Every child's
// type equals it.
func (n *Node) ElemType() (TagType, error) {
	if err := n.expect(TagList); err != nil {
		return TagEnd, err
	}
	return n.elemType, nil
}

// AsCompound returns the TAG_COMPOUND entries in stream order.
func (n *Node) AsCompound() ([]Entry, error) {
	if err := n.expect(TagCompound); err != nil {
		return nil, err
	}
	return n.compound, nil
}

// Get looks up a named child of a TAG_COMPOUND node. It returns false for
// absent names and for non-compound nodes.
func (n *Node) Get(name string) (*Node, bool) {
	if n == nil || n.typ != TagCompound {
		return nil, false
	}
	for i := range n.compound {
		if n.compound[i].Name == name {
			return n.compound[i].Node, true
		}
	}
	return nil, false
}

// Len returns the number of children or elements of a container or array
// node, and 0 for scalars.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	switch n.typ {
	case TagByteArray:
		return len(n.byteArr)
	case TagIntArray:
		return len(n.intArr)
	case TagLongArray:
		return len(n.longArr)
	case TagList:
		return len(n.list)
	case TagCompound:
		return len(n.compound)
	}
	return 0
}

func (n *Node) expect(t TagType) error {
	if n == nil {
		return fmt.Errorf("nbt: nil node")
	}
	if n.typ != t {
		return fmt.Errorf("nbt: expected %s, got %s", t, n.typ)
	}
	return nil
}

// insert adds a named child. A repeated name replaces the earlier child in
// place, keeping the entry's original position (last write wins).
func (n *Node) insert(name string, child *Node) {
	for i := range n.compound {
		if n.compound[i].Name == name {
			n.compound[i].Node = child
			return
		}
	}
	n.compound = append(n.compound, Entry{Name: name, Node: child})
}
