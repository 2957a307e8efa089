package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/calumari/nbt"
)

var (
	tagColor  = color.New(color.FgCyan)
	nameColor = color.New(color.FgGreen)
)

// printTree renders the decoded tree in the classic indented NBT dump shape:
//
//	TAG_COMPOUND('hello world') 1 entry
//	{
//		TAG_STRING('name'): 'Bananrama'
//	}
//
// Bytes print as hex, numeric arrays elide past a short prefix, and unnamed
// list elements show as None.
func printTree(w io.Writer, root *nbt.Node) error {
	return printNode(w, root, 0)
}

func printNode(w io.Writer, n *nbt.Node, level int) error {
	indent := strings.Repeat("\t", level)
	head := indent + tagColor.Sprint(n.Type().String()) + "(" + printedName(n) + ")"

	switch n.Type() {
	case nbt.TagByte:
		v, _ := n.AsByte()
		_, err := fmt.Fprintf(w, "%s: 0x%02x\n", head, uint8(v))
		return err
	case nbt.TagShort:
		v, _ := n.AsShort()
		_, err := fmt.Fprintf(w, "%s: %d\n", head, v)
		return err
	case nbt.TagInt:
		v, _ := n.AsInt()
		_, err := fmt.Fprintf(w, "%s: %d\n", head, v)
		return err
	case nbt.TagLong:
		v, _ := n.AsLong()
		_, err := fmt.Fprintf(w, "%s: %d\n", head, v)
		return err
	case nbt.TagFloat:
		v, _ := n.AsFloat()
		_, err := fmt.Fprintf(w, "%s: %g\n", head, v)
		return err
	case nbt.TagDouble:
		v, _ := n.AsDouble()
		_, err := fmt.Fprintf(w, "%s: %g\n", head, v)
		return err
	case nbt.TagString:
		v, _ := n.AsString()
		_, err := fmt.Fprintf(w, "%s: '%s'\n", head, v)
		return err
	case nbt.TagByteArray:
		v, _ := n.AsByteArray()
		_, err := fmt.Fprintf(w, "%s: %s\n", head, formatInts(v))
		return err
	case nbt.TagIntArray:
		v, _ := n.AsIntArray()
		_, err := fmt.Fprintf(w, "%s: %s\n", head, formatInts(v))
		return err
	case nbt.TagLongArray:
		v, _ := n.AsLongArray()
		_, err := fmt.Fprintf(w, "%s: %s\n", head, formatInts(v))
		return err
	case nbt.TagList:
		children, _ := n.AsList()
		return printBlock(w, head, indent, level, children)
	case nbt.TagCompound:
		entries, _ := n.AsCompound()
		children := make([]*nbt.Node, len(entries))
		for i := range entries {
			children[i] = entries[i].Node
		}
		return printBlock(w, head, indent, level, children)
	default:
		_, err := fmt.Fprintf(w, "%s\n", head)
		return err
	}
}

func printBlock(w io.Writer, head, indent string, level int, children []*nbt.Node) error {
	if _, err := fmt.Fprintf(w, "%s %s\n%s{\n", head, entryCount(len(children)), indent); err != nil {
		return err
	}
	for _, c := range children {
		if err := printNode(w, c, level+1); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%s}\n", indent)
	return err
}

func printedName(n *nbt.Node) string {
	if name, ok := n.Name(); ok {
		return nameColor.Sprintf("'%s'", name)
	}
	return "None"
}

func entryCount(sz int) string {
	if sz == 1 {
		return "1 entry"
	}
	return fmt.Sprintf("%d entries", sz)
}

// formatInts renders a numeric array with at most printLimit leading
// elements spelled out.
func formatInts[T int8 | int32 | int64](vals []T) string {
	const printLimit = 8
	parts := make([]string, 0, min(len(vals), printLimit+1))
	for i, v := range vals {
		if i == printLimit {
			parts = append(parts, fmt.Sprintf("... %d more", len(vals)-printLimit))
			break
		}
		parts = append(parts, fmt.Sprintf("%d", v))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
