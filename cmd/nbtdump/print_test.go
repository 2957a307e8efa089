package main

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calumari/nbt"
)

// fixture is a hand-assembled document:
//
//	TAG_COMPOUND("hello world") { TAG_STRING("name") = "Bananrama" }
func fixture(t *testing.T) *nbt.Node {
	t.Helper()
	var buf bytes.Buffer
	str := func(s string) {
		buf.Write(binary.BigEndian.AppendUint16(nil, uint16(len(s))))
		buf.WriteString(s)
	}
	buf.WriteByte(byte(nbt.TagCompound))
	str("hello world")
	buf.WriteByte(byte(nbt.TagString))
	str("name")
	str("Bananrama")
	buf.WriteByte(byte(nbt.TagEnd))

	root, err := nbt.Parse(buf.Bytes())
	require.NoError(t, err)
	return root
}

func TestPrintTree(t *testing.T) {
	color.NoColor = true

	t.Run("renders the classic indented dump", func(t *testing.T) {
		var out strings.Builder
		require.NoError(t, printTree(&out, fixture(t)))
		assert.Equal(t,
			"TAG_COMPOUND('hello world') 1 entry\n"+
				"{\n"+
				"\tTAG_STRING('name'): 'Bananrama'\n"+
				"}\n",
			out.String())
	})
}

func TestFormatInts(t *testing.T) {
	t.Run("short arrays print in full", func(t *testing.T) {
		assert.Equal(t, "[1, -2, 3]", formatInts([]int8{1, -2, 3}))
	})

	t.Run("long arrays elide past the prefix", func(t *testing.T) {
		vals := make([]int32, 12)
		for i := range vals {
			vals[i] = int32(i)
		}
		assert.Equal(t, "[0, 1, 2, 3, 4, 5, 6, 7, ... 4 more]", formatInts(vals))
	})

	t.Run("empty array prints as empty brackets", func(t *testing.T) {
		assert.Equal(t, "[]", formatInts([]int64(nil)))
	})
}
