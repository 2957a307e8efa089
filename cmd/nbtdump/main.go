// nbtdump decodes an NBT document from a file or stdin and prints it as an
// indented tag tree or as JSON. Gzip-compressed input, the common on-disk
// form, is detected by its magic bytes and decompressed transparently; the
// decoder itself only ever sees raw NBT bytes.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	json "github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/klauspost/compress/gzip"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"

	"github.com/calumari/nbt"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "nbtdump: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var asJSON bool
	var noColor bool

	flags := pflag.NewFlagSet("nbtdump", pflag.ContinueOnError)
	flags.BoolVar(&asJSON, "json", false, "print the document as JSON instead of a tag tree")
	flags.BoolVar(&noColor, "no-color", false, "disable colored output")
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: nbtdump [flags] <file>\n\nReads an NBT document (optionally gzip-compressed) and prints it.\nUse \"-\" to read from stdin.\n\n")
		flags.PrintDefaults()
	}
	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return fmt.Errorf("expected exactly one input file")
	}
	path := flags.Arg(0)

	in, err := open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	src, err := decompressed(in)
	if err != nil {
		return err
	}

	root, err := nbt.Read(src)
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	if asJSON {
		enc := jsontext.NewEncoder(os.Stdout, jsontext.WithIndent("  "))
		return json.MarshalEncode(enc, root)
	}

	if noColor || !isatty.IsTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}
	return printTree(os.Stdout, root)
}

func open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

// decompressed sniffs the gzip magic and wraps the stream accordingly.
func decompressed(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)
	magic, err := br.Peek(2)
	if err == nil && magic[0] == 0x1f && magic[1] == 0x8b {
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("open gzip stream: %w", err)
		}
		return zr, nil
	}
	// Too short to hold the magic, or not gzip: let the decoder report it.
	return br, nil
}
