package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/reoring/lensmap"
	"github.com/reoring/lensmap/codec"
	"github.com/reoring/lensmap/i18n"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "convert":
		convertCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "lensmap CLI\n\nUsage:\n  lensmap convert -from json|yaml -to json|yaml [-in file] [-o file] [-indent n] [-lang en|ja]\n\nNotes:\n  - Reads stdin and writes stdout when -in/-o are omitted.")
}

func convertCmd(args []string) {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	var from, to, in, out string
	var indent int
	var lang string
	var verbose bool
	fs.StringVar(&from, "from", "json", "input format (json or yaml)")
	fs.StringVar(&to, "to", "yaml", "output format (json or yaml)")
	fs.StringVar(&in, "in", "", "input filename (default stdin)")
	fs.StringVar(&out, "o", "", "output filename (default stdout)")
	fs.IntVar(&indent, "indent", 2, "indentation width; 0 for compact JSON")
	fs.StringVar(&lang, "lang", "en", "language for error messages (en or ja)")
	fs.BoolVar(&verbose, "v", false, "enable verbose logs")
	_ = fs.Parse(args)

	logf := func(format string, a ...any) {
		if verbose {
			fmt.Fprintf(os.Stderr, format+"\n", a...)
		}
	}

	tc, err := transcoder(from, to, indent)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		os.Exit(2)
	}

	var data []byte
	if in == "" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(in)
	}
	if err != nil {
		fatalf("reading input: %v", err)
	}
	logf("read %d bytes of %s", len(data), from)

	res, err := tc.Transform(data)
	if err != nil {
		fatalf("convert %s -> %s:\n%s", from, to, i18n.Describe(err, i18n.ForLanguage(lang)))
	}
	logf("wrote %d bytes of %s", len(res), to)

	if out == "" {
		_, err = os.Stdout.Write(res)
	} else {
		if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
			fatalf("creating output dir: %v", err)
		}
		err = os.WriteFile(out, res, 0o644)
	}
	if err != nil {
		fatalf("writing output: %v", err)
	}
}

// transcoder composes the decoder of one document format with the encoder of
// another.
func transcoder(from, to string, indent int) (lensmap.Transformer[[]byte, []byte], error) {
	src, err := documentFormat(from, indent)
	if err != nil {
		return nil, err
	}
	dst, err := documentFormat(to, indent)
	if err != nil {
		return nil, err
	}
	return lensmap.Compose(lensmap.Invert(src), dst), nil
}

func documentFormat(name string, indent int) (lensmap.Transformer[any, []byte], error) {
	switch strings.ToLower(name) {
	case "json":
		return codec.JSON(codec.JSONOpt{UseNumber: true, Indent: strings.Repeat(" ", max(indent, 0))}), nil
	case "yaml", "yml":
		return codec.YAML(codec.YAMLOpt{Indent: indent}), nil
	default:
		return nil, fmt.Errorf("unknown format %q (want json or yaml)", name)
	}
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
