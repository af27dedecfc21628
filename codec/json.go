package codec

import (
	"bytes"
	"errors"
	"io"

	j "github.com/goccy/go-json"

	"github.com/reoring/lensmap"
)

// JSONOpt configures the JSON document transformers. The zero value produces
// compact output without HTML escaping and decodes numbers as float64.
type JSONOpt struct {
	UseNumber  bool   // Decode numbers as json.Number instead of float64.
	Indent     string // Indentation per level; empty for compact output.
	EscapeHTML bool   // Escape <, > and & in strings.
}

// JSON returns a Transformer between the generic representation and a JSON
// document, backed by goccy/go-json. Trailing data after the document is
// rejected.
func JSON(opt JSONOpt) lensmap.TransformerOf[any, []byte] {
	return lensmap.New(
		func(v any) ([]byte, error) { return encodeJSON(v, opt) },
		func(data []byte) (any, error) { return decodeJSON(data, opt) },
	)
}

// JSONObject is a dictionary transformer whose representation value is a
// JSON document held as []byte. A structural adapter built on it encodes a
// model straight into a blob instead of a map.
func JSONObject(opt JSONOpt) lensmap.TransformerOf[any, map[string]any] {
	blob := lensmap.Compose(lensmap.Invert(Value[[]byte]()), lensmap.Invert(JSON(opt)))
	return lensmap.Compose(blob, Object())
}

func encodeJSON(v any, opt JSONOpt) ([]byte, error) {
	var buf bytes.Buffer
	enc := j.NewEncoder(&buf)
	enc.SetEscapeHTML(opt.EscapeHTML)
	if opt.Indent != "" {
		enc.SetIndent("", opt.Indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, lensmap.Issues{{Code: lensmap.CodeInvalidType, Message: "value is not JSON encodable", Hint: "json", Cause: err}}
	}
	// Encoder terminates every document with a newline.
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func decodeJSON(data []byte, opt JSONOpt) (any, error) {
	dec := j.NewDecoder(bytes.NewReader(data))
	if opt.UseNumber {
		dec.UseNumber()
	}
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, parseError("json", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, lensmap.Issues{{Code: lensmap.CodeParseError, Message: "trailing data after JSON document", Hint: "json"}}
	}
	return v, nil
}

func parseError(format string, err error) lensmap.Issues {
	return lensmap.Issues{{Code: lensmap.CodeParseError, Message: err.Error(), Hint: format, Cause: err}}
}
