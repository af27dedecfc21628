package codec

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/reoring/lensmap"
)

// YAMLOpt configures the YAML document transformer.
type YAMLOpt struct {
	Indent int // Spaces per level; 0 uses the yaml.v3 default of 4.
}

// YAML returns a Transformer between the generic representation and a YAML
// document, backed by gopkg.in/yaml.v3. Decoded mappings are normalized to
// map[string]any so the result has the same shape as decoded JSON; timestamp
// scalars keep their source text. Number types exposing Int64/Float64
// (json.Number) are written as plain YAML numbers.
func YAML(opt YAMLOpt) lensmap.TransformerOf[any, []byte] {
	return lensmap.New(
		func(v any) ([]byte, error) { return encodeYAML(v, opt) },
		func(data []byte) (any, error) {
			var doc yaml.Node
			if err := yaml.Unmarshal(data, &doc); err != nil {
				return nil, parseError("yaml", err)
			}
			return yamlNodeValue(&doc)
		},
	)
}

func encodeYAML(v any, opt YAMLOpt) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	if opt.Indent > 0 {
		enc.SetIndent(opt.Indent)
	}
	if err := enc.Encode(unboxNumbers(v)); err != nil {
		return nil, lensmap.Issues{{Code: lensmap.CodeInvalidType, Message: "value is not YAML encodable", Hint: "yaml", Cause: err}}
	}
	if err := enc.Close(); err != nil {
		return nil, lensmap.Issues{{Code: lensmap.CodeInvalidType, Message: "value is not YAML encodable", Hint: "yaml", Cause: err}}
	}
	return buf.Bytes(), nil
}

// unboxNumbers replaces JSON number values (string-backed types with Int64
// and Float64 methods) by int64, or float64 when they are not integral, so
// yaml.v3 does not quote them as strings.
func unboxNumbers(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = unboxNumbers(vv)
		}
		return out
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = unboxNumbers(t[i])
		}
		return arr
	case interface{ Int64() (int64, error) }:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, ok := t.(interface{ Float64() (float64, error) }); ok {
			if x, err := f.Float64(); err == nil {
				return x
			}
		}
		return v
	default:
		return v
	}
}

// yamlNodeValue converts a decoded YAML node into JSON-like values
// recursively. Mapping keys must be strings.
func yamlNodeValue(n *yaml.Node) (any, error) {
	switch n.Kind {
	case 0:
		// empty input
		return nil, nil
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return yamlNodeValue(n.Content[0])
	case yaml.AliasNode:
		return yamlNodeValue(n.Alias)
	case yaml.MappingNode:
		out := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			kn := n.Content[i]
			if kn.Kind != yaml.ScalarNode || kn.ShortTag() != "!!str" {
				return nil, lensmap.Issues{{Code: lensmap.CodeInvalidType, Message: fmt.Sprintf("non-string object key %q at line %d", kn.Value, kn.Line), Hint: "string"}}
			}
			v, err := yamlNodeValue(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			out[kn.Value] = v
		}
		return out, nil
	case yaml.SequenceNode:
		arr := make([]any, len(n.Content))
		for i, c := range n.Content {
			var err error
			if arr[i], err = yamlNodeValue(c); err != nil {
				return nil, err
			}
		}
		return arr, nil
	default:
		if n.ShortTag() == "!!timestamp" {
			return n.Value, nil
		}
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, parseError("yaml", err)
		}
		return v, nil
	}
}
