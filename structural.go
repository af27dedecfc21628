package lensmap

import "fmt"

// Field binds a representation key to a lens from the model to the
// representation value stored under that key.
type Field[M, V any] struct {
	Key  string
	Lens Lens[M, V]
}

// StructuralAdapter encodes a model M into a keyed collection of
// representation values V, one entry per field, and decodes by merging the
// entries of a collection back into a seed model.
//
// Fields are visited in registration order in both directions, so when
// several fields would fail the reported error is always the first one.
type StructuralAdapter[M, V any] struct {
	fields []Field[M, V]
	dict   Transformer[V, map[string]V]
}

// Encode reads every field through its lens and hands the assembled
// collection to the dictionary transformer's reverse direction. A failing
// field aborts encoding before the dictionary transformer runs.
func (a *StructuralAdapter[M, V]) Encode(m M) (V, error) {
	dict := make(map[string]V, len(a.fields))
	for _, f := range a.fields {
		v, err := f.Lens.Get(m)
		if err != nil {
			var zero V
			return zero, err
		}
		dict[f.Key] = v
	}
	return a.dict.ReverseTransform(dict)
}

// Decode merges b into seed. Fields whose key is missing from the collection
// keep the seed's value; keys that no field claims are ignored. The first
// failing field aborts decoding and no partially merged model is returned.
func (a *StructuralAdapter[M, V]) Decode(seed M, b V) (M, error) {
	dict, err := a.dict.Transform(b)
	if err != nil {
		var zero M
		return zero, err
	}
	out := seed
	for _, f := range a.fields {
		v, ok := dict[f.Key]
		if !ok {
			continue
		}
		out, err = f.Lens.Set(out, v)
		if err != nil {
			var zero M
			return zero, err
		}
	}
	return out, nil
}

func (a *StructuralAdapter[M, V]) Transform(m M) (V, error) { return a.Encode(m) }
func (a *StructuralAdapter[M, V]) ReverseTransform(b V) (M, error) {
	return a.Decode(DefaultOf[M](), b)
}

// Keys returns the field keys in iteration order.
func (a *StructuralAdapter[M, V]) Keys() []string {
	keys := make([]string, len(a.fields))
	for i, f := range a.fields {
		keys[i] = f.Key
	}
	return keys
}

type objectBuilder[M, V any] struct {
	dict   Transformer[V, map[string]V]
	fields []Field[M, V]
}

// Object starts a structural adapter for model M whose representation values
// are V. dict converts between a single representation value and the keyed
// collection of field values.
func Object[M, V any](dict Transformer[V, map[string]V]) *objectBuilder[M, V] {
	return &objectBuilder[M, V]{dict: dict}
}

// Field registers a field. Registration order is iteration order.
func (b *objectBuilder[M, V]) Field(key string, l Lens[M, V]) *objectBuilder[M, V] {
	b.fields = append(b.fields, Field[M, V]{Key: key, Lens: l})
	return b
}

// Fields registers several fields at once, keeping their order.
func (b *objectBuilder[M, V]) Fields(fs ...Field[M, V]) *objectBuilder[M, V] {
	b.fields = append(b.fields, fs...)
	return b
}

// Build validates the field set and returns the adapter.
func (b *objectBuilder[M, V]) Build() (*StructuralAdapter[M, V], error) {
	var iss Issues
	if b.dict == nil {
		iss = AppendIssues(iss, Issue{Code: CodeInvalidField, Message: "dictionary transformer is nil"})
	}
	seen := make(map[string]struct{}, len(b.fields))
	for i, f := range b.fields {
		switch {
		case f.Key == "":
			iss = AppendIssues(iss, Issue{Code: CodeInvalidField, Message: fmt.Sprintf("field #%d has an empty key", i), Params: map[string]any{"index": i}})
			continue
		case !f.Lens.Valid():
			iss = AppendIssues(iss, Issue{Code: CodeInvalidField, Message: fmt.Sprintf("field %q has no lens", f.Key), Params: map[string]any{"key": f.Key}})
		}
		if _, dup := seen[f.Key]; dup {
			iss = AppendIssues(iss, Issue{Code: CodeDuplicateKey, Message: fmt.Sprintf("field %q registered twice", f.Key), Params: map[string]any{"key": f.Key}})
			continue
		}
		seen[f.Key] = struct{}{}
	}
	if len(iss) > 0 {
		return nil, iss
	}
	fields := make([]Field[M, V], len(b.fields))
	copy(fields, b.fields)
	return &StructuralAdapter[M, V]{fields: fields, dict: b.dict}, nil
}

// MustBuild is like Build but panics on error.
func (b *objectBuilder[M, V]) MustBuild() *StructuralAdapter[M, V] {
	a, err := b.Build()
	if err != nil {
		panic(err)
	}
	return a
}
