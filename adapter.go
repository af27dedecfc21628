package lensmap

import "reflect"

// Adapter is a Transformer whose domain side is a model M. Decode merges a
// representation into an existing model instead of building one from nothing.
//
// Transform is equivalent to Encode and ReverseTransform to Decode with the
// model's default instance as seed.
type Adapter[M, B any] interface {
	Transformer[M, B]
	Encode(m M) (B, error)
	Decode(seed M, b B) (M, error)
}

// Defaulter lets a model provide its own default instance. Models that do not
// implement it default to their zero value.
type Defaulter[M any] interface {
	Default() M
}

// DefaultOf returns the default instance of M. For a pointer model *T whose
// Default has a value receiver on T, Default runs on a new zero T; a pointer
// receiver is called with nil and must handle it.
func DefaultOf[M any]() M {
	var zero M
	d, ok := any(zero).(Defaulter[M])
	if !ok {
		return zero
	}
	if t := reflect.TypeFor[M](); t.Kind() == reflect.Pointer {
		if _, byValue := t.Elem().MethodByName("Default"); byValue {
			return reflect.New(t.Elem()).Interface().(Defaulter[M]).Default()
		}
	}
	return d.Default()
}

// Lift adapts a into a plain Transformer that decodes into seed on every
// reverse call.
func Lift[M, B any](a Adapter[M, B], seed M) TransformerOf[M, B] {
	return LiftFunc(a, func() M { return seed })
}

// LiftFunc is like Lift but calls seed for every reverse call, which keeps
// seeds holding maps or slices from being shared between decodes.
func LiftFunc[M, B any](a Adapter[M, B], seed func() M) TransformerOf[M, B] {
	return New(
		a.Encode,
		func(b B) (M, error) { return a.Decode(seed(), b) },
	)
}
