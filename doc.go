// Package lensmap provides:
//
// - Bidirectional Transformers with explicit errors, and their combinators (Compose/Invert/Optional/Nullable/Slice)
// - Lenses that focus on one field of a model, mapped into a representation with Through
// - Adapters that encode a model and decode a representation into an existing seed model
// - Structural adapters built from an ordered key -> lens field list (Object().Field().Build())
// - Fix/Lazy for adapters whose definition refers to themselves (recursive models)
//
// Design policy:
// - Every operation is a pure, synchronous function of its inputs; values built here are immutable and may be shared.
// - Errors raised by caller-supplied transformers and lenses are returned unchanged; the first error wins.
// - Keep the core free of wire formats; concrete value and document codecs live under codec/, the CLI under cmd/lensmap.
//
// Typical usage:
//
//	person := lensmap.Object[Person, any](codec.Object()).
//	    Field("name", lensmap.Through(nameLens, codec.String())).
//	    Field("age", lensmap.Through(ageLens, codec.Int())).
//	    MustBuild()
//
//	doc := lensmap.Compose(lensmap.Lift(person, Person{}), codec.JSON(codec.JSONOpt{}))
//	data, err := doc.Transform(p)
//	p2, err := doc.ReverseTransform(data)
package lensmap
