// Package builder provides deterministic fixture graphs (paths, cycles,
// stars, complete graphs, isolated vertices) for tests, examples and
// benchmarks of the vertexrank algorithms.
//
// Constructors compose: several of them can be applied to the same graph in
// one Build call, and WithFirstLabel shifts the labels of the following Build
// so that disjoint fixtures do not collide:
//
//	g, err := builder.Build(nil, builder.Path(5))          // 0-1-2-3-4
//	h, err := builder.Build(
//	    []builder.BuilderOption{builder.WithFirstLabel(100)},
//	    builder.Star(4),                                     // hub 100, leaves 101..103
//	)
//
// Guarantees:
//
//   - Deterministic edge emission order for equal inputs.
//   - Sentinel errors (ErrTooFewVertices, ErrConstructFailed) wrapped with the
//     constructor name; constructors never panic.
//   - The declared vertex count of a built graph equals its number of labels.
package builder
