// Package builder assembles deterministic graph.Weighted[int] fixtures for
// tests, benchmarks and the demo CLI.
//
// Design contract:
//   - One orchestrator: Build(cons, opts...). Creates g, resolves config, runs cons in order.
//   - Constructors validate parameters first and return sentinel errors; they never panic.
//   - Option constructors panic on meaningless inputs (nil RNG, nil weight function).
//   - Determinism: same constructors, options and seed ⇒ identical graphs.
//
// Nodes are the integers 0..n-1. Every node is present as a key of the
// resulting map, isolated nodes included, so Order() equals n.
//
// Constructors:
//
//	Path(n)            0→1→…→n-1
//	Cycle(n)           Path(n) plus n-1→0, n ≥ 3
//	Complete(n)        every pair of distinct nodes
//	RandomSparse(n,p)  each admissible pair independently with probability p
//
// Options:
//
//	WithSeed(seed)     reproducible RNG
//	WithRand(r)        explicit RNG
//	WithDirected(b)    directed edges only (default: undirected, both directions stored)
//	WithWeightFn(fn)   per-edge weight generator (default: constant 1)
//
// Example:
//
//	g, err := builder.Build(
//	    []builder.Constructor{builder.RandomSparse(100, 0.05)},
//	    builder.WithSeed(7),
//	    builder.WithWeightFn(builder.UniformWeight(1, 10)),
//	)
package builder
