// Package aig provides the node registry of an And-Inverter Graph (AIG) and
// the mark-and-sweep traversal that classifies its nodes.
//
// # Overview
//
// An AIG represents combinational logic using only two-input AND gates and
// inversion flags on edges. A [Graph] holds four kinds of nodes:
//
//   - [KindConst]: the constant-zero node, always at id 0
//   - [KindInput]: primary inputs, with no fanin
//   - [KindOutput]: primary outputs, with exactly one fanin and no fanout
//   - [KindAnd]: AND gates, with two fanin edges
//
// All cross-references are [Edge] values (a node id plus an inversion flag)
// resolved through the graph. Edges are encoded as AIGER literals with
// [Edge.Literal]: 2*id, plus one when inverted.
//
// # Building
//
// Graphs are populated by a builder, typically a file reader, through
// [Graph.AddInput], [Graph.AddOutput] and [Graph.AddAnd]:
//
//	g := aig.New(3)
//	g.AddInput(1, "a", aig.Pos{Line: 2})
//	g.AddOutput(3, 4, "out", aig.Pos{Line: 3})
//	g.AddAnd(2, 2, 3, aig.Pos{Line: 4})
//	g.Sweep()
//
// A literal that references an id not declared yet creates an undefined AND
// placeholder. The placeholder is resolved in place when the gate is
// declared later ([Graph.Resolve]); placeholders that are never resolved
// leave their consumers floating.
//
// # Sweeping
//
// [Graph.Sweep] walks the graph from every primary output and records the
// reachable nodes, then classifies floating nodes (an input is undefined) and
// unused nodes (no consumers). Visited tracking uses epochs: every
// traversal-like operation allocates a fresh [Epoch] with [Graph.NewEpoch],
// so marks never need to be reset between runs.
//
// # Concurrency
//
// Graph is single-threaded. A sweep and a report must not run at the same
// time on the same graph, since both stamp marks on the shared nodes.
package aig
