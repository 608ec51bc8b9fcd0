// Package testutil provides small, fully specified circuits shared by the
// tests of several packages.
package testutil

import (
	"testing"

	"github.com/matzehuels/aigkit/pkg/aig"
)

// Tiny builds the smallest interesting circuit: one input, one AND gate
// whose inputs are the input and its complement, and one output.
//
//	aag 2 1 0 1 1
//	2
//	4
//	4 2 3
func Tiny(t testing.TB) *aig.Graph {
	t.Helper()
	g := aig.New(2)
	must(t, func() error { _, err := g.AddInput(1, "", aig.Pos{Line: 2}); return err })
	must(t, func() error { _, err := g.AddOutput(3, 4, "", aig.Pos{Line: 3}); return err })
	must(t, func() error { _, err := g.AddAnd(2, 2, 3, aig.Pos{Line: 4}); return err })
	g.Sweep()
	return g
}

// Mixed builds a circuit exercising every classification:
//
//   - inputs 1 "a", 2 "b", 3 (never used)
//   - AND 4 = 1 & !2
//   - AND 5 = 4 & 6, where 6 is never declared (5 is floating)
//   - AND 7 = 1 & 2, not driving anything (unreachable and unused)
//   - outputs 8 "f" = 4 and 9 = !5
func Mixed(t testing.TB) *aig.Graph {
	t.Helper()
	g := aig.New(7)
	must(t, func() error { _, err := g.AddInput(1, "a", aig.Pos{Line: 2}); return err })
	must(t, func() error { _, err := g.AddInput(2, "b", aig.Pos{Line: 3}); return err })
	must(t, func() error { _, err := g.AddInput(3, "", aig.Pos{Line: 4}); return err })
	must(t, func() error { _, err := g.AddOutput(8, 8, "f", aig.Pos{Line: 5}); return err })
	must(t, func() error { _, err := g.AddOutput(9, 11, "", aig.Pos{Line: 6}); return err })
	must(t, func() error { _, err := g.AddAnd(4, 2, 5, aig.Pos{Line: 7}); return err })
	must(t, func() error { _, err := g.AddAnd(5, 8, 12, aig.Pos{Line: 8}); return err })
	must(t, func() error { _, err := g.AddAnd(7, 2, 4, aig.Pos{Line: 9}); return err })
	g.Sweep()
	return g
}

// Reconvergent builds a circuit whose fanin cone reconverges on gate 3:
//
//   - inputs 1 "a", 2 "b"
//   - AND 3 = 1 & 2
//   - AND 4 = 3 & !1
//   - AND 5 = !3 & 4
//   - output 6 "f" = 5
func Reconvergent(t testing.TB) *aig.Graph {
	t.Helper()
	g := aig.New(5)
	must(t, func() error { _, err := g.AddInput(1, "a", aig.Pos{Line: 2}); return err })
	must(t, func() error { _, err := g.AddInput(2, "b", aig.Pos{Line: 3}); return err })
	must(t, func() error { _, err := g.AddOutput(6, 10, "f", aig.Pos{Line: 4}); return err })
	must(t, func() error { _, err := g.AddAnd(3, 2, 4, aig.Pos{Line: 5}); return err })
	must(t, func() error { _, err := g.AddAnd(4, 6, 3, aig.Pos{Line: 6}); return err })
	must(t, func() error { _, err := g.AddAnd(5, 7, 8, aig.Pos{Line: 7}); return err })
	g.Sweep()
	return g
}

// Chain builds a circuit of n AND gates in series. Gate k+1 = gate k & input
// 1, so the longest path from the output has n+1 edges.
func Chain(t testing.TB, n int) *aig.Graph {
	t.Helper()
	g := aig.New(n + 1)
	must(t, func() error { _, err := g.AddInput(1, "x", aig.Pos{Line: 2}); return err })
	must(t, func() error { _, err := g.AddOutput(n+2, 2*(n+1), "y", aig.Pos{Line: 3}); return err })
	prev := 1
	for id := 2; id <= n+1; id++ {
		prevLit := 2 * prev
		must(t, func() error { _, err := g.AddAnd(id, prevLit, 2, aig.Pos{Line: id + 2}); return err })
		prev = id
	}
	g.Sweep()
	return g
}

func must(t testing.TB, fn func() error) {
	t.Helper()
	if err := fn(); err != nil {
		t.Fatalf("build circuit: %v", err)
	}
}
