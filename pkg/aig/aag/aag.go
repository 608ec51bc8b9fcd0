// Package aag writes And-Inverter Graphs in the ASCII AIGER format.
//
// # Format
//
// The output is deterministic, one record per line, fields separated by a
// single space:
//
//	aag M I L O A      header; L is always 0 (latches are not supported)
//	<lit>              one line per primary input (2*id)
//	<lit>              one line per primary output (literal of its source)
//	<lhs> <rhs0> <rhs1> one line per reachable AND gate
//	i<k> <name>        symbols of named inputs (k is the listing position)
//	o<k> <name>        symbols of named outputs
//
// Literals are 2*id plus one for an inverted edge. A is the number of AND
// gates in the graph's reachable listing, so gates that no output depends on
// are left out even though they remain addressable in the graph. AND lines
// follow the sweep order, in which every gate comes after its inputs.
//
// The writer is a pure projection of the graph; the graph must have been
// swept since its last change.
package aag

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/aigkit/pkg/aig"
)

// Write encodes g in ASCII AIGER format to w. It returns [aig.ErrNotSwept]
// if the reachable listing is stale.
func Write(g *aig.Graph, w io.Writer) error {
	if !g.Swept() {
		return aig.ErrNotSwept
	}

	inputs, outputs := g.Inputs(), g.Outputs()
	var ands []*aig.Node
	for _, n := range g.Reachable() {
		if n.Kind == aig.KindAnd {
			ands = append(ands, n)
		}
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "aag %d %d 0 %d %d\n", g.MaxVar(), len(inputs), len(outputs), len(ands))
	for _, n := range inputs {
		fmt.Fprintf(bw, "%d\n", aig.Edge{ID: n.ID}.Literal())
	}
	for _, n := range outputs {
		fmt.Fprintf(bw, "%d\n", n.Fanin[0].Literal())
	}
	for _, n := range ands {
		fmt.Fprintf(bw, "%d %d %d\n", aig.Edge{ID: n.ID}.Literal(), n.Fanin[0].Literal(), n.Fanin[1].Literal())
	}
	for i, n := range inputs {
		if n.Name != "" {
			fmt.Fprintf(bw, "i%d %s\n", i, n.Name)
		}
	}
	for i, n := range outputs {
		if n.Name != "" {
			fmt.Fprintf(bw, "o%d %s\n", i, n.Name)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write aag: %w", err)
	}
	return nil
}

// Export writes g to a file at path. This is a convenience wrapper around
// [Write]; failing to create the file is reported before anything is
// encoded.
func Export(g *aig.Graph, path string) error {
	if !g.Swept() {
		return aig.ErrNotSwept
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(g, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
