package report

import (
	"fmt"
	"strings"

	"github.com/matzehuels/aigkit/pkg/aig"
)

const statsWidth = 18

// Summary prints the circuit statistics: the number of primary inputs,
// primary outputs and defined AND gates, and their total.
func (r *Reporter) Summary() error {
	pis, pos, ands := len(r.g.Inputs()), len(r.g.Outputs()), r.g.NumAnds()

	var b strings.Builder
	b.WriteString("Circuit Statistics\n")
	b.WriteString(strings.Repeat("=", statsWidth) + "\n")
	writeStat(&b, "PI", pis)
	writeStat(&b, "PO", pos)
	writeStat(&b, "AIG", ands)
	b.WriteString(strings.Repeat("-", statsWidth) + "\n")
	writeStat(&b, "Total", pis+pos+ands)
	return r.flush(&b)
}

func writeStat(b *strings.Builder, label string, n int) {
	fmt.Fprintf(b, "  %-6s%10d\n", label, n)
}

// Netlist prints the reachable nodes in sweep order, one indexed
// [Reporter.GateLine] per node. It fails with [aig.ErrNotSwept] when the
// graph changed since the last sweep.
func (r *Reporter) Netlist() error {
	if !r.g.Swept() {
		return aig.ErrNotSwept
	}
	var b strings.Builder
	for i, n := range r.g.Reachable() {
		fmt.Fprintf(&b, "[%d] %s\n", i, r.GateLine(n))
	}
	return r.flush(&b)
}

// PIs prints the primary input ids in registration order.
func (r *Reporter) PIs() error {
	return r.listing("PIs of the circuit:", r.g.Inputs())
}

// POs prints the primary output ids in registration order.
func (r *Reporter) POs() error {
	return r.listing("POs of the circuit:", r.g.Outputs())
}

// FloatGates prints the floating and the unused nodes found by the last
// sweep. Empty classifications are omitted.
func (r *Reporter) FloatGates() error {
	if !r.g.Swept() {
		return aig.ErrNotSwept
	}
	var b strings.Builder
	if floating := r.g.Floating(); len(floating) > 0 {
		b.WriteString(joinIDs("Gates with floating fanin(s):", floating))
	}
	if unused := r.g.Unused(); len(unused) > 0 {
		b.WriteString(joinIDs("Gates defined but not used  :", unused))
	}
	return r.flush(&b)
}

func (r *Reporter) listing(title string, nodes []*aig.Node) error {
	var b strings.Builder
	b.WriteString(joinIDs(title, nodes))
	return r.flush(&b)
}

func joinIDs(title string, nodes []*aig.Node) string {
	var b strings.Builder
	b.WriteString(title)
	for _, n := range nodes {
		fmt.Fprintf(&b, " %d", n.ID)
	}
	b.WriteByte('\n')
	return b.String()
}
