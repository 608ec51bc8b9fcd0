package aig

import "strconv"

// Kind distinguishes the four node variants of an And-Inverter Graph.
type Kind int

const (
	// KindConst is the constant-zero node. There is exactly one per graph,
	// always at id 0.
	KindConst Kind = iota
	// KindInput is a primary input. It has no fanin.
	KindInput
	// KindOutput is a primary output. It has exactly one fanin and no fanout.
	KindOutput
	// KindAnd is a two-input AND gate. An AND gate whose inputs have not been
	// resolved yet is undefined (see [Node.Undefined]).
	KindAnd
)

// String returns the type tag used in reports: CONST, PI, PO or AIG.
func (k Kind) String() string {
	switch k {
	case KindConst:
		return "CONST"
	case KindInput:
		return "PI"
	case KindOutput:
		return "PO"
	case KindAnd:
		return "AIG"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Edge is a reference to another node in the same graph together with an
// inversion flag. Edges are used both for fanin (source node) and fanout
// (consumer node) lists, so node identity is always resolved through the
// graph and never through pointers.
type Edge struct {
	ID       int
	Inverted bool
}

// Literal returns the AIGER literal encoding of the edge: 2*ID plus one when
// inverted.
func (e Edge) Literal() int {
	if e.Inverted {
		return 2*e.ID + 1
	}
	return 2 * e.ID
}

// EdgeFromLiteral decodes an AIGER literal into an edge.
func EdgeFromLiteral(lit int) Edge {
	return Edge{ID: lit / 2, Inverted: lit%2 == 1}
}

// Pos records where a node was declared. Line and Col are 1-based; zero
// means unknown (the constant and unresolved placeholders have no position).
type Pos struct {
	Line int
	Col  int
}

// Epoch is a visit stamp. A node is visited in an epoch iff its mark equals
// that epoch; allocating a new epoch with [Graph.NewEpoch] makes every
// earlier mark stale without touching the nodes.
type Epoch uint64

// Node is a vertex of the graph. The shape of Fanin depends on Kind:
//
//   - KindConst, KindInput: empty
//   - KindOutput: exactly one edge
//   - KindAnd: exactly two edges, or none while undefined
//
// Fanout lists consumers in the order they declared the edge. Output nodes
// never have fanout.
//
// Nodes are owned by a [Graph]. Callers may read the exported fields but must
// mutate the graph only through Graph methods.
type Node struct {
	ID     int
	Kind   Kind
	Pos    Pos
	Name   string
	Fanin  []Edge
	Fanout []Edge

	mark Epoch
}

// Undefined reports whether n is an AND gate placeholder whose inputs have
// not been resolved. Placeholders are created when a node is referenced
// before it is declared.
func (n *Node) Undefined() bool {
	return n.Kind == KindAnd && len(n.Fanin) == 0
}

// Tag returns the report type tag of n. Undefined AND gates report UNDEF.
func (n *Node) Tag() string {
	if n.Undefined() {
		return "UNDEF"
	}
	return n.Kind.String()
}

// Visited reports whether n was marked in epoch e.
func (n *Node) Visited(e Epoch) bool { return n.mark == e }

// Mark stamps n as visited in epoch e.
func (n *Node) Mark(e Epoch) { n.mark = e }

// Visit marks n in epoch e and reports whether it was unvisited before.
func (n *Node) Visit(e Epoch) bool {
	if n.mark == e {
		return false
	}
	n.mark = e
	return true
}
