// Package report prints human-readable views of an AIG: framed gate
// descriptions, terse netlist lines, bounded-depth fanin and fanout trees,
// and circuit-level listings.
//
// Every operation renders into a buffer and writes it to the destination in
// one call, so a failing writer never leaves a half-printed tree behind
// without an error. Reports never modify the graph, apart from the visit
// marks of the epoch each tree report allocates.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/matzehuels/aigkit/pkg/aig"
)

// ErrNegativeLevel is returned by [Reporter.Fanin] and [Reporter.Fanout]
// when the depth bound is negative.
var ErrNegativeLevel = errors.New("level must be non-negative")

const (
	frameWidth = 50
	indentStep = 2
	reuseMark  = " (*)"
)

// Reporter writes reports about one graph to one destination.
type Reporter struct {
	g *aig.Graph
	w io.Writer
}

// New creates a Reporter for g that writes to w.
func New(g *aig.Graph, w io.Writer) *Reporter {
	return &Reporter{g: g, w: w}
}

func (r *Reporter) flush(b *strings.Builder) error {
	_, err := io.WriteString(r.w, b.String())
	return err
}

// Gate prints a framed block describing the node with the given id:
//
//	==================================================
//	= PI(1)"a", line 2                               =
//	==================================================
//
// The constant and unresolved placeholders have no position and report
// line 0.
func (r *Reporter) Gate(id int) error {
	n, err := r.g.Get(id)
	if err != nil {
		return err
	}

	var b strings.Builder
	rule := strings.Repeat("=", frameWidth)
	content := fmt.Sprintf("= %s(%d)", n.Tag(), n.ID)
	if n.Name != "" {
		content += "\"" + n.Name + "\""
	}
	content += fmt.Sprintf(", line %d", n.Pos.Line)

	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "%-*s =\n", frameWidth-2, content)
	b.WriteString(rule + "\n")
	return r.flush(&b)
}

// PrintGate writes the terse one-line form of n, as used by [Reporter.Netlist].
func (r *Reporter) PrintGate(n *aig.Node) error {
	var b strings.Builder
	b.WriteString(r.GateLine(n))
	b.WriteByte('\n')
	return r.flush(&b)
}

// GateLine returns the terse form of n without a line break: the type tag
// padded to four columns, the id, then for outputs and AND gates each input
// id prefixed with '*' when the input is undefined and '!' when inverted,
// then the symbolic name in parentheses when present.
//
//	AIG 5 4 *6
//	PO  8 4 (f)
func (r *Reporter) GateLine(n *aig.Node) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-4s%d", n.Tag(), n.ID)
	for _, in := range n.Fanin {
		b.WriteByte(' ')
		if src, ok := r.g.Node(in.ID); ok && src.Undefined() {
			b.WriteByte('*')
		}
		if in.Inverted {
			b.WriteByte('!')
		}
		fmt.Fprintf(&b, "%d", in.ID)
	}
	if n.Name != "" {
		fmt.Fprintf(&b, " (%s)", n.Name)
	}
	return b.String()
}

// Fanin prints the fanin cone of the node with the given id, down to level
// edges deep. See [Reporter.Fanout] for the layout.
func (r *Reporter) Fanin(id, level int) error {
	return r.tree(id, level, func(n *aig.Node) []aig.Edge { return n.Fanin })
}

// Fanout prints the consumers of the node with the given id, up to level
// edges away.
//
// Each line holds a node's type tag and id, indented two spaces per edge
// from the root and prefixed with '!' when the edge leading to it is
// inverted. A node with edges left to follow is expanded once per report;
// reaching it again prints " (*)" in place of its subtree. Nodes without
// edges in the walked direction are leaves at any level. Level 0 prints the
// root alone.
func (r *Reporter) Fanout(id, level int) error {
	return r.tree(id, level, func(n *aig.Node) []aig.Edge { return n.Fanout })
}

// item is a pending line of a tree report.
type item struct {
	edge  aig.Edge
	level int
	depth int
}

func (r *Reporter) tree(id, level int, next func(*aig.Node) []aig.Edge) error {
	if level < 0 {
		return fmt.Errorf("level %d: %w", level, ErrNegativeLevel)
	}
	root, err := r.g.Get(id)
	if err != nil {
		return err
	}

	epoch := r.g.NewEpoch()
	var b strings.Builder
	stack := []item{{edge: aig.Edge{ID: root.ID}, level: level}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n, _ := r.g.Node(it.edge.ID)
		b.WriteString(strings.Repeat(" ", indentStep*it.depth))
		if it.edge.Inverted {
			b.WriteByte('!')
		}
		fmt.Fprintf(&b, "%s %d", n.Tag(), n.ID)

		edges := next(n)
		if it.level == 0 || len(edges) == 0 {
			b.WriteByte('\n')
			continue
		}
		if !n.Visit(epoch) {
			b.WriteString(reuseMark + "\n")
			continue
		}
		b.WriteByte('\n')
		for i := len(edges) - 1; i >= 0; i-- {
			stack = append(stack, item{edge: edges[i], level: it.level - 1, depth: it.depth + 1})
		}
	}
	return r.flush(&b)
}
