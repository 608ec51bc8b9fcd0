package aig

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by [Graph.Get] when no node is registered
	// under the requested id.
	ErrNotFound = errors.New("gate not found")

	// ErrInvalidID is returned when a node id or literal is negative.
	ErrInvalidID = errors.New("invalid gate id")

	// ErrReservedID is returned when a node other than the constant is
	// registered under id 0.
	ErrReservedID = errors.New("id 0 is reserved for the constant")

	// ErrDuplicateID is returned when a node is registered under an id that
	// is already taken by a defined node.
	ErrDuplicateID = errors.New("duplicate gate id")

	// ErrInvalidSource is returned when an edge would use a primary output
	// as its source. Outputs have no fanout.
	ErrInvalidSource = errors.New("primary output cannot drive a gate")

	// ErrAlreadyDefined is returned by [Graph.Resolve] when the target node
	// is not an undefined AND placeholder.
	ErrAlreadyDefined = errors.New("gate is already defined")

	// ErrNotSwept is returned by consumers that need the reachable listing
	// when [Graph.Sweep] has not run since the last mutation.
	ErrNotSwept = errors.New("graph has not been swept")
)

// Graph is the registry of an And-Inverter Graph. It owns every node in a
// dense table indexed by id, the ordered primary input and output listings,
// and the listings produced by [Graph.Sweep].
//
// The registry is append-only: nodes are never removed. The zero value is not
// usable; create graphs with [New]. Graph is not safe for concurrent use, and
// epoch-bearing operations (sweeps and reports) must not interleave.
type Graph struct {
	maxVar  int
	nodes   []*Node
	inputs  []int
	outputs []int

	reachable []int
	floating  []int
	unused    []int
	swept     bool

	epoch Epoch
}

// New creates a graph holding only the constant node. maxVar is the largest
// variable index of the circuit (the AIGER M field); primary output ids are
// allocated above it by convention.
func New(maxVar int) *Graph {
	g := &Graph{maxVar: maxVar}
	g.put(&Node{ID: 0, Kind: KindConst})
	return g
}

// MaxVar returns the largest variable index the graph was created with.
func (g *Graph) MaxVar() int { return g.maxVar }

// Len returns the size of the id space (largest registered id plus one).
func (g *Graph) Len() int { return len(g.nodes) }

// Const returns the constant-zero node.
func (g *Graph) Const() *Node { return g.nodes[0] }

// Node returns the node with the given id and true, or nil and false if no
// node is registered under it.
func (g *Graph) Node(id int) (*Node, bool) {
	if id < 0 || id >= len(g.nodes) || g.nodes[id] == nil {
		return nil, false
	}
	return g.nodes[id], true
}

// Get returns the node with the given id. It fails with an error wrapping
// [ErrNotFound] when the id is negative, outside the id space, or unused.
func (g *Graph) Get(id int) (*Node, error) {
	n, ok := g.Node(id)
	if !ok {
		return nil, fmt.Errorf("gate %d: %w", id, ErrNotFound)
	}
	return n, nil
}

// Nodes returns every registered node in ascending id order, including
// undefined placeholders.
func (g *Graph) Nodes() []*Node {
	nodes := make([]*Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		if n != nil {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// Inputs returns the primary inputs in registration order.
func (g *Graph) Inputs() []*Node { return g.lookup(g.inputs) }

// Outputs returns the primary outputs in registration order.
func (g *Graph) Outputs() []*Node { return g.lookup(g.outputs) }

// Reachable returns the nodes found by the last sweep, in the order the walk
// finished them: every source precedes its consumers and each output follows
// its cone.
func (g *Graph) Reachable() []*Node { return g.lookup(g.reachable) }

// Floating returns the nodes with at least one input driven by an undefined
// gate, in ascending id order, as classified by the last sweep.
func (g *Graph) Floating() []*Node { return g.lookup(g.floating) }

// Unused returns the defined inputs and AND gates without consumers, in
// ascending id order, as classified by the last sweep.
func (g *Graph) Unused() []*Node { return g.lookup(g.unused) }

// Swept reports whether the reachable and classification listings reflect
// the current graph.
func (g *Graph) Swept() bool { return g.swept }

// NumAnds returns the number of defined AND gates in the graph, reachable or
// not.
func (g *Graph) NumAnds() int {
	count := 0
	for _, n := range g.nodes {
		if n != nil && n.Kind == KindAnd && !n.Undefined() {
			count++
		}
	}
	return count
}

// NewEpoch allocates a fresh epoch. Marks stamped in any earlier epoch no
// longer count as visited.
func (g *Graph) NewEpoch() Epoch {
	g.epoch++
	return g.epoch
}

func (g *Graph) lookup(ids []int) []*Node {
	nodes := make([]*Node, len(ids))
	for i, id := range ids {
		nodes[i] = g.nodes[id]
	}
	return nodes
}

func (g *Graph) put(n *Node) {
	if n.ID >= len(g.nodes) {
		g.nodes = append(g.nodes, make([]*Node, n.ID+1-len(g.nodes))...)
	}
	g.nodes[n.ID] = n
	g.swept = false
}

func (g *Graph) checkID(id int) error {
	switch {
	case id < 0:
		return fmt.Errorf("gate %d: %w", id, ErrInvalidID)
	case id == 0:
		return ErrReservedID
	}
	if n, ok := g.Node(id); ok && !n.Undefined() {
		return fmt.Errorf("gate %d: %w", id, ErrDuplicateID)
	}
	return nil
}

// Register inserts n into the id table only. The id must be positive and
// either free or held by an undefined placeholder, which n replaces. Fanout
// already recorded on the placeholder is carried over; a primary output
// cannot take over a placeholder that already has consumers.
func (g *Graph) Register(n *Node) error {
	if err := g.checkID(n.ID); err != nil {
		return err
	}
	if old, ok := g.Node(n.ID); ok {
		if n.Kind == KindOutput && len(old.Fanout) > 0 {
			return fmt.Errorf("gate %d: %w", n.ID, ErrInvalidSource)
		}
		if len(n.Fanout) == 0 {
			n.Fanout = old.Fanout
		}
	}
	g.put(n)
	return nil
}

// RegisterInput inserts n into the id table and appends it to the primary
// input listing.
func (g *Graph) RegisterInput(n *Node) error {
	if err := g.Register(n); err != nil {
		return err
	}
	g.inputs = append(g.inputs, n.ID)
	return nil
}

// RegisterOutput inserts n into the id table and appends it to the primary
// output listing.
func (g *Graph) RegisterOutput(n *Node) error {
	if err := g.Register(n); err != nil {
		return err
	}
	g.outputs = append(g.outputs, n.ID)
	return nil
}
