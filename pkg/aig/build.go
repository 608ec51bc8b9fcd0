package aig

import "fmt"

// AddInput declares a primary input. The id may already be held by an
// undefined placeholder created by an earlier reference; the placeholder's
// consumers are kept.
func (g *Graph) AddInput(id int, name string, pos Pos) (*Node, error) {
	n := &Node{ID: id, Kind: KindInput, Name: name, Pos: pos}
	if err := g.RegisterInput(n); err != nil {
		return nil, err
	}
	return n, nil
}

// AddOutput declares a primary output driven by the AIGER literal lit. A
// source that does not exist yet is created as an undefined placeholder.
func (g *Graph) AddOutput(id, lit int, name string, pos Pos) (*Node, error) {
	if err := g.checkID(id); err != nil {
		return nil, err
	}
	src, err := g.checkLiteral(lit)
	if err != nil {
		return nil, err
	}
	n := &Node{ID: id, Kind: KindOutput, Name: name, Pos: pos}
	if err := g.RegisterOutput(n); err != nil {
		return nil, err
	}
	g.connect(n, src)
	return n, nil
}

// AddAnd declares an AND gate with inputs lit1 and lit2. If id is held by an
// undefined placeholder, the placeholder is resolved in place.
func (g *Graph) AddAnd(id, lit1, lit2 int, pos Pos) (*Node, error) {
	if n, ok := g.Node(id); ok && n.Undefined() {
		return n, g.Resolve(id, lit1, lit2, pos)
	}
	if err := g.checkID(id); err != nil {
		return nil, err
	}
	a, err := g.checkLiteral(lit1)
	if err != nil {
		return nil, err
	}
	b, err := g.checkLiteral(lit2)
	if err != nil {
		return nil, err
	}
	n := &Node{ID: id, Kind: KindAnd, Pos: pos}
	g.put(n)
	g.connect(n, a)
	g.connect(n, b)
	return n, nil
}

// Resolve back-fills both inputs of an undefined AND placeholder and records
// where it was declared.
func (g *Graph) Resolve(id, lit1, lit2 int, pos Pos) error {
	n, err := g.Get(id)
	if err != nil {
		return err
	}
	if !n.Undefined() {
		return fmt.Errorf("gate %d: %w", id, ErrAlreadyDefined)
	}
	a, err := g.checkLiteral(lit1)
	if err != nil {
		return err
	}
	b, err := g.checkLiteral(lit2)
	if err != nil {
		return err
	}
	n.Pos = pos
	g.connect(n, a)
	g.connect(n, b)
	g.swept = false
	return nil
}

// SetName attaches a symbolic name to a node.
func (g *Graph) SetName(id int, name string) error {
	n, err := g.Get(id)
	if err != nil {
		return err
	}
	n.Name = name
	return nil
}

// checkLiteral validates that lit may be used as a fanin and returns the
// decoded edge. Referencing an unknown id is allowed; the placeholder is
// created by connect.
func (g *Graph) checkLiteral(lit int) (Edge, error) {
	if lit < 0 {
		return Edge{}, fmt.Errorf("literal %d: %w", lit, ErrInvalidID)
	}
	e := EdgeFromLiteral(lit)
	if src, ok := g.Node(e.ID); ok && src.Kind == KindOutput {
		return Edge{}, fmt.Errorf("literal %d: %w", lit, ErrInvalidSource)
	}
	return e, nil
}

// connect appends e to the fanin of n and the matching fanout entry to the
// source, creating an undefined placeholder for a source not seen yet.
func (g *Graph) connect(n *Node, e Edge) {
	src, ok := g.Node(e.ID)
	if !ok {
		src = &Node{ID: e.ID, Kind: KindAnd}
		g.put(src)
	}
	n.Fanin = append(n.Fanin, e)
	src.Fanout = append(src.Fanout, Edge{ID: n.ID, Inverted: e.Inverted})
	g.swept = false
}
