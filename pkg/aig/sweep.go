package aig

// Sweep rebuilds the reachable listing and the floating/unused
// classification.
//
// The walk starts from every primary output in listing order and follows
// fanin edges depth first, slot 1 before slot 2. A node is marked when it is
// discovered and recorded once its own cone is finished, so the reachable
// listing is in post order: sources precede consumers and each output follows
// its cone. Inputs and the constant are terminal. Undefined placeholders are
// never entered and never recorded.
//
// The classification scan then visits every defined node by ascending id.
// A node is floating when one of its inputs is an undefined placeholder, and
// unused when it is an input or AND gate with no consumers. Both lists are
// cleared first, so repeated sweeps of an unchanged graph are identical.
//
// The walk uses an explicit stack; its depth is bounded by memory, not by
// the goroutine stack.
func (g *Graph) Sweep() {
	g.reachable = nil
	g.floating = nil
	g.unused = nil

	e := g.NewEpoch()
	for _, id := range g.outputs {
		g.walk(g.nodes[id], e)
	}
	g.classify()
	g.swept = true
}

// frame is a pending node on the walk stack together with the index of the
// next fanin slot to explore.
type frame struct {
	n    *Node
	next int
}

func (g *Graph) walk(root *Node, e Epoch) {
	if !root.Visit(e) {
		return
	}
	stack := []frame{{n: root}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(top.n.Fanin) {
			src := g.nodes[top.n.Fanin[top.next].ID]
			top.next++
			if src.Undefined() || !src.Visit(e) {
				continue
			}
			stack = append(stack, frame{n: src})
			continue
		}
		g.reachable = append(g.reachable, top.n.ID)
		stack = stack[:len(stack)-1]
	}
}

func (g *Graph) classify() {
	for _, n := range g.nodes {
		if n == nil || n.Undefined() {
			continue
		}
		for _, in := range n.Fanin {
			if g.nodes[in.ID].Undefined() {
				g.floating = append(g.floating, n.ID)
				break
			}
		}
		if (n.Kind == KindInput || n.Kind == KindAnd) && len(n.Fanout) == 0 {
			g.unused = append(g.unused, n.ID)
		}
	}
}
