package nodelink

import (
	"bytes"
	"cmp"
	"context"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/aigkit/pkg/aig"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds symbolic names and source lines to node labels.
	// When false, only the type tag and id are shown.
	Detailed bool
	// ReachableOnly restricts the diagram to the nodes found by the last
	// sweep, dropping dead gates, unused inputs and undefined placeholders.
	ReachableOnly bool
}

var shapes = map[aig.Kind]string{
	aig.KindConst:  "box",
	aig.KindInput:  "invtriangle",
	aig.KindOutput: "triangle",
	aig.KindAnd:    "circle",
}

// ToDOT converts an AIG to Graphviz DOT format. Edges point from a source
// to its consumer and inverted edges end in a hollow dot. Undefined
// placeholders are drawn dashed.
//
// Nodes are emitted in ascending id order and edges in fanin order, so the
// output is deterministic. With ReachableOnly set, the graph must have been
// swept since its last change.
func ToDOT(g *aig.Graph, opts Options) (string, error) {
	nodes := g.Nodes()
	if opts.ReachableOnly {
		if !g.Swept() {
			return "", aig.ErrNotSwept
		}
		nodes = slices.SortedFunc(slices.Values(g.Reachable()), func(a, b *aig.Node) int {
			return cmp.Compare(a.ID, b.ID)
		})
	}
	included := make(map[int]bool, len(nodes))

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=BT;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [style=filled, fillcolor=white, fontsize=14];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, n := range nodes {
		if n.Kind == aig.KindConst && len(n.Fanout) == 0 {
			continue
		}
		included[n.ID] = true
		fmt.Fprintf(&buf, "  %s [%s];\n", nodeName(n.ID), strings.Join(fmtAttrs(n, opts.Detailed), ", "))
	}

	buf.WriteString("\n")
	for _, n := range nodes {
		if !included[n.ID] {
			continue
		}
		for _, in := range n.Fanin {
			if !included[in.ID] {
				continue
			}
			if in.Inverted {
				fmt.Fprintf(&buf, "  %s -> %s [arrowhead=odot];\n", nodeName(in.ID), nodeName(n.ID))
			} else {
				fmt.Fprintf(&buf, "  %s -> %s;\n", nodeName(in.ID), nodeName(n.ID))
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String(), nil
}

func nodeName(id int) string { return "n" + strconv.Itoa(id) }

func fmtLabel(n *aig.Node, detailed bool) string {
	label := n.Tag() + " " + strconv.Itoa(n.ID)
	if !detailed {
		return label
	}
	if n.Name != "" {
		label += "\n" + n.Name
	}
	if n.Pos.Line > 0 {
		label += fmt.Sprintf("\nline %d", n.Pos.Line)
	}
	return label
}

func fmtAttrs(n *aig.Node, detailed bool) []string {
	attrs := []string{
		fmt.Sprintf("label=%q", fmtLabel(n, detailed)),
		"shape=" + shapes[n.Kind],
	}
	if n.Undefined() {
		attrs = append(attrs, "style=\"filled,dashed\"", "fillcolor=lightgrey")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
