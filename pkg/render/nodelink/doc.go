// Package nodelink renders And-Inverter Graphs as node-link diagrams.
//
// # Usage
//
// Convert a graph to DOT format, then render to SVG:
//
//	dot, err := nodelink.ToDOT(g, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Drawing Conventions
//
// Signals flow bottom to top (rankdir=BT):
//
//   - primary inputs are inverted triangles, primary outputs triangles
//   - AND gates are circles, the constant is a box
//   - an inverted edge ends in a hollow dot
//   - undefined placeholders are dashed and grey
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering; the DOT source can also be fed to external Graphviz tools.
package nodelink
