// Package pkg provides the libraries behind aigkit, a toolkit for inspecting
// And-Inverter Graphs.
//
// # Overview
//
// The pkg directory is organized by concern:
//
//  1. [aig] - the node registry and the mark-and-sweep traversal
//  2. [aig/report] - text reports: gates, fanin/fanout cones, statistics
//  3. [aig/aag] - the ASCII AIGER writer
//  4. [io] - JSON, TOML and YAML graph snapshots
//  5. [render/nodelink] - Graphviz drawings
//  6. [cache] - the render cache (file, Redis or none)
//
// Supporting packages: [errors] (coded errors for the CLI), [observability]
// (load, render and cache hooks) and [buildinfo].
//
// # Architecture
//
// The typical data flow:
//
//	JSON/TOML/YAML snapshot
//	         ↓
//	    [io] package (replay declarations into a registry, then sweep)
//	         ↓
//	    [aig] package (reachable, floating and unused listings)
//	         ↓
//	    [aig/report], [aig/aag] or [render/nodelink]
//	         ↓
//	    text report, .aag file, DOT or SVG
//
// # Quick Start
//
//	import (
//	    "os"
//
//	    "github.com/matzehuels/aigkit/pkg/aig/aag"
//	    "github.com/matzehuels/aigkit/pkg/aig/report"
//	    "github.com/matzehuels/aigkit/pkg/io"
//	)
//
//	g, err := io.Import("adder.json")
//	if err != nil {
//	    return err
//	}
//	r := report.New(g, os.Stdout)
//	r.Summary()
//	r.Fanin(g.Outputs()[0].ID, 3)
//	aag.Export(g, "adder.aag")
//
// # Design Notes
//
// Nodes reference each other only by id through [aig.Edge]; the registry
// owns every node and nothing is ever removed from it. Traversals are
// iterative, so cone depth is bounded by memory rather than stack size.
//
// [aig]: https://pkg.go.dev/github.com/matzehuels/aigkit/pkg/aig
// [aig/report]: https://pkg.go.dev/github.com/matzehuels/aigkit/pkg/aig/report
// [aig/aag]: https://pkg.go.dev/github.com/matzehuels/aigkit/pkg/aig/aag
// [io]: https://pkg.go.dev/github.com/matzehuels/aigkit/pkg/io
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/aigkit/pkg/render/nodelink
// [cache]: https://pkg.go.dev/github.com/matzehuels/aigkit/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/aigkit/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/aigkit/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/aigkit/pkg/buildinfo
// [aig.Edge]: https://pkg.go.dev/github.com/matzehuels/aigkit/pkg/aig#Edge
package pkg
