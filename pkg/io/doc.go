// Package io reads and writes AIG snapshots: a structured description of a
// graph's declarations in JSON, TOML or YAML.
//
// # Overview
//
// Snapshots are how the command-line tools load a circuit into a registry.
// They list declarations, not derived state: the variable bound, the
// primary inputs and outputs in order, and every defined AND gate. Fanout
// lists, undefined placeholders and the sweep listings are rebuilt while
// the snapshot is replayed through the graph builder.
//
// # Format
//
// The same structure is used by all three encodings:
//
//	{
//	  "max_var": 3,
//	  "inputs":  [{"id": 1, "name": "a", "line": 2}, {"id": 2, "name": "b", "line": 3}],
//	  "outputs": [{"id": 4, "lit": 6, "name": "out", "line": 4}],
//	  "ands":    [{"id": 3, "lits": [2, 5], "line": 5}]
//	}
//
// Literals use the AIGER encoding: 2*id, plus one for an inverted edge. A
// literal may reference a gate declared later in the snapshot, or never
// declared at all; the latter leaves its consumers floating.
//
// # Import
//
// Use [Import] to read a file, choosing the encoding from its extension
// (.json, .toml, .yaml or .yml), or [Read] for any io.Reader. Both return a
// graph that has already been swept. Errors name the declaration that
// failed and wrap the [aig] sentinel errors.
//
// # Export
//
// Use [Export] or [Write] to produce a snapshot from a graph. Export lists
// every defined AND gate by ascending id, reachable or not, so importing an
// exported snapshot reproduces the same registry.
package io
