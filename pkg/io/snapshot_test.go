package io

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/aigkit/internal/testutil"
	"github.com/matzehuels/aigkit/pkg/aig"
	"github.com/matzehuels/aigkit/pkg/aig/aag"
)

func encodeAAG(t *testing.T, g *aig.Graph) string {
	t.Helper()
	var buf bytes.Buffer
	if err := aag.Write(g, &buf); err != nil {
		t.Fatalf("aag.Write: %v", err)
	}
	return buf.String()
}

func TestImportFixtures(t *testing.T) {
	tests := []struct {
		file string
		want func(testing.TB) *aig.Graph
	}{
		{"mixed.json", testutil.Mixed},
		{"tiny.toml", testutil.Tiny},
		{"reconvergent.yaml", testutil.Reconvergent},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			g, err := Import(filepath.Join("testdata", tt.file))
			if err != nil {
				t.Fatalf("Import: %v", err)
			}
			if !g.Swept() {
				t.Error("imported graph should be swept")
			}
			if got, want := encodeAAG(t, g), encodeAAG(t, tt.want(t)); got != want {
				t.Errorf("imported graph encodes as\n%s\nwant\n%s", got, want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for _, f := range Formats {
		t.Run(string(f), func(t *testing.T) {
			orig := testutil.Mixed(t)

			var buf bytes.Buffer
			if err := Write(orig, &buf, f); err != nil {
				t.Fatalf("Write: %v", err)
			}
			g, err := Read(&buf, f)
			if err != nil {
				t.Fatalf("Read: %v", err)
			}

			if got, want := encodeAAG(t, g), encodeAAG(t, orig); got != want {
				t.Errorf("round trip encodes as\n%s\nwant\n%s", got, want)
			}
			if g.NumAnds() != orig.NumAnds() {
				t.Errorf("NumAnds() = %d, want %d (unreachable gates must survive)", g.NumAnds(), orig.NumAnds())
			}
			for _, n := range orig.Nodes() {
				m, ok := g.Node(n.ID)
				if !ok {
					t.Errorf("node %d lost", n.ID)
					continue
				}
				if m.Tag() != n.Tag() || m.Name != n.Name || m.Pos != n.Pos {
					t.Errorf("node %d = %s %q %+v, want %s %q %+v", n.ID, m.Tag(), m.Name, m.Pos, n.Tag(), n.Name, n.Pos)
				}
			}
		})
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		format  Format
		wantErr error
	}{
		{
			name:    "duplicate input",
			input:   `{"max_var": 1, "inputs": [{"id": 1}, {"id": 1}]}`,
			format:  FormatJSON,
			wantErr: aig.ErrDuplicateID,
		},
		{
			name:    "reserved id",
			input:   `{"max_var": 1, "inputs": [{"id": 0}]}`,
			format:  FormatJSON,
			wantErr: aig.ErrReservedID,
		},
		{
			name:    "output as source",
			input:   `{"max_var": 1, "outputs": [{"id": 2, "lit": 0}], "ands": [{"id": 1, "lits": [4, 0]}]}`,
			format:  FormatJSON,
			wantErr: aig.ErrInvalidSource,
		},
		{
			name:    "input id beyond max_var",
			input:   `{"max_var": 2, "inputs": [{"id": 4611686018427387903}]}`,
			format:  FormatJSON,
			wantErr: aig.ErrInvalidID,
		},
		{
			name:    "and literal beyond max_var",
			input:   `{"max_var": 2, "outputs": [{"id": 3, "lit": 4}], "ands": [{"id": 2, "lits": [2, 4000000000]}]}`,
			format:  FormatJSON,
			wantErr: aig.ErrInvalidID,
		},
		{
			name:    "output literal beyond max_var",
			input:   "max_var: 1\noutputs:\n  - {id: 2, lit: 9}\n",
			format:  FormatYAML,
			wantErr: aig.ErrInvalidID,
		},
		{
			name:    "negative max_var",
			input:   `{"max_var": -1}`,
			format:  FormatJSON,
			wantErr: aig.ErrInvalidID,
		},
		{
			name:    "one literal",
			input:   "max_var = 2\n[[ands]]\nid = 2\nlits = [2]\n",
			format:  FormatTOML,
			wantErr: ErrMalformedGate,
		},
		{
			name:    "unknown format",
			input:   "{}",
			format:  Format("xml"),
			wantErr: ErrUnknownFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input), tt.format)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Read() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestReadMalformed(t *testing.T) {
	if _, err := Read(strings.NewReader("{"), FormatJSON); err == nil {
		t.Error("Read() should fail on malformed JSON")
	}
}

func TestImportErrors(t *testing.T) {
	if _, err := Import(filepath.Join("testdata", "bad_gate.yaml")); !errors.Is(err, ErrMalformedGate) {
		t.Errorf("Import(bad_gate.yaml) error = %v, want ErrMalformedGate", err)
	}
	if _, err := Import(filepath.Join("testdata", "missing.json")); err == nil {
		t.Error("Import of a missing file should fail")
	}
	if _, err := Import("circuit.aag"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Import(.aag) error = %v, want ErrUnknownFormat", err)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"c.json", FormatJSON, false},
		{"dir/c.TOML", FormatTOML, false},
		{"c.yaml", FormatYAML, false},
		{"c.yml", FormatYAML, false},
		{"c.aag", "", true},
		{"noext", "", true},
	}

	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if (err != nil) != tt.wantErr {
			t.Errorf("FormatFromPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("FormatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestExportImport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.yaml")
	if err := Export(testutil.Tiny(t), path); err != nil {
		t.Fatalf("Export: %v", err)
	}
	g, err := Import(path)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if got := encodeAAG(t, g); got != "aag 2 1 0 1 1\n2\n4\n4 2 3\n" {
		t.Errorf("re-imported graph encodes as %q", got)
	}
}
