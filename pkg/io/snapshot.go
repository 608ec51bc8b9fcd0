package io

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/aigkit/pkg/aig"
)

// Format names a snapshot encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

var (
	// ErrUnknownFormat is returned when a format name or file extension
	// does not match a supported encoding.
	ErrUnknownFormat = errors.New("unknown snapshot format")

	// ErrMalformedGate is returned when an AND declaration does not have
	// exactly two input literals.
	ErrMalformedGate = errors.New("AND gate needs exactly two literals")
)

// Formats lists the supported encodings.
var Formats = []Format{FormatJSON, FormatTOML, FormatYAML}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatJSON, FormatTOML, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
}

// FormatFromPath derives the encoding from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%s: no extension: %w", path, ErrUnknownFormat)
	}
	return ParseFormat(ext)
}

type snapshot struct {
	MaxVar  int      `json:"max_var" toml:"max_var" yaml:"max_var"`
	Inputs  []input  `json:"inputs" toml:"inputs" yaml:"inputs"`
	Outputs []output `json:"outputs" toml:"outputs" yaml:"outputs"`
	Ands    []and    `json:"ands" toml:"ands" yaml:"ands"`
}

type input struct {
	ID   int    `json:"id" toml:"id" yaml:"id"`
	Name string `json:"name,omitempty" toml:"name,omitempty" yaml:"name,omitempty"`
	Line int    `json:"line,omitempty" toml:"line,omitempty" yaml:"line,omitempty"`
}

type output struct {
	ID   int    `json:"id" toml:"id" yaml:"id"`
	Lit  int    `json:"lit" toml:"lit" yaml:"lit"`
	Name string `json:"name,omitempty" toml:"name,omitempty" yaml:"name,omitempty"`
	Line int    `json:"line,omitempty" toml:"line,omitempty" yaml:"line,omitempty"`
}

type and struct {
	ID   int   `json:"id" toml:"id" yaml:"id"`
	Lits []int `json:"lits" toml:"lits" yaml:"lits,flow"`
	Line int   `json:"line,omitempty" toml:"line,omitempty" yaml:"line,omitempty"`
}

// Read decodes a snapshot in format f from r, replays it into a new graph
// and sweeps the result. Read does not close r.
func Read(r io.Reader, f Format) (*aig.Graph, error) {
	var s snapshot
	if err := decode(r, f, &s); err != nil {
		return nil, err
	}
	if err := s.checkBounds(); err != nil {
		return nil, err
	}

	g := aig.New(s.MaxVar)
	for _, in := range s.Inputs {
		if _, err := g.AddInput(in.ID, in.Name, aig.Pos{Line: in.Line}); err != nil {
			return nil, fmt.Errorf("input %d: %w", in.ID, err)
		}
	}
	for _, out := range s.Outputs {
		if _, err := g.AddOutput(out.ID, out.Lit, out.Name, aig.Pos{Line: out.Line}); err != nil {
			return nil, fmt.Errorf("output %d: %w", out.ID, err)
		}
	}
	for _, a := range s.Ands {
		if len(a.Lits) != 2 {
			return nil, fmt.Errorf("and %d: %w", a.ID, ErrMalformedGate)
		}
		if _, err := g.AddAnd(a.ID, a.Lits[0], a.Lits[1], aig.Pos{Line: a.Line}); err != nil {
			return nil, fmt.Errorf("and %d: %w", a.ID, err)
		}
	}
	g.Sweep()
	return g, nil
}

// checkBounds rejects ids and literal variables outside 0..max_var+O, the
// id space of an AIGER file with O outputs. The registry is a dense table,
// so an unchecked id sizes it.
func (s *snapshot) checkBounds() error {
	if s.MaxVar < 0 {
		return fmt.Errorf("max_var %d: %w", s.MaxVar, aig.ErrInvalidID)
	}
	limit := s.MaxVar + len(s.Outputs)
	if limit < s.MaxVar {
		return fmt.Errorf("max_var %d: %w", s.MaxVar, aig.ErrInvalidID)
	}
	id := func(kind string, v int) error {
		if v > limit {
			return fmt.Errorf("%s %d exceeds maximum id %d: %w", kind, v, limit, aig.ErrInvalidID)
		}
		return nil
	}
	lit := func(kind string, owner, l int) error {
		if l >= 0 && l/2 > limit {
			return fmt.Errorf("%s %d: literal %d exceeds maximum id %d: %w", kind, owner, l, limit, aig.ErrInvalidID)
		}
		return nil
	}
	for _, in := range s.Inputs {
		if err := id("input", in.ID); err != nil {
			return err
		}
	}
	for _, out := range s.Outputs {
		if err := id("output", out.ID); err != nil {
			return err
		}
		if err := lit("output", out.ID, out.Lit); err != nil {
			return err
		}
	}
	for _, a := range s.Ands {
		if err := id("and", a.ID); err != nil {
			return err
		}
		for _, l := range a.Lits {
			if err := lit("and", a.ID, l); err != nil {
				return err
			}
		}
	}
	return nil
}

func decode(r io.Reader, f Format, s *snapshot) error {
	var err error
	switch f {
	case FormatJSON:
		err = json.NewDecoder(r).Decode(s)
	case FormatTOML:
		_, err = toml.NewDecoder(r).Decode(s)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(s)
	default:
		return fmt.Errorf("%q: %w", f, ErrUnknownFormat)
	}
	if err != nil {
		return fmt.Errorf("decode %s: %w", f, err)
	}
	return nil
}

// Import reads the snapshot file at path, choosing the encoding from its
// extension.
func Import(path string) (*aig.Graph, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()
	return Read(file, f)
}

// Write encodes the declarations of g as a snapshot in format f.
func Write(g *aig.Graph, w io.Writer, f Format) error {
	s := snapshot{MaxVar: g.MaxVar()}
	for _, n := range g.Inputs() {
		s.Inputs = append(s.Inputs, input{ID: n.ID, Name: n.Name, Line: n.Pos.Line})
	}
	for _, n := range g.Outputs() {
		s.Outputs = append(s.Outputs, output{ID: n.ID, Lit: n.Fanin[0].Literal(), Name: n.Name, Line: n.Pos.Line})
	}
	for _, n := range g.Nodes() {
		if n.Kind != aig.KindAnd || n.Undefined() {
			continue
		}
		s.Ands = append(s.Ands, and{
			ID:   n.ID,
			Lits: []int{n.Fanin[0].Literal(), n.Fanin[1].Literal()},
			Line: n.Pos.Line,
		})
	}

	var err error
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(s)
	case FormatTOML:
		err = toml.NewEncoder(w).Encode(s)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(s); err == nil {
			err = enc.Close()
		}
	default:
		return fmt.Errorf("%q: %w", f, ErrUnknownFormat)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", f, err)
	}
	return nil
}

// Export writes a snapshot of g to path, choosing the encoding from its
// extension.
func Export(g *aig.Graph, path string) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(g, file, f); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
