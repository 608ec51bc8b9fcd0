package cli

import (
	"bytes"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/aigkit/pkg/aig/aag"
	apperr "github.com/matzehuels/aigkit/pkg/errors"
	pkgio "github.com/matzehuels/aigkit/pkg/io"
)

// writeCommand creates the write command, which emits ASCII AIGER.
func (c *CLI) writeCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "write [file]",
		Short: "Write the reachable part of a graph as ASCII AIGER (aag)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if output == "" {
				return coded(aag.Write(g, cmd.OutOrStdout()), "write aag")
			}
			if err := apperr.ValidateOutputPath(output); err != nil {
				return err
			}
			if err := aag.Export(g, output); err != nil {
				return coded(err, "write %s", output)
			}
			printSuccess("Wrote AIGER")
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}

// exportCommand creates the export command, which converts between snapshot
// encodings.
func (c *CLI) exportCommand() *cobra.Command {
	var output, format string

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Re-encode a graph snapshot as JSON, TOML or YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := exportFormat(format, output)
			if err != nil {
				return err
			}
			g, err := loadGraph(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := pkgio.Write(g, &buf, f); err != nil {
				return coded(err, "encode %s", f)
			}
			if output == "" {
				_, err := cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			if err := apperr.ValidateOutputPath(output); err != nil {
				return err
			}
			if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
				return apperr.Wrap(apperr.ErrCodeIO, err, "write %s", output)
			}
			printSuccess("Exported %s snapshot", f)
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "snapshot format: "+formatList()+" (default from --output extension, else json)")
	return cmd
}

// exportFormat picks the snapshot encoding: the explicit flag wins, then the
// output extension, then JSON.
func exportFormat(flag, output string) (pkgio.Format, error) {
	if flag != "" {
		f, err := pkgio.ParseFormat(flag)
		if err != nil {
			return "", apperr.New(apperr.ErrCodeInvalidFormat, "invalid format: %s (must be %s)", flag, formatList())
		}
		return f, nil
	}
	if output != "" {
		f, err := pkgio.FormatFromPath(output)
		if err != nil {
			return "", apperr.New(apperr.ErrCodeInvalidFormat, "cannot infer format from %s, use --format", output)
		}
		return f, nil
	}
	return pkgio.FormatJSON, nil
}

func formatList() string {
	names := make([]string, len(pkgio.Formats))
	for i, f := range pkgio.Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

