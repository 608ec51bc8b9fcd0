package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/aigkit/pkg/aig"
	"github.com/matzehuels/aigkit/pkg/aig/report"
	apperr "github.com/matzehuels/aigkit/pkg/errors"
)

// reportCommand builds a command that loads the snapshot named by its first
// argument and runs fn against a reporter on the command's stdout.
func reportCommand(use, short string, nargs int, fn func(r *report.Reporter, g *aig.Graph, args []string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(nargs),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			r := report.New(g, cmd.OutOrStdout())
			return coded(fn(r, g, args[1:]), "%s", cmd.Name())
		},
	}
}

func (c *CLI) summaryCommand() *cobra.Command {
	return reportCommand("summary [file]", "Print circuit statistics", 1,
		func(r *report.Reporter, _ *aig.Graph, _ []string) error { return r.Summary() })
}

func (c *CLI) netlistCommand() *cobra.Command {
	return reportCommand("netlist [file]", "Print the gates reachable from the outputs in depth-first order", 1,
		func(r *report.Reporter, _ *aig.Graph, _ []string) error { return r.Netlist() })
}

func (c *CLI) pisCommand() *cobra.Command {
	return reportCommand("pis [file]", "List the primary inputs", 1,
		func(r *report.Reporter, _ *aig.Graph, _ []string) error { return r.PIs() })
}

func (c *CLI) posCommand() *cobra.Command {
	return reportCommand("pos [file]", "List the primary outputs", 1,
		func(r *report.Reporter, _ *aig.Graph, _ []string) error { return r.POs() })
}

func (c *CLI) floatingCommand() *cobra.Command {
	return reportCommand("floating [file]", "List gates with floating fanins and gates defined but not used", 1,
		func(r *report.Reporter, _ *aig.Graph, _ []string) error { return r.FloatGates() })
}

func (c *CLI) gateCommand() *cobra.Command {
	return reportCommand("gate [file] [id]", "Print one gate with its provenance", 2,
		func(r *report.Reporter, _ *aig.Graph, args []string) error {
			id, err := apperr.ParseGateID(args[0])
			if err != nil {
				return err
			}
			return r.Gate(id)
		})
}

func (c *CLI) faninCommand() *cobra.Command {
	return c.coneCommand("fanin", "Print the fanin cone of a gate", (*report.Reporter).Fanin)
}

func (c *CLI) fanoutCommand() *cobra.Command {
	return c.coneCommand("fanout", "Print the fanout cone of a gate", (*report.Reporter).Fanout)
}

// coneCommand builds fanin/fanout. The depth defaults to report.level from
// the configuration and is validated before the reporter sees it.
func (c *CLI) coneCommand(name, short string, walk func(*report.Reporter, int, int) error) *cobra.Command {
	var level int
	cmd := reportCommand(name+" [file] [id]", short, 2,
		func(r *report.Reporter, _ *aig.Graph, args []string) error {
			id, err := apperr.ParseGateID(args[0])
			if err != nil {
				return err
			}
			if err := apperr.ValidateLevel(level); err != nil {
				return err
			}
			return walk(r, id, level)
		})
	cmd.Flags().IntVarP(&level, "level", "l", 0, "maximum depth (default from report.level)")
	cmd.PreRun = func(cmd *cobra.Command, args []string) {
		if !cmd.Flags().Changed("level") {
			level = c.cfg.Report.Level
		}
	}
	return cmd
}
