package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/aigkit/pkg/aig"
	"github.com/matzehuels/aigkit/pkg/cache"
	apperr "github.com/matzehuels/aigkit/pkg/errors"
	"github.com/matzehuels/aigkit/pkg/observability"
	"github.com/matzehuels/aigkit/pkg/render/nodelink"
)

const (
	formatDOT = "dot"
	formatSVG = "svg"

	cacheKeyType = "render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output        string // output file; DOT defaults to stdout, SVG to <input>.svg
	format        string // "dot" or "svg"
	detailed      bool   // add names and line numbers to node labels
	reachableOnly bool   // draw only the reachable cone
	noCache       bool   // bypass the render cache
}

// renderCommand creates the render command for drawing a graph with Graphviz.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: formatSVG}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Draw a graph as Graphviz DOT or SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("detailed") {
				opts.detailed = c.cfg.Render.Detailed
			}
			if !cmd.Flags().Changed("reachable") {
				opts.reachableOnly = c.cfg.Render.ReachableOnly
			}
			if err := validateRenderFormat(opts.format); err != nil {
				return err
			}
			return c.runRender(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file")
	cmd.Flags().StringVar(&opts.format, "format", opts.format, "output format: svg (default), dot")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show names and source lines")
	cmd.Flags().BoolVar(&opts.reachableOnly, "reachable", false, "only draw gates reachable from the outputs")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the render cache")

	return cmd
}

func validateRenderFormat(format string) error {
	switch format {
	case formatDOT, formatSVG:
		return nil
	}
	return apperr.New(apperr.ErrCodeInvalidFormat, "invalid format: %s (must be 'svg' or 'dot')", format)
}

// outputPath derives the SVG path from the input when no output is given.
func outputPath(output, input, format string) string {
	if output != "" || format == formatDOT {
		return output
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + "." + format
}

func (c *CLI) runRender(cmd *cobra.Command, input string, opts *renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	g, err := loadGraph(ctx, input)
	if err != nil {
		return err
	}
	dot, err := nodelink.ToDOT(g, nodelink.Options{Detailed: opts.detailed, ReachableOnly: opts.reachableOnly})
	if err != nil {
		return coded(err, "build DOT")
	}

	data := []byte(dot)
	if opts.format == formatSVG {
		store := cache.NewNullCache()
		if !opts.noCache {
			store = c.openCache(ctx)
		}
		defer store.Close()

		data, err = c.renderSVG(ctx, store, dot)
		if err != nil {
			return err
		}
	}
	logger.Debugf("Generated %s: %d bytes", opts.format, len(data))

	path := outputPath(opts.output, input, opts.format)
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := apperr.ValidateOutputPath(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return apperr.Wrap(apperr.ErrCodeIO, err, "write %s", path)
	}
	printSuccess("Rendered %s", describe(g))
	printFile(path)
	return nil
}

// renderSVG returns the SVG for dot, consulting store first. Cache failures
// are logged and otherwise ignored.
func (c *CLI) renderSVG(ctx context.Context, store cache.Cache, dot string) ([]byte, error) {
	logger := loggerFromContext(ctx)
	key := cache.RenderKey(dot, formatSVG)

	if data, hit, err := store.Get(ctx, key); err != nil {
		logger.Warn("cache read failed", "err", err)
	} else if hit {
		logger.Debug("render cache hit", "key", key)
		observability.Cache().OnCacheHit(ctx, cacheKeyType)
		return data, nil
	}
	observability.Cache().OnCacheMiss(ctx, cacheKeyType)

	spinner := newSpinner(ctx, "Rendering SVG...")
	spinner.Start()
	start := time.Now()
	data, err := nodelink.RenderSVG(ctx, dot)
	observability.Pipeline().OnRender(ctx, formatSVG, len(data), time.Since(start), err)
	if err != nil {
		if spinner.Cancelled() {
			spinner.Stop()
			return nil, ctx.Err()
		}
		spinner.StopWithError("Graphviz failed")
		return nil, apperr.Wrap(apperr.ErrCodeInternal, err, "render SVG")
	}
	spinner.Stop()

	if err := store.Set(ctx, key, data, c.cfg.Cache.TTL); err != nil {
		logger.Warn("cache write failed", "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, cacheKeyType, len(data))
	}
	return data, nil
}

// describe summarizes a graph for status lines.
func describe(g *aig.Graph) string {
	return fmt.Sprintf("%d inputs, %d outputs, %d ands", len(g.Inputs()), len(g.Outputs()), g.NumAnds())
}
