package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/aigkit/internal/config"
	apperr "github.com/matzehuels/aigkit/pkg/errors"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the render cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand. It clears whichever
// backend cache.backend selects.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached renders",
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.cfg.Cache.Backend == config.BackendNone {
				printInfo("Caching is disabled")
				return nil
			}
			store := c.openCache(cmd.Context())
			defer store.Close()

			if err := store.Clear(cmd.Context()); err != nil {
				return apperr.Wrap(apperr.ErrCodeIO, err, "clear %s cache", c.cfg.Cache.Backend)
			}
			printSuccess("Cleared %s cache", c.cfg.Cache.Backend)
			if c.cfg.Cache.Backend == config.BackendFile {
				if dir, err := c.cacheDir(); err == nil {
					printDetail("Directory: %s", dir)
				}
			}
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the file cache directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := c.cacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}
}
