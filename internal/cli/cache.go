package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphstab/pkg/cache"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the result cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached generators, groups and circuits",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ch, err := c.newCache(ctx)
			if err != nil {
				return err
			}
			defer ch.Close()

			cl, ok := ch.(cache.Clearer)
			if !ok {
				printInfo("Caching is disabled, nothing to clear")
				return nil
			}
			if err := cl.Clear(ctx); err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}

			printSuccess("Cache cleared")
			printCacheLocation(ch)
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := c.cacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			fmt.Fprintln(stdout, dir)
			return nil
		},
	}
}

// printCacheLocation describes where ch keeps its entries.
func printCacheLocation(ch cache.Cache) {
	switch ch := ch.(type) {
	case *cache.FileCache:
		printDetail("Directory: %s", ch.Dir())
	case *cache.RedisCache:
		printDetail("Redis: %s", ch.Addr())
	}
}
