package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wordsearch/pkg/cache"
	"github.com/matzehuels/wordsearch/pkg/config"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the filtered dictionary cache",
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/wordsearch/config.toml)")

	cmd.AddCommand(c.cacheClearCommand(&configPath))
	cmd.AddCommand(c.cachePathCommand(&configPath))

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached dictionaries",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := configuredCacheDir(*configPath)
			if err != nil {
				return err
			}

			if _, err := os.Stat(dir); os.IsNotExist(err) {
				printInfo("Cache is empty")
				return nil
			}

			fc, err := cache.NewFileCache(dir)
			if err != nil {
				return fmt.Errorf("open cache: %w", err)
			}
			n, err := fc.(*cache.FileCache).Clear()
			if err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}

			printSuccess("Cleared %d cached entries", n)
			printDetail("Directory: %s", dir)
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := configuredCacheDir(*configPath)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}
}

// configuredCacheDir resolves the cache directory, honouring cache.dir from
// the config file.
func configuredCacheDir(configPath string) (string, error) {
	f, err := loadConfigFile(configPath)
	if err != nil {
		return "", err
	}
	var cfg config.Cache
	if f != nil {
		cfg = f.Cache
	}
	dir, err := cacheDir(cfg)
	if err != nil {
		return "", fmt.Errorf("get cache dir: %w", err)
	}
	return dir, nil
}
