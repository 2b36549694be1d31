package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/disruptops/cognitocache/internal/config"
	"github.com/disruptops/cognitocache/internal/core"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect and manage the token cache",
}

func init() {
	rootCmd.AddCommand(cacheCmd)
}

// inspectableCache is implemented by the built-in cache backends.
// The resolver itself only needs core.Cache; listing and flushing are
// CLI conveniences.
type inspectableCache interface {
	core.Cache
	Entries(ctx context.Context) (map[string]string, error)
	Clear(ctx context.Context) (int, error)
}

func getInspectableCache() (inspectableCache, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	store, err := cfg.BuildCache()
	if err != nil {
		return nil, fmt.Errorf("building cache: %w", err)
	}
	inspectable, ok := store.(inspectableCache)
	if !ok {
		return nil, fmt.Errorf("cache backend '%s' does not support inspection", cfg.Cache.Type)
	}
	return inspectable, nil
}
