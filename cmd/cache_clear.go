package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var cacheClearCmd = &cobra.Command{
	Use:     "clear",
	Short:   "Remove all entries from the token cache",
	Example: `  cognitocache cache clear`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := getInspectableCache()
		if err != nil {
			return err
		}

		removed, err := store.Clear(cmd.Context())
		if err != nil {
			return fmt.Errorf("clearing cache: %w", err)
		}

		log.Info().Msgf("Removed %d cache entr(ies)", removed)
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheClearCmd)
}
