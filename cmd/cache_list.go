package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/disruptops/cognitocache/internal/core"
	"github.com/disruptops/cognitocache/internal/token"
)

var cacheListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cached token entries",
	Long: `Shows every entry in the configured cache backend together with its
decoded expiry state. Passwords and client secrets embedded in the
cache keys are never printed.`,
	Example: `  cognitocache cache list`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := getInspectableCache()
		if err != nil {
			return err
		}

		entries, err := store.Entries(cmd.Context())
		if err != nil {
			return fmt.Errorf("listing cache entries: %w", err)
		}

		if len(entries) == 0 {
			log.Info().Msg("Cache is empty")
			return nil
		}
		log.Debug().Msgf("Found %d cache entr(ies)", len(entries))

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{
			"User", "Region", "Pool", "Type", "Kind", "State", "Expires",
		})

		green := color.New(color.FgGreen).SprintFunc()
		red := color.New(color.FgRed).SprintFunc()
		now := time.Now()

		for key, value := range entries {
			creds, ok := core.ParseCacheKey(key)
			if !ok {
				creds = core.CredentialSet{Username: "(unknown key)"}
			}

			kind := "token"
			state := green("valid")
			expires := "never"

			payload, err := token.Decode(value)
			switch {
			case err != nil:
				kind = "(undecodable)"
				state = red("invalid")
				expires = "-"
			default:
				if payload.Error != "" {
					kind = "error"
				}
				if !token.Valid(payload, now) {
					state = red("expired")
				}
				if payload.Exp != nil {
					expires = payload.Exp.Format(time.RFC3339)
				}
			}

			t.AppendRow(table.Row{
				creds.Username,
				creds.Region,
				creds.UserPoolID,
				string(creds.TokenType),
				kind,
				state,
				expires,
			})
		}

		t.Render()
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheListCmd)
}
