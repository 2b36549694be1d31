package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/disruptops/cognitocache/internal/cognito"
	"github.com/disruptops/cognitocache/internal/config"
	"github.com/disruptops/cognitocache/internal/core"
	"github.com/disruptops/cognitocache/internal/resolver"
	"github.com/disruptops/cognitocache/pkg/client"
)

var resolveCreds core.CredentialSet

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve a bearer token for a Cognito user",
	Long: `Returns a bearer token for the given credential set, serving it from
the cache when a previously fetched token is still valid.

The printed string is either a valid bearer token or a human-readable
authentication failure message; no explicit success flag is emitted.

Modes:
  1. Local (default): authenticates against Cognito directly.
  2. Remote (--server): asks a running cognitocache server.`,
	Example: `  # Access token, file-backed cache
  cognitocache resolve -u jdoe -p secret --region us-east-1 \
    --client-id abc123 --user-pool-id us-east-1_XYZ

  # Id token via a remote server
  cognitocache resolve --server http://localhost:8080 -u jdoe -p secret \
    --region us-east-1 --client-id abc123 --user-pool-id us-east-1_XYZ \
    --token-type id`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if addr := viper.GetString(ServerAddrKey); addr != "" {
			log.Debug().Msg("Running 'resolve' command in remote mode")
			return resolveRemote(cmd, addr)
		}
		log.Debug().Msg("Running 'resolve' command in local mode")
		return resolveLocally(cmd)
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().StringVarP(&resolveCreds.Username, "username", "u", "", "Cognito user name")
	resolveCmd.Flags().StringVarP(&resolveCreds.Password, "password", "p", "", "Password")
	resolveCmd.Flags().StringVar(&resolveCreds.Region, "region", "", "AWS region of the user pool")
	resolveCmd.Flags().StringVar(&resolveCreds.ClientID, "client-id", "", "Cognito app client id")
	resolveCmd.Flags().StringVar(&resolveCreds.UserPoolID, "user-pool-id", "", "Cognito user pool id")
	resolveCmd.Flags().StringVar((*string)(&resolveCreds.TokenType), "token-type", "",
		"Token representation: access, id or raw_request (default access)")
	resolveCmd.Flags().StringVar(&resolveCreds.ClientSecret, "client-secret", "", "Optional app client secret")
}

func resolveLocally(cmd *cobra.Command) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg.ApplyDefaults(&resolveCreds)

	store, err := cfg.BuildCache()
	if err != nil {
		return fmt.Errorf("building cache: %w", err)
	}

	res := resolver.New(store, cognito.NewClient())
	result, err := res.ResolveDetailed(cmd.Context(), resolveCreds)
	if err != nil {
		return err
	}

	log.Debug().
		Str("source", string(result.Source)).
		Bool("failed", result.Failed).
		Msg("resolved")

	fmt.Println(result.Value)
	return nil
}

func resolveRemote(cmd *cobra.Command, addr string) error {
	cli := client.New(addr)

	result, correlation, err := cli.ResolveToken(cmd.Context(), resolveCreds)
	if err != nil {
		return err
	}

	log.Debug().
		Str("source", string(result.Source)).
		Bool("failed", result.Failed).
		Str("correlation", correlation).
		Msg("resolved remotely")

	fmt.Println(result.Value)
	return nil
}
