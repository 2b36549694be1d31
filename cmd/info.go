package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/disruptops/cognitocache/internal/buildinfo"
	"github.com/disruptops/cognitocache/pkg/client"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show build information",
	Long:  `Shows the local build information, or the remote server's when --server is set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := buildinfo.GetBuildInfo()

		if addr := viper.GetString(ServerAddrKey); addr != "" {
			remote, _, err := client.New(addr).Info(cmd.Context())
			if err != nil {
				return err
			}
			info = *remote
		}

		bold := color.New(color.Bold).SprintFunc()
		fmt.Printf("%s %s (commit: %s)\n", bold(info.Service), info.Version, info.CommitHash)
		if info.About != "" {
			fmt.Println(info.About)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
