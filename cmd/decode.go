package cmd

import (
	"fmt"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/disruptops/cognitocache/internal/token"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <token>",
	Short: "Decode a token and show its claims",
	Long: `Decodes the header and payload segments of a token without verifying
any signature, and reports whether the token is currently usable.`,
	Example: `  cognitocache decode eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.eyJlcnJvciI6Im5vcGUifQ`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		header, err := token.DecodeHeader(args[0])
		if err != nil {
			return fmt.Errorf("decoding header: %w", err)
		}
		payload, err := token.Decode(args[0])
		if err != nil {
			return fmt.Errorf("decoding payload: %w", err)
		}

		bold := color.New(color.Bold).SprintFunc()

		fmt.Println(bold("Header:"))
		spew.Dump(*header)
		fmt.Println(bold("Payload:"))
		spew.Dump(*payload)

		if token.Valid(payload, time.Now()) {
			fmt.Println(color.GreenString("Token is currently valid"))
		} else {
			fmt.Println(color.RedString("Token is expired or not yet valid"))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
