// Package cmd contains the commands for the node client CLI.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var url string

var rootCmd = &cobra.Command{
	Use:   "chainctl",
	Short: "A client for the blockchain node.",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&url, "url", "u", "http://localhost:8080", "Url of the node.")
}

// Execute runs the selected command against the node.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
