// Package main is the offline CLI for the proposal pipeline: analyze a
// transcript file and generate a proposal without running the server.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "proposalctl",
	Short: "Generate web-design proposals from meeting transcripts",
	Long: `proposalctl runs the proposal pipeline from the command line: it analyzes
a meeting transcript with the configured completion service and assembles a
client-facing proposal document, optionally converting it to PDF.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
