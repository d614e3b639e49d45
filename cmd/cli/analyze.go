package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wenlaunch/proposal-backend/config"
	"github.com/wenlaunch/proposal-backend/internal/proposal/llm"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <transcript-file>",
	Short: "Analyze a transcript and print the extracted proposal input",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		if strings.TrimSpace(string(data)) == "" {
			return fmt.Errorf("transcript file is empty")
		}

		notes, _ := cmd.Flags().GetString("notes")

		input, err := llm.NewClient(cfg.Anthropic).Extract(cmd.Context(), string(data), notes)
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(input, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	analyzeCmd.Flags().String("notes", "", "additional notes appended to the analysis prompt")
	rootCmd.AddCommand(analyzeCmd)
}
