package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wenlaunch/proposal-backend/config"
	"github.com/wenlaunch/proposal-backend/internal/logging"
	"github.com/wenlaunch/proposal-backend/internal/proposal/domain"
	"github.com/wenlaunch/proposal-backend/internal/proposal/llm"
	"github.com/wenlaunch/proposal-backend/internal/proposal/render"
	"github.com/wenlaunch/proposal-backend/internal/proposal/service"
	"github.com/wenlaunch/proposal-backend/internal/settings"
)

var generateCmd = &cobra.Command{
	Use:   "generate <transcript-file>",
	Short: "Run the full pipeline: analyze, assemble, and optionally render",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logger := logging.New(cfg.App.LogLevel, cfg.App.Environment)
		defer logger.Sync()

		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		if strings.TrimSpace(string(data)) == "" {
			return fmt.Errorf("transcript file is empty")
		}

		notes, _ := cmd.Flags().GetString("notes")
		total, _ := cmd.Flags().GetFloat64("total")
		wantPDF, _ := cmd.Flags().GetBool("pdf")
		inputPath, _ := cmd.Flags().GetString("input")

		var renderer render.Renderer
		if cfg.Render.ConverterBin != "" {
			renderer = render.NewCommandRenderer(cfg.Render.ConverterBin)
		}
		svc := service.NewProposalService(llm.NewClient(cfg.Anthropic), renderer, cfg.Render.OutputDir, cfg.Render.LogoPath, logger)

		var input *domain.ProposalInput
		if inputPath != "" {
			// Reuse a previously saved analysis instead of calling the model.
			saved, err := os.ReadFile(inputPath)
			if err != nil {
				return err
			}
			input = &domain.ProposalInput{}
			if err := json.Unmarshal(saved, input); err != nil {
				return err
			}
		} else {
			input, err = svc.Analyze(cmd.Context(), string(data), notes)
			if err != nil {
				return err
			}
		}

		biz, err := settings.NewStore(cfg.Render.SettingsPath).Load()
		if err != nil {
			return err
		}

		result, err := svc.Generate(cmd.Context(), input, biz, total, wantPDF)
		if err != nil {
			return err
		}

		fmt.Println("Markdown:", result.MarkdownPath)
		if result.PDFPath != "" {
			fmt.Println("PDF:", result.PDFPath)
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().String("notes", "", "additional notes appended to the analysis prompt")
	generateCmd.Flags().Float64("total", 5000, "total project investment in USD")
	generateCmd.Flags().Bool("pdf", false, "convert the proposal to PDF")
	generateCmd.Flags().String("input", "", "path to a saved analysis JSON (skips the model call)")
	rootCmd.AddCommand(generateCmd)
}
