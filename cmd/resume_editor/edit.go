package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-edit-agent/internal/config"
	"github.com/jonathan/resume-edit-agent/internal/editor"
	"github.com/jonathan/resume-edit-agent/internal/llm"
	"github.com/jonathan/resume-edit-agent/internal/observability"
	"github.com/jonathan/resume-edit-agent/internal/orchestrator"
)

var editCommand = &cobra.Command{
	Use:   "edit",
	Short: "Apply a natural-language edit request to a resume",
	Long: `Runs one edit request against the resume through the tool-use loop and
prints the suggested change batch. The resume file is only rewritten when
--apply is given.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runEditCmd,
}

var (
	editConfigPath    string
	editResume        string
	editMessage       string
	editSelection     string
	editProvider      string
	editAPIKey        string
	editModel         string
	editMaxIterations int
	editApply         bool
	editVerbose       bool
)

func init() {
	editCommand.Flags().StringVar(&editConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	editCommand.Flags().StringVarP(&editResume, "resume", "r", "", "Path to resume JSON file")
	editCommand.Flags().StringVarP(&editMessage, "message", "m", "", "Edit request, e.g. \"shorten my first experience bullet\"")
	editCommand.Flags().StringVarP(&editSelection, "selection", "s", "", "Selected resume text to scope the edit to (optional)")
	editCommand.Flags().StringVar(&editProvider, "provider", "", "Model provider: gemini or anthropic (default gemini)")
	editCommand.Flags().StringVar(&editAPIKey, "api-key", "", "API key (optional, defaults to GEMINI_API_KEY / ANTHROPIC_API_KEY env var)")
	editCommand.Flags().StringVar(&editModel, "model", "", "Model name override")
	editCommand.Flags().IntVar(&editMaxIterations, "max-iterations", 0, "Maximum tool-use iterations per request")
	editCommand.Flags().BoolVar(&editApply, "apply", false, "Accept the suggested changes and rewrite the resume file")
	editCommand.Flags().BoolVarP(&editVerbose, "verbose", "v", false, "Print detailed progress information")

	rootCmd.AddCommand(editCommand)
}

func runEditCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	var cfg config.Config
	if editConfigPath != "" {
		loadedCfg, err := config.LoadConfig(editConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
	}

	if cmd.Flags().Changed("resume") {
		cfg.Resume = editResume
	}
	if cmd.Flags().Changed("provider") {
		cfg.Provider = editProvider
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = editAPIKey
	}
	if cmd.Flags().Changed("model") {
		cfg.Model = editModel
	}
	if cmd.Flags().Changed("max-iterations") {
		cfg.MaxIterations = editMaxIterations
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = editVerbose
	}

	// Apply defaults for unset values
	defaults := config.Config{
		Provider:      "gemini",
		MaxIterations: orchestrator.DefaultMaxIterations,
	}
	cfg = cfg.MergeWithDefaults(defaults)

	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required (via flag or config)")
	}
	if editMessage == "" {
		return fmt.Errorf("--message is required")
	}

	doc, err := loadResume(cfg.Resume)
	if err != nil {
		return err
	}

	client, err := newClient(ctx, cfg.Provider, cfg.APIKey, cfg.Model)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	session := editor.NewSession(client, doc, llm.TierAdvanced)
	session.MaxIterations = cfg.MaxIterations

	var onProgress orchestrator.ProgressCallback
	if cfg.Verbose {
		onProgress = printProgress
	}

	outcome, err := session.Propose(ctx, editMessage, editSelection, onProgress)
	if err != nil {
		return err
	}

	if outcome.Message != "" {
		fmt.Fprintf(os.Stdout, "%s\n\n", outcome.Message)
	}
	if outcome.BudgetExhausted {
		fmt.Fprintln(os.Stdout, "Note: the edit loop hit its iteration limit; changes below may be partial.")
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintChangeBatch(outcome.SuggestedChanges)

	if outcome.SuggestedChanges == nil {
		return nil
	}

	if !editApply {
		fmt.Fprintln(os.Stdout, "Re-run with --apply to write these changes to the file.")
		return nil
	}

	if err := session.Accept(); err != nil {
		return err
	}
	if err := writeResume(cfg.Resume, session.Document()); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Updated %s\n", cfg.Resume)
	return nil
}

func printProgress(event orchestrator.ProgressEvent) {
	switch event.Kind {
	case "model_turn":
		fmt.Fprintf(os.Stderr, "[%d] model turn\n", event.Iteration)
	case "tool_call":
		fmt.Fprintf(os.Stderr, "[%d] -> %s\n", event.Iteration, event.Tool)
	case "tool_result":
		fmt.Fprintf(os.Stderr, "[%d] <- %s: %s\n", event.Iteration, event.Tool, event.Message)
	}
}
