package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-edit-agent/internal/observability"
	"github.com/jonathan/resume-edit-agent/internal/tools"
)

var statsCommand = &cobra.Command{
	Use:   "stats <resume.json> [more.json...]",
	Short: "Show structural statistics for one or more resumes",
	Long:  "Computes entry counts, bullet totals, word count, and a completeness assessment for each resume file. Files are processed concurrently and printed in argument order.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runStatsCmd,
}

func init() {
	rootCmd.AddCommand(statsCommand)
}

func runStatsCmd(_ *cobra.Command, args []string) error {
	results := make([]tools.Stats, len(args))

	var g errgroup.Group
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			doc, err := loadResume(path)
			if err != nil {
				return err
			}
			results[i] = tools.CollectStats(doc)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	for i, path := range args {
		if len(args) > 1 {
			fmt.Fprintf(os.Stdout, "%s\n", path)
		}
		printer.PrintStats(results[i])
	}
	return nil
}
