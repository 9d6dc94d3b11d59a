package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-edit-agent/internal/observability"
	"github.com/jonathan/resume-edit-agent/internal/tools"
)

var searchCommand = &cobra.Command{
	Use:   "search <query>",
	Short: "Search a resume for text",
	Long:  "Performs a case-insensitive substring search over every field and bullet of the resume and prints the matching locations.",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearchCmd,
}

var searchResume string

func init() {
	searchCommand.Flags().StringVarP(&searchResume, "resume", "r", "", "Path to resume JSON file")
	_ = searchCommand.MarkFlagRequired("resume")

	rootCmd.AddCommand(searchCommand)
}

func runSearchCmd(_ *cobra.Command, args []string) error {
	doc, err := loadResume(searchResume)
	if err != nil {
		return err
	}

	result := tools.Search(doc, args[0])
	observability.NewPrinter(os.Stdout).PrintSearchResults(result)

	if result.Count == 0 {
		fmt.Fprintf(os.Stdout, "No matches for %q.\n", args[0])
	}
	return nil
}
