// Package main provides the entry point for the resume editing assistant CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_editor",
	Short: "AI resume editing assistant",
	Long:  "Resume Editor applies natural-language edit requests to a resume document through a reviewed tool-use loop, producing a batch of suggested changes instead of silently rewriting the file.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
