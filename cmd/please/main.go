// Package main provides the CLI entry point for please.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	os.Exit(mainWithExitCode())
}

func mainWithExitCode() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		return 1
	}

	return 0
}

var rootCmd = &cobra.Command{
	Use:   "please",
	Short: "Repository automation bot configuration tool",
	Long: `please manages the .please/config.yml configuration that governs the
bot's code review and issue workflow behavior in a repository.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		checkVersionFlag()
	},
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
}
