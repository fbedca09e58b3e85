package main

import (
	"fmt"

	"github.com/spf13/cobra"

	internalconfig "github.com/pleaselabs/please/internal/config"
)

var checkPathFlag string

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the repository configuration",
	Long: `Validate the .please/config.yml file at the repository root.

Reports every validation error with the path of the offending key. A
missing configuration file is valid: the defaults apply.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(
		&checkPathFlag,
		"path",
		"p",
		"",
		"Repository root to check (defaults to the enclosing repository)",
	)
}

func runCheck(_ *cobra.Command, _ []string) error {
	rootPath := checkPathFlag
	if rootPath == "" {
		var err error

		rootPath, err = repositoryRoot()
		if err != nil {
			return err
		}
	}

	loader := internalconfig.NewLoader()

	if !loader.HasConfigFile(rootPath) {
		fmt.Printf("No configuration file at %s, defaults apply\n", internalconfig.ConfigPath(rootPath))

		return nil
	}

	cfg, err := loader.LoadFromFile(rootPath)
	if err != nil {
		return err
	}

	fmt.Printf("✓ %s is valid\n", internalconfig.ConfigPath(rootPath))
	fmt.Printf("  language:       %s\n", cfg.GetLanguage())
	fmt.Printf("  code review:    %s\n", enabledString(cfg.GetCodeReview().IsEnabled()))
	fmt.Printf("  issue workflow: %s\n", enabledString(cfg.GetIssueWorkflow().IsEnabled()))
	fmt.Printf("  workspace:      %s\n", enabledString(cfg.IsCodeWorkspaceEnabled()))

	return nil
}

func enabledString(enabled bool) string {
	if enabled {
		return "enabled"
	}

	return "disabled"
}
