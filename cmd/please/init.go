package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	internalconfig "github.com/pleaselabs/please/internal/config"
	"github.com/pleaselabs/please/internal/git"
	"github.com/pleaselabs/please/internal/tui"
	pkgConfig "github.com/pleaselabs/please/pkg/config"
)

var (
	initLanguage  string
	initNoReview  bool
	initNoIssues  bool
	initForceFlag bool
	initNoTUIFlag bool
	initYesFlag   bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize please configuration",
	Long: `Initialize the .please/config.yml configuration file at the repository root.

By default an interactive form asks for the bot language and whether to
enable code review and the issue workflow. Use --yes to skip the form and
take the flag values as-is.

Use --force to overwrite an existing configuration file.
Use --no-tui to use simple prompts instead of the interactive TUI.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVarP(
		&initLanguage,
		"language",
		"l",
		string(pkgConfig.DefaultLanguage),
		`Bot output language ("ko" or "en")`,
	)

	initCmd.Flags().BoolVar(
		&initNoReview,
		"no-code-review",
		false,
		"Disable code review in the generated config",
	)

	initCmd.Flags().BoolVar(
		&initNoIssues,
		"no-issue-workflow",
		false,
		"Disable the issue workflow in the generated config",
	)

	initCmd.Flags().BoolVarP(
		&initForceFlag,
		"force",
		"f",
		false,
		"Overwrite existing configuration file",
	)

	initCmd.Flags().BoolVar(
		&initNoTUIFlag,
		"no-tui",
		false,
		"Use simple prompts instead of interactive TUI",
	)

	initCmd.Flags().BoolVarP(
		&initYesFlag,
		"yes",
		"y",
		false,
		"Skip the form and generate from flags",
	)
}

func runInit(_ *cobra.Command, _ []string) error {
	rootPath, err := repositoryRoot()
	if err != nil {
		return err
	}

	opts, err := initOptions()
	if err != nil {
		return err
	}

	writer := internalconfig.NewWriter(rootPath)

	path, err := writer.Write(opts, initForceFlag)
	if err != nil {
		if errors.Is(err, internalconfig.ErrConfigExists) {
			return errors.WithHint(err, "use --force to overwrite")
		}

		return err
	}

	fmt.Printf("✓ Configuration written to %s\n", path)

	return nil
}

// initOptions resolves generator options from flags or the interactive form.
func initOptions() (internalconfig.GenerateOptions, error) {
	if initYesFlag {
		return flagOptions()
	}

	ui := tui.NewWithFallback(initNoTUIFlag)

	opts, err := ui.RunInitForm(tui.InitFormOptions{
		DefaultLanguage: initLanguage,
	})
	if err != nil {
		return internalconfig.GenerateOptions{}, errors.Wrap(err, "configuration form failed")
	}

	return opts, nil
}

// flagOptions builds generator options from the init flags alone.
func flagOptions() (internalconfig.GenerateOptions, error) {
	language, err := pkgConfig.ParseLanguage(initLanguage)
	if err != nil {
		return internalconfig.GenerateOptions{}, err
	}

	enableReview := !initNoReview
	enableIssues := !initNoIssues

	return internalconfig.GenerateOptions{
		Language:            &language,
		EnableCodeReview:    &enableReview,
		EnableIssueWorkflow: &enableIssues,
	}, nil
}

// repositoryRoot finds the enclosing repository root, falling back to the
// working directory outside a repository.
func repositoryRoot() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "failed to get working directory")
	}

	root, err := git.DiscoverRoot(wd)
	if err != nil {
		if errors.Is(err, git.ErrNotRepository) {
			return wd, nil
		}

		return "", err
	}

	return root, nil
}
