package tui

import (
	"fmt"

	internalconfig "github.com/pleaselabs/please/internal/config"
	"github.com/pleaselabs/please/internal/prompt"
	pkgConfig "github.com/pleaselabs/please/pkg/config"
)

// FallbackUI implements UI using simple stdin/stdout prompts.
// This is used when the terminal is not interactive (CI, piped input, etc.).
type FallbackUI struct {
	prompter prompt.Prompter
}

// NewFallbackUI creates a new FallbackUI instance.
func NewFallbackUI() *FallbackUI {
	return &FallbackUI{
		prompter: prompt.NewStdPrompter(),
	}
}

// NewFallbackUIWithPrompter creates a FallbackUI with a custom prompter.
func NewFallbackUIWithPrompter(p prompt.Prompter) *FallbackUI {
	return &FallbackUI{
		prompter: p,
	}
}

// IsInteractive returns false as FallbackUI is for non-interactive terminals.
func (*FallbackUI) IsInteractive() bool {
	return false
}

// RunInitForm runs the configuration form using simple prompts.
func (f *FallbackUI) RunInitForm(opts InitFormOptions) (internalconfig.GenerateOptions, error) {
	result := initFormResult{}

	fmt.Println("please configuration setup")
	fmt.Println()

	language, err := f.prompter.Select(
		"Bot language",
		[]string{string(pkgConfig.LanguageKorean), string(pkgConfig.LanguageEnglish)},
		defaultLanguage(opts),
	)
	if err != nil {
		return internalconfig.GenerateOptions{}, err
	}

	result.language = language

	enableReview, err := f.prompter.Confirm("Enable code review", true)
	if err != nil {
		return internalconfig.GenerateOptions{}, err
	}

	result.enableCodeReview = enableReview

	enableWorkflow, err := f.prompter.Confirm("Enable issue workflow", true)
	if err != nil {
		return internalconfig.GenerateOptions{}, err
	}

	result.enableIssueWorkflow = enableWorkflow

	return optionsFromResult(&result), nil
}
