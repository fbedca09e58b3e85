package tui

import (
	"github.com/charmbracelet/huh"

	internalconfig "github.com/pleaselabs/please/internal/config"
	pkgConfig "github.com/pleaselabs/please/pkg/config"
)

// HuhUI implements UI using charmbracelet/huh.
type HuhUI struct{}

// NewHuhUI creates a new HuhUI instance.
func NewHuhUI() *HuhUI {
	return &HuhUI{}
}

// IsInteractive returns true as HuhUI is for interactive terminals.
func (*HuhUI) IsInteractive() bool {
	return true
}

// RunInitForm runs the configuration form using huh.
func (*HuhUI) RunInitForm(opts InitFormOptions) (internalconfig.GenerateOptions, error) {
	result := initFormResult{
		language:            defaultLanguage(opts),
		enableCodeReview:    true,
		enableIssueWorkflow: true,
	}

	form := buildInitForm(&result)

	if err := form.Run(); err != nil {
		return internalconfig.GenerateOptions{}, err
	}

	return optionsFromResult(&result), nil
}

// buildInitForm creates the huh form.
func buildInitForm(result *initFormResult) *huh.Form {
	languageSelect := huh.NewSelect[string]().
		Title("Bot Language").
		Description("Language used for review comments, summaries, and issue replies.").
		Options(
			huh.NewOption("한국어 (ko)", string(pkgConfig.LanguageKorean)),
			huh.NewOption("English (en)", string(pkgConfig.LanguageEnglish)),
		).
		Value(&result.language)

	reviewConfirm := huh.NewConfirm().
		Title("Enable Code Review").
		Description("Automatically review newly opened pull requests.").
		Affirmative("Yes").
		Negative("No").
		Value(&result.enableCodeReview)

	workflowConfirm := huh.NewConfirm().
		Title("Enable Issue Workflow").
		Description("Triage, investigate, and fix issues automatically.").
		Affirmative("Yes").
		Negative("No").
		Value(&result.enableIssueWorkflow)

	return huh.NewForm(
		huh.NewGroup(languageSelect, reviewConfirm, workflowConfirm),
	).
		WithTheme(huh.ThemeCharm()).
		WithShowHelp(true).
		WithKeyMap(huh.NewDefaultKeyMap())
}

// defaultLanguage resolves the preselected language for the form.
func defaultLanguage(opts InitFormOptions) string {
	if lang := pkgConfig.Language(opts.DefaultLanguage); lang.IsValid() {
		return string(lang)
	}

	return string(pkgConfig.DefaultLanguage)
}

// optionsFromResult converts the form answers to generator options.
func optionsFromResult(result *initFormResult) internalconfig.GenerateOptions {
	language := pkgConfig.Language(result.language)

	return internalconfig.GenerateOptions{
		Language:            &language,
		EnableCodeReview:    &result.enableCodeReview,
		EnableIssueWorkflow: &result.enableIssueWorkflow,
	}
}
