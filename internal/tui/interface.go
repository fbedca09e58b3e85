// Package tui provides terminal user interface components.
package tui

import (
	internalconfig "github.com/pleaselabs/please/internal/config"
)

// UI defines the interface for terminal user interface operations.
// This interface abstracts the TUI implementation to allow for both
// interactive (huh) and fallback (simple prompt) implementations.
type UI interface {
	// RunInitForm runs the configuration form and returns the generator
	// options it produced.
	RunInitForm(opts InitFormOptions) (internalconfig.GenerateOptions, error)

	// IsInteractive returns true if running in an interactive terminal.
	IsInteractive() bool
}

// InitFormOptions contains options for the init form.
type InitFormOptions struct {
	// DefaultLanguage preselects the language choice.
	DefaultLanguage string
}

// initFormResult holds the raw answers from the form.
type initFormResult struct {
	language            string
	enableCodeReview    bool
	enableIssueWorkflow bool
}
