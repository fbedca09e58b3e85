// Package config provides configuration loading, validation, and generation
// for the please bot.
package config

import (
	"bytes"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/pleaselabs/please/internal/schema"
	"github.com/pleaselabs/please/pkg/config"
)

// yamlIndent is the indentation width of generated YAML.
const yamlIndent = 2

// GenerateOptions is the narrow input of the config generator. Unset fields
// leave the canonical default in place.
type GenerateOptions struct {
	// Language overrides the output language.
	Language *config.Language

	// EnableCodeReview disables code review when explicitly false. Any other
	// value, including absence, leaves review enabled.
	EnableCodeReview *bool

	// EnableIssueWorkflow disables the issue workflow when explicitly false.
	EnableIssueWorkflow *bool
}

// Generate builds a configuration from the canonical defaults with exactly
// the overrides the options carry. It cannot produce an invalid Config.
func Generate(opts GenerateOptions) *config.Config {
	cfg := DefaultConfig()

	if opts.Language != nil && opts.Language.IsValid() {
		cfg.Language = *opts.Language
	}

	if opts.EnableCodeReview != nil && !*opts.EnableCodeReview {
		disable := true
		cfg.CodeReview.Disable = &disable
	}

	if opts.EnableIssueWorkflow != nil && !*opts.EnableIssueWorkflow {
		disable := true
		cfg.IssueWorkflow.Disable = &disable
	}

	return cfg
}

// GenerateYAML builds a configuration and serializes it. Keys appear in
// schema declaration order, and the output parses and validates back into a
// Config deep-equal to the generated one.
func GenerateYAML(opts GenerateOptions) ([]byte, error) {
	cfg := Generate(opts)

	var buf bytes.Buffer

	buf.WriteString(schema.Directive())
	buf.WriteString("\n")

	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(yamlIndent)

	if err := encoder.Encode(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to encode config to YAML")
	}

	if err := encoder.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to finish YAML document")
	}

	return buf.Bytes(), nil
}
