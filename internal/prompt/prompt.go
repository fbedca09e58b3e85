// Package prompt provides utilities for interactive user prompts.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrInvalidInput is returned when the user provides input that cannot be
// interpreted.
var ErrInvalidInput = errors.New("invalid input")

// Prompter defines the interface for interactive prompts.
type Prompter interface {
	// Select prompts for one of the given choices.
	Select(prompt string, choices []string, defaultValue string) (string, error)

	// Confirm prompts for a yes/no confirmation.
	Confirm(prompt string, defaultValue bool) (bool, error)
}

// StdPrompter is the standard implementation of Prompter using stdin/stdout.
type StdPrompter struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewStdPrompter creates a new StdPrompter.
func NewStdPrompter() *StdPrompter {
	return &StdPrompter{
		reader: bufio.NewReader(os.Stdin),
		writer: os.Stdout,
	}
}

// NewPrompter creates a new Prompter with custom reader and writer (for testing).
func NewPrompter(reader io.Reader, writer io.Writer) *StdPrompter {
	return &StdPrompter{
		reader: bufio.NewReader(reader),
		writer: writer,
	}
}

// Select prompts for one of the given choices. Empty input picks the default.
func (p *StdPrompter) Select(prompt string, choices []string, defaultValue string) (string, error) {
	if _, err := fmt.Fprintf(
		p.writer,
		"%s (%s) [%s]: ",
		prompt,
		strings.Join(choices, "/"),
		defaultValue,
	); err != nil {
		return "", errors.Wrap(err, "failed to write prompt")
	}

	input, err := p.reader.ReadString('\n')
	if err != nil {
		return "", errors.Wrap(err, "failed to read input")
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return defaultValue, nil
	}

	for _, choice := range choices {
		if input == choice {
			return choice, nil
		}
	}

	return "", errors.Wrapf(ErrInvalidInput, "%q, expected one of %v", input, choices)
}

// Confirm prompts for a yes/no confirmation. Empty input picks the default.
func (p *StdPrompter) Confirm(prompt string, defaultValue bool) (bool, error) {
	hint := "y/N"
	if defaultValue {
		hint = "Y/n"
	}

	if _, err := fmt.Fprintf(p.writer, "%s [%s]: ", prompt, hint); err != nil {
		return false, errors.Wrap(err, "failed to write prompt")
	}

	input, err := p.reader.ReadString('\n')
	if err != nil {
		return false, errors.Wrap(err, "failed to read input")
	}

	switch strings.ToLower(strings.TrimSpace(input)) {
	case "":
		return defaultValue, nil
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, errors.Wrapf(ErrInvalidInput, "%q, expected y or n", input)
	}
}
