// Package config provides the configuration schema types for the please bot.
package config

import (
	"github.com/cockroachdb/errors"
	"github.com/invopop/jsonschema"
)

var (
	// ErrInvalidLanguage is returned when an invalid language value is provided.
	ErrInvalidLanguage = errors.New("invalid language")

	// ErrInvalidSeverity is returned when an invalid severity value is provided.
	ErrInvalidSeverity = errors.New("invalid severity")
)

// Language selects the language the bot uses for review comments, summaries,
// and issue replies.
type Language string

const (
	// LanguageKorean is Korean output.
	LanguageKorean Language = "ko"

	// LanguageEnglish is English output.
	LanguageEnglish Language = "en"

	// DefaultLanguage is the language used when none is configured.
	DefaultLanguage = LanguageKorean
)

// Languages returns all valid language values.
func Languages() []Language {
	return []Language{LanguageKorean, LanguageEnglish}
}

// IsValid returns whether the language is a known value.
// Matching is case-sensitive.
func (l Language) IsValid() bool {
	return l == LanguageKorean || l == LanguageEnglish
}

// String returns the string representation of the language.
func (l Language) String() string {
	return string(l)
}

// ParseLanguage parses a string into a Language value.
func ParseLanguage(s string) (Language, error) {
	l := Language(s)
	if !l.IsValid() {
		return "", errors.Wrapf(
			ErrInvalidLanguage,
			"%q, must be %q or %q",
			s,
			LanguageKorean,
			LanguageEnglish,
		)
	}

	return l, nil
}

// JSONSchema returns the JSON Schema for the Language type.
func (Language) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		Enum:        []any{string(LanguageKorean), string(LanguageEnglish)},
		Description: "Language for bot output",
		Default:     string(DefaultLanguage),
	}
}

// Severity is the minimum severity a review finding must have before the bot
// posts a comment for it.
type Severity string

const (
	// SeverityLow reports every finding.
	SeverityLow Severity = "LOW"

	// SeverityMedium reports medium and high severity findings.
	SeverityMedium Severity = "MEDIUM"

	// SeverityHigh reports only high severity findings.
	SeverityHigh Severity = "HIGH"

	// DefaultSeverity is the threshold used when none is configured.
	DefaultSeverity = SeverityMedium
)

// Severities returns all valid severity values.
func Severities() []Severity {
	return []Severity{SeverityLow, SeverityMedium, SeverityHigh}
}

// IsValid returns whether the severity is a known value.
// Matching is case-sensitive.
func (s Severity) IsValid() bool {
	return s == SeverityLow || s == SeverityMedium || s == SeverityHigh
}

// String returns the string representation of the severity.
func (s Severity) String() string {
	return string(s)
}

// ParseSeverity parses a string into a Severity value.
func ParseSeverity(s string) (Severity, error) {
	sev := Severity(s)
	if !sev.IsValid() {
		return "", errors.Wrapf(
			ErrInvalidSeverity,
			"%q, must be one of %q, %q, %q",
			s,
			SeverityLow,
			SeverityMedium,
			SeverityHigh,
		)
	}

	return sev, nil
}

// JSONSchema returns the JSON Schema for the Severity type.
func (Severity) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		Enum:        []any{string(SeverityLow), string(SeverityMedium), string(SeverityHigh)},
		Description: "Minimum severity for review comments",
		Default:     string(DefaultSeverity),
	}
}

// UnlimitedReviewComments is the sentinel value for max_review_comments
// meaning no cap on the number of review comments per pull request.
const UnlimitedReviewComments = -1
