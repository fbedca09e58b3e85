// Package config provides configuration loading, validation, and generation
// for the please bot.
package config

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/pleaselabs/please/pkg/config"
)

// fieldKind is the structural type a schema field expects in a raw document.
type fieldKind int

const (
	kindBool fieldKind = iota
	kindInt
	kindString
	kindEnum
	kindStringList
	kindSection
)

// field describes one configuration field: its expected kind, its default,
// and (for sections) its children. The descriptor tree declared by
// configSchema is the single source of truth for defaulting and structural
// validation; it is walked once per Validate call against the raw document.
type field struct {
	// name is the document key.
	name string

	// kind is the expected structural type.
	kind fieldKind

	// def is the default substituted when the field is absent. Sections
	// derive their default from their children.
	def any

	// optional marks fields that stay absent when unset (no default).
	optional bool

	// enum lists the allowed values for kindEnum fields.
	enum []string

	// check applies an extra value constraint after the kind check.
	check func(path string, value any) error

	// children holds the nested fields of a kindSection.
	children []field
}

// configSchema declares the full configuration schema. Field order here is
// the canonical key order of generated documents.
func configSchema() []field {
	return []field{
		{
			name: "language",
			kind: kindEnum,
			def:  string(config.DefaultLanguage),
			enum: []string{string(config.LanguageKorean), string(config.LanguageEnglish)},
		},
		{
			name: "ignore_patterns",
			kind: kindStringList,
			def:  []string{},
		},
		{
			name:     "code_review",
			kind:     kindSection,
			children: codeReviewSchema(),
		},
		{
			name:     "issue_workflow",
			kind:     kindSection,
			children: issueWorkflowSchema(),
		},
		{
			name: "code_workspace",
			kind: kindSection,
			children: []field{
				{name: "enabled", kind: kindBool, def: true},
			},
		},
		{
			name:     "integrations",
			kind:     kindSection,
			children: integrationsSchema(),
		},
	}
}

func codeReviewSchema() []field {
	return []field{
		{name: "disable", kind: kindBool, def: false},
		{
			name: "comment_severity_threshold",
			kind: kindEnum,
			def:  string(config.DefaultSeverity),
			enum: []string{
				string(config.SeverityLow),
				string(config.SeverityMedium),
				string(config.SeverityHigh),
			},
		},
		{
			name:  "max_review_comments",
			kind:  kindInt,
			def:   config.UnlimitedReviewComments,
			check: checkMaxReviewComments,
		},
		{
			name: "pull_request_opened",
			kind: kindSection,
			children: []field{
				{name: "help", kind: kindBool, def: false},
				{name: "summary", kind: kindBool, def: true},
				{name: "code_review", kind: kindBool, def: true},
				{name: "include_drafts", kind: kindBool, def: true},
			},
		},
	}
}

func issueWorkflowSchema() []field {
	return []field{
		{name: "disable", kind: kindBool, def: false},
		{
			name: "issue_opened",
			kind: kindSection,
			children: []field{
				{name: "post_dev_help", kind: kindBool, def: true},
			},
		},
		{
			name: "triage",
			kind: kindSection,
			children: []field{
				{name: "auto", kind: kindBool, def: true},
				{name: "manual", kind: kindBool, def: true},
				{name: "update_issue_type", kind: kindBool, def: true},
			},
		},
		{
			name: "investigate",
			kind: kindSection,
			children: []field{
				{name: "enabled", kind: kindBool, def: true},
				{name: "org_members_only", kind: kindBool, def: true},
				{name: "auto_on_bug_label", kind: kindBool, def: false},
			},
		},
		{
			name: "fix",
			kind: kindSection,
			children: []field{
				{name: "enabled", kind: kindBool, def: true},
				{name: "org_members_only", kind: kindBool, def: true},
				{name: "require_investigation", kind: kindBool, def: false},
				{name: "auto_create_pr", kind: kindBool, def: true},
				{name: "auto_run_tests", kind: kindBool, def: true},
			},
		},
	}
}

func integrationsSchema() []field {
	return []field{
		{
			name: "notion",
			kind: kindSection,
			children: []field{
				{name: "enabled", kind: kindBool, def: false},
				{name: "page_id", kind: kindString, optional: true},
				{name: "database_id", kind: kindString, optional: true},
			},
		},
		{
			name: "slack",
			kind: kindSection,
			children: []field{
				{name: "enabled", kind: kindBool, def: false},
				{name: "webhook_url", kind: kindString, optional: true},
				{name: "channel", kind: kindString, optional: true},
			},
		},
	}
}

// checkMaxReviewComments enforces the sentinel semantics of
// max_review_comments: -1 means unlimited, any value >= 0 is a literal cap,
// other negatives are invalid.
func checkMaxReviewComments(path string, value any) error {
	n, ok := intValue(value)
	if !ok {
		return nil
	}

	if n < config.UnlimitedReviewComments {
		return errors.Wrapf(
			ErrInvalidValue,
			"%s: must be -1 (unlimited) or a non-negative cap, got %d",
			path,
			n,
		)
	}

	return nil
}

// defaultsMap builds the fully-defaulted document for a field list. Optional
// fields stay absent.
func defaultsMap(fields []field) map[string]any {
	out := make(map[string]any, len(fields))

	for _, f := range fields {
		if f.optional {
			continue
		}

		if f.kind == kindSection {
			out[f.name] = defaultsMap(f.children)

			continue
		}

		out[f.name] = f.def
	}

	return out
}

// joinPath appends a field name to a document path.
func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}

	return fmt.Sprintf("%s.%s", prefix, name)
}
