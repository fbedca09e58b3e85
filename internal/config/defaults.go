// Package config provides configuration loading, validation, and generation
// for the please bot.
package config

import (
	"github.com/pleaselabs/please/pkg/config"
)

// DefaultConfig returns the canonical default configuration: the value that
// validating an empty document produces. Every call returns a fresh instance
// so callers can customize their copy without touching shared state.
func DefaultConfig() *config.Config {
	return &config.Config{
		Language:       config.DefaultLanguage,
		IgnorePatterns: []string{},
		CodeReview:     DefaultCodeReviewConfig(),
		IssueWorkflow:  DefaultIssueWorkflowConfig(),
		CodeWorkspace:  DefaultCodeWorkspaceConfig(),
		Integrations:   DefaultIntegrationsConfig(),
	}
}

// DefaultCodeReviewConfig returns the default code review configuration.
func DefaultCodeReviewConfig() *config.CodeReviewConfig {
	disable := false
	maxComments := config.UnlimitedReviewComments

	return &config.CodeReviewConfig{
		Disable:                  &disable,
		CommentSeverityThreshold: config.DefaultSeverity,
		MaxReviewComments:        &maxComments,
		PullRequestOpened:        DefaultPullRequestOpenedConfig(),
	}
}

// DefaultPullRequestOpenedConfig returns the default pull_request_opened
// configuration.
func DefaultPullRequestOpenedConfig() *config.PullRequestOpenedConfig {
	help := false
	summary := true
	codeReview := true
	includeDrafts := true

	return &config.PullRequestOpenedConfig{
		Help:          &help,
		Summary:       &summary,
		CodeReview:    &codeReview,
		IncludeDrafts: &includeDrafts,
	}
}

// DefaultIssueWorkflowConfig returns the default issue workflow configuration.
func DefaultIssueWorkflowConfig() *config.IssueWorkflowConfig {
	disable := false

	return &config.IssueWorkflowConfig{
		Disable:     &disable,
		IssueOpened: DefaultIssueOpenedConfig(),
		Triage:      DefaultTriageConfig(),
		Investigate: DefaultInvestigateConfig(),
		Fix:         DefaultFixConfig(),
	}
}

// DefaultIssueOpenedConfig returns the default issue_opened configuration.
func DefaultIssueOpenedConfig() *config.IssueOpenedConfig {
	postDevHelp := true

	return &config.IssueOpenedConfig{
		PostDevHelp: &postDevHelp,
	}
}

// DefaultTriageConfig returns the default triage configuration.
func DefaultTriageConfig() *config.TriageConfig {
	auto := true
	manual := true
	updateIssueType := true

	return &config.TriageConfig{
		Auto:            &auto,
		Manual:          &manual,
		UpdateIssueType: &updateIssueType,
	}
}

// DefaultInvestigateConfig returns the default investigate configuration.
func DefaultInvestigateConfig() *config.InvestigateConfig {
	enabled := true
	orgMembersOnly := true
	autoOnBugLabel := false

	return &config.InvestigateConfig{
		Enabled:        &enabled,
		OrgMembersOnly: &orgMembersOnly,
		AutoOnBugLabel: &autoOnBugLabel,
	}
}

// DefaultFixConfig returns the default fix configuration.
func DefaultFixConfig() *config.FixConfig {
	enabled := true
	orgMembersOnly := true
	requireInvestigation := false
	autoCreatePR := true
	autoRunTests := true

	return &config.FixConfig{
		Enabled:              &enabled,
		OrgMembersOnly:       &orgMembersOnly,
		RequireInvestigation: &requireInvestigation,
		AutoCreatePR:         &autoCreatePR,
		AutoRunTests:         &autoRunTests,
	}
}

// DefaultCodeWorkspaceConfig returns the default code workspace configuration.
func DefaultCodeWorkspaceConfig() *config.CodeWorkspaceConfig {
	enabled := true

	return &config.CodeWorkspaceConfig{
		Enabled: &enabled,
	}
}

// DefaultIntegrationsConfig returns the default integrations configuration.
// Both integrations are off until explicitly configured.
func DefaultIntegrationsConfig() *config.IntegrationsConfig {
	notionEnabled := false
	slackEnabled := false

	return &config.IntegrationsConfig{
		Notion: &config.NotionConfig{Enabled: &notionEnabled},
		Slack:  &config.SlackConfig{Enabled: &slackEnabled},
	}
}
