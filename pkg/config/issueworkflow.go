// Package config provides the configuration schema types for the please bot.
package config

// IssueWorkflowConfig configures the issue triage/investigate/fix pipeline.
type IssueWorkflowConfig struct {
	// Disable turns off the entire issue workflow. When set, every
	// sub-feature is off regardless of its own flag.
	// Default: false
	Disable *bool `json:"disable,omitempty" koanf:"disable" yaml:"disable,omitempty"`

	// IssueOpened configures actions taken when an issue is opened.
	IssueOpened *IssueOpenedConfig `json:"issue_opened,omitempty" koanf:"issue_opened" yaml:"issue_opened,omitempty"`

	// Triage configures issue triage.
	Triage *TriageConfig `json:"triage,omitempty" koanf:"triage" yaml:"triage,omitempty"`

	// Investigate configures issue investigation.
	Investigate *InvestigateConfig `json:"investigate,omitempty" koanf:"investigate" yaml:"investigate,omitempty"`

	// Fix configures automatic issue fixing.
	Fix *FixConfig `json:"fix,omitempty" koanf:"fix" yaml:"fix,omitempty"`
}

// IssueOpenedConfig configures actions on issue open.
type IssueOpenedConfig struct {
	// PostDevHelp posts a developer help comment on newly opened issues.
	// Default: true
	PostDevHelp *bool `json:"post_dev_help,omitempty" koanf:"post_dev_help" yaml:"post_dev_help,omitempty"`
}

// TriageConfig configures issue triage.
type TriageConfig struct {
	// Auto triages newly opened issues automatically.
	// Default: true
	Auto *bool `json:"auto,omitempty" koanf:"auto" yaml:"auto,omitempty"`

	// Manual allows triggering triage with a command.
	// Default: true
	Manual *bool `json:"manual,omitempty" koanf:"manual" yaml:"manual,omitempty"`

	// UpdateIssueType lets triage update the issue type field.
	// Default: true
	UpdateIssueType *bool `json:"update_issue_type,omitempty" koanf:"update_issue_type" yaml:"update_issue_type,omitempty"`
}

// InvestigateConfig configures issue investigation.
type InvestigateConfig struct {
	// Enabled turns the investigate feature on.
	// Default: true
	Enabled *bool `json:"enabled,omitempty" koanf:"enabled" yaml:"enabled,omitempty"`

	// OrgMembersOnly restricts triggering investigation to organization
	// members.
	// Default: true
	OrgMembersOnly *bool `json:"org_members_only,omitempty" koanf:"org_members_only" yaml:"org_members_only,omitempty"`

	// AutoOnBugLabel starts an investigation when a bug label is added.
	// Default: false
	AutoOnBugLabel *bool `json:"auto_on_bug_label,omitempty" koanf:"auto_on_bug_label" yaml:"auto_on_bug_label,omitempty"`
}

// FixConfig configures automatic issue fixing.
type FixConfig struct {
	// Enabled turns the fix feature on.
	// Default: true
	Enabled *bool `json:"enabled,omitempty" koanf:"enabled" yaml:"enabled,omitempty"`

	// OrgMembersOnly restricts triggering fixes to organization members.
	// Default: true
	OrgMembersOnly *bool `json:"org_members_only,omitempty" koanf:"org_members_only" yaml:"org_members_only,omitempty"`

	// RequireInvestigation requires a completed investigation before a fix
	// can start.
	// Default: false
	RequireInvestigation *bool `json:"require_investigation,omitempty" koanf:"require_investigation" yaml:"require_investigation,omitempty"`

	// AutoCreatePR opens a pull request with the fix automatically.
	// Default: true
	AutoCreatePR *bool `json:"auto_create_pr,omitempty" koanf:"auto_create_pr" yaml:"auto_create_pr,omitempty"`

	// AutoRunTests runs the test suite against the fix branch.
	// Default: true
	AutoRunTests *bool `json:"auto_run_tests,omitempty" koanf:"auto_run_tests" yaml:"auto_run_tests,omitempty"`
}

// IsDisabled returns whether the issue workflow is disabled.
func (c *IssueWorkflowConfig) IsDisabled() bool {
	if c == nil || c.Disable == nil {
		return false
	}

	return *c.Disable
}

// IsEnabled returns whether the issue workflow is enabled.
func (c *IssueWorkflowConfig) IsEnabled() bool {
	return !c.IsDisabled()
}

// GetIssueOpened returns the issue_opened config, creating it if it doesn't exist.
func (c *IssueWorkflowConfig) GetIssueOpened() *IssueOpenedConfig {
	if c.IssueOpened == nil {
		c.IssueOpened = &IssueOpenedConfig{}
	}

	return c.IssueOpened
}

// GetTriage returns the triage config, creating it if it doesn't exist.
func (c *IssueWorkflowConfig) GetTriage() *TriageConfig {
	if c.Triage == nil {
		c.Triage = &TriageConfig{}
	}

	return c.Triage
}

// GetInvestigate returns the investigate config, creating it if it doesn't exist.
func (c *IssueWorkflowConfig) GetInvestigate() *InvestigateConfig {
	if c.Investigate == nil {
		c.Investigate = &InvestigateConfig{}
	}

	return c.Investigate
}

// GetFix returns the fix config, creating it if it doesn't exist.
func (c *IssueWorkflowConfig) GetFix() *FixConfig {
	if c.Fix == nil {
		c.Fix = &FixConfig{}
	}

	return c.Fix
}

// ShouldPostDevHelp returns whether a dev help comment is posted on issue open.
func (c *IssueOpenedConfig) ShouldPostDevHelp() bool {
	if c == nil || c.PostDevHelp == nil {
		return true
	}

	return *c.PostDevHelp
}

// IsAutoEnabled returns whether automatic triage is on.
func (c *TriageConfig) IsAutoEnabled() bool {
	if c == nil || c.Auto == nil {
		return true
	}

	return *c.Auto
}

// IsManualEnabled returns whether command-triggered triage is on.
func (c *TriageConfig) IsManualEnabled() bool {
	if c == nil || c.Manual == nil {
		return true
	}

	return *c.Manual
}

// ShouldUpdateIssueType returns whether triage may update the issue type.
func (c *TriageConfig) ShouldUpdateIssueType() bool {
	if c == nil || c.UpdateIssueType == nil {
		return true
	}

	return *c.UpdateIssueType
}

// IsEnabled returns whether investigation is on.
func (c *InvestigateConfig) IsEnabled() bool {
	if c == nil || c.Enabled == nil {
		return true
	}

	return *c.Enabled
}

// IsOrgMembersOnly returns whether investigation is restricted to org members.
func (c *InvestigateConfig) IsOrgMembersOnly() bool {
	if c == nil || c.OrgMembersOnly == nil {
		return true
	}

	return *c.OrgMembersOnly
}

// IsAutoOnBugLabel returns whether a bug label starts an investigation.
func (c *InvestigateConfig) IsAutoOnBugLabel() bool {
	if c == nil || c.AutoOnBugLabel == nil {
		return false
	}

	return *c.AutoOnBugLabel
}

// IsEnabled returns whether automatic fixing is on.
func (c *FixConfig) IsEnabled() bool {
	if c == nil || c.Enabled == nil {
		return true
	}

	return *c.Enabled
}

// IsOrgMembersOnly returns whether fixing is restricted to org members.
func (c *FixConfig) IsOrgMembersOnly() bool {
	if c == nil || c.OrgMembersOnly == nil {
		return true
	}

	return *c.OrgMembersOnly
}

// RequiresInvestigation returns whether a fix needs a prior investigation.
func (c *FixConfig) RequiresInvestigation() bool {
	if c == nil || c.RequireInvestigation == nil {
		return false
	}

	return *c.RequireInvestigation
}

// ShouldAutoCreatePR returns whether the fix opens a pull request.
func (c *FixConfig) ShouldAutoCreatePR() bool {
	if c == nil || c.AutoCreatePR == nil {
		return true
	}

	return *c.AutoCreatePR
}

// ShouldAutoRunTests returns whether the fix runs the test suite.
func (c *FixConfig) ShouldAutoRunTests() bool {
	if c == nil || c.AutoRunTests == nil {
		return true
	}

	return *c.AutoRunTests
}

// workflow returns the issue workflow section without allocating.
func (c *Config) workflow() *IssueWorkflowConfig {
	if c == nil {
		return nil
	}

	return c.IssueWorkflow
}

// triage returns the triage section without allocating.
func (c *IssueWorkflowConfig) triage() *TriageConfig {
	if c == nil {
		return nil
	}

	return c.Triage
}

// investigate returns the investigate section without allocating.
func (c *IssueWorkflowConfig) investigate() *InvestigateConfig {
	if c == nil {
		return nil
	}

	return c.Investigate
}

// fix returns the fix section without allocating.
func (c *IssueWorkflowConfig) fix() *FixConfig {
	if c == nil {
		return nil
	}

	return c.Fix
}

// issueOpened returns the issue_opened section without allocating.
func (c *IssueWorkflowConfig) issueOpened() *IssueOpenedConfig {
	if c == nil {
		return nil
	}

	return c.IssueOpened
}

// ShouldPostDevHelpOnIssueOpened decides whether a dev help comment is posted
// when an issue is opened. A disabled workflow suppresses it.
func (c *Config) ShouldPostDevHelpOnIssueOpened() bool {
	wf := c.workflow()
	if wf.IsDisabled() {
		return false
	}

	return wf.issueOpened().ShouldPostDevHelp()
}

// IsAutoTriageEnabled decides whether newly opened issues are triaged
// automatically. A disabled workflow forces false even when triage.auto is
// set.
func (c *Config) IsAutoTriageEnabled() bool {
	wf := c.workflow()
	if wf.IsDisabled() {
		return false
	}

	return wf.triage().IsAutoEnabled()
}

// IsManualTriageEnabled decides whether triage can be triggered by command.
func (c *Config) IsManualTriageEnabled() bool {
	wf := c.workflow()
	if wf.IsDisabled() {
		return false
	}

	return wf.triage().IsManualEnabled()
}

// ShouldUpdateIssueTypeOnTriage decides whether triage may rewrite the issue
// type field.
func (c *Config) ShouldUpdateIssueTypeOnTriage() bool {
	wf := c.workflow()
	if wf.IsDisabled() {
		return false
	}

	return wf.triage().ShouldUpdateIssueType()
}

// IsInvestigateEnabled decides whether issue investigation is available.
func (c *Config) IsInvestigateEnabled() bool {
	wf := c.workflow()
	if wf.IsDisabled() {
		return false
	}

	return wf.investigate().IsEnabled()
}

// ShouldAutoInvestigateOnBugLabel decides whether adding a bug label starts an
// investigation. Requires the workflow and the investigate feature to be on.
func (c *Config) ShouldAutoInvestigateOnBugLabel() bool {
	if !c.IsInvestigateEnabled() {
		return false
	}

	return c.workflow().investigate().IsAutoOnBugLabel()
}

// IsFixEnabled decides whether automatic issue fixing is available.
func (c *Config) IsFixEnabled() bool {
	wf := c.workflow()
	if wf.IsDisabled() {
		return false
	}

	return wf.fix().IsEnabled()
}
