// Package config provides the configuration schema types for the please bot.
package config

// CodeReviewConfig configures how the bot reviews pull requests.
type CodeReviewConfig struct {
	// Disable turns off code review entirely.
	// Default: false
	Disable *bool `json:"disable,omitempty" koanf:"disable" yaml:"disable,omitempty"`

	// CommentSeverityThreshold is the minimum severity a finding must have
	// before a review comment is posted.
	// Default: MEDIUM
	CommentSeverityThreshold Severity `json:"comment_severity_threshold,omitempty" koanf:"comment_severity_threshold" yaml:"comment_severity_threshold,omitempty"`

	// MaxReviewComments caps the number of review comments per pull request.
	// -1 means unlimited.
	// Default: -1
	MaxReviewComments *int `json:"max_review_comments,omitempty" koanf:"max_review_comments" yaml:"max_review_comments,omitempty"`

	// PullRequestOpened configures what the bot does when a pull request is
	// opened.
	PullRequestOpened *PullRequestOpenedConfig `json:"pull_request_opened,omitempty" koanf:"pull_request_opened" yaml:"pull_request_opened,omitempty"`
}

// PullRequestOpenedConfig configures automatic actions on pull request open.
type PullRequestOpenedConfig struct {
	// Help posts a usage help comment on newly opened pull requests.
	// Default: false
	Help *bool `json:"help,omitempty" koanf:"help" yaml:"help,omitempty"`

	// Summary posts an automatic summary of the change.
	// Default: true
	Summary *bool `json:"summary,omitempty" koanf:"summary" yaml:"summary,omitempty"`

	// CodeReview starts an automatic review.
	// Default: true
	CodeReview *bool `json:"code_review,omitempty" koanf:"code_review" yaml:"code_review,omitempty"`

	// IncludeDrafts extends the pull_request_opened actions to draft PRs.
	// Default: true
	IncludeDrafts *bool `json:"include_drafts,omitempty" koanf:"include_drafts" yaml:"include_drafts,omitempty"`
}

// IsDisabled returns whether code review is disabled.
func (c *CodeReviewConfig) IsDisabled() bool {
	if c == nil || c.Disable == nil {
		return false
	}

	return *c.Disable
}

// IsEnabled returns whether code review is enabled.
func (c *CodeReviewConfig) IsEnabled() bool {
	return !c.IsDisabled()
}

// SeverityThreshold returns the comment severity threshold, falling back to
// the default when absent or invalid.
func (c *CodeReviewConfig) SeverityThreshold() Severity {
	if c == nil || !c.CommentSeverityThreshold.IsValid() {
		return DefaultSeverity
	}

	return c.CommentSeverityThreshold
}

// MaxComments returns the review comment cap, UnlimitedReviewComments when
// absent.
func (c *CodeReviewConfig) MaxComments() int {
	if c == nil || c.MaxReviewComments == nil {
		return UnlimitedReviewComments
	}

	return *c.MaxReviewComments
}

// IsCommentLimitUnlimited returns whether the review comment count is
// uncapped.
func (c *CodeReviewConfig) IsCommentLimitUnlimited() bool {
	return c.MaxComments() == UnlimitedReviewComments
}

// GetPullRequestOpened returns the pull_request_opened config, creating it if
// it doesn't exist.
func (c *CodeReviewConfig) GetPullRequestOpened() *PullRequestOpenedConfig {
	if c.PullRequestOpened == nil {
		c.PullRequestOpened = &PullRequestOpenedConfig{}
	}

	return c.PullRequestOpened
}

// ShouldPostHelp returns whether a help comment is posted on PR open.
func (p *PullRequestOpenedConfig) ShouldPostHelp() bool {
	if p == nil || p.Help == nil {
		return false
	}

	return *p.Help
}

// ShouldSummarize returns whether a summary is posted on PR open.
func (p *PullRequestOpenedConfig) ShouldSummarize() bool {
	if p == nil || p.Summary == nil {
		return true
	}

	return *p.Summary
}

// ShouldReview returns whether a review is started on PR open.
func (p *PullRequestOpenedConfig) ShouldReview() bool {
	if p == nil || p.CodeReview == nil {
		return true
	}

	return *p.CodeReview
}

// ShouldIncludeDrafts returns whether draft PRs get the same treatment as
// ready PRs.
func (p *PullRequestOpenedConfig) ShouldIncludeDrafts() bool {
	if p == nil || p.IncludeDrafts == nil {
		return true
	}

	return *p.IncludeDrafts
}

// ShouldReviewPR decides whether the bot should review a newly opened pull
// request. A disabled code_review section wins over everything; draft PRs are
// skipped unless include_drafts is set.
func (c *Config) ShouldReviewPR(isDraft bool) bool {
	var cr *CodeReviewConfig
	if c != nil {
		cr = c.CodeReview
	}

	if cr.IsDisabled() {
		return false
	}

	var pro *PullRequestOpenedConfig
	if cr != nil {
		pro = cr.PullRequestOpened
	}

	if isDraft && !pro.ShouldIncludeDrafts() {
		return false
	}

	return pro.ShouldReview()
}

// ShouldSummarizePR decides whether the bot should summarize a newly opened
// pull request, applying the same disable and draft gating as reviews.
func (c *Config) ShouldSummarizePR(isDraft bool) bool {
	var cr *CodeReviewConfig
	if c != nil {
		cr = c.CodeReview
	}

	if cr.IsDisabled() {
		return false
	}

	var pro *PullRequestOpenedConfig
	if cr != nil {
		pro = cr.PullRequestOpened
	}

	if isDraft && !pro.ShouldIncludeDrafts() {
		return false
	}

	return pro.ShouldSummarize()
}
