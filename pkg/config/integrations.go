// Package config provides the configuration schema types for the please bot.
package config

// IntegrationsConfig groups external service integrations.
type IntegrationsConfig struct {
	// Notion configures the Notion integration.
	Notion *NotionConfig `json:"notion,omitempty" koanf:"notion" yaml:"notion,omitempty"`

	// Slack configures the Slack integration.
	Slack *SlackConfig `json:"slack,omitempty" koanf:"slack" yaml:"slack,omitempty"`
}

// NotionConfig configures the Notion integration.
type NotionConfig struct {
	// Enabled turns the Notion integration on.
	// Default: false
	Enabled *bool `json:"enabled,omitempty" koanf:"enabled" yaml:"enabled,omitempty"`

	// PageID is the Notion page the bot writes to. Optional.
	PageID string `json:"page_id,omitempty" koanf:"page_id" yaml:"page_id,omitempty"`

	// DatabaseID is the Notion database the bot writes to. Optional.
	DatabaseID string `json:"database_id,omitempty" koanf:"database_id" yaml:"database_id,omitempty"`
}

// SlackConfig configures the Slack integration.
type SlackConfig struct {
	// Enabled turns the Slack integration on.
	// Default: false
	Enabled *bool `json:"enabled,omitempty" koanf:"enabled" yaml:"enabled,omitempty"`

	// WebhookURL is the incoming webhook the bot posts to. Optional.
	WebhookURL string `json:"webhook_url,omitempty" koanf:"webhook_url" yaml:"webhook_url,omitempty"`

	// Channel overrides the webhook's default channel. Optional.
	Channel string `json:"channel,omitempty" koanf:"channel" yaml:"channel,omitempty"`
}

// GetNotion returns the Notion config, creating it if it doesn't exist.
func (c *IntegrationsConfig) GetNotion() *NotionConfig {
	if c.Notion == nil {
		c.Notion = &NotionConfig{}
	}

	return c.Notion
}

// GetSlack returns the Slack config, creating it if it doesn't exist.
func (c *IntegrationsConfig) GetSlack() *SlackConfig {
	if c.Slack == nil {
		c.Slack = &SlackConfig{}
	}

	return c.Slack
}

// IsEnabled returns whether the Notion integration is on.
func (c *NotionConfig) IsEnabled() bool {
	if c == nil || c.Enabled == nil {
		return false
	}

	return *c.Enabled
}

// GetPageID returns the configured page ID, empty when unset.
func (c *NotionConfig) GetPageID() string {
	if c == nil {
		return ""
	}

	return c.PageID
}

// GetDatabaseID returns the configured database ID, empty when unset.
func (c *NotionConfig) GetDatabaseID() string {
	if c == nil {
		return ""
	}

	return c.DatabaseID
}

// IsEnabled returns whether the Slack integration is on.
func (c *SlackConfig) IsEnabled() bool {
	if c == nil || c.Enabled == nil {
		return false
	}

	return *c.Enabled
}

// GetWebhookURL returns the configured webhook URL, empty when unset.
func (c *SlackConfig) GetWebhookURL() string {
	if c == nil {
		return ""
	}

	return c.WebhookURL
}

// GetChannel returns the configured channel override, empty when unset.
func (c *SlackConfig) GetChannel() string {
	if c == nil {
		return ""
	}

	return c.Channel
}

// IsNotionEnabled decides whether the Notion integration is available.
func (c *Config) IsNotionEnabled() bool {
	if c == nil || c.Integrations == nil {
		return false
	}

	return c.Integrations.Notion.IsEnabled()
}

// IsSlackEnabled decides whether the Slack integration is available.
func (c *Config) IsSlackEnabled() bool {
	if c == nil || c.Integrations == nil {
		return false
	}

	return c.Integrations.Slack.IsEnabled()
}
