// Package config provides configuration loading, validation, and generation
// for the please bot.
package config

import (
	"context"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/pleaselabs/please/pkg/config"
	"github.com/pleaselabs/please/pkg/logger"
)

// ContentSource retrieves a file's text content from a remote repository.
// Implementations return ErrConfigNotFound when the file does not exist at
// the requested ref; any other failure is an ordinary error.
type ContentSource interface {
	// GetFileContent returns the decoded text content of path in owner/repo
	// at ref. An empty ref means the repository's default branch.
	GetFileContent(ctx context.Context, owner, repo, path, ref string) (string, error)
}

// RemoteLoader loads the configuration of a remote repository through a
// ContentSource.
type RemoteLoader struct {
	validator *Validator
	log       logger.Logger
}

// NewRemoteLoader creates a new RemoteLoader. A nil logger disables logging.
func NewRemoteLoader(log logger.Logger) *RemoteLoader {
	if log == nil {
		log = logger.NewNoOpLogger()
	}

	return &RemoteLoader{
		validator: NewValidator(),
		log:       log,
	}
}

// Load fetches .please/config.yml for owner/repo at ref and returns the
// validated configuration. A missing file yields the canonical defaults,
// same as the local loader. Any other failure also yields the defaults with
// only a log line recording the anomaly: one repository's bad config or a
// transient platform hiccup must not take the bot down for everyone.
func (l *RemoteLoader) Load(
	ctx context.Context,
	source ContentSource,
	owner, repo, ref string,
) *config.Config {
	content, err := source.GetFileContent(ctx, owner, repo, config.ConfigRelPath, ref)
	if err != nil {
		if !errors.Is(err, ErrConfigNotFound) {
			l.log.Error(
				"failed to fetch remote config, using defaults",
				"owner", owner,
				"repo", repo,
				"ref", ref,
				"error", err,
			)
		}

		return DefaultConfig()
	}

	var raw map[string]any
	if err := yaml.Unmarshal([]byte(content), &raw); err != nil {
		l.log.Error(
			"failed to parse remote config, using defaults",
			"owner", owner,
			"repo", repo,
			"ref", ref,
			"error", err,
		)

		return DefaultConfig()
	}

	cfg, err := l.validator.Validate(raw)
	if err != nil {
		l.log.Error(
			"remote config failed validation, using defaults",
			"owner", owner,
			"repo", repo,
			"ref", ref,
			"error", err,
		)

		return DefaultConfig()
	}

	return cfg
}
