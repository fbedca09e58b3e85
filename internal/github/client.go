// Package github provides the GitHub-backed remote content source.
package github

import (
	"context"
	"net/http"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/google/go-github/v84/github"

	internalconfig "github.com/pleaselabs/please/internal/config"
)

// MaxContentSize is the largest config file the client will decode.
// Anything bigger is a configuration mistake, not a configuration.
const MaxContentSize = 1 << 20

// ErrContentTooLarge is returned when the remote file exceeds MaxContentSize.
var ErrContentTooLarge = errors.New("remote file too large")

// ErrNotAFile is returned when the requested path resolves to a directory or
// other non-file content.
var ErrNotAFile = errors.New("path is not a file")

// ContentClient implements the content source contract over the GitHub
// repository contents API. The transport returns file content
// base64-encoded; go-github decodes it before we hand it back.
type ContentClient struct {
	client *github.Client
}

// NewContentClient creates a ContentClient. The token is read from GH_TOKEN
// or GITHUB_TOKEN; an empty token leaves the client unauthenticated, which
// works for public repositories at reduced rate limits.
func NewContentClient() *ContentClient {
	return NewContentClientWithToken(tokenFromEnv())
}

// NewContentClientWithToken creates a ContentClient with an explicit token.
func NewContentClientWithToken(token string) *ContentClient {
	var httpClient *http.Client
	if token != "" {
		httpClient = &http.Client{
			Transport: &authTransport{token: token},
		}
	}

	return &ContentClient{
		client: github.NewClient(httpClient),
	}
}

// NewContentClientWithHTTPClient creates a ContentClient over a custom HTTP
// client (for testing).
func NewContentClientWithHTTPClient(httpClient *http.Client) *ContentClient {
	return &ContentClient{
		client: github.NewClient(httpClient),
	}
}

// GetFileContent returns the decoded text content of path in owner/repo at
// ref. An empty ref means the repository's default branch. A missing file is
// reported as the loader's not-found sentinel so callers can fall back to
// defaults.
func (c *ContentClient) GetFileContent(
	ctx context.Context,
	owner, repo, path, ref string,
) (string, error) {
	opts := &github.RepositoryContentGetOptions{Ref: ref}

	fileContent, _, _, err := c.client.Repositories.GetContents(ctx, owner, repo, path, opts)
	if err != nil {
		if isNotFound(err) {
			return "", errors.Wrapf(
				internalconfig.ErrConfigNotFound,
				"%s/%s:%s",
				owner,
				repo,
				path,
			)
		}

		return "", errors.Wrapf(err, "failed to fetch %s from %s/%s", path, owner, repo)
	}

	if fileContent == nil {
		return "", errors.Wrapf(ErrNotAFile, "%s/%s:%s", owner, repo, path)
	}

	if size := fileContent.GetSize(); size > MaxContentSize {
		return "", errors.Wrapf(
			ErrContentTooLarge,
			"%s is %s, limit is %s",
			path,
			humanize.IBytes(uint64(size)),
			humanize.IBytes(uint64(MaxContentSize)),
		)
	}

	content, err := fileContent.GetContent()
	if err != nil {
		return "", errors.Wrapf(err, "failed to decode %s from %s/%s", path, owner, repo)
	}

	return content, nil
}

// isNotFound reports whether the error is a GitHub 404.
func isNotFound(err error) bool {
	var errResp *github.ErrorResponse
	if !errors.As(err, &errResp) {
		return false
	}

	return errResp.Response != nil && errResp.Response.StatusCode == http.StatusNotFound
}

// tokenFromEnv retrieves the GitHub token from the environment.
func tokenFromEnv() string {
	if token := os.Getenv("GH_TOKEN"); token != "" {
		return token
	}

	return os.Getenv("GITHUB_TOKEN")
}

// authTransport adds the authorization header to every request.
type authTransport struct {
	token string
}

// RoundTrip implements http.RoundTripper.
func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	cloned := req.Clone(req.Context())
	cloned.Header.Set("Authorization", "Bearer "+t.token)

	return http.DefaultTransport.RoundTrip(cloned)
}
