package bitbucket

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/herald/pkg/domain/interfaces"
	"github.com/m-mizutani/herald/pkg/domain/model"
	"github.com/m-mizutani/herald/pkg/domain/types"
)

// DefaultCloudEndpoint is the Bitbucket Cloud REST API base URL.
const DefaultCloudEndpoint = "https://api.bitbucket.org"

// Bitbucket Cloud rejects build status keys longer than 40 characters.
const maxCloudKeyLen = 40

// config holds internal client configuration
type config struct {
	httpClient *http.Client
}

// Option is a functional option for client configuration
type Option func(*config)

// WithHTTPClient sets the HTTP client used for API calls.
func WithHTTPClient(c *http.Client) Option {
	return func(cfg *config) {
		cfg.httpClient = c
	}
}

func newConfig(opts []Option) *config {
	cfg := &config{httpClient: http.DefaultClient}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// cloudClient posts build statuses to the Bitbucket Cloud API.
type cloudClient struct {
	httpClient *http.Client
	endpoint   string
	workspace  string
	repo       string
	username   string
	password   string
}

// NewCloudClient creates a client for one Bitbucket Cloud repository,
// authenticated with a username and app password. An empty endpoint means
// the public Cloud API.
func NewCloudClient(endpoint, workspace, repo, username, appPassword string, opts ...Option) interfaces.StatusClient {
	if endpoint == "" {
		endpoint = DefaultCloudEndpoint
	}
	cfg := newConfig(opts)
	return &cloudClient{
		httpClient: cfg.httpClient,
		endpoint:   endpoint,
		workspace:  workspace,
		repo:       repo,
		username:   username,
		password:   appPassword,
	}
}

func (c *cloudClient) Flavor() model.Flavor { return model.FlavorCloud }

// PostBuildStatus reports the status against the commit hash. Keys over the
// Cloud limit are truncated so repeated reports still land on one entry.
func (c *cloudClient) PostBuildStatus(ctx context.Context, status *model.BuildStatus) error {
	payload := *status
	if runes := []rune(payload.Key); len(runes) > maxCloudKeyLen {
		payload.Key = string(runes[:maxCloudKeyLen])
	}

	endpoint := fmt.Sprintf("%s/2.0/repositories/%s/%s/commit/%s/statuses/build",
		c.endpoint, url.PathEscape(c.workspace), url.PathEscape(c.repo), url.PathEscape(status.Hash))

	req, err := newStatusRequest(ctx, endpoint, &payload)
	if err != nil {
		return err
	}
	req.SetBasicAuth(c.username, c.password)

	return doStatusRequest(c.httpClient, req)
}

// newStatusRequest builds the JSON POST request shared by both flavors.
func newStatusRequest(ctx context.Context, endpoint string, status *model.BuildStatus) (*http.Request, error) {
	body, err := json.Marshal(status)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode build status")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create build status request",
			goerr.V("endpoint", endpoint))
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func doStatusRequest(client *http.Client, req *http.Request) error {
	resp, err := client.Do(req)
	if err != nil {
		return goerr.Wrap(err, "failed to call Bitbucket API",
			goerr.V("endpoint", req.URL.String()), goerr.T(types.ErrTagBitbucket))
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// The body usually explains what Bitbucket disliked; keep a snippet.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return goerr.New("Bitbucket API returned an error",
			goerr.V("status_code", resp.StatusCode),
			goerr.V("endpoint", req.URL.String()),
			goerr.V("body", string(snippet)),
			goerr.T(types.ErrTagBitbucket))
	}
	return nil
}
