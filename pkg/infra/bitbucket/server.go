package bitbucket

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/m-mizutani/herald/pkg/domain/interfaces"
	"github.com/m-mizutani/herald/pkg/domain/model"
)

// serverClient posts build statuses to a Bitbucket Server / Data Center
// instance. Server statuses are commit-scoped, so the client needs no
// repository coordinates.
type serverClient struct {
	httpClient *http.Client
	endpoint   string
	token      string
}

// NewServerClient creates a client for a Bitbucket Server instance,
// authenticated with a bearer token.
func NewServerClient(endpoint, token string, opts ...Option) interfaces.StatusClient {
	cfg := newConfig(opts)
	return &serverClient{
		httpClient: cfg.httpClient,
		endpoint:   endpoint,
		token:      token,
	}
}

func (c *serverClient) Flavor() model.Flavor { return model.FlavorServer }

func (c *serverClient) PostBuildStatus(ctx context.Context, status *model.BuildStatus) error {
	endpoint := fmt.Sprintf("%s/rest/build-status/1.0/commits/%s",
		c.endpoint, url.PathEscape(status.Hash))

	req, err := newStatusRequest(ctx, endpoint, status)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	return doStatusRequest(c.httpClient, req)
}
