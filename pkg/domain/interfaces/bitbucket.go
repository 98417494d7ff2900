package interfaces

import (
	"context"

	"github.com/m-mizutani/herald/pkg/domain/model"
)

// StatusClient posts build statuses for one Bitbucket repository.
type StatusClient interface {
	// PostBuildStatus reports the status against status.Hash. Posting again
	// under the same key updates the existing entry.
	PostBuildStatus(ctx context.Context, status *model.BuildStatus) error

	// Flavor identifies which API variant the client talks to, which decides
	// flavor-specific rules such as callback URL strictness.
	Flavor() model.Flavor
}

// ClientFactory builds a StatusClient for a source. When head is non-nil the
// client is scoped to that pull request head.
type ClientFactory interface {
	NewClient(source *model.Source, head *model.PullRequestRevision) (StatusClient, error)
}
