package bitbucket

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/herald/pkg/domain/interfaces"
	"github.com/m-mizutani/herald/pkg/domain/model"
)

// Factory builds status clients from source configuration.
type Factory struct {
	opts []Option
}

// NewFactory creates a client factory. Options are applied to every client
// it builds.
func NewFactory(opts ...Option) *Factory {
	return &Factory{opts: opts}
}

// NewClient builds a client for the source. Statuses for a pull request head
// are posted against the repository the source names: the head commit exists
// there as well, so fork PRs need no separate coordinates.
func (f *Factory) NewClient(source *model.Source, head *model.PullRequestRevision) (interfaces.StatusClient, error) {
	switch source.Flavor {
	case model.FlavorCloud:
		return NewCloudClient(source.Endpoint, source.Owner, source.Repository,
			source.Username, source.Password, f.opts...), nil
	case model.FlavorServer:
		if source.Endpoint == "" {
			return nil, goerr.New("Bitbucket Server source requires an endpoint",
				goerr.V("job_prefix", source.JobPrefix))
		}
		return NewServerClient(source.Endpoint, source.Password, f.opts...), nil
	default:
		return nil, goerr.New("unknown Bitbucket flavor",
			goerr.V("flavor", source.Flavor), goerr.V("job_prefix", source.JobPrefix))
	}
}
