package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/herald/pkg/domain/interfaces"
	"github.com/m-mizutani/herald/pkg/domain/model"
)

type notifyUseCase struct {
	sources   interfaces.SourceResolver
	revisions interfaces.RevisionStore
	clients   interfaces.ClientFactory
	rootURL   interfaces.RootURLProvider
	markers   interfaces.MarkerStore
}

// NewNotify creates the notification use case from its collaborators.
func NewNotify(
	sources interfaces.SourceResolver,
	revisions interfaces.RevisionStore,
	clients interfaces.ClientFactory,
	rootURL interfaces.RootURLProvider,
	markers interfaces.MarkerStore,
) interfaces.NotifyUseCase {
	return &notifyUseCase{
		sources:   sources,
		revisions: revisions,
		clients:   clients,
		rootURL:   rootURL,
		markers:   markers,
	}
}

// Notify sends at most one build status for the build's current state.
// Missing sources, revisions and hashes are silent no-ops. Configuration
// problems (no usable root URL) are logged and skipped. Only the actual
// Bitbucket call can surface an error to the caller.
func (uc *notifyUseCase) Notify(ctx context.Context, build *model.Build) error {
	logger := ctxlog.From(ctx)

	source := uc.sources.FindSource(build.JobFullName)
	if source == nil {
		logger.Debug("No Bitbucket source for job, skipping notification",
			"job", build.JobFullName)
		return nil
	}
	if source.Policy.NotificationsDisabled {
		return nil
	}

	rev := uc.revisions.Revision(build)
	if rev == nil {
		logger.Debug("Build has no recorded revision, skipping notification",
			"build", build.Identity())
		return nil
	}
	hash, ok := ResolveHash(rev)
	if !ok {
		logger.Debug("Revision carries no commit hash, skipping notification",
			"build", build.Identity())
		return nil
	}

	var key string
	var head *model.PullRequestRevision
	if pr, isPR := rev.(*model.PullRequestRevision); isPR {
		logger.Info("[Bitbucket] Notifying pull request build result",
			"build", build.Identity(), "pr", pr.ID)
		key = BuildKey(build, pr.OriginBranch, source.Policy.ShareBuildKey)
		head = pr
	} else {
		logger.Info("[Bitbucket] Notifying commit build result",
			"build", build.Identity(), "head", rev.HeadName())
		key = BuildKey(build, rev.HeadName(), source.Policy.ShareBuildKey)
	}

	client, err := uc.clients.NewClient(source, head)
	if err != nil {
		return goerr.Wrap(err, "failed to build Bitbucket client",
			goerr.V("job", build.JobFullName))
	}

	runURL, err := uc.rootURL.RunURL(build)
	if err == nil {
		runURL, err = CheckURL(runURL, client.Flavor())
	}
	if err != nil {
		logger.Warn("Cannot determine the CI root URL, or it is not a valid URL for the Bitbucket API. "+
			"Commit status notifications are disabled until a root URL is configured.",
			"error", err)
		return nil
	}

	if _, reason := sanitizeDescription(build.Description); reason != "" {
		logger.Info("Not sending the build description to Bitbucket",
			"reason", reason, "build", build.Identity())
	}

	state, description := MapStatus(build.Result, build.Description, source.Policy, client.Flavor())
	if state == model.StatusNone {
		logger.Info("[Bitbucket] Skip result notification", "build", build.Identity())
		return nil
	}

	status := &model.BuildStatus{
		Hash:        hash,
		Key:         key,
		State:       state,
		URL:         runURL,
		Description: description,
		Name:        build.FullDisplayName,
	}
	if err := client.PostBuildStatus(ctx, status); err != nil {
		return goerr.Wrap(err, "failed to post build status",
			goerr.V("key", key), goerr.V("hash", hash), goerr.V("state", state))
	}

	if build.Result.Terminal() {
		logger.Info("[Bitbucket] Build result notified",
			"key", key, "hash", hash, "state", string(state))
	}
	return nil
}
