package usecase

import (
	"context"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/herald/pkg/domain/model"
)

// OnCheckout handles the "source checked out" lifecycle event. The first
// checkout observed for a build produces the in-progress notification; later
// checkouts of the same build (multiple SCM steps in one run) are gated by
// the idempotency marker and send nothing.
//
// Checkout must never fail because a notification failed: dispatch errors
// are reported to Sentry and logged, never returned.
func (uc *notifyUseCase) OnCheckout(ctx context.Context, ev *model.BuildEvent) error {
	logger := ctxlog.From(ctx)
	build := &ev.Build

	if uc.sources.FindSource(build.JobFullName) == nil {
		return nil
	}

	if rev := ev.Revision.Revision(); rev != nil {
		uc.revisions.Record(build, rev)
	}
	if uc.revisions.Revision(build) == nil {
		return nil
	}

	if !uc.markers.TryMark(build.Identity()) {
		logger.Debug("In-progress notification already sent", "build", build.Identity())
		return nil
	}

	if err := uc.Notify(ctx, build); err != nil {
		sentry.CaptureException(err)
		logger.Error("Could not send notifications",
			"error", err, "build", build.Identity())
	}
	return nil
}

// OnCompleted handles the "run completed" lifecycle event. There is no
// idempotency gate here: completion always attempts to report the terminal
// state, overwriting any in-progress status filed under the same key.
func (uc *notifyUseCase) OnCompleted(ctx context.Context, ev *model.BuildEvent) error {
	logger := ctxlog.From(ctx)
	build := &ev.Build

	if uc.sources.FindSource(build.JobFullName) == nil {
		return nil
	}

	if rev := ev.Revision.Revision(); rev != nil {
		uc.revisions.Record(build, rev)
	}

	if err := uc.Notify(ctx, build); err != nil {
		sentry.CaptureException(err)
		logger.Error("Could not send notifications",
			"error", err, "build", build.Identity())
	}
	return nil
}
