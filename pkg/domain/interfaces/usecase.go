package interfaces

import (
	"context"

	"github.com/m-mizutani/herald/pkg/domain/model"
)

// NotifyUseCase turns build lifecycle events into Bitbucket build statuses.
//
// OnCheckout and OnCompleted never return an error for anything that went
// wrong on the Bitbucket side; notification is best-effort and must not fail
// the build it concerns.
type NotifyUseCase interface {
	// OnCheckout handles a "source checked out" event and produces the
	// at-most-once in-progress notification for the build.
	OnCheckout(ctx context.Context, ev *model.BuildEvent) error

	// OnCompleted handles a "run completed" event and reports the terminal
	// state, overwriting any in-progress status under the same key.
	OnCompleted(ctx context.Context, ev *model.BuildEvent) error

	// Notify sends at most one build status for the build's current state.
	Notify(ctx context.Context, build *model.Build) error
}
