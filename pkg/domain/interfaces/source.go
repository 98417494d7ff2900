package interfaces

import "github.com/m-mizutani/herald/pkg/domain/model"

// SourceResolver finds the Bitbucket source configured for a job. A nil
// result means the job is not backed by a Bitbucket repository, which is not
// an error: such builds simply produce no notification.
type SourceResolver interface {
	FindSource(jobFullName string) *model.Source
}

// RevisionStore associates builds with the revision they checked out, the
// way a CI runner attaches a revision action to a build. Revision returns
// nil when the build has no recorded revision.
type RevisionStore interface {
	Record(build *model.Build, rev model.Revision)
	Revision(build *model.Build) model.Revision
}

// RootURLProvider returns the externally reachable URL of a build's status
// page. It fails when no root URL is configured, which callers treat as
// "notifications disabled", never as a build failure.
type RootURLProvider interface {
	RunURL(build *model.Build) (string, error)
}

// MarkerStore records which builds already produced an in-progress
// notification.
type MarkerStore interface {
	// TryMark records the marker for the build and reports whether it was
	// newly set. Markers are set exactly once and never removed.
	TryMark(buildID string) bool
}
