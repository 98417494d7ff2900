package model

import "time"

// BuildEvent is the payload a CI runner delivers to the lifecycle hook
// endpoints: the build plus, when known, the revision it checked out.
type BuildEvent struct {
	// ID is the delivery identifier. Generated when the runner omits it.
	ID string `json:"id,omitempty"`

	Build Build `json:"build"`

	// Revision may be nil: builds without an associated commit (yet) are
	// legitimate and produce no notification.
	Revision *RevisionPayload `json:"revision,omitempty"`

	ReceivedAt time.Time `json:"-"`
}

// RevisionPayload is the wire form of a revision. A payload with PullRequest
// set decodes to a PullRequestRevision wrapping the head commit.
type RevisionPayload struct {
	// Head is the branch or head name, e.g. "main" or "PR-17".
	Head string `json:"head"`

	// Hash is the commit hash of the head. Empty when the revision kind
	// carries no hash.
	Hash string `json:"hash,omitempty"`

	PullRequest *PullRequestPayload `json:"pull_request,omitempty"`
}

// PullRequestPayload carries pull request head metadata.
type PullRequestPayload struct {
	ID           string `json:"id"`
	OriginBranch string `json:"origin_branch"`
}

// Revision converts the payload into its domain representation.
func (p *RevisionPayload) Revision() Revision {
	if p == nil {
		return nil
	}
	commit := &CommitRevision{Head: p.Head, Hash: p.Hash}
	if p.PullRequest == nil {
		return commit
	}
	return &PullRequestRevision{
		Pull:         commit,
		ID:           p.PullRequest.ID,
		Head:         p.Head,
		OriginBranch: p.PullRequest.OriginBranch,
	}
}
