package model

// Revision identifies the changeset a build checked out.
type Revision interface {
	// HeadName returns the branch or head name the revision belongs to.
	HeadName() string
}

// CommitRevision is a plain source-control revision carrying a commit hash.
type CommitRevision struct {
	Head string
	Hash string
}

func (r *CommitRevision) HeadName() string { return r.Head }

// PullRequestRevision wraps the revision a pull request build checked out
// together with the metadata of the PR itself. The commit hash always comes
// from the wrapped revision; a PR revision never carries its own.
type PullRequestRevision struct {
	// Pull is the wrapped head revision. Exactly one level of wrapping is
	// allowed; hash extraction does not recurse.
	Pull Revision

	// ID is the pull request identifier, e.g. "PR-17".
	ID string

	// Head is the name of the PR head, e.g. "PR-17".
	Head string

	// OriginBranch is the branch the pull request originates from.
	OriginBranch string
}

func (r *PullRequestRevision) HeadName() string { return r.Head }
