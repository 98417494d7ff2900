package usecase

import "github.com/m-mizutani/herald/pkg/domain/model"

// ResolveHash extracts the commit hash a status should be attached to. A
// pull request revision is unwrapped to its inner revision first; exactly
// one level, never recursively. Anything that still is not a plain commit
// revision has no hash, which is not an error: such builds produce no
// notification.
func ResolveHash(rev model.Revision) (string, bool) {
	if pr, ok := rev.(*model.PullRequestRevision); ok {
		rev = pr.Pull
	}
	if commit, ok := rev.(*model.CommitRevision); ok && commit.Hash != "" {
		return commit.Hash, true
	}
	return "", false
}
