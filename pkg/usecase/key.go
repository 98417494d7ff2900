package usecase

import (
	"fmt"

	"github.com/m-mizutani/herald/pkg/domain/model"
)

// BuildKey derives the key a build status is filed under on Bitbucket.
//
// When the branch project and the PR project share build keys (shareKey),
// both report as "<folder>/<branch>" so a branch that later goes into a pull
// request keeps one evolving status instead of growing a second entry.
// Otherwise each job reports under its own URL path.
func BuildKey(build *model.Build, branch string, shareKey bool) string {
	if shareKey {
		return fmt.Sprintf("%s/%s", build.FolderFullName, branch)
	}
	return build.JobURL
}
