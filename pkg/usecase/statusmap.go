package usecase

import (
	"strings"

	"github.com/m-mizutani/herald/pkg/domain/model"
)

// Default descriptions used when the build carries no usable description of
// its own.
const (
	descSuccess    = "This commit looks good."
	descUnstable   = "This commit has test failures."
	descFailure    = "There was a failure building this commit."
	descNotBuilt   = "This commit was not built (probably the build was skipped)"
	descAborted    = "Something is wrong with the build of this commit."
	descInProgress = "The build is in progress..."
)

// sanitizeDescription decides whether a raw build description can be sent to
// Bitbucket. It returns the description unchanged when usable, or an empty
// string plus the reason it was dropped: Bitbucket rejects huge HTML-looking
// descriptions with HTTP 400 and offers little room for multi-line text.
func sanitizeDescription(desc string) (string, string) {
	trimmed := strings.TrimSpace(desc)
	if trimmed == "" {
		return "", ""
	}
	if strings.HasPrefix(trimmed, "<") {
		return "", "description appears to be HTML"
	}
	if strings.Count(trimmed, "\n")+1 > 2 {
		return "", "description contains more than 2 lines of text"
	}
	return desc, ""
}

// MapStatus derives the Bitbucket state and description for a build result
// under the given policy. The mapping is an ordered decision table; the
// first matching row wins. StatusNone means the notification must be skipped
// entirely, which is a deliberate outcome and not an error.
func MapStatus(result model.Result, description string, policy model.SourcePolicy, flavor model.Flavor) (model.Status, string) {
	desc, _ := sanitizeDescription(description)
	orDefault := func(def string) string {
		if desc == "" {
			return def
		}
		return desc
	}

	switch {
	case result == model.ResultSuccess:
		return model.StatusSuccessful, orDefault(descSuccess)

	case result == model.ResultUnstable:
		if policy.SendSuccessForUnstable {
			return model.StatusSuccessful, orDefault(descUnstable)
		}
		return model.StatusFailed, orDefault(descUnstable)

	case result == model.ResultFailure:
		return model.StatusFailed, orDefault(descFailure)

	case result == model.ResultNotBuilt:
		// Cloud and Server support different build states.
		if policy.DisableNotificationForNotBuilt {
			if flavor == model.FlavorCloud {
				return model.StatusStopped, orDefault(descNotBuilt)
			}
			return model.StatusNone, orDefault(descNotBuilt)
		}
		return model.StatusSuccessful, orDefault(descNotBuilt)

	case result.Terminal(): // ABORTED and anything else terminal
		return model.StatusFailed, orDefault(descAborted)

	default:
		return model.StatusInProgress, orDefault(descInProgress)
	}
}
