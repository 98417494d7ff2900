package model

import "fmt"

// Result is the terminal result of a CI build. The zero value means the
// build is still running.
type Result string

const (
	ResultNone     Result = ""
	ResultSuccess  Result = "SUCCESS"
	ResultUnstable Result = "UNSTABLE"
	ResultFailure  Result = "FAILURE"
	ResultNotBuilt Result = "NOT_BUILT"
	ResultAborted  Result = "ABORTED"
)

// Terminal reports whether the result represents a finished build.
func (r Result) Terminal() bool {
	return r != ResultNone
}

// Build is a single run of a CI job as reported by the CI runner. herald
// only reads it; the runner owns its lifecycle.
type Build struct {
	// ID is the runner's identifier for this run. Optional; Identity falls
	// back to job name and number when it is empty.
	ID string `json:"id,omitempty"`

	// Number is the run number within the job.
	Number int `json:"number"`

	// FullDisplayName is used as the display name of the Bitbucket status,
	// e.g. "team-a/app » main #42".
	FullDisplayName string `json:"full_display_name"`

	// Description is the free-text build description, if the runner set one.
	Description string `json:"description,omitempty"`

	// Result is empty while the build is still running.
	Result Result `json:"result,omitempty"`

	// JobFullName is the full path of the owning job, e.g. "team-a/app/main".
	JobFullName string `json:"job_full_name"`

	// JobURL is the job's URL path relative to the CI root URL,
	// e.g. "job/team-a/job/app/job/main/".
	JobURL string `json:"job_url"`

	// FolderFullName is the full name of the container two levels up from
	// the build: the multibranch project's parent folder. Used for shared
	// build keys.
	FolderFullName string `json:"folder_full_name,omitempty"`
}

// Identity returns a stable key identifying this build across lifecycle
// events.
func (b *Build) Identity() string {
	if b.ID != "" {
		return b.ID
	}
	return fmt.Sprintf("%s#%d", b.JobFullName, b.Number)
}
