package model

// Status is a Bitbucket build status state.
type Status string

const (
	// StatusNone means no status should be reported at all.
	StatusNone       Status = ""
	StatusInProgress Status = "INPROGRESS"
	StatusSuccessful Status = "SUCCESSFUL"
	StatusFailed     Status = "FAILED"
	// StatusStopped is only supported by Bitbucket Cloud.
	StatusStopped Status = "STOPPED"
)

// Flavor distinguishes Bitbucket Cloud from Bitbucket Server / Data Center.
// The two enforce different rules, e.g. Cloud requires a fully qualified
// host in callback URLs and supports the STOPPED state.
type Flavor string

const (
	FlavorCloud  Flavor = "cloud"
	FlavorServer Flavor = "server"
)

// BuildStatus is the payload posted to a Bitbucket build-status endpoint.
type BuildStatus struct {
	// Hash is the commit the status is attached to. It selects the endpoint
	// path and is not part of the JSON body.
	Hash string `json:"-"`

	// Key identifies the line of history the status belongs to. Reporting
	// twice under the same key updates the existing status entry.
	Key string `json:"key"`

	State       Status `json:"state"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
	Name        string `json:"name,omitempty"`
}
