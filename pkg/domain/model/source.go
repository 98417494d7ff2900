package model

// Source binds a subtree of CI jobs to one Bitbucket repository and carries
// the policy and credentials used to report statuses for its builds.
type Source struct {
	// JobPrefix is the job full-name prefix this source covers,
	// e.g. "team-a/app".
	JobPrefix string

	// Owner and Repository locate the Bitbucket repository. Owner is the
	// workspace on Cloud and the project key on Server.
	Owner      string
	Repository string

	// Endpoint is the API base URL. Empty means Bitbucket Cloud's default.
	Endpoint string

	Flavor Flavor

	// Username and Password authenticate against the endpoint: username +
	// app password on Cloud, a bearer token (Username unused) on Server.
	Username string
	Password string `masq:"secret"`

	Policy SourcePolicy
}
