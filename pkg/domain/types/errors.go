package types

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrTagConfig marks errors caused by herald configuration, such as a
	// missing or unusable root URL. Dispatch treats these as "notifications
	// disabled": it logs the error and skips, and the build is unaffected.
	ErrTagConfig = goerr.NewTag("config")

	// ErrTagBitbucket marks errors returned by the Bitbucket API.
	ErrTagBitbucket = goerr.NewTag("bitbucket")
)
