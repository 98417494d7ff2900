package usecase

import (
	"net/url"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/herald/pkg/domain/model"
	"github.com/m-mizutani/herald/pkg/domain/types"
)

// unconfiguredHost is the sentinel host a root-URL provider may fall back to
// when no root URL has been configured.
const unconfiguredHost = "unconfigured-ci-location"

// CheckURL verifies that Bitbucket can reach back into the given build URL
// and returns it unchanged. localhost is never acceptable, and Bitbucket
// Cloud additionally requires a fully qualified name or an IP address.
func CheckURL(rawURL string, flavor model.Flavor) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return "", goerr.New("bad root URL", goerr.V("url", rawURL), goerr.T(types.ErrTagConfig))
	}

	host := u.Hostname()
	switch {
	case host == "localhost":
		return "", goerr.New("root URL cannot point at localhost",
			goerr.V("url", rawURL), goerr.T(types.ErrTagConfig))
	case host == unconfiguredHost:
		return "", goerr.New("could not determine the CI root URL",
			goerr.T(types.ErrTagConfig))
	case flavor == model.FlavorCloud && !strings.Contains(host, "."):
		return "", goerr.New("Bitbucket Cloud requires a fully qualified name or an IP address in the root URL",
			goerr.V("host", host), goerr.T(types.ErrTagConfig))
	}

	return rawURL, nil
}
