package config

import (
	"github.com/m-mizutani/herald/pkg/infra/sourcecfg"
	"github.com/urfave/cli/v3"
)

// Sources holds source configuration loading options
type Sources struct {
	Path    string
	RootURL string
}

// Flags returns CLI flags for source configuration
func (c *Sources) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sources",
			Usage:       "Path to the TOML source configuration file",
			Required:    true,
			Destination: &c.Path,
			Sources:     cli.EnvVars("HERALD_SOURCES"),
		},
		&cli.StringFlag{
			Name:        "root-url",
			Usage:       "Externally reachable CI root URL (overrides the configuration file)",
			Destination: &c.RootURL,
			Sources:     cli.EnvVars("HERALD_ROOT_URL"),
		},
	}
}

// Configure loads the source configuration, applying the root URL override
// and default Bitbucket credentials.
func (c *Sources) Configure(bb *Bitbucket) (*sourcecfg.Resolver, error) {
	resolver, err := sourcecfg.Load(c.Path)
	if err != nil {
		return nil, err
	}
	if c.RootURL != "" {
		resolver.SetRootURL(c.RootURL)
	}
	if bb != nil {
		resolver.SetDefaultCredentials(bb.Username, bb.Password)
	}
	return resolver, nil
}
