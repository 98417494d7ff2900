package config

import "github.com/urfave/cli/v3"

// Bitbucket holds default Bitbucket credentials, used by sources that do not
// carry their own. Keeping them here means secrets can stay out of the
// source configuration file.
type Bitbucket struct {
	Username string
	Password string
}

// Flags returns CLI flags for Bitbucket configuration
func (c *Bitbucket) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "bitbucket-username",
			Usage:       "Default Bitbucket username (Cloud app password auth)",
			Destination: &c.Username,
			Sources:     cli.EnvVars("HERALD_BITBUCKET_USERNAME"),
		},
		&cli.StringFlag{
			Name:        "bitbucket-password",
			Usage:       "Default Bitbucket app password or access token",
			Destination: &c.Password,
			Sources:     cli.EnvVars("HERALD_BITBUCKET_PASSWORD"),
		},
	}
}
