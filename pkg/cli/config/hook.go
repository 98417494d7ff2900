package config

import "github.com/urfave/cli/v3"

// Hook holds lifecycle hook configuration
type Hook struct {
	Secret string
}

// Flags returns CLI flags for hook configuration
func (c *Hook) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "hook-secret",
			Usage:       "Secret used to verify lifecycle hook signatures",
			Required:    true,
			Destination: &c.Secret,
			Sources:     cli.EnvVars("HERALD_HOOK_SECRET"),
		},
	}
}
