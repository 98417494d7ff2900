package sourcecfg

import (
	"io"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/herald/pkg/domain/model"
	"github.com/m-mizutani/herald/pkg/domain/types"
	"github.com/pelletier/go-toml/v2"
)

// Config is the herald source configuration file.
//
//	root_url = "https://ci.example.com"
//
//	[[source]]
//	job = "team-a/app"
//	owner = "acme"
//	repository = "widget"
//	username = "ci-bot"
//	password = "app-password"
//	send_success_for_unstable = true
type Config struct {
	// RootURL is the externally reachable base URL of the CI system. Status
	// callback URLs are built from it; notifications stay disabled while it
	// is empty.
	RootURL string `toml:"root_url"`

	Sources []SourceConfig `toml:"source"`
}

// SourceConfig binds a CI job subtree to a Bitbucket repository.
type SourceConfig struct {
	// Job is the job full-name prefix covered by this source.
	Job string `toml:"job"`

	Owner      string `toml:"owner"`
	Repository string `toml:"repository"`

	// Endpoint is the API base URL. Empty means Bitbucket Cloud.
	Endpoint string `toml:"endpoint"`

	// Flavor is "cloud" or "server". Defaults to cloud.
	Flavor string `toml:"flavor"`

	Username string `toml:"username"`
	Password string `toml:"password"`

	DisableNotifications           bool `toml:"disable_notifications"`
	SendSuccessForUnstable         bool `toml:"send_success_for_unstable"`
	DisableNotificationForNotBuilt bool `toml:"disable_notification_for_not_built"`
	ShareBuildKey                  bool `toml:"share_build_key"`
}

func (c *SourceConfig) flavor() model.Flavor {
	if c.Flavor == "" {
		return model.FlavorCloud
	}
	return model.Flavor(c.Flavor)
}

func (c *SourceConfig) validate() error {
	if c.Job == "" {
		return goerr.New("source requires a job prefix", goerr.T(types.ErrTagConfig))
	}
	switch c.flavor() {
	case model.FlavorCloud:
		if c.Owner == "" || c.Repository == "" {
			return goerr.New("cloud source requires owner and repository",
				goerr.V("job", c.Job), goerr.T(types.ErrTagConfig))
		}
	case model.FlavorServer:
		if c.Endpoint == "" {
			return goerr.New("server source requires an endpoint",
				goerr.V("job", c.Job), goerr.T(types.ErrTagConfig))
		}
	default:
		return goerr.New("unknown source flavor",
			goerr.V("job", c.Job), goerr.V("flavor", c.Flavor), goerr.T(types.ErrTagConfig))
	}
	return nil
}

// Load reads and validates a TOML source configuration file.
func Load(path string) (*Resolver, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open source configuration",
			goerr.V("path", path), goerr.T(types.ErrTagConfig))
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads and validates a TOML source configuration.
func Parse(r io.Reader) (*Resolver, error) {
	var cfg Config
	if err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, goerr.Wrap(err, "failed to parse source configuration",
			goerr.T(types.ErrTagConfig))
	}

	for i := range cfg.Sources {
		if err := cfg.Sources[i].validate(); err != nil {
			return nil, err
		}
	}

	return &Resolver{cfg: cfg}, nil
}
