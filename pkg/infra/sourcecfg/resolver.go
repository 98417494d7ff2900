package sourcecfg

import (
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/herald/pkg/domain/model"
	"github.com/m-mizutani/herald/pkg/domain/types"
)

// Resolver serves source lookups and root URL resolution over a loaded
// configuration. FindSource builds the policy fresh on every call, so a
// reloaded configuration takes effect between a build's checkout and its
// completion.
type Resolver struct {
	cfg             Config
	defaultUsername string
	defaultPassword string
}

// SetRootURL overrides the configured root URL, typically from a flag or
// environment variable.
func (r *Resolver) SetRootURL(rootURL string) {
	r.cfg.RootURL = rootURL
}

// SetDefaultCredentials supplies credentials for sources that omit them, so
// secrets can stay out of the configuration file.
func (r *Resolver) SetDefaultCredentials(username, password string) {
	r.defaultUsername = username
	r.defaultPassword = password
}

// FindSource returns the source whose job prefix is the longest match for
// the job full name, or nil when no source covers the job.
func (r *Resolver) FindSource(jobFullName string) *model.Source {
	var best *SourceConfig
	for i := range r.cfg.Sources {
		sc := &r.cfg.Sources[i]
		if !matchesPrefix(jobFullName, sc.Job) {
			continue
		}
		if best == nil || len(sc.Job) > len(best.Job) {
			best = sc
		}
	}
	if best == nil {
		return nil
	}

	src := &model.Source{
		JobPrefix:  best.Job,
		Owner:      best.Owner,
		Repository: best.Repository,
		Endpoint:   best.Endpoint,
		Flavor:     best.flavor(),
		Username:   best.Username,
		Password:   best.Password,
		Policy: model.SourcePolicy{
			NotificationsDisabled:          best.DisableNotifications,
			SendSuccessForUnstable:         best.SendSuccessForUnstable,
			DisableNotificationForNotBuilt: best.DisableNotificationForNotBuilt,
			ShareBuildKey:                  best.ShareBuildKey,
		},
	}
	if src.Username == "" {
		src.Username = r.defaultUsername
	}
	if src.Password == "" {
		src.Password = r.defaultPassword
	}
	return src
}

// matchesPrefix reports whether the job full name falls under the prefix.
// "team-a/app" covers "team-a/app" and "team-a/app/main", but not
// "team-a/app-legacy".
func matchesPrefix(jobFullName, prefix string) bool {
	return jobFullName == prefix || strings.HasPrefix(jobFullName, prefix+"/")
}

// RunURL returns the externally reachable URL of the build's status page. It
// fails while no root URL is configured; dispatch treats that as
// "notifications disabled", not as a build failure.
func (r *Resolver) RunURL(build *model.Build) (string, error) {
	if r.cfg.RootURL == "" {
		return "", goerr.New("root URL is not configured", goerr.T(types.ErrTagConfig))
	}

	base := strings.TrimSuffix(r.cfg.RootURL, "/")
	job := strings.Trim(build.JobURL, "/")
	return base + "/" + job + "/" + strconv.Itoa(build.Number) + "/", nil
}
