package cli_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/herald/pkg/cli"
	"github.com/m-mizutani/herald/pkg/domain/model"
)

type stubPost struct {
	path   string
	auth   string
	status model.BuildStatus
}

// newBitbucketStub stands in for the Bitbucket Cloud API and records every
// build status POST it receives.
func newBitbucketStub(t *testing.T) (*httptest.Server, *[]stubPost) {
	t.Helper()
	posts := &[]stubPost{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		post := stubPost{
			path: r.URL.Path,
			auth: r.Header.Get("Authorization"),
		}
		if err := json.NewDecoder(r.Body).Decode(&post.status); err != nil {
			t.Errorf("Failed to decode request body: %v", err)
		}
		*posts = append(*posts, post)
		w.WriteHeader(http.StatusCreated)
	}))
	t.Cleanup(server.Close)
	return server, posts
}

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	gt.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const notifyEventJSON = `{
	"build": {
		"number": 7,
		"full_display_name": "team-a/app » main #7",
		"result": "SUCCESS",
		"job_full_name": "team-a/app/main",
		"job_url": "job/team-a/job/app/job/main/"
	},
	"revision": {"head": "main", "hash": "abc123"}
}`

func TestNotifyCommand_PostsOneStatus(t *testing.T) {
	stub, posts := newBitbucketStub(t)

	dir := t.TempDir()
	cfgPath := writeTestFile(t, dir, "sources.toml", fmt.Sprintf(`
root_url = "https://ci.example.com"

[[source]]
job = "team-a/app"
owner = "acme"
repository = "widget"
endpoint = %q
username = "ci-bot"
password = "app-password"
`, stub.URL))
	evPath := writeTestFile(t, dir, "event.json", notifyEventJSON)

	err := cli.Run(context.Background(), []string{
		"herald", "notify",
		"--sources", cfgPath,
		"--event", evPath,
	})
	gt.NoError(t, err)

	gt.Number(t, len(*posts)).Equal(1)
	post := (*posts)[0]
	gt.Value(t, post.path).Equal("/2.0/repositories/acme/widget/commit/abc123/statuses/build")
	gt.True(t, strings.HasPrefix(post.auth, "Basic "))
	gt.Value(t, post.status.State).Equal(model.StatusSuccessful)
	gt.Value(t, post.status.Key).Equal("job/team-a/job/app/job/main/")
	gt.Value(t, post.status.URL).Equal("https://ci.example.com/job/team-a/job/app/job/main/7/")
	gt.Value(t, post.status.Name).Equal("team-a/app » main #7")
}

func TestNotifyCommand_FailsOnMissingEventFile(t *testing.T) {
	stub, posts := newBitbucketStub(t)

	dir := t.TempDir()
	cfgPath := writeTestFile(t, dir, "sources.toml", fmt.Sprintf(`
root_url = "https://ci.example.com"

[[source]]
job = "team-a/app"
owner = "acme"
repository = "widget"
endpoint = %q
`, stub.URL))

	err := cli.Run(context.Background(), []string{
		"herald", "notify",
		"--sources", cfgPath,
		"--event", filepath.Join(dir, "missing.json"),
	})
	gt.Error(t, err)
	gt.Number(t, len(*posts)).Equal(0)
}
