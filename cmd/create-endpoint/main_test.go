package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func projectDir(t *testing.T, withMarker bool) string {
	t.Helper()
	dir := t.TempDir()
	if withMarker {
		require.NoError(t, os.Mkdir(filepath.Join(dir, "app"), 0755))
	}
	chdir(t, dir)
	return dir
}

func TestRunCreatesRoute(t *testing.T) {
	dir := projectDir(t, true)

	var out bytes.Buffer
	code := run([]string{"dashboard/stats", "GET"}, &out)
	require.Equal(t, 0, code, out.String())

	assert.Contains(t, out.String(), "Created endpoint: "+filepath.Join("app", "api", "dashboard", "stats", "route.ts"))
	assert.Contains(t, out.String(), "Method: GET")
	assert.Contains(t, out.String(), "Protected: false")
	assert.Contains(t, out.String(), "URL: http://localhost:3000/api/dashboard/stats")
	assert.Contains(t, out.String(), "Next steps:")

	_, err := os.Stat(filepath.Join(dir, "app", "api", "dashboard", "stats", "route.ts"))
	assert.NoError(t, err)
}

func TestRunProtectedFlag(t *testing.T) {
	dir := projectDir(t, true)

	var out bytes.Buffer
	code := run([]string{"ingest/refresh", "post", "--protected"}, &out)
	require.Equal(t, 0, code, out.String())
	assert.Contains(t, out.String(), "Method: POST")
	assert.Contains(t, out.String(), "Protected: true")

	data, err := os.ReadFile(filepath.Join(dir, "app", "api", "ingest", "refresh", "route.ts"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "verifyAuth")
}

func TestRunRejectsInput(t *testing.T) {
	tests := []struct {
		name   string
		marker bool
		args   []string
		want   string
	}{
		{"no arguments", true, nil, "Usage: create-endpoint"},
		{"one argument", true, []string{"dashboard/stats"}, "Examples:"},
		{"unknown flag", true, []string{"a", "GET", "--force"}, "Usage: create-endpoint"},
		{"invalid method", true, []string{"dashboard/stats", "PUT"}, "Method must be GET or POST"},
		{"bad path", true, []string{"a/../b", "GET"}, "Usage: create-endpoint"},
		{"missing marker", false, []string{"dashboard/stats", "GET"}, "Must run from project root (directory containing 'app/')"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := projectDir(t, tt.marker)

			var out bytes.Buffer
			code := run(tt.args, &out)
			assert.Equal(t, 1, code)
			assert.Contains(t, out.String(), tt.want)

			_, err := os.Stat(filepath.Join(dir, "app", "api"))
			assert.True(t, os.IsNotExist(err), "nothing may be created")
		})
	}
}

func TestRunIgnoresExtraArguments(t *testing.T) {
	dir := projectDir(t, true)

	var out bytes.Buffer
	code := run([]string{"dashboard/stats", "GET", "leftover", "--protected"}, &out)
	require.Equal(t, 0, code, out.String())
	assert.Contains(t, out.String(), "Protected: true")

	assert.FileExists(t, filepath.Join(dir, "app", "api", "dashboard", "stats", "route.ts"))
	assert.NoDirExists(t, filepath.Join(dir, "app", "api", "dashboard", "stats", "leftover"))
}

func TestRunPrintsNoProgressBars(t *testing.T) {
	projectDir(t, true)

	var out bytes.Buffer
	code := run([]string{"dashboard/stats", "GET"}, &out)
	require.Equal(t, 0, code, out.String())

	for _, phase := range []string{"[Resolving]", "[Rendering]", "[Writing]"} {
		assert.NotContains(t, out.String(), phase)
	}
	assert.True(t, strings.HasPrefix(out.String(), "✅ Created endpoint: "), out.String())
}

func TestUsageNamesConfiguredSecret(t *testing.T) {
	tests := []struct {
		name   string
		config string
		args   []string
		want   string
	}{
		{"default secret", "", []string{"dashboard/stats"}, "require CRON_SECRET authentication"},
		{"configured secret", "template:\n  secret_env: JOBS_TOKEN\n", []string{"dashboard/stats"}, "require JOBS_TOKEN authentication"},
		{"help flag", "template:\n  secret_env: JOBS_TOKEN\n", []string{"--help"}, "require JOBS_TOKEN authentication"},
		{"invalid config", "template:\n  secret_env: 1BAD\n", nil, "require CRON_SECRET authentication"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := projectDir(t, true)
			if tt.config != "" {
				require.NoError(t, os.WriteFile(filepath.Join(dir, ".create-endpoint.yaml"), []byte(tt.config), 0644))
			}

			var out bytes.Buffer
			run(tt.args, &out)
			assert.Contains(t, out.String(), tt.want)
		})
	}
}

func TestRunDryRun(t *testing.T) {
	dir := projectDir(t, true)

	var out bytes.Buffer
	code := run([]string{"dashboard/stats", "GET", "--dry-run"}, &out)
	require.Equal(t, 0, code, out.String())

	assert.Contains(t, out.String(), "export async function GET(")
	_, err := os.Stat(filepath.Join(dir, "app", "api"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunUsesConfigFile(t *testing.T) {
	dir := projectDir(t, true)
	cfg := "template:\n  secret_env: JOBS_TOKEN\nserver:\n  base_url: https://jobs.example.com\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".create-endpoint.yaml"), []byte(cfg), 0644))

	var out bytes.Buffer
	code := run([]string{"jobs/sync", "POST", "--protected"}, &out)
	require.Equal(t, 0, code, out.String())
	assert.Contains(t, out.String(), "URL: https://jobs.example.com/api/jobs/sync")

	data, err := os.ReadFile(filepath.Join(dir, "app", "api", "jobs", "sync", "route.ts"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "process.env.JOBS_TOKEN")
}

func TestRunBaseURLFlag(t *testing.T) {
	projectDir(t, true)

	var out bytes.Buffer
	code := run([]string{"dashboard/stats", "GET", "--base-url", "http://127.0.0.1:4000"}, &out)
	require.Equal(t, 0, code, out.String())
	assert.Contains(t, out.String(), "URL: http://127.0.0.1:4000/api/dashboard/stats")
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent to testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
