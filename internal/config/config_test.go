package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"create-endpoint/internal/logger"
)

func TestLoadConfigWithDefaults(t *testing.T) {
	// Load config without a file (should use defaults)
	cfg, err := Load("nonexistent.yaml", nil)
	if err != nil {
		t.Fatalf("Failed to load config with defaults: %v", err)
	}

	if cfg.Source != "" {
		t.Errorf("Expected no config source, got %s", cfg.Source)
	}

	if cfg.Project.Marker != "app" {
		t.Errorf("Expected marker 'app', got %q", cfg.Project.Marker)
	}

	if cfg.Project.APIDir != "api" {
		t.Errorf("Expected api dir 'api', got %q", cfg.Project.APIDir)
	}

	if cfg.Project.RouteFile != "route.ts" {
		t.Errorf("Expected route file 'route.ts', got %q", cfg.Project.RouteFile)
	}

	if cfg.Template.SecretEnv != "CRON_SECRET" {
		t.Errorf("Expected secret env CRON_SECRET, got %q", cfg.Template.SecretEnv)
	}

	if cfg.Server.BaseURL != "http://localhost:3000" {
		t.Errorf("Expected default base URL, got %q", cfg.Server.BaseURL)
	}

	if !filepath.IsAbs(cfg.Project.RootDir) {
		t.Errorf("Expected absolute root dir, got %s", cfg.Project.RootDir)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Defaults should validate: %v", err)
	}

	t.Logf("Config loaded successfully with defaults")
	cfg.Print(io.Discard)
}

func TestLoadConfigDoesNotCreateOutputDir(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	content := "output:\n  dir: " + filepath.ToSlash(filepath.Join(tmpDir, "reports")) + "\n"
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := Load(configPath, nil); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(tmpDir, "reports")); !os.IsNotExist(err) {
		t.Error("Load must not create the output directory")
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `
project:
  root_dir: "` + filepath.ToSlash(tmpDir) + `"
  route_file: "route.js"
template:
  secret_env: "INGEST_TOKEN"
  cache_control: "no-store"
server:
  base_url: "http://localhost:4000"
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load(configPath, nil)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Source != configPath {
		t.Errorf("Source = %s, expected %s", cfg.Source, configPath)
	}
	if cfg.Project.RouteFile != "route.js" {
		t.Errorf("RouteFile = %s, expected route.js", cfg.Project.RouteFile)
	}
	if cfg.Template.SecretEnv != "INGEST_TOKEN" {
		t.Errorf("SecretEnv = %s, expected INGEST_TOKEN", cfg.Template.SecretEnv)
	}
	if cfg.Template.CacheControl != "no-store" {
		t.Errorf("CacheControl = %s, expected no-store", cfg.Template.CacheControl)
	}
	// Untouched keys keep their defaults
	if cfg.Project.Marker != "app" {
		t.Errorf("Marker = %s, expected default app", cfg.Project.Marker)
	}
	if cfg.Server.BaseURL != "http://localhost:4000" {
		t.Errorf("BaseURL = %s, expected http://localhost:4000", cfg.Server.BaseURL)
	}
}

func TestLoadConfigMalformedFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("project: [unclosed"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := Load(configPath, nil); err == nil {
		t.Error("Expected error for malformed config file")
	}
}

func TestLoadConfigFlagOverrides(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("base-url", "http://localhost:3000", "")
	flags.String("output", "", "")

	if err := flags.Parse([]string{"--base-url", "https://staging.example.com"}); err != nil {
		t.Fatalf("Failed to parse flags: %v", err)
	}

	cfg, err := Load("nonexistent.yaml", flags)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.BaseURL != "https://staging.example.com" {
		t.Errorf("BaseURL = %s, expected flag value", cfg.Server.BaseURL)
	}

	// Unchanged flag must not override the default output dir
	if filepath.Base(cfg.Output.Dir) != "output" {
		t.Errorf("Output.Dir = %s, expected default ./output", cfg.Output.Dir)
	}
}

func TestShouldExclude(t *testing.T) {
	cfg := &Config{
		Report: ReportConfig{
			ExcludeDirs: []string{
				"**/node_modules/**",
				"**/.next/**",
				"**/.git/**",
			},
		},
	}

	tests := []struct {
		path     string
		expected bool
	}{
		{"app/api/dashboard/stats/route.ts", false},
		{"app/node_modules/pkg/route.ts", true},
		{".next/server/app/api/route.ts", true},
		{"project/.git/config", true},
		{"app/api/health/route.ts", false},
		{"/work/site/app/node_modules", true},
		{"/work/site/.next", true},
		{"app/api/next/route.ts", false},
		{"app/api/my.next.js/route.ts", false},
	}

	for _, tt := range tests {
		result := cfg.ShouldExclude(tt.path)
		if result != tt.expected {
			t.Errorf("ShouldExclude(%s) = %v, expected %v", tt.path, result, tt.expected)
		}
	}
}

func TestGetOutputPath(t *testing.T) {
	cfg := &Config{
		Output: OutputConfig{
			Dir:      "/tmp/output",
			FileName: "test-report",
		},
	}

	expected := filepath.Join("/tmp/output", "test-report.xlsx")
	result := cfg.GetOutputPath()

	if result != expected {
		t.Errorf("GetOutputPath() = %s, expected %s", result, expected)
	}
}

func TestAPIRootAndPrefix(t *testing.T) {
	cfg := &Config{
		Project: ProjectConfig{
			RootDir: "/work/site",
			Marker:  "app",
			APIDir:  "api",
		},
	}

	if got := cfg.APIRoot(); got != filepath.Join("/work/site", "app", "api") {
		t.Errorf("APIRoot() = %s", got)
	}
	if got := cfg.APIPrefix(); got != "/api" {
		t.Errorf("APIPrefix() = %s, expected /api", got)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg, err := Default()
		if err != nil {
			t.Fatalf("Default failed: %v", err)
		}
		return cfg
	}

	tests := []struct {
		name      string
		mutate    func(*Config)
		shouldErr bool
	}{
		{"Valid config", func(*Config) {}, false},
		{"Empty marker", func(c *Config) { c.Project.Marker = "" }, true},
		{"Route file with separator", func(c *Config) { c.Project.RouteFile = "api/route.ts" }, true},
		{"Invalid secret env", func(c *Config) { c.Template.SecretEnv = "CRON-SECRET" }, true},
		{"Relative base URL", func(c *Config) { c.Server.BaseURL = "localhost:3000/x" }, true},
		{"Empty output filename", func(c *Config) { c.Output.FileName = "" }, true},
		{"Empty cache control", func(c *Config) { c.Template.CacheControl = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.shouldErr && err == nil {
				t.Error("Expected error but got nil")
			}
			if !tt.shouldErr && err != nil {
				t.Errorf("Expected no error but got: %v", err)
			}
		})
	}
}

func TestValidateNamesConfigKey(t *testing.T) {
	cfg, err := Default()
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}
	cfg.Template.SecretEnv = "CRON-SECRET"

	err = cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "template.secret_env") {
		t.Errorf("Expected error naming template.secret_env, got %v", err)
	}
}

func TestLoggerOptions(t *testing.T) {
	cfg, err := Default()
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}

	if opts := cfg.LoggerOptions(io.Discard, false); opts.Level != logger.LevelInfo || opts.File != "" {
		t.Errorf("default options = %+v, expected info level and no file", opts)
	}

	cfg.Log.Level = "warn"
	if opts := cfg.LoggerOptions(io.Discard, false); opts.Level != logger.LevelWarn {
		t.Errorf("Level = %v, expected WARN", opts.Level)
	}
	if opts := cfg.LoggerOptions(io.Discard, true); opts.Level != logger.LevelDebug {
		t.Errorf("verbose Level = %v, expected DEBUG", opts.Level)
	}

	cfg.Log.Level = "loud"
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "log.level") {
		t.Errorf("Expected log.level validation error, got %v", err)
	}
}

func TestMatchPathPattern(t *testing.T) {
	tests := []struct {
		path    string
		pattern string
		want    bool
	}{
		{".next/server/app/api/route.ts", "**/.next/**", true},
		{"app/.next", "**/.next/**", true},
		{"app/api/route.ts", "**/.next/**", false},
		{"app/api/_drafts/route.ts", "app/api/_*/**", true},
		{"src/app/api/_drafts/route.ts", "app/api/_*/**", false},
		{"app/api/legacy/v1/route.ts", "**/legacy", false},
		{"app/api/legacy", "**/legacy", true},
		{"app/api/fixtures/route.ts", "fixtures", true},
		{"app/api/fixture-data/route.ts", "fixtures", false},
	}

	for _, tt := range tests {
		if got := matchPathPattern(tt.path, tt.pattern); got != tt.want {
			t.Errorf("matchPathPattern(%q, %q) = %v, expected %v", tt.path, tt.pattern, got, tt.want)
		}
	}
}
