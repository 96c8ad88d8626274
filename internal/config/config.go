package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"create-endpoint/internal/logger"
)

// DefaultConfigFile is looked up in the working directory when no --config is given
const DefaultConfigFile = ".create-endpoint.yaml"

// DefaultSecretEnv is the environment variable protected routes compare against
const DefaultSecretEnv = "CRON_SECRET"

// Config represents the application configuration
type Config struct {
	Project  ProjectConfig  `mapstructure:"project"`
	Template TemplateConfig `mapstructure:"template"`
	Server   ServerConfig   `mapstructure:"server"`
	Report   ReportConfig   `mapstructure:"report"`
	Output   OutputConfig   `mapstructure:"output"`
	Log      LogConfig      `mapstructure:"log"`

	// Source is the config file that was read, empty when running on defaults
	Source string `mapstructure:"-"`
}

// ProjectConfig holds the layout of the target Next.js project
type ProjectConfig struct {
	RootDir   string `mapstructure:"root_dir"`                                       // Project root (must contain Marker)
	Marker    string `mapstructure:"marker" validate:"required"`                     // Project-root marker directory, also the app router root
	APIDir    string `mapstructure:"api_dir" validate:"required"`                    // API directory below the marker
	RouteFile string `mapstructure:"route_file" validate:"required,excludesall=/\\"` // Route handler file name
}

// TemplateConfig holds the values spliced into generated route files
type TemplateConfig struct {
	SecretEnv     string `mapstructure:"secret_env" validate:"envname"`     // Env var the generated bearer check compares against
	CacheControl  string `mapstructure:"cache_control" validate:"required"` // Cache-Control value for GET responses
	ServiceImport string `mapstructure:"service_import"`                    // Placeholder service import line
}

// ServerConfig holds settings for printing reachable URLs
type ServerConfig struct {
	BaseURL string `mapstructure:"base_url" validate:"required,http_url"` // Local dev server (e.g., "http://localhost:3000")
}

// ReportConfig holds route inventory settings
type ReportConfig struct {
	ExcludeDirs  []string `mapstructure:"exclude_dirs"`  // Directories to exclude
	Encoding     []string `mapstructure:"encoding"`      // Fallback encodings for non UTF-8 files
	WordTemplate string   `mapstructure:"word_template"` // Optional .docx template, built-in when empty
}

// OutputConfig holds report output settings
type OutputConfig struct {
	Dir      string `mapstructure:"dir"`                           // Output directory
	FileName string `mapstructure:"file_name" validate:"required"` // Output file name (without extension)
}

// LogConfig holds logger settings
type LogConfig struct {
	File  string `mapstructure:"file"`                                         // Log file path; console only when empty
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"` // Console threshold
}

// flagKeys maps command line flag names onto config keys
var flagKeys = map[string]string{
	"base-url": "server.base_url",
	"output":   "output.dir",
	"log-file": "log.file",
}

var envNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Load reads the configuration from a file or uses defaults.
// If configPath is empty, it looks for DefaultConfigFile in the current directory.
// If the file doesn't exist, it uses sensible defaults.
// Flags present in flags (and changed by the user) override file values.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath == "" {
		configPath = DefaultConfigFile
	}
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	source := ""
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		source = v.ConfigFileUsed()
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag --%s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Source = source

	if err := cfg.normalizePaths(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the configuration used when no file and no flags are given
func Default() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal defaults: %w", err)
	}
	if err := cfg.normalizePaths(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults configures sensible default values
func setDefaults(v *viper.Viper) {
	// Project defaults - Next.js App Router layout
	v.SetDefault("project.root_dir", ".")
	v.SetDefault("project.marker", "app")
	v.SetDefault("project.api_dir", "api")
	v.SetDefault("project.route_file", "route.ts")

	// Template defaults
	v.SetDefault("template.secret_env", DefaultSecretEnv)
	v.SetDefault("template.cache_control", "public, s-maxage=300, stale-while-revalidate=600")
	v.SetDefault("template.service_import", `// import { exampleService } from "@/lib/services/example.service";`)

	v.SetDefault("server.base_url", "http://localhost:3000")

	// Report defaults
	v.SetDefault("report.exclude_dirs", []string{
		"**/node_modules/**",
		"**/.next/**",
		"**/.git/**",
	})
	v.SetDefault("report.encoding", []string{"utf-8", "euc-kr", "windows-1252"})
	v.SetDefault("report.word_template", "")

	// Output defaults
	v.SetDefault("output.dir", "./output")
	v.SetDefault("output.file_name", "route-report")

	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
}

// normalizePaths converts relative paths to absolute paths
func (c *Config) normalizePaths() error {
	absRoot, err := filepath.Abs(c.Project.RootDir)
	if err != nil {
		return fmt.Errorf("failed to resolve root_dir: %w", err)
	}
	c.Project.RootDir = absRoot

	absOutput, err := filepath.Abs(c.Output.Dir)
	if err != nil {
		return fmt.Errorf("failed to resolve output.dir: %w", err)
	}
	c.Output.Dir = absOutput

	return nil
}

// EnsureOutputDir creates the output directory if it doesn't exist
func (c *Config) EnsureOutputDir() error {
	if err := os.MkdirAll(c.Output.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// MarkerDir returns the absolute path of the project-root marker directory
func (c *Config) MarkerDir() string {
	return filepath.Join(c.Project.RootDir, c.Project.Marker)
}

// APIRoot returns the absolute path of the API directory
func (c *Config) APIRoot() string {
	return filepath.Join(c.MarkerDir(), c.Project.APIDir)
}

// APIPrefix returns the URL prefix routes under APIRoot are served from
func (c *Config) APIPrefix() string {
	return "/" + strings.Trim(filepath.ToSlash(c.Project.APIDir), "/")
}

// ShouldExclude checks if a file path should be excluded based on report.exclude_dirs
func (c *Config) ShouldExclude(filePath string) bool {
	normalizedPath := filepath.ToSlash(filePath)

	for _, pattern := range c.Report.ExcludeDirs {
		if matchPathPattern(normalizedPath, pattern) {
			return true
		}
	}
	return false
}

// GetOutputPath returns the full path for the output Excel file
func (c *Config) GetOutputPath() string {
	return filepath.Join(c.Output.Dir, c.Output.FileName+".xlsx")
}

// Validate checks the configuration against its struct tags
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		fe := fieldErrs[0]
		return fmt.Errorf("invalid %s %q (%s)", strings.TrimPrefix(fe.Namespace(), "Config."), fe.Value(), fe.Tag())
	}
	return fmt.Errorf("validation failed: %w", err)
}

var validate = newValidator()

// newValidator reports fields by their config keys and knows the envname rule
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("envname", func(fl validator.FieldLevel) bool {
		return envNamePattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// matchPathPattern reports whether path matches a slash-separated glob.
// "**" matches any number of whole segments (including none), other segments
// follow path.Match. A pattern without "**" or "/" matches any single segment.
func matchPathPattern(filePath, pattern string) bool {
	pattern = strings.Trim(filepath.ToSlash(pattern), "/")
	segments := strings.Split(strings.Trim(filepath.ToSlash(filePath), "/"), "/")

	if !strings.Contains(pattern, "**") && !strings.Contains(pattern, "/") {
		for _, seg := range segments {
			if ok, _ := path.Match(pattern, seg); ok {
				return true
			}
		}
		return false
	}
	return matchSegments(segments, strings.Split(pattern, "/"))
}

func matchSegments(segments, pattern []string) bool {
	for len(pattern) > 0 {
		if pattern[0] == "**" {
			for skip := 0; skip <= len(segments); skip++ {
				if matchSegments(segments[skip:], pattern[1:]) {
					return true
				}
			}
			return false
		}
		if len(segments) == 0 {
			return false
		}
		if ok, _ := path.Match(pattern[0], segments[0]); !ok {
			return false
		}
		segments, pattern = segments[1:], pattern[1:]
	}
	return len(segments) == 0
}

// Print displays the current configuration
func (c *Config) Print(w io.Writer) {
	fmt.Fprintln(w, "=== create-endpoint configuration ===")
	fmt.Fprintf(w, "Config File:      %s\n", orDefault(c.Source, "(defaults)"))
	fmt.Fprintf(w, "Project Root:     %s\n", c.Project.RootDir)
	fmt.Fprintf(w, "API Directory:    %s\n", c.APIRoot())
	fmt.Fprintf(w, "Route File:       %s\n", c.Project.RouteFile)
	fmt.Fprintf(w, "Secret Env:       %s\n", c.Template.SecretEnv)
	fmt.Fprintf(w, "Cache-Control:    %s\n", c.Template.CacheControl)
	fmt.Fprintf(w, "Base URL:         %s\n", c.Server.BaseURL)
	fmt.Fprintf(w, "Exclude Dirs:     %v\n", c.Report.ExcludeDirs)
	fmt.Fprintf(w, "Output File:      %s\n", c.GetOutputPath())
	fmt.Fprintf(w, "Log:              %s %s\n", c.Log.Level, orDefault(c.Log.File, "(console)"))
	fmt.Fprintln(w, "=====================================")
}

// LoggerOptions builds the logger setup; verbose forces debug output
func (c *Config) LoggerOptions(console io.Writer, verbose bool) logger.Options {
	level, err := logger.ParseLevel(c.Log.Level)
	if err != nil {
		level = logger.LevelInfo
	}
	if verbose {
		level = logger.LevelDebug
	}
	return logger.Options{Console: console, File: c.Log.File, Level: level}
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
