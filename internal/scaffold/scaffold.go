// Package scaffold creates route files: resolve, render, then write.
package scaffold

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"create-endpoint/internal/config"
	"create-endpoint/internal/logger"
	"create-endpoint/internal/model"
	"create-endpoint/internal/renderer"
	"create-endpoint/internal/resolver"
	"create-endpoint/internal/ui"
)

// Result describes a created (or previewed) route file
type Result struct {
	FilePath  string
	RelPath   string
	Method    model.Method
	Protected bool
	URL       string
	Overwrote bool
	Content   string
}

// Scaffolder owns the configured resolver and renderer
type Scaffolder struct {
	cfg      *config.Config
	resolver *resolver.Resolver
	renderer *renderer.Renderer
	progress io.Writer
	quiet    bool
}

// Option customizes a Scaffolder
type Option func(*Scaffolder)

// WithProgressOutput sends progress bars to w instead of stdout
func WithProgressOutput(w io.Writer) Option {
	return func(s *Scaffolder) {
		s.progress = w
	}
}

// Quiet disables progress bars
func Quiet() Option {
	return func(s *Scaffolder) {
		s.quiet = true
	}
}

// New creates a Scaffolder from the configuration
func New(cfg *config.Config, opts ...Option) *Scaffolder {
	s := &Scaffolder{
		cfg:      cfg,
		resolver: resolver.New(resolver.LayoutFromConfig(cfg)),
		renderer: renderer.New(renderer.OptionsFromConfig(cfg)),
		progress: os.Stdout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create writes the route file for spec below the configured project root.
// Nothing is written unless the project root check passes.
func (s *Scaffolder) Create(spec model.EndpointSpec) (*Result, error) {
	pipeline := s.pipeline()
	defer pipeline.Finish()

	var (
		res       *model.Resolution
		content   string
		overwrote bool
	)

	err := pipeline.Run(1, func(bar *ui.Bar) error {
		var err error
		if res, err = s.resolver.Resolve(spec, s.cfg.Project.RootDir); err != nil {
			return err
		}
		return bar.Increment()
	})
	if err != nil {
		return nil, err
	}

	err = pipeline.Run(1, func(bar *ui.Bar) error {
		content = s.renderer.Render(spec, res.SchemaIdentifier)
		return bar.Increment()
	})
	if err != nil {
		return nil, err
	}

	err = pipeline.Run(2, func(bar *ui.Bar) error {
		bar.Describe(res.RelPath)
		if err := resolver.EnsureDirectory(res); err != nil {
			return err
		}
		if err := bar.Increment(); err != nil {
			return err
		}

		overwrote = exists(res.FilePath)
		if overwrote {
			logger.Debug("Overwriting existing route file %s", res.RelPath)
		}
		if err := os.WriteFile(res.FilePath, []byte(content), 0644); err != nil {
			return &model.WriteError{Path: res.FilePath, Err: err}
		}
		return bar.Increment()
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("Wrote %d bytes to %s", len(content), res.FilePath)

	result := s.result(spec, res, content)
	result.Overwrote = overwrote
	return result, nil
}

// Preview resolves and renders spec without touching the filesystem
func (s *Scaffolder) Preview(spec model.EndpointSpec) (*Result, error) {
	res, err := s.resolver.Resolve(spec, s.cfg.Project.RootDir)
	if err != nil {
		return nil, err
	}

	content := s.renderer.Render(spec, res.SchemaIdentifier)
	result := s.result(spec, res, content)
	result.Overwrote = exists(res.FilePath)
	return result, nil
}

// exists reports whether path names an existing file; stat failures other
// than "not found" are logged and treated as absent
func exists(path string) bool {
	_, err := os.Stat(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Debug("Could not stat %s: %v", path, err)
	}
	return err == nil
}

func (s *Scaffolder) result(spec model.EndpointSpec, res *model.Resolution, content string) *Result {
	return &Result{
		FilePath:  res.FilePath,
		RelPath:   res.RelPath,
		Method:    spec.Method,
		Protected: spec.Protected,
		URL:       strings.TrimRight(s.cfg.Server.BaseURL, "/") + res.URLPath,
		Content:   content,
	}
}

func (s *Scaffolder) pipeline() *ui.Pipeline {
	p := ui.NewPipeline(s.progress, ui.ScaffoldPhases...)
	if s.quiet {
		p.Disable()
	}
	return p
}
