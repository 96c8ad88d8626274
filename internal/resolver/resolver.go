// Package resolver derives the filesystem placement and identifier names of a route file
// from an endpoint path.
package resolver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"create-endpoint/internal/config"
	"create-endpoint/internal/logger"
	"create-endpoint/internal/model"
	"create-endpoint/internal/utils"
)

// Layout is the fixed directory layout routes are placed in
type Layout struct {
	Marker    string // project-root marker, e.g. "app"
	APIDir    string // API directory below the marker, e.g. "api"
	RouteFile string // handler file name, e.g. "route.ts"
}

// LayoutFromConfig extracts the route layout from the configuration
func LayoutFromConfig(cfg *config.Config) Layout {
	return Layout{
		Marker:    cfg.Project.Marker,
		APIDir:    cfg.Project.APIDir,
		RouteFile: cfg.Project.RouteFile,
	}
}

// Resolver maps endpoint specs onto route files
type Resolver struct {
	layout Layout
}

// New creates a Resolver for the given layout
func New(layout Layout) *Resolver {
	return &Resolver{layout: layout}
}

// Resolve checks that rootDir is a project root and computes where the route file for spec lives.
// It does not touch the filesystem beyond the marker check.
func (r *Resolver) Resolve(spec model.EndpointSpec, rootDir string) (*model.Resolution, error) {
	if len(spec.Path) == 0 {
		return nil, &model.UsageError{Reason: "endpoint path must contain at least one segment"}
	}

	if err := r.CheckProjectRoot(rootDir); err != nil {
		return nil, err
	}

	parts := append([]string{rootDir, r.layout.Marker, r.layout.APIDir}, spec.Path...)
	dir := filepath.Join(parts...)
	file := filepath.Join(dir, r.layout.RouteFile)

	rel, err := filepath.Rel(rootDir, file)
	if err != nil {
		return nil, fmt.Errorf("failed to relativize %s: %w", file, err)
	}

	res := &model.Resolution{
		Segments:         append([]string(nil), spec.Path...),
		DirectoryPath:    dir,
		FilePath:         file,
		RelPath:          rel,
		SchemaIdentifier: SchemaIdentifier(spec.Path),
		URLPath:          utils.URLPath(r.layout.APIDir, spec.Path),
	}

	logger.Debug("Resolved %s -> %s (%s)", spec.RawPath(), res.RelPath, res.SchemaIdentifier)
	return res, nil
}

// CheckProjectRoot fails with ProjectRootError unless rootDir contains the marker directory
func (r *Resolver) CheckProjectRoot(rootDir string) error {
	info, err := os.Stat(filepath.Join(rootDir, r.layout.Marker))
	if err != nil || !info.IsDir() {
		return &model.ProjectRootError{Dir: rootDir, Marker: r.layout.Marker}
	}
	return nil
}

// EnsureDirectory creates every directory leading to the route file.
// Existing directories are not an error.
func EnsureDirectory(res *model.Resolution) error {
	if err := os.MkdirAll(res.DirectoryPath, 0755); err != nil {
		return &model.WriteError{Path: res.DirectoryPath, Err: err}
	}
	return nil
}

var titleCaser = cases.Title(language.Und, cases.NoLower)

// SchemaIdentifier derives the schema identifier from path segments.
// Each segment is split into words on non-alphanumeric runes, every word gets an upper-case
// first letter, and "Schema" is appended:
//
//	["dashboard", "stats"]      -> DashboardStatsSchema
//	["user-profile", "[id]"]    -> UserProfileIdSchema
func SchemaIdentifier(segments []string) model.SchemaIdentifier {
	var b strings.Builder
	for _, seg := range segments {
		words := strings.FieldsFunc(seg, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		for _, w := range words {
			b.WriteString(titleCaser.String(w))
		}
	}

	base := b.String()
	if base == "" || unicode.IsDigit([]rune(base)[0]) {
		base = "Route" + base
	}
	return model.NewSchemaIdentifier(base)
}
