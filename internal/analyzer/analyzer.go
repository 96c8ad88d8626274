// Package analyzer inventories the route handler files of a Next.js App Router project.
package analyzer

import (
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"create-endpoint/internal/config"
	"create-endpoint/internal/logger"
	"create-endpoint/internal/model"
)

// LoadRoute reads and parses one route file found below cfg.APIRoot()
func LoadRoute(cfg *config.Config, file string) (*model.RouteDef, error) {
	routePath, err := routePathOf(cfg.APIRoot(), file)
	if err != nil {
		return nil, fmt.Errorf("failed to relativize %s: %w", file, err)
	}

	content, err := ReadFile(file, cfg.Report.Encoding)
	if err != nil {
		return nil, err
	}

	route := ParseRoute(content, routePath, cfg.APIPrefix())
	if rel, err := filepath.Rel(cfg.Project.RootDir, file); err == nil {
		route.File = filepath.ToSlash(rel)
	} else {
		route.File = file
	}

	if len(route.Methods) == 0 {
		logger.Warn("No exported handler in %s", route.File)
	}
	return route, nil
}

// ExtractRoutes scans the API directory and parses every route file.
// Unreadable files are logged and skipped.
func ExtractRoutes(cfg *config.Config) ([]model.RouteDef, error) {
	files, err := ScanRoutes(cfg.APIRoot(), cfg.Project.RouteFile, cfg.ShouldExclude)
	if err != nil {
		return nil, err
	}

	routes := make([]model.RouteDef, 0, len(files))
	for _, file := range files {
		route, err := LoadRoute(cfg, file)
		if err != nil {
			logger.ScanError(file, err, "load route")
			logger.Warn("Failed to read route file %s: %v", file, err)
			continue
		}
		routes = append(routes, *route)
	}

	logger.Debug("Extracted %d routes from %d files", len(routes), len(files))
	return routes, nil
}

// BuildSummary computes the inventory totals and per-section statistics
func BuildSummary(routes []model.RouteDef) *model.Summary {
	s := model.NewSummary()
	s.ReportDate = time.Now().Format("2006-01-02")

	sections := make(map[string]*model.SectionStat)

	for _, r := range routes {
		s.TotalRoutes++
		s.TotalHandlers += len(r.Methods)

		if r.Protected {
			s.TotalProtected++
		}
		if r.CacheControl != "" {
			s.TotalCached++
		}
		if r.Dynamic {
			s.TotalDynamic++
		}

		for _, m := range r.Methods {
			switch m {
			case "GET":
				s.TotalGET++
			case "POST":
				s.TotalPOST++
			default:
				s.TotalOther++
			}
		}

		name := r.Section()
		if name == "" {
			name = "(root)"
		}
		stat, ok := sections[name]
		if !ok {
			stat = &model.SectionStat{Name: name}
			sections[name] = stat
		}
		stat.Routes++
		stat.Handlers += len(r.Methods)
		if r.Protected {
			stat.Protected++
		}
	}

	names := make([]string, 0, len(sections))
	for name := range sections {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		s.AddSectionStat(*sections[name])
	}

	return s
}
