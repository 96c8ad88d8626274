package analyzer

import (
	"path/filepath"
	"strings"
)

// splitRoutePath splits "dashboard/[id]" into its segments; the API root itself has none
func splitRoutePath(routePath string) []string {
	routePath = strings.Trim(routePath, "/")
	if routePath == "" || routePath == "." {
		return nil
	}
	return strings.Split(routePath, "/")
}

// routePathOf returns the directory of file relative to apiRoot with forward slashes
func routePathOf(apiRoot, file string) (string, error) {
	rel, err := filepath.Rel(apiRoot, filepath.Dir(file))
	if err != nil {
		return "", err
	}
	rel = filepath.ToSlash(rel)
	if rel == "." {
		return "", nil
	}
	return rel, nil
}
