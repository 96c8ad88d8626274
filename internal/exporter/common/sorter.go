package common

import (
	"sort"

	"create-endpoint/internal/model"
)

// SortRoutes returns a copy of routes ordered by URL path, then by route path.
// Route groups collapse onto the same URL, so the route path breaks ties.
func SortRoutes(routes []model.RouteDef) []model.RouteDef {
	sorted := make([]model.RouteDef, len(routes))
	copy(sorted, routes)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].URLPath != sorted[j].URLPath {
			return sorted[i].URLPath < sorted[j].URLPath
		}
		return sorted[i].Path < sorted[j].Path
	})
	return sorted
}

// Operation is one exported handler of a route
type Operation struct {
	Route  *model.RouteDef
	Method string
}

// Operations flattens routes into one entry per exported handler, keeping route order
func Operations(routes []model.RouteDef) []Operation {
	var ops []Operation
	for i := range routes {
		for _, m := range routes[i].Methods {
			ops = append(ops, Operation{Route: &routes[i], Method: m})
		}
	}
	return ops
}
