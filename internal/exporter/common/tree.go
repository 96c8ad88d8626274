package common

import "create-endpoint/internal/model"

// RootSection names routes that live directly in the API directory
const RootSection = "(root)"

// Section groups the routes sharing a first path segment
type Section struct {
	Name   string
	Routes []model.RouteDef
}

// GroupRoutes sorts routes and groups them by section, sections in first-seen order
func GroupRoutes(routes []model.RouteDef) []Section {
	var sections []Section
	index := make(map[string]int)

	for _, r := range SortRoutes(routes) {
		name := r.Section()
		if name == "" {
			name = RootSection
		}

		i, ok := index[name]
		if !ok {
			i = len(sections)
			index[name] = i
			sections = append(sections, Section{Name: name})
		}
		sections[i].Routes = append(sections[i].Routes, r)
	}
	return sections
}
