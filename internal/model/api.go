package model

import "strings"

// Where a handler reads its input from, shared by the generator and the inventory
const (
	ParamsFromQuery = "query parameters"
	ParamsFromBody  = "request body"
)

// RouteDef represents one route file found under the API directory, optimized for documentation
type RouteDef struct {
	// Route path relative to the API directory (e.g., "dashboard/stats")
	Path string

	// URL path as served (e.g., "/api/dashboard/stats"); route groups removed
	URLPath string

	// Route file path relative to the project root
	File string

	// Exported handler methods in source order (GET, POST, ...)
	Methods []string

	// Whether the handler checks a bearer token before running
	Protected bool

	// Name of the zod schema constant, if any
	SchemaName string

	// ParamsFromQuery, ParamsFromBody, or empty when no schema parse was found
	ParamLocation string

	// Cache-Control header value set on the success response
	CacheControl string

	// Value of the exported `runtime` constant ("edge", "nodejs")
	Runtime string

	// Whether the path contains a dynamic segment such as [id]
	Dynamic bool
}

// NewRouteDef creates a new route definition
func NewRouteDef(path string) *RouteDef {
	return &RouteDef{
		Path:    path,
		Methods: make([]string, 0),
	}
}

// HasMethod reports whether the route exports a handler for method
func (r *RouteDef) HasMethod(method string) bool {
	for _, m := range r.Methods {
		if m == method {
			return true
		}
	}
	return false
}

// Section returns the first path segment, used to group routes in reports
func (r *RouteDef) Section() string {
	section, _, _ := strings.Cut(r.Path, "/")
	return section
}
