package model

import "strings"

// schemaSuffix is appended to every schema identifier
const schemaSuffix = "Schema"

// SchemaIdentifier names the zod validation schema of one endpoint (e.g. "DashboardStatsSchema").
// Both the declared constant and every in-code reference come from the same value.
type SchemaIdentifier string

// NewSchemaIdentifier appends the "Schema" suffix to a PascalCase base name
func NewSchemaIdentifier(base string) SchemaIdentifier {
	return SchemaIdentifier(base + schemaSuffix)
}

// Base returns the identifier without its "Schema" suffix
func (s SchemaIdentifier) Base() string {
	return strings.TrimSuffix(string(s), schemaSuffix)
}

// Ref returns the name used to reference the schema from generated code
func (s SchemaIdentifier) Ref() string {
	return s.Base() + schemaSuffix
}

func (s SchemaIdentifier) String() string {
	return string(s)
}

// Fragments holds the conditionally selected blocks of a generated route file
type Fragments struct {
	ServiceImport  string
	AuthFunction   string
	AuthCheck      string
	ParamLocation  string
	ValidationCode string
	ServiceCall    string
	CacheHeaders   string
}

// RenderContext is everything the renderer needs for one route file.
// Computed once per invocation.
type RenderContext struct {
	Method           Method
	EndpointPath     string
	SchemaIdentifier SchemaIdentifier
	Fragments        Fragments
}

// Resolution is the filesystem placement and naming derived from an EndpointSpec
type Resolution struct {
	Segments         []string
	DirectoryPath    string // absolute directory holding the route file
	FilePath         string // absolute path of the route file
	RelPath          string // route file path relative to the project root
	SchemaIdentifier SchemaIdentifier
	URLPath          string // "/api/..." as served by the application
}
