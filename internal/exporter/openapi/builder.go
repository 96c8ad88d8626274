package openapi

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"create-endpoint/internal/config"
	"create-endpoint/internal/exporter/common"
	"create-endpoint/internal/model"
	"create-endpoint/internal/resolver"
	"create-endpoint/internal/utils"
)

const bearerScheme = "bearerAuth"

// OpenAPI Root Object
type OpenAPI struct {
	OpenAPI    string              `json:"openapi"`
	Info       Info                `json:"info"`
	Servers    []Server            `json:"servers,omitempty"`
	Paths      map[string]PathItem `json:"paths"`
	Components *Components         `json:"components,omitempty"`
}

type Info struct {
	Title   string `json:"title"`
	Version string `json:"version"`
}

type Server struct {
	URL string `json:"url"`
}

type PathItem map[string]Operation // Key is method: "get", "post", etc.

type Operation struct {
	Summary     string                `json:"summary,omitempty"`
	Description string                `json:"description,omitempty"`
	OperationID string                `json:"operationId,omitempty"`
	Tags        []string              `json:"tags,omitempty"`
	Parameters  []Parameter           `json:"parameters,omitempty"`
	RequestBody *RequestBody          `json:"requestBody,omitempty"`
	Responses   map[string]Response   `json:"responses"`
	Security    []map[string][]string `json:"security,omitempty"`
}

type Parameter struct {
	Name        string `json:"name"`
	In          string `json:"in"` // "query", "path", "header"
	Required    bool   `json:"required,omitempty"`
	Schema      Schema `json:"schema"`
	Description string `json:"description,omitempty"`
}

type RequestBody struct {
	Content  map[string]MediaType `json:"content"`
	Required bool                 `json:"required,omitempty"`
}

type MediaType struct {
	Schema interface{} `json:"schema"` // Use interface{} for flexible schema
}

type Schema struct {
	Type string `json:"type"`
}

type Response struct {
	Description string               `json:"description"`
	Content     map[string]MediaType `json:"content,omitempty"`
}

type Components struct {
	Schemas         map[string]interface{}    `json:"schemas,omitempty"`
	SecuritySchemes map[string]SecurityScheme `json:"securitySchemes,omitempty"`
}

type SecurityScheme struct {
	Type   string `json:"type"`
	Scheme string `json:"scheme"`
}

// OpenAPIExporter constructs OpenAPI spec
type OpenAPIExporter struct {
	// Stateless
}

func NewOpenAPIExporter() *OpenAPIExporter {
	return &OpenAPIExporter{}
}

func (b *OpenAPIExporter) Export(summary *model.Summary, routes []model.RouteDef, cfg *config.Config) error {
	spec := b.Build(routes, cfg.Server.BaseURL)

	// Determine output file
	dir := filepath.Dir(cfg.GetOutputPath())
	outputFile := filepath.Join(dir, "openapi.json")

	file, err := os.Create(outputFile)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(spec)
}

// Build assembles the OpenAPI document for routes
func (b *OpenAPIExporter) Build(routes []model.RouteDef, baseURL string) *OpenAPI {
	spec := &OpenAPI{
		OpenAPI: "3.0.0",
		Info: Info{
			Title:   "API Routes",
			Version: "1.0.0",
		},
		Paths: make(map[string]PathItem),
		Components: &Components{
			Schemas:         make(map[string]interface{}),
			SecuritySchemes: make(map[string]SecurityScheme),
		},
	}
	if baseURL != "" {
		spec.Servers = []Server{{URL: strings.TrimRight(baseURL, "/")}}
	}

	for _, op := range common.Operations(common.SortRoutes(routes)) {
		b.processOperation(spec, op.Route, op.Method)
	}

	if len(spec.Components.Schemas) == 0 && len(spec.Components.SecuritySchemes) == 0 {
		spec.Components = nil
	}
	return spec
}

func (b *OpenAPIExporter) processOperation(spec *OpenAPI, route *model.RouteDef, method string) {
	segments := routeSegments(route.Path)
	fullPath := templatePath(route.URLPath)

	if _, ok := spec.Paths[fullPath]; !ok {
		spec.Paths[fullPath] = make(PathItem)
	}

	base := resolver.SchemaIdentifier(segments).Base()
	op := Operation{
		Summary:     method + " " + route.URLPath,
		Description: "Defined in " + route.File,
		OperationID: strings.ToLower(method) + base,
		Responses:   make(map[string]Response),
	}
	if section := route.Section(); section != "" {
		op.Tags = []string{section}
	}

	// 1. Path parameters from dynamic segments
	for _, seg := range segments {
		if name := paramName(seg); name != "" {
			op.Parameters = append(op.Parameters, Parameter{
				Name:     name,
				In:       "path",
				Required: true,
				Schema:   Schema{Type: "string"},
			})
		}
	}

	// 2. Request input, validated by the route's zod schema
	switch route.ParamLocation {
	case model.ParamsFromQuery:
		op.Parameters = append(op.Parameters, Parameter{
			Name:        "param",
			In:          "query",
			Required:    route.SchemaName != "",
			Schema:      Schema{Type: "string"},
			Description: schemaNote(route.SchemaName),
		})
	case model.ParamsFromBody:
		op.RequestBody = &RequestBody{
			Content: map[string]MediaType{
				"application/json": {Schema: b.bodySchema(spec, route.SchemaName)},
			},
			Required: true,
		}
	}

	// 3. Responses
	op.Responses["200"] = Response{
		Description: "Successful response",
		Content: map[string]MediaType{
			"application/json": {Schema: successSchema()},
		},
	}
	if route.SchemaName != "" {
		op.Responses["400"] = errorResponse("Invalid request")
	}
	if route.Protected {
		op.Responses["401"] = errorResponse("Unauthorized")
		op.Security = []map[string][]string{{bearerScheme: {}}}
		spec.Components.SecuritySchemes[bearerScheme] = SecurityScheme{Type: "http", Scheme: "bearer"}
	}
	op.Responses["500"] = errorResponse("Internal server error")

	spec.Paths[fullPath][strings.ToLower(method)] = op
}

// bodySchema references the named schema, registering a placeholder for it
func (b *OpenAPIExporter) bodySchema(spec *OpenAPI, schemaName string) interface{} {
	if schemaName == "" {
		return map[string]interface{}{"type": "object"}
	}
	spec.Components.Schemas[schemaName] = map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"param": map[string]interface{}{"type": "string"},
		},
	}
	return map[string]interface{}{"$ref": "#/components/schemas/" + schemaName}
}

func successSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"success": map[string]interface{}{"type": "boolean"},
			"data":    map[string]interface{}{"type": "object"},
		},
	}
}

func errorResponse(description string) Response {
	return Response{
		Description: description,
		Content: map[string]MediaType{
			"application/json": {Schema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"error": map[string]interface{}{"type": "string"},
				},
			}},
		},
	}
}

func schemaNote(schemaName string) string {
	if schemaName == "" {
		return ""
	}
	return "Validated by " + schemaName
}

func routeSegments(routePath string) []string {
	routePath = strings.Trim(routePath, "/")
	if routePath == "" {
		return nil
	}
	return strings.Split(routePath, "/")
}

// paramName returns the parameter of a dynamic segment: "[id]", "[...slug]" and "[[...slug]]" all
// name their inner identifier. Static segments return "".
func paramName(segment string) string {
	if !utils.IsDynamicSegment(segment) {
		return ""
	}
	name := strings.Trim(segment, "[]")
	return strings.TrimPrefix(name, "...")
}

// templatePath converts "/api/users/[id]" into the OpenAPI form "/api/users/{id}"
func templatePath(urlPath string) string {
	parts := strings.Split(urlPath, "/")
	for i, p := range parts {
		if name := paramName(p); name != "" {
			parts[i] = "{" + name + "}"
		}
	}
	return strings.Join(parts, "/")
}
