package analyzer

import (
	"regexp"

	"create-endpoint/internal/model"
	"create-endpoint/internal/utils"
)

// Handler methods recognized by the App Router, in report order
var httpMethods = []string{"GET", "HEAD", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}

var (
	// export async function GET(request) / export function GET() / export const GET = ...
	handlerRegex = regexp.MustCompile(`(?m)^\s*export\s+(?:(?:async\s+)?function\s+(\w+)\s*\(|const\s+(\w+)\s*=)`)

	authFunctionRegex = regexp.MustCompile(`\bverifyAuth\s*\(`)
	authHeaderRegex   = regexp.MustCompile(`headers\.get\(\s*["'](?i:authorization)["']\s*\)`)

	schemaRegex       = regexp.MustCompile(`(?m)^\s*(?:export\s+)?const\s+(\w+)\s*=\s*z\s*\.`)
	cacheControlRegex = regexp.MustCompile(`["']Cache-Control["']\s*:\s*["']([^"']+)["']`)
	runtimeRegex      = regexp.MustCompile(`(?m)^\s*export\s+const\s+runtime\s*=\s*["'](\w[\w-]*)["']`)

	bodyRegex  = regexp.MustCompile(`\brequest\.(?:json|formData|text)\s*\(`)
	queryRegex = regexp.MustCompile(`\bsearchParams\b|\bnextUrl\.searchParams\b`)
)

// ParseRoute extracts the route definition from route file source.
// routePath is the directory of the route file relative to the API directory, with forward slashes.
func ParseRoute(content, routePath, urlPrefix string) *model.RouteDef {
	code := StripComments(content)
	segments := splitRoutePath(routePath)

	route := model.NewRouteDef(routePath)
	route.URLPath = utils.URLPath(urlPrefix, segments)
	route.Dynamic = utils.HasDynamicSegment(segments)
	route.Methods = extractMethods(code)
	route.Protected = authFunctionRegex.MatchString(code) || authHeaderRegex.MatchString(code)

	if m := schemaRegex.FindStringSubmatch(code); m != nil {
		route.SchemaName = m[1]
	}
	if m := cacheControlRegex.FindStringSubmatch(code); m != nil {
		route.CacheControl = m[1]
	}
	if m := runtimeRegex.FindStringSubmatch(code); m != nil {
		route.Runtime = m[1]
	}

	switch {
	case bodyRegex.MatchString(code):
		route.ParamLocation = model.ParamsFromBody
	case queryRegex.MatchString(code):
		route.ParamLocation = model.ParamsFromQuery
	}

	return route
}

// extractMethods returns the exported HTTP handlers in canonical order, each once
func extractMethods(code string) []string {
	found := make(map[string]bool)
	for _, m := range handlerRegex.FindAllStringSubmatch(code, -1) {
		name := m[1]
		if name == "" {
			name = m[2]
		}
		found[name] = true
	}

	methods := make([]string, 0, len(found))
	for _, method := range httpMethods {
		if found[method] {
			methods = append(methods, method)
		}
	}
	return methods
}
