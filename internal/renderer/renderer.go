// Package renderer produces the text of a Next.js route handler file.
//
// A fixed skeleton (templates/route.ts.tmpl) is filled with fragments chosen by the
// (method, protected) pair. Fragment selection is pure, so the same EndpointSpec always
// renders byte-identical output.
package renderer

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"create-endpoint/internal/config"
	"create-endpoint/internal/model"
	"create-endpoint/internal/utils"
)

//go:embed templates/route.ts.tmpl
var templateFS embed.FS

const routeTemplateName = "route.ts.tmpl"

var routeTemplate = template.Must(template.New(routeTemplateName).ParseFS(templateFS, "templates/"+routeTemplateName))

// Options are the project-specific values spliced into every route file
type Options struct {
	SecretEnv     string // env var holding the shared bearer secret
	CacheControl  string // Cache-Control value for GET responses
	ServiceImport string // placeholder import line
	APIPrefix     string // URL prefix used in the error log line
}

// DefaultOptions matches the default configuration
func DefaultOptions() Options {
	return Options{
		SecretEnv:     "CRON_SECRET",
		CacheControl:  "public, s-maxage=300, stale-while-revalidate=600",
		ServiceImport: `// import { exampleService } from "@/lib/services/example.service";`,
		APIPrefix:     "/api",
	}
}

// OptionsFromConfig extracts renderer options from the configuration
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		SecretEnv:     cfg.Template.SecretEnv,
		CacheControl:  cfg.Template.CacheControl,
		ServiceImport: cfg.Template.ServiceImport,
		APIPrefix:     cfg.APIPrefix(),
	}
}

// Renderer renders route files. It holds no per-call state.
type Renderer struct {
	opts Options
}

// New creates a Renderer
func New(opts Options) *Renderer {
	return &Renderer{opts: opts}
}

// SelectFragments picks every conditional block for spec
func (r *Renderer) SelectFragments(spec model.EndpointSpec, schema model.SchemaIdentifier) model.Fragments {
	return model.Fragments{
		ServiceImport:  r.opts.ServiceImport,
		AuthFunction:   authFunction(spec.Protected, r.opts.SecretEnv),
		AuthCheck:      authCheck(spec.Protected),
		ParamLocation:  paramLocation(spec.Method),
		ValidationCode: validationCode(spec.Method, schema),
		ServiceCall:    serviceCall(),
		CacheHeaders:   cacheHeaders(spec.Method, r.opts.CacheControl),
	}
}

// Context derives the full render context for spec
func (r *Renderer) Context(spec model.EndpointSpec, schema model.SchemaIdentifier) model.RenderContext {
	return model.RenderContext{
		Method:           spec.Method,
		EndpointPath:     utils.URLPath(r.opts.APIPrefix, spec.Path),
		SchemaIdentifier: schema,
		Fragments:        r.SelectFragments(spec, schema),
	}
}

// Render returns the complete route file text for spec.
// It cannot fail for a validated spec.
func (r *Renderer) Render(spec model.EndpointSpec, schema model.SchemaIdentifier) string {
	return r.RenderContext(r.Context(spec, schema))
}

// RenderContext executes the skeleton against an already derived context
func (r *Renderer) RenderContext(ctx model.RenderContext) string {
	var out strings.Builder
	if err := routeTemplate.Execute(&out, ctx); err != nil {
		// The skeleton only references fields of model.RenderContext.
		panic(fmt.Sprintf("renderer: executing %s: %v", routeTemplateName, err))
	}
	return out.String()
}
