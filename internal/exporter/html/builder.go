package html

import (
	"fmt"
	"html/template"
	"os"
	"strings"

	"create-endpoint/internal/config"
	"create-endpoint/internal/exporter/common"
	"create-endpoint/internal/model"
)

// HTMLExporter writes a single static page
type HTMLExporter struct{}

func NewHTMLExporter() *HTMLExporter {
	return &HTMLExporter{}
}

// RouteReportData is the data passed to RouteReportTemplate
type RouteReportData struct {
	ReportDate string
	APIRoot    string
	BaseURL    string
	SecretEnv  string
	Summary    *model.Summary
	Sections   []common.Section
}

var reportTemplate = template.Must(template.New("route-report").Funcs(template.FuncMap{
	"methodColor": getMethodColor,
	"curl":        curlCommand,
}).Parse(RouteReportTemplate))

func (e *HTMLExporter) Export(summary *model.Summary, routes []model.RouteDef, cfg *config.Config) error {
	data := RouteReportData{
		ReportDate: summary.ReportDate,
		APIRoot:    cfg.APIPrefix(),
		BaseURL:    strings.TrimRight(cfg.Server.BaseURL, "/"),
		SecretEnv:  cfg.Template.SecretEnv,
		Summary:    summary,
		Sections:   common.GroupRoutes(routes),
	}

	outputFile := strings.TrimSuffix(cfg.GetOutputPath(), ".xlsx") + ".html"
	f, err := os.Create(outputFile)
	if err != nil {
		return err
	}
	defer f.Close()

	return reportTemplate.Execute(f, data)
}

// curlCommand builds a copy-pasteable request for one handler.
// Protected routes read the token from the shell variable named secretEnv.
func curlCommand(baseURL, secretEnv, method string, route model.RouteDef) string {
	if secretEnv == "" {
		secretEnv = "TOKEN"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "curl -X %s '%s%s", method, baseURL, route.URLPath)
	if route.ParamLocation == model.ParamsFromQuery {
		b.WriteString("?param=value")
	}
	b.WriteString("'")
	if route.Protected {
		fmt.Fprintf(&b, " \\\n  -H \"Authorization: Bearer $%s\"", secretEnv)
	}
	if route.ParamLocation == model.ParamsFromBody {
		b.WriteString(" \\\n  -H 'Content-Type: application/json' \\\n  -d '{\"param\": \"value\"}'")
	}
	return b.String()
}

// getMethodColor returns CSS color class for HTTP method
func getMethodColor(method string) string {
	switch strings.ToUpper(method) {
	case "GET":
		return "method-get"
	case "POST":
		return "method-post"
	case "PUT":
		return "method-put"
	case "DELETE":
		return "method-delete"
	case "PATCH":
		return "method-patch"
	default:
		return "method-default"
	}
}
