package word

import (
	"fmt"
	"os"
	"strings"

	"github.com/nguyenthenguyen/docx"

	"create-endpoint/internal/config"
	"create-endpoint/internal/exporter/common"
	"create-endpoint/internal/logger"
	"create-endpoint/internal/model"
)

type WordExporter struct{}

func NewWordExporter() *WordExporter {
	return &WordExporter{}
}

func (e *WordExporter) Export(summary *model.Summary, routes []model.RouteDef, cfg *config.Config) error {
	templatePath, cleanup, err := resolveTemplate(cfg.Report.WordTemplate)
	if err != nil {
		return err
	}
	defer cleanup()

	r, err := docx.ReadDocxFile(templatePath)
	if err != nil {
		return fmt.Errorf("failed to read docx template %s: %w", templatePath, err)
	}
	defer r.Close()

	doc := r.Editable()

	// 1. Replace Summary Placeholders
	doc.Replace(PlaceholderDate, summary.ReportDate, -1)
	doc.Replace(PlaceholderTotalRoutes, fmt.Sprintf("%d", summary.TotalRoutes), -1)
	doc.Replace(PlaceholderTotalHandlers, fmt.Sprintf("%d", summary.TotalHandlers), -1)
	doc.Replace(PlaceholderTotalProtected, fmt.Sprintf("%d", summary.TotalProtected), -1)

	// 2. Inject content (the library handles XML encoding)
	doc.Replace(PlaceholderContent, BuildContent(summary, routes), -1)

	outFile := strings.TrimSuffix(cfg.GetOutputPath(), ".xlsx") + ".docx"
	if err := doc.WriteToFile(outFile); err != nil {
		return fmt.Errorf("failed to write Word document: %w", err)
	}

	return nil
}

// resolveTemplate returns a readable template path. The built-in template is written to a
// temp file that cleanup removes.
func resolveTemplate(configured string) (string, func(), error) {
	if configured != "" {
		logger.Debug("Using Word template %s", configured)
		return configured, func() {}, nil
	}

	templateBytes, err := BuiltinTemplate()
	if err != nil {
		return "", nil, err
	}

	tmpFile, err := os.CreateTemp("", "route-report-template-*.docx")
	if err != nil {
		return "", nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	cleanup := func() { os.Remove(tmpFile.Name()) }

	if _, err := tmpFile.Write(templateBytes); err != nil {
		tmpFile.Close()
		cleanup()
		return "", nil, fmt.Errorf("failed to write template to temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("failed to close temp file: %w", err)
	}

	return tmpFile.Name(), cleanup, nil
}

// BuildContent renders the route listing as plain text
func BuildContent(summary *model.Summary, routes []model.RouteDef) string {
	var sb strings.Builder

	sb.WriteString("API ROUTES\n\n")
	sb.WriteString("Summary Overview:\n")
	sb.WriteString(fmt.Sprintf("  • Routes: %d\n", summary.TotalRoutes))
	sb.WriteString(fmt.Sprintf("  • Handlers: %d (GET %d, POST %d, other %d)\n",
		summary.TotalHandlers, summary.TotalGET, summary.TotalPOST, summary.TotalOther))
	sb.WriteString(fmt.Sprintf("  • Protected: %d\n\n", summary.TotalProtected))
	sb.WriteString(strings.Repeat("=", 80) + "\n\n")

	for _, section := range common.GroupRoutes(routes) {
		sb.WriteString(fmt.Sprintf("## %s\n\n", section.Name))
		for i := range section.Routes {
			buildRouteText(&sb, &section.Routes[i])
			sb.WriteString(strings.Repeat("-", 80) + "\n\n")
		}
	}

	return sb.String()
}

// buildRouteText builds plain text documentation for a single route file
func buildRouteText(sb *strings.Builder, route *model.RouteDef) {
	methods := strings.Join(route.Methods, ", ")
	if methods == "" {
		methods = "-"
	}
	auth := "Public"
	if route.Protected {
		auth = "Bearer"
	}

	sb.WriteString(fmt.Sprintf("[%s] %s\n", methods, route.URLPath))
	sb.WriteString(fmt.Sprintf("File: %s\n\n", route.File))

	sb.WriteString(fmt.Sprintf("%-16s %s\n", "Auth", auth))
	sb.WriteString(fmt.Sprintf("%-16s %s\n", "Schema", orDash(route.SchemaName)))
	sb.WriteString(fmt.Sprintf("%-16s %s\n", "Params", orDash(route.ParamLocation)))
	sb.WriteString(fmt.Sprintf("%-16s %s\n", "Cache-Control", orDash(route.CacheControl)))
	if route.Runtime != "" {
		sb.WriteString(fmt.Sprintf("%-16s %s\n", "Runtime", route.Runtime))
	}
	sb.WriteString("\n")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
