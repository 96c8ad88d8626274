package exporter

import (
	"strings"

	"create-endpoint/internal/exporter/html"
	"create-endpoint/internal/exporter/openapi"
	"create-endpoint/internal/exporter/word"
)

// DefaultFormats is used when no --format is given
var DefaultFormats = []string{"excel", "html", "word", "json"}

// GetExporters returns a list of Exporters based on requested formats.
// Aliases of the same format are deduplicated; unknown names are returned in unknown.
func GetExporters(formats []string) (exporters []Exporter, unknown []string) {
	seen := make(map[string]bool)

	for _, fmtStr := range formats {
		fmtStr = strings.ToLower(strings.TrimSpace(fmtStr))
		if fmtStr == "" {
			continue
		}

		var kind string
		switch fmtStr {
		case "excel", "xlsx":
			kind = "excel"
		case "html":
			kind = "html"
		case "word", "docx":
			kind = "word"
		case "openapi", "swagger", "json":
			kind = "openapi"
		default:
			unknown = append(unknown, fmtStr)
			continue
		}

		if seen[kind] {
			continue
		}
		seen[kind] = true

		switch kind {
		case "excel":
			exporters = append(exporters, NewExcelExporter())
		case "html":
			exporters = append(exporters, html.NewHTMLExporter())
		case "word":
			exporters = append(exporters, word.NewWordExporter())
		case "openapi":
			exporters = append(exporters, openapi.NewOpenAPIExporter())
		}
	}

	return exporters, unknown
}
