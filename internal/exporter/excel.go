package exporter

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"create-endpoint/internal/config"
	"create-endpoint/internal/exporter/common"
	"create-endpoint/internal/model"
)

const (
	overviewSheet = "Overview"
	detailSheet   = "Route Detail"
)

// Route Detail columns, A through I
var detailHeaders = []string{"Section", "URL", "Method", "Auth", "Schema", "Params (Input)", "Cache-Control", "Runtime", "File"}

// ExcelExporter handles the Excel generation
type ExcelExporter struct {
	// Stateless
}

// NewExcelExporter creates a new ExcelExporter
func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

// Export generates the Excel report
func (e *ExcelExporter) Export(summary *model.Summary, routes []model.RouteDef, cfg *config.Config) error {
	outputFile := cfg.GetOutputPath()
	f := excelize.NewFile()
	defer f.Close()

	styler, err := NewStyler(f)
	if err != nil {
		return err
	}

	// 1. Create Overview Sheet
	if err := e.writeOverview(f, styler, summary); err != nil {
		return err
	}

	// 2. Create Route Detail Sheet
	if err := e.writeRouteDetail(f, styler, routes); err != nil {
		return err
	}

	// Remove default "Sheet1"
	if idx, err := f.GetSheetIndex("Sheet1"); err == nil && idx != -1 {
		f.DeleteSheet("Sheet1")
	}

	if err := f.SaveAs(outputFile); err != nil {
		return fmt.Errorf("failed to save %s: %w", outputFile, err)
	}

	return nil
}

// --- Overview Sheet Logic ---

func (e *ExcelExporter) writeOverview(f *excelize.File, s *Styler, summary *model.Summary) error {
	sheet := overviewSheet
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	// Section A: Inventory Summary
	row := 1
	e.writeRow(f, sheet, row, []string{"Metric", "Count"}, s.HeaderStyle)
	row++

	metrics := []struct {
		Key string
		Val int
	}{
		{"Total Routes", summary.TotalRoutes},
		{"Total Handlers", summary.TotalHandlers},
		{"GET Handlers", summary.TotalGET},
		{"POST Handlers", summary.TotalPOST},
		{"Other Handlers", summary.TotalOther},
		{"Protected Routes", summary.TotalProtected},
		{"Cached Routes", summary.TotalCached},
		{"Dynamic Routes", summary.TotalDynamic},
	}

	for _, m := range metrics {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), m.Key)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), m.Val)
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), s.DefaultStyle)
		row++
	}
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Report Date")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", row), summary.ReportDate)
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), s.DefaultStyle)
	row++

	row += 2 // Spacer

	// Section B: Per-section breakdown
	e.writeRow(f, sheet, row, []string{"No", "Section", "Routes", "Handlers", "Protected"}, s.HeaderStyle)
	row++

	for i, stat := range summary.SectionStats {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), stat.Name)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), stat.Routes)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), stat.Handlers)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), stat.Protected)
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("E%d", row), s.DefaultStyle)
		row++
	}

	f.SetColWidth(sheet, "A", "A", 20)
	f.SetColWidth(sheet, "B", "B", 30)

	return nil
}

// --- Route Detail Sheet Logic ---

func (e *ExcelExporter) writeRouteDetail(f *excelize.File, s *Styler, routes []model.RouteDef) error {
	sheet := detailSheet
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	e.writeRow(f, sheet, 1, detailHeaders, s.HeaderStyle)

	f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})

	row := 2
	for _, section := range common.GroupRoutes(routes) {
		// Section header row
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("[%s]", section.Name))
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), fmt.Sprintf("%d routes", len(section.Routes)))
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("I%d", row), s.SectionStyle)
		row++

		for i := range section.Routes {
			route := &section.Routes[i]
			methods := route.Methods
			if len(methods) == 0 {
				methods = []string{""}
			}
			// One row per handler so method styling stays per cell
			for _, method := range methods {
				e.writeRouteRow(f, sheet, row, route, method, section.Name, s)
				row++
			}
		}
	}

	f.SetColWidth(sheet, "A", "A", 16) // Section
	f.SetColWidth(sheet, "B", "B", 40) // URL
	f.SetColWidth(sheet, "C", "D", 10) // Method/Auth
	f.SetColWidth(sheet, "E", "E", 30) // Schema
	f.SetColWidth(sheet, "F", "F", 20) // Params
	f.SetColWidth(sheet, "G", "G", 45) // Cache-Control
	f.SetColWidth(sheet, "H", "H", 10) // Runtime
	f.SetColWidth(sheet, "I", "I", 50) // File

	return nil
}

func (e *ExcelExporter) writeRouteRow(f *excelize.File, sheet string, row int, route *model.RouteDef, method, section string, s *Styler) {
	values := []string{
		section,
		route.URLPath,
		method,
		authLabel(route.Protected),
		route.SchemaName,
		route.ParamLocation,
		route.CacheControl,
		route.Runtime,
		route.File,
	}
	for i, val := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		f.SetCellValue(sheet, cell, val)
	}

	f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("I%d", row), s.DefaultStyle)
	if method != "" {
		f.SetCellStyle(sheet, fmt.Sprintf("C%d", row), fmt.Sprintf("C%d", row), s.MethodStyle(method))
	}
	if route.Protected {
		f.SetCellStyle(sheet, fmt.Sprintf("D%d", row), fmt.Sprintf("D%d", row), s.ProtectedStyle)
	}
	f.SetCellStyle(sheet, fmt.Sprintf("E%d", row), fmt.Sprintf("E%d", row), s.CodeStyle)
	f.SetCellStyle(sheet, fmt.Sprintf("I%d", row), fmt.Sprintf("I%d", row), s.CodeStyle)
}

func (e *ExcelExporter) writeRow(f *excelize.File, sheet string, row int, values []string, style int) {
	for i, val := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		f.SetCellValue(sheet, cell, val)
		f.SetCellStyle(sheet, cell, cell, style)
	}
}

// authLabel renders the protection flag for tabular reports
func authLabel(protected bool) string {
	if protected {
		return "Bearer"
	}
	return "Public"
}
