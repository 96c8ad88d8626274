package exporter

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"create-endpoint/internal/config"
	"create-endpoint/internal/model"
)

// sampleRoutes is a small inventory covering generated and hand-written routes
func sampleRoutes() []model.RouteDef {
	return []model.RouteDef{
		{
			Path: "ingest/refresh", URLPath: "/api/ingest/refresh", File: "app/api/ingest/refresh/route.ts",
			Methods: []string{"POST"}, Protected: true, SchemaName: "IngestRefreshSchema", ParamLocation: "request body",
		},
		{
			Path: "dashboard/stats", URLPath: "/api/dashboard/stats", File: "app/api/dashboard/stats/route.ts",
			Methods: []string{"GET"}, SchemaName: "DashboardStatsSchema", ParamLocation: "query parameters",
			CacheControl: "public, s-maxage=300, stale-while-revalidate=600",
		},
		{
			Path: "users/[id]", URLPath: "/api/users/[id]", File: "app/api/users/[id]/route.ts",
			Methods: []string{"GET", "DELETE"}, Dynamic: true, Runtime: "edge",
		},
	}
}

func sampleSummary() *model.Summary {
	s := model.NewSummary()
	s.TotalRoutes = 3
	s.TotalHandlers = 4
	s.TotalGET = 2
	s.TotalPOST = 1
	s.TotalOther = 1
	s.TotalProtected = 1
	s.TotalCached = 1
	s.TotalDynamic = 1
	s.ReportDate = "2026-02-06"
	s.AddSectionStat(model.SectionStat{Name: "dashboard", Routes: 1, Handlers: 1})
	s.AddSectionStat(model.SectionStat{Name: "ingest", Routes: 1, Handlers: 1, Protected: 1})
	s.AddSectionStat(model.SectionStat{Name: "users", Routes: 1, Handlers: 2})
	return s
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Output: config.OutputConfig{
			Dir:      t.TempDir(),
			FileName: "test_report",
		},
		Server: config.ServerConfig{BaseURL: "http://localhost:3000"},
	}
}

func TestExcelExport(t *testing.T) {
	cfg := testConfig(t)

	exporter := NewExcelExporter()
	if err := exporter.Export(sampleSummary(), sampleRoutes(), cfg); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	outputFile := filepath.Join(cfg.Output.Dir, "test_report.xlsx")
	f, err := excelize.OpenFile(outputFile)
	if err != nil {
		t.Fatalf("Failed to open generated Excel: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != overviewSheet || sheets[1] != detailSheet {
		t.Fatalf("Unexpected sheets: %v", sheets)
	}

	total, _ := f.GetCellValue(overviewSheet, "B2")
	if total != "3" {
		t.Errorf("Total Routes = %q, want 3", total)
	}

	rows, err := f.GetRows(detailSheet)
	if err != nil {
		t.Fatalf("Failed to read rows: %v", err)
	}

	// header + 3 section rows + 4 handler rows
	if len(rows) != 8 {
		t.Fatalf("Route Detail has %d rows, want 8", len(rows))
	}
	if strings.Join(rows[0], "|") != strings.Join(detailHeaders, "|") {
		t.Errorf("Unexpected header: %v", rows[0])
	}

	want := [][]string{
		{"[dashboard]", "1 routes"},
		{"dashboard", "/api/dashboard/stats", "GET", "Public", "DashboardStatsSchema"},
		{"[ingest]", "1 routes"},
		{"ingest", "/api/ingest/refresh", "POST", "Bearer", "IngestRefreshSchema"},
		{"[users]", "1 routes"},
		{"users", "/api/users/[id]", "GET", "Public", ""},
		{"users", "/api/users/[id]", "DELETE", "Public", ""},
	}
	for i, w := range want {
		row := rows[i+1]
		for j, cell := range w {
			got := ""
			if j < len(row) {
				got = row[j]
			}
			if got != cell {
				t.Errorf("Row %d col %d = %q, want %q", i+2, j+1, got, cell)
			}
		}
	}
}

func TestExcelExporter_NoEmptyRows(t *testing.T) {
	cfg := testConfig(t)

	routes := append(sampleRoutes(), model.RouteDef{
		Path: "broken", URLPath: "/api/broken", File: "app/api/broken/route.ts", Methods: []string{},
	})

	if err := NewExcelExporter().Export(sampleSummary(), routes, cfg); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	f, err := excelize.OpenFile(cfg.GetOutputPath())
	if err != nil {
		t.Fatalf("Failed to open generated Excel: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(detailSheet)
	if err != nil {
		t.Fatalf("Failed to read rows: %v", err)
	}

	found := false
	for i, row := range rows {
		if len(row) == 0 || strings.TrimSpace(strings.Join(row, "")) == "" {
			t.Errorf("Row %d is empty", i+1)
		}
		if len(row) > 1 && row[1] == "/api/broken" {
			found = true
		}
	}
	if !found {
		t.Error("Route without handlers should still be listed")
	}
}

func TestExcelMethodStyles(t *testing.T) {
	cfg := testConfig(t)
	if err := NewExcelExporter().Export(sampleSummary(), sampleRoutes(), cfg); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	f, err := excelize.OpenFile(cfg.GetOutputPath())
	if err != nil {
		t.Fatalf("Failed to open generated Excel: %v", err)
	}
	defer f.Close()

	style := func(cell string) int {
		id, err := f.GetCellStyle(detailSheet, cell)
		if err != nil {
			t.Fatalf("GetCellStyle(%s): %v", cell, err)
		}
		return id
	}

	// Rows follow TestExcelExport: C3 GET, C5 POST, C7 GET, C8 DELETE
	if style("C3") != style("C7") {
		t.Error("GET cells should share one style")
	}
	if style("C3") == style("C5") || style("C3") == style("C8") {
		t.Error("GET, POST and DELETE cells should be styled differently")
	}
	if style("D5") == style("D3") {
		t.Error("Protected auth cell should stand out from public ones")
	}
}
