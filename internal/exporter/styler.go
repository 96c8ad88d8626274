package exporter

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// methodColors match the badges of the HTML report
var methodColors = map[string]string{
	"GET":    "#1C7ED6",
	"POST":   "#2F9E44",
	"PUT":    "#E8590C",
	"PATCH":  "#0CA678",
	"DELETE": "#C92A2A",
}

const otherMethodColor = "#868E96"

// Styler holds the style IDs registered on one workbook
type Styler struct {
	HeaderStyle    int
	SectionStyle   int
	ProtectedStyle int
	DefaultStyle   int
	CodeStyle      int // schema names and file paths

	methods map[string]int
	other   int
}

// NewStyler registers every report style on f
func NewStyler(f *excelize.File) (*Styler, error) {
	border := []excelize.Border{
		{Type: "left", Color: "D4D4D4", Style: 1},
		{Type: "top", Color: "D4D4D4", Style: 1},
		{Type: "bottom", Color: "D4D4D4", Style: 1},
		{Type: "right", Color: "D4D4D4", Style: 1},
	}
	center := &excelize.Alignment{Horizontal: "center", Vertical: "center"}

	s := &Styler{methods: make(map[string]int, len(methodColors))}
	styles := []struct {
		id    *int
		style *excelize.Style
	}{
		{&s.HeaderStyle, &excelize.Style{
			Font:      &excelize.Font{Bold: true},
			Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E9ECEF"}, Pattern: 1},
			Alignment: center,
			Border:    border,
		}},
		{&s.SectionStyle, &excelize.Style{
			Font:   &excelize.Font{Bold: true, Color: "#0B7285"},
			Fill:   excelize.Fill{Type: "pattern", Color: []string{"#F1F8FA"}, Pattern: 1},
			Border: border,
		}},
		{&s.ProtectedStyle, &excelize.Style{
			Font:      &excelize.Font{Bold: true, Color: "#C92A2A"},
			Alignment: center,
			Border:    border,
		}},
		{&s.DefaultStyle, &excelize.Style{
			Alignment: &excelize.Alignment{Vertical: "center", WrapText: true},
			Border:    border,
		}},
		{&s.CodeStyle, &excelize.Style{
			Font:      &excelize.Font{Family: "Consolas", Size: 10},
			Alignment: &excelize.Alignment{Vertical: "center"},
			Border:    border,
		}},
		{&s.other, badge(otherMethodColor, border)},
	}
	for _, st := range styles {
		id, err := f.NewStyle(st.style)
		if err != nil {
			return nil, fmt.Errorf("failed to register style: %w", err)
		}
		*st.id = id
	}

	for method, color := range methodColors {
		id, err := f.NewStyle(badge(color, border))
		if err != nil {
			return nil, fmt.Errorf("failed to register %s style: %w", method, err)
		}
		s.methods[method] = id
	}

	return s, nil
}

// MethodStyle returns the badge style for an HTTP method cell
func (s *Styler) MethodStyle(method string) int {
	if id, ok := s.methods[method]; ok {
		return id
	}
	return s.other
}

func badge(color string, border []excelize.Border) *excelize.Style {
	return &excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	}
}
