package model

import "fmt"

// Summary represents the inventory-level statistics for the Overview sheet
type Summary struct {
	TotalRoutes    int
	TotalHandlers  int
	TotalProtected int
	TotalGET       int
	TotalPOST      int
	TotalOther     int
	TotalCached    int
	TotalDynamic   int
	ReportDate     string

	SectionStats []SectionStat
}

// SectionStat represents statistics for one top-level API section (first path segment)
type SectionStat struct {
	Name      string
	Routes    int
	Handlers  int
	Protected int
}

// NewSummary creates a new Summary instance
func NewSummary() *Summary {
	return &Summary{
		SectionStats: make([]SectionStat, 0),
	}
}

// AddSectionStat adds a section statistic to the summary
func (s *Summary) AddSectionStat(stat SectionStat) {
	s.SectionStats = append(s.SectionStats, stat)
}

// String returns a one-line human-readable representation
func (s *Summary) String() string {
	return fmt.Sprintf("%d routes, %d handlers (%d GET, %d POST, %d other), %d protected",
		s.TotalRoutes, s.TotalHandlers, s.TotalGET, s.TotalPOST, s.TotalOther, s.TotalProtected)
}
