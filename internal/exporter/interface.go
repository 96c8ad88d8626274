package exporter

import (
	"create-endpoint/internal/config"
	"create-endpoint/internal/model"
)

// Exporter is the unified interface for all reporting strategies
type Exporter interface {
	Export(summary *model.Summary, routes []model.RouteDef, cfg *config.Config) error
}
