package telemetry

import (
	"fmt"

	domain "github.com/NeuralTrust/InclusionGuard/pkg/domain/telemetry"
	factory "github.com/NeuralTrust/InclusionGuard/pkg/infra/telemetry"
)

type ExportersBuilder interface {
	Build(configs []domain.ExporterConfig) ([]domain.Exporter, error)
}

type exportersBuilder struct {
	locator *factory.ExporterLocator
}

func NewTelemetryExportersBuilder(locator *factory.ExporterLocator) ExportersBuilder {
	return &exportersBuilder{
		locator: locator,
	}
}

// Build creates one configured exporter per config. Exporters built before a
// failure are closed.
func (b *exportersBuilder) Build(configs []domain.ExporterConfig) ([]domain.Exporter, error) {
	exporters := make([]domain.Exporter, 0, len(configs))
	for _, config := range configs {
		exporter, err := b.locator.GetExporter(config)
		if err != nil {
			for _, e := range exporters {
				e.Close()
			}
			return nil, fmt.Errorf("exporter %s: %w", config.Name, err)
		}
		exporters = append(exporters, exporter)
	}
	return exporters, nil
}
