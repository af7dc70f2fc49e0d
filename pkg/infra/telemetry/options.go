package telemetry

import "github.com/NeuralTrust/InclusionGuard/pkg/domain/telemetry"

// ExporterLocatorOption configures an ExporterLocator.
type ExporterLocatorOption func(*ExporterLocator)

// WithExporter registers an exporter under name.
func WithExporter(name string, exporter telemetry.Exporter) ExporterLocatorOption {
	return func(el *ExporterLocator) {
		if el.exporters == nil {
			el.exporters = make(map[string]telemetry.Exporter)
		}
		el.exporters[name] = exporter
	}
}
