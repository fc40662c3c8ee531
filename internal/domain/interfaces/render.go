package interfaces

import domaintypes "contactplot/internal/domain/types"

// Renderer turns aggregated data into in-memory artifacts.
type Renderer interface {
	Heatmap(name string, m domaintypes.Matrix, labels domaintypes.HeatmapLabels) (domaintypes.Artifact, error)
	DomainChart(name string, counts []domaintypes.DomainCount, labels domaintypes.ChartLabels) (domaintypes.Artifact, error)
	DomainCountsCSV(name string, counts []domaintypes.DomainCount) (domaintypes.Artifact, error)
	OutliersCSV(name, metric string, pairs []domaintypes.AnnotatedPair) (domaintypes.Artifact, error)
}

// ArtifactStore persists rendered artifacts.
type ArtifactStore interface {
	// Save writes a single artifact atomically and returns its path.
	Save(a domaintypes.Artifact) (string, error)
	// SaveAll saves artifacts in order and returns their paths.
	SaveAll(artifacts []domaintypes.Artifact) ([]string, error)
}
