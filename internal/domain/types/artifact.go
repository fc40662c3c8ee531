package types

// ArtifactKind tags what an artifact holds.
type ArtifactKind string

const (
	ArtifactHeatmap      ArtifactKind = "heatmap"
	ArtifactDomainChart  ArtifactKind = "domain-chart"
	ArtifactDomainCounts ArtifactKind = "domain-counts"
	ArtifactOutliers     ArtifactKind = "outliers"
	ArtifactManifest     ArtifactKind = "manifest"
)

// Artifact is a fully rendered output file held in memory until it is saved.
type Artifact struct {
	Name string // file name, relative to the output directory
	Kind ArtifactKind
	Data []byte
}

// HeatmapLabels carries the text drawn around the heatmap.
type HeatmapLabels struct {
	Title    string
	Subtitle []string
	XLabel   string
	YLabel   string
	Scale    string
}

// ChartLabels carries the text drawn around the domain chart.
type ChartLabels struct {
	Title    string
	Subtitle []string
	YLabel   string
}
