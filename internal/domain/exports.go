package domain

import (
	interfaces "contactplot/internal/domain/interfaces"
	types "contactplot/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Position        = types.Position
	Format          = types.Format
	OrdinateType    = types.OrdinateType
	Interval        = types.Interval
	Domain          = types.Domain
	Contact         = types.Contact
	OrientedContact = types.OrientedContact
	ResiduePair     = types.ResiduePair
	AnnotatedPair   = types.AnnotatedPair
	Parameters      = types.Parameters
	ParameterEntry  = types.ParameterEntry
	FrameRange      = types.FrameRange
	Axis            = types.Axis
	Cell            = types.Cell
	CellKey         = types.CellKey
	Matrix          = types.Matrix
	DomainCount     = types.DomainCount
	Artifact        = types.Artifact
	ArtifactKind    = types.ArtifactKind
	HeatmapLabels   = types.HeatmapLabels
	ChartLabels     = types.ChartLabels
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	ContactLoader    = interfaces.ContactLoader
	ParametersLoader = interfaces.ParametersLoader
	DomainLoader     = interfaces.DomainLoader
	Renderer         = interfaces.Renderer
	ArtifactStore    = interfaces.ArtifactStore
)

// Re-exported constants.
const (
	FormatPNG  = types.FormatPNG
	FormatJPG  = types.FormatJPG
	FormatJPEG = types.FormatJPEG
	FormatSVG  = types.FormatSVG

	OrdinateDonor    = types.OrdinateDonor
	OrdinateAcceptor = types.OrdinateAcceptor

	ArtifactHeatmap      = types.ArtifactHeatmap
	ArtifactDomainChart  = types.ArtifactDomainChart
	ArtifactDomainCounts = types.ArtifactDomainCounts
	ArtifactOutliers     = types.ArtifactOutliers
	ArtifactManifest     = types.ArtifactManifest
)

// Formats lists the accepted plot formats in help order.
func Formats() []Format { return types.Formats() }
