package app

import (
	"fmt"
	"strings"

	"contactplot/internal/domain"
)

func heatmapLabels(cfg Config, p domain.Parameters) domain.HeatmapLabels {
	var sub []string
	md := ""
	if p.MDDuration != "" {
		md = fmt.Sprintf("MD length: %s. ", p.MDDuration)
	}
	sub = append(sub, md+"Count of residues atoms in contact are displayed in the squares.")
	roiLine := fmt.Sprintf("Region Of Interest: %d to %d", cfg.ROI.Start, cfg.ROI.End)
	if p.ProteinLength > 0 {
		roiLine += fmt.Sprintf(" (%d residues in the protein)", p.ProteinLength)
	}
	sub = append(sub, roiLine)
	if line := framesLine(p); line != "" {
		sub = append(sub, line)
	}
	return domain.HeatmapLabels{
		Title:    fmt.Sprintf("Contact residues %s: %s", cfg.Metric, p.Title(cfg.Basename())),
		Subtitle: sub,
		XLabel:   "Whole protein residues",
		YLabel:   "Region Of Interest residues",
		Scale:    scaleLabel(cfg.Metric),
	}
}

func chartLabels(cfg Config, p domain.Parameters) domain.ChartLabels {
	first := fmt.Sprintf("Maximal atoms distance: %g Å, minimal angle cut-off %g°, minimal residues distance: %d",
		p.MaximalAtomsDistance, p.AngleCutoff, cfg.ResiduesDistance)
	sub := []string{first}
	if line := framesLine(p); line != "" {
		if p.MDDuration != "" {
			line += fmt.Sprintf(", MD length: %s", p.MDDuration)
		}
		sub = append(sub, line)
	}
	return domain.ChartLabels{
		Title: fmt.Sprintf("%s: outliers contacts by domains between the Region Of Interest %s and the whole protein",
			p.Title(cfg.Basename()), cfg.ROI),
		Subtitle: sub,
		YLabel:   fmt.Sprintf("Region Of Interest %s residues contacts", cfg.ROI),
	}
}

func framesLine(p domain.Parameters) string {
	if p.Frames == nil {
		return ""
	}
	return fmt.Sprintf("%g%% of frames with contacts in frames range %d to %d",
		p.ProportionContacts, p.Frames.Min, p.Frames.Max)
}

func scaleLabel(metric string) string {
	if strings.Contains(strings.ToLower(metric), "distance") {
		return "Distance (Å)"
	}
	return metric
}
