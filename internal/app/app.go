package app

import (
	"context"
	"fmt"

	"contactplot/internal/checksum"
	"contactplot/internal/domain"
	"contactplot/internal/logger"
	"contactplot/internal/services/aggregate"
	"contactplot/internal/services/annotate"
	"contactplot/internal/services/roi"
	"contactplot/internal/store"
)

// App runs the pipeline over the wired collaborators.
type App struct {
	Contacts   domain.ContactLoader
	Parameters domain.ParametersLoader
	Domains    domain.DomainLoader
	Renderer   domain.Renderer
	Store      domain.ArtifactStore
	Log        *logger.Logger
}

func New(w *Wire, log *logger.Logger) *App {
	if log == nil {
		log = logger.Nop()
	}
	return &App{
		Contacts:   w.Contacts,
		Parameters: w.Parameters,
		Domains:    w.Domains,
		Renderer:   w.Renderer,
		Store:      w.Store,
		Log:        log,
	}
}

// Result summarises a successful run.
type Result struct {
	Paths        []string // saved files, manifest last
	AtomContacts int      // contacts touching the region of interest
	Pairs        int      // residue pairs drawn in the heatmap
	Outliers     int      // residue pairs counted toward domains
	DomainCounts []domain.DomainCount
}

// Run executes one forward pass. Every artifact is rendered in memory before
// the first one is saved, so a failing stage leaves no output behind.
func (a *App) Run(ctx context.Context, cfg Config) (Result, error) {
	var res Result
	if err := cfg.Validate(); err != nil {
		return res, err
	}
	for _, w := range cfg.Warnings() {
		a.Log.Warn(w)
	}
	bn := cfg.Basename()

	// load
	params, err := a.Parameters.LoadParameters(cfg.ParametersPath)
	if err != nil {
		return res, err
	}
	a.Log.Info("parameters used for trajectory contacts search", "path", cfg.ParametersPath)
	for _, e := range params.Entries {
		a.Log.Info("parameter", "key", e.Key, "value", e.Value)
	}
	contacts, err := a.Contacts.LoadContacts(cfg.ContactsPath, cfg.Metric)
	if err != nil {
		return res, err
	}
	a.Log.Info("atoms contacts in the input data", "rows", len(contacts))
	if err := ctx.Err(); err != nil {
		return res, err
	}

	// filter
	if err := roi.Check(contacts, cfg.ROI); err != nil {
		return res, err
	}
	oriented := roi.Filter(contacts, cfg.ROI)
	if len(oriented) == 0 {
		return res, domain.NoData(domain.StageFilter,
			fmt.Sprintf("no contact has a donor or an acceptor in the region of interest %s", cfg.ROI))
	}
	pairs := roi.ReducePairs(oriented)
	res.AtomContacts, res.Pairs = len(oriented), len(pairs)
	a.Log.Info("extracted residues contacts",
		"roi", cfg.ROI.String(), "atoms_contacts", len(oriented), "residues_pairs", len(pairs))

	// aggregate + render, heatmap path
	var artifacts []domain.Artifact
	heatmap, err := a.Renderer.Heatmap("heatmap_distances_"+bn, aggregate.Heatmap(pairs), heatmapLabels(cfg, params))
	if err != nil {
		return res, err
	}
	artifacts = append(artifacts, heatmap)

	// annotate + aggregate + render, domain path
	if cfg.DomainsPath != "" {
		domainArtifacts, err := a.domainArtifacts(cfg, params, contacts, pairs, &res)
		if err != nil {
			return res, err
		}
		artifacts = append(artifacts, domainArtifacts...)
	}
	if err := ctx.Err(); err != nil {
		return res, err
	}

	inputs := []store.Input{{Role: "contacts", Path: cfg.ContactsPath}, {Role: "parameters", Path: cfg.ParametersPath}}
	if cfg.DomainsPath != "" {
		inputs = append(inputs, store.Input{Role: "domains", Path: cfg.DomainsPath})
	}
	manifest, err := store.BuildManifest("manifest_"+bn+".json", Version, inputs, artifacts)
	if err != nil {
		return res, err
	}
	artifacts = append(artifacts, manifest)

	// save
	paths, err := a.Store.SaveAll(artifacts)
	res.Paths = paths
	for i, path := range paths {
		art := artifacts[i]
		a.Log.Info("saved", "kind", string(art.Kind), "path", path, "blake2b", checksum.Fingerprint(art.Data))
	}
	if err != nil {
		return res, err
	}
	return res, nil
}

func (a *App) domainArtifacts(
	cfg Config,
	params domain.Parameters,
	contacts []domain.Contact,
	pairs []domain.ResiduePair,
	res *Result,
) ([]domain.Artifact, error) {
	declared, err := a.Domains.LoadDomains(cfg.DomainsPath)
	if err != nil {
		return nil, err
	}
	span, _ := roi.Span(contacts)
	if err := annotate.CheckCoverage(declared, span); err != nil {
		return nil, err
	}
	resolved := annotate.Resolve(declared, cfg.EmbeddedDomains, cfg.FillGaps)
	a.Log.Info("domains resolved",
		"declared", len(declared), "used", len(resolved),
		"embedded_domains", cfg.EmbeddedDomains, "fill_gaps", cfg.FillGaps)

	outliers := annotate.Outliers(pairs, cfg.ResiduesDistance)
	res.Outliers = len(outliers)
	a.Log.Info("unique residues pairs contacts far enough apart",
		"residues_distance", cfg.ResiduesDistance, "pairs", len(outliers))

	counts := aggregate.DomainCounts(resolved, outliers)
	res.DomainCounts = counts
	for _, dc := range counts {
		a.Log.Debug("domain contacts", "domain", dc.Domain.Name, "contacts", dc.Count)
	}

	bn := cfg.Basename()
	pairsCSV, err := a.Renderer.OutliersCSV("outliers_"+bn, cfg.Metric, annotate.New(resolved).Annotate(outliers))
	if err != nil {
		return nil, err
	}
	countsCSV, err := a.Renderer.DomainCountsCSV("contacts_by_domain_"+bn, counts)
	if err != nil {
		return nil, err
	}
	chart, err := a.Renderer.DomainChart("outliers_"+bn, counts, chartLabels(cfg, params))
	if err != nil {
		return nil, err
	}
	return []domain.Artifact{pairsCSV, countsCSV, chart}, nil
}
