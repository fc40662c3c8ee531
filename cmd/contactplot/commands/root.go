package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"contactplot/internal/app"
	"contactplot/internal/domain"
	"contactplot/internal/logger"
	"contactplot/internal/services/roi"
)

var (
	cfg     app.Config
	roiText string
)

const longHelp = `From a CSV of residue contacts and the YAML parameters file written by the
trajectory contacts extraction, draw a heatmap of the residues in contact with
the Region Of Interest.

With --domains, the residue pairs separated by at least --residues-distance
residues are attributed to the domains of either residue, and a CSV of the
pairs, a CSV of the counts by domain and a bar chart of the counts are also
produced.`

func Execute() error {
	defaults, err := app.DefaultConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	cfg = defaults

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := &cobra.Command{
		Use:          "contactplot [flags] <contacts.csv>",
		Short:        "Plot residue contacts of a molecular dynamics simulation",
		Long:         longHelp,
		Version:      app.Version,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         runPlot,
	}

	f := root.Flags()
	f.StringVarP(&cfg.ParametersPath, "parameters", "p", "", "YAML parameters file of the contacts extraction")
	f.StringVarP(&cfg.OutDir, "out", "o", "", "output directory")
	f.StringVarP(&roiText, "roi", "i", "", "region of interest as start-end, e.g. 100-200")
	f.StringVarP(&cfg.Format, "format", "f", cfg.Format, fmt.Sprintf("plots format, one of %v", domain.Formats()))
	f.StringVarP(&cfg.DomainsPath, "domains", "d", "", "domains CSV: domain,start,stop[,color], 1-indexed")
	f.BoolVarP(&cfg.EmbeddedDomains, "embedded-domains", "e", false, "keep domains embedded in another domain as separate domains")
	f.IntVarP(&cfg.ResiduesDistance, "residues-distance", "r", cfg.ResiduesDistance, "minimal distance in residues between two residues in contact to count toward domains")
	f.BoolVar(&cfg.FillGaps, "fill-gaps", false, "attribute residues outside any domain to before/between pseudo-domains")
	f.StringVar(&cfg.Metric, "metric", cfg.Metric, "contacts table column holding the contact metric")
	f.StringVar(&cfg.FontPath, "font", cfg.FontPath, "TrueType font for the plots (default: embedded Go font)")
	f.StringVarP(&cfg.LogPath, "log", "l", "", "log file (default <out>/contactplot.log)")
	f.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	_ = root.MarkFlagRequired("parameters")
	_ = root.MarkFlagRequired("out")
	_ = root.MarkFlagRequired("roi")

	root.AddCommand(domainsCmd(), verifyCmd())
	return root.ExecuteContext(ctx)
}

func runPlot(cmd *cobra.Command, args []string) error {
	cfg.ContactsPath = args[0]
	cfg.ResiduesDistanceSet = cmd.Flags().Changed("residues-distance")
	region, err := roi.Parse(roiText)
	if err != nil {
		return err
	}
	cfg.ROI = region
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return domain.Render(domain.StageWrite, cfg.OutDir, err)
	}
	if cfg.LogPath == "" {
		cfg.LogPath = filepath.Join(cfg.OutDir, "contactplot.log")
	}
	if err := os.Remove(cfg.LogPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("reset log %s: %w", cfg.LogPath, err)
	}
	log, err := logger.New(logger.Options{Level: cfg.LogLevel, Path: cfg.LogPath})
	if err != nil {
		return err
	}
	defer log.Sync()
	log.Info("contactplot", "version", app.Version, "cmd", strings.Join(os.Args, " "))

	wire, err := app.NewWire(cfg)
	if err != nil {
		log.Error("setup failed", "error", err)
		return err
	}
	res, err := app.New(wire, log).Run(cmd.Context(), cfg)
	if err != nil {
		log.Error("run failed", "error", err)
		return err
	}
	log.Info("done", "files", len(res.Paths), "residues_pairs", res.Pairs, "outliers", res.Outliers)
	return nil
}
