package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"narrativeradar/internal/ai"
	openaiSummarizer "narrativeradar/internal/ai/openai"
	"narrativeradar/internal/configs"
	"narrativeradar/internal/ideas"
	"narrativeradar/internal/market"
	"narrativeradar/internal/models"
	"narrativeradar/internal/narrative"
	"narrativeradar/internal/report"
	"narrativeradar/internal/signals"
	githubSource "narrativeradar/internal/signals/github"
	heliusSource "narrativeradar/internal/signals/helius"
	researchSource "narrativeradar/internal/signals/research"
)

// Radar wires the full pipeline: fetch signals, detect narratives, attach
// build ideas, enrich with market context, render reports.
type Radar struct {
	config     *configs.Config
	fetcher    *signals.MultiSourceFetcher
	detector   *narrative.Detector
	catalog    *ideas.Catalog
	renderer   *report.Renderer
	market     *market.BinanceOverview
	summarizer ai.Summarizer
	logger     *slog.Logger
	quiet      bool
}

func NewRadar(cfg *configs.Config, logger *slog.Logger, quiet bool) *Radar {
	sources := []signals.Source{
		heliusSource.NewHeliusSource(cfg.Helius),
		githubSource.NewGitHubSource(cfg.GitHub),
		researchSource.NewResearchSource(),
	}

	r := &Radar{
		config:   cfg,
		fetcher:  signals.NewMultiSourceFetcher(sources, logger),
		detector: narrative.NewDetector(cfg.Categories, cfg.LookbackDays),
		catalog:  ideas.NewCatalog(),
		renderer: report.NewRenderer(cfg.OutputDir),
		market:   market.NewBinanceOverview(cfg.Market.Symbol),
		logger:   logger,
		quiet:    quiet,
	}

	if cfg.AI.APIKey != "" {
		r.summarizer = openaiSummarizer.NewSummarizer(cfg.AI.APIKey, cfg.AI.Model)
	}

	return r
}

// Run executes one full scan and writes the report artifacts. Market data
// and the AI summary are best-effort: their failure degrades the report, it
// never fails the run. Only an invalid format or a failed write is fatal.
func (r *Radar) Run(ctx context.Context, format string) error {
	now := time.Now()

	r.progress("🔍 Scanning for emerging Solana narratives...")
	r.progress("")
	r.progress("Phase 1/3: Collecting signals")
	sigs := r.fetcher.FetchAll(ctx)
	r.progress(fmt.Sprintf("  %d signals collected from %d sources", len(sigs), countSources(sigs)))

	r.progress("Phase 2/3: Detecting narratives")
	narratives := r.detector.Detect(sigs, now)
	for i := range narratives {
		narratives[i].Ideas = r.catalog.For(narratives[i].Category)
	}
	for _, n := range narratives {
		r.progress(fmt.Sprintf("  %-28s strength %3d  %s", n.Name, n.Strength, n.Momentum))
	}

	run := report.Run{
		GeneratedAt:  now,
		LookbackDays: r.config.LookbackDays,
		Narratives:   narratives,
	}

	if overview, err := r.market.Fetch(ctx); err != nil {
		r.logger.Warn("market overview unavailable", "symbol", r.config.Market.Symbol, "error", err)
	} else {
		run.Market = overview
	}

	if r.summarizer != nil {
		if summary, err := r.summarizer.Summarize(ctx, narratives); err != nil {
			r.logger.Warn("ai summary unavailable, using generated summary", "error", err)
		} else {
			run.Summary = summary
		}
	}

	r.progress("Phase 3/3: Generating reports")
	paths, err := r.renderer.SaveFormat(run, format)
	if err != nil {
		return err
	}

	written := make([]string, 0, len(paths))
	for _, p := range paths {
		written = append(written, p)
	}
	sort.Strings(written)
	for _, p := range written {
		r.progress("  wrote " + p)
	}

	if len(narratives) > 0 {
		top := narratives[0]
		r.progress("")
		r.progress(fmt.Sprintf("Top narrative: %s (strength %d, %s)", top.Name, top.Strength, top.Momentum))
	}

	return nil
}

func (r *Radar) progress(msg string) {
	if !r.quiet {
		fmt.Println(msg)
	}
}

func countSources(sigs []models.Signal) int {
	seen := make(map[string]struct{})
	for _, s := range sigs {
		seen[s.Source] = struct{}{}
	}
	return len(seen)
}

func newRootCmd() *cobra.Command {
	var (
		flagFormat string
		flagOutput string
		flagConf   string
		flagQuiet  bool
	)

	cmd := &cobra.Command{
		Use:   "radar",
		Short: "Detect emerging Solana narratives and suggest what to build",
		Long: strings.TrimSpace(`
radar scans GitHub activity, Solana on-chain data and curated ecosystem
research, groups what it finds into narratives, scores each one, and writes
HTML, Markdown and JSON reports with concrete build ideas.`),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !report.ValidFormat(flagFormat) {
				return fmt.Errorf("invalid format %q: must be one of html, markdown, json, all", flagFormat)
			}

			cfg, err := configs.Load(flagConf)
			if err != nil {
				return err
			}
			if flagOutput != "" {
				cfg.OutputDir = flagOutput
			}

			level := slog.LevelInfo
			if flagQuiet {
				level = slog.LevelWarn
			}
			logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

			if cfg.GitHub.Token == "" {
				logger.Info("no GitHub token, using unauthenticated API limits")
			}
			if cfg.Helius.APIKey == "" {
				logger.Info("no Helius API key, on-chain signals degrade to static program metadata")
			}
			if cfg.AI.APIKey == "" {
				logger.Info("no OpenAI API key, report keeps its generated summary")
			}

			radar := NewRadar(cfg, logger, flagQuiet)
			return radar.Run(cmd.Context(), flagFormat)
		},
	}

	cmd.Flags().StringVarP(&flagFormat, "format", "f", report.FormatAll, "report format: html, markdown, json or all")
	cmd.Flags().StringVarP(&flagOutput, "output", "o", "", "output directory (overrides config)")
	cmd.Flags().StringVarP(&flagConf, "conf", "c", "", "path to YAML config file")
	cmd.Flags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress progress output")

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
