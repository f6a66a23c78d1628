package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"narrativeradar/internal/models"
)

// Output formats accepted by Save.
const (
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
	FormatAll      = "all"
)

// Report file names inside the output directory.
const (
	htmlFile     = "narrative_report.html"
	markdownFile = "narrative_report.md"
	jsonFile     = "narrative_data.json"
)

// ValidFormat reports whether f is an accepted --format value.
func ValidFormat(f string) bool {
	switch f {
	case FormatHTML, FormatMarkdown, FormatJSON, FormatAll:
		return true
	}
	return false
}

// Run is everything one report is rendered from.
type Run struct {
	GeneratedAt  time.Time
	LookbackDays int
	Narratives   []models.Narrative
	Market       *models.MarketOverview
	Summary      string
}

// Renderer turns a run into report artifacts. Rendering is a pure function
// of the run; the only side effect is the final file write in Save.
type Renderer struct {
	outputDir string
}

func NewRenderer(outputDir string) *Renderer {
	return &Renderer{outputDir: outputDir}
}

// Save renders the requested format(s) and writes them to the output
// directory. It returns the written paths keyed by format. A failed write is
// fatal and reported with the target path.
func (r *Renderer) Save(run Run) (map[string]string, error) {
	return r.SaveFormat(run, FormatAll)
}

func (r *Renderer) SaveFormat(run Run, format string) (map[string]string, error) {
	if !ValidFormat(format) {
		return nil, fmt.Errorf("unknown report format %q", format)
	}
	if err := os.MkdirAll(r.outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory %s: %w", r.outputDir, err)
	}

	paths := make(map[string]string)

	if format == FormatMarkdown || format == FormatAll {
		path := filepath.Join(r.outputDir, markdownFile)
		if err := writeFile(path, []byte(r.Markdown(run))); err != nil {
			return nil, err
		}
		paths[FormatMarkdown] = path
	}

	if format == FormatHTML || format == FormatAll {
		html, err := r.HTML(run)
		if err != nil {
			return nil, err
		}
		path := filepath.Join(r.outputDir, htmlFile)
		if err := writeFile(path, []byte(html)); err != nil {
			return nil, err
		}
		paths[FormatHTML] = path
	}

	if format == FormatJSON || format == FormatAll {
		data, err := r.JSON(run.Narratives)
		if err != nil {
			return nil, err
		}
		path := filepath.Join(r.outputDir, jsonFile)
		if err := writeFile(path, data); err != nil {
			return nil, err
		}
		paths[FormatJSON] = path
	}

	return paths, nil
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}

// JSON serializes the narratives as a top-level array. This is the one
// output shape downstream consumers depend on.
func (r *Renderer) JSON(narratives []models.Narrative) ([]byte, error) {
	if narratives == nil {
		narratives = []models.Narrative{}
	}
	data, err := json.MarshalIndent(narratives, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode narratives: %w", err)
	}
	return data, nil
}

// Markdown renders the full markdown report.
func (r *Renderer) Markdown(run Run) string {
	var b strings.Builder

	total := 0
	for _, n := range run.Narratives {
		total += len(n.Evidence)
	}

	fmt.Fprintf(&b, "# Solana Narrative Radar Report\n\n")
	fmt.Fprintf(&b, "**Generated:** %s\n\n", run.GeneratedAt.UTC().Format("2006-01-02 15:04 UTC"))
	fmt.Fprintf(&b, "**Analysis Period:** Past %d days\n\n", run.LookbackDays)
	fmt.Fprintf(&b, "**Total Signals Analyzed:** %d\n\n", total)
	fmt.Fprintf(&b, "**Data Sources:** GitHub API, Helius On-Chain Data, Ecosystem Research\n\n")
	if run.Market != nil {
		fmt.Fprintf(&b, "**%s:** $%.2f (%+.2f%% 24h, $%.0fM volume)\n\n",
			run.Market.Symbol, run.Market.Price, run.Market.PriceChange24h, run.Market.QuoteVolume24h/1e6)
	}
	b.WriteString("---\n\n")

	b.WriteString("## Executive Summary\n\n")
	if run.Summary != "" {
		b.WriteString(run.Summary + "\n\n")
	}
	b.WriteString("Narratives ranked by signal strength, source diversity, and on-chain validation:\n\n")
	for i, n := range run.Narratives {
		fmt.Fprintf(&b, "%d. **%s** [%s] %d/100 (%s)\n", i+1, n.Name, strengthBar(n.Strength), n.Strength, n.Momentum)
		fmt.Fprintf(&b, "   - Confidence: %.0f%% | Signals: %d\n", n.Confidence, len(n.Evidence))
	}
	b.WriteString("\n---\n\n")

	for _, n := range run.Narratives {
		fmt.Fprintf(&b, "## %s\n\n", n.Name)
		fmt.Fprintf(&b, "**Strength:** %d/100 | **Confidence:** %.0f%% | **Momentum:** %s | **Signals:** %d\n\n",
			n.Strength, n.Confidence, capitalize(n.Momentum), len(n.Evidence))

		b.WriteString("### Why This Narrative Is Emerging\n\n")
		b.WriteString(n.Why + "\n\n")

		if len(n.Highlights) > 0 {
			b.WriteString("### Key Evidence\n\n")
			for _, h := range firstN(n.Highlights, 6) {
				fmt.Fprintf(&b, "- %s\n", h)
			}
			b.WriteString("\n")
		}

		if len(n.KeyMetrics) > 0 {
			b.WriteString("### On-Chain Metrics\n\n")
			for _, k := range sortedKeys(n.KeyMetrics) {
				if v := n.KeyMetrics[k]; v > 0 {
					fmt.Fprintf(&b, "- **%s:** %s\n", titleCase(k), formatMetric(v))
				}
			}
			b.WriteString("\n")
		}

		if len(n.Ideas) > 0 {
			b.WriteString("### Build Ideas\n\n")
			for _, idea := range firstN(n.Ideas, 3) {
				fmt.Fprintf(&b, "#### %s\n\n%s\n\n", idea.Name, idea.Description)
				fmt.Fprintf(&b, "- **Tech Stack:** %s\n", strings.Join(idea.TechStack, ", "))
				if idea.Difficulty != "" {
					fmt.Fprintf(&b, "- **Difficulty:** %s\n", capitalize(idea.Difficulty))
				}
				fmt.Fprintf(&b, "- **Time to Build:** %s\n", idea.TimelineEstimate)
				fmt.Fprintf(&b, "- **Revenue Model:** %s\n", idea.RevenueModel)
				if idea.WhyNow != "" {
					fmt.Fprintf(&b, "- **Why Now:** %s\n", idea.WhyNow)
				}
				b.WriteString("\n")
			}
		}

		b.WriteString("### Top Signals\n\n")
		for _, s := range firstN(n.Evidence, 5) {
			fmt.Fprintf(&b, "- `%s` [%s](%s)\n", s.Source, s.Title, s.URL)
		}
		b.WriteString("\n---\n\n")
	}

	b.WriteString("## Recommended Action Plan\n\n")
	if len(run.Narratives) > 0 {
		top := run.Narratives[0]
		fmt.Fprintf(&b, "1. **Highest Priority:** %s\n", top.Name)
		fmt.Fprintf(&b, "   - Strength %d/100 with %.0f%% confidence\n", top.Strength, top.Confidence)
		if len(top.Ideas) > 0 {
			fmt.Fprintf(&b, "   - Start with: **%s**\n", top.Ideas[0].Name)
		}
	}
	if len(run.Narratives) > 1 {
		second := run.Narratives[1]
		fmt.Fprintf(&b, "2. **Secondary Focus:** %s\n", second.Name)
		fmt.Fprintf(&b, "   - %s momentum, good market timing\n", capitalize(second.Momentum))
	}
	if len(run.Narratives) > 2 {
		fmt.Fprintf(&b, "3. **Emerging Opportunity:** %s\n", run.Narratives[2].Name)
	}
	b.WriteString("\n---\n\n")
	b.WriteString("*Report generated by Solana Narrative Radar*\n")

	return b.String()
}

func strengthBar(strength int) string {
	filled := strength / 10
	if filled > 10 {
		filled = 10
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
}

func firstN[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func titleCase(key string) string {
	words := strings.Fields(strings.ReplaceAll(key, "_", " "))
	for i := range words {
		words[i] = capitalize(words[i])
	}
	return strings.Join(words, " ")
}

func formatMetric(v float64) string {
	switch {
	case v >= 1e9:
		return fmt.Sprintf("%.2fB", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("%.2fM", v/1e6)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}
