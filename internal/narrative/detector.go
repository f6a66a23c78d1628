package narrative

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"narrativeradar/internal/configs"
	"narrativeradar/internal/models"
)

// Scoring caps. The four factors plus the category boost are each capped so
// the raw sum stays near 100; the final strength is clamped regardless.
const (
	volumeCap    = 25.0
	diversityCap = 25.0
	qualityCap   = 25.0
	recencyCap   = 15.0
	boostCap     = 10

	pointsPerSignal  = 5.0 // volume reaches its cap at 5 signals
	pointsPerSource  = 8.0
	onchainBonus     = 10.0
	recentWindowDays = 7
)

// Detector classifies signals into narrative categories and scores each
// category. It holds only immutable configuration, so detection is a pure
// function of the signal list and the injected "now".
type Detector struct {
	categories []configs.Category
	lookback   time.Duration
}

func NewDetector(categories []configs.Category, lookbackDays int) *Detector {
	if lookbackDays <= 0 {
		lookbackDays = 14
	}
	return &Detector{
		categories: categories,
		lookback:   time.Duration(lookbackDays) * 24 * time.Hour,
	}
}

// Classify returns the IDs of every category the signal belongs to: keyword
// substring match on title+description, a source-provided category hint, or
// a GitHub topic matching a keyword.
func (d *Detector) Classify(sig models.Signal) []string {
	var (
		out  []string
		seen = make(map[string]bool)
	)
	add := func(id string) {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}

	if sig.Category != "" && d.knownCategory(sig.Category) {
		add(sig.Category)
	}

	text := strings.ToLower(sig.Title + " " + sig.Description)
	for _, cat := range d.categories {
		for _, kw := range cat.Keywords {
			if strings.Contains(text, strings.ToLower(kw)) {
				add(cat.ID)
				break
			}
		}
	}

	if sig.Source == models.SourceGitHub {
		for _, topic := range sig.Topics {
			tl := strings.ToLower(topic)
			for _, cat := range d.categories {
				if seen[cat.ID] {
					continue
				}
				for _, kw := range cat.Keywords {
					if strings.Contains(tl, strings.ToLower(kw)) {
						add(cat.ID)
						break
					}
				}
			}
		}
	}

	return out
}

// Detect assigns every signal to its categories and scores each category
// that collected at least one signal. Categories with no evidence are
// omitted. Output is sorted by strength, then evidence count, then
// confidence, then category ID for a fully deterministic order.
func (d *Detector) Detect(signals []models.Signal, now time.Time) []models.Narrative {
	evidence := make(map[string][]models.Signal)
	for _, sig := range signals {
		for _, id := range d.Classify(sig) {
			evidence[id] = append(evidence[id], sig)
		}
	}

	var out []models.Narrative
	for _, cat := range d.categories {
		ev := evidence[cat.ID]
		if len(ev) == 0 {
			continue
		}
		out = append(out, d.score(cat, ev, now))
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Strength != b.Strength {
			return a.Strength > b.Strength
		}
		if len(a.Evidence) != len(b.Evidence) {
			return len(a.Evidence) > len(b.Evidence)
		}
		if a.Confidence != b.Confidence {
			return a.Confidence > b.Confidence
		}
		return a.Category < b.Category
	})

	return out
}

func (d *Detector) score(cat configs.Category, ev []models.Signal, now time.Time) models.Narrative {
	n := len(ev)

	volume := math.Min(volumeCap, float64(n)*pointsPerSignal)

	sources := make(map[string]bool)
	for _, s := range ev {
		sources[s.Source] = true
	}
	hasOnchain := sources[models.SourceOnChain]
	diversity := math.Min(diversityCap, float64(len(sources))*pointsPerSource)
	if hasOnchain {
		diversity = math.Min(diversityCap, diversity+onchainBonus)
	}

	var stars, evidenceItems int
	for _, s := range ev {
		if s.Source == models.SourceGitHub {
			stars += s.Stars
		}
		evidenceItems += len(s.Evidence)
	}
	quality := math.Min(10, float64(stars)/500)
	quality += math.Min(10, float64(evidenceItems)*1.5)
	for _, s := range ev {
		switch s.SignalStrength {
		case "high":
			quality += 3
		case "medium":
			quality++
		}
	}
	quality = math.Min(qualityCap, quality)

	recent := 0
	for _, s := range ev {
		if !s.Timestamp.IsZero() && now.Sub(s.Timestamp) < recentWindowDays*24*time.Hour {
			recent++
		}
	}
	recency := math.Min(recencyCap, float64(recent)*2)

	boost := cat.Boost
	if boost < 0 {
		boost = 0
	}
	if boost > boostCap {
		boost = boostCap
	}

	raw := volume + diversity + quality + recency + float64(boost)
	strength := int(math.Round(math.Min(100, math.Max(0, raw))))

	metrics := keyMetrics(ev)

	return models.Narrative{
		Category:   cat.ID,
		Name:       cat.Name,
		Strength:   strength,
		Confidence: confidence(len(sources), n, hasOnchain),
		Momentum:   d.momentum(ev, now),
		Why:        why(cat, ev, metrics),
		Highlights: highlights(ev),
		KeyMetrics: metrics,
		Evidence:   ev,
	}
}

// confidence is a monotonic percentage: more distinct sources and more
// signals both raise it, on-chain evidence adds a fixed bump, capped at 95.
func confidence(sources, n int, hasOnchain bool) float64 {
	if n > 10 {
		n = 10
	}
	c := float64(25*sources + 4*n)
	if hasOnchain {
		c += 10
	}
	return math.Min(95, c)
}

// momentum splits the lookback window at its time midpoint and compares how
// much evidence falls on each side. Under 2 signals there is nothing to
// compare.
func (d *Detector) momentum(ev []models.Signal, now time.Time) string {
	if len(ev) < 2 {
		return models.MomentumStable
	}
	midpoint := now.Add(-d.lookback / 2)
	recent := 0
	for _, s := range ev {
		if s.Timestamp.After(midpoint) {
			recent++
		}
	}
	older := len(ev) - recent
	switch {
	case recent > older:
		return models.MomentumRising
	case recent < older:
		return models.MomentumDeclining
	default:
		return models.MomentumStable
	}
}

var (
	dollarRe  = regexp.MustCompile(`\$[\d.,]+[BMK]?\+?`)
	percentRe = regexp.MustCompile(`[\d.,]+%`)
	scaleRe   = regexp.MustCompile(`(?i)[\d.,]+[KM]\+?\s+(?:users|transactions|tokens|daily|active)`)
)

// highlights extracts concrete data points from the evidence: curated
// evidence entries plus dollar amounts, >20% growth figures and K/M-scale
// user or transaction counts found in descriptions. Deduplicated in
// insertion order, capped at 12.
func highlights(ev []models.Signal) []string {
	var (
		out  []string
		seen = make(map[string]bool)
	)
	add := func(s string) {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}

	for _, s := range ev {
		for _, e := range s.Evidence {
			add(e)
		}
		for _, amt := range dollarRe.FindAllString(s.Description, -1) {
			add("Market signal: " + amt)
		}
		for _, pct := range percentRe.FindAllString(s.Description, -1) {
			v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSuffix(pct, "%"), ",", ""), 64)
			if err == nil && v > 20 {
				add("Growth: " + pct)
			}
		}
		for _, num := range scaleRe.FindAllString(s.Description, -1) {
			add("Scale: " + num)
		}
	}

	if len(out) > 12 {
		out = out[:12]
	}
	return out
}

func keyMetrics(ev []models.Signal) map[string]float64 {
	var metrics map[string]float64
	for _, s := range ev {
		if s.Source != models.SourceOnChain || len(s.Metrics) == 0 {
			continue
		}
		if metrics == nil {
			metrics = make(map[string]float64)
		}
		for k, v := range s.Metrics {
			metrics[k] = v // latest value wins
		}
	}
	return metrics
}

// why combines the category's base explanation with up to three drivers
// taken from the strongest evidence (highest stars, then most recent) and an
// on-chain validation line when live metrics are present.
func why(cat configs.Category, ev []models.Signal, metrics map[string]float64) string {
	parts := []string{cat.BaseWhy}

	drivers := topDrivers(ev)
	if len(drivers) > 0 {
		parts = append(parts, "Key drivers: "+strings.Join(drivers, " "))
	}

	var onchain []string
	if tps, ok := metrics["tps"]; ok && tps > 0 {
		onchain = append(onchain, fmt.Sprintf("%.0f TPS network activity", tps))
	}
	if supply, ok := metrics["total_supply_usd"]; ok && supply > 0 {
		onchain = append(onchain, fmt.Sprintf("$%.2fB stablecoin supply", supply/1e9))
	}
	if txs, ok := metrics["recent_tx_count"]; ok && txs > 0 {
		onchain = append(onchain, fmt.Sprintf("%.0f recent transactions", txs))
	}
	if len(onchain) > 0 {
		parts = append(parts, "On-chain validation: "+strings.Join(onchain, ", "))
	}

	var nonEmpty []string
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, "\n\n")
}

func topDrivers(ev []models.Signal) []string {
	ranked := make([]models.Signal, len(ev))
	copy(ranked, ev)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Stars != ranked[j].Stars {
			return ranked[i].Stars > ranked[j].Stars
		}
		return ranked[i].Timestamp.After(ranked[j].Timestamp)
	})

	var (
		out  []string
		seen = make(map[string]bool)
	)
	for _, s := range ranked {
		if s.WhyEmerging == "" || seen[s.WhyEmerging] {
			continue
		}
		seen[s.WhyEmerging] = true
		out = append(out, s.WhyEmerging)
		if len(out) == 3 {
			return out
		}
	}
	if len(out) > 0 {
		return out
	}

	// No curated explanations; fall back to the top signal titles.
	for i, s := range ranked {
		if i == 3 {
			break
		}
		out = append(out, s.Title+".")
	}
	return out
}

func (d *Detector) knownCategory(id string) bool {
	for _, cat := range d.categories {
		if cat.ID == id {
			return true
		}
	}
	return false
}
