package narrative

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"narrativeradar/internal/configs"
	"narrativeradar/internal/models"
)

var testNow = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func testDetector() *Detector {
	return NewDetector(configs.Default().Categories, 14)
}

func githubSignal(title, desc string, stars int, age time.Duration) models.Signal {
	return models.Signal{
		Source:      models.SourceGitHub,
		Title:       title,
		Description: desc,
		Stars:       stars,
		Timestamp:   testNow.Add(-age),
	}
}

func TestClassify(t *testing.T) {
	d := testDetector()

	tests := []struct {
		name   string
		signal models.Signal
		want   []string
	}{
		{
			name:   "keyword in title",
			signal: githubSignal("jito-restaking", "Rust client", 100, time.Hour),
			want:   []string{"defi_evolution"},
		},
		{
			name:   "keyword in description",
			signal: githubSignal("sol-toolkit", "An AI agent framework for on-chain trading", 50, time.Hour),
			want:   []string{"ai_agents"},
		},
		{
			name: "category hint from source",
			signal: models.Signal{
				Source:   models.SourceOnChain,
				Title:    "Bubblegum program activity",
				Category: "zk_compression",
			},
			want: []string{"zk_compression"},
		},
		{
			name: "unknown category hint ignored",
			signal: models.Signal{
				Source:   models.SourceOnChain,
				Title:    "Mystery program",
				Category: "not_a_category",
			},
			want: nil,
		},
		{
			name: "github topic match",
			signal: models.Signal{
				Source: models.SourceGitHub,
				Title:  "anchor-starter",
				Topics: []string{"depin", "rust"},
			},
			want: []string{"depin"},
		},
		{
			name:   "multiple categories",
			signal: githubSignal("pay-kit", "USDC payment rails with liquid staking yield", 10, time.Hour),
			want:   []string{"stablecoins_payfi", "defi_evolution"},
		},
		{
			name:   "no match",
			signal: githubSignal("dotfiles", "my vim setup", 5, time.Hour),
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ElementsMatch(t, tt.want, d.Classify(tt.signal))
		})
	}
}

func TestDetectGroupsByCategory(t *testing.T) {
	d := testDetector()

	signals := []models.Signal{
		githubSignal("jito-restaking", "Restaking primitives for Solana", 1200, 2*24*time.Hour),
		githubSignal("marinade-sdk", "Liquid staking SDK", 300, 3*24*time.Hour),
		{
			Source:      models.SourceOnChain,
			Title:       "USDC supply",
			Description: "Stablecoin supply snapshot",
			Category:    "stablecoins_payfi",
			Timestamp:   testNow.Add(-24 * time.Hour),
			Metrics:     map[string]float64{"total_supply_usd": 5.2e9},
		},
	}

	narratives := d.Detect(signals, testNow)
	require.Len(t, narratives, 2)

	byCategory := make(map[string]models.Narrative)
	for _, n := range narratives {
		byCategory[n.Category] = n
	}

	defi, ok := byCategory["defi_evolution"]
	require.True(t, ok, "defi_evolution should be detected")
	assert.Len(t, defi.Evidence, 2)

	stables, ok := byCategory["stablecoins_payfi"]
	require.True(t, ok, "stablecoins_payfi should be detected")
	assert.Len(t, stables.Evidence, 1)
	assert.Contains(t, stables.Why, "stablecoin supply")

	_, ok = byCategory["ai_agents"]
	assert.False(t, ok, "category without evidence must be omitted")
}

func TestDetectStrengthBounds(t *testing.T) {
	d := testDetector()

	// Saturate every factor: many high-star, recent, multi-source signals
	// with curated evidence on a boosted category.
	var signals []models.Signal
	for i := 0; i < 20; i++ {
		s := githubSignal("eliza-fork", "ai agent swarm", 10000, time.Duration(i)*time.Hour)
		s.SignalStrength = "high"
		s.Evidence = []string{"funding round", "usage spike"}
		signals = append(signals, s)
	}
	signals = append(signals, models.Signal{
		Source:      models.SourceResearch,
		Title:       "ai16z momentum",
		Description: "autonomous agents",
		Timestamp:   testNow.Add(-time.Hour),
	})
	signals = append(signals, models.Signal{
		Source:    models.SourceOnChain,
		Title:     "agent program activity",
		Category:  "ai_agents",
		Timestamp: testNow.Add(-time.Hour),
	})

	narratives := d.Detect(signals, testNow)
	require.NotEmpty(t, narratives)

	for _, n := range narratives {
		assert.GreaterOrEqual(t, n.Strength, 0)
		assert.LessOrEqual(t, n.Strength, 100)
		assert.LessOrEqual(t, n.Confidence, 95.0)
	}
}

func TestDetectZeroMatchYieldsNothing(t *testing.T) {
	d := testDetector()

	narratives := d.Detect([]models.Signal{
		githubSignal("web-scraper", "generic scraping in go", 10, time.Hour),
	}, testNow)

	assert.Empty(t, narratives)
}

func TestDetectMoreSourcesScoreHigher(t *testing.T) {
	d := testDetector()

	single := []models.Signal{
		githubSignal("jito-client", "restaking client", 100, 24*time.Hour),
		githubSignal("jito-sdk", "restaking sdk", 100, 24*time.Hour),
	}
	mixed := []models.Signal{
		single[0],
		{
			Source:      models.SourceResearch,
			Title:       "Restaking report",
			Description: "restaking growth",
			Timestamp:   testNow.Add(-24 * time.Hour),
		},
	}

	a := d.Detect(single, testNow)
	b := d.Detect(mixed, testNow)
	require.Len(t, a, 1)
	require.Len(t, b, 1)

	assert.Greater(t, b[0].Strength, a[0].Strength,
		"same volume across two sources must outscore one source")
	assert.Greater(t, b[0].Confidence, a[0].Confidence)
}

func TestDetectRecentEvidenceScoresHigher(t *testing.T) {
	d := testDetector()

	fresh := []models.Signal{
		githubSignal("jito-client", "restaking client", 100, 24*time.Hour),
		githubSignal("jito-sdk", "restaking sdk", 100, 2*24*time.Hour),
	}
	stale := []models.Signal{
		githubSignal("jito-client", "restaking client", 100, 10*24*time.Hour),
		githubSignal("jito-sdk", "restaking sdk", 100, 12*24*time.Hour),
	}

	a := d.Detect(fresh, testNow)
	b := d.Detect(stale, testNow)
	require.Len(t, a, 1)
	require.Len(t, b, 1)

	assert.Greater(t, a[0].Strength, b[0].Strength)
}

func TestDetectDeterministic(t *testing.T) {
	d := testDetector()

	signals := []models.Signal{
		githubSignal("jito-restaking", "restaking", 500, 24*time.Hour),
		githubSignal("eliza", "ai agent framework", 900, 24*time.Hour),
		githubSignal("pump-tools", "pump.fun trading degen tools", 200, 24*time.Hour),
	}

	first := d.Detect(signals, testNow)
	second := d.Detect(signals, testNow)

	assert.Equal(t, first, second, "detection with a fixed clock must be reproducible")
}

func TestDetectOrdering(t *testing.T) {
	d := testDetector()

	signals := []models.Signal{
		githubSignal("eliza", "ai agent framework", 5000, 24*time.Hour),
		githubSignal("agent-kit", "solana agent kit", 3000, 24*time.Hour),
		githubSignal("agent-swarm", "agentic trading", 1000, 24*time.Hour),
		githubSignal("pump-tools", "pump.fun tools", 10, 13*24*time.Hour),
	}

	narratives := d.Detect(signals, testNow)
	require.Len(t, narratives, 2)
	assert.Equal(t, "ai_agents", narratives[0].Category)
	assert.Equal(t, "memecoins", narratives[1].Category)
	assert.GreaterOrEqual(t, narratives[0].Strength, narratives[1].Strength)
}

func TestConfidence(t *testing.T) {
	tests := []struct {
		name       string
		sources    int
		n          int
		hasOnchain bool
		want       float64
	}{
		{"single source single signal", 1, 1, false, 29},
		{"two sources", 2, 2, false, 58},
		{"onchain bump", 2, 2, true, 68},
		{"signal count saturates at ten", 1, 50, false, 65},
		{"capped at 95", 3, 10, true, 95},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, confidence(tt.sources, tt.n, tt.hasOnchain))
		})
	}
}

func TestMomentum(t *testing.T) {
	d := testDetector() // 14 day lookback, midpoint 7 days back

	at := func(age time.Duration) models.Signal {
		return models.Signal{Timestamp: testNow.Add(-age)}
	}

	tests := []struct {
		name string
		ev   []models.Signal
		want string
	}{
		{
			name: "single signal is stable",
			ev:   []models.Signal{at(time.Hour)},
			want: models.MomentumStable,
		},
		{
			name: "recent heavy is rising",
			ev:   []models.Signal{at(24 * time.Hour), at(2 * 24 * time.Hour), at(10 * 24 * time.Hour)},
			want: models.MomentumRising,
		},
		{
			name: "older heavy is declining",
			ev:   []models.Signal{at(24 * time.Hour), at(9 * 24 * time.Hour), at(12 * 24 * time.Hour)},
			want: models.MomentumDeclining,
		},
		{
			name: "even split is stable",
			ev:   []models.Signal{at(24 * time.Hour), at(12 * 24 * time.Hour)},
			want: models.MomentumStable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.momentum(tt.ev, testNow))
		})
	}
}

func TestHighlights(t *testing.T) {
	ev := []models.Signal{
		{
			Description: "TVL crossed $2.5B+ this month, up 45% with 120K+ users onboarded",
			Evidence:    []string{"Raised $30M Series A"},
		},
		{
			Description: "fees down 5% quarter over quarter", // below the growth threshold
			Evidence:    []string{"Raised $30M Series A"},     // duplicate, kept once
		},
	}

	got := highlights(ev)

	assert.Contains(t, got, "Raised $30M Series A")
	assert.Contains(t, got, "Market signal: $2.5B+")
	assert.Contains(t, got, "Growth: 45%")
	assert.Contains(t, got, "Scale: 120K+ users")
	assert.NotContains(t, got, "Growth: 5%")

	count := 0
	for _, h := range got {
		if h == "Raised $30M Series A" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestHighlightsCapped(t *testing.T) {
	var ev []models.Signal
	for i := 0; i < 20; i++ {
		ev = append(ev, models.Signal{Evidence: []string{string(rune('a'+i)) + " data point"}})
	}
	assert.Len(t, highlights(ev), 12)
}

func TestKeyMetricsLatestWins(t *testing.T) {
	ev := []models.Signal{
		{Source: models.SourceOnChain, Metrics: map[string]float64{"tps": 2800, "epoch": 700}},
		{Source: models.SourceGitHub, Metrics: map[string]float64{"tps": 9999}}, // not on-chain, ignored
		{Source: models.SourceOnChain, Metrics: map[string]float64{"tps": 3100}},
	}

	got := keyMetrics(ev)
	require.NotNil(t, got)
	assert.Equal(t, 3100.0, got["tps"])
	assert.Equal(t, 700.0, got["epoch"])
}

func TestKeyMetricsNilWithoutOnchain(t *testing.T) {
	assert.Nil(t, keyMetrics([]models.Signal{{Source: models.SourceGitHub}}))
}

func TestWhy(t *testing.T) {
	cat := configs.Category{ID: "defi_evolution", BaseWhy: "Aggregation layer becoming essential."}

	t.Run("curated drivers and onchain validation", func(t *testing.T) {
		ev := []models.Signal{
			{Stars: 10, WhyEmerging: "Restaking demand is accelerating."},
			{Stars: 900, WhyEmerging: "Liquid staking wars heating up."},
		}
		got := why(cat, ev, map[string]float64{"tps": 3200})

		assert.Contains(t, got, "Aggregation layer becoming essential.")
		assert.Contains(t, got, "Key drivers: Liquid staking wars heating up. Restaking demand is accelerating.")
		assert.Contains(t, got, "On-chain validation: 3200 TPS network activity")
	})

	t.Run("falls back to signal titles", func(t *testing.T) {
		ev := []models.Signal{
			{Title: "jito-restaking", Stars: 500},
			{Title: "marinade-sdk", Stars: 100},
		}
		got := why(cat, ev, nil)

		assert.Contains(t, got, "Key drivers: jito-restaking. marinade-sdk.")
	})
}
