package models

// Narrative is a scored narrative category with its supporting signals.
// Built once per run by the detector and never mutated afterwards, except
// that the caller attaches build ideas before rendering.
type Narrative struct {
	Category   string             `json:"category"`
	Name       string             `json:"name"`
	Strength   int                `json:"strength"`
	Confidence float64            `json:"confidence"`
	Momentum   string             `json:"momentum"`
	Why        string             `json:"why"`
	Highlights []string           `json:"highlights,omitempty"`
	KeyMetrics map[string]float64 `json:"key_metrics,omitempty"`
	Evidence   []Signal           `json:"evidence"`
	Ideas      []BuildIdea        `json:"ideas"`
}

// BuildIdea is a pre-authored project suggestion for a narrative category.
type BuildIdea struct {
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	TechStack        []string `json:"tech_stack"`
	Difficulty       string   `json:"difficulty,omitempty"`
	TimelineEstimate string   `json:"timeline_estimate"`
	RevenueModel     string   `json:"revenue_model"`
	WhyNow           string   `json:"why_now,omitempty"`
}

// MarketOverview is a best-effort snapshot of SOL spot market stats used in
// the report header.
type MarketOverview struct {
	Symbol         string  `json:"symbol"`
	Price          float64 `json:"price"`
	PriceChange24h float64 `json:"price_change_24h"`
	Volume24h      float64 `json:"volume_24h"`
	QuoteVolume24h float64 `json:"quote_volume_24h"`
}
