package models

import "time"

// Signal sources.
const (
	SourceGitHub   = "github"
	SourceOnChain  = "onchain"
	SourceResearch = "research"
)

// Momentum labels.
const (
	MomentumRising    = "rising"
	MomentumStable    = "stable"
	MomentumDeclining = "declining"
)

// Signal is a single observed fact from one of the data sources. It is built
// once by a source adapter and read-only afterwards.
type Signal struct {
	Source      string    `json:"source"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Timestamp   time.Time `json:"timestamp"`

	// GitHub repository details.
	Stars    int      `json:"stars,omitempty"`
	Forks    int      `json:"forks,omitempty"`
	Language string   `json:"language,omitempty"`
	Topics   []string `json:"topics,omitempty"`

	// Category hint provided by the source itself (research catalog entries
	// and on-chain program signals carry one, GitHub repos do not).
	Category string `json:"category,omitempty"`

	// Curated supporting facts and the source's own explanation, if any.
	Evidence    []string `json:"evidence,omitempty"`
	WhyEmerging string   `json:"why_emerging,omitempty"`

	// On-chain signal quality: "high", "medium" or "low".
	SignalStrength string `json:"signal_strength,omitempty"`

	// Numeric on-chain metrics (tps, recent_tx_count, total_supply_usd, ...).
	Metrics map[string]float64 `json:"metrics,omitempty"`

	Metadata map[string]string `json:"metadata,omitempty"`
}
