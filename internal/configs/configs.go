package configs

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Category is one narrative bucket: an identifier, a display name, the
// ordered keyword list used for matching, a curated hotness boost (0-10)
// and the base explanation of why this narrative is emerging.
type Category struct {
	ID       string   `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	Keywords []string `json:"keywords" yaml:"keywords"`
	Boost    int      `json:"boost" yaml:"boost"`
	BaseWhy  string   `json:"base_why" yaml:"base_why"`
}

// Program is a known on-chain program tracked for activity signals.
type Program struct {
	Address  string `json:"address" yaml:"address"`
	Name     string `json:"name" yaml:"name"`
	Category string `json:"category" yaml:"category"`
}

// Mint is a tracked SPL token mint.
type Mint struct {
	Address string `json:"address" yaml:"address"`
	Symbol  string `json:"symbol" yaml:"symbol"`
}

type GitHubConfig struct {
	Token        string   `json:"token" yaml:"token"`
	Queries      []string `json:"queries" yaml:"queries"`
	LookbackDays int      `json:"lookback_days" yaml:"lookback_days"`
	Limit        int      `json:"limit" yaml:"limit"`
}

type HeliusConfig struct {
	APIKey       string    `json:"api_key" yaml:"api_key"`
	RPCURL       string    `json:"rpc_url" yaml:"rpc_url"`
	Programs     []Program `json:"programs" yaml:"programs"`
	Stablecoins  []Mint    `json:"stablecoins" yaml:"stablecoins"`
	Marketplaces []Program `json:"marketplaces" yaml:"marketplaces"`
}

type MarketConfig struct {
	Symbol string `json:"symbol" yaml:"symbol"`
}

type AIConfig struct {
	APIKey string `json:"api_key" yaml:"api_key"`
	Model  string `json:"model" yaml:"model"`
}

// Config is the immutable run configuration. Built from Default, optionally
// overlaid with a YAML file, with API keys taken from the environment when
// present.
type Config struct {
	OutputDir    string       `json:"output_dir" yaml:"output_dir"`
	LookbackDays int          `json:"lookback_days" yaml:"lookback_days"`
	Categories   []Category   `json:"categories" yaml:"categories"`
	GitHub       GitHubConfig `json:"github" yaml:"github"`
	Helius       HeliusConfig `json:"helius" yaml:"helius"`
	Market       MarketConfig `json:"market" yaml:"market"`
	AI           AIConfig     `json:"ai" yaml:"ai"`
}

// Load builds the configuration. path may be empty, in which case the
// built-in defaults are used as-is.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if v := os.Getenv("GITHUB_ACCESS_TOKEN"); v != "" {
		cfg.GitHub.Token = v
	}
	if v := os.Getenv("HELIUS_API_KEY"); v != "" {
		cfg.Helius.APIKey = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.AI.APIKey = v
	}

	return cfg, nil
}

// CategoryByID looks up a category definition.
func (c *Config) CategoryByID(id string) (Category, bool) {
	for _, cat := range c.Categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return Category{}, false
}
