package market

import (
	"context"
	"fmt"
	"strconv"

	"github.com/adshao/go-binance/v2"

	"narrativeradar/internal/models"
)

// BinanceOverview fetches a spot market snapshot for the report header.
// Public endpoint, no API key required. Strictly best-effort: callers omit
// the overview on error.
type BinanceOverview struct {
	client *binance.Client
	symbol string
}

func NewBinanceOverview(symbol string) *BinanceOverview {
	if symbol == "" {
		symbol = "SOLUSDT"
	}
	return &BinanceOverview{
		client: binance.NewClient("", ""),
		symbol: symbol,
	}
}

func (b *BinanceOverview) Fetch(ctx context.Context) (*models.MarketOverview, error) {
	stats, err := b.client.NewListPriceChangeStatsService().Symbol(b.symbol).Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch %s ticker: %w", b.symbol, err)
	}
	if len(stats) == 0 {
		return nil, fmt.Errorf("no ticker stats for %s", b.symbol)
	}

	s := stats[0]
	price, err := strconv.ParseFloat(s.LastPrice, 64)
	if err != nil {
		return nil, fmt.Errorf("parse price: %w", err)
	}
	change, err := strconv.ParseFloat(s.PriceChangePercent, 64)
	if err != nil {
		return nil, fmt.Errorf("parse price change: %w", err)
	}
	volume, err := strconv.ParseFloat(s.Volume, 64)
	if err != nil {
		return nil, fmt.Errorf("parse volume: %w", err)
	}
	quoteVolume, err := strconv.ParseFloat(s.QuoteVolume, 64)
	if err != nil {
		return nil, fmt.Errorf("parse quote volume: %w", err)
	}

	return &models.MarketOverview{
		Symbol:         b.symbol,
		Price:          price,
		PriceChange24h: change,
		Volume24h:      volume,
		QuoteVolume24h: quoteVolume,
	}, nil
}
