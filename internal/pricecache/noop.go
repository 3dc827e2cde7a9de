package pricecache

import (
	"context"

	fixedpricedomain "github.com/mmdpc/courierd/internal/fixedprice/domain"
	tariffdomain "github.com/mmdpc/courierd/internal/tariff/domain"
)

// Disabled is used when no redis address is configured; every read misses.
type Disabled struct{}

func (Disabled) GetFixed(ctx context.Context) (*fixedpricedomain.FixedPrice, bool) { return nil, false }
func (Disabled) SetFixed(ctx context.Context, price *fixedpricedomain.FixedPrice)  {}
func (Disabled) InvalidateFixed(ctx context.Context)                               {}
func (Disabled) GetTariff(ctx context.Context) ([]tariffdomain.Interval, bool)     { return nil, false }
func (Disabled) SetTariff(ctx context.Context, intervals []tariffdomain.Interval)  {}
func (Disabled) InvalidateTariff(ctx context.Context)                              {}
