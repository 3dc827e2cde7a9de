package service

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	fixedpricedomain "github.com/mmdpc/courierd/internal/fixedprice/domain"
	"github.com/mmdpc/courierd/internal/pricecache"
	pricingdomain "github.com/mmdpc/courierd/internal/pricing/domain"
	tariffdomain "github.com/mmdpc/courierd/internal/tariff/domain"
)

type Params struct {
	fx.In

	DB         *gorm.DB
	Log        *zap.Logger
	FixedRepo  fixedpricedomain.Repository
	TariffRepo tariffdomain.Repository
	Cache      pricecache.Cache
}

type Service struct {
	db         *gorm.DB
	log        *zap.Logger
	fixedRepo  fixedpricedomain.Repository
	tariffRepo tariffdomain.Repository
	cache      pricecache.Cache
}

func New(p Params) pricingdomain.Service {
	return &Service{
		db:         p.DB,
		log:        p.Log.Named("pricing.service"),
		fixedRepo:  p.FixedRepo,
		tariffRepo: p.TariffRepo,
		cache:      p.Cache,
	}
}

// QuoteFor loads the active configuration (cache first, database on miss)
// and runs the engine. Both configuration pieces must exist; the table is
// trusted as already validated at write time.
func (s *Service) QuoteFor(ctx context.Context, distance float64, packageCount int, date time.Time) (pricingdomain.Quote, error) {
	fixed, err := s.loadFixed(ctx)
	if err != nil {
		return pricingdomain.Quote{}, err
	}

	intervals, err := s.loadTariff(ctx)
	if err != nil {
		return pricingdomain.Quote{}, err
	}

	quote := pricingdomain.Compute(*fixed, intervals, distance, packageCount, date)
	s.log.Debug("quote computed",
		zap.Float64("distance", distance),
		zap.Int("package_count", packageCount),
		zap.Float64("price", quote.Price),
		zap.Bool("weekend_tariff", quote.WeekendTariff))
	return quote, nil
}

func (s *Service) loadFixed(ctx context.Context) (*fixedpricedomain.FixedPrice, error) {
	if fixed, ok := s.cache.GetFixed(ctx); ok {
		return fixed, nil
	}

	fixed, err := s.fixedRepo.FindActive(ctx, s.db)
	if err != nil {
		return nil, err
	}
	if fixed == nil {
		return nil, pricingdomain.ErrFixedPricesNotSet
	}

	s.cache.SetFixed(ctx, fixed)
	return fixed, nil
}

func (s *Service) loadTariff(ctx context.Context) ([]tariffdomain.Interval, error) {
	if intervals, ok := s.cache.GetTariff(ctx); ok && len(intervals) > 0 {
		return intervals, nil
	}

	intervals, err := s.tariffRepo.List(ctx, s.db)
	if err != nil {
		return nil, err
	}
	if len(intervals) == 0 {
		return nil, pricingdomain.ErrTariffNotSet
	}

	s.cache.SetTariff(ctx, intervals)
	return intervals, nil
}
