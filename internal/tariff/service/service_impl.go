package service

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mmdpc/courierd/internal/pricecache"
	tariffdomain "github.com/mmdpc/courierd/internal/tariff/domain"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  tariffdomain.Repository
	Cache pricecache.Cache
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  tariffdomain.Repository
	cache pricecache.Cache
}

func New(p Params) tariffdomain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("tariff.service"),
		genID: p.GenID,
		repo:  p.Repo,
		cache: p.Cache,
	}
}

func (s *Service) Get(ctx context.Context) ([]tariffdomain.Interval, error) {
	intervals, err := s.repo.List(ctx, s.db)
	if err != nil {
		return nil, err
	}
	if len(intervals) == 0 {
		return nil, tariffdomain.ErrNotSet
	}
	return intervals, nil
}

// Replace validates the submitted table and swaps it wholesale: delete-all
// plus bulk-insert inside one transaction, so readers never observe a
// partially replaced table. Nothing persists on validation failure.
func (s *Service) Replace(ctx context.Context, inputs []tariffdomain.IntervalInput) ([]tariffdomain.Interval, error) {
	table, err := tariffdomain.ValidateAndNormalize(inputs)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	for i := range table {
		table[i].ID = s.genID.Generate()
		table[i].CreatedAt = now
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.DeleteAll(ctx, tx); err != nil {
			return err
		}
		return s.repo.BulkInsert(ctx, tx, table)
	})
	if err != nil {
		return nil, err
	}

	s.cache.InvalidateTariff(ctx)
	s.log.Info("tariff table replaced", zap.Int("intervals", len(table)))
	return table, nil
}
