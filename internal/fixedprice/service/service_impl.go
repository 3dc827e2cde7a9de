package service

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	fixedpricedomain "github.com/mmdpc/courierd/internal/fixedprice/domain"
	"github.com/mmdpc/courierd/internal/pricecache"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  fixedpricedomain.Repository
	Cache pricecache.Cache
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  fixedpricedomain.Repository
	cache pricecache.Cache
}

func New(p Params) fixedpricedomain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("fixedprice.service"),
		genID: p.GenID,
		repo:  p.Repo,
		cache: p.Cache,
	}
}

func (s *Service) Get(ctx context.Context) (*fixedpricedomain.FixedPrice, error) {
	price, err := s.repo.FindActive(ctx, s.db)
	if err != nil {
		return nil, err
	}
	if price == nil {
		return nil, fixedpricedomain.ErrNotSet
	}
	return price, nil
}

// Replace inserts a new active row and deactivates every prior active row
// inside one transaction, preserving the single-active invariant and the
// append-only history.
func (s *Service) Replace(ctx context.Context, req fixedpricedomain.ReplaceRequest) (*fixedpricedomain.FixedPrice, error) {
	if req.Base == nil || req.AdditionalPackage == nil {
		return nil, fixedpricedomain.ErrMissingParams
	}
	if *req.Base < 0 || *req.AdditionalPackage < 0 {
		return nil, fixedpricedomain.ErrNegativeValue
	}

	entity := &fixedpricedomain.FixedPrice{
		ID:                s.genID.Generate(),
		Base:              *req.Base,
		AdditionalPackage: *req.AdditionalPackage,
		Active:            true,
		CreatedAt:         time.Now().UTC(),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.Insert(ctx, tx, entity); err != nil {
			return err
		}
		return s.repo.DeactivateOthers(ctx, tx, entity.ID)
	})
	if err != nil {
		return nil, err
	}

	s.cache.InvalidateFixed(ctx)
	s.log.Info("fixed price replaced",
		zap.Float64("base", entity.Base),
		zap.Float64("additional_package", entity.AdditionalPackage))
	return entity, nil
}
