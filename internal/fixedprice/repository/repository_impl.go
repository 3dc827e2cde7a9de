package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	fixedpricedomain "github.com/mmdpc/courierd/internal/fixedprice/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() fixedpricedomain.Repository {
	return &repo{}
}

func (r *repo) FindActive(ctx context.Context, db *gorm.DB) (*fixedpricedomain.FixedPrice, error) {
	var p fixedpricedomain.FixedPrice
	err := db.WithContext(ctx).Raw(
		`SELECT id, base, additional_package, active, created_at
		 FROM fixed_prices WHERE active = ? LIMIT 1`,
		true,
	).Scan(&p).Error
	if err != nil {
		return nil, err
	}
	if p.ID == 0 {
		return nil, nil
	}
	return &p, nil
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, price *fixedpricedomain.FixedPrice) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO fixed_prices (id, base, additional_package, active, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		price.ID,
		price.Base,
		price.AdditionalPackage,
		price.Active,
		price.CreatedAt,
	).Error
}

func (r *repo) DeactivateOthers(ctx context.Context, db *gorm.DB, keep snowflake.ID) error {
	return db.WithContext(ctx).Exec(
		`UPDATE fixed_prices SET active = ? WHERE active = ? AND id <> ?`,
		false, true, keep,
	).Error
}
