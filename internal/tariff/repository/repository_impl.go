package repository

import (
	"context"

	tariffdomain "github.com/mmdpc/courierd/internal/tariff/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() tariffdomain.Repository {
	return &repo{}
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]tariffdomain.Interval, error) {
	var items []tariffdomain.Interval
	err := db.WithContext(ctx).Raw(
		`SELECT id, range_start, range_end, cost, position, created_at
		 FROM tariff_intervals ORDER BY position ASC`,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) DeleteAll(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Exec(`DELETE FROM tariff_intervals`).Error
}

func (r *repo) BulkInsert(ctx context.Context, db *gorm.DB, intervals []tariffdomain.Interval) error {
	if len(intervals) == 0 {
		return nil
	}
	return db.WithContext(ctx).Create(&intervals).Error
}
