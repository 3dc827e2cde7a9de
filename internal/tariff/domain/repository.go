package domain

import (
	"context"

	"gorm.io/gorm"
)

// Repository methods take the database handle per call so the service can
// run them against a transaction.
type Repository interface {
	List(ctx context.Context, db *gorm.DB) ([]Interval, error)
	DeleteAll(ctx context.Context, db *gorm.DB) error
	BulkInsert(ctx context.Context, db *gorm.DB, intervals []Interval) error
}

type Service interface {
	// Get returns the committed tariff table in sorted order, or ErrNotSet.
	Get(ctx context.Context) ([]Interval, error)
	// Replace validates the input and swaps the whole table atomically.
	Replace(ctx context.Context, inputs []IntervalInput) ([]Interval, error)
}
