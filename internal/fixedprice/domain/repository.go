package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	FindActive(ctx context.Context, db *gorm.DB) (*FixedPrice, error)
	Insert(ctx context.Context, db *gorm.DB, price *FixedPrice) error
	// DeactivateOthers clears the active flag on every row except keep.
	DeactivateOthers(ctx context.Context, db *gorm.DB, keep snowflake.ID) error
}

type Service interface {
	// Get returns the active fixed price, or ErrNotSet.
	Get(ctx context.Context) (*FixedPrice, error)
	// Replace atomically supersedes the active row with a new one.
	Replace(ctx context.Context, req ReplaceRequest) (*FixedPrice, error)
}
