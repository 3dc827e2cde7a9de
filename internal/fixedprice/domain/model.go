// Package domain holds the flat per-shipment pricing aggregate. Exactly one
// row is active at a time; replacement supersedes, never mutates.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type FixedPrice struct {
	ID                snowflake.ID `gorm:"primaryKey" json:"-"`
	Base              float64      `gorm:"not null" json:"base"`
	AdditionalPackage float64      `gorm:"not null" json:"additionalPackage"`
	Active            bool         `gorm:"not null;index" json:"-"`
	CreatedAt         time.Time    `gorm:"not null" json:"-"`
}

func (FixedPrice) TableName() string { return "fixed_prices" }

// ReplaceRequest is the loosely-typed admin payload; both fields are
// required and must be non-negative.
type ReplaceRequest struct {
	Base              *float64 `json:"base"`
	AdditionalPackage *float64 `json:"additionalPackage"`
}
