// Package domain holds the distance-tariff interval model and the rules a
// complete tariff table must satisfy.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// OpenEnd marks an interval with no upper bound.
const OpenEnd float64 = -1

// Interval is one half-open band [Start, End) of the tariff table with a
// per-unit cost. End == OpenEnd means the band extends to infinity.
type Interval struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"-"`
	Start     float64      `gorm:"column:range_start;not null" json:"start"`
	End       float64      `gorm:"column:range_end;not null" json:"end"`
	Cost      float64      `gorm:"not null" json:"cost"`
	Position  int          `gorm:"not null" json:"-"`
	CreatedAt time.Time    `gorm:"not null" json:"-"`
}

func (Interval) TableName() string { return "tariff_intervals" }

// IntervalInput is the loosely-typed admin payload. End may be omitted and
// defaults to OpenEnd; Start and Cost are required.
type IntervalInput struct {
	Start *float64 `json:"start"`
	End   *float64 `json:"end"`
	Cost  *float64 `json:"cost"`
}
