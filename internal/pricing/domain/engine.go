// Package domain computes delivery prices from the fixed per-shipment
// configuration and the distance tariff table. The computation is pure:
// callers load and validate the configuration first.
package domain

import (
	"math"
	"time"

	fixedpricedomain "github.com/mmdpc/courierd/internal/fixedprice/domain"
	tariffdomain "github.com/mmdpc/courierd/internal/tariff/domain"
)

// weekendMultiplier is the flat 10% uplift for Saturday and Sunday trips.
const weekendMultiplier = 1.1

// Quote is the per-request pricing breakdown. Price includes the weekend
// uplift and is rounded to cents; the remaining fields are the
// pre-surcharge components.
type Quote struct {
	Base               float64 `json:"base"`
	AdditionalPackages float64 `json:"additionalPackages"`
	DistanceCost       float64 `json:"distance"`
	Price              float64 `json:"price"`
	WeekendTariff      bool    `json:"weekendTariff"`
}

// FixedCosts returns the package-count related cost components. The first
// package is covered by the base price; each further package adds the
// configured increment.
func FixedCosts(packageCount int, fixed fixedpricedomain.FixedPrice) (base, additional, total float64) {
	base = fixed.Base
	additional = float64(packageCount-1) * fixed.AdditionalPackage
	return base, additional, base + additional
}

// DistanceCost evaluates the piecewise-linear tariff: each interval charges
// its per-unit cost for the portion of [0, distance) that falls inside it.
// Interval order does not matter since committed intervals are disjoint.
// Distances at or below zero never reach any interval and cost nothing.
func DistanceCost(distance float64, intervals []tariffdomain.Interval) float64 {
	var cost float64
	for _, iv := range intervals {
		if iv.Start >= distance {
			continue
		}
		if iv.End == tariffdomain.OpenEnd || iv.End > distance {
			cost += iv.Cost * (distance - iv.Start)
		} else {
			cost += iv.Cost * (iv.End - iv.Start)
		}
	}
	return cost
}

// IsWeekend reports whether t falls on Saturday or Sunday in its own
// location.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// Compute combines the fixed and distance costs, applies the weekend
// uplift when the date calls for it, and rounds the final price to cents.
func Compute(fixed fixedpricedomain.FixedPrice, intervals []tariffdomain.Interval, distance float64, packageCount int, date time.Time) Quote {
	base, additional, fixedTotal := FixedCosts(packageCount, fixed)
	distanceCost := DistanceCost(distance, intervals)

	multiplier := 1.0
	weekend := IsWeekend(date)
	if weekend {
		multiplier = weekendMultiplier
	}

	return Quote{
		Base:               base,
		AdditionalPackages: additional,
		DistanceCost:       distanceCost,
		Price:              roundToCents((fixedTotal + distanceCost) * multiplier),
		WeekendTariff:      weekend,
	}
}

func roundToCents(v float64) float64 {
	return math.Round(v*100) / 100
}
