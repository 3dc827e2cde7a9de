package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	fixedpricedomain "github.com/mmdpc/courierd/internal/fixedprice/domain"
	tariffdomain "github.com/mmdpc/courierd/internal/tariff/domain"
)

var testIntervals = []tariffdomain.Interval{
	{Start: 0, End: 5, Cost: 2},
	{Start: 5, End: 10, Cost: 1.5},
	{Start: 10, End: 20, Cost: 1.3},
	{Start: 20, End: tariffdomain.OpenEnd, Cost: 1},
}

func TestFixedCosts(t *testing.T) {
	fixed := fixedpricedomain.FixedPrice{Base: 1, AdditionalPackage: 0.5}

	cases := []struct {
		packages       int
		wantAdditional float64
	}{
		{1, 0},
		{2, 0.5},
		{10, 4.5},
	}
	for _, tc := range cases {
		base, additional, total := FixedCosts(tc.packages, fixed)
		assert.Equal(t, 1.0, base)
		assert.Equal(t, tc.wantAdditional, additional)
		assert.Equal(t, base+additional, total)
	}
}

func TestDistanceCost(t *testing.T) {
	cases := []struct {
		name     string
		distance float64
		want     float64
	}{
		{"negative distance", -1, 0},
		{"zero distance", 0, 0},
		{"inside first interval", 3, 3 * 2},
		{"inside second interval", 6, 5*2 + 1*1.5},
		{"inside third interval", 12, 5*2 + 5*1.5 + 2*1.3},
		{"inside the open tail", 500, 5*2 + 5*1.5 + 10*1.3 + 480*1},
		{"on an interval border", 10, 5*2 + 5*1.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, DistanceCost(tc.distance, testIntervals), 1e-9)
		})
	}
}

func TestDistanceCostOrderIndependent(t *testing.T) {
	shuffled := []tariffdomain.Interval{
		testIntervals[2], testIntervals[0], testIntervals[3], testIntervals[1],
	}
	for _, d := range []float64{0, 3, 7.5, 10, 19.99, 20, 42} {
		assert.InDelta(t, DistanceCost(d, testIntervals), DistanceCost(d, shuffled), 1e-9)
	}
}

func TestDistanceCostMonotonic(t *testing.T) {
	prev := 0.0
	for d := 0.0; d <= 60; d += 0.25 {
		cost := DistanceCost(d, testIntervals)
		assert.GreaterOrEqual(t, cost, prev, "cost must not decrease at distance %v", d)
		prev = cost
	}
}

func TestIsWeekend(t *testing.T) {
	// 2023-08-07 is a Monday.
	monday := time.Date(2023, 8, 7, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		assert.False(t, IsWeekend(monday.AddDate(0, 0, i)))
	}
	assert.True(t, IsWeekend(monday.AddDate(0, 0, 5))) // Saturday
	assert.True(t, IsWeekend(monday.AddDate(0, 0, 6))) // Sunday
}

func TestCompute(t *testing.T) {
	fixed := fixedpricedomain.FixedPrice{Base: 2, AdditionalPackage: 0.25}
	intervals := []tariffdomain.Interval{
		{Start: 0, End: 5, Cost: 1},
		{Start: 5, End: 10, Cost: 0.8},
		{Start: 10, End: tariffdomain.OpenEnd, Cost: 0.6},
	}
	weekday := time.Date(2023, 8, 9, 12, 0, 0, 0, time.UTC)  // Wednesday
	saturday := time.Date(2023, 8, 12, 12, 0, 0, 0, time.UTC)

	t.Run("weekday", func(t *testing.T) {
		q := Compute(fixed, intervals, 13, 2, weekday)
		assert.Equal(t, 2.0, q.Base)
		assert.Equal(t, 0.25, q.AdditionalPackages)
		assert.InDelta(t, 10.8, q.DistanceCost, 1e-9) // 5*1 + 5*0.8 + 3*0.6
		assert.Equal(t, 13.05, q.Price)
		assert.False(t, q.WeekendTariff)
	})

	t.Run("saturday applies the uplift after summing", func(t *testing.T) {
		q := Compute(fixed, intervals, 13, 2, saturday)
		assert.Equal(t, 14.36, q.Price) // round(13.05 * 1.1)
		assert.True(t, q.WeekendTariff)
	})

	t.Run("zero distance yields fixed costs only", func(t *testing.T) {
		q := Compute(fixed, intervals, 0, 1, weekday)
		assert.Equal(t, 0.0, q.DistanceCost)
		assert.Equal(t, 2.0, q.Price)
	})
}
