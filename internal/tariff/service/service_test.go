package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mmdpc/courierd/internal/pricecache"
	"github.com/mmdpc/courierd/internal/tariff/repository"

	tariffdomain "github.com/mmdpc/courierd/internal/tariff/domain"
)

func newTestService(t *testing.T) tariffdomain.Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&tariffdomain.Interval{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repository.Provide(),
		Cache: pricecache.Disabled{},
	})
}

func f(v float64) *float64 { return &v }

func TestGetEmptyTable(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Get(context.Background())
	assert.ErrorIs(t, err, tariffdomain.ErrNotSet)
}

func TestReplaceAndGet(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	replaced, err := svc.Replace(ctx, []tariffdomain.IntervalInput{
		{Start: f(10), End: f(20), Cost: f(1.3)},
		{Start: f(0), End: f(10), Cost: f(2)},
		{Start: f(20), Cost: f(1)},
	})
	require.NoError(t, err)
	require.Len(t, replaced, 3)

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)

	// Committed order is ascending by start regardless of submission order.
	assert.Equal(t, 0.0, got[0].Start)
	assert.Equal(t, 10.0, got[1].Start)
	assert.Equal(t, 20.0, got[2].Start)
	assert.Equal(t, tariffdomain.OpenEnd, got[2].End)
}

func TestReplaceIsWholesale(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Replace(ctx, []tariffdomain.IntervalInput{
		{Start: f(0), End: f(5), Cost: f(2)},
		{Start: f(5), Cost: f(1)},
	})
	require.NoError(t, err)

	_, err = svc.Replace(ctx, []tariffdomain.IntervalInput{
		{Start: f(0), Cost: f(3)},
	})
	require.NoError(t, err)

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 3.0, got[0].Cost)
}

func TestReplaceRejectedInputLeavesTableIntact(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Replace(ctx, []tariffdomain.IntervalInput{
		{Start: f(0), End: f(5), Cost: f(2)},
		{Start: f(5), Cost: f(1)},
	})
	require.NoError(t, err)

	// Gap between 5 and 7.
	_, err = svc.Replace(ctx, []tariffdomain.IntervalInput{
		{Start: f(0), End: f(5), Cost: f(2)},
		{Start: f(7), Cost: f(1)},
	})
	assert.ErrorIs(t, err, tariffdomain.ErrNotContiguous)

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 2.0, got[0].Cost)
}

func TestReplaceEmptyInput(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Replace(context.Background(), nil)
	assert.ErrorIs(t, err, tariffdomain.ErrMissingParams)
}
