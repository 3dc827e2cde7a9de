package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mmdpc/courierd/internal/clock"
	customerrepo "github.com/mmdpc/courierd/internal/customer/repository"
	"github.com/mmdpc/courierd/internal/delivery/repository"
	"github.com/mmdpc/courierd/internal/mail"

	customerdomain "github.com/mmdpc/courierd/internal/customer/domain"
	deliverydomain "github.com/mmdpc/courierd/internal/delivery/domain"
	pricingdomain "github.com/mmdpc/courierd/internal/pricing/domain"
)

type pricingStub struct {
	quote pricingdomain.Quote
	err   error
}

func (p *pricingStub) QuoteFor(ctx context.Context, distance float64, packageCount int, date time.Time) (pricingdomain.Quote, error) {
	return p.quote, p.err
}

type mailerStub struct {
	sent []mail.Confirmation
	err  error
}

func (m *mailerStub) Enabled() bool { return true }

func (m *mailerStub) SendConfirmation(ctx context.Context, c mail.Confirmation) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, c)
	return nil
}

func newTestService(t *testing.T, pricing pricingdomain.Service, mailer mail.Sender) (deliverydomain.Service, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&customerdomain.Customer{}, &deliverydomain.Delivery{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := New(Params{
		DB:           db,
		Log:          zap.NewNop(),
		GenID:        node,
		Clock:        clock.SystemClock{},
		Repo:         repository.Provide(),
		CustomerRepo: customerrepo.Provide(),
		Pricing:      pricing,
		Mailer:       mailer,
	})
	return svc, db
}

func validRequest() deliverydomain.CreateRequest {
	count := 3
	distance := 14.0
	date := time.Date(2023, 8, 9, 12, 0, 0, 0, time.UTC)
	return deliverydomain.CreateRequest{
		PackageCount: &count,
		Distance:     &distance,
		Email:        "jane@example.com",
		Phone:        "+358401234567",
		Date:         &date,
		Name:         "Jane",
		LastName:     "Doe",
	}
}

func testQuote() pricingdomain.Quote {
	return pricingdomain.Quote{
		Base:               5,
		AdditionalPackages: 1.5,
		DistanceCost:       6.55,
		Price:              13.05,
	}
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newTestService(t, &pricingStub{quote: testQuote()}, mail.Disabled{})
	ctx := context.Background()

	t.Run("missing fields", func(t *testing.T) {
		req := validRequest()
		req.Email = "  "
		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, deliverydomain.ErrMissingParams)

		req = validRequest()
		req.Distance = nil
		_, err = svc.Create(ctx, req)
		assert.ErrorIs(t, err, deliverydomain.ErrMissingParams)

		req = validRequest()
		req.Date = nil
		_, err = svc.Create(ctx, req)
		assert.ErrorIs(t, err, deliverydomain.ErrMissingParams)
	})

	t.Run("zero packages", func(t *testing.T) {
		req := validRequest()
		count := 0
		req.PackageCount = &count
		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, deliverydomain.ErrInvalidParams)
	})
}

func TestCreatePersistsDeliveryAndCustomer(t *testing.T) {
	svc, db := newTestService(t, &pricingStub{quote: testQuote()}, mail.Disabled{})
	ctx := context.Background()

	got, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)
	assert.Equal(t, 13.05, got.Cost)
	assert.Equal(t, 5.0, got.BaseCost)
	assert.Equal(t, deliverydomain.MailStatusNotSent, got.MailStatus)

	var customers, deliveries int64
	require.NoError(t, db.Model(&customerdomain.Customer{}).Count(&customers).Error)
	require.NoError(t, db.Model(&deliverydomain.Delivery{}).Count(&deliveries).Error)
	assert.EqualValues(t, 1, customers)
	assert.EqualValues(t, 1, deliveries)
}

func TestCreateReusesExistingCustomer(t *testing.T) {
	svc, db := newTestService(t, &pricingStub{quote: testQuote()}, mail.Disabled{})
	ctx := context.Background()

	first, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)
	second, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)
	assert.Equal(t, first.CustomerID, second.CustomerID)

	var customers int64
	require.NoError(t, db.Model(&customerdomain.Customer{}).Count(&customers).Error)
	assert.EqualValues(t, 1, customers)
}

func TestCreateQuoteFailureDoesNotPersist(t *testing.T) {
	svc, db := newTestService(t, &pricingStub{err: pricingdomain.ErrFixedPricesNotSet}, mail.Disabled{})

	_, err := svc.Create(context.Background(), validRequest())
	assert.ErrorIs(t, err, pricingdomain.ErrFixedPricesNotSet)

	var deliveries int64
	require.NoError(t, db.Model(&deliverydomain.Delivery{}).Count(&deliveries).Error)
	assert.EqualValues(t, 0, deliveries)
}

func TestCreateMailStatus(t *testing.T) {
	t.Run("sent on success", func(t *testing.T) {
		mailer := &mailerStub{}
		svc, _ := newTestService(t, &pricingStub{quote: testQuote()}, mailer)

		got, err := svc.Create(context.Background(), validRequest())
		require.NoError(t, err)
		assert.Equal(t, deliverydomain.MailStatusSent, got.MailStatus)
		require.Len(t, mailer.sent, 1)
		assert.Equal(t, "jane@example.com", mailer.sent[0].Email)
		assert.Equal(t, 13.05, mailer.sent[0].Price)
	})

	t.Run("failure is non-fatal", func(t *testing.T) {
		mailer := &mailerStub{err: errors.New("smtp down")}
		svc, _ := newTestService(t, &pricingStub{quote: testQuote()}, mailer)

		got, err := svc.Create(context.Background(), validRequest())
		require.NoError(t, err)
		assert.Equal(t, deliverydomain.MailStatusNotSent, got.MailStatus)
	})
}
