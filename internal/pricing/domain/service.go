package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrFixedPricesNotSet = errors.New("pricing: fixed prices not defined")
	ErrTariffNotSet      = errors.New("pricing: variable prices not defined")
)

// Service produces quotes from the currently active configuration.
type Service interface {
	QuoteFor(ctx context.Context, distance float64, packageCount int, date time.Time) (Quote, error)
}
