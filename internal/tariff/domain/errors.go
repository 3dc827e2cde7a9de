package domain

import "errors"

var (
	ErrMissingParams = errors.New("tariff: missing params")
	ErrInvalidParams = errors.New("tariff: invalid params")
	ErrNotExhaustive = errors.New("tariff: intervals are not exhaustive")
	ErrNotContiguous = errors.New("tariff: intervals are not contiguous")
	ErrNotSet        = errors.New("tariff: no intervals configured")
)
