package domain

import "errors"

var (
	ErrMissingParams = errors.New("fixedprice: missing params")
	ErrNegativeValue = errors.New("fixedprice: negative value")
	ErrNotSet        = errors.New("fixedprice: no active fixed price")
)
