package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	authdomain "github.com/mmdpc/courierd/internal/auth/domain"
	deliverydomain "github.com/mmdpc/courierd/internal/delivery/domain"
	fixedpricedomain "github.com/mmdpc/courierd/internal/fixedprice/domain"
	pricingdomain "github.com/mmdpc/courierd/internal/pricing/domain"
	tariffdomain "github.com/mmdpc/courierd/internal/tariff/domain"
)

var (
	ErrMethodNotAllowed = errors.New("server: method not allowed")
	errBadRequest       = errors.New("server: malformed request body")
)

// statusFor maps domain errors onto the HTTP taxonomy. Anything unmapped is
// an internal error and must not leak its message to the client.
func statusFor(err error) (int, bool) {
	switch {
	case errors.Is(err, tariffdomain.ErrMissingParams),
		errors.Is(err, tariffdomain.ErrInvalidParams),
		errors.Is(err, tariffdomain.ErrNotExhaustive),
		errors.Is(err, tariffdomain.ErrNotContiguous),
		errors.Is(err, fixedpricedomain.ErrMissingParams),
		errors.Is(err, fixedpricedomain.ErrNegativeValue),
		errors.Is(err, deliverydomain.ErrMissingParams),
		errors.Is(err, deliverydomain.ErrInvalidParams),
		errors.Is(err, authdomain.ErrMissingCredentials),
		errors.Is(err, errBadRequest):
		return http.StatusBadRequest, true
	case errors.Is(err, authdomain.ErrInvalidCredentials),
		errors.Is(err, authdomain.ErrUnauthorized):
		return http.StatusUnauthorized, true
	case errors.Is(err, tariffdomain.ErrNotSet),
		errors.Is(err, fixedpricedomain.ErrNotSet):
		return http.StatusNotFound, true
	case errors.Is(err, ErrMethodNotAllowed):
		return http.StatusMethodNotAllowed, true
	case errors.Is(err, pricingdomain.ErrFixedPricesNotSet),
		errors.Is(err, pricingdomain.ErrTariffNotSet):
		// Quoting without configured prices is an operator mistake, not a
		// client one.
		return http.StatusInternalServerError, true
	}
	return http.StatusInternalServerError, false
}

func AbortWithError(c *gin.Context, err error) {
	status, known := statusFor(err)
	message := "Internal server error"
	if known {
		message = clientMessage(err)
	}
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	respondError(c, status, message)
}

func clientMessage(err error) string {
	switch {
	case errors.Is(err, tariffdomain.ErrMissingParams),
		errors.Is(err, fixedpricedomain.ErrMissingParams),
		errors.Is(err, deliverydomain.ErrMissingParams):
		return "Missing params"
	case errors.Is(err, tariffdomain.ErrInvalidParams),
		errors.Is(err, deliverydomain.ErrInvalidParams),
		errors.Is(err, errBadRequest):
		return "Invalid params"
	case errors.Is(err, tariffdomain.ErrNotExhaustive):
		return "Intervals are not exhaustive"
	case errors.Is(err, tariffdomain.ErrNotContiguous):
		return "Intervals are not contiguous"
	case errors.Is(err, fixedpricedomain.ErrNegativeValue):
		return "Prices must be non-negative"
	case errors.Is(err, authdomain.ErrMissingCredentials):
		return "Missing credentials"
	case errors.Is(err, authdomain.ErrInvalidCredentials):
		return "Invalid credentials"
	case errors.Is(err, authdomain.ErrUnauthorized):
		return "Unauthorized"
	case errors.Is(err, tariffdomain.ErrNotSet):
		return "Prices not set"
	case errors.Is(err, fixedpricedomain.ErrNotSet):
		return "Prices not set"
	case errors.Is(err, ErrMethodNotAllowed):
		return "Method not allowed"
	case errors.Is(err, pricingdomain.ErrFixedPricesNotSet):
		return "Fixed prices not defined"
	case errors.Is(err, pricingdomain.ErrTariffNotSet):
		return "Wholesale prices not defined"
	}
	return "Internal server error"
}

func invalidRequestError() error {
	return errBadRequest
}
