package server

import (
	"github.com/gin-gonic/gin"

	fixedpricedomain "github.com/mmdpc/courierd/internal/fixedprice/domain"
	tariffdomain "github.com/mmdpc/courierd/internal/tariff/domain"
)

func (s *Server) GetFixedPrices(c *gin.Context) {
	price, err := s.fixedSvc.Get(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, price)
}

func (s *Server) PutFixedPrices(c *gin.Context) {
	var req fixedpricedomain.ReplaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	price, err := s.fixedSvc.Replace(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if s.auditSvc != nil {
		s.auditSvc.AuditLog(c.Request.Context(), "admin", "prices.fixed.replace", "fixed_price", map[string]any{
			"base":               price.Base,
			"additional_package": price.AdditionalPackage,
		})
	}

	respondData(c, price)
}

func (s *Server) GetVariablePrices(c *gin.Context) {
	intervals, err := s.tariffSvc.Get(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, intervals)
}

func (s *Server) PutVariablePrices(c *gin.Context) {
	var req []tariffdomain.IntervalInput
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	intervals, err := s.tariffSvc.Replace(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if s.auditSvc != nil {
		s.auditSvc.AuditLog(c.Request.Context(), "admin", "prices.variable.replace", "tariff", map[string]any{
			"interval_count": len(intervals),
		})
	}

	respondData(c, intervals)
}
