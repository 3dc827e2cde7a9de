package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	deliverydomain "github.com/mmdpc/courierd/internal/delivery/domain"
)

func (s *Server) RequestDelivery(c *gin.Context) {
	var req deliverydomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	delivery, err := s.deliverySvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": delivery, "mailStatus": delivery.MailStatus})
}
