package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health reports liveness. No dependency checks; a responding process is
// alive by definition.
func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ALIVE"})
}
