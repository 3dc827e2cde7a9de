package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// DataResponse is the success envelope shared by every endpoint.
type DataResponse struct {
	Data any `json:"data"`
}

// ErrorResponse is the error envelope: {"error":{"code":...,"message":...}}.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

type ErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func respondData(c *gin.Context, data any) {
	c.JSON(http.StatusOK, DataResponse{Data: data})
}

func respondError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: ErrorBody{Code: status, Message: message}})
}
