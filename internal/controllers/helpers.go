package controllers

import (
	"strconv"

	"github.com/franciscosanchezn/gin-restaurant-pizzas/internal/middleware"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// parseID reads the :id path parameter as an unsigned integer
func parseID(ctx *gin.Context) (uint, bool) {
	id, exists := ctx.Params.Get("id")
	if !exists {
		return 0, false
	}
	parsed, err := strconv.ParseUint(id, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(parsed), true
}

// requestLogger returns a log entry tagged with the request id
func requestLogger(ctx *gin.Context) *log.Entry {
	return log.WithField("request_id", ctx.GetString(middleware.RequestIDKey))
}
