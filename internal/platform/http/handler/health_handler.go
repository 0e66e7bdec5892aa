// Package handler holds HTTP handlers for platform endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthResponse is the body returned by GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}

// Health answers liveness probes on /healthz. Responses are never cached.
// HEAD gets 200 with no body and OPTIONS gets 204.
func Health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case http.MethodHead:
		c.Status(http.StatusOK)
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
	default:
		c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
	}
}

// RegisterHealth mounts Health on GET, HEAD and OPTIONS /healthz.
func RegisterHealth(r gin.IRoutes) {
	r.GET("/healthz", Health)
	r.HEAD("/healthz", Health)
	r.OPTIONS("/healthz", Health)
}
