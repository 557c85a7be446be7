package handler

import (
	"context"
	"net/http"
	"time"

	"lottery-awards/internal/core/ports"

	"github.com/gin-gonic/gin"
)

const healthCheckTimeout = 2 * time.Second

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// HealthCheck handles GET /health. Every dependency is pinged; any failure
// reports "degraded" with 503.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
		defer cancel()

		deps := make(map[string]dependencyStatus, len(checkers))
		healthy := true
		for _, checker := range checkers {
			if err := checker.Ping(ctx); err != nil {
				deps[checker.Name()] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
				healthy = false
				continue
			}
			deps[checker.Name()] = dependencyStatus{Status: "healthy"}
		}

		status, code := "healthy", http.StatusOK
		if !healthy {
			status, code = "degraded", http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
