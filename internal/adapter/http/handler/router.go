package handler

import (
	"net/http"

	"lottery-awards/internal/adapter/http/middleware"
	"lottery-awards/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// MetricsExporter exposes collected metrics over HTTP and observes requests.
type MetricsExporter interface {
	middleware.HTTPObserver
	Handler() http.Handler
}

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	DrawSvc        ports.DrawService
	AwardSvc       ports.AwardService
	TokenSvc       ports.TokenService
	RateLimitStore middleware.RateLimitStore // nil = rate limiting disabled
	Metrics        MetricsExporter           // nil = no /metrics endpoint
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(256 << 10))
	if deps.Metrics != nil {
		r.Use(middleware.Metrics(deps.Metrics))
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	rules := middleware.DefaultRateLimitRules()
	rl := func(group string) gin.HandlerFunc {
		rule, ok := rules[group]
		if deps.RateLimitStore == nil || !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	drawHandler := NewDrawHandler(deps.DrawSvc)
	awardHandler := NewAwardHandler(deps.AwardSvc)

	v1 := r.Group("/api/v1")
	v1.GET("/prize-table", rl("read"), PrizeTable)

	draws := v1.Group("/draws")
	{
		draws.GET("", rl("read"), drawHandler.List)
		draws.GET("/:id", rl("read"), drawHandler.Get)
		draws.POST("/:id/check", rl("check"), awardHandler.Check)

		// operator only
		draws.POST("", jwtAuth, rl("publish"), drawHandler.Publish)
		draws.GET("/:id/payout", jwtAuth, rl("payout"), awardHandler.Payout)
	}

	return r
}
