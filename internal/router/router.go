// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/gmfarias/arquivo-pastas/internal/config"
	"github.com/gmfarias/arquivo-pastas/internal/handler"
	"github.com/gmfarias/arquivo-pastas/internal/middleware"
)

// RegisterRoutes wires every endpoint of the service onto the provided
// Echo instance. The registry handler serves reads and the location
// selection; the capture handler serves the detect/confirm cycle. The
// hierarchy GET sits behind the Redis response cache and the detect
// endpoint behind the rate limiter; both middlewares degrade to
// pass-throughs when Redis is unavailable.
func RegisterRoutes(e *echo.Echo, reg *handler.RegistryHandler, capture *handler.CaptureHandler, cacheCfg config.CacheConfig, rlCfg config.RateLimitConfig, rdb *redis.Client) {
	// Health check for load balancers and monitoring.
	e.GET("/healthz", handler.Health)

	// Minimal capture page. The page is a thin client over the JSON API.
	e.Static("/static", "web/static")
	e.File("/", "web/static/index.html")

	e.GET(handler.HierarchyPath, reg.GetHierarchy, middleware.NewRedisCache(cacheCfg, rdb))
	e.PUT(handler.LocationPath, reg.SetLocation)
	e.POST(handler.DetectPath, capture.Detect, middleware.NewTokenBucket(rlCfg, rdb))
	e.POST(handler.FoldersPath, capture.Confirm)
}
