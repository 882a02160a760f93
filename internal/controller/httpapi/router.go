// Package httpapi implements routing paths. Each services in own file.
package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	ginprometheus "github.com/zsais/go-gin-prometheus"

	"github.com/license-management-toolkit/keyserve/config"
	v1 "github.com/license-management-toolkit/keyserve/internal/controller/httpapi/v1"
	"github.com/license-management-toolkit/keyserve/internal/usecase"
	"github.com/license-management-toolkit/keyserve/pkg/logger"
)

// NewRouter -.
func NewRouter(handler *gin.Engine, l logger.Interface, t usecase.Usecases, cfg *config.Config) {
	// Options
	handler.Use(gin.Logger())
	handler.Use(gin.Recovery())

	// Prometheus middleware for automatic HTTP metrics; /metrics is
	// registered separately below
	p := ginprometheus.NewPrometheus("gin")
	p.MetricsPath = ""
	handler.Use(p.HandlerFunc())

	// Public routes
	login := v1.NewLoginRoute(cfg)
	handler.POST("/api/v1/authorize", login.Login)

	// K8s probe
	handler.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })

	// Prometheus metrics
	handler.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// version info
	vr := v1.NewVersionRoute(cfg)
	handler.GET("/version", vr.VersionHandler)

	// Client-facing license surface, unauthenticated: the license key or the
	// session id is the credential.
	public := handler.Group("/api/v1")
	{
		v1.NewLicenseRoutes(public, t.Licenses, t.Sessions, l)
	}

	// Admin routes using JWT middleware
	var protected *gin.RouterGroup
	if cfg.Auth.Disabled {
		protected = handler.Group("/api/v1/admin")
	} else {
		protected = handler.Group("/api/v1/admin", login.JWTAuthMiddleware())
	}

	{
		v1.NewProductRoutes(protected, t.Products, l)
		v1.NewSignatureRoutes(protected, t.Signatures, l)
	}
}
