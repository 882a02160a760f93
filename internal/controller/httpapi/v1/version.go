package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/license-management-toolkit/keyserve/config"
)

// VersionRoute -.
type VersionRoute struct {
	cfg *config.Config
}

// VersionResponse -.
type VersionResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

func NewVersionRoute(cfg *config.Config) *VersionRoute {
	return &VersionRoute{cfg: cfg}
}

// VersionHandler reports the running build.
func (r *VersionRoute) VersionHandler(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Name:    r.cfg.App.Name,
		Version: r.cfg.App.Version,
	})
}
