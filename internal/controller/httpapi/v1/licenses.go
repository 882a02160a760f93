package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/license-management-toolkit/keyserve/internal/entity/dto/v1"
	"github.com/license-management-toolkit/keyserve/internal/usecase/licenses"
	"github.com/license-management-toolkit/keyserve/internal/usecase/sessions"
	"github.com/license-management-toolkit/keyserve/pkg/apperrors"
	"github.com/license-management-toolkit/keyserve/pkg/logger"
)

var ErrValidationLicense = dto.NotValidError{App: apperrors.CreateAppError("LicenseAPI")}

type licenseRoutes struct {
	t licenses.Feature
	s sessions.Feature
	l logger.Interface
}

// NewLicenseRoutes wires the client-facing surface: key lookup and the
// session lifecycle.
func NewLicenseRoutes(handler *gin.RouterGroup, t licenses.Feature, s sessions.Feature, l logger.Interface) {
	r := &licenseRoutes{t, s, l}

	handler.POST("/key_info", r.keyInfo)
	handler.POST("/session", r.startSession)
	handler.POST("/session/keepalive", r.keepAlive)
	handler.DELETE("/session", r.endSession)
}

func (r *licenseRoutes) keyInfo(c *gin.Context) {
	var req dto.KeyInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErr := ErrValidationLicense.Wrap("keyInfo", "ShouldBindJSON", err)
		ErrorResponse(c, validationErr)

		return
	}

	info, err := r.t.Describe(c.Request.Context(), req.LicenseKey)
	if err != nil {
		r.l.Error(err, "http - v1 - keyInfo")
		ErrorResponse(c, err)

		return
	}

	c.JSON(http.StatusOK, info)
}

func (r *licenseRoutes) startSession(c *gin.Context) {
	var req dto.StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErr := ErrValidationLicense.Wrap("startSession", "ShouldBindJSON", err)
		ErrorResponse(c, validationErr)

		return
	}

	sessionID, err := r.t.StartSession(c.Request.Context(), req.LicenseKey, req.Fingerprint)
	if err != nil {
		r.l.Error(err, "http - v1 - startSession")
		ErrorResponse(c, err)

		return
	}

	c.JSON(http.StatusOK, dto.SessionID{SessionID: sessionID})
}

func (r *licenseRoutes) keepAlive(c *gin.Context) {
	var req dto.SessionID
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErr := ErrValidationLicense.Wrap("keepAlive", "ShouldBindJSON", err)
		ErrorResponse(c, validationErr)

		return
	}

	if err := r.s.KeepAlive(c.Request.Context(), req.SessionID); err != nil {
		r.l.Error(err, "http - v1 - keepAlive")
		ErrorResponse(c, err)

		return
	}

	c.JSON(http.StatusOK, dto.Successful{Success: true})
}

func (r *licenseRoutes) endSession(c *gin.Context) {
	var req dto.SessionID
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErr := ErrValidationLicense.Wrap("endSession", "ShouldBindJSON", err)
		ErrorResponse(c, validationErr)

		return
	}

	if err := r.s.End(c.Request.Context(), req.SessionID); err != nil {
		r.l.Error(err, "http - v1 - endSession")
		ErrorResponse(c, err)

		return
	}

	c.JSON(http.StatusOK, dto.Successful{Success: true})
}
