package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/license-management-toolkit/keyserve/internal/entity/dto/v1"
	"github.com/license-management-toolkit/keyserve/internal/usecase/licenses"
	"github.com/license-management-toolkit/keyserve/internal/usecase/sessions"
	"github.com/license-management-toolkit/keyserve/internal/usecase/sqldb"
)

type response struct {
	Error   string `json:"error,omitempty" example:"message"`
	Message string `json:"message,omitempty" example:"message"`
}

func ErrorResponse(c *gin.Context, err error) {
	var (
		validatorErr    validator.ValidationErrors
		notValidErr     dto.NotValidError
		keyNotFoundErr  licenses.KeyNotFoundError
		keyExpiredErr   licenses.KeyExpiredError
		installLimitErr licenses.InstallLimitError
		sessionLimitErr licenses.SessionLimitError
		sessionNfErr    sessions.SessionNotFoundError
		nfErr           sqldb.NotFoundError
		notUniqueErr    sqldb.NotUniqueError
		foreignKeyErr   sqldb.ForeignKeyViolationError
		dbErr           sqldb.DatabaseError
	)

	switch {
	case errors.As(err, &notValidErr):
		notValidErrorHandle(c, notValidErr)
	case errors.As(err, &validatorErr):
		validatorErrorHandle(c, validatorErr)
	case errors.As(err, &keyNotFoundErr):
		msg := keyNotFoundErr.App.FriendlyMessage()
		c.AbortWithStatusJSON(http.StatusNotFound, response{Error: msg, Message: msg})
	case errors.As(err, &sessionNfErr):
		msg := sessionNfErr.App.FriendlyMessage()
		c.AbortWithStatusJSON(http.StatusNotFound, response{Error: msg, Message: msg})
	case errors.As(err, &keyExpiredErr):
		msg := keyExpiredErr.App.FriendlyMessage()
		c.AbortWithStatusJSON(http.StatusForbidden, response{Error: msg, Message: msg})
	case errors.As(err, &installLimitErr):
		msg := installLimitErr.App.FriendlyMessage()
		c.AbortWithStatusJSON(http.StatusForbidden, response{Error: msg, Message: msg})
	case errors.As(err, &sessionLimitErr):
		msg := sessionLimitErr.App.FriendlyMessage()
		c.AbortWithStatusJSON(http.StatusForbidden, response{Error: msg, Message: msg})
	case errors.As(err, &nfErr):
		notFoundErrorHandle(c, nfErr)
	case errors.As(err, &notUniqueErr):
		notUniqueErrorHandle(c, notUniqueErr)
	case errors.As(err, &foreignKeyErr):
		msg := foreignKeyErr.App.FriendlyMessage()
		c.AbortWithStatusJSON(http.StatusBadRequest, response{Error: msg, Message: msg})
	case errors.As(err, &dbErr):
		dbErrorHandle(c, dbErr)
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, response{Error: "general error", Message: "general error"})
	}
}

func notValidErrorHandle(c *gin.Context, err dto.NotValidError) {
	msg := err.App.FriendlyMessage()
	c.AbortWithStatusJSON(http.StatusBadRequest, response{Error: msg, Message: msg})
}

func validatorErrorHandle(c *gin.Context, err validator.ValidationErrors) {
	msg := err.Error()
	c.AbortWithStatusJSON(http.StatusBadRequest, response{Error: msg, Message: msg})
}

func notFoundErrorHandle(c *gin.Context, err sqldb.NotFoundError) {
	message := "Error not found"
	if err.App.FriendlyMessage() != "" {
		message = err.App.FriendlyMessage()
	}

	c.AbortWithStatusJSON(http.StatusNotFound, response{Error: message, Message: message})
}

func dbErrorHandle(c *gin.Context, err sqldb.DatabaseError) {
	var notUniqueErr sqldb.NotUniqueError

	var foreignKeyViolationErr sqldb.ForeignKeyViolationError

	if errors.As(err.App.OriginalError, &notUniqueErr) {
		notUniqueErrorHandle(c, notUniqueErr)

		return
	}

	if errors.As(err.App.OriginalError, &foreignKeyViolationErr) {
		msg := foreignKeyViolationErr.App.FriendlyMessage()
		c.AbortWithStatusJSON(http.StatusBadRequest, response{Error: msg, Message: msg})

		return
	}

	msg := err.App.FriendlyMessage()
	c.AbortWithStatusJSON(http.StatusInternalServerError, response{Error: msg, Message: msg})
}

func notUniqueErrorHandle(c *gin.Context, err sqldb.NotUniqueError) {
	msg := err.App.FriendlyMessage()
	c.AbortWithStatusJSON(http.StatusBadRequest, response{Error: msg, Message: msg})
}
