package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/license-management-toolkit/keyserve/internal/entity/dto/v1"
	"github.com/license-management-toolkit/keyserve/internal/usecase/signatures"
	"github.com/license-management-toolkit/keyserve/pkg/apperrors"
	"github.com/license-management-toolkit/keyserve/pkg/logger"
)

var ErrValidationSignature = dto.NotValidError{App: apperrors.CreateAppError("SignatureAPI")}

type signatureRoutes struct {
	t signatures.Feature
	l logger.Interface
}

func NewSignatureRoutes(handler *gin.RouterGroup, t signatures.Feature, l logger.Interface) {
	r := &signatureRoutes{t, l}

	h := handler.Group("/signatures")
	{
		h.GET("product/:id", r.getByProduct)
		h.GET(":id", r.getByID)
		h.POST("", r.insert)
		h.PATCH("", r.update)
		h.DELETE(":id", r.delete)
	}
}

func (r *signatureRoutes) getByProduct(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		validationErr := ErrValidationSignature.Wrap("getByProduct", "strconv.ParseInt", err)
		ErrorResponse(c, validationErr)

		return
	}

	var odata OData
	if err := c.ShouldBindQuery(&odata); err != nil {
		validationErr := ErrValidationSignature.Wrap("getByProduct", "ShouldBindQuery", err)
		ErrorResponse(c, validationErr)

		return
	}

	items, err := r.t.Get(c.Request.Context(), productID, odata.Top, odata.Skip)
	if err != nil {
		r.l.Error(err, "http - v1 - getByProduct")
		ErrorResponse(c, err)

		return
	}

	if odata.Count {
		count, err := r.t.GetCount(c.Request.Context(), productID)
		if err != nil {
			r.l.Error(err, "http - v1 - getCount")
			ErrorResponse(c, err)
		}

		countResponse := dto.SignatureCountResponse{
			Count: count,
			Data:  items,
		}

		c.JSON(http.StatusOK, countResponse)
	} else {
		c.JSON(http.StatusOK, items)
	}
}

func (r *signatureRoutes) getByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		validationErr := ErrValidationSignature.Wrap("getByID", "strconv.ParseInt", err)
		ErrorResponse(c, validationErr)

		return
	}

	item, err := r.t.GetByID(c.Request.Context(), id)
	if err != nil {
		r.l.Error(err, "http - v1 - getByID")
		ErrorResponse(c, err)

		return
	}

	c.JSON(http.StatusOK, item)
}

func (r *signatureRoutes) insert(c *gin.Context) {
	var signature dto.Signature
	if err := c.ShouldBindJSON(&signature); err != nil {
		validationErr := ErrValidationSignature.Wrap("insert", "ShouldBindJSON", err)
		ErrorResponse(c, validationErr)

		return
	}

	newSignature, err := r.t.Insert(c.Request.Context(), &signature)
	if err != nil {
		r.l.Error(err, "http - v1 - insert")
		ErrorResponse(c, err)

		return
	}

	c.JSON(http.StatusCreated, newSignature)
}

func (r *signatureRoutes) update(c *gin.Context) {
	var signature dto.Signature
	if err := c.ShouldBindJSON(&signature); err != nil {
		validationErr := ErrValidationSignature.Wrap("update", "ShouldBindJSON", err)
		ErrorResponse(c, validationErr)

		return
	}

	updatedSignature, err := r.t.Update(c.Request.Context(), &signature)
	if err != nil {
		r.l.Error(err, "http - v1 - update")
		ErrorResponse(c, err)

		return
	}

	c.JSON(http.StatusOK, updatedSignature)
}

func (r *signatureRoutes) delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		validationErr := ErrValidationSignature.Wrap("delete", "strconv.ParseInt", err)
		ErrorResponse(c, validationErr)

		return
	}

	if err := r.t.Delete(c.Request.Context(), id); err != nil {
		r.l.Error(err, "http - v1 - delete")
		ErrorResponse(c, err)

		return
	}

	c.JSON(http.StatusNoContent, nil)
}
