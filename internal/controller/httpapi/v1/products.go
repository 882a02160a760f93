package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/license-management-toolkit/keyserve/internal/entity/dto/v1"
	"github.com/license-management-toolkit/keyserve/internal/usecase/products"
	"github.com/license-management-toolkit/keyserve/pkg/apperrors"
	"github.com/license-management-toolkit/keyserve/pkg/logger"
)

var ErrValidationProduct = dto.NotValidError{App: apperrors.CreateAppError("ProductAPI")}

type productRoutes struct {
	t products.Feature
	l logger.Interface
}

func NewProductRoutes(handler *gin.RouterGroup, t products.Feature, l logger.Interface) {
	r := &productRoutes{t, l}

	h := handler.Group("/products")
	{
		h.GET("", r.get)
		h.GET(":id", r.getByID)
		h.POST("", r.insert)
		h.PATCH("", r.update)
		h.DELETE(":id", r.delete)
	}
}

func (r *productRoutes) get(c *gin.Context) {
	var odata OData
	if err := c.ShouldBindQuery(&odata); err != nil {
		validationErr := ErrValidationProduct.Wrap("get", "ShouldBindQuery", err)
		ErrorResponse(c, validationErr)

		return
	}

	items, err := r.t.Get(c.Request.Context(), odata.Top, odata.Skip)
	if err != nil {
		r.l.Error(err, "http - v1 - get")
		ErrorResponse(c, err)

		return
	}

	if odata.Count {
		count, err := r.t.GetCount(c.Request.Context())
		if err != nil {
			r.l.Error(err, "http - v1 - getCount")
			ErrorResponse(c, err)
		}

		countResponse := dto.ProductCountResponse{
			Count: count,
			Data:  items,
		}

		c.JSON(http.StatusOK, countResponse)
	} else {
		c.JSON(http.StatusOK, items)
	}
}

func (r *productRoutes) getByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		validationErr := ErrValidationProduct.Wrap("getByID", "strconv.ParseInt", err)
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

func (r *productRoutes) insert(c *gin.Context) {
	var product dto.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		validationErr := ErrValidationProduct.Wrap("insert", "ShouldBindJSON", err)
		ErrorResponse(c, validationErr)

		return
	}

	newProduct, err := r.t.Insert(c.Request.Context(), &product)
	if err != nil {
		r.l.Error(err, "http - v1 - insert")
		ErrorResponse(c, err)

		return
	}

	c.JSON(http.StatusCreated, newProduct)
}

func (r *productRoutes) update(c *gin.Context) {
	var product dto.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		validationErr := ErrValidationProduct.Wrap("update", "ShouldBindJSON", err)
		ErrorResponse(c, validationErr)

		return
	}

	updatedProduct, err := r.t.Update(c.Request.Context(), &product)
	if err != nil {
		r.l.Error(err, "http - v1 - update")
		ErrorResponse(c, err)

		return
	}

	c.JSON(http.StatusOK, updatedProduct)
}

func (r *productRoutes) delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		validationErr := ErrValidationProduct.Wrap("delete", "strconv.ParseInt", err)
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
