package v1

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	dto "github.com/license-management-toolkit/keyserve/internal/entity/dto/v1"
	"github.com/license-management-toolkit/keyserve/internal/mocks"
	"github.com/license-management-toolkit/keyserve/internal/usecase/products"
	"github.com/license-management-toolkit/keyserve/pkg/logger"
)

func productRoutesTest(t *testing.T) (*gin.Engine, *mocks.MockProductsFeature) {
	t.Helper()

	mockCtl := gomock.NewController(t)

	prodMock := mocks.NewMockProductsFeature(mockCtl)

	gin.SetMode(gin.TestMode)

	engine := gin.New()
	handler := engine.Group("/api/v1/admin")

	NewProductRoutes(handler, prodMock, logger.New("error"))

	return engine, prodMock
}

func TestProductsGetWithCount(t *testing.T) {
	t.Parallel()

	engine, prodMock := productRoutesTest(t)

	installs := 3
	items := []dto.Product{{ID: 1, Name: "pro-plan", SigInstallLimit: &installs}}

	prodMock.EXPECT().Get(gomock.Any(), 10, 0).Return(items, nil)
	prodMock.EXPECT().GetCount(gomock.Any()).Return(1, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/products?$top=10&$count=true", http.NoBody)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got dto.ProductCountResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, 1, got.Count)
	require.Len(t, got.Data, 1)
	require.Equal(t, "pro-plan", got.Data[0].Name)
}

func TestProductsGetByID_NotFound(t *testing.T) {
	t.Parallel()

	engine, prodMock := productRoutesTest(t)

	prodMock.EXPECT().
		GetByID(gomock.Any(), int64(42)).
		Return(nil, products.ErrNotFound.Wrap("GetByID", "uc.repo.GetByID", nil))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/products/42", http.NoBody)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestProductsGetByID_BadID(t *testing.T) {
	t.Parallel()

	engine, _ := productRoutesTest(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/products/notanumber", http.NoBody)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProductsInsert(t *testing.T) {
	t.Parallel()

	engine, prodMock := productRoutesTest(t)

	period := int64(86400)
	created := &dto.Product{ID: 5, Name: "pro-plan", SigPeriod: &period}

	prodMock.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(created, nil)

	w := postJSON(t, engine, http.MethodPost, "/api/v1/admin/products", `{"name":"pro-plan","sig_period":86400}`)

	require.Equal(t, http.StatusCreated, w.Code)

	var got dto.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, int64(5), got.ID)
	require.NotNil(t, got.SigPeriod)
	require.Equal(t, int64(86400), *got.SigPeriod)
}

func TestProductsInsert_NegativeLimitRejected(t *testing.T) {
	t.Parallel()

	engine, _ := productRoutesTest(t)

	w := postJSON(t, engine, http.MethodPost, "/api/v1/admin/products", `{"name":"pro-plan","sig_install_limit":-1}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProductsDelete(t *testing.T) {
	t.Parallel()

	engine, prodMock := productRoutesTest(t)

	prodMock.EXPECT().Delete(gomock.Any(), int64(5)).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/products/5", http.NoBody)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
}
