//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"nailbook/internal/handler/api"
	resdto "nailbook/internal/handler/dto/response"
	"nailbook/internal/usecase/queries"
	"nailbook/tests/common/builder"
	"nailbook/tests/common/httptest"
	queriesmock "nailbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ProductHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockProductQueries
	handler     *api.ProductHandler
}

func (s *ProductHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockProductQueries(s.mockCtrl)
	s.handler = api.NewProductHandler(s.mockQueries)

	s.router.GET("/products", s.handler.List)
	s.router.GET("/products/:id", s.handler.Get)
}

func (s *ProductHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestProductHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProductHandlerTestSuite))
}

func (s *ProductHandlerTestSuite) TestList() {
	s.Run("success: returns catalog", func() {
		views := []*queries.ProductView{builder.NewProductBuilder().BuildView()}
		s.mockQueries.EXPECT().ListPublic(gomock.Any(), queries.ProductFilters{}).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products", nil, "")

		var response []*resdto.ProductResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal(views[0].Name, response[0].Name)
	})

	s.Run("success: passes category and tag filters", func() {
		expected := queries.ProductFilters{Category: "Nail Art", Tag: "Promo"}
		s.mockQueries.EXPECT().ListPublic(gomock.Any(), expected).
			Return([]*queries.ProductView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/products?category=Nail+Art&tag=Promo", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 500 on query failure", func() {
		s.mockQueries.EXPECT().ListPublic(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *ProductHandlerTestSuite) TestGet() {
	view := builder.NewProductBuilder().BuildView()

	s.Run("success: returns product", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products/"+view.ID.String(), nil, "")

		var response resdto.ProductResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.Name, response.Name)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid product ID format")
	})

	s.Run("error: 404 when product missing", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).
			Return(nil, queries.ErrProductNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Product not found")
	})
}
