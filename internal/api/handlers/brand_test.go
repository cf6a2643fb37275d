package handlers_test

import (
	"net/http"
	"testing"

	"storefront-backend/internal/api/handlers"
	"storefront-backend/internal/database/models"
	apperrors "storefront-backend/internal/errors"
	"storefront-backend/internal/mocks"
	"storefront-backend/internal/service"
	"storefront-backend/internal/tenancy"
	"storefront-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BrandHandlerTestSuite struct {
	testutils.HTTPTestSuite
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockBrandServiceInterface
	mockStores  *mocks.MockStoreRepositoryInterface
	store       *models.Store
}

func (suite *BrandHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockBrandServiceInterface(suite.ctrl)
	suite.mockStores = mocks.NewMockStoreRepositoryInterface(suite.ctrl)
	suite.store = testutils.NewStoreFactory().Create()
	suite.mockStores.EXPECT().GetByDomain(suite.store.Domain).Return(suite.store, nil).AnyTimes()
	suite.HTTPTestSuite = *testutils.SetupHTTPTest()

	handler := handlers.NewBrandHandler(suite.mockService)
	resolveStore := tenancy.ResolveStore(tenancy.NewResolver(suite.mockStores))

	group := suite.Router.Group("/brands", resolveStore)
	group.POST("", handler.CreateBrand)
	group.GET("", handler.ListBrands)
	group.PUT("/:id", handler.UpdateBrand)
	group.DELETE("/:id", handler.DeleteBrand)
}

func (suite *BrandHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *BrandHandlerTestSuite) storeHeaders() map[string]string {
	return map[string]string{"X-Store-Domain": suite.store.Domain}
}

func (suite *BrandHandlerTestSuite) TestCreateBrand() {
	suite.mockService.EXPECT().
		Create(gomock.Any(), suite.store.ID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ uuid.UUID, req *service.BrandRequest) (*service.BrandResponse, error) {
			suite.Equal("Nike", req.Name)
			return &service.BrandResponse{ID: uuid.New(), Name: req.Name}, nil
		})

	w := suite.MakeRequestWithHeaders("POST", "/brands", map[string]string{"name": "Nike"}, suite.storeHeaders())

	var resp service.BrandResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &resp)
	suite.Equal("Nike", resp.Name)
}

func (suite *BrandHandlerTestSuite) TestListBrands() {
	suite.mockService.EXPECT().
		List(gomock.Any(), suite.store.ID).
		Return([]service.BrandResponse{{Name: "Nike"}, {Name: "Adidas"}}, nil)

	w := suite.MakeRequestWithHeaders("GET", "/brands", nil, suite.storeHeaders())

	var resp []service.BrandResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &resp)
	suite.Len(resp, 2)
}

func (suite *BrandHandlerTestSuite) TestUpdateBrandNotFound() {
	id := uuid.New()
	suite.mockService.EXPECT().
		Update(gomock.Any(), suite.store.ID, id, gomock.Any()).
		Return(nil, apperrors.ErrBrandNotFound)

	w := suite.MakeRequestWithHeaders("PUT", "/brands/"+id.String(), map[string]string{"name": "Puma"}, suite.storeHeaders())

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *BrandHandlerTestSuite) TestUpdateBrandInvalidID() {
	w := suite.MakeRequestWithHeaders("PUT", "/brands/nope", map[string]string{"name": "Puma"}, suite.storeHeaders())

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "invalid brand ID")
}

func (suite *BrandHandlerTestSuite) TestDeleteBrand() {
	id := uuid.New()
	suite.mockService.EXPECT().
		Delete(gomock.Any(), suite.store.ID, id).
		Return(nil)

	w := suite.MakeRequestWithHeaders("DELETE", "/brands/"+id.String(), nil, suite.storeHeaders())

	suite.Equal(http.StatusNoContent, w.Code)
}

func TestBrandHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BrandHandlerTestSuite))
}
