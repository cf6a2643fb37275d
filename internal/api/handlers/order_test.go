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

type OrderHandlerTestSuite struct {
	testutils.HTTPTestSuite
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockOrderServiceInterface
	mockStores  *mocks.MockStoreRepositoryInterface
	store       *models.Store
}

func (suite *OrderHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockOrderServiceInterface(suite.ctrl)
	suite.mockStores = mocks.NewMockStoreRepositoryInterface(suite.ctrl)
	suite.store = testutils.NewStoreFactory().Create()
	suite.mockStores.EXPECT().GetByDomain(suite.store.Domain).Return(suite.store, nil).AnyTimes()
	suite.HTTPTestSuite = *testutils.SetupHTTPTest()

	handler := handlers.NewOrderHandler(suite.mockService)
	resolveStore := tenancy.ResolveStore(tenancy.NewResolver(suite.mockStores))

	group := suite.Router.Group("/orders", resolveStore)
	group.POST("", handler.CreateOrder)
	group.GET("", handler.ListOrders)
	group.GET("/:id", handler.GetOrder)
	group.POST("/:id/cancel", handler.CancelOrder)
}

func (suite *OrderHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *OrderHandlerTestSuite) storeHeaders() map[string]string {
	return map[string]string{"X-Store-Domain": suite.store.Domain}
}

func (suite *OrderHandlerTestSuite) orderBody() map[string]interface{} {
	return map[string]interface{}{
		"email": "guest@example.com",
		"items": []map[string]interface{}{
			{"product_id": uuid.New().String(), "quantity": 2},
		},
	}
}

func (suite *OrderHandlerTestSuite) TestCreateOrderGuestCheckout() {
	suite.mockService.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Nil(), gomock.Any()).
		DoAndReturn(func(_ interface{}, store *models.Store, _ *models.User, req *service.CreateOrderRequest) (*service.OrderResponse, error) {
			suite.Equal(suite.store.ID, store.ID)
			suite.Equal("guest@example.com", req.Email)
			return &service.OrderResponse{ID: uuid.New(), Email: req.Email, Status: models.OrderStatusPending, Total: 5000}, nil
		})

	w := suite.MakeRequestWithHeaders("POST", "/orders", suite.orderBody(), suite.storeHeaders())

	var resp service.OrderResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &resp)
	suite.Equal(models.OrderStatusPending, resp.Status)
	suite.Equal(float64(5000), resp.Total)
}

func (suite *OrderHandlerTestSuite) TestCreateOrderMonthlyLimitReached() {
	suite.mockService.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrOrderLimitReached)

	w := suite.MakeRequestWithHeaders("POST", "/orders", suite.orderBody(), suite.storeHeaders())

	testutils.AssertErrorResponse(suite.T(), w, http.StatusForbidden, "order limit")
}

func (suite *OrderHandlerTestSuite) TestCreateOrderUnknownProduct() {
	suite.mockService.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrProductNotFound)

	w := suite.MakeRequestWithHeaders("POST", "/orders", suite.orderBody(), suite.storeHeaders())

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *OrderHandlerTestSuite) TestGetOrderInvalidID() {
	w := suite.MakeRequestWithHeaders("GET", "/orders/not-a-uuid", nil, suite.storeHeaders())

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "invalid order ID")
}

func (suite *OrderHandlerTestSuite) TestGetOrderNotFound() {
	id := uuid.New()
	suite.mockService.EXPECT().
		GetByID(gomock.Any(), suite.store.ID, id).
		Return(nil, apperrors.ErrOrderNotFound)

	w := suite.MakeRequestWithHeaders("GET", "/orders/"+id.String(), nil, suite.storeHeaders())

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *OrderHandlerTestSuite) TestListOrdersPassesPagination() {
	suite.mockService.EXPECT().
		List(gomock.Any(), suite.store.ID, 2, 10).
		Return(&service.OrderListResponse{Orders: []service.OrderResponse{}, Page: 2, PageSize: 10}, nil)

	w := suite.MakeRequestWithHeaders("GET", "/orders?page=2&page_size=10", nil, suite.storeHeaders())

	var resp service.OrderListResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &resp)
	suite.Equal(2, resp.Page)
}

func (suite *OrderHandlerTestSuite) TestCancelOrder() {
	id := uuid.New()
	suite.mockService.EXPECT().
		Cancel(gomock.Any(), suite.store.ID, id).
		Return(&service.OrderResponse{ID: id, Status: models.OrderStatusCancelled}, nil)

	w := suite.MakeRequestWithHeaders("POST", "/orders/"+id.String()+"/cancel", nil, suite.storeHeaders())

	var resp service.OrderResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &resp)
	suite.Equal(models.OrderStatusCancelled, resp.Status)
}

func (suite *OrderHandlerTestSuite) TestCancelOrderNotPending() {
	id := uuid.New()
	suite.mockService.EXPECT().
		Cancel(gomock.Any(), suite.store.ID, id).
		Return(nil, &apperrors.BadRequestError{Message: "only pending orders can be cancelled"})

	w := suite.MakeRequestWithHeaders("POST", "/orders/"+id.String()+"/cancel", nil, suite.storeHeaders())

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "only pending orders")
}

func TestOrderHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}
