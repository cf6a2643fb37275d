package service_test

import (
	"context"
	"testing"

	"storefront-backend/internal/database/models"
	apperrors "storefront-backend/internal/errors"
	"storefront-backend/internal/mocks"
	"storefront-backend/internal/service"
	"storefront-backend/internal/tenancy"
	"storefront-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type OrderServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockOrders   *mocks.MockOrderRepositoryInterface
	mockProducts *mocks.MockProductRepositoryInterface
	service      *service.OrderService
	ctx          context.Context
	store        *models.Store
}

func (suite *OrderServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockOrders = mocks.NewMockOrderRepositoryInterface(suite.ctrl)
	suite.mockProducts = mocks.NewMockProductRepositoryInterface(suite.ctrl)
	limits := tenancy.NewLimits(suite.mockProducts, suite.mockOrders)
	suite.service = service.NewOrderService(suite.mockOrders, suite.mockProducts, limits, validator.New())
	suite.ctx = context.Background()
	suite.store = testutils.NewStoreFactory().Create()
}

func (suite *OrderServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *OrderServiceTestSuite) TestCreatePricesLinesFromCatalog() {
	productA := testutils.NewProductFactory().WithPrice(suite.store.ID, 1000)
	productB := testutils.NewProductFactory().WithPrice(suite.store.ID, 250)

	req := &service.CreateOrderRequest{
		Email: "Buyer@Example.com",
		Items: []service.OrderItemRequest{
			{ProductID: productA.ID, Quantity: 2},
			{ProductID: productB.ID, Quantity: 4},
		},
	}

	suite.mockProducts.EXPECT().
		GetByIDs(suite.store.ID, gomock.Any()).
		Return([]models.Product{*productA, *productB}, nil)
	suite.mockOrders.EXPECT().
		CreateWithItems(gomock.Any(), gomock.Any()).
		DoAndReturn(func(order *models.Order, items []models.OrderItem) error {
			suite.Equal("buyer@example.com", order.Email)
			suite.Equal(models.OrderStatusPending, order.Status)
			suite.Equal(3000.0, order.Subtotal)
			suite.Equal(3000.0, order.Total)
			suite.Nil(order.UserID)
			suite.Require().Len(items, 2)
			suite.Equal(1000.0, items[0].UnitPrice)
			suite.Equal(2000.0, items[0].Total)
			return nil
		})

	response, err := suite.service.Create(suite.ctx, suite.store, nil, req)

	suite.Require().NoError(err)
	suite.Equal(3000.0, response.Total)
}

func (suite *OrderServiceTestSuite) TestCreateAttachesAuthenticatedUser() {
	user := testutils.NewUserFactory().Create()
	product := testutils.NewProductFactory().Create(suite.store.ID)

	suite.mockProducts.EXPECT().
		GetByIDs(suite.store.ID, gomock.Any()).
		Return([]models.Product{*product}, nil)
	suite.mockOrders.EXPECT().
		CreateWithItems(gomock.Any(), gomock.Any()).
		DoAndReturn(func(order *models.Order, items []models.OrderItem) error {
			suite.Require().NotNil(order.UserID)
			suite.Equal(user.ID, *order.UserID)
			return nil
		})

	_, err := suite.service.Create(suite.ctx, suite.store, user, &service.CreateOrderRequest{
		Email: user.Email,
		Items: []service.OrderItemRequest{{ProductID: product.ID, Quantity: 1}},
	})

	suite.NoError(err)
}

func (suite *OrderServiceTestSuite) TestCreateRejectsUnknownProduct() {
	product := testutils.NewProductFactory().Create(suite.store.ID)

	suite.mockProducts.EXPECT().
		GetByIDs(suite.store.ID, gomock.Any()).
		Return([]models.Product{}, nil)

	_, err := suite.service.Create(suite.ctx, suite.store, nil, &service.CreateOrderRequest{
		Email: "buyer@example.com",
		Items: []service.OrderItemRequest{{ProductID: product.ID, Quantity: 1}},
	})

	suite.ErrorIs(err, apperrors.ErrProductNotFound)
}

func (suite *OrderServiceTestSuite) TestCreateRejectsInactiveProduct() {
	product := testutils.NewProductFactory().Inactive(suite.store.ID)

	suite.mockProducts.EXPECT().
		GetByIDs(suite.store.ID, gomock.Any()).
		Return([]models.Product{*product}, nil)

	_, err := suite.service.Create(suite.ctx, suite.store, nil, &service.CreateOrderRequest{
		Email: "buyer@example.com",
		Items: []service.OrderItemRequest{{ProductID: product.ID, Quantity: 1}},
	})

	suite.ErrorIs(err, apperrors.ErrProductNotFound)
}

func (suite *OrderServiceTestSuite) TestCreateRejectsEmptyOrder() {
	_, err := suite.service.Create(suite.ctx, suite.store, nil, &service.CreateOrderRequest{
		Email: "buyer@example.com",
		Items: []service.OrderItemRequest{},
	})

	suite.Error(err)
}

func (suite *OrderServiceTestSuite) TestCreateEnforcesMonthlyCeiling() {
	suite.store.MaxOrdersPerMonth = intPtr(100)
	product := testutils.NewProductFactory().Create(suite.store.ID)
	suite.mockOrders.EXPECT().
		CountByStoreSince(suite.store.ID, gomock.Any()).
		Return(int64(100), nil)

	_, err := suite.service.Create(suite.ctx, suite.store, nil, &service.CreateOrderRequest{
		Email: "buyer@example.com",
		Items: []service.OrderItemRequest{{ProductID: product.ID, Quantity: 1}},
	})

	suite.ErrorIs(err, apperrors.ErrOrderLimitReached)
}

func (suite *OrderServiceTestSuite) TestCancelPendingOrder() {
	order := testutils.NewOrderFactory().Create(suite.store.ID)
	suite.mockOrders.EXPECT().GetByID(suite.store.ID, order.ID).Return(order, nil)
	suite.mockOrders.EXPECT().Update(gomock.Any()).DoAndReturn(func(o *models.Order) error {
		suite.Equal(models.OrderStatusCancelled, o.Status)
		return nil
	})

	response, err := suite.service.Cancel(suite.ctx, suite.store.ID, order.ID)

	suite.Require().NoError(err)
	suite.Equal(models.OrderStatusCancelled, response.Status)
}

func (suite *OrderServiceTestSuite) TestCancelPaidOrderRejected() {
	order := testutils.NewOrderFactory().WithStatus(suite.store.ID, models.OrderStatusPaid)
	suite.mockOrders.EXPECT().GetByID(suite.store.ID, order.ID).Return(order, nil)

	_, err := suite.service.Cancel(suite.ctx, suite.store.ID, order.ID)

	suite.Require().Error(err)
	suite.True(apperrors.IsBadRequest(err))
}

func (suite *OrderServiceTestSuite) TestMarkPaidTransitionsOrder() {
	order := testutils.NewOrderFactory().Create(suite.store.ID)
	suite.mockOrders.EXPECT().GetByID(suite.store.ID, order.ID).Return(order, nil)
	suite.mockOrders.EXPECT().Update(gomock.Any()).DoAndReturn(func(o *models.Order) error {
		suite.Equal(models.OrderStatusPaid, o.Status)
		return nil
	})

	suite.NoError(suite.service.MarkPaid(suite.ctx, suite.store.ID, order.ID))
}

func (suite *OrderServiceTestSuite) TestMarkPaidIdempotent() {
	order := testutils.NewOrderFactory().WithStatus(suite.store.ID, models.OrderStatusPaid)
	suite.mockOrders.EXPECT().GetByID(suite.store.ID, order.ID).Return(order, nil)
	// no Update expected

	suite.NoError(suite.service.MarkPaid(suite.ctx, suite.store.ID, order.ID))
}

func (suite *OrderServiceTestSuite) TestGetByIDNotFound() {
	order := testutils.NewOrderFactory().Create(suite.store.ID)
	suite.mockOrders.EXPECT().GetByID(suite.store.ID, order.ID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.GetByID(suite.ctx, suite.store.ID, order.ID)

	suite.ErrorIs(err, apperrors.ErrOrderNotFound)
}

func TestOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}
