package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"storefront-backend/internal/database/models"
	apperrors "storefront-backend/internal/errors"
	"storefront-backend/internal/mocks"
	"storefront-backend/internal/payment"
	"storefront-backend/internal/service"
	"storefront-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// stubGateway is a scripted payment.Gateway for service tests.
type stubGateway struct {
	initResult   *payment.InitResult
	initErr      error
	verifyResult *payment.VerifyResult
	verifyErr    error
}

func (g *stubGateway) Name() string { return "paystack" }

func (g *stubGateway) Initialize(_ context.Context, email string, amount float64, currency string) (*payment.InitResult, error) {
	return g.initResult, g.initErr
}

func (g *stubGateway) Verify(_ context.Context, reference string) (*payment.VerifyResult, error) {
	return g.verifyResult, g.verifyErr
}

type PaymentServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockPayments *mocks.MockPaymentRepositoryInterface
	mockOrders   *mocks.MockOrderRepositoryInterface
	mockOrderSvc *mocks.MockOrderServiceInterface
	gateway      *stubGateway
	service      *service.PaymentService
	ctx          context.Context
	store        *models.Store
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPayments = mocks.NewMockPaymentRepositoryInterface(suite.ctrl)
	suite.mockOrders = mocks.NewMockOrderRepositoryInterface(suite.ctrl)
	suite.mockOrderSvc = mocks.NewMockOrderServiceInterface(suite.ctrl)
	suite.gateway = &stubGateway{}
	suite.service = service.NewPaymentService(
		suite.mockPayments, suite.mockOrders, suite.gateway, suite.mockOrderSvc, validator.New(),
	)
	suite.ctx = context.Background()
	suite.store = testutils.NewStoreFactory().Create()
}

func (suite *PaymentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PaymentServiceTestSuite) TestInitRecordsAttempt() {
	order := testutils.NewOrderFactory().Create(suite.store.ID)
	suite.gateway.initResult = &payment.InitResult{
		Reference:        "ref-abc",
		AuthorizationURL: "https://checkout.paystack.com/ref-abc",
		Raw:              json.RawMessage(`{"status":true}`),
	}

	suite.mockOrders.EXPECT().GetByID(suite.store.ID, order.ID).Return(order, nil)
	suite.mockPayments.EXPECT().Create(gomock.Any()).DoAndReturn(func(record *models.Payment) error {
		suite.Equal("ref-abc", record.Reference)
		suite.Equal(models.PaymentStatusInitialized, record.Status)
		suite.Equal(order.Total, record.Amount)
		suite.Equal("paystack", record.Provider)
		return nil
	})

	response, err := suite.service.Init(suite.ctx, suite.store, &service.InitPaymentRequest{OrderID: order.ID})

	suite.Require().NoError(err)
	suite.Equal("https://checkout.paystack.com/ref-abc", response.AuthorizationURL)
	suite.Equal(models.PaymentStatusInitialized, response.Status)
}

func (suite *PaymentServiceTestSuite) TestInitRejectsNonPendingOrder() {
	order := testutils.NewOrderFactory().WithStatus(suite.store.ID, models.OrderStatusPaid)
	suite.mockOrders.EXPECT().GetByID(suite.store.ID, order.ID).Return(order, nil)

	_, err := suite.service.Init(suite.ctx, suite.store, &service.InitPaymentRequest{OrderID: order.ID})

	suite.Require().Error(err)
	suite.True(apperrors.IsBadRequest(err))
}

func (suite *PaymentServiceTestSuite) TestInitRejectsZeroTotal() {
	order := testutils.NewOrderFactory().Create(suite.store.ID)
	order.Total = 0
	suite.mockOrders.EXPECT().GetByID(suite.store.ID, order.ID).Return(order, nil)

	_, err := suite.service.Init(suite.ctx, suite.store, &service.InitPaymentRequest{OrderID: order.ID})

	suite.ErrorIs(err, apperrors.ErrOrderTotalNotSet)
}

func (suite *PaymentServiceTestSuite) TestInitUnknownOrder() {
	order := testutils.NewOrderFactory().Create(suite.store.ID)
	suite.mockOrders.EXPECT().GetByID(suite.store.ID, order.ID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.Init(suite.ctx, suite.store, &service.InitPaymentRequest{OrderID: order.ID})

	suite.ErrorIs(err, apperrors.ErrOrderNotFound)
}

func (suite *PaymentServiceTestSuite) TestVerifySuccessMarksOrderPaid() {
	order := testutils.NewOrderFactory().Create(suite.store.ID)
	record := testutils.NewPaymentFactory().Create(suite.store.ID, order.ID)
	suite.gateway.verifyResult = &payment.VerifyResult{
		Reference: record.Reference,
		Succeeded: true,
		Amount:    record.Amount,
		Raw:       json.RawMessage(`{"data":{"status":"success"}}`),
	}

	suite.mockPayments.EXPECT().GetByReference(suite.store.ID, record.Reference).Return(record, nil)
	suite.mockPayments.EXPECT().Update(gomock.Any()).DoAndReturn(func(p *models.Payment) error {
		suite.Equal(models.PaymentStatusSuccess, p.Status)
		return nil
	})
	suite.mockOrderSvc.EXPECT().MarkPaid(suite.ctx, suite.store.ID, order.ID).Return(nil)

	response, err := suite.service.Verify(suite.ctx, suite.store, record.Reference)

	suite.Require().NoError(err)
	suite.Equal(models.PaymentStatusSuccess, response.Status)
}

func (suite *PaymentServiceTestSuite) TestVerifyFailureLeavesOrderAlone() {
	order := testutils.NewOrderFactory().Create(suite.store.ID)
	record := testutils.NewPaymentFactory().Create(suite.store.ID, order.ID)
	suite.gateway.verifyResult = &payment.VerifyResult{
		Reference: record.Reference,
		Succeeded: false,
	}

	suite.mockPayments.EXPECT().GetByReference(suite.store.ID, record.Reference).Return(record, nil)
	suite.mockPayments.EXPECT().Update(gomock.Any()).DoAndReturn(func(p *models.Payment) error {
		suite.Equal(models.PaymentStatusFailed, p.Status)
		return nil
	})
	// no MarkPaid expected

	response, err := suite.service.Verify(suite.ctx, suite.store, record.Reference)

	suite.Require().NoError(err)
	suite.Equal(models.PaymentStatusFailed, response.Status)
}

func (suite *PaymentServiceTestSuite) TestVerifySettledPaymentIsIdempotent() {
	order := testutils.NewOrderFactory().Create(suite.store.ID)
	record := testutils.NewPaymentFactory().Create(suite.store.ID, order.ID)
	record.Status = models.PaymentStatusSuccess

	suite.mockPayments.EXPECT().GetByReference(suite.store.ID, record.Reference).Return(record, nil)
	// neither the gateway nor the order service is consulted again

	response, err := suite.service.Verify(suite.ctx, suite.store, record.Reference)

	suite.Require().NoError(err)
	suite.Equal(models.PaymentStatusSuccess, response.Status)
}

func (suite *PaymentServiceTestSuite) TestVerifyUnknownReference() {
	suite.mockPayments.EXPECT().GetByReference(suite.store.ID, "ghost-ref").Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.Verify(suite.ctx, suite.store, "ghost-ref")

	suite.ErrorIs(err, apperrors.ErrPaymentNotFound)
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
