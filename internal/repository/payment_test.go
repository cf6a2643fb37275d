package repository_test

import (
	"testing"

	"storefront-backend/internal/database/models"
	"storefront-backend/internal/repository"
	"storefront-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type PaymentRepositoryTestSuite struct {
	testutils.BaseTestSuite
	repo    *repository.PaymentRepository
	factory *testutils.PaymentFactory
	store   *models.Store
	order   *models.Order
}

func (suite *PaymentRepositoryTestSuite) SetupSuite() {
	base := testutils.SetupTestSuite(suite.T())
	suite.DB = base.DB
	suite.Config = base.Config
	suite.repo = repository.NewPaymentRepository(suite.DB)
	suite.factory = testutils.NewPaymentFactory()
}

func (suite *PaymentRepositoryTestSuite) SetupTest() {
	suite.BaseTestSuite.SetupTest()
	stores := repository.NewStoreRepository(suite.DB)
	orders := repository.NewOrderRepository(suite.DB)
	suite.store = testutils.NewStoreFactory().Create()
	suite.Require().NoError(stores.Create(suite.store))
	suite.order = testutils.NewOrderFactory().Create(suite.store.ID)
	suite.Require().NoError(orders.CreateWithItems(suite.order, nil))
}

func (suite *PaymentRepositoryTestSuite) TestCreateAndGetByReference() {
	payment := suite.factory.Create(suite.store.ID, suite.order.ID)
	suite.Require().NoError(suite.repo.Create(payment))

	found, err := suite.repo.GetByReference(suite.store.ID, payment.Reference)

	suite.Require().NoError(err)
	suite.Equal(payment.ID, found.ID)
	suite.Equal(models.PaymentStatusInitialized, found.Status)
	suite.Equal("paystack", found.Provider)
}

func (suite *PaymentRepositoryTestSuite) TestGetByReferenceIsStoreScoped() {
	payment := suite.factory.Create(suite.store.ID, suite.order.ID)
	suite.Require().NoError(suite.repo.Create(payment))

	other := testutils.NewStoreFactory().Create()
	suite.Require().NoError(repository.NewStoreRepository(suite.DB).Create(other))

	_, err := suite.repo.GetByReference(other.ID, payment.Reference)

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *PaymentRepositoryTestSuite) TestReferenceIsGloballyUnique() {
	payment := suite.factory.Create(suite.store.ID, suite.order.ID)
	suite.Require().NoError(suite.repo.Create(payment))

	dup := suite.factory.Create(suite.store.ID, suite.order.ID)
	dup.Reference = payment.Reference

	suite.Error(suite.repo.Create(dup))
}

func (suite *PaymentRepositoryTestSuite) TestUpdatePersistsSettlement() {
	payment := suite.factory.Create(suite.store.ID, suite.order.ID)
	suite.Require().NoError(suite.repo.Create(payment))

	payment.Status = models.PaymentStatusSuccess
	suite.Require().NoError(suite.repo.Update(payment))

	found, err := suite.repo.GetByReference(suite.store.ID, payment.Reference)
	suite.Require().NoError(err)
	suite.Equal(models.PaymentStatusSuccess, found.Status)
}

func TestPaymentRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentRepositoryTestSuite))
}
