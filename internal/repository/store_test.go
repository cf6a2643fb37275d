package repository_test

import (
	"testing"

	"storefront-backend/internal/database/models"
	"storefront-backend/internal/repository"
	"storefront-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type StoreRepositoryTestSuite struct {
	testutils.BaseTestSuite
	repo    *repository.StoreRepository
	factory *testutils.StoreFactory
}

func (suite *StoreRepositoryTestSuite) SetupSuite() {
	base := testutils.SetupTestSuite(suite.T())
	suite.DB = base.DB
	suite.Config = base.Config
	suite.repo = repository.NewStoreRepository(suite.DB)
	suite.factory = testutils.NewStoreFactory()
}

func (suite *StoreRepositoryTestSuite) TestCreateAndGetByID() {
	store := suite.factory.Create()
	suite.Require().NoError(suite.repo.Create(store))

	found, err := suite.repo.GetByID(store.ID)

	suite.Require().NoError(err)
	suite.Equal(store.Domain, found.Domain)
	suite.Equal(models.PlanTierFree, found.PlanTier)
	suite.True(found.IsActive)
}

func (suite *StoreRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(uuid.New())

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *StoreRepositoryTestSuite) TestGetByDomain() {
	store := suite.factory.WithDomain("acme.example.com")
	suite.Require().NoError(suite.repo.Create(store))

	found, err := suite.repo.GetByDomain("acme.example.com")

	suite.Require().NoError(err)
	suite.Equal(store.ID, found.ID)
}

func (suite *StoreRepositoryTestSuite) TestGetByDomainUnknown() {
	_, err := suite.repo.GetByDomain("ghost.example.com")

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *StoreRepositoryTestSuite) TestGetBySubdomain() {
	store := suite.factory.Create()
	suite.Require().NoError(suite.repo.Create(store))

	found, err := suite.repo.GetBySubdomain(*store.Subdomain)

	suite.Require().NoError(err)
	suite.Equal(store.ID, found.ID)
}

func (suite *StoreRepositoryTestSuite) TestDuplicateDomainRejected() {
	first := suite.factory.WithDomain("acme.example.com")
	suite.Require().NoError(suite.repo.Create(first))

	dup := suite.factory.WithDomain("acme.example.com")

	suite.Error(suite.repo.Create(dup))
}

func (suite *StoreRepositoryTestSuite) TestGetAllPaginates() {
	for i := 0; i < 3; i++ {
		suite.Require().NoError(suite.repo.Create(suite.factory.Create()))
	}

	stores, total, err := suite.repo.GetAll(2, 0)

	suite.Require().NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(stores, 2)
}

func (suite *StoreRepositoryTestSuite) TestUpdatePersistsSuspension() {
	store := suite.factory.Create()
	suite.Require().NoError(suite.repo.Create(store))

	store.IsSuspended = true
	store.SuspensionReason = "chargeback abuse"
	suite.Require().NoError(suite.repo.Update(store))

	found, err := suite.repo.GetByID(store.ID)
	suite.Require().NoError(err)
	suite.True(found.IsSuspended)
	suite.Equal("chargeback abuse", found.SuspensionReason)
}

func TestStoreRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(StoreRepositoryTestSuite))
}
