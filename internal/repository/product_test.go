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

type ProductRepositoryTestSuite struct {
	testutils.BaseTestSuite
	repo    *repository.ProductRepository
	factory *testutils.ProductFactory
	store   *models.Store
	other   *models.Store
}

func (suite *ProductRepositoryTestSuite) SetupSuite() {
	base := testutils.SetupTestSuite(suite.T())
	suite.DB = base.DB
	suite.Config = base.Config
	suite.repo = repository.NewProductRepository(suite.DB)
	suite.factory = testutils.NewProductFactory()
}

func (suite *ProductRepositoryTestSuite) SetupTest() {
	suite.BaseTestSuite.SetupTest()
	stores := repository.NewStoreRepository(suite.DB)
	suite.store = testutils.NewStoreFactory().Create()
	suite.other = testutils.NewStoreFactory().Create()
	suite.Require().NoError(stores.Create(suite.store))
	suite.Require().NoError(stores.Create(suite.other))
}

func (suite *ProductRepositoryTestSuite) TestCreateAndGetByID() {
	product := suite.factory.Create(suite.store.ID)
	suite.Require().NoError(suite.repo.Create(product))

	found, err := suite.repo.GetByID(suite.store.ID, product.ID)

	suite.Require().NoError(err)
	suite.Equal(product.Slug, found.Slug)
	suite.Equal("NGN", found.Currency)
}

func (suite *ProductRepositoryTestSuite) TestGetByIDIsStoreScoped() {
	product := suite.factory.Create(suite.store.ID)
	suite.Require().NoError(suite.repo.Create(product))

	_, err := suite.repo.GetByID(suite.other.ID, product.ID)

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *ProductRepositoryTestSuite) TestGetBySlug() {
	product := suite.factory.Create(suite.store.ID)
	suite.Require().NoError(suite.repo.Create(product))

	found, err := suite.repo.GetBySlug(suite.store.ID, product.Slug)

	suite.Require().NoError(err)
	suite.Equal(product.ID, found.ID)
}

func (suite *ProductRepositoryTestSuite) TestSlugUniquePerStore() {
	product := suite.factory.Create(suite.store.ID)
	suite.Require().NoError(suite.repo.Create(product))

	dup := suite.factory.Create(suite.store.ID)
	dup.Slug = product.Slug
	suite.Error(suite.repo.Create(dup))

	// The same slug is free in another store.
	elsewhere := suite.factory.Create(suite.other.ID)
	elsewhere.Slug = product.Slug
	suite.NoError(suite.repo.Create(elsewhere))
}

func (suite *ProductRepositoryTestSuite) TestGetByIDsFiltersByStore() {
	mine := suite.factory.Create(suite.store.ID)
	theirs := suite.factory.Create(suite.other.ID)
	suite.Require().NoError(suite.repo.Create(mine))
	suite.Require().NoError(suite.repo.Create(theirs))

	products, err := suite.repo.GetByIDs(suite.store.ID, []uuid.UUID{mine.ID, theirs.ID})

	suite.Require().NoError(err)
	suite.Require().Len(products, 1)
	suite.Equal(mine.ID, products[0].ID)
}

func (suite *ProductRepositoryTestSuite) TestListByStorePaginates() {
	for i := 0; i < 3; i++ {
		suite.Require().NoError(suite.repo.Create(suite.factory.Create(suite.store.ID)))
	}
	suite.Require().NoError(suite.repo.Create(suite.factory.Create(suite.other.ID)))

	products, total, err := suite.repo.ListByStore(suite.store.ID, 2, 0)

	suite.Require().NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(products, 2)
}

func (suite *ProductRepositoryTestSuite) TestCountByStore() {
	suite.Require().NoError(suite.repo.Create(suite.factory.Create(suite.store.ID)))
	suite.Require().NoError(suite.repo.Create(suite.factory.Create(suite.store.ID)))
	suite.Require().NoError(suite.repo.Create(suite.factory.Create(suite.other.ID)))

	count, err := suite.repo.CountByStore(suite.store.ID)

	suite.Require().NoError(err)
	suite.Equal(int64(2), count)
}

func (suite *ProductRepositoryTestSuite) TestDeleteIsStoreScoped() {
	product := suite.factory.Create(suite.store.ID)
	suite.Require().NoError(suite.repo.Create(product))

	// Deleting through the wrong store leaves the product alone.
	suite.Require().NoError(suite.repo.Delete(suite.other.ID, product.ID))
	_, err := suite.repo.GetByID(suite.store.ID, product.ID)
	suite.NoError(err)

	suite.Require().NoError(suite.repo.Delete(suite.store.ID, product.ID))
	_, err = suite.repo.GetByID(suite.store.ID, product.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestProductRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepositoryTestSuite))
}
