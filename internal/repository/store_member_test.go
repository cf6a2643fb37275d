package repository_test

import (
	"testing"

	"storefront-backend/internal/database/models"
	"storefront-backend/internal/repository"
	"storefront-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type StoreMemberRepositoryTestSuite struct {
	testutils.BaseTestSuite
	repo  *repository.StoreMemberRepository
	user  *models.User
	store *models.Store
}

func (suite *StoreMemberRepositoryTestSuite) SetupSuite() {
	base := testutils.SetupTestSuite(suite.T())
	suite.DB = base.DB
	suite.Config = base.Config
	suite.repo = repository.NewStoreMemberRepository(suite.DB)
}

func (suite *StoreMemberRepositoryTestSuite) SetupTest() {
	suite.BaseTestSuite.SetupTest()
	suite.user = testutils.NewUserFactory().Create()
	suite.store = testutils.NewStoreFactory().Create()
	suite.Require().NoError(repository.NewUserRepository(suite.DB).Create(suite.user))
	suite.Require().NoError(repository.NewStoreRepository(suite.DB).Create(suite.store))
}

func (suite *StoreMemberRepositoryTestSuite) TestCreateAndGet() {
	member := testutils.NewStoreMemberFactory().Create(suite.user.ID, suite.store.ID, models.StoreRoleOwner)
	suite.Require().NoError(suite.repo.Create(member))

	found, err := suite.repo.Get(suite.user.ID, suite.store.ID)

	suite.Require().NoError(err)
	suite.Equal(models.StoreRoleOwner, found.Role)
}

func (suite *StoreMemberRepositoryTestSuite) TestGetUnknownPair() {
	_, err := suite.repo.Get(suite.user.ID, suite.store.ID)

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *StoreMemberRepositoryTestSuite) TestDuplicatePairRejected() {
	factory := testutils.NewStoreMemberFactory()
	suite.Require().NoError(suite.repo.Create(factory.Create(suite.user.ID, suite.store.ID, models.StoreRoleOwner)))

	suite.Error(suite.repo.Create(factory.Create(suite.user.ID, suite.store.ID, models.StoreRoleStaff)))
}

func (suite *StoreMemberRepositoryTestSuite) TestListByUser() {
	second := testutils.NewStoreFactory().Create()
	suite.Require().NoError(repository.NewStoreRepository(suite.DB).Create(second))
	factory := testutils.NewStoreMemberFactory()
	suite.Require().NoError(suite.repo.Create(factory.Create(suite.user.ID, suite.store.ID, models.StoreRoleOwner)))
	suite.Require().NoError(suite.repo.Create(factory.Create(suite.user.ID, second.ID, models.StoreRoleStaff)))

	memberships, err := suite.repo.ListByUser(suite.user.ID)

	suite.Require().NoError(err)
	suite.Len(memberships, 2)
}

func (suite *StoreMemberRepositoryTestSuite) TestListByStorePaginates() {
	factory := testutils.NewStoreMemberFactory()
	users := repository.NewUserRepository(suite.DB)
	for i := 0; i < 3; i++ {
		u := testutils.NewUserFactory().Create()
		suite.Require().NoError(users.Create(u))
		suite.Require().NoError(suite.repo.Create(factory.Create(u.ID, suite.store.ID, models.StoreRoleMember)))
	}

	members, total, err := suite.repo.ListByStore(suite.store.ID, 2, 0)

	suite.Require().NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(members, 2)
}

func (suite *StoreMemberRepositoryTestSuite) TestDelete() {
	member := testutils.NewStoreMemberFactory().Create(suite.user.ID, suite.store.ID, models.StoreRoleMember)
	suite.Require().NoError(suite.repo.Create(member))

	suite.Require().NoError(suite.repo.Delete(suite.user.ID, suite.store.ID))

	_, err := suite.repo.Get(suite.user.ID, suite.store.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestStoreMemberRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(StoreMemberRepositoryTestSuite))
}
