package tenancy_test

import (
	"testing"

	"storefront-backend/internal/database/models"
	apperrors "storefront-backend/internal/errors"
	"storefront-backend/internal/mocks"
	"storefront-backend/internal/tenancy"
	"storefront-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type AccessTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockMembers *mocks.MockStoreMemberRepositoryInterface
	access      *tenancy.Access
	user        *models.User
	storeID     uuid.UUID
}

func (suite *AccessTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockMembers = mocks.NewMockStoreMemberRepositoryInterface(suite.ctrl)
	suite.access = tenancy.NewAccess(suite.mockMembers)
	suite.user = testutils.NewUserFactory().Create()
	suite.storeID = uuid.New()
}

func (suite *AccessTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AccessTestSuite) membership(role models.StoreRole) *models.StoreMember {
	return testutils.NewStoreMemberFactory().Create(suite.user.ID, suite.storeID, role)
}

func (suite *AccessTestSuite) TestCheckAccessExactRole() {
	suite.mockMembers.EXPECT().Get(suite.user.ID, suite.storeID).Return(suite.membership(models.StoreRoleStaff), nil)

	suite.NoError(suite.access.CheckAccess(suite.user, suite.storeID, models.StoreRoleStaff))
}

func (suite *AccessTestSuite) TestCheckAccessHigherRoleSatisfiesLower() {
	suite.mockMembers.EXPECT().Get(suite.user.ID, suite.storeID).Return(suite.membership(models.StoreRoleOwner), nil)

	suite.NoError(suite.access.CheckAccess(suite.user, suite.storeID, models.StoreRoleAdmin))
}

func (suite *AccessTestSuite) TestCheckAccessLowerRoleRejected() {
	suite.mockMembers.EXPECT().Get(suite.user.ID, suite.storeID).Return(suite.membership(models.StoreRoleMember), nil)

	err := suite.access.CheckAccess(suite.user, suite.storeID, models.StoreRoleStaff)

	suite.ErrorIs(err, apperrors.ErrInsufficientRole)
}

func (suite *AccessTestSuite) TestCheckAccessNonMemberRejected() {
	suite.mockMembers.EXPECT().Get(suite.user.ID, suite.storeID).Return(nil, gorm.ErrRecordNotFound)

	err := suite.access.CheckAccess(suite.user, suite.storeID, models.StoreRoleMember)

	suite.ErrorIs(err, apperrors.ErrInsufficientRole)
}

func (suite *AccessTestSuite) TestCheckAccessSuperadminBypassesMembership() {
	admin := testutils.NewUserFactory().Superadmin()
	// no membership lookup expected

	suite.NoError(suite.access.CheckAccess(admin, suite.storeID, models.StoreRoleOwner))
}

func (suite *AccessTestSuite) TestRoleReportsMembership() {
	suite.mockMembers.EXPECT().Get(suite.user.ID, suite.storeID).Return(suite.membership(models.StoreRoleAdmin), nil)

	role, err := suite.access.Role(suite.user, suite.storeID)

	suite.NoError(err)
	suite.Equal(models.StoreRoleAdmin, role)
}

func (suite *AccessTestSuite) TestRoleEmptyForNonMember() {
	suite.mockMembers.EXPECT().Get(suite.user.ID, suite.storeID).Return(nil, gorm.ErrRecordNotFound)

	role, err := suite.access.Role(suite.user, suite.storeID)

	suite.NoError(err)
	suite.Empty(role)
}

func (suite *AccessTestSuite) TestRoleSuperadminReportsOwner() {
	admin := testutils.NewUserFactory().Superadmin()

	role, err := suite.access.Role(admin, suite.storeID)

	suite.NoError(err)
	suite.Equal(models.StoreRoleOwner, role)
}

func TestAccessTestSuite(t *testing.T) {
	suite.Run(t, new(AccessTestSuite))
}

func TestStoreRoleHierarchy(t *testing.T) {
	ordered := []models.StoreRole{
		models.StoreRoleMember,
		models.StoreRoleStaff,
		models.StoreRoleAdmin,
		models.StoreRoleOwner,
	}
	for i, lower := range ordered {
		for j, higher := range ordered {
			got := higher.AtLeast(lower)
			want := j >= i
			if got != want {
				t.Errorf("%s.AtLeast(%s) = %v, want %v", higher, lower, got, want)
			}
		}
	}

	if models.StoreRole("intruder").AtLeast(models.StoreRoleMember) {
		t.Error("unknown role must not satisfy any requirement")
	}
}
