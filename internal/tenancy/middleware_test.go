package tenancy_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront-backend/internal/auth"
	"storefront-backend/internal/database/models"
	"storefront-backend/internal/mocks"
	"storefront-backend/internal/tenancy"
	"storefront-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type MiddlewareTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockStores  *mocks.MockStoreRepositoryInterface
	mockMembers *mocks.MockStoreMemberRepositoryInterface
	mockUsers   *mocks.MockUserRepositoryInterface
	tokens      *auth.TokenManager
	user        *models.User
	store       *models.Store
}

func (suite *MiddlewareTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockStores = mocks.NewMockStoreRepositoryInterface(suite.ctrl)
	suite.mockMembers = mocks.NewMockStoreMemberRepositoryInterface(suite.ctrl)
	suite.mockUsers = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.tokens = auth.NewTokenManager("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
	suite.user = testutils.NewUserFactory().Create()
	suite.store = testutils.NewStoreFactory().WithDomain("acme.example.com")
}

func (suite *MiddlewareTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MiddlewareTestSuite) resolveRouter() *testutils.HTTPTestSuite {
	hts := testutils.SetupHTTPTest()
	resolver := tenancy.NewResolver(suite.mockStores)
	hts.Router.GET("/storefront", tenancy.ResolveStore(resolver), func(c *gin.Context) {
		store, ok := tenancy.CurrentStore(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no store in context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"store_id": store.ID.String(), "name": store.Name})
	})
	return hts
}

func (suite *MiddlewareTestSuite) roleRouter(required models.StoreRole) *testutils.HTTPTestSuite {
	hts := testutils.SetupHTTPTest()
	resolver := tenancy.NewResolver(suite.mockStores)
	access := tenancy.NewAccess(suite.mockMembers)
	hts.Router.GET("/admin",
		auth.RequireAuth(suite.tokens, suite.mockUsers),
		tenancy.ResolveStore(resolver),
		tenancy.RequireRole(access, required),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "ok"})
		},
	)
	return hts
}

func (suite *MiddlewareTestSuite) storeRequest(hts *testutils.HTTPTestSuite, headers map[string]string) *httptest.ResponseRecorder {
	if headers == nil {
		headers = map[string]string{}
	}
	if _, ok := headers["X-Store-Domain"]; !ok {
		headers["X-Store-Domain"] = suite.store.Domain
	}
	return hts.MakeRequestWithHeaders("GET", "/admin", nil, headers)
}

func (suite *MiddlewareTestSuite) bearerFor(user *models.User) string {
	token, err := suite.tokens.CreateAccessToken(user.ID)
	suite.Require().NoError(err)
	return "Bearer " + token
}

func (suite *MiddlewareTestSuite) TestResolveStoreSetsCurrentStore() {
	suite.mockStores.EXPECT().GetByDomain("acme.example.com").Return(suite.store, nil)

	hts := suite.resolveRouter()
	w := hts.MakeRequestWithHeaders("GET", "/storefront", nil, map[string]string{"X-Store-Domain": "acme.example.com"})

	suite.Equal(http.StatusOK, w.Code)
	var body map[string]interface{}
	testutils.ParseJSONResponse(suite.T(), w, &body)
	suite.Equal(suite.store.ID.String(), body["store_id"])
}

func (suite *MiddlewareTestSuite) TestResolveStoreMissingDomain() {
	hts := suite.resolveRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/storefront", nil)
	req.Host = ""
	hts.Router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *MiddlewareTestSuite) TestResolveStoreUnknownDomain() {
	suite.mockStores.EXPECT().GetByDomain("ghost.example.com").Return(nil, gorm.ErrRecordNotFound)
	suite.mockStores.EXPECT().GetBySubdomain("ghost").Return(nil, gorm.ErrRecordNotFound)

	hts := suite.resolveRouter()
	w := hts.MakeRequestWithHeaders("GET", "/storefront", nil, map[string]string{"X-Store-Domain": "ghost.example.com"})

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *MiddlewareTestSuite) TestResolveStoreInactive() {
	inactive := testutils.NewStoreFactory().Inactive()
	suite.mockStores.EXPECT().GetByDomain(inactive.Domain).Return(inactive, nil)

	hts := suite.resolveRouter()
	w := hts.MakeRequestWithHeaders("GET", "/storefront", nil, map[string]string{"X-Store-Domain": inactive.Domain})

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *MiddlewareTestSuite) TestResolveStoreSuspendedIncludesReason() {
	suspended := testutils.NewStoreFactory().Suspended("chargeback abuse")
	suite.mockStores.EXPECT().GetByDomain(suspended.Domain).Return(suspended, nil)

	hts := suite.resolveRouter()
	w := hts.MakeRequestWithHeaders("GET", "/storefront", nil, map[string]string{"X-Store-Domain": suspended.Domain})

	suite.Equal(http.StatusForbidden, w.Code)
	suite.Contains(w.Body.String(), "chargeback abuse")
}

func (suite *MiddlewareTestSuite) TestResolveStoreLapsedSubscription() {
	expired := testutils.NewStoreFactory().Expired()
	suite.mockStores.EXPECT().GetByDomain(expired.Domain).Return(expired, nil)

	hts := suite.resolveRouter()
	w := hts.MakeRequestWithHeaders("GET", "/storefront", nil, map[string]string{"X-Store-Domain": expired.Domain})

	suite.Equal(http.StatusPaymentRequired, w.Code)
}

func (suite *MiddlewareTestSuite) TestRequireRoleAllowsSufficientRole() {
	suite.mockUsers.EXPECT().GetByID(suite.user.ID).Return(suite.user, nil)
	suite.mockStores.EXPECT().GetByDomain(suite.store.Domain).Return(suite.store, nil)
	membership := testutils.NewStoreMemberFactory().Create(suite.user.ID, suite.store.ID, models.StoreRoleAdmin)
	suite.mockMembers.EXPECT().Get(suite.user.ID, suite.store.ID).Return(membership, nil)

	hts := suite.roleRouter(models.StoreRoleStaff)
	w := suite.storeRequest(hts, map[string]string{"Authorization": suite.bearerFor(suite.user)})

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *MiddlewareTestSuite) TestRequireRoleRejectsInsufficientRole() {
	suite.mockUsers.EXPECT().GetByID(suite.user.ID).Return(suite.user, nil)
	suite.mockStores.EXPECT().GetByDomain(suite.store.Domain).Return(suite.store, nil)
	membership := testutils.NewStoreMemberFactory().Create(suite.user.ID, suite.store.ID, models.StoreRoleMember)
	suite.mockMembers.EXPECT().Get(suite.user.ID, suite.store.ID).Return(membership, nil)

	hts := suite.roleRouter(models.StoreRoleAdmin)
	w := suite.storeRequest(hts, map[string]string{"Authorization": suite.bearerFor(suite.user)})

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *MiddlewareTestSuite) TestRequireRoleRejectsNonMember() {
	suite.mockUsers.EXPECT().GetByID(suite.user.ID).Return(suite.user, nil)
	suite.mockStores.EXPECT().GetByDomain(suite.store.Domain).Return(suite.store, nil)
	suite.mockMembers.EXPECT().Get(suite.user.ID, suite.store.ID).Return(nil, gorm.ErrRecordNotFound)

	hts := suite.roleRouter(models.StoreRoleMember)
	w := suite.storeRequest(hts, map[string]string{"Authorization": suite.bearerFor(suite.user)})

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *MiddlewareTestSuite) TestRequireRoleSuperadminBypass() {
	admin := testutils.NewUserFactory().Superadmin()
	suite.mockUsers.EXPECT().GetByID(admin.ID).Return(admin, nil)
	suite.mockStores.EXPECT().GetByDomain(suite.store.Domain).Return(suite.store, nil)

	hts := suite.roleRouter(models.StoreRoleOwner)
	w := suite.storeRequest(hts, map[string]string{"Authorization": suite.bearerFor(admin)})

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *MiddlewareTestSuite) TestRequireRoleWithoutAuth() {
	hts := suite.roleRouter(models.StoreRoleMember)
	w := suite.storeRequest(hts, nil)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func TestMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(MiddlewareTestSuite))
}
