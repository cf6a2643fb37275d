package tenancy_test

import (
	"net/http/httptest"
	"testing"
	"time"

	apperrors "storefront-backend/internal/errors"
	"storefront-backend/internal/mocks"
	"storefront-backend/internal/tenancy"
	"storefront-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type ResolverTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *mocks.MockStoreRepositoryInterface
	resolver *tenancy.Resolver
	factory  *testutils.StoreFactory
}

func (suite *ResolverTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockStoreRepositoryInterface(suite.ctrl)
	suite.resolver = tenancy.NewResolver(suite.mockRepo)
	suite.factory = testutils.NewStoreFactory()
}

func (suite *ResolverTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func ginContextWithHost(host, storeDomainHeader string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)
	c.Request.Host = host
	if storeDomainHeader != "" {
		c.Request.Header.Set("X-Store-Domain", storeDomainHeader)
	}
	return c
}

func (suite *ResolverTestSuite) TestResolveDomainPrefersHeader() {
	c := ginContextWithHost("other.example.com", "Acme.Example.COM")

	domain, err := tenancy.ResolveDomain(c)

	suite.NoError(err)
	suite.Equal("acme.example.com", domain)
}

func (suite *ResolverTestSuite) TestResolveDomainFallsBackToHost() {
	c := ginContextWithHost("Acme.Example.com:8443", "")

	domain, err := tenancy.ResolveDomain(c)

	suite.NoError(err)
	suite.Equal("acme.example.com", domain)
}

func (suite *ResolverTestSuite) TestResolveDomainMissingEverything() {
	c := ginContextWithHost("", "")

	_, err := tenancy.ResolveDomain(c)

	suite.ErrorIs(err, apperrors.ErrMissingStoreDomain)
}

func (suite *ResolverTestSuite) TestResolveExactDomainMatch() {
	store := suite.factory.WithDomain("acme.example.com")
	suite.mockRepo.EXPECT().GetByDomain("acme.example.com").Return(store, nil)

	got, err := suite.resolver.Resolve("acme.example.com")

	suite.NoError(err)
	suite.Equal(store.ID, got.ID)
}

func (suite *ResolverTestSuite) TestResolveFallsBackToSubdomain() {
	store := suite.factory.Create()
	suite.mockRepo.EXPECT().GetByDomain("acme.platform.test").Return(nil, gorm.ErrRecordNotFound)
	suite.mockRepo.EXPECT().GetBySubdomain("acme").Return(store, nil)

	got, err := suite.resolver.Resolve("acme.platform.test")

	suite.NoError(err)
	suite.Equal(store.ID, got.ID)
}

func (suite *ResolverTestSuite) TestResolveUnknownDomain() {
	suite.mockRepo.EXPECT().GetByDomain("ghost.platform.test").Return(nil, gorm.ErrRecordNotFound)
	suite.mockRepo.EXPECT().GetBySubdomain("ghost").Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.resolver.Resolve("ghost.platform.test")

	suite.ErrorIs(err, apperrors.ErrStoreNotFound)
}

func (suite *ResolverTestSuite) TestResolveBareHostSkipsSubdomainLookup() {
	// no dot in the domain, so there is no subdomain label to try
	suite.mockRepo.EXPECT().GetByDomain("localhost").Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.resolver.Resolve("localhost")

	suite.ErrorIs(err, apperrors.ErrStoreNotFound)
}

func (suite *ResolverTestSuite) TestGateActiveStorePasses() {
	store := suite.factory.Create()

	suite.NoError(tenancy.Gate(store, time.Now()))
}

func (suite *ResolverTestSuite) TestGateInactiveStore() {
	store := suite.factory.Inactive()

	err := tenancy.Gate(store, time.Now())

	suite.ErrorIs(err, apperrors.ErrStoreInactive)
}

func (suite *ResolverTestSuite) TestGateSuspendedStoreCarriesReason() {
	store := suite.factory.Suspended("chargeback abuse")

	err := tenancy.Gate(store, time.Now())

	suite.Require().Error(err)
	suite.True(apperrors.IsForbidden(err))
	suite.Contains(err.Error(), "chargeback abuse")
}

func (suite *ResolverTestSuite) TestGateSuspendedStoreDefaultReason() {
	store := suite.factory.Suspended("")

	err := tenancy.Gate(store, time.Now())

	suite.Require().Error(err)
	suite.Contains(err.Error(), "Contact support")
}

func (suite *ResolverTestSuite) TestGateExpiredSubscription() {
	store := suite.factory.Expired()

	err := tenancy.Gate(store, time.Now())

	suite.ErrorIs(err, apperrors.ErrSubscriptionLapsed)
	suite.True(apperrors.IsPaymentRequired(err))
}

func (suite *ResolverTestSuite) TestGateInactiveWinsOverSuspendedAndExpired() {
	store := suite.factory.Suspended("late fees")
	store.IsActive = false
	past := time.Now().Add(-time.Hour)
	store.SubscriptionEndsAt = &past

	err := tenancy.Gate(store, time.Now())

	suite.ErrorIs(err, apperrors.ErrStoreInactive)
}

func (suite *ResolverTestSuite) TestGateNoSubscriptionWindowNeverLapses() {
	store := suite.factory.Create()
	store.SubscriptionEndsAt = nil

	suite.NoError(tenancy.Gate(store, time.Now()))
}

func TestResolverTestSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}
