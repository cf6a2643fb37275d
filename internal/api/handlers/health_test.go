package handlers_test

import (
	"net/http"
	"testing"

	"storefront-backend/internal/api/handlers"
	"storefront-backend/internal/kvstore"
	"storefront-backend/internal/testutils"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type HealthHandlerTestSuite struct {
	testutils.HTTPTestSuite
	suite.Suite
	base *testutils.BaseTestSuite
}

func (suite *HealthHandlerTestSuite) SetupSuite() {
	suite.base = testutils.SetupTestSuite(suite.T())
}

func (suite *HealthHandlerTestSuite) mountHealth(kv kvstore.Store) {
	suite.HTTPTestSuite = *testutils.SetupHTTPTest()
	handler := handlers.NewHealthHandler(suite.base.DB, kv)
	suite.Router.GET("/health", handler.Health)
	suite.Router.GET("/health/ready", handler.Ready)
	suite.Router.GET("/health/live", handler.Live)
}

func (suite *HealthHandlerTestSuite) TestHealthAllServicesUp() {
	suite.mountHealth(kvstore.NewMemoryStore())

	w := suite.MakeRequest("GET", "/health", nil)

	var resp handlers.HealthResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &resp)
	suite.Equal("healthy", resp.Status)
	suite.Equal("healthy", resp.Services["database"])
	suite.Equal("healthy", resp.Services["kvstore"])
}

func (suite *HealthHandlerTestSuite) TestHealthKVStoreDown() {
	mr := miniredis.RunT(suite.T())
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	mr.Close()
	suite.mountHealth(kvstore.NewRedisStore(client))

	w := suite.MakeRequest("GET", "/health", nil)

	var resp handlers.HealthResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusServiceUnavailable, &resp)
	suite.Equal("unhealthy", resp.Status)
	suite.Contains(resp.Services["kvstore"], "error")
}

func (suite *HealthHandlerTestSuite) TestReady() {
	suite.mountHealth(kvstore.NewMemoryStore())

	w := suite.MakeRequest("GET", "/health/ready", nil)

	var resp map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &resp)
	suite.Equal(true, resp["ready"])
}

func (suite *HealthHandlerTestSuite) TestLive() {
	suite.mountHealth(kvstore.NewMemoryStore())

	w := suite.MakeRequest("GET", "/health/live", nil)

	var resp map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &resp)
	suite.Equal(true, resp["alive"])
}

func TestHealthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HealthHandlerTestSuite))
}
