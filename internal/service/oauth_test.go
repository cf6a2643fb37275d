package service_test

import (
	"context"
	"testing"

	apperrors "storefront-backend/internal/errors"
	"storefront-backend/internal/logger"
	"storefront-backend/internal/mocks"
	"storefront-backend/internal/service"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OAuthServiceTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockUsers *mocks.MockUserRepositoryInterface
}

func (suite *OAuthServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUsers = mocks.NewMockUserRepositoryInterface(suite.ctrl)
}

func (suite *OAuthServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *OAuthServiceTestSuite) newService(clientID, clientSecret string) *service.OAuthService {
	return service.NewOAuthService(suite.mockUsers, clientID, clientSecret, "http://localhost:8000/auth/google/callback", logger.New())
}

func (suite *OAuthServiceTestSuite) TestAuthURLCarriesStateAndClient() {
	svc := suite.newService("client-id-1", "client-secret-1")

	url, err := svc.AuthURL("csrf-state-1")

	suite.Require().NoError(err)
	suite.Contains(url, "client_id=client-id-1")
	suite.Contains(url, "state=csrf-state-1")
	suite.Contains(url, "accounts.google.com")
}

func (suite *OAuthServiceTestSuite) TestAuthURLUnconfigured() {
	svc := suite.newService("", "")

	_, err := svc.AuthURL("csrf-state-1")

	suite.ErrorIs(err, apperrors.ErrOAuthNotConfigured)
}

func (suite *OAuthServiceTestSuite) TestAuthURLRequiresBothCredentials() {
	svc := suite.newService("client-id-1", "")

	_, err := svc.AuthURL("csrf-state-1")

	suite.ErrorIs(err, apperrors.ErrOAuthNotConfigured)
}

func (suite *OAuthServiceTestSuite) TestHandleCallbackUnconfigured() {
	svc := suite.newService("", "")

	_, err := svc.HandleCallback(context.Background(), "auth-code")

	suite.ErrorIs(err, apperrors.ErrOAuthNotConfigured)
}

func TestOAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OAuthServiceTestSuite))
}
