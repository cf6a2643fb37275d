package service_test

import (
	"context"
	"testing"

	"storefront-backend/internal/database/models"
	apperrors "storefront-backend/internal/errors"
	"storefront-backend/internal/mocks"
	"storefront-backend/internal/service"
	"storefront-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type BrandServiceTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockBrands *mocks.MockBrandRepositoryInterface
	service    *service.BrandService
	ctx        context.Context
	storeID    uuid.UUID
}

func (suite *BrandServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockBrands = mocks.NewMockBrandRepositoryInterface(suite.ctrl)
	suite.service = service.NewBrandService(suite.mockBrands, validator.New())
	suite.ctx = context.Background()
	suite.storeID = uuid.New()
}

func (suite *BrandServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *BrandServiceTestSuite) TestCreate() {
	suite.mockBrands.EXPECT().Create(gomock.Any()).DoAndReturn(func(brand *models.Brand) error {
		suite.Equal(suite.storeID, brand.StoreID)
		suite.Equal("Nike", brand.Name)
		return nil
	})

	response, err := suite.service.Create(suite.ctx, suite.storeID, &service.BrandRequest{Name: "Nike"})

	suite.Require().NoError(err)
	suite.Equal("Nike", response.Name)
}

func (suite *BrandServiceTestSuite) TestCreateRejectsEmptyName() {
	_, err := suite.service.Create(suite.ctx, suite.storeID, &service.BrandRequest{})

	suite.Error(err)
}

func (suite *BrandServiceTestSuite) TestUpdateRenames() {
	brand := testutils.NewBrandFactory().Create(suite.storeID)
	suite.mockBrands.EXPECT().GetByID(suite.storeID, brand.ID).Return(brand, nil)
	suite.mockBrands.EXPECT().Update(gomock.Any()).Return(nil)

	response, err := suite.service.Update(suite.ctx, suite.storeID, brand.ID, &service.BrandRequest{Name: "Adidas"})

	suite.Require().NoError(err)
	suite.Equal("Adidas", response.Name)
}

func (suite *BrandServiceTestSuite) TestUpdateNotFound() {
	id := uuid.New()
	suite.mockBrands.EXPECT().GetByID(suite.storeID, id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.Update(suite.ctx, suite.storeID, id, &service.BrandRequest{Name: "Adidas"})

	suite.ErrorIs(err, apperrors.ErrBrandNotFound)
}

func (suite *BrandServiceTestSuite) TestDeleteNotFound() {
	id := uuid.New()
	suite.mockBrands.EXPECT().GetByID(suite.storeID, id).Return(nil, gorm.ErrRecordNotFound)

	err := suite.service.Delete(suite.ctx, suite.storeID, id)

	suite.ErrorIs(err, apperrors.ErrBrandNotFound)
}

func (suite *BrandServiceTestSuite) TestList() {
	brands := []models.Brand{
		*testutils.NewBrandFactory().Create(suite.storeID),
		*testutils.NewBrandFactory().Create(suite.storeID),
	}
	suite.mockBrands.EXPECT().ListByStore(suite.storeID).Return(brands, nil)

	responses, err := suite.service.List(suite.ctx, suite.storeID)

	suite.Require().NoError(err)
	suite.Len(responses, 2)
}

func TestBrandServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BrandServiceTestSuite))
}
