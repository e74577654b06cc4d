package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/beers_api/internal/apperrors"
	"github.com/SscSPs/beers_api/internal/core/domain"
	portssvc "github.com/SscSPs/beers_api/internal/core/ports/services"
	"github.com/SscSPs/beers_api/internal/core/services"
	"github.com/SscSPs/beers_api/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BeerServiceTestSuite struct {
	suite.Suite
	mockRepo *MockBeerRepository
	service  portssvc.BeerSvcFacade
}

func (suite *BeerServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockBeerRepository)
	suite.service = services.NewBeerService(suite.mockRepo, testCurrencies)
}

func pricePtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func (suite *BeerServiceTestSuite) TestCreateBeer_Success() {
	ctx := context.Background()
	req := dto.CreateBeerRequest{
		Name:     "  Golden Ale ",
		Brewery:  "Kross",
		Country:  "Chile",
		Price:    pricePtr("2.50"),
		Currency: "eur",
	}

	suite.mockRepo.On("SaveBeer", ctx, mock.MatchedBy(func(b domain.BeerItem) bool {
		return b.ID == 0 && b.Name == "Golden Ale" && b.Currency == "EUR" &&
			b.Price.Equal(dec("2.50")) && !b.CreatedAt.IsZero() && b.CreatedAt.Equal(b.LastUpdatedAt)
	})).Return(&domain.BeerItem{ID: 7, Name: "Golden Ale", Brewery: "Kross", Country: "Chile", Price: dec("2.50"), Currency: "EUR"}, nil).Once()

	beer, err := suite.service.CreateBeer(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(beer)
	suite.Equal(7, beer.ID)
	suite.Equal("Golden Ale", beer.Name)
	suite.Equal("EUR", beer.Currency)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BeerServiceTestSuite) TestCreateBeer_ValidationErrors() {
	valid := func() dto.CreateBeerRequest {
		return dto.CreateBeerRequest{Name: "Golden Ale", Brewery: "Kross", Country: "Chile", Price: pricePtr("2.50"), Currency: "EUR"}
	}
	tests := []struct {
		name    string
		mutate  func(r *dto.CreateBeerRequest)
		wantErr error
	}{
		{"blank name", func(r *dto.CreateBeerRequest) { r.Name = "   " }, apperrors.ErrValidation},
		{"blank brewery", func(r *dto.CreateBeerRequest) { r.Brewery = "" }, apperrors.ErrValidation},
		{"blank country", func(r *dto.CreateBeerRequest) { r.Country = " " }, apperrors.ErrValidation},
		{"blank currency", func(r *dto.CreateBeerRequest) { r.Currency = "" }, apperrors.ErrValidation},
		{"missing price", func(r *dto.CreateBeerRequest) { r.Price = nil }, apperrors.ErrValidation},
		{"zero price", func(r *dto.CreateBeerRequest) { r.Price = pricePtr("0") }, apperrors.ErrValidation},
		{"negative price", func(r *dto.CreateBeerRequest) { r.Price = pricePtr("-1.5") }, apperrors.ErrValidation},
		{"unsupported currency", func(r *dto.CreateBeerRequest) { r.Currency = "XYZ" }, apperrors.ErrInvalidCurrency},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			req := valid()
			tt.mutate(&req)

			beer, err := suite.service.CreateBeer(context.Background(), req)

			suite.Require().Error(err)
			suite.Nil(beer)
			suite.ErrorIs(err, tt.wantErr)
		})
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveBeer", mock.Anything, mock.Anything)
}

func (suite *BeerServiceTestSuite) TestCreateBeer_SaveError() {
	ctx := context.Background()
	req := dto.CreateBeerRequest{Name: "IPA", Brewery: "Kunstmann", Country: "Chile", Price: pricePtr("1990"), Currency: "CLP"}
	suite.mockRepo.On("SaveBeer", ctx, mock.AnythingOfType("domain.BeerItem")).Return(nil, assert.AnError).Once()

	beer, err := suite.service.CreateBeer(ctx, req)

	suite.Require().Error(err)
	suite.Nil(beer)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *BeerServiceTestSuite) TestGetBeerByID() {
	ctx := context.Background()
	expected := &domain.BeerItem{ID: 1, Name: "Golden Ale"}
	suite.mockRepo.On("FindBeerByID", ctx, 1).Return(expected, nil).Once()
	suite.mockRepo.On("FindBeerByID", ctx, 99).Return(nil, apperrors.ErrNotFound).Once()

	beer, err := suite.service.GetBeerByID(ctx, 1)
	suite.Require().NoError(err)
	suite.Equal(expected, beer)

	beer, err = suite.service.GetBeerByID(ctx, 99)
	suite.Nil(beer)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *BeerServiceTestSuite) TestListBeers_NilItemsBecomeEmpty() {
	ctx := context.Background()
	page := domain.PageRequest{Page: 0, Size: 20}
	suite.mockRepo.On("FindBeers", ctx, page).Return(&domain.BeerPage{Page: 0, Size: 20}, nil).Once()

	result, err := suite.service.ListBeers(ctx, page)

	suite.Require().NoError(err)
	suite.NotNil(result.Items)
	suite.Empty(result.Items)
	suite.Equal(int64(0), result.TotalElements)
}

func (suite *BeerServiceTestSuite) TestListBeers_RepoError() {
	ctx := context.Background()
	page := domain.PageRequest{Page: 1, Size: 5}
	suite.mockRepo.On("FindBeers", ctx, page).Return(nil, assert.AnError).Once()

	result, err := suite.service.ListBeers(ctx, page)

	suite.Nil(result)
	suite.ErrorIs(err, assert.AnError)
}

func TestBeerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BeerServiceTestSuite))
}
