package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/beers_api/internal/apperrors"
	"github.com/SscSPs/beers_api/internal/core/domain"
	portssvc "github.com/SscSPs/beers_api/internal/core/ports/services"
	"github.com/SscSPs/beers_api/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type CurrencyServiceTestSuite struct {
	suite.Suite
	mockRates *MockRateProvider
	service   portssvc.CurrencySvcFacade
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.mockRates = new(MockRateProvider)
	suite.service = services.NewCurrencyService(testCurrencies, suite.mockRates)
}

func (suite *CurrencyServiceTestSuite) TestListSupportedCurrencies_Sorted() {
	codes := suite.service.ListSupportedCurrencies(context.Background())
	suite.Equal([]string{"CLP", "EUR", "GBP", "JPY", "USD"}, codes)
}

func (suite *CurrencyServiceTestSuite) TestIsSupported_CaseInsensitive() {
	suite.True(suite.service.IsSupported("usd"))
	suite.True(suite.service.IsSupported("Eur"))
	suite.False(suite.service.IsSupported("XYZ"))
}

func (suite *CurrencyServiceTestSuite) TestConvert_SameCurrencyIsExact() {
	ctx := context.Background()
	suite.mockRates.On("FetchRates", ctx, "USD").
		Return(rateTable("USD", map[string]string{"USD": "1"}), nil).Once()

	result, err := suite.service.Convert(ctx, "USD", dec("6.00"), "USD")

	suite.Require().NoError(err)
	suite.True(result.Equal(dec("6.00")))
	suite.Equal("6.00", domain.FormatMoney(result))
	suite.mockRates.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestConvert_NoFloatDrift() {
	ctx := context.Background()
	suite.mockRates.On("FetchRates", ctx, "EUR").
		Return(rateTable("EUR", map[string]string{"USD": "0.1"}), nil).Once()

	// (0.1 + 0.2) * 0.1 is exactly 0.03 in decimal
	amount := dec("0.1").Add(dec("0.2"))
	result, err := suite.service.Convert(ctx, "EUR", amount, "USD")

	suite.Require().NoError(err)
	suite.Equal("0.03", result.String())
}

func (suite *CurrencyServiceTestSuite) TestConvert_NormalizesCodes() {
	ctx := context.Background()
	suite.mockRates.On("FetchRates", ctx, "EUR").
		Return(rateTable("EUR", map[string]string{"USD": "1.0835"}), nil).Once()

	result, err := suite.service.Convert(ctx, "eur", dec("15.00"), "usd")

	suite.Require().NoError(err)
	suite.Equal("16.2525", result.String())
}

func (suite *CurrencyServiceTestSuite) TestConvert_MissingRate() {
	ctx := context.Background()
	suite.mockRates.On("FetchRates", ctx, "USD").
		Return(rateTable("USD", map[string]string{"EUR": "0.91"}), nil).Once()

	result, err := suite.service.Convert(ctx, "USD", dec("10"), "CLP")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrRateNotFound)
	suite.NotErrorIs(err, apperrors.ErrMalformedUpstreamResponse)
	suite.True(result.IsZero())
}

func (suite *CurrencyServiceTestSuite) TestConvert_ZeroRateIsNotMissing() {
	ctx := context.Background()
	suite.mockRates.On("FetchRates", ctx, "USD").
		Return(rateTable("USD", map[string]string{"XYZ": "0"}), nil).Once()

	result, err := suite.service.Convert(ctx, "USD", dec("10"), "XYZ")

	suite.Require().NoError(err)
	suite.True(result.IsZero())
}

func (suite *CurrencyServiceTestSuite) TestConvert_PropagatesProviderErrors() {
	for _, providerErr := range []error{apperrors.ErrUpstreamUnavailable, apperrors.ErrMalformedUpstreamResponse} {
		suite.Run(providerErr.Error(), func() {
			mockRates := new(MockRateProvider)
			service := services.NewCurrencyService(testCurrencies, mockRates)
			ctx := context.Background()
			mockRates.On("FetchRates", ctx, "USD").Return(domain.RateTable{}, providerErr).Once()

			_, err := service.Convert(ctx, "USD", dec("1"), "EUR")

			suite.Require().Error(err)
			suite.Equal(providerErr, err)
			mockRates.AssertExpectations(suite.T())
		})
	}
}

func (suite *CurrencyServiceTestSuite) TestConvert_PassesCancellationThrough() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	suite.mockRates.On("FetchRates", ctx, "USD").Return(domain.RateTable{}, context.Canceled).Once()

	_, err := suite.service.Convert(ctx, "USD", dec("1"), "EUR")

	suite.Require().Error(err)
	suite.ErrorIs(err, context.Canceled)
	suite.NotErrorIs(err, apperrors.ErrUpstreamUnavailable)
}

func (suite *CurrencyServiceTestSuite) TestConvert_FetchesEveryCall() {
	ctx := context.Background()
	suite.mockRates.On("FetchRates", ctx, "USD").
		Return(rateTable("USD", map[string]string{"EUR": "0.9"}), nil).Times(2)

	_, err := suite.service.Convert(ctx, "USD", dec("1"), "EUR")
	suite.Require().NoError(err)
	_, err = suite.service.Convert(ctx, "USD", dec("2"), "EUR")
	suite.Require().NoError(err)

	suite.mockRates.AssertNumberOfCalls(suite.T(), "FetchRates", 2)
}

func TestCurrencyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}

func TestNewCurrencyService_EmptySet(t *testing.T) {
	service := services.NewCurrencyService(domain.NewSupportedCurrencySet(nil), new(MockRateProvider))
	assert.Empty(t, service.ListSupportedCurrencies(context.Background()))
	assert.False(t, service.IsSupported("USD"))
}
