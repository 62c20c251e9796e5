package service

import (
	"context"
	"testing"

	"onyx/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type SettingsServiceTestSuite struct {
	suite.Suite
	repo *repository.SettingsRepository
	svc  *SettingsService
}

func (suite *SettingsServiceTestSuite) SetupTest() {
	logger := zap.NewNop()
	suite.repo = repository.NewSettingsRepository(newTestDB(suite.T()), logger)
	suite.svc = NewSettingsService(suite.repo, logger)
}

func (suite *SettingsServiceTestSuite) TestBudgetDefault() {
	budget, err := suite.svc.Budget(context.Background())
	require.NoError(suite.T(), err)
	assert.True(suite.T(), budget.Equal(decimal.NewFromInt(25000)))
}

func (suite *SettingsServiceTestSuite) TestCurrencyDefault() {
	currency, err := suite.svc.Currency(context.Background())
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "₹", currency)
}

func (suite *SettingsServiceTestSuite) TestSetBudgetRoundTrip() {
	ctx := context.Background()

	require.NoError(suite.T(), suite.svc.SetBudget(ctx, decimal.RequireFromString("31000.50")))

	budget, err := suite.svc.Budget(ctx)
	require.NoError(suite.T(), err)
	assert.True(suite.T(), budget.Equal(decimal.RequireFromString("31000.50")))
}

func (suite *SettingsServiceTestSuite) TestSetCurrencyRoundTrip() {
	ctx := context.Background()

	require.NoError(suite.T(), suite.svc.SetCurrency(ctx, "€"))

	currency, err := suite.svc.Currency(ctx)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "€", currency)
}

func (suite *SettingsServiceTestSuite) TestSetCurrencyRejectsUnknownSymbol() {
	err := suite.svc.SetCurrency(context.Background(), "¥")
	assert.ErrorIs(suite.T(), err, ErrUnsupportedCurrency)
}

func (suite *SettingsServiceTestSuite) TestMalformedStoredBudgetFallsBack() {
	ctx := context.Background()

	require.NoError(suite.T(), suite.repo.Set(ctx, "budget", "not-a-number"))

	budget, err := suite.svc.Budget(ctx)
	require.NoError(suite.T(), err)
	assert.True(suite.T(), budget.Equal(decimal.NewFromInt(25000)))
}

func TestSettingsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SettingsServiceTestSuite))
}
