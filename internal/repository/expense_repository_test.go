package repository

import (
	"context"
	"testing"

	"onyx/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type ExpenseRepositoryTestSuite struct {
	suite.Suite
	repo *ExpenseRepository
}

func (suite *ExpenseRepositoryTestSuite) SetupTest() {
	suite.repo = NewExpenseRepository(newTestDB(suite.T()), zap.NewNop())
}

func (suite *ExpenseRepositoryTestSuite) TestCreateAssignsID() {
	e := &models.Expense{
		Date:        "2024-01-15",
		Category:    models.CategoryFood,
		Amount:      45.50,
		Description: "Groceries",
	}

	err := suite.repo.Create(context.Background(), e)
	require.NoError(suite.T(), err)
	assert.Positive(suite.T(), e.ID)
}

func (suite *ExpenseRepositoryTestSuite) TestListEmptyLedger() {
	expenses, err := suite.repo.List(context.Background())
	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), expenses)
}

func (suite *ExpenseRepositoryTestSuite) TestListOrdersByDateDescending() {
	ctx := context.Background()

	records := []models.Expense{
		{Date: "2024-01-10", Category: models.CategoryFood, Amount: 10, Description: "Lunch"},
		{Date: "2024-03-01", Category: models.CategoryTransport, Amount: 30, Description: "Train"},
		{Date: "2024-02-20", Category: models.CategoryUtilities, Amount: 20, Description: "Power"},
	}
	for i := range records {
		require.NoError(suite.T(), suite.repo.Create(ctx, &records[i]))
	}

	expenses, err := suite.repo.List(ctx)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), expenses, 3)

	assert.Equal(suite.T(), "2024-03-01", expenses[0].Date)
	assert.Equal(suite.T(), "2024-02-20", expenses[1].Date)
	assert.Equal(suite.T(), "2024-01-10", expenses[2].Date)
}

func (suite *ExpenseRepositoryTestSuite) TestListSameDateNewestInsertionFirst() {
	ctx := context.Background()

	first := &models.Expense{Date: "2024-05-05", Category: models.CategoryFood, Amount: 5, Description: "Coffee"}
	second := &models.Expense{Date: "2024-05-05", Category: models.CategoryFood, Amount: 8, Description: "Snack"}
	require.NoError(suite.T(), suite.repo.Create(ctx, first))
	require.NoError(suite.T(), suite.repo.Create(ctx, second))

	expenses, err := suite.repo.List(ctx)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), expenses, 2)

	assert.Equal(suite.T(), "Snack", expenses[0].Description)
	assert.Equal(suite.T(), "Coffee", expenses[1].Description)
}

func (suite *ExpenseRepositoryTestSuite) TestCreateRoundTripsFields() {
	ctx := context.Background()

	e := &models.Expense{
		Date:        "2024-06-01",
		Category:    models.CategoryEntertainment,
		Amount:      123.45,
		Description: "Concert tickets",
	}
	require.NoError(suite.T(), suite.repo.Create(ctx, e))

	expenses, err := suite.repo.List(ctx)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), expenses, 1)

	got := expenses[0]
	assert.Equal(suite.T(), e.ID, got.ID)
	assert.Equal(suite.T(), e.Date, got.Date)
	assert.Equal(suite.T(), e.Category, got.Category)
	assert.Equal(suite.T(), e.Amount, got.Amount)
	assert.Equal(suite.T(), e.Description, got.Description)
}

func TestExpenseRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ExpenseRepositoryTestSuite))
}
