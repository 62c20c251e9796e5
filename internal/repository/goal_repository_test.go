package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type GoalRepositoryTestSuite struct {
	suite.Suite
	repo *GoalRepository
}

func (suite *GoalRepositoryTestSuite) SetupTest() {
	suite.repo = NewGoalRepository(newTestDB(suite.T()), zap.NewNop())
}

func (suite *GoalRepositoryTestSuite) TestCreateStartsAtZero() {
	goal, err := suite.repo.Create(context.Background(), "Emergency Fund", 50000)
	require.NoError(suite.T(), err)

	assert.Positive(suite.T(), goal.ID)
	assert.Equal(suite.T(), "Emergency Fund", goal.Name)
	assert.Equal(suite.T(), 50000.0, goal.TargetAmount)
	assert.Zero(suite.T(), goal.CurrentAmount)
}

func (suite *GoalRepositoryTestSuite) TestFundAccumulates() {
	ctx := context.Background()

	goal, err := suite.repo.Create(ctx, "Vacation", 1000)
	require.NoError(suite.T(), err)

	for _, delta := range []float64{100, 250, 50} {
		found, err := suite.repo.Fund(ctx, goal.ID, delta)
		require.NoError(suite.T(), err)
		assert.True(suite.T(), found)
	}

	goals, err := suite.repo.List(ctx)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), goals, 1)
	assert.Equal(suite.T(), 400.0, goals[0].CurrentAmount)
}

func (suite *GoalRepositoryTestSuite) TestFundMayExceedTarget() {
	ctx := context.Background()

	goal, err := suite.repo.Create(ctx, "Bike", 300)
	require.NoError(suite.T(), err)

	found, err := suite.repo.Fund(ctx, goal.ID, 450)
	require.NoError(suite.T(), err)
	require.True(suite.T(), found)

	goals, err := suite.repo.List(ctx)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), goals, 1)
	assert.Equal(suite.T(), 450.0, goals[0].CurrentAmount, "stored amount is not clamped to the target")
}

func (suite *GoalRepositoryTestSuite) TestFundUnknownGoal() {
	found, err := suite.repo.Fund(context.Background(), 999, 10)
	require.NoError(suite.T(), err)
	assert.False(suite.T(), found)
}

func (suite *GoalRepositoryTestSuite) TestListInCreationOrder() {
	ctx := context.Background()

	for _, name := range []string{"First", "Second", "Third"} {
		_, err := suite.repo.Create(ctx, name, 100)
		require.NoError(suite.T(), err)
	}

	goals, err := suite.repo.List(ctx)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), goals, 3)
	assert.Equal(suite.T(), "First", goals[0].Name)
	assert.Equal(suite.T(), "Second", goals[1].Name)
	assert.Equal(suite.T(), "Third", goals[2].Name)
}

func TestGoalRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(GoalRepositoryTestSuite))
}
